package surface

import "image/color"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpCircle
)

// Op is one recorded call.
type Op struct {
	Kind    OpKind
	Color   color.NRGBA
	X, Y, R float64
}

// Recorder is a Surface that keeps every call it receives.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) SetFill(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: color.NRGBAModel.Convert(c).(color.NRGBA)})
}

func (r *Recorder) FillCircle(x, y, rad float64) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: rad})
}

// Circles returns the number of circles drawn since the last Reset.
func (r *Recorder) Circles() int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == OpCircle {
			n++
		}
	}
	return n
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
