package canvas

import "image/color"

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpSave OpKind = iota
	OpSaveLayerShadow
	OpRestore
	OpTranslate
	OpRotate
	OpClear
	OpPath
	OpText
)

// Op is one recorded call. Transform is the transform in effect when the
// call was made and Depth the number of open layers.
type Op struct {
	Kind      OpKind
	Transform Matrix
	Depth     int

	Path   *Path
	Paint  Paint
	Text   string
	At     Offset
	Style  TextStyle
	Shadow Shadow
	Color  color.RGBA
	Dx, Dy float64
	Angle  float64
}

// Recorder is a Canvas that records calls instead of drawing them.
type Recorder struct {
	Ops []Op

	size   Size
	m      Matrix
	stack  []Matrix
	layers []int
}

// NewRecorder returns a Recorder reporting size from Size.
func NewRecorder(size Size) *Recorder {
	return &Recorder{size: size, m: Identity()}
}

func (r *Recorder) record(op Op) {
	op.Transform = r.m
	op.Depth = len(r.layers)
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Size() Size { return r.size }

func (r *Recorder) Save() {
	r.record(Op{Kind: OpSave})
	r.stack = append(r.stack, r.m)
}

func (r *Recorder) SaveLayerShadow(shadow Shadow) {
	r.record(Op{Kind: OpSaveLayerShadow, Shadow: shadow})
	r.stack = append(r.stack, r.m)
	r.layers = append(r.layers, len(r.stack))
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	if n := len(r.layers); n > 0 && r.layers[n-1] == len(r.stack) {
		r.layers = r.layers[:n-1]
	}
	r.m = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.record(Op{Kind: OpRestore})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.record(Op{Kind: OpTranslate, Dx: dx, Dy: dy})
	r.m = r.m.Translate(dx, dy)
}

func (r *Recorder) Rotate(radians float64) {
	r.record(Op{Kind: OpRotate, Angle: radians})
	r.m = r.m.Rotate(radians)
}

func (r *Recorder) Clear(c color.RGBA) {
	r.record(Op{Kind: OpClear, Color: c})
}

func (r *Recorder) DrawPath(path *Path, paint Paint) {
	r.record(Op{Kind: OpPath, Path: path, Paint: paint})
}

func (r *Recorder) DrawText(text string, at Offset, style TextStyle) {
	r.record(Op{Kind: OpText, Text: text, At: at, Style: style})
}

// Transform returns the current transform.
func (r *Recorder) Transform() Matrix {
	return r.m
}

// Paths returns the recorded path ops in call order.
func (r *Recorder) Paths() []Op {
	return r.filter(OpPath)
}

// Texts returns the recorded text ops in call order.
func (r *Recorder) Texts() []Op {
	return r.filter(OpText)
}

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Replay issues the recorded calls onto c.
func (r *Recorder) Replay(c Canvas) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpSave:
			c.Save()
		case OpSaveLayerShadow:
			c.SaveLayerShadow(op.Shadow)
		case OpRestore:
			c.Restore()
		case OpTranslate:
			c.Translate(op.Dx, op.Dy)
		case OpRotate:
			c.Rotate(op.Angle)
		case OpClear:
			c.Clear(op.Color)
		case OpPath:
			c.DrawPath(op.Path, op.Paint)
		case OpText:
			c.DrawText(op.Text, op.At, op.Style)
		}
	}
}

// DevicePoints returns the path's subpaths mapped through the op's transform.
func (op Op) DevicePoints() [][]Offset {
	if op.Path == nil {
		return nil
	}
	subpaths, _ := op.Path.Subpaths()
	out := make([][]Offset, len(subpaths))
	for i, sp := range subpaths {
		out[i] = make([]Offset, len(sp))
		for j, p := range sp {
			out[i][j] = op.Transform.Apply(p)
		}
	}
	return out
}
