package geom

// OpKind names a primitive transform operation.
type OpKind uint8

const (
	TranslateX OpKind = iota
	TranslateY
	Rotate
	Scale
	ScaleX
	ScaleY
	SkewX
	SkewY
)

// Op is one primitive transform. Rotate values are radians; skew values
// are shear factors.
type Op struct {
	Kind  OpKind
	Value float64
}

// Transform is an ordered list of ops applied around Origin. Ops compose
// like nested canvas transforms: the first op is the outermost, so the
// last op is the first one to touch a point.
type Transform struct {
	Origin Point
	Ops    []Op
}

// Affine flattens the transform into a single matrix.
func (tr Transform) Affine() Affine {
	t := Affine{}.Offset(tr.Origin.Mul(-1))
	for i := len(tr.Ops) - 1; i >= 0; i-- {
		op := tr.Ops[i]
		switch op.Kind {
		case TranslateX:
			t = t.Offset(Pt(op.Value, 0))
		case TranslateY:
			t = t.Offset(Pt(0, op.Value))
		case Rotate:
			t = t.Rotate(Point{}, op.Value)
		case Scale:
			t = t.Scale(Point{}, Pt(op.Value, op.Value))
		case ScaleX:
			t = t.Scale(Point{}, Pt(op.Value, 1))
		case ScaleY:
			t = t.Scale(Point{}, Pt(1, op.Value))
		case SkewX:
			t = t.Shear(Point{}, op.Value, 0)
		case SkewY:
			t = t.Shear(Point{}, 0, op.Value)
		}
	}
	return t.Offset(tr.Origin)
}

// Chain flattens nested transforms, outermost first.
func Chain(trs ...Transform) Affine {
	var t Affine
	for _, tr := range trs {
		t = t.Mul(tr.Affine())
	}
	return t
}
