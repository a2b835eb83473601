package geom

import "math"

// Affine is a 2D affine transform. The zero value is the identity.
//
// Like gio's f32.Affine2D, every builder method applies its operation
// after the ones already in the transform.
type Affine struct {
	// a, e are stored minus one so the zero value is the identity.
	a, b, c float64
	d, e, f float64
}

// NewAffine returns the transform with matrix
//
//	[sx hx ox]
//	[hy sy oy]
//	[0  0  1 ]
func NewAffine(sx, hx, ox, hy, sy, oy float64) Affine {
	return Affine{
		a: sx - 1, b: hx, c: ox,
		d: hy, e: sy - 1, f: oy,
	}
}

// Elems returns the matrix elements of the transform in row-major order.
func (t Affine) Elems() (sx, hx, ox, hy, sy, oy float64) {
	return t.a + 1, t.b, t.c, t.d, t.e + 1, t.f
}

// Offset the transformation.
func (t Affine) Offset(o Point) Affine {
	return Affine{
		t.a, t.b, t.c + o.X,
		t.d, t.e, t.f + o.Y,
	}
}

// Scale the transformation around the given origin.
func (t Affine) Scale(origin, factor Point) Affine {
	if origin == (Point{}) {
		return t.scale(factor)
	}
	return t.Offset(origin.Mul(-1)).scale(factor).Offset(origin)
}

// Rotate the transformation by radians around the given origin.
func (t Affine) Rotate(origin Point, radians float64) Affine {
	if origin == (Point{}) {
		return t.rotate(radians)
	}
	return t.Offset(origin.Mul(-1)).rotate(radians).Offset(origin)
}

// Shear the transformation by the given factors around the given origin.
// A factor of kx moves a point at height y by kx*y horizontally.
func (t Affine) Shear(origin Point, kx, ky float64) Affine {
	if origin == (Point{}) {
		return t.shear(kx, ky)
	}
	return t.Offset(origin.Mul(-1)).shear(kx, ky).Offset(origin)
}

// Mul returns A*B: B is applied first, then t.
func (t Affine) Mul(t2 Affine) Affine {
	sx, hx, ox, hy, sy, oy := t.Elems()
	sx2, hx2, ox2, hy2, sy2, oy2 := t2.Elems()
	return NewAffine(
		sx*sx2+hx*hy2, sx*hx2+hx*sy2, sx*ox2+hx*oy2+ox,
		hy*sx2+sy*hy2, hy*hx2+sy*sy2, hy*ox2+sy*oy2+oy,
	)
}

// Invert the transformation. A singular transform inverts to the identity.
func (t Affine) Invert() Affine {
	sx, hx, ox, hy, sy, oy := t.Elems()
	det := sx*sy - hx*hy
	if det == 0 {
		return Affine{}
	}
	isx, ihx := sy/det, -hx/det
	ihy, isy := -hy/det, sx/det
	return NewAffine(
		isx, ihx, -(isx*ox + ihx*oy),
		ihy, isy, -(ihy*ox + isy*oy),
	)
}

// Transform p by returning t*p.
func (t Affine) Transform(p Point) Point {
	sx, hx, ox, hy, sy, oy := t.Elems()
	return Point{
		X: sx*p.X + hx*p.Y + ox,
		Y: hy*p.X + sy*p.Y + oy,
	}
}

func (t Affine) scale(factor Point) Affine {
	return t.mulLeft(factor.X, 0, 0, factor.Y)
}

func (t Affine) rotate(radians float64) Affine {
	s, c := math.Sincos(radians)
	return t.mulLeft(c, -s, s, c)
}

func (t Affine) shear(kx, ky float64) Affine {
	return t.mulLeft(1, kx, ky, 1)
}

// mulLeft applies the linear map [m00 m01; m10 m11] after t.
func (t Affine) mulLeft(m00, m01, m10, m11 float64) Affine {
	sx, hx, ox, hy, sy, oy := t.Elems()
	return NewAffine(
		m00*sx+m01*hy, m00*hx+m01*sy, m00*ox+m01*oy,
		m10*sx+m11*hy, m10*hx+m11*sy, m10*ox+m11*oy,
	)
}
