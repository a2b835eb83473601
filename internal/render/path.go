package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/iburimskiy/pattern-playground/internal/geom"
)

// arcStep is the largest angle, in radians, one flattened arc segment spans.
const arcStep = math.Pi / 32

// ErrBadPath is returned for path data ParsePath cannot read.
var ErrBadPath = errors.New("bad path data")

// Subpath is one flattened run of a path.
type Subpath struct {
	Points []geom.Point
	Closed bool
}

// Path is SVG path data flattened into polylines.
type Path []Subpath

// ParsePath flattens SVG path data. It reads the move, line, horizontal,
// vertical, elliptical arc and close commands in absolute and relative
// form. Subpaths with fewer than two points are dropped.
func ParsePath(d string) (Path, error) {
	p := pathParser{s: d}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.out, nil
}

type pathParser struct {
	s   string
	i   int
	out Path

	cur, start geom.Point
	pts        []geom.Point
}

func (p *pathParser) parse() error {
	var cmd byte
	for {
		p.skipSpace()
		if p.i >= len(p.s) {
			break
		}
		if c := p.s[p.i]; isCommand(c) {
			cmd = c
			p.i++
		} else if cmd == 0 || cmd == 'z' || cmd == 'Z' {
			return fmt.Errorf("%w: expected command at %d", ErrBadPath, p.i)
		}
		next, err := p.command(cmd)
		if err != nil {
			return err
		}
		cmd = next
	}
	p.flush(false)
	return nil
}

// command applies one command and returns the command implied by
// further coordinates.
func (p *pathParser) command(cmd byte) (byte, error) {
	rel := cmd >= 'a'
	base := geom.Point{}
	if rel {
		base = p.cur
	}
	switch cmd {
	case 'M', 'm':
		v, err := p.numbers(2)
		if err != nil {
			return 0, err
		}
		p.flush(false)
		p.cur = base.Add(geom.Pt(v[0], v[1]))
		p.start = p.cur
		p.pts = append(p.pts, p.cur)
		// Pairs after a move are lines.
		if rel {
			return 'l', nil
		}
		return 'L', nil
	case 'L', 'l':
		v, err := p.numbers(2)
		if err != nil {
			return 0, err
		}
		p.lineTo(base.Add(geom.Pt(v[0], v[1])))
	case 'H', 'h':
		v, err := p.numbers(1)
		if err != nil {
			return 0, err
		}
		p.lineTo(geom.Pt(base.X+v[0], p.cur.Y))
	case 'V', 'v':
		v, err := p.numbers(1)
		if err != nil {
			return 0, err
		}
		p.lineTo(geom.Pt(p.cur.X, base.Y+v[0]))
	case 'A', 'a':
		v, err := p.numbers(7)
		if err != nil {
			return 0, err
		}
		p.arcTo(v[0], v[1], v[2], v[3] != 0, v[4] != 0, base.Add(geom.Pt(v[5], v[6])))
	case 'Z', 'z':
		p.flush(true)
		p.cur = p.start
	default:
		return 0, fmt.Errorf("%w: unsupported command %q", ErrBadPath, cmd)
	}
	return cmd, nil
}

func (p *pathParser) lineTo(pt geom.Point) {
	if len(p.pts) == 0 {
		p.pts = append(p.pts, p.cur)
	}
	p.pts = append(p.pts, pt)
	p.cur = pt
}

// arcTo flattens an elliptical arc given in endpoint form.
func (p *pathParser) arcTo(rx, ry, rotation float64, large, sweep bool, end geom.Point) {
	from := p.cur
	rx, ry = math.Abs(rx), math.Abs(ry)
	if from == end {
		return
	}
	if rx == 0 || ry == 0 {
		p.lineTo(end)
		return
	}
	phi := rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Move to a frame centered between the endpoints with the ellipse
	// axes aligned.
	hx, hy := (from.X-end.X)/2, (from.Y-end.Y)/2
	x1 := cosPhi*hx + sinPhi*hy
	y1 := -sinPhi*hx + cosPhi*hy

	// Grow radii that cannot span the endpoints.
	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		s := math.Sqrt(l)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (from.X+end.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (from.Y+end.Y)/2

	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	theta := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / arcStep))
	for k := 1; k < n; k++ {
		s, c := math.Sincos(theta + delta*float64(k)/float64(n))
		p.lineTo(geom.Pt(
			cosPhi*rx*c-sinPhi*ry*s+cx,
			sinPhi*rx*c+cosPhi*ry*s+cy,
		))
	}
	// Land exactly on the endpoint.
	p.lineTo(end)
}

func (p *pathParser) flush(closed bool) {
	if len(p.pts) >= 2 {
		p.out = append(p.out, Subpath{Points: p.pts, Closed: closed})
	}
	p.pts = nil
}

func (p *pathParser) numbers(n int) ([]float64, error) {
	v := make([]float64, n)
	for k := range v {
		p.skipSpace()
		j := p.i
		if j < len(p.s) && (p.s[j] == '-' || p.s[j] == '+') {
			j++
		}
		for j < len(p.s) && isNumberByte(p.s[j], p.s[j-1]) {
			j++
		}
		f, err := strconv.ParseFloat(p.s[p.i:j], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number at %d", ErrBadPath, p.i)
		}
		v[k] = f
		p.i = j
	}
	return v, nil
}

func (p *pathParser) skipSpace() {
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case ' ', '\t', '\n', '\r', ',':
			p.i++
		default:
			return
		}
	}
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isNumberByte(c, prev byte) bool {
	switch {
	case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E':
		return true
	case c == '-' || c == '+':
		return prev == 'e' || prev == 'E'
	}
	return false
}
