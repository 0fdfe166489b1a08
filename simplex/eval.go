package simplex

import (
	"github.com/chewxy/math32"

	"github.com/lunabrook/gfxmath/vec"
)

// Sample2 is one scalar noise value with its analytic derivative.
type Sample2 struct {
	Value float32
	Deriv vec.Vec2
}

type Sample3 struct {
	Value float32
	Deriv vec.Vec3
}

type Sample4 struct {
	Value float32
	Deriv vec.Vec4
}

// Eval2 samples the noise field at p. A corner only contributes while
// the squared distance to it stays under 0.5, so every term starts at
// zero and the result is defined everywhere, lattice points included.
func Eval2(p vec.Vec2, seed int32) Sample2 {
	x := p[0]
	y := p[1]

	// Skew onto the simplex grid, then unskew the cell origin back.
	s := (x + y) * f2
	i := math32.Floor(x + s)
	j := math32.Floor(y + s)
	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Middle corner: along x when the point sits in the lower
	// triangle, along y otherwise.
	var i1, j1 int32
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float32(i1) + g2
	y1 := y0 - float32(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := int32(i)
	jj := int32(j)

	var n0, n1, n2 float32
	var t0, t1, t2 float32
	var t20, t21, t22 float32
	var t40, t41, t42 float32
	var gd0, gd1, gd2 float32
	var ga, gb, gc vec.Vec2

	if t0 = 0.5 - x0*x0 - y0*y0; t0 > 0.0 {
		ga = Gradient2(ii, jj, seed)
		t20 = t0 * t0
		t40 = t20 * t20
		gd0 = ga[0]*x0 + ga[1]*y0
		n0 = t40 * gd0
	}

	if t1 = 0.5 - x1*x1 - y1*y1; t1 > 0.0 {
		gb = Gradient2(ii+i1, jj+j1, seed)
		t21 = t1 * t1
		t41 = t21 * t21
		gd1 = gb[0]*x1 + gb[1]*y1
		n1 = t41 * gd1
	}

	if t2 = 0.5 - x2*x2 - y2*y2; t2 > 0.0 {
		gc = Gradient2(ii+1, jj+1, seed)
		t22 = t2 * t2
		t42 = t22 * t22
		gd2 = gc[0]*x2 + gc[1]*y2
		n2 = t42 * gd2
	}

	// Chain rule through the quartic falloff: d(t^4 gd)/dx is
	// -8 t^3 x gd + t^4 gx per corner.
	dx := t20*t0*gd0*x0 + t21*t1*gd1*x1 + t22*t2*gd2*x2
	dy := t20*t0*gd0*y0 + t21*t1*gd1*y1 + t22*t2*gd2*y2
	dx *= -8.0
	dy *= -8.0
	dx += t40*ga[0] + t41*gb[0] + t42*gc[0]
	dy += t40*ga[1] + t41*gb[1] + t42*gc[1]

	return Sample2{
		Value: scale2 * (n0 + n1 + n2),
		Deriv: vec.Vec2{scale2 * dx, scale2 * dy},
	}
}

// Eval3 samples the noise field at p, visiting the four corners of the
// containing tetrahedron.
func Eval3(p vec.Vec3, seed int32) Sample3 {
	x := p[0]
	y := p[1]
	z := p[2]

	s := (x + y + z) * f3
	i := math32.Floor(x + s)
	j := math32.Floor(y + s)
	k := math32.Floor(z + s)
	t := (i + j + k) * g3
	x0 := x - (i - t)
	y0 := y - (j - t)
	z0 := z - (k - t)

	// Rank the offset components to pick one of the six tetrahedra
	// tiling the skewed cube.
	var i1, j1, k1 int32
	var i2, j2, k2 int32
	if x0 >= y0 {
		if y0 >= z0 {
			i1, i2, j2 = 1, 1, 1
		} else if x0 >= z0 {
			i1, i2, k2 = 1, 1, 1
		} else {
			k1, i2, k2 = 1, 1, 1
		}
	} else {
		if y0 < z0 {
			k1, j2, k2 = 1, 1, 1
		} else if x0 < z0 {
			j1, j2, k2 = 1, 1, 1
		} else {
			j1, i2, j2 = 1, 1, 1
		}
	}

	x1 := x0 - float32(i1) + g3
	y1 := y0 - float32(j1) + g3
	z1 := z0 - float32(k1) + g3
	x2 := x0 - float32(i2) + 2.0*g3
	y2 := y0 - float32(j2) + 2.0*g3
	z2 := z0 - float32(k2) + 2.0*g3
	x3 := x0 - 1.0 + 3.0*g3
	y3 := y0 - 1.0 + 3.0*g3
	z3 := z0 - 1.0 + 3.0*g3

	ii := int32(i)
	jj := int32(j)
	kk := int32(k)

	var n0, n1, n2, n3 float32
	var t0, t1, t2, t3 float32
	var t20, t21, t22, t23 float32
	var t40, t41, t42, t43 float32
	var gd0, gd1, gd2, gd3 float32
	var ga, gb, gc, gd vec.Vec3

	if t0 = 0.5 - x0*x0 - y0*y0 - z0*z0; t0 > 0.0 {
		ga = Gradient3(ii, jj, kk, seed)
		t20 = t0 * t0
		t40 = t20 * t20
		gd0 = ga[0]*x0 + ga[1]*y0 + ga[2]*z0
		n0 = t40 * gd0
	}

	if t1 = 0.5 - x1*x1 - y1*y1 - z1*z1; t1 > 0.0 {
		gb = Gradient3(ii+i1, jj+j1, kk+k1, seed)
		t21 = t1 * t1
		t41 = t21 * t21
		gd1 = gb[0]*x1 + gb[1]*y1 + gb[2]*z1
		n1 = t41 * gd1
	}

	if t2 = 0.5 - x2*x2 - y2*y2 - z2*z2; t2 > 0.0 {
		gc = Gradient3(ii+i2, jj+j2, kk+k2, seed)
		t22 = t2 * t2
		t42 = t22 * t22
		gd2 = gc[0]*x2 + gc[1]*y2 + gc[2]*z2
		n2 = t42 * gd2
	}

	if t3 = 0.5 - x3*x3 - y3*y3 - z3*z3; t3 > 0.0 {
		gd = Gradient3(ii+1, jj+1, kk+1, seed)
		t23 = t3 * t3
		t43 = t23 * t23
		gd3 = gd[0]*x3 + gd[1]*y3 + gd[2]*z3
		n3 = t43 * gd3
	}

	dx := t20*t0*gd0*x0 + t21*t1*gd1*x1 + t22*t2*gd2*x2 + t23*t3*gd3*x3
	dy := t20*t0*gd0*y0 + t21*t1*gd1*y1 + t22*t2*gd2*y2 + t23*t3*gd3*y3
	dz := t20*t0*gd0*z0 + t21*t1*gd1*z1 + t22*t2*gd2*z2 + t23*t3*gd3*z3
	dx *= -8.0
	dy *= -8.0
	dz *= -8.0
	dx += t40*ga[0] + t41*gb[0] + t42*gc[0] + t43*gd[0]
	dy += t40*ga[1] + t41*gb[1] + t42*gc[1] + t43*gd[1]
	dz += t40*ga[2] + t41*gb[2] + t42*gc[2] + t43*gd[2]

	return Sample3{
		Value: scale3 * (n0 + n1 + n2 + n3),
		Deriv: vec.Vec3{scale3 * dx, scale3 * dy, scale3 * dz},
	}
}

// Eval4 samples the noise field at p. The five corners of the
// containing 5-cell are walked in the order given by the comparison
// signature of the local offsets.
func Eval4(p vec.Vec4, seed int32) Sample4 {
	x := p[0]
	y := p[1]
	z := p[2]
	w := p[3]

	s := (x + y + z + w) * f4
	i := math32.Floor(x + s)
	j := math32.Floor(y + s)
	k := math32.Floor(z + s)
	l := math32.Floor(w + s)
	t := (i + j + k + l) * g4
	x0 := x - (i - t)
	y0 := y - (j - t)
	z0 := z - (k - t)
	w0 := w - (l - t)

	// Six pairwise comparisons make a 6 bit signature; order4 turns it
	// into the rank of each axis.
	var sig uint32
	if x0 > y0 {
		sig |= 32
	}
	if x0 > z0 {
		sig |= 16
	}
	if y0 > z0 {
		sig |= 8
	}
	if x0 > w0 {
		sig |= 4
	}
	if y0 > w0 {
		sig |= 2
	}
	if z0 > w0 {
		sig |= 1
	}
	ord := order4[sig]

	// Axes ranked 3, 2 and 1 step first, second and third.
	var i1, j1, k1, l1 int32
	var i2, j2, k2, l2 int32
	var i3, j3, k3, l3 int32
	if ord[0] >= 3 {
		i1 = 1
	}
	if ord[1] >= 3 {
		j1 = 1
	}
	if ord[2] >= 3 {
		k1 = 1
	}
	if ord[3] >= 3 {
		l1 = 1
	}
	if ord[0] >= 2 {
		i2 = 1
	}
	if ord[1] >= 2 {
		j2 = 1
	}
	if ord[2] >= 2 {
		k2 = 1
	}
	if ord[3] >= 2 {
		l2 = 1
	}
	if ord[0] >= 1 {
		i3 = 1
	}
	if ord[1] >= 1 {
		j3 = 1
	}
	if ord[2] >= 1 {
		k3 = 1
	}
	if ord[3] >= 1 {
		l3 = 1
	}

	x1 := x0 - float32(i1) + g4
	y1 := y0 - float32(j1) + g4
	z1 := z0 - float32(k1) + g4
	w1 := w0 - float32(l1) + g4
	x2 := x0 - float32(i2) + 2.0*g4
	y2 := y0 - float32(j2) + 2.0*g4
	z2 := z0 - float32(k2) + 2.0*g4
	w2 := w0 - float32(l2) + 2.0*g4
	x3 := x0 - float32(i3) + 3.0*g4
	y3 := y0 - float32(j3) + 3.0*g4
	z3 := z0 - float32(k3) + 3.0*g4
	w3 := w0 - float32(l3) + 3.0*g4
	x4 := x0 - 1.0 + 4.0*g4
	y4 := y0 - 1.0 + 4.0*g4
	z4 := z0 - 1.0 + 4.0*g4
	w4 := w0 - 1.0 + 4.0*g4

	ii := int32(i)
	jj := int32(j)
	kk := int32(k)
	ll := int32(l)

	var n0, n1, n2, n3, n4 float32
	var t0, t1, t2, t3, t4 float32
	var t20, t21, t22, t23, t24 float32
	var t40, t41, t42, t43, t44 float32
	var gd0, gd1, gd2, gd3, gd4 float32
	var ga, gb, gc, gd, ge vec.Vec4

	if t0 = 0.5 - x0*x0 - y0*y0 - z0*z0 - w0*w0; t0 > 0.0 {
		ga = Gradient4(ii, jj, kk, ll, seed)
		t20 = t0 * t0
		t40 = t20 * t20
		gd0 = ga[0]*x0 + ga[1]*y0 + ga[2]*z0 + ga[3]*w0
		n0 = t40 * gd0
	}

	if t1 = 0.5 - x1*x1 - y1*y1 - z1*z1 - w1*w1; t1 > 0.0 {
		gb = Gradient4(ii+i1, jj+j1, kk+k1, ll+l1, seed)
		t21 = t1 * t1
		t41 = t21 * t21
		gd1 = gb[0]*x1 + gb[1]*y1 + gb[2]*z1 + gb[3]*w1
		n1 = t41 * gd1
	}

	if t2 = 0.5 - x2*x2 - y2*y2 - z2*z2 - w2*w2; t2 > 0.0 {
		gc = Gradient4(ii+i2, jj+j2, kk+k2, ll+l2, seed)
		t22 = t2 * t2
		t42 = t22 * t22
		gd2 = gc[0]*x2 + gc[1]*y2 + gc[2]*z2 + gc[3]*w2
		n2 = t42 * gd2
	}

	if t3 = 0.5 - x3*x3 - y3*y3 - z3*z3 - w3*w3; t3 > 0.0 {
		gd = Gradient4(ii+i3, jj+j3, kk+k3, ll+l3, seed)
		t23 = t3 * t3
		t43 = t23 * t23
		gd3 = gd[0]*x3 + gd[1]*y3 + gd[2]*z3 + gd[3]*w3
		n3 = t43 * gd3
	}

	if t4 = 0.5 - x4*x4 - y4*y4 - z4*z4 - w4*w4; t4 > 0.0 {
		ge = Gradient4(ii+1, jj+1, kk+1, ll+1, seed)
		t24 = t4 * t4
		t44 = t24 * t24
		gd4 = ge[0]*x4 + ge[1]*y4 + ge[2]*z4 + ge[3]*w4
		n4 = t44 * gd4
	}

	dx := t20*t0*gd0*x0 + t21*t1*gd1*x1 + t22*t2*gd2*x2 + t23*t3*gd3*x3 + t24*t4*gd4*x4
	dy := t20*t0*gd0*y0 + t21*t1*gd1*y1 + t22*t2*gd2*y2 + t23*t3*gd3*y3 + t24*t4*gd4*y4
	dz := t20*t0*gd0*z0 + t21*t1*gd1*z1 + t22*t2*gd2*z2 + t23*t3*gd3*z3 + t24*t4*gd4*z4
	dw := t20*t0*gd0*w0 + t21*t1*gd1*w1 + t22*t2*gd2*w2 + t23*t3*gd3*w3 + t24*t4*gd4*w4
	dx *= -8.0
	dy *= -8.0
	dz *= -8.0
	dw *= -8.0
	dx += t40*ga[0] + t41*gb[0] + t42*gc[0] + t43*gd[0] + t44*ge[0]
	dy += t40*ga[1] + t41*gb[1] + t42*gc[1] + t43*gd[1] + t44*ge[1]
	dz += t40*ga[2] + t41*gb[2] + t42*gc[2] + t43*gd[2] + t44*ge[2]
	dw += t40*ga[3] + t41*gb[3] + t42*gc[3] + t43*gd[3] + t44*ge[3]

	return Sample4{
		Value: scale4 * (n0 + n1 + n2 + n3 + n4),
		Deriv: vec.Vec4{scale4 * dx, scale4 * dy, scale4 * dz, scale4 * dw},
	}
}
