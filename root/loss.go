// Copyright ©2025 hahnec. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package root

import "math"

// Loss is the squared-loss objective (vᵇ − x)² whose minimizer v = x^(1/b)
// is the b-th root of x, together with the closed-form derivative pair
// driving the Newton update vₖ₊₁ = vₖ − 𝚍𝟷(vₖ)/𝚍𝟸(vₖ).
type Loss struct {
	X float64 // The radicand
	B int     // The root degree
}

// Eval returns the objective value (vᵇ − x)².
func (l Loss) Eval(v float64) float64 {
	d := math.Pow(v, float64(l.B)) - l.X
	return d * d
}

// Grad returns the first derivative 𝚍𝟷 = 2b(vᵇ⁺¹ − x·v) = 2b·v·(vᵇ − x).
// It vanishes exactly at the b-th root for v > 0.
func (l Loss) Grad(v float64) float64 {
	b := float64(l.B)
	return 2 * b * (math.Pow(v, b+1) - l.X*v)
}

// Hess returns the second derivative 𝚍𝟸 = 2b((b+1)vᵇ − x),
// the derivative of 𝚍𝟷 with respect to v.
func (l Loss) Hess(v float64) float64 {
	b := float64(l.B)
	return 2 * b * ((b+1)*math.Pow(v, b) - l.X)
}

// Residual returns the absolute root error |vᵇ − x|.
func (l Loss) Residual(v float64) float64 {
	return math.Abs(math.Pow(v, float64(l.B)) - l.X)
}
