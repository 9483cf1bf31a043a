package numdiff

import (
	"errors"
	"math"
)

var sqrtEps = math.Sqrt(math.Nextafter(1, 2) - 1)
var cubeEps = math.Pow(math.Nextafter(1, 2)-1, float64(1)/3)

type Method int

const (
	// Forward use the first order accuracy forward difference.
	Forward Method = iota
	// Central use the second order accuracy central difference.
	Central
)

// Approx represents a numerical differentiation algorithm to estimate the
// derivative of a scalar function.
//
// # Reference:
//
//   - https://en.wikipedia.org/wiki/Finite_difference
type Approx struct {
	// Function of which to estimate the derivative.
	F func(x float64) float64
	// Finite difference method to use.
	Method Method
	// Absolute step size to use.
	// The RelStep is used when AbsStep is not provided.
	// For Central method the sign of AbsStep is ignored.
	AbsStep float64
	// Relative step size used to compute absolute step size as
	// h = RelStep * sign(x0) * abs(x0).
	// RelStep is selected automatically from machine epsilon when zero.
	RelStep float64
}

// Check the parameters.
func (a *Approx) Check() (err error) {
	switch {
	case a.F == nil:
		err = errors.New("object function is required")
	case a.Method != Forward && a.Method != Central:
		err = errors.New("unknown method")
	}
	return
}

// Diff calculate approximation of the derivative at x0 by finite differences.
func (a *Approx) Diff(x0 float64) (float64, error) {

	if err := a.Check(); err != nil {
		return 0, err
	}

	f, h := a.F, a.step(x0)
	if a.Method == Central {
		return (f(x0+h) - f(x0-h)) / (2 * h), nil
	}
	return (f(x0+h) - f(x0)) / h, nil
}

func (a *Approx) step(x0 float64) float64 {

	var eps float64
	switch a.Method {
	case Forward:
		eps = sqrtEps
	case Central:
		eps = cubeEps
	default:
		panic("unknown method")
	}

	s := a.AbsStep
	if s == 0 && a.RelStep != 0 {
		s = math.Copysign(a.RelStep, x0) * math.Abs(x0)
	}
	if s == 0 {
		s = math.Copysign(eps, x0) * math.Max(1.0, math.Abs(x0))
	}
	if d := (x0 + s) - x0; d == 0 {
		s = math.Copysign(eps, x0) * math.Max(1.0, math.Abs(x0))
	}
	if a.Method == Central {
		s = math.Abs(s)
	}
	return s
}
