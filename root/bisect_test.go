// Copyright ©2025 hahnec. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package root

import (
	"slices"
	"testing"
)

func TestBisectSquareRoot(t *testing.T) {

	p := Problem{X: 144, B: 2, Stop: Termination{MaxIterations: 100, Tolerance: 1e-9}}
	s, err := p.New(nil)
	if err != nil {
		panic(err)
	}

	r := s.Bisect()
	switch {
	case !r.OK || r.Status != StatusConverged:
		t.Fatal("TestBisectSquareRoot: Not Converge")
	case !almostEqual(r.Root, 12, 1e-10):
		t.Fatal("TestBisectSquareRoot: Wrong Root")
	case r.NumIter > 41:
		t.Fatal("TestBisectSquareRoot: Too Many Iterations")
	case r.Trajectory[0] != 36:
		t.Fatal("TestBisectSquareRoot: Wrong First Midpoint")
	case len(r.Trajectory) != r.NumIter:
		t.Fatal("TestBisectSquareRoot: Trajectory Length Mismatch")
	case r.Residual > 1e-9:
		t.Fatal("TestBisectSquareRoot: Residual Too Large")
	}
}

func TestBisectCubeRoot(t *testing.T) {

	p := Problem{X: 27, B: 3, Stop: Termination{MaxIterations: 100, Tolerance: 1e-9}}
	s, err := p.New(nil)
	if err != nil {
		panic(err)
	}

	r := s.Bisect()
	switch {
	case !r.OK:
		t.Fatal("TestBisectCubeRoot: Not Converge")
	case !almostEqual(r.Root, 3, 1e-9):
		t.Fatal("TestBisectCubeRoot: Wrong Root")
	case r.NumIter > 41:
		t.Fatal("TestBisectCubeRoot: Too Many Iterations")
	}
}

// 2 is an exact midpoint of the bracket [0, 16], reached in three halvings.
func TestBisectExactMidpoint(t *testing.T) {

	p := Problem{X: 32, B: 5, Stop: Termination{MaxIterations: 100, Tolerance: 1e-9}}
	s, err := p.New(nil)
	if err != nil {
		panic(err)
	}

	r := s.Bisect()
	switch {
	case !r.OK:
		t.Fatal("TestBisectExactMidpoint: Not Converge")
	case r.Root != 2 || r.Residual != 0:
		t.Fatal("TestBisectExactMidpoint: Wrong Root")
	case r.NumIter != 3:
		t.Fatal("TestBisectExactMidpoint: Wrong Iteration Count")
	}
}

// The bracket [0, x/2] misses the root when x < 2^(b/(b-1)): the midpoints
// narrow toward x/2 and the iteration must stop at the cap, not spin.
func TestBisectBracketMiss(t *testing.T) {

	p := Problem{X: 2, B: 2, Stop: Termination{MaxIterations: 50, Tolerance: 1e-9}}
	s, err := p.New(nil)
	if err != nil {
		panic(err)
	}

	r := s.Bisect()
	switch {
	case r.OK || r.Status != StatusIterCap:
		t.Fatal("TestBisectBracketMiss: Cap Not Reported")
	case r.NumIter != 50:
		t.Fatal("TestBisectBracketMiss: Cap Not Honored")
	case !almostEqual(r.Root, 1, 1e-9):
		t.Fatal("TestBisectBracketMiss: Midpoints Left The Bracket")
	}
}

func TestBisectDegreeOne(t *testing.T) {

	p := Problem{X: 10, B: 1, Stop: Termination{MaxIterations: 64, Tolerance: 1e-9}}
	s, err := p.New(nil)
	if err != nil {
		panic(err)
	}

	r := s.Bisect()
	switch {
	case r.OK || r.Status != StatusIterCap:
		t.Fatal("TestBisectDegreeOne: Cap Not Reported")
	case !almostEqual(r.Root, 5, 1e-9):
		t.Fatal("TestBisectDegreeOne: Unexpected Final Midpoint")
	}
}

func TestBisectIdempotent(t *testing.T) {

	p := Problem{X: 321, B: 4, Stop: Termination{MaxIterations: 100, Tolerance: 1e-9}}
	s, err := p.New(nil)
	if err != nil {
		panic(err)
	}

	a, b := s.Bisect(), s.Bisect()
	if !slices.Equal(a.Trajectory, b.Trajectory) {
		t.Fatal("TestBisectIdempotent: Trajectories Differ")
	}
}
