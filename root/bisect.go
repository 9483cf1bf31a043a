// Copyright ©2025 hahnec. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package root

import "math"

// Bisect computes the b-th root of x by bisection on the bracket [0, x/2].
// The first estimate is the bracket midpoint x/4; each step halves the
// bracket toward the side containing the root and appends the new midpoint.
// The iteration stops when |vₖᵇ − x| ≤ Tolerance or the trajectory reaches
// MaxIterations.
//
// The bracket contains the root only when x/2 ≥ x^(1/b), i.e. when
// x ≥ 2^(b/(b−1)). Outside that range the midpoints narrow toward x/2 and
// the iteration runs to the cap with OK = false.
func (s *Solver) Bisect() *Result {

	stop, loss := s.stop, s.loss

	high, low := loss.X/2, 0.0
	mean := (high + low) / 2

	traj := make([]float64, 1, stop.MaxIterations)
	traj[0] = mean

	status := StatusIterCap
	for {
		if loss.Residual(mean) <= stop.Tolerance {
			status = StatusConverged
			break
		}
		if len(traj) >= stop.MaxIterations {
			break
		}
		if math.Pow(mean, float64(loss.B)) > loss.X {
			high = mean
		} else {
			low = mean
		}
		mean = (high + low) / 2
		traj = append(traj, mean)
		s.logIter("bisect", len(traj)-1, mean, loss.Residual(mean))
	}

	return s.result("bisect", status, traj)
}
