// Copyright ©2025 hahnec. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package root

import "math"

// Newton computes the b-th root of x by Newton-Raphson iteration on the
// squared-loss derivative pair:
//
//	vₖ₊₁ = vₖ − 𝚍𝟷(vₖ)/𝚍𝟸(vₖ)
//
// starting from v₀ = x/2. The iteration stops when |𝚍𝟷(vₖ)| ≤ Tolerance,
// when the trajectory reaches MaxIterations, or when 𝚍𝟸 vanishes and no
// update exists (StatusSingular). For x > 0 the singular case is only
// reachable at b = 1, where 𝚍𝟸(x/2) = 0 at the starting guess itself.
func (s *Solver) Newton() *Result {

	stop, loss := s.stop, s.loss

	traj := make([]float64, 1, stop.MaxIterations)
	traj[0] = loss.X / 2

	status := StatusIterCap
	for {
		v := traj[len(traj)-1]
		d1 := loss.Grad(v)
		if math.Abs(d1) <= stop.Tolerance {
			status = StatusConverged
			break
		}
		if len(traj) >= stop.MaxIterations {
			break
		}
		d2 := loss.Hess(v)
		if d2 == 0 {
			status = StatusSingular
			break
		}
		next := v - d1/d2
		traj = append(traj, next)
		s.logIter("newton", len(traj)-1, next, loss.Residual(next))
	}

	return s.result("newton", status, traj)
}
