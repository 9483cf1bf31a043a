// Copyright ©2025 hahnec. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package root

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// LogLevel controls the frequency and type of logger output
type LogLevel int

const (
	// LogNoop no output is generated (level < 0)
	LogNoop LogLevel = -1
	// LogLast print only one summary line when the iteration stops
	LogLast LogLevel = 0
	// LogEval print the estimate and residual every `level` iterations for any (0 < level < 99)
	LogEval LogLevel = 1
	// LogTrace print every iteration at full precision
	LogTrace LogLevel = 99
)

// Logger handles logging output for the solver.
// Note the writer must be thread-safe.
type Logger struct {
	Level LogLevel
	Msg   io.Writer // Writer to output log messages.
}

func (l *Logger) enable(level LogLevel) bool {
	return l.Level >= level
}

func (l *Logger) log(format string, a ...any) {
	if len(a) > 0 {
		_, _ = fmt.Fprintf(l.Msg, format, a...)
	} else {
		_, _ = fmt.Fprint(l.Msg, format)
	}
}

// Termination specifies the stopping criteria shared by both iterators.
type Termination struct {
	// The iteration stop when the trajectory length reaches limit.
	MaxIterations int
	// The convergence tolerance:
	//   - Newton stops when |𝚍𝟷(vₖ)| ≤ 𝚝𝚘𝚕
	//   - Bisection stops when |vₖᵇ − x| ≤ 𝚝𝚘𝚕
	Tolerance float64
}

// Problem specifies a b-th root extraction: find v such that vᵇ = x.
type Problem struct {
	X    float64     // The radicand
	B    int         // The root degree
	Stop Termination // Stop condition
}

// New creates a solver for the given root extraction problem.
func (p *Problem) New(logger *Logger) (solver *Solver, err error) {

	if logger == nil {
		logger = new(Logger)
		logger.Level = LogNoop
	}
	if logger.Msg == nil {
		logger.Msg = os.Stdout
	}

	switch {
	case math.IsNaN(p.X) || p.X <= 0:
		err = errors.New("radicand must greater than 0")
	case p.B < 1:
		err = errors.New("root degree must be a positive integer")
	case math.IsNaN(p.Stop.Tolerance) || p.Stop.Tolerance <= 0:
		err = errors.New("tolerance must greater than 0")
	case p.Stop.MaxIterations <= 0:
		err = errors.New("max iteration must greater than 0")
	}

	if err != nil {
		return
	}

	solver = &Solver{
		loss:   Loss{X: p.X, B: p.B},
		stop:   p.Stop,
		logger: *logger,
	}
	return
}

// Solver computes the b-th root of x by Newton-Raphson or bisection.
// A solver holds no iteration state: both methods start from scratch on
// every call and identical inputs yield identical trajectories.
type Solver struct {
	loss   Loss
	stop   Termination
	logger Logger
}

// Status reports why an iteration stopped.
type Status int

const (
	// StatusConverged the stop tolerance was satisfied.
	StatusConverged Status = iota
	// StatusIterCap the trajectory reached MaxIterations before converging.
	StatusIterCap
	// StatusSingular the second derivative vanished and no Newton step exists.
	StatusSingular
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusIterCap:
		return "iteration cap"
	case StatusSingular:
		return "singular curvature"
	}
	return "unknown"
}

// Result contains the final result of a root extraction.
type Result struct {
	OK         bool      // Whether the iteration converged.
	Root       float64   // Final estimate.
	Residual   float64   // |Rootᵇ − x| at the final estimate.
	Trajectory []float64 // All successive estimates, starting guess included.
	Summary              // Iteration summary.
}

// Summary contains a summary of the iteration process.
type Summary struct {
	Status  Status // Final task status after iteration.
	NumIter int    // Number of estimates produced, starting guess included.
}

func (s *Solver) result(method string, status Status, traj []float64) *Result {
	v := traj[len(traj)-1]
	r := &Result{
		OK:         status == StatusConverged,
		Root:       v,
		Residual:   s.loss.Residual(v),
		Trajectory: traj,
		Summary:    Summary{Status: status, NumIter: len(traj)},
	}
	if s.logger.enable(LogLast) {
		s.logger.log("%s: %s after %d iterations: root=%.12g residual=%.3e\n",
			method, status, r.NumIter, r.Root, r.Residual)
	}
	return r
}

func (s *Solver) logIter(method string, k int, v, res float64) {
	l := &s.logger
	switch {
	case l.enable(LogTrace):
		l.log("%s #%d: v=%.17g residual=%.6e\n", method, k, v, res)
	case l.enable(LogEval) && k%int(l.Level) == 0:
		l.log("%s #%d: v=%.12g residual=%.6e\n", method, k, v, res)
	}
}
