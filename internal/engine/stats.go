package engine

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-keyreduce/internal/simdops"
	"github.com/tphakala/go-keyreduce/internal/vec"
)

// Stats summarises a finished reduction.
type Stats struct {
	InputCount  int
	OutputCount int

	// Iterations counts segment-queue pops.
	Iterations int

	// Promotions counts control points added after seeding.
	Promotions int

	Tolerance    vec.Vec
	MaxError     vec.Vec
	MeanAbsError vec.Vec
	RMSError     vec.Vec
}

// Stats measures the output curve against every control point. It is only
// meaningful after Run.
func (r *Reducer) Stats() Stats {
	n, dim := r.table.Len(), r.table.Dim()

	// abs[d][i] is the absolute error of control point i on dimension d.
	abs := make([][]float64, dim)
	for d := range abs {
		abs[d] = make([]float64, n)
	}
	for i := range n {
		diff := r.values[i].Sub(r.out.Eval(r.table.Time(i))).Abs()
		for d := range dim {
			abs[d][i] = float64(diff.At(d))
		}
	}

	ops := simdops.Float64Ops()
	s := Stats{
		InputCount:   n,
		OutputCount:  r.out.Len(),
		Iterations:   r.iterations,
		Promotions:   r.promoted,
		Tolerance:    r.tolerance,
		MaxError:     vec.New(dim),
		MeanAbsError: vec.New(dim),
		RMSError:     vec.New(dim),
	}
	for d, col := range abs {
		s.MaxError.Set(d, float32(floats.Max(col)))
		s.MeanAbsError.Set(d, float32(stat.Mean(col, nil)))
		s.RMSError.Set(d, float32(ops.RMS(col)))
	}
	return s
}

// WithinTolerance reports whether every dimension's maximum error is within
// the tolerance.
func (s Stats) WithinTolerance() bool {
	for d := range s.MaxError.Dim() {
		if s.MaxError.At(d) > s.Tolerance.At(d) {
			return false
		}
	}
	return true
}
