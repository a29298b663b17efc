// Package keyreduce reduces dense animation curves to sparse keyframes in
// pure Go.
//
// A curve is a list of samples, each a time plus a vector of one to four
// float32 components. The reducer keeps the first and last sample and every
// Linear or Constant sample, then repeatedly finds the sample that deviates
// most from the cubic Hermite curve through the keys kept so far and promotes
// it to a key, until every sample lies within tolerance.
//
// # Features
//
//   - Per-dimension error bounds relative to each dimension's observed range
//   - Smooth tangents recomputed from neighbouring keys, clamped to zero at
//     local extrema to avoid overshoot
//   - Broken tangents per dimension for CurveBreak keys
//   - Deterministic output: identical input always yields identical keys
//   - Interval reduction that leaves keys outside the window untouched
//   - Curves built from sampled tracks, from source keys with tangents, or
//     from independently keyed per-dimension channels
//
// # Quick Start
//
// For a 1-D curve:
//
//	result, err := keyreduce.ReduceScalar(times, values, 0.05)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.OutputKeyCount, "keys")
//
// For multi-dimensional samples with explicit modes:
//
//	samples := []keyreduce.Sample{
//	    {Time: 0, Value: keyreduce.NewVec(0, 1), Mode: keyreduce.ModeCurveAuto},
//	    {Time: 0.5, Value: keyreduce.NewVec(1, 0), Mode: keyreduce.ModeLinear},
//	    {Time: 1, Value: keyreduce.NewVec(0, -1), Mode: keyreduce.ModeCurveAuto},
//	}
//	result, err := keyreduce.ReduceCurve(samples, &keyreduce.Config{
//	    RelativeTolerance: 0.02,
//	    Interval:          &keyreduce.Interval{Start: 0, End: 1},
//	})
//
// # Tolerance
//
// For a relative tolerance r, dimension d of the curve gets the absolute
// bound
//
//	tolerance[d] = max(r * (max[d] - min[d]), ToleranceFloor)
//
// and after reduction every sample inside the interval evaluates within
// tolerance[d] of its original value on every dimension.
//
// # Evaluation
//
// Between two keys the curve is constant when the first key is
// [ModeConstant], linear when it is [ModeLinear], and a cubic Hermite spline
// using the first key's leave tangent and the second key's arrive tangent
// otherwise. Tangents are per unit of time.
//
// # Thread Safety
//
// Every reduction is self-contained and allocates its own working state, so
// independent calls may run concurrently. A [Result] is not modified after it
// is returned.
package keyreduce
