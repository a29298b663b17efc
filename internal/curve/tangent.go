package curve

// RecomputeTangents rewrites the arrive and leave tangents of key i from its
// neighbours. Only key i is written; callers touch neighbours themselves when
// keys are inserted or removed.
//
// Smooth dimensions get a centered-difference tangent, clamped to zero where
// the key is a local extremum of an interior position. Broken dimensions of
// an interior CurveBreak key get the raw value deltas to each neighbour, with
// no division by time.
func (c *Curve) RecomputeTangents(i int) {
	prev, next := i, i
	if i > 0 {
		prev = i - 1
	}
	if i < len(c.keys)-1 {
		next = i + 1
	}

	k := &c.keys[i]
	p, n := &c.keys[prev], &c.keys[next]
	interior := prev != i && next != i
	dt := n.Time - p.Time

	for d := range k.Value.Dim() {
		v, pv, nv := k.Value.At(d), p.Value.At(d), n.Value.At(d)

		if interior && k.Mode == CurveBreak && !k.Smooth[d] {
			k.ArriveTangent.Set(d, v-pv)
			k.LeaveTangent.Set(d, nv-v)
			continue
		}

		var tangent float32
		switch {
		case interior && isExtremum(v, pv, nv):
			tangent = 0
		case dt > 0:
			tangent = (nv - pv) / dt
		}
		k.ArriveTangent.Set(d, tangent)
		k.LeaveTangent.Set(d, tangent)
	}
}

// RecomputeAll recomputes the tangents of every key in order.
func (c *Curve) RecomputeAll() {
	for i := range c.keys {
		c.RecomputeTangents(i)
	}
}

func isExtremum(v, prev, next float32) bool {
	return (v >= prev && v >= next) || (v <= prev && v <= next)
}
