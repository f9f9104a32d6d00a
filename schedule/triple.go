package schedule

// Triple is a certainty-aware time quantity: a value (RES), a variance
// (VAR), and an error bound (ERR) that absorbs floating-point and
// model-approximation noise accumulated along a path.
type Triple struct {
	RES float64
	VAR float64
	ERR float64
}

// Add combines two triples along the same path: values and variances
// sum, error bounds sum (monotone accumulation).
func (t Triple) Add(o Triple) Triple {
	return Triple{RES: t.RES + o.RES, VAR: t.VAR + o.VAR, ERR: t.ERR + o.ERR}
}

// Neg flips the value, keeping variance and error bound (both are
// magnitudes, never directional).
func (t Triple) Neg() Triple {
	return Triple{RES: -t.RES, VAR: t.VAR, ERR: t.ERR}
}

// Choose implements the certainty-aware choice between a current
// estimate (old) and a newly arrived one (new) at a shared event:
// strictly dominant estimates win outright; indistinguishable ones
// (within combined error) are mixed rather than discarded, so neither
// variance is lost.
func Choose(old, new Triple) Triple {
	delta := new.RES - old.RES
	bound := old.ERR + new.ERR
	if delta >= bound {
		return new
	}
	if delta <= -bound {
		return old
	}
	v := old.VAR
	if new.VAR > v {
		v = new.VAR
	}
	return Triple{
		RES: 0.5 * (old.RES + new.RES),
		VAR: v,
		ERR: 0.5 * (old.ERR + new.ERR),
	}
}

// ChooseEarly is Choose specialized for the forward sweep, where a
// later (larger) RES dominates.
func ChooseEarly(old, new Triple) Triple { return Choose(old, new) }

// ChooseLate is Choose's mirror image for the backward sweep, where a
// smaller RES dominates (the predecessor's late time must accommodate
// every successor, so the tightest successor constraint wins).
func ChooseLate(old, new Triple) Triple {
	delta := old.RES - new.RES
	bound := old.ERR + new.ERR
	if delta >= bound {
		return new
	}
	if delta <= -bound {
		return old
	}
	v := old.VAR
	if new.VAR > v {
		v = new.VAR
	}
	return Triple{
		RES: 0.5 * (old.RES + new.RES),
		VAR: v,
		ERR: 0.5 * (old.ERR + new.ERR),
	}
}

// Sub is Add(o.Neg()) spelled out for reserve computation readability.
func (t Triple) Sub(o Triple) Triple { return t.Add(o.Neg()) }
