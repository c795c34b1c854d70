package dataset

// At derives the attribute record for a unit at a continuous time t.
//
// For t between two sampled years the raw counts are interpolated linearly;
// shares and the leading category are then recomputed by callers from the
// interpolated counts rather than interpolated themselves. Minor-candidate
// metadata is never interpolated: the record closer in time contributes it
// wholesale. When only one bracketing year has data for the unit, that
// record is returned unmodified. Outside the sampled range t clamps to the
// first or last year.
func (d *Dataset) At(id string, t float64) (Record, bool) {
	if len(d.years) == 0 {
		return Record{}, false
	}

	first, last := d.years[0], d.years[len(d.years)-1]
	if t <= float64(first) {
		return d.Record(first, id)
	}
	if t >= float64(last) {
		return d.Record(last, id)
	}

	// Find the bracketing pair p0 <= t < p1.
	p0, p1 := first, last
	for i := 1; i < len(d.years); i++ {
		if float64(d.years[i]) > t {
			p0, p1 = d.years[i-1], d.years[i]
			break
		}
	}
	if t == float64(p0) {
		return d.Record(p0, id)
	}

	r0, ok0 := d.Record(p0, id)
	r1, ok1 := d.Record(p1, id)
	switch {
	case ok0 && !ok1:
		return r0, true
	case !ok0 && ok1:
		return r1, true
	case !ok0 && !ok1:
		return Record{}, false
	}

	ratio := (t - float64(p0)) / float64(p1-p0)
	out := Record{
		Dem:   lerp(r0.Dem, r1.Dem, ratio),
		Rep:   lerp(r0.Rep, r1.Rep, ratio),
		Other: lerp(r0.Other, r1.Other, ratio),
		Total: lerp(r0.Total, r1.Total, ratio),
	}

	// Labels come from whichever endpoint the time is closer to.
	src := r1
	if ratio < 0.5 {
		src = r0
	}
	out.MinorA = src.MinorA
	out.MinorB = src.MinorB
	return out, true
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
