package filter

// Diagnostics accumulates the names of constructs that could not be mapped
// onto the filter tree. Collecting them instead of failing lets the rest of
// the expression keep transforming.
type Diagnostics struct {
	Unsupported []string
}

func (d *Diagnostics) report(feature string) {
	if d == nil {
		return
	}
	for _, existing := range d.Unsupported {
		if existing == feature {
			return
		}
	}
	d.Unsupported = append(d.Unsupported, feature)
}
