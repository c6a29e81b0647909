package domain

const (
	BandLow     = "Low"
	BandMedium  = "Medium"
	BandHigh    = "High"
	BandUnknown = "N/A"
)

// riskBands maps half-open probability intervals [lo, hi) to a label,
// scanned in order. The upper bound of the last band is 1.01 so that a
// probability of exactly 1.0 still lands in High.
var riskBands = []struct {
	label  string
	lo, hi float64
}{
	{BandLow, 0.00, 0.20},
	{BandMedium, 0.20, 0.50},
	{BandHigh, 0.50, 1.01},
}

// BandFor returns the risk band for a default probability, or
// BandUnknown when no interval matches.
func BandFor(p float64) string {
	for _, b := range riskBands {
		if b.lo <= p && p < b.hi {
			return b.label
		}
	}
	return BandUnknown
}
