package models

// PageMargins represents print margins of a sheet, in inches.
type PageMargins struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// NarrowMargins returns half-inch margins on all four sides.
func NarrowMargins() PageMargins {
	return PageMargins{Left: 0.5, Right: 0.5, Top: 0.5, Bottom: 0.5}
}
