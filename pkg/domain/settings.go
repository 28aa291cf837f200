package domain

// ControlSettings holds the user-tunable thresholds driving heat-pump
// automation. The value is replaced as a whole on every change and is always
// fully populated: defaults backfill any field a persisted snapshot misses.
//
// Range constraints (minTemp < maxTemp, low < high price threshold, offsets
// and fees non-negative) are conventions, not enforced here.
type ControlSettings struct {
	MinTemp             float64 `json:"minTemp"`
	MaxTemp             float64 `json:"maxTemp"`
	LowPriceThreshold   float64 `json:"lowPriceThreshold"`  // ratio to rolling average
	HighPriceThreshold  float64 `json:"highPriceThreshold"` // ratio to rolling average
	LowTempOffset       float64 `json:"lowTempOffset"`
	HighTempOffset      float64 `json:"highTempOffset"`
	RollingDays         int     `json:"rollingDays"`
	BiddingZone         string  `json:"biddingZone"`
	NetFeePerKwh        float64 `json:"netFeePerKwh"`
	ElectricityProvider string  `json:"electricityProvider"`
	UsePricesWithTax    bool    `json:"usePricesWithTax"`
	IncludeTaxes        bool    `json:"includeTaxes"`
	IncludeNetFee       bool    `json:"includeNetFee"`
}

// DefaultSettings returns the hardcoded defaults used when no snapshot exists
func DefaultSettings() ControlSettings {
	return ControlSettings{
		MinTemp:             18,
		MaxTemp:             22,
		LowPriceThreshold:   0.9,
		HighPriceThreshold:  1.5,
		LowTempOffset:       1,
		HighTempOffset:      1,
		RollingDays:         7,
		BiddingZone:         "SE3",
		NetFeePerKwh:        0,
		ElectricityProvider: "tibber",
		UsePricesWithTax:    false,
		IncludeTaxes:        false,
		IncludeNetFee:       false,
	}
}
