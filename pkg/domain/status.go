package domain

import "time"

// Status is the combined device, automation and price snapshot reported by
// the controller backend
type Status struct {
	Device     DeviceStatus     `json:"device"`
	Automation AutomationStatus `json:"automation"`
	Price      PriceSnapshot    `json:"price"`
}

// DeviceStatus describes the heat pump itself
type DeviceStatus struct {
	Connected  bool    `json:"connected"`
	IndoorTemp float64 `json:"indoorTemp"`
	TargetTemp float64 `json:"targetTemp"`
	Heating    bool    `json:"heating"`
}

// AutomationStatus describes the decision loop state
type AutomationStatus struct {
	Enabled      bool      `json:"enabled"`
	Mode         string    `json:"mode"`
	LastDecision string    `json:"lastDecision"`
	LastRun      time.Time `json:"lastRun"`
}

// PriceSnapshot is the current electricity price position within the
// rolling window
type PriceSnapshot struct {
	Zone         string    `json:"zone"`
	CurrentPrice float64   `json:"currentPrice"`
	AveragePrice float64   `json:"averagePrice"`
	Ratio        float64   `json:"ratio"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PricePoint is a single historical spot price for a bidding zone
type PricePoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
	Zone  string    `json:"zone"`
}
