package client

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/feischl/pumppanel/pkg/domain"
)

// DevTransport serves canned responses keyed by request path without any
// network I/O, so the panel can be developed against no live controller.
// Selected only when the configuration runs in development mode.
type DevTransport struct{}

// NewDevTransport creates the canned-response transport
func NewDevTransport() *DevTransport {
	return &DevTransport{}
}

// Do returns a canned 200 response for the request path
func (d *DevTransport) Do(req *http.Request) (*http.Response, error) {
	var payload any

	switch req.URL.Path {
	case "/api/health":
		payload = map[string]string{"status": "ok", "mode": "development"}
	case "/api/status":
		payload = cannedStatus()
	case "/api/settings":
		if req.Method == http.MethodGet {
			payload = domain.DefaultSettings()
		} else {
			payload = map[string]string{"status": "ok"}
		}
	default:
		// generic acknowledgement for unrecognized paths
		payload = map[string]string{"status": "ok"}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(string(data))),
		Request:    req,
	}, nil
}

// cannedStatus is a plausible controller snapshot for UI development
func cannedStatus() domain.Status {
	return domain.Status{
		Device: domain.DeviceStatus{
			Connected:  true,
			IndoorTemp: 20.5,
			TargetTemp: 21,
			Heating:    true,
		},
		Automation: domain.AutomationStatus{
			Enabled:      true,
			Mode:         "auto",
			LastDecision: "heating: price below low threshold",
			LastRun:      time.Now().UTC().Truncate(time.Minute),
		},
		Price: domain.PriceSnapshot{
			Zone:         "SE3",
			CurrentPrice: 0.42,
			AveragePrice: 0.55,
			Ratio:        0.76,
			UpdatedAt:    time.Now().UTC().Truncate(time.Minute),
		},
	}
}
