package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feischl/pumppanel/pkg/client"
	"github.com/feischl/pumppanel/pkg/domain"
	"github.com/feischl/pumppanel/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
}

func testSettings() *mocks.SettingsManagerMock {
	current := domain.DefaultSettings()
	return &mocks.SettingsManagerMock{
		SettingsFunc:        func() domain.ControlSettings { return current },
		SyncingFunc:         func() bool { return false },
		UpdateSettingFunc:   func(key string, value any) error { return nil },
		ResetToDefaultsFunc: func() {},
		SyncWithBackendFunc: func(ctx context.Context) {},
		SaveSettingsFunc:    func(ctx context.Context) {},
	}
}

func TestServer_getSettingsHandler(t *testing.T) {
	srv := New(testConfig(), testSettings(), &mocks.BackendMock{}, nil, "1.2.3", false)

	req := httptest.NewRequest("GET", "/settings", http.NoBody)
	w := httptest.NewRecorder()
	srv.getSettingsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Settings domain.ControlSettings `json:"settings"`
		Syncing  bool                   `json:"syncing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.DefaultSettings(), resp.Settings)
	assert.False(t, resp.Syncing)
}

func TestServer_updateSettingsHandler(t *testing.T) {
	t.Run("applies each field", func(t *testing.T) {
		settings := testSettings()
		srv := New(testConfig(), settings, &mocks.BackendMock{}, nil, "1.0", false)

		req := httptest.NewRequest("PUT", "/settings", strings.NewReader(`{"maxTemp": 25, "biddingZone": "NO1"}`))
		w := httptest.NewRecorder()
		srv.updateSettingsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, settings.UpdateSettingCalls(), 2)
		keys := []string{settings.UpdateSettingCalls()[0].Key, settings.UpdateSettingCalls()[1].Key}
		assert.ElementsMatch(t, []string{"maxTemp", "biddingZone"}, keys)
	})

	t.Run("invalid payload rejected", func(t *testing.T) {
		srv := New(testConfig(), testSettings(), &mocks.BackendMock{}, nil, "1.0", false)

		req := httptest.NewRequest("PUT", "/settings", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		srv.updateSettingsHandler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		srv := New(testConfig(), testSettings(), &mocks.BackendMock{}, nil, "1.0", false)

		req := httptest.NewRequest("PUT", "/settings", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		srv.updateSettingsHandler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("field error surfaces as 400", func(t *testing.T) {
		settings := testSettings()
		settings.UpdateSettingFunc = func(key string, value any) error {
			return errors.New("apply maxTemp: bad value")
		}
		srv := New(testConfig(), settings, &mocks.BackendMock{}, nil, "1.0", false)

		req := httptest.NewRequest("PUT", "/settings", strings.NewReader(`{"maxTemp": "oops"}`))
		w := httptest.NewRecorder()
		srv.updateSettingsHandler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "apply maxTemp")
	})
}

func TestServer_resetSettingsHandler(t *testing.T) {
	settings := testSettings()
	srv := New(testConfig(), settings, &mocks.BackendMock{}, nil, "1.0", false)

	req := httptest.NewRequest("POST", "/settings/reset", http.NoBody)
	w := httptest.NewRecorder()
	srv.resetSettingsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, settings.ResetToDefaultsCalls(), 1)
}

func TestServer_syncSettingsHandler(t *testing.T) {
	settings := testSettings()
	srv := New(testConfig(), settings, &mocks.BackendMock{}, nil, "1.0", false)

	req := httptest.NewRequest("POST", "/settings/sync", http.NoBody)
	w := httptest.NewRecorder()
	srv.syncSettingsHandler(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"syncing":true`)

	// the push runs detached from the request
	require.Eventually(t, func() bool {
		return len(settings.SyncWithBackendCalls()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestServer_statusHandler(t *testing.T) {
	t.Run("proxies snapshot", func(t *testing.T) {
		backend := &mocks.BackendMock{
			GetStatusFunc: func(ctx context.Context) (*domain.Status, error) {
				return &domain.Status{
					Device: domain.DeviceStatus{Connected: true, IndoorTemp: 21.2},
					Price:  domain.PriceSnapshot{Zone: "SE3", Ratio: 0.7},
				}, nil
			},
		}
		srv := New(testConfig(), testSettings(), backend, nil, "1.0", false)

		req := httptest.NewRequest("GET", "/status", http.NoBody)
		w := httptest.NewRecorder()
		srv.statusHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var status domain.Status
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.True(t, status.Device.Connected)
		assert.Equal(t, "SE3", status.Price.Zone)
	})

	t.Run("unauthorized maps to 401", func(t *testing.T) {
		backend := &mocks.BackendMock{
			GetStatusFunc: func(ctx context.Context) (*domain.Status, error) {
				return nil, client.ErrUnauthorized
			},
		}
		srv := New(testConfig(), testSettings(), backend, nil, "1.0", false)

		req := httptest.NewRequest("GET", "/status", http.NoBody)
		w := httptest.NewRecorder()
		srv.statusHandler(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("backend failure maps to 502", func(t *testing.T) {
		backend := &mocks.BackendMock{
			GetStatusFunc: func(ctx context.Context) (*domain.Status, error) {
				return nil, &client.RequestFailedError{StatusCode: 500, Message: "boom"}
			},
		}
		srv := New(testConfig(), testSettings(), backend, nil, "1.0", false)

		req := httptest.NewRequest("GET", "/status", http.NoBody)
		w := httptest.NewRecorder()
		srv.statusHandler(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestServer_overrideHandler(t *testing.T) {
	t.Run("submits action with value", func(t *testing.T) {
		backend := &mocks.BackendMock{
			OverrideFunc: func(ctx context.Context, action string, value *float64) error { return nil },
		}
		srv := New(testConfig(), testSettings(), backend, nil, "1.0", false)

		req := httptest.NewRequest("POST", "/override", strings.NewReader(`{"action":"heat","value":22}`))
		w := httptest.NewRecorder()
		srv.overrideHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, backend.OverrideCalls(), 1)
		assert.Equal(t, "heat", backend.OverrideCalls()[0].Action)
		require.NotNil(t, backend.OverrideCalls()[0].Value)
		assert.InDelta(t, 22, *backend.OverrideCalls()[0].Value, 0.001)
	})

	t.Run("missing action rejected", func(t *testing.T) {
		srv := New(testConfig(), testSettings(), &mocks.BackendMock{}, nil, "1.0", false)

		req := httptest.NewRequest("POST", "/override", strings.NewReader(`{"value":22}`))
		w := httptest.NewRecorder()
		srv.overrideHandler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_pricesHandler(t *testing.T) {
	t.Run("explicit zone and hours", func(t *testing.T) {
		backend := &mocks.BackendMock{
			GetPricesFunc: func(ctx context.Context, zone string, hours int) ([]domain.PricePoint, error) {
				return []domain.PricePoint{{Zone: zone, Price: 0.4}}, nil
			},
		}
		srv := New(testConfig(), testSettings(), backend, nil, "1.0", false)

		req := httptest.NewRequest("GET", "/prices?zone=NO2&hours=12", http.NoBody)
		w := httptest.NewRecorder()
		srv.pricesHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, backend.GetPricesCalls(), 1)
		assert.Equal(t, "NO2", backend.GetPricesCalls()[0].Zone)
		assert.Equal(t, 12, backend.GetPricesCalls()[0].Hours)
	})

	t.Run("defaults to configured zone", func(t *testing.T) {
		backend := &mocks.BackendMock{
			GetPricesFunc: func(ctx context.Context, zone string, hours int) ([]domain.PricePoint, error) {
				return nil, nil
			},
		}
		srv := New(testConfig(), testSettings(), backend, nil, "1.0", false)

		req := httptest.NewRequest("GET", "/prices", http.NoBody)
		w := httptest.NewRecorder()
		srv.pricesHandler(w, req)

		require.Len(t, backend.GetPricesCalls(), 1)
		assert.Equal(t, domain.DefaultSettings().BiddingZone, backend.GetPricesCalls()[0].Zone)
		assert.Equal(t, defaultPriceHours, backend.GetPricesCalls()[0].Hours)
	})

	t.Run("invalid hours rejected", func(t *testing.T) {
		srv := New(testConfig(), testSettings(), &mocks.BackendMock{}, nil, "1.0", false)

		req := httptest.NewRequest("GET", "/prices?hours=-5", http.NoBody)
		w := httptest.NewRecorder()
		srv.pricesHandler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_collectPricesHandler(t *testing.T) {
	backend := &mocks.BackendMock{
		CollectPricesFunc: func(ctx context.Context, zone string) error { return nil },
	}
	srv := New(testConfig(), testSettings(), backend, nil, "1.0", false)

	// zone defaults to the configured bidding zone
	req := httptest.NewRequest("POST", "/prices", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	srv.collectPricesHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, backend.CollectPricesCalls(), 1)
	assert.Equal(t, domain.DefaultSettings().BiddingZone, backend.CollectPricesCalls()[0].Zone)
}

func TestServer_setCredentialHandler(t *testing.T) {
	t.Run("replaces key", func(t *testing.T) {
		backend := &mocks.BackendMock{
			SetCredentialFunc: func(ctx context.Context, key string) {},
		}
		srv := New(testConfig(), testSettings(), backend, nil, "1.0", false)

		req := httptest.NewRequest("PUT", "/credential", strings.NewReader(`{"key":"new-secret"}`))
		w := httptest.NewRecorder()
		srv.setCredentialHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, backend.SetCredentialCalls(), 1)
		assert.Equal(t, "new-secret", backend.SetCredentialCalls()[0].Key)
		// the key is not echoed back
		assert.NotContains(t, w.Body.String(), "new-secret")
	})

	t.Run("empty key rejected", func(t *testing.T) {
		srv := New(testConfig(), testSettings(), &mocks.BackendMock{}, nil, "1.0", false)

		req := httptest.NewRequest("PUT", "/credential", strings.NewReader(`{"key":""}`))
		w := httptest.NewRecorder()
		srv.setCredentialHandler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
