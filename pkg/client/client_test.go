package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feischl/pumppanel/pkg/client/mocks"
	"github.com/feischl/pumppanel/pkg/domain"
)

func emptyCreds() *mocks.CredentialStoreMock {
	return &mocks.CredentialStoreMock{
		CredentialFunc: func(ctx context.Context) (string, error) {
			return "", nil
		},
		SetCredentialFunc: func(ctx context.Context, key string) error {
			return nil
		},
	}
}

func TestNew_CredentialSource(t *testing.T) {
	t.Run("persisted key wins", func(t *testing.T) {
		creds := emptyCreds()
		creds.CredentialFunc = func(ctx context.Context) (string, error) {
			return "persisted-key", nil
		}

		c := New(context.Background(), Config{BaseURL: "http://x", FallbackKey: "env-key"}, creds)
		assert.Equal(t, "persisted-key", c.Credential())
	})

	t.Run("fallback when nothing persisted", func(t *testing.T) {
		c := New(context.Background(), Config{BaseURL: "http://x", FallbackKey: "env-key"}, emptyCreds())
		assert.Equal(t, "env-key", c.Credential())
	})

	t.Run("fallback when store read fails", func(t *testing.T) {
		creds := emptyCreds()
		creds.CredentialFunc = func(ctx context.Context) (string, error) {
			return "", errors.New("storage down")
		}

		c := New(context.Background(), Config{BaseURL: "http://x", FallbackKey: "env-key"}, creds)
		assert.Equal(t, "env-key", c.Credential())
	})
}

func TestClient_SetCredential(t *testing.T) {
	t.Run("replaces and persists", func(t *testing.T) {
		creds := emptyCreds()
		c := New(context.Background(), Config{BaseURL: "http://x"}, creds)

		c.SetCredential(context.Background(), "new-key")

		assert.Equal(t, "new-key", c.Credential())
		require.Len(t, creds.SetCredentialCalls(), 1)
		assert.Equal(t, "new-key", creds.SetCredentialCalls()[0].Key)
	})

	t.Run("persist failure swallowed, memory updated", func(t *testing.T) {
		creds := emptyCreds()
		creds.SetCredentialFunc = func(ctx context.Context, key string) error {
			return errors.New("disk full")
		}
		c := New(context.Background(), Config{BaseURL: "http://x"}, creds)

		assert.NotPanics(t, func() { c.SetCredential(context.Background(), "new-key") })
		assert.Equal(t, "new-key", c.Credential())
	})
}

func TestClient_RequestClassification(t *testing.T) {
	t.Run("401 yields ErrUnauthorized", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()

		c := New(context.Background(), Config{BaseURL: ts.URL}, emptyCreds())
		_, err := c.GetStatus(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("non-2xx with message yields RequestFailedError carrying it", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"x"}`))
		}))
		defer ts.Close()

		c := New(context.Background(), Config{BaseURL: ts.URL}, emptyCreds())
		_, err := c.GetStatus(context.Background())

		var reqErr *RequestFailedError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
		assert.Equal(t, "x", reqErr.Message)
	})

	t.Run("non-2xx without message falls back to status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("not json"))
		}))
		defer ts.Close()

		c := New(context.Background(), Config{BaseURL: ts.URL}, emptyCreds())
		_, err := c.GetStatus(context.Background())

		var reqErr *RequestFailedError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusBadGateway, reqErr.StatusCode)
		assert.Contains(t, reqErr.Message, "502")
	})

	t.Run("2xx with invalid json yields DecodeError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{{{"))
		}))
		defer ts.Close()

		c := New(context.Background(), Config{BaseURL: ts.URL}, emptyCreds())
		_, err := c.GetStatus(context.Background())

		var decErr *DecodeError
		assert.ErrorAs(t, err, &decErr)
	})

	t.Run("transport failure wrapped", func(t *testing.T) {
		c := New(context.Background(), Config{BaseURL: "http://127.0.0.1:1"}, emptyCreds())
		_, err := c.GetStatus(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "call GET /api/status")
	})
}

func TestClient_Headers(t *testing.T) {
	t.Run("api key attached when held", func(t *testing.T) {
		var gotKey, gotContentType string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-API-Key")
			gotContentType = r.Header.Get("Content-Type")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		c := New(context.Background(), Config{BaseURL: ts.URL, FallbackKey: "secret"}, emptyCreds())
		_, err := c.GetStatus(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "secret", gotKey)
		assert.Equal(t, "application/json", gotContentType)
	})

	t.Run("no api key header when absent", func(t *testing.T) {
		var hasKey bool
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasKey = r.Header["X-Api-Key"]
			_, _ = w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		c := New(context.Background(), Config{BaseURL: ts.URL}, emptyCreds())
		_, err := c.GetStatus(context.Background())
		require.NoError(t, err)
		assert.False(t, hasKey)
	})
}

func TestClient_Endpoints(t *testing.T) {
	type recorded struct {
		method, path, query, body string
	}
	var last recorded

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		last = recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: string(body)}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/status":
			_, _ = w.Write([]byte(`{"device":{"connected":true,"indoorTemp":20.1},"automation":{"enabled":true,"mode":"auto"},"price":{"zone":"SE3","ratio":0.8}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/settings":
			data, _ := json.Marshal(domain.DefaultSettings())
			_, _ = w.Write(data)
		case r.Method == http.MethodGet && r.URL.Path == "/api/prices":
			_, _ = w.Write([]byte(`[{"time":"2025-01-01T00:00:00Z","price":0.5,"zone":"SE3"}]`))
		default:
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}
	}))
	defer ts.Close()

	c := New(context.Background(), Config{BaseURL: ts.URL}, emptyCreds())
	ctx := context.Background()

	t.Run("get status", func(t *testing.T) {
		status, err := c.GetStatus(ctx)
		require.NoError(t, err)
		assert.True(t, status.Device.Connected)
		assert.InDelta(t, 20.1, status.Device.IndoorTemp, 0.001)
		assert.Equal(t, "auto", status.Automation.Mode)
		assert.InDelta(t, 0.8, status.Price.Ratio, 0.001)
	})

	t.Run("override with value", func(t *testing.T) {
		value := 21.5
		require.NoError(t, c.Override(ctx, "heat", &value))
		assert.Equal(t, http.MethodPost, last.method)
		assert.Equal(t, "/api/override", last.path)
		assert.JSONEq(t, `{"action":"heat","value":21.5}`, last.body)
	})

	t.Run("override without value omits it", func(t *testing.T) {
		require.NoError(t, c.Override(ctx, "resume", nil))
		assert.JSONEq(t, `{"action":"resume"}`, last.body)
	})

	t.Run("get settings", func(t *testing.T) {
		settings, err := c.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSettings(), *settings)
	})

	t.Run("put settings", func(t *testing.T) {
		settings := domain.DefaultSettings()
		settings.BiddingZone = "NO1"
		require.NoError(t, c.PutSettings(ctx, settings))
		assert.Equal(t, http.MethodPost, last.method)
		assert.Equal(t, "/api/settings", last.path)
		assert.Contains(t, last.body, `"biddingZone":"NO1"`)
	})

	t.Run("get prices with zone and hours", func(t *testing.T) {
		prices, err := c.GetPrices(ctx, "SE3", 48)
		require.NoError(t, err)
		require.Len(t, prices, 1)
		assert.InDelta(t, 0.5, prices[0].Price, 0.001)
		assert.Equal(t, "hours=48&zone=SE3", last.query)
	})

	t.Run("collect prices", func(t *testing.T) {
		require.NoError(t, c.CollectPrices(ctx, "SE4"))
		assert.Equal(t, http.MethodPost, last.method)
		assert.Equal(t, "/api/prices", last.path)
		assert.JSONEq(t, `{"zone":"SE4"}`, last.body)
	})
}
