package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eksemail/internal/config"
	"eksemail/internal/domain/notification"
	"eksemail/internal/infra/template"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	sent []*notification.Message
	err  error
}

func (f *fakeProvider) Send(ctx context.Context, msg *notification.Message) (string, error) {
	f.sent = append(f.sent, msg)
	if f.err != nil {
		return "", f.err
	}
	return "msg-1", nil
}

func (f *fakeProvider) Name() string { return "fake" }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"authorization", "x-client-info", "apikey", "content-type", "X-API-Key"},
		},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, provider notification.Provider) *gin.Engine {
	t.Helper()

	engine, err := template.NewEngine()
	require.NoError(t, err)

	svc := notification.NewService(engine, provider, nil, nil)
	return New(cfg, notification.NewHandler(svc))
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://eksejabula.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendSuccess(t *testing.T) {
	provider := &fakeProvider{}
	r := newTestRouter(t, testConfig(), provider)

	w := postJSON(r, "/api/v1/send", `{"template":"welcome","to":"a@b.com","subject":"Hi","data":{"name":"Sam"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/json")
	require.JSONEq(t, `{"success":true}`, w.Body.String())

	require.Len(t, provider.sent, 1)
	require.Equal(t, "a@b.com", provider.sent[0].To)
	require.Equal(t, "Hi", provider.sent[0].Subject)
	require.True(t, strings.HasPrefix(provider.sent[0].HTML, "<!DOCTYPE html>"))
}

func TestSendUnknownTemplate(t *testing.T) {
	provider := &fakeProvider{}
	r := newTestRouter(t, testConfig(), provider)

	w := postJSON(r, "/api/v1/send", `{"template":"does-not-exist","to":"a@b.com","subject":"Hi","data":{}}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp["error"], "not registered")
	require.Empty(t, provider.sent)
}

func TestSendProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("dial tcp: connection refused")}
	r := newTestRouter(t, testConfig(), provider)

	w := postJSON(r, "/api/v1/send", `{"template":"welcome","to":"a@b.com","subject":"Hi","data":{"name":"Sam"}}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp["error"], "connection refused")
}

func TestSendMalformedBody(t *testing.T) {
	provider := &fakeProvider{}
	r := newTestRouter(t, testConfig(), provider)

	w := postJSON(r, "/api/v1/send", `{"template": welcome`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["error"])
	require.Empty(t, provider.sent)
}

func TestPreflight(t *testing.T) {
	r := newTestRouter(t, testConfig(), &fakeProvider{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/send", nil)
	req.Header.Set("Origin", "https://eksejabula.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "authorization")
}

func TestCORSHeadersOnPost(t *testing.T) {
	r := newTestRouter(t, testConfig(), &fakeProvider{})

	w := postJSON(r, "/api/v1/send", `{"template":"welcome","to":"a@b.com","subject":"Hi","data":{"name":"Sam"}}`)

	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthEnforcedWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.APIKeys = []string{"secret-key"}
	provider := &fakeProvider{}
	r := newTestRouter(t, cfg, provider)

	w := postJSON(r, "/api/v1/send", `{"template":"welcome","to":"a@b.com","subject":"Hi","data":{"name":"Sam"}}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, provider.sent)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/send", strings.NewReader(`{"template":"welcome","to":"a@b.com","subject":"Hi","data":{"name":"Sam"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "secret-key")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, testConfig(), &fakeProvider{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}
