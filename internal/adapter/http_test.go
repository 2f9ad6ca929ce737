// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-client/internal/adapter/adaptertest"
	"github.com/MKhiriev/go-user-client/internal/config"
	"github.com/MKhiriev/go-user-client/internal/logger"
	"github.com/MKhiriev/go-user-client/internal/utils"
	"github.com/MKhiriev/go-user-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpUserAdapter pointed at baseURL.
func newTestAdapter(t *testing.T, baseURL string) *httpUserAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: baseURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPUserAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpUserAdapter)
}

func seededServer(t *testing.T) *adaptertest.Server {
	t.Helper()
	srv := adaptertest.NewServer(
		models.User{"id": "1", "email": "ada@example.com", "isConnected": false, "wallet": 5.0},
		models.User{"id": "42", "email": "bob@example.com", "isConnected": true, "wallet": 20.0},
	)
	t.Cleanup(srv.Close)
	return srv
}

func lastRequest(t *testing.T, srv *adaptertest.Server) adaptertest.Request {
	t.Helper()
	reqs := srv.Requests()
	require.NotEmpty(t, reqs)
	return reqs[len(reqs)-1]
}

// ── NewHTTPUserAdapter ──────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8080/users", want: "http://localhost:8080/users"},
		{name: "trailing slash", raw: "https://api.example.com/users/", want: "https://api.example.com/users"},
		{name: "no scheme", raw: "localhost:8080/users", want: "http://localhost:8080/users"},
		{name: "spaces", raw: "  http://h/users  ", want: "http://h/users"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http:///users", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPUserAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPUserAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter http address")
}

// ── ListUsers / GetUser ─────────────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	users, err := a.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "1", users[0].ID())
	assert.Equal(t, "bob@example.com", users[1].Email())

	req := lastRequest(t, srv)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/users", req.Path)
}

func TestGetUser_Success(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	user, err := a.GetUser(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "42", user.ID())
	assert.True(t, user.IsConnected())
	// numbers are kept verbatim
	assert.Equal(t, json.Number("20"), user["wallet"])

	req := lastRequest(t, srv)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/users/42", req.Path)
}

func TestGetUser_NotFound(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	_, err := a.GetUser(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "user not found", statusErr.Body)
}

func TestGetUser_EscapesID(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	_, err := a.GetUser(context.Background(), "a/b")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "/users/a/b", lastRequest(t, srv).Path)
}

// ── PUT endpoints ───────────────────────────────────────────────────────────

func TestUpdateUser_SendsFullPayload(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	got, err := a.UpdateUser(context.Background(), "1", models.User{"email": "new@example.com", "name": "Ada"})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email())
	assert.Equal(t, "Ada", got["name"])
	_, hasWallet := got["wallet"]
	assert.False(t, hasWallet, "full replacement drops fields not sent")

	req := lastRequest(t, srv)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/users/1", req.Path)
	assert.JSONEq(t, `{"email":"new@example.com","name":"Ada"}`, string(req.Body))
}

func TestUpdateIsConnected(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	got, err := a.UpdateIsConnected(context.Background(), "1", true)

	require.NoError(t, err)
	assert.True(t, got.IsConnected())

	req := lastRequest(t, srv)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/users/1/isConnected", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"isConnected":true}`, string(req.Body))
}

func TestUpdateEmail(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	got, err := a.UpdateEmail(context.Background(), "42", "robert@example.com")

	require.NoError(t, err)
	assert.Equal(t, "robert@example.com", got.Email())

	req := lastRequest(t, srv)
	assert.Equal(t, "/users/42/email", req.Path)
	assert.JSONEq(t, `{"email":"robert@example.com"}`, string(req.Body))
}

func TestAddToWallet(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	got, err := a.AddToWallet(context.Background(), "42", 10)

	require.NoError(t, err)
	balance, ok := got.Wallet()
	require.True(t, ok)
	assert.Equal(t, 30.0, balance)

	req := lastRequest(t, srv)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/users/42/wallet", req.Path)
	assert.JSONEq(t, `{"amount":10}`, string(req.Body))
}

func TestDeductFromWallet(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	got, err := a.DeductFromWallet(context.Background(), "42", 7.5)

	require.NoError(t, err)
	balance, _ := got.Wallet()
	assert.Equal(t, 12.5, balance)

	req := lastRequest(t, srv)
	assert.Equal(t, "/users/42/wallet/deduct", req.Path)
	assert.JSONEq(t, `{"amount":7.5}`, string(req.Body))
}

func TestDeductFromWallet_BadRequest(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	_, err := a.DeductFromWallet(context.Background(), "1", 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "bad request: insufficient funds", err.Error())
}

// ── one request per call, request ids ──────────────────────────────────────

func TestEachOperationIssuesExactlyOneRequest(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())
	ctx := context.Background()

	calls := []func() error{
		func() error { _, err := a.ListUsers(ctx); return err },
		func() error { _, err := a.GetUser(ctx, "1"); return err },
		func() error { _, err := a.UpdateUser(ctx, "1", models.User{"email": "x"}); return err },
		func() error { _, err := a.UpdateIsConnected(ctx, "1", true); return err },
		func() error { _, err := a.UpdateEmail(ctx, "1", "y"); return err },
		func() error { _, err := a.AddToWallet(ctx, "1", 1); return err },
		func() error { _, err := a.DeductFromWallet(ctx, "1", 1); return err },
	}

	for i, call := range calls {
		before := len(srv.Requests())
		require.NoError(t, call())
		assert.Equal(t, before+1, len(srv.Requests()), "call %d", i)
	}
}

func TestRequestID_FromContext(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	ctx := utils.WithRequestID(context.Background(), "trace-me")
	_, err := a.GetUser(ctx, "1")

	require.NoError(t, err)
	assert.Equal(t, "trace-me", lastRequest(t, srv).RequestID)
}

func TestRequestID_Generated(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	_, err := a.GetUser(context.Background(), "1")
	require.NoError(t, err)
	_, err = a.GetUser(context.Background(), "1")
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.NotEmpty(t, reqs[0].RequestID)
	assert.NotEqual(t, reqs[0].RequestID, reqs[1].RequestID)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := seededServer(t)
			srv.FailWith(tt.status, "boom")
			a := newTestAdapter(t, srv.BaseURL())

			_, err := a.ListUsers(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestStatusMapping_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()
	a := newTestAdapter(t, srv.URL+"/users")

	_, err := a.GetUser(context.Background(), "1")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTeapot, statusErr.StatusCode)
	assert.Nil(t, errors.Unwrap(statusErr))
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL + "/users"
	srv.Close()

	a := newTestAdapter(t, baseURL)
	_, err := a.AddToWallet(context.Background(), "1", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "add to wallet request")
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()
	a := newTestAdapter(t, srv.URL+"/users")

	_, err := a.GetUser(context.Background(), "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode get user response")
}

func TestListUsers_NonArrayBody(t *testing.T) {
	for _, body := range []string{
		`{"content":[{"id":1}],"totalElements":1}`,
		`{"id":1,"email":"ada@example.com"}`,
	} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()
			a := newTestAdapter(t, srv.URL+"/users")

			users, err := a.ListUsers(context.Background())

			require.Error(t, err)
			assert.Nil(t, users)
			assert.Contains(t, err.Error(), "decode list users response")
		})
	}
}

func TestEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()
	a := newTestAdapter(t, srv.URL+"/users")

	user, err := a.UpdateIsConnected(context.Background(), "1", false)

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestContextCancelled(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.ListUsers(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── logging ─────────────────────────────────────────────────────────────────

func TestResponseLog_UsesLoggerFromContext(t *testing.T) {
	srv := seededServer(t)
	a := newTestAdapter(t, srv.BaseURL())

	var buf bytes.Buffer
	reqLog := logger.NewLogger("test", &buf).WithRequestID("ctx-req")
	ctx := reqLog.WithContext(utils.WithRequestID(context.Background(), "ctx-req"))

	_, err := a.GetUser(ctx, "1")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "user api response")
	assert.Contains(t, out, `"request_id":"ctx-req"`)
	assert.Contains(t, out, `"status":200`)
}

func TestResponseLog_FallsBackToAdapterLogger(t *testing.T) {
	srv := seededServer(t)

	var buf bytes.Buffer
	a, err := NewHTTPUserAdapter(config.ClientAdapter{HTTPAddress: srv.BaseURL(), RequestTimeout: time.Second}, logger.NewLogger("test", &buf))
	require.NoError(t, err)

	_, err = a.GetUser(context.Background(), "1")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "user api response")
	assert.Contains(t, out, `"component":"user_api"`)
	assert.Contains(t, out, lastRequest(t, srv).RequestID)
}
