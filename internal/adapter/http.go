package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-client/internal/config"
	"github.com/MKhiriev/go-user-client/internal/logger"
	"github.com/MKhiriev/go-user-client/internal/utils"
	"github.com/MKhiriev/go-user-client/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type requestIDGenerator interface {
	Generate() string
}

type httpUserAdapter struct {
	client *utils.HTTPClient
	ids    requestIDGenerator

	logger *logger.Logger
}

// NewHTTPUserAdapter constructs the HTTP/REST implementation of [UserAPI].
// It normalises and validates the root resource URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with it
// and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPUserAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (UserAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpUserAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger.GetChildLogger("user_api"),
	}
	h.client.
		OnAfterResponse(h.logResponse).
		OnError(h.logError)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListUsers implements [UserAPI]. GET base.
func (h *httpUserAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.newRequest(ctx).Get("")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// The list endpoint must answer a bare JSON array; a paged envelope or a
	// single object is a decode error.
	var users []models.User
	if err = decodeBody(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode list users response: %w", err)
	}

	return users, nil
}

// GetUser implements [UserAPI]. GET base/{id}.
func (h *httpUserAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	resp, err := h.newRequest(ctx).
		SetPathParam("id", userID).
		Get("/{id}")
	if err != nil {
		return nil, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var user models.User
	if err = decodeBody(resp.Body(), &user); err != nil {
		return nil, fmt.Errorf("decode get user response: %w", err)
	}

	return user, nil
}

// UpdateUser implements [UserAPI]. PUT base/{id} with the full record.
func (h *httpUserAdapter) UpdateUser(ctx context.Context, userID string, user models.User) (models.User, error) {
	return h.put(ctx, "update user", "/{id}", userID, user)
}

// UpdateIsConnected implements [UserAPI]. PUT base/{id}/isConnected.
func (h *httpUserAdapter) UpdateIsConnected(ctx context.Context, userID string, connected bool) (models.User, error) {
	return h.put(ctx, "update isConnected", "/{id}/isConnected", userID, models.ConnectedRequest{IsConnected: connected})
}

// UpdateEmail implements [UserAPI]. PUT base/{id}/email.
func (h *httpUserAdapter) UpdateEmail(ctx context.Context, userID string, email string) (models.User, error) {
	return h.put(ctx, "update email", "/{id}/email", userID, models.EmailRequest{Email: email})
}

// AddToWallet implements [UserAPI]. PUT base/{id}/wallet.
func (h *httpUserAdapter) AddToWallet(ctx context.Context, userID string, amount float64) (models.User, error) {
	return h.put(ctx, "add to wallet", "/{id}/wallet", userID, models.WalletRequest{Amount: amount})
}

// DeductFromWallet implements [UserAPI]. PUT base/{id}/wallet/deduct.
func (h *httpUserAdapter) DeductFromWallet(ctx context.Context, userID string, amount float64) (models.User, error) {
	return h.put(ctx, "deduct from wallet", "/{id}/wallet/deduct", userID, models.WalletRequest{Amount: amount})
}

func (h *httpUserAdapter) put(ctx context.Context, op, path, userID string, body any) (models.User, error) {
	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", userID).
		SetBody(body).
		Put(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var user models.User
	if err = decodeBody(resp.Body(), &user); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", op, err)
	}

	return user, nil
}

func (h *httpUserAdapter) newRequest(ctx context.Context) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)
}

// requestLogger prefers the request-scoped logger the caller put in ctx.
func (h *httpUserAdapter) requestLogger(req *resty.Request) *logger.Logger {
	return logger.FromContext(req.Context(), h.logger.WithRequestID(req.Header.Get(requestIDHeader)))
}

func (h *httpUserAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.requestLogger(resp.Request).Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("user api response")
	return nil
}

func (h *httpUserAdapter) logError(req *resty.Request, err error) {
	h.requestLogger(req).Warn().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("user api request failed")
}

// decodeBody decodes a JSON body keeping numbers as json.Number. An empty
// body leaves v untouched.
func decodeBody(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
