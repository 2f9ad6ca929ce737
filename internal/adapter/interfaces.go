// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// remote user API.
//
// The primary abstraction is [UserAPI], which decouples the service layer
// from HTTP. [NewHTTPUserAdapter] is the resty-backed implementation: one
// request per method, JSON in and out, and non-2xx statuses mapped to
// [StatusError] values that unwrap to the sentinels in errors.go, so callers
// can use [errors.Is] (e.g. [ErrNotFound] for 404) or [errors.As] to read the
// status code.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_api_mock.go -package=mock

// UserAPI is the remote user resource. Every method issues exactly one HTTP
// request relative to the configured root resource URL and returns the
// decoded response body without reshaping it.
type UserAPI interface {
	// ListUsers issues GET base and returns the decoded collection.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser issues GET base/{id}.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpdateUser issues PUT base/{id} with user as the full replacement
	// payload and returns the record the server sends back.
	UpdateUser(ctx context.Context, userID string, user models.User) (models.User, error)

	// UpdateIsConnected issues PUT base/{id}/isConnected with
	// {"isConnected": connected}.
	UpdateIsConnected(ctx context.Context, userID string, connected bool) (models.User, error)

	// UpdateEmail issues PUT base/{id}/email with {"email": email}.
	UpdateEmail(ctx context.Context, userID string, email string) (models.User, error)

	// AddToWallet issues PUT base/{id}/wallet with {"amount": amount}.
	AddToWallet(ctx context.Context, userID string, amount float64) (models.User, error)

	// DeductFromWallet issues PUT base/{id}/wallet/deduct with
	// {"amount": amount}.
	DeductFromWallet(ctx context.Context, userID string, amount float64) (models.User, error)
}
