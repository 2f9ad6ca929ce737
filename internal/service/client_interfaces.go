package service

import (
	"context"

	"github.com/MKhiriev/go-user-client/models"
)

// UserService is the client-side façade over the remote user API.
//
// Every request-issuing method performs exactly one outbound call and returns
// the decoded response body unchanged. Failures are returned as *RequestError.
// Nothing is validated, retried or cached.
type UserService interface {
	// ListUsers fetches every user record.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser fetches the record of userID.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpdateUser replaces the record of userID with user.
	UpdateUser(ctx context.Context, userID string, user models.User) (models.User, error)

	// UpdateIsConnected sets the remote connected flag of userID.
	UpdateIsConnected(ctx context.Context, userID string, connected bool) (models.User, error)

	// Login marks userID as connected and, once the server accepted it,
	// remembers userID as the active user. A failed flag update leaves the
	// session untouched.
	Login(ctx context.Context, userID string) (models.User, error)

	// Logout marks userID as disconnected and, once the server accepted it,
	// forgets the active user.
	Logout(ctx context.Context, userID string) (models.User, error)

	// ActiveUserID returns the remembered active user id. It never fails:
	// a session read error is logged and reported as absence.
	ActiveUserID(ctx context.Context) (string, bool)

	// ClearSession forgets the active user without contacting the server.
	ClearSession(ctx context.Context) error

	// UpdateEmail changes the email of userID.
	UpdateEmail(ctx context.Context, userID, email string) (models.User, error)

	// AddToWallet credits amount to the wallet of userID.
	AddToWallet(ctx context.Context, userID string, amount float64) (models.User, error)

	// DeductFromWallet debits amount from the wallet of userID.
	DeductFromWallet(ctx context.Context, userID string, amount float64) (models.User, error)
}
