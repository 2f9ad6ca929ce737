package service

import (
	"context"

	"golang.org/x/text/message"

	"github.com/MKhiriev/go-user-client/internal/adapter"
	"github.com/MKhiriev/go-user-client/internal/logger"
	"github.com/MKhiriev/go-user-client/internal/store"
	"github.com/MKhiriev/go-user-client/internal/utils"
	"github.com/MKhiriev/go-user-client/models"
)

type requestIDGenerator interface {
	Generate() string
}

type userService struct {
	adapter adapter.UserAPI
	session store.SessionStore
	printer *message.Printer
	ids     requestIDGenerator

	logger *logger.Logger
}

// NewUserService returns a [UserService] that talks to userAPI, keeps the
// active user id in session and renders error messages with printer.
func NewUserService(userAPI adapter.UserAPI, session store.SessionStore, printer *message.Printer, logger *logger.Logger) UserService {
	return &userService{
		adapter: userAPI,
		session: session,
		printer: printer,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger.GetChildLogger("user_service"),
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, log := s.withRequestID(ctx)

	users, err := s.adapter.ListUsers(ctx)
	if err != nil {
		return nil, s.fail(log, OpListUsers, err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	ctx, log := s.withRequestID(ctx)

	user, err := s.adapter.GetUser(ctx, userID)
	if err != nil {
		return nil, s.fail(log, OpGetUser, err)
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, user models.User) (models.User, error) {
	ctx, log := s.withRequestID(ctx)

	updated, err := s.adapter.UpdateUser(ctx, userID, user)
	if err != nil {
		return nil, s.fail(log, OpUpdateUser, err)
	}

	return updated, nil
}

func (s *userService) UpdateIsConnected(ctx context.Context, userID string, connected bool) (models.User, error) {
	ctx, log := s.withRequestID(ctx)

	user, reqErr := s.updateIsConnected(ctx, userID, connected)
	if reqErr != nil {
		s.logFailure(log, reqErr)
		return nil, reqErr
	}

	return user, nil
}

// updateIsConnected is UpdateIsConnected without logging, for callers that
// wrap and log the failure themselves.
func (s *userService) updateIsConnected(ctx context.Context, userID string, connected bool) (models.User, *RequestError) {
	user, err := s.adapter.UpdateIsConnected(ctx, userID, connected)
	if err != nil {
		return nil, newRequestError(s.printer, OpUpdateIsConnected, err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, userID string) (models.User, error) {
	ctx, log := s.withRequestID(ctx)

	user, reqErr := s.updateIsConnected(ctx, userID, true)
	if reqErr != nil {
		return nil, s.fail(log, OpLogin, reqErr)
	}

	// the remote flag stays set if this write fails
	if err := s.session.Set(ctx, store.ActiveUserIDKey, userID); err != nil {
		return nil, s.fail(log, OpLogin, err)
	}
	log.Info().Str("user_id", userID).Msg("user logged in")

	return user, nil
}

func (s *userService) Logout(ctx context.Context, userID string) (models.User, error) {
	ctx, log := s.withRequestID(ctx)

	user, reqErr := s.updateIsConnected(ctx, userID, false)
	if reqErr != nil {
		return nil, s.fail(log, OpLogout, reqErr)
	}

	if err := s.session.Remove(ctx, store.ActiveUserIDKey); err != nil {
		return nil, s.fail(log, OpLogout, err)
	}
	log.Info().Str("user_id", userID).Msg("user logged out")

	return user, nil
}

func (s *userService) ActiveUserID(ctx context.Context) (string, bool) {
	userID, ok, err := s.session.Get(ctx, store.ActiveUserIDKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("reading active user id failed, treating as absent")
		return "", false
	}

	return userID, ok
}

func (s *userService) ClearSession(ctx context.Context) error {
	return s.session.Remove(ctx, store.ActiveUserIDKey)
}

func (s *userService) UpdateEmail(ctx context.Context, userID, email string) (models.User, error) {
	ctx, log := s.withRequestID(ctx)

	user, err := s.adapter.UpdateEmail(ctx, userID, email)
	if err != nil {
		return nil, s.fail(log, OpUpdateEmail, err)
	}

	return user, nil
}

func (s *userService) AddToWallet(ctx context.Context, userID string, amount float64) (models.User, error) {
	ctx, log := s.withRequestID(ctx)

	user, err := s.adapter.AddToWallet(ctx, userID, amount)
	if err != nil {
		return nil, s.fail(log, OpAddToWallet, err)
	}

	return user, nil
}

func (s *userService) DeductFromWallet(ctx context.Context, userID string, amount float64) (models.User, error) {
	ctx, log := s.withRequestID(ctx)

	user, err := s.adapter.DeductFromWallet(ctx, userID, amount)
	if err != nil {
		return nil, s.fail(log, OpDeductFromWallet, err)
	}

	return user, nil
}

// withRequestID makes sure ctx carries a request id and the matching
// logger, so the outbound call and every log line of one operation share it.
func (s *userService) withRequestID(ctx context.Context) (context.Context, *logger.Logger) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = s.ids.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}

	log := s.logger.WithRequestID(requestID)
	return log.WithContext(ctx), log
}

func (s *userService) fail(log *logger.Logger, op Operation, err error) error {
	reqErr := newRequestError(s.printer, op, err)
	s.logFailure(log, reqErr)
	return reqErr
}

func (s *userService) logFailure(log *logger.Logger, reqErr *RequestError) {
	log.Error().Err(reqErr.Err).Str("op", string(reqErr.Op)).Msg("user api operation failed")
}
