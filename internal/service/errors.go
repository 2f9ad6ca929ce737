package service

import (
	"github.com/MKhiriev/go-user-client/internal/app"
)

// Operation names a request-issuing operation of [UserService].
type Operation string

const (
	OpListUsers         Operation = "list users"
	OpGetUser           Operation = "get user"
	OpUpdateUser        Operation = "update user"
	OpUpdateIsConnected Operation = "update isConnected"
	OpLogin             Operation = "login"
	OpLogout            Operation = "logout"
	OpUpdateEmail       Operation = "update email"
	OpAddToWallet       Operation = "add to wallet"
	OpDeductFromWallet  Operation = "deduct from wallet"
)

// messageKeys maps each operation to its localized error template.
var messageKeys = map[Operation]string{
	OpListUsers:         app.MsgListUsersFailed,
	OpGetUser:           app.MsgGetUserFailed,
	OpUpdateUser:        app.MsgUpdateUserFailed,
	OpUpdateIsConnected: app.MsgUpdateIsConnectedFailed,
	OpLogin:             app.MsgLoginFailed,
	OpLogout:            app.MsgLogoutFailed,
	OpUpdateEmail:       app.MsgUpdateEmailFailed,
	OpAddToWallet:       app.MsgAddToWalletFailed,
	OpDeductFromWallet:  app.MsgDeductFromWalletFailed,
}

// RequestError is the single error kind returned by failing [UserService]
// operations.
//
// Message is the operation's localized phrase followed by the cause's text.
// Err is the cause itself, so errors.Is and errors.As reach through to the
// adapter's *adapter.StatusError and its sentinels.
type RequestError struct {
	Op      Operation
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
