// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectedRequest is the body of PUT /{id}/isConnected.
type ConnectedRequest struct {
	IsConnected bool `json:"isConnected"`
}

// EmailRequest is the body of PUT /{id}/email.
type EmailRequest struct {
	Email string `json:"email"`
}

// WalletRequest is the body of PUT /{id}/wallet and PUT /{id}/wallet/deduct.
// Amount is sent as given; the server decides whether it is acceptable.
type WalletRequest struct {
	Amount float64 `json:"amount"`
}
