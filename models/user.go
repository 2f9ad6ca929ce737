// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// User is a user record exactly as the user API returns it.
//
// The client does not own the user schema, so the record is kept as an opaque
// JSON object. Numbers are held as [json.Number] to survive a round trip
// without precision loss. The accessor methods below only read well-known
// fields; nothing in the client rewrites a record before handing it back.
type User map[string]any

// Well-known field names of a user record.
const (
	FieldID          = "id"
	FieldEmail       = "email"
	FieldIsConnected = "isConnected"
	FieldWallet      = "wallet"
)

// ID returns the record identifier rendered as a string. Numeric ids are
// formatted without an exponent. Returns "" when the field is missing.
func (u User) ID() string {
	v, ok := u[FieldID]
	if !ok || v == nil {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprint(id)
	}
}

// Email returns the email field, or "" if it is missing or not a string.
func (u User) Email() string {
	email, _ := u[FieldEmail].(string)
	return email
}

// IsConnected reports the isConnected flag. A missing or non-boolean field
// reads as false.
func (u User) IsConnected() bool {
	connected, _ := u[FieldIsConnected].(bool)
	return connected
}

// Wallet returns the wallet balance and whether it could be read as a number.
func (u User) Wallet() (float64, bool) {
	switch w := u[FieldWallet].(type) {
	case json.Number:
		f, err := w.Float64()
		return f, err == nil
	case float64:
		return w, true
	case int:
		return float64(w), true
	case int64:
		return float64(w), true
	default:
		return 0, false
	}
}
