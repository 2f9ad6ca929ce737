// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line front end of the user client.
//
// An [App] maps one cobra command (list, get, login, wallet-add, ...) onto one
// [service.UserService] call and renders the returned records as tables.
package client
