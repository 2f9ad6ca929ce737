// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing message catalog of the client.
//
// Every Msg* constant is an English message key. The catalog carries a French
// and an English rendering for each key; French is the default locale, so
// errors read the same way the legacy client printed them. Use [NewPrinter]
// to obtain a printer for a configured locale.
package app

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Error templates. Each takes the cause's message text as its single argument.
const (
	MsgListUsersFailed         = "error fetching users: %s"
	MsgGetUserFailed           = "error fetching user details: %s"
	MsgUpdateUserFailed        = "error updating user: %s"
	MsgUpdateIsConnectedFailed = "error updating isConnected: %s"
	MsgLoginFailed             = "error logging in user: %s"
	MsgLogoutFailed            = "error logging out user: %s"
	MsgUpdateEmailFailed       = "error updating user email: %s"
	MsgAddToWalletFailed       = "error adding money to user wallet: %s"
	MsgDeductFromWalletFailed  = "error deducting from user wallet: %s"
)

// Command-line messages.
const (
	MsgNoActiveUser   = "no active user"
	MsgActiveUser     = "active user: %s"
	MsgSessionCleared = "session cleared"
	MsgNoUsers        = "no users"
)

// DefaultLocale is used when a configured locale matches nothing in the catalog.
var DefaultLocale = language.French

var supportedLocales = []language.Tag{language.French, language.English}

var french = map[string]string{
	MsgListUsersFailed:         "Erreur lors de la récupération des utilisateurs: %s",
	MsgGetUserFailed:           "Erreur lors de la récupération des détails de l'utilisateur: %s",
	MsgUpdateUserFailed:        "Erreur lors de la mise à jour de l'utilisateur: %s",
	MsgUpdateIsConnectedFailed: "Erreur lors de la mise à jour de isConnected: %s",
	MsgLoginFailed:             "Erreur lors de la connexion de l'utilisateur: %s",
	MsgLogoutFailed:            "Erreur lors de la déconnexion de l'utilisateur: %s",
	MsgUpdateEmailFailed:       "Erreur lors de la mise à jour de l'email de l'utilisateur: %s",
	MsgAddToWalletFailed:       "Erreur lors de l'ajout d'argent au portefeuille de l'utilisateur: %s",
	MsgDeductFromWalletFailed:  "Erreur lors de la déduction du portefeuille de l'utilisateur: %s",

	MsgNoActiveUser:   "Aucun utilisateur connecté",
	MsgActiveUser:     "Utilisateur actif: %s",
	MsgSessionCleared: "Session effacée",
	MsgNoUsers:        "Aucun utilisateur",
}

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(DefaultLocale))
	for key, msg := range french {
		_ = b.SetString(language.French, key, msg)
		_ = b.SetString(language.English, key, key)
	}
	return b
}

// MatchLocale returns the catalog locale closest to locale. Unknown or
// unparsable values fall back to [DefaultLocale].
func MatchLocale(locale string) language.Tag {
	matcher := language.NewMatcher(supportedLocales)
	_, index := language.MatchStrings(matcher, locale)
	return supportedLocales[index]
}

// NewPrinter returns a message printer for the catalog locale closest to locale.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(MatchLocale(locale), message.Catalog(messages))
}
