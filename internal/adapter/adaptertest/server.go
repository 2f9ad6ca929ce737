// Package adaptertest provides an in-memory user API for tests of code
// that talks to it through [adapter.UserAPI].
//
// The server routes the same resource tree the real backend exposes
// (GET /users, GET|PUT /users/{id}, PUT /users/{id}/isConnected, /email,
// /wallet and /wallet/deduct), applies the changes to an in-memory record
// set, and records every request it receives.
package adaptertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"

	"github.com/MKhiriev/go-user-client/models"
	"github.com/go-chi/chi/v5"
)

// Request is one request observed by the server.
type Request struct {
	Method      string
	Path        string
	ContentType string
	RequestID   string
	Body        []byte
}

// Server is a running fake user API. Close it when done.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	users      map[string]models.User
	requests   []Request
	failStatus int
	failBody   string
}

// NewServer starts a server seeded with users, keyed by their ID().
func NewServer(users ...models.User) *Server {
	s := &Server{users: make(map[string]models.User, len(users))}
	for _, u := range users {
		s.users[u.ID()] = cloneUser(u)
	}

	router := chi.NewRouter()
	router.Use(s.record, s.injectFailure)
	router.Route("/users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Get("/{id}", s.getUser)
		r.Put("/{id}", s.replaceUser)
		r.Put("/{id}/isConnected", s.updateIsConnected)
		r.Put("/{id}/email", s.updateEmail)
		r.Put("/{id}/wallet", s.addToWallet)
		r.Put("/{id}/wallet/deduct", s.deductFromWallet)
	})

	s.Server = httptest.NewServer(router)
	return s
}

// BaseURL returns the root resource URL to configure the adapter with.
func (s *Server) BaseURL() string {
	return s.URL + "/users"
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// FailWith makes every following request answer status with body.
// A zero status restores normal behaviour.
func (s *Server) FailWith(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus, s.failBody = status, body
}

// User returns the stored record for id.
func (s *Server) User(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return cloneUser(u), ok
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-ID"),
			Body:        body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, body := s.failStatus, s.failBody
		s.mu.Unlock()

		if status != 0 {
			http.Error(w, body, status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, cloneUser(s.users[id]))
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, users)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	s.withUser(w, r, func(u models.User) (int, string) { return 0, "" })
}

func (s *Server) replaceUser(w http.ResponseWriter, r *http.Request) {
	var replacement models.User
	if err := json.NewDecoder(r.Body).Decode(&replacement); err != nil {
		http.Error(w, "invalid user payload", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")

	s.withUser(w, r, func(u models.User) (int, string) {
		for k := range u {
			delete(u, k)
		}
		for k, v := range replacement {
			u[k] = v
		}
		u[models.FieldID] = id
		return 0, ""
	})
}

func (s *Server) updateIsConnected(w http.ResponseWriter, r *http.Request) {
	var req models.ConnectedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid isConnected payload", http.StatusBadRequest)
		return
	}

	s.withUser(w, r, func(u models.User) (int, string) {
		u[models.FieldIsConnected] = req.IsConnected
		return 0, ""
	})
}

func (s *Server) updateEmail(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid email payload", http.StatusBadRequest)
		return
	}

	s.withUser(w, r, func(u models.User) (int, string) {
		u[models.FieldEmail] = req.Email
		return 0, ""
	})
}

func (s *Server) addToWallet(w http.ResponseWriter, r *http.Request) {
	var req models.WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid wallet payload", http.StatusBadRequest)
		return
	}

	s.withUser(w, r, func(u models.User) (int, string) {
		balance, _ := u.Wallet()
		u[models.FieldWallet] = balance + req.Amount
		return 0, ""
	})
}

func (s *Server) deductFromWallet(w http.ResponseWriter, r *http.Request) {
	var req models.WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid wallet payload", http.StatusBadRequest)
		return
	}

	s.withUser(w, r, func(u models.User) (int, string) {
		balance, _ := u.Wallet()
		if balance < req.Amount {
			return http.StatusBadRequest, "insufficient funds"
		}
		u[models.FieldWallet] = balance - req.Amount
		return 0, ""
	})
}

// withUser looks up the {id} record, applies mutate under the lock and
// answers with the resulting record. A non-zero status from mutate is sent
// as an error instead.
func (s *Server) withUser(w http.ResponseWriter, r *http.Request, mutate func(u models.User) (int, string)) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	u, ok := s.users[id]
	if !ok {
		s.mu.Unlock()
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	status, msg := mutate(u)
	snapshot := cloneUser(u)
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, msg, status)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func cloneUser(u models.User) models.User {
	if u == nil {
		return nil
	}
	c := make(models.User, len(u))
	for k, v := range u {
		c[k] = v
	}
	return c
}
