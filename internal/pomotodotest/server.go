// Package pomotodotest provides an in-memory fake of the Pomotodo API
// for tests. It speaks the same routes, status codes, and error bodies
// as the real service, backed by per-resource maps instead of storage.
package pomotodotest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kamyuentse/go-pomotodo/pkg/pomotodo"
)

// Server is a fake Pomotodo API server.
type Server struct {
	hs    *httptest.Server
	token string

	mu      sync.Mutex
	account pomotodo.Account
	pomos   map[uuid.UUID]*pomotodo.Pomo
	todos   map[uuid.UUID]*pomotodo.Todo
	subs    map[uuid.UUID][]*pomotodo.SubTodo
}

// New starts a fake server that accepts the given access token.
func New(token string) *Server {
	s := &Server{
		token: token,
		account: pomotodo.Account{
			Username:     "tester",
			Email:        "tester@example.com",
			Timezone:     "UTC",
			RegisterTime: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		pomos: make(map[uuid.UUID]*pomotodo.Pomo),
		todos: make(map[uuid.UUID]*pomotodo.Todo),
		subs:  make(map[uuid.UUID][]*pomotodo.SubTodo),
	}

	r := chi.NewRouter()
	r.Use(s.auth)

	r.Get("/account", s.getAccount)

	r.Route("/pomos", func(r chi.Router) {
		r.Get("/", s.listPomos)
		r.Post("/", s.createPomo)
		r.Get("/{uuid}", s.getPomo)
		r.Patch("/{uuid}", s.updatePomo)
		r.Delete("/{uuid}", s.deletePomo)
	})

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", s.listTodos)
		r.Post("/", s.createTodo)
		r.Get("/{uuid}", s.getTodo)
		r.Patch("/{uuid}", s.updateTodo)
		r.Delete("/{uuid}", s.deleteTodo)

		r.Route("/{uuid}/sub_todos", func(r chi.Router) {
			r.Get("/", s.listSubTodos)
			r.Post("/", s.createSubTodo)
			r.Get("/{sub}", s.getSubTodo)
			r.Patch("/{sub}", s.updateSubTodo)
			r.Delete("/{sub}", s.deleteSubTodo)
		})
	})

	s.hs = httptest.NewServer(r)
	return s
}

// BaseURL returns the URL clients should use as the API base.
func (s *Server) BaseURL() string {
	return s.hs.URL
}

// Client returns an HTTP client configured for the fake server.
func (s *Server) Client() *http.Client {
	return s.hs.Client()
}

// Close shuts the server down.
func (s *Server) Close() {
	s.hs.Close()
}

// SetAccount replaces the account returned by /account.
func (s *Server) SetAccount(account pomotodo.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
}

// auth rejects requests without the expected token.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "token "+s.token {
			writeError(w, http.StatusUnauthorized, "unauthorized", "access token is invalid")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.account)
}

func (s *Server) listPomos(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := r.URL.Query()
	result := []*pomotodo.Pomo{}
	for _, p := range s.pomos {
		if !matchBool(q.Get("abandoned"), p.Abandoned) {
			continue
		}
		if !matchBool(q.Get("manual"), p.Manual) {
			continue
		}
		if !matchAfter(q.Get("started_later_than"), p.StartedAt) {
			continue
		}
		if !matchBefore(q.Get("started_earlier_than"), p.StartedAt) {
			continue
		}
		if !matchAfter(q.Get("ended_later_than"), p.EndedAt) {
			continue
		}
		if !matchBefore(q.Get("ended_earlier_than"), p.EndedAt) {
			continue
		}
		result = append(result, p)
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) createPomo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description    string     `json:"description"`
		StartedAt      time.Time  `json:"started_at"`
		EndedAt        *time.Time `json:"ended_at"`
		LocalStartedAt *time.Time `json:"local_started_at"`
		LocalEndedAt   *time.Time `json:"local_ended_at"`
		Length         *uint      `json:"length"`
		Abandoned      *bool      `json:"abandoned"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}
	if req.Description == "" || req.StartedAt.IsZero() {
		writeError(w, http.StatusBadRequest, "invalid_request", "description and started_at are required")
		return
	}
	if req.EndedAt == nil && req.Length == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "ended_at or length is required")
		return
	}

	now := time.Now().UTC()
	pomo := &pomotodo.Pomo{
		UUID:           uuid.New(),
		CreatedAt:      now,
		UpdatedAt:      now,
		Description:    req.Description,
		StartedAt:      req.StartedAt,
		LocalStartedAt: req.LocalStartedAt,
		LocalEndedAt:   req.LocalEndedAt,
		Manual:         true,
	}
	if req.Abandoned != nil {
		pomo.Abandoned = *req.Abandoned
	}
	// ended_at wins over length whenever present, as the real API does:
	// length is recalculated from the interval, even for a bogus ended_at.
	if req.EndedAt != nil {
		pomo.EndedAt = *req.EndedAt
	} else {
		pomo.EndedAt = pomo.StartedAt.Add(time.Duration(*req.Length) * time.Second)
	}
	pomo.Length = uint(pomo.EndedAt.Sub(pomo.StartedAt) / time.Second)

	s.mu.Lock()
	s.pomos[pomo.UUID] = pomo
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, pomo)
}

func (s *Server) getPomo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pomo, ok := s.pomos[id]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "pomo does not exist")
		return
	}
	writeJSON(w, http.StatusOK, pomo)
}

func (s *Server) updatePomo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}

	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pomo, ok := s.pomos[id]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "pomo does not exist")
		return
	}
	pomo.Description = req.Description
	pomo.UpdatedAt = time.Now().UTC()
	writeJSON(w, http.StatusOK, pomo)
}

func (s *Server) deletePomo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pomos[id]; !ok {
		writeError(w, http.StatusNotFound, "not_found", "pomo does not exist")
		return
	}
	delete(s.pomos, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listTodos(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := r.URL.Query()
	result := []*pomotodo.Todo{}
	for _, todo := range s.todos {
		if !matchBool(q.Get("completed"), todo.Completed) {
			continue
		}
		if v := q.Get("completed_later_than"); v != "" {
			if todo.CompletedAt == nil || !matchAfter(v, *todo.CompletedAt) {
				continue
			}
		}
		if v := q.Get("completed_earlier_than"); v != "" {
			if todo.CompletedAt == nil || !matchBefore(v, *todo.CompletedAt) {
				continue
			}
		}
		result = append(result, todo)
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) createTodo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description        string               `json:"description"`
		Notice             *string              `json:"notice"`
		Pin                *bool                `json:"pin"`
		RepeatType         *pomotodo.RepeatType `json:"repeat_type"`
		RemindTime         *time.Time           `json:"remind_time"`
		EstimatedPomoCount *uint                `json:"estimated_pomo_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}
	if req.Description == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "description is required")
		return
	}
	if req.RepeatType != nil && !req.RepeatType.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid repeat_type")
		return
	}

	now := time.Now().UTC()
	todo := &pomotodo.Todo{
		UUID:        uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Description: req.Description,
		Notice:      req.Notice,
		RemindTime:  req.RemindTime,
		RepeatType:  pomotodo.RepeatNone,
	}
	if req.Pin != nil {
		todo.Pin = *req.Pin
	}
	if req.RepeatType != nil {
		todo.RepeatType = *req.RepeatType
	}
	if req.EstimatedPomoCount != nil {
		todo.EstimatedPomoCount = *req.EstimatedPomoCount
	}

	s.mu.Lock()
	s.todos[todo.UUID] = todo
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, todo)
}

func (s *Server) getTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "todo does not exist")
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) updateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}

	var req struct {
		Description *string              `json:"description"`
		Notice      *string              `json:"notice"`
		Pin         *bool                `json:"pin"`
		Completed   *bool                `json:"completed"`
		RepeatType  *pomotodo.RepeatType `json:"repeat_type"`
		RemindTime  *time.Time           `json:"remind_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "todo does not exist")
		return
	}

	if req.Description != nil {
		todo.Description = *req.Description
	}
	if req.Notice != nil {
		todo.Notice = req.Notice
	}
	if req.Pin != nil {
		todo.Pin = *req.Pin
	}
	if req.RepeatType != nil {
		todo.RepeatType = *req.RepeatType
	}
	if req.RemindTime != nil {
		todo.RemindTime = req.RemindTime
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
		if *req.Completed {
			now := time.Now().UTC()
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}
	}
	todo.UpdatedAt = time.Now().UTC()

	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		writeError(w, http.StatusNotFound, "not_found", "todo does not exist")
		return
	}
	delete(s.todos, id)
	delete(s.subs, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listSubTodos(w http.ResponseWriter, r *http.Request) {
	parent, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[parent]; !ok {
		writeError(w, http.StatusNotFound, "not_found", "todo does not exist")
		return
	}

	subs := s.subs[parent]
	if subs == nil {
		subs = []*pomotodo.SubTodo{}
	}
	writeJSON(w, http.StatusOK, subs)
}

func (s *Server) createSubTodo(w http.ResponseWriter, r *http.Request) {
	parent, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}

	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}
	if req.Description == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "description is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[parent]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "todo does not exist")
		return
	}

	now := time.Now().UTC()
	sub := &pomotodo.SubTodo{
		UUID:        uuid.New(),
		ParentUUID:  parent,
		CreatedAt:   now,
		UpdatedAt:   now,
		Description: req.Description,
	}
	s.subs[parent] = append(s.subs[parent], sub)
	todo.SubTodos = append(todo.SubTodos, sub.UUID)

	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) getSubTodo(w http.ResponseWriter, r *http.Request) {
	parent, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}
	id, ok := parseUUID(w, r, "sub")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.findSubTodo(parent, id)
	if sub == nil {
		writeError(w, http.StatusNotFound, "not_found", "sub-todo does not exist")
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) updateSubTodo(w http.ResponseWriter, r *http.Request) {
	parent, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}
	id, ok := parseUUID(w, r, "sub")
	if !ok {
		return
	}

	var req struct {
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.findSubTodo(parent, id)
	if sub == nil {
		writeError(w, http.StatusNotFound, "not_found", "sub-todo does not exist")
		return
	}

	if req.Description != nil {
		sub.Description = *req.Description
	}
	if req.Completed != nil {
		sub.Completed = *req.Completed
		if *req.Completed {
			now := time.Now().UTC()
			sub.CompletedAt = &now
		} else {
			sub.CompletedAt = nil
		}
	}
	sub.UpdatedAt = time.Now().UTC()

	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) deleteSubTodo(w http.ResponseWriter, r *http.Request) {
	parent, ok := parseUUID(w, r, "uuid")
	if !ok {
		return
	}
	id, ok := parseUUID(w, r, "sub")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.subs[parent]
	for i, sub := range subs {
		if sub.UUID == id {
			s.subs[parent] = append(subs[:i], subs[i+1:]...)
			if todo, ok := s.todos[parent]; ok {
				for j, su := range todo.SubTodos {
					if su == id {
						todo.SubTodos = append(todo.SubTodos[:j], todo.SubTodos[j+1:]...)
						break
					}
				}
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "sub-todo does not exist")
}

// findSubTodo looks up a sub-todo under a parent. Caller holds the lock.
func (s *Server) findSubTodo(parent, id uuid.UUID) *pomotodo.SubTodo {
	for _, sub := range s.subs[parent] {
		if sub.UUID == id {
			return sub
		}
	}
	return nil
}

// parseUUID extracts and parses a UUID path parameter, writing a 404 in
// the API error format when it is malformed.
func parseUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "malformed uuid")
		return uuid.Nil, false
	}
	return id, true
}

// matchBool reports whether a bool query param (empty means no filter)
// matches the value.
func matchBool(param string, value bool) bool {
	if param == "" {
		return true
	}
	want, err := strconv.ParseBool(param)
	if err != nil {
		return true
	}
	return want == value
}

// matchAfter reports whether value is after the RFC 3339 param.
func matchAfter(param string, value time.Time) bool {
	if param == "" {
		return true
	}
	bound, err := time.Parse(time.RFC3339, param)
	if err != nil {
		return true
	}
	return value.After(bound)
}

// matchBefore reports whether value is before the RFC 3339 param.
func matchBefore(param string, value time.Time) bool {
	if param == "" {
		return true
	}
	bound, err := time.Parse(time.RFC3339, param)
	if err != nil {
		return true
	}
	return value.Before(bound)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"code":        code,
		"description": description,
	})
}
