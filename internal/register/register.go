// Package register coordinates visitor sign-in and sign-out over a record
// store and an audit log.
package register

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/evcraddock/visitor-register/internal/store"
	"github.com/evcraddock/visitor-register/internal/visitor"
)

// AuditLogger records completed sign-outs.
type AuditLogger interface {
	LogSignOut(rec visitor.Record) error
}

// Register validates input and applies sign-in and sign-out to the store.
// Operations are serialised; each one is a full load-modify-save cycle.
type Register struct {
	mu    sync.Mutex
	store store.Store
	audit AuditLogger
}

// New creates a Register.
func New(s store.Store, audit AuditLogger) *Register {
	return &Register{store: s, audit: audit}
}

// SignIn admits a visitor. It returns visitor.ErrValidation without
// touching the store if any field is empty after trimming.
func (r *Register) SignIn(f visitor.Fields) error {
	rec := f.Normalize()
	if err := rec.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.store.Load()
	records = append(records, rec)
	if err := r.store.Save(records); err != nil {
		return err
	}

	slog.Info("visitor signed in", "name", rec.FullName(), "company", rec.Company)
	return nil
}

// SignOut removes the first visitor whose name matches, ignoring case, and
// appends an audit entry. It returns visitor.ErrNotFound when nobody matches.
// An audit failure is logged and does not affect the result.
func (r *Register) SignOut(firstName, lastName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.store.Load()
	i := records.IndexOf(firstName, lastName)
	if i < 0 {
		return visitor.ErrNotFound
	}
	rec := records[i]

	if err := r.store.Save(records.Without(i)); err != nil {
		return err
	}

	if err := r.audit.LogSignOut(rec); err != nil {
		slog.Error("failed to log sign-out", "name", rec.FullName(), "error", err)
	} else {
		slog.Info("sign-out recorded", "name", rec.FullName())
	}
	return nil
}

// Result is the caller-facing outcome of a register command.
type Result struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ResultOf converts an operation error into a Result.
func ResultOf(err error) Result {
	if err == nil {
		return Result{OK: true}
	}
	return Result{Error: Message(err)}
}

// Message returns the user-visible text for an operation error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, visitor.ErrValidation):
		return visitor.ErrValidation.Error()
	case errors.Is(err, visitor.ErrNotFound):
		return visitor.ErrNotFound.Error()
	default:
		return err.Error()
	}
}
