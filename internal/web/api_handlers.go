package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evcraddock/visitor-register/internal/register"
	"github.com/evcraddock/visitor-register/internal/visitor"
)

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiResult writes the Result for err with its matching status.
func apiResult(w http.ResponseWriter, err error, okStatus int) {
	status := okStatus
	if err != nil {
		status = statusFor(err)
	}
	apiJSON(w, register.ResultOf(err), status)
}

// apiError writes a failed Result with a fixed message.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, register.Result{Error: msg}, code)
}

// statusFor maps a register error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, visitor.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, visitor.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// SignOutRequest is the body of POST /api/signout.
type SignOutRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (s *Server) handleAPISignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var f visitor.Fields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	apiResult(w, s.reg.SignIn(f), http.StatusCreated)
}

func (s *Server) handleAPISignOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SignOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	apiResult(w, s.reg.SignOut(req.FirstName, req.LastName), http.StatusOK)
}
