package web

import (
	"fmt"
	"net/http"

	"github.com/evcraddock/visitor-register/internal/register"
	"github.com/evcraddock/visitor-register/internal/visitor"
)

type homeData struct {
	View    string // "home", "signin" or "signout"
	Message string
	Error   string
	Fields  visitor.Fields
}

// handleHome renders the front desk page. ?view=signin or ?view=signout
// shows the matching form.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	view := r.URL.Query().Get("view")
	if view != "signin" && view != "signout" {
		view = "home"
	}
	s.render(w, http.StatusOK, homeData{View: view})
}

func (s *Server) handleSignInForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	f := visitor.Fields{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Company:   r.FormValue("company"),
		Purpose:   r.FormValue("purpose"),
	}

	if err := s.reg.SignIn(f); err != nil {
		s.render(w, statusFor(err), homeData{View: "signin", Error: register.Message(err), Fields: f})
		return
	}

	rec := f.Normalize()
	s.render(w, http.StatusOK, homeData{
		View:    "home",
		Message: fmt.Sprintf("Welcome, %s. You are signed in.", rec.FullName()),
	})
}

func (s *Server) handleSignOutForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	f := visitor.Fields{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
	}

	if err := s.reg.SignOut(f.FirstName, f.LastName); err != nil {
		s.render(w, statusFor(err), homeData{View: "signout", Error: register.Message(err), Fields: f})
		return
	}

	s.render(w, http.StatusOK, homeData{View: "home", Message: "Signed out. Thanks for visiting."})
}

func (s *Server) render(w http.ResponseWriter, status int, data homeData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}
