// Package web provides the HTTP front desk: a JSON API and an HTML page
// exposing sign-in and sign-out.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/evcraddock/visitor-register/internal/logging"
	"github.com/evcraddock/visitor-register/internal/visitor"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Register is the pair of commands the front desk dispatches.
type Register interface {
	SignIn(f visitor.Fields) error
	SignOut(firstName, lastName string) error
}

// Server is the front desk HTTP server.
type Server struct {
	reg       Register
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a web server over reg.
func NewServer(reg Register) (*Server, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		reg:       reg,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/signin", s.handleAPISignIn)
	s.mux.HandleFunc("/api/signout", s.handleAPISignOut)
	s.mux.HandleFunc("/signin", s.handleSignInForm)
	s.mux.HandleFunc("/signout", s.handleSignOutForm)
	s.mux.HandleFunc("/", s.handleHome)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Handler returns the server wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return logging.RequestLogger(s)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting front desk on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
