package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evcraddock/visitor-register/internal/visitor"
)

func TestSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/api/signin" {
			t.Errorf("path = %q, want /api/signin", r.URL.Path)
		}
		var f visitor.Fields
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if f.FirstName != "Jane" || f.Purpose != "Meeting" {
			t.Errorf("fields = %+v", f)
		}
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write([]byte(`{"ok":true}`)); err != nil {
			t.Errorf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.SignIn(visitor.Fields{FirstName: "Jane", LastName: "Doe", Email: "j@x.com", Company: "Acme", Purpose: "Meeting"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
}

func TestSignOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/signout" {
			t.Errorf("path = %q, want /api/signout", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["first_name"] != "jane" || body["last_name"] != "doe" {
			t.Errorf("body = %v", body)
		}
		if _, err := w.Write([]byte(`{"ok":true}`)); err != nil {
			t.Errorf("write: %v", err)
		}
	}))
	defer srv.Close()

	if err := New(srv.URL).SignOut("jane", "doe"); err != nil {
		t.Fatalf("sign out: %v", err)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"validation", http.StatusBadRequest, `{"ok":false,"error":"all fields must be filled in"}`, visitor.ErrValidation},
		{"not found", http.StatusNotFound, `{"ok":false,"error":"name not found, try again"}`, visitor.ErrNotFound},
		{"storage", http.StatusInternalServerError, `{"ok":false,"error":"disk full"}`, visitor.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if _, err := w.Write([]byte(tt.body)); err != nil {
					t.Errorf("write: %v", err)
				}
			}))
			defer srv.Close()

			err := New(srv.URL).SignOut("a", "b")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).SignIn(visitor.Fields{})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "server error: Bad Gateway" {
		t.Errorf("err = %q", err.Error())
	}
}

func TestConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if err := New(url).SignOut("a", "b"); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			t.Errorf("write: %v", err)
		}
	}))
	defer srv.Close()

	if err := New(srv.URL).Health(); err != nil {
		t.Fatalf("health: %v", err)
	}
}

func TestHealthUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if err := New(srv.URL).Health(); err == nil {
		t.Fatal("expected error")
	}
}
