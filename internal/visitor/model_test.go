package visitor

import (
	"errors"
	"testing"
)

func TestNormalizeTrims(t *testing.T) {
	got := Fields{
		FirstName: "  Jane ",
		LastName:  "\tDoe",
		Email:     "j@x.com\n",
		Company:   " Acme ",
		Purpose:   "Meeting ",
	}.Normalize()

	want := Record{FirstName: "Jane", LastName: "Doe", Email: "j@x.com", Company: "Acme", Purpose: "Meeting"}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	valid := Record{FirstName: "Jane", LastName: "Doe", Email: "j@x.com", Company: "Acme", Purpose: "Meeting"}

	tests := []struct {
		name   string
		mutate func(r *Record)
		want   error
	}{
		{"all fields set", func(r *Record) {}, nil},
		{"missing first name", func(r *Record) { r.FirstName = "" }, ErrValidation},
		{"missing last name", func(r *Record) { r.LastName = "" }, ErrValidation},
		{"missing email", func(r *Record) { r.Email = "" }, ErrValidation},
		{"missing company", func(r *Record) { r.Company = "" }, ErrValidation},
		{"missing purpose", func(r *Record) { r.Purpose = "" }, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWhitespaceOnlyFailsAfterNormalize(t *testing.T) {
	r := Fields{FirstName: "Jane", LastName: "Doe", Email: "   ", Company: "Acme", Purpose: "Meeting"}.Normalize()
	if err := r.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("Validate() = %v, want ErrValidation", err)
	}
}

func TestMatches(t *testing.T) {
	r := Record{FirstName: "Jane", LastName: "Doe"}

	tests := []struct {
		first, last string
		want        bool
	}{
		{"Jane", "Doe", true},
		{"jane", "DOE", true},
		{"  jane ", " doe", true},
		{"Jane", "Smith", false},
		{"Janet", "Doe", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := r.Matches(tt.first, tt.last); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestMatchesUnicodeFold(t *testing.T) {
	r := Record{FirstName: "Zoë", LastName: "STRASSE"}
	if !r.Matches("ZOË", "strasse") {
		t.Error("expected case-folded match")
	}
}

func TestIndexOfFirstMatch(t *testing.T) {
	s := RecordSet{
		{FirstName: "Ann", LastName: "Lee", Company: "A"},
		{FirstName: "Jane", LastName: "Doe", Company: "first"},
		{FirstName: "JANE", LastName: "doe", Company: "second"},
	}
	if got := s.IndexOf("jane", "doe"); got != 1 {
		t.Errorf("IndexOf = %d, want 1", got)
	}
	if got := s.IndexOf("bob", "smith"); got != -1 {
		t.Errorf("IndexOf missing = %d, want -1", got)
	}
}

func TestWithoutLeavesOriginal(t *testing.T) {
	s := RecordSet{{FirstName: "a"}, {FirstName: "b"}, {FirstName: "c"}}
	out := s.Without(1)

	if len(out) != 2 || out[0].FirstName != "a" || out[1].FirstName != "c" {
		t.Errorf("Without(1) = %+v", out)
	}
	if len(s) != 3 || s[1].FirstName != "b" {
		t.Errorf("original mutated: %+v", s)
	}
}
