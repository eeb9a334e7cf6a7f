// Package visitor provides the visitor record domain model.
package visitor

import (
	"strings"

	"golang.org/x/text/cases"
)

// Record represents a single checked-in visitor.
type Record struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Purpose   string `json:"purpose"`
}

// RecordSet is the ordered collection of checked-in visitors.
// Insertion order is preserved.
type RecordSet []Record

// Fields is the raw sign-in input as collected by a presentation layer.
type Fields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Purpose   string `json:"purpose"`
}

// Normalize trims every field and returns the resulting record.
func (f Fields) Normalize() Record {
	return Record{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Company:   strings.TrimSpace(f.Company),
		Purpose:   strings.TrimSpace(f.Purpose),
	}
}

// Validate returns ErrValidation if any field is empty.
// Callers are expected to pass a normalized record.
func (r Record) Validate() error {
	for _, v := range []string{r.FirstName, r.LastName, r.Email, r.Company, r.Purpose} {
		if v == "" {
			return ErrValidation
		}
	}
	return nil
}

// FullName returns "first last".
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Matches reports whether the record's name equals the given pair,
// ignoring case. Inputs are trimmed before comparison.
func (r Record) Matches(firstName, lastName string) bool {
	return fold(r.FirstName) == fold(strings.TrimSpace(firstName)) &&
		fold(r.LastName) == fold(strings.TrimSpace(lastName))
}

// IndexOf returns the position of the first record matching the name pair,
// or -1 if none does.
func (s RecordSet) IndexOf(firstName, lastName string) int {
	for i, r := range s {
		if r.Matches(firstName, lastName) {
			return i
		}
	}
	return -1
}

// Without returns a copy of the set with the record at i removed.
func (s RecordSet) Without(i int) RecordSet {
	out := make(RecordSet, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// fold applies Unicode case folding. A Caser is not safe for concurrent
// use, so one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
