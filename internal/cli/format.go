package cli

import (
	"encoding/json"
	"io"

	"github.com/evcraddock/visitor-register/internal/register"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult writes the JSON Result for err and passes err through so the
// command still exits non-zero on failure.
func printResult(w io.Writer, err error) error {
	if perr := printJSON(w, register.ResultOf(err)); perr != nil {
		return perr
	}
	return err
}
