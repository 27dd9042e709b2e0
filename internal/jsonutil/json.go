// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"

	"github.com/brentp/xopen"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteFile writes v as indented JSON to path ("-" is stdout, ".gz" compresses).
func WriteFile(path string, v any) error {
	fh, err := xopen.Wopen(path)
	if err != nil {
		return err
	}
	if err := EncodePretty(fh, v); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
