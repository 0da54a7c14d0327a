package render

import (
	"fmt"
	"io"

	"github.com/nwidger/jsoncolor"
)

// JSON writes v as indented JSON, coloured unless color.NoColor is set.
func JSON(w io.Writer, v any) error {
	raw, err := jsoncolor.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", raw)
	return err
}
