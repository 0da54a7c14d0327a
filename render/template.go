package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/fatih/color"
)

var funcs = template.FuncMap{
	"green":  color.GreenString,
	"yellow": color.YellowString,
	"bold": func(format string, a ...any) string {
		return color.New(color.Bold).Sprintf(format, a...)
	},
	"percent": func(part, whole int64) string {
		if whole == 0 {
			return "0.00%"
		}
		return fmt.Sprintf("%.2f%%", 100*float64(part)/float64(whole))
	},
	"repeat": strings.Repeat,
}

// RenderTemplate executes a tab separated template and aligns its columns.
func RenderTemplate(w io.Writer, tmpl string, v any) error {
	t, err := template.New("render").Funcs(funcs).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	err = t.Execute(tw, v)
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return tw.Flush()
}
