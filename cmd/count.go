package cmd

import (
	"github.com/databrickslabs/sandbox/heavybag/counters"
	"github.com/databrickslabs/sandbox/heavybag/internal"
	"github.com/databrickslabs/sandbox/heavybag/lite"
	"github.com/databrickslabs/sandbox/heavybag/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newCount() lite.Registerable[internal.Config] {
	type countRequest struct {
		top  int
		json bool
	}
	return &lite.Command[internal.Config, countRequest]{
		Name:  "count [dir]",
		Short: "Shows the most frequent words of files in a directory",
		Args:  cobra.MaximumNArgs(1),
		Flags: func(flags *pflag.FlagSet, req *countRequest) {
			flags.IntVar(&req.top, "top", 10, "number of words to show")
			flags.BoolVar(&req.json, "json", false, "print every word and its count as JSON")
		},
		Run: func(cmd *lite.Root[internal.Config], req *countRequest, args []string) error {
			ctx := cmd.Context()
			updates := render.Spinner(&cmd.Command)
			bag, err := internal.Tally(ctx, &cmd.Config, dirFrom(args), updates)
			close(updates)
			if err != nil {
				return err
			}
			if req.json {
				return render.JSON(cmd.OutOrStdout(), bag)
			}
			stats := bag.Stats()
			if req.top >= 0 && len(stats) > req.top {
				stats = stats[:req.top]
			}
			return render.RenderTemplate(cmd.OutOrStdout(), countTemplate, struct {
				Top      []counters.Pair[string]
				Total    int64
				Distinct int
			}{stats, bag.Len(), bag.DistinctLen()})
		},
	}
}

const countTemplate = `Word	Count	Share{{range .Top}}
{{.Element}}	{{.Count}}	{{percent .Count $.Total}}{{end}}
{{yellow "%d words, %d distinct" .Total .Distinct}}
`
