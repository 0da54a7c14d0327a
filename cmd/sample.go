package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/databricks/databricks-sdk-go/logger"
	"github.com/databrickslabs/sandbox/heavybag/counters"
	"github.com/databrickslabs/sandbox/heavybag/internal"
	"github.com/databrickslabs/sandbox/heavybag/lite"
	"github.com/databrickslabs/sandbox/heavybag/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSample() lite.Registerable[internal.Config] {
	type sampleRequest struct {
		n    int
		seed uint64
		json bool
	}
	return &lite.Command[internal.Config, sampleRequest]{
		Name:  "sample [dir]",
		Short: "Draws words at random, weighted by how often they occur",
		Args:  cobra.MaximumNArgs(1),
		Flags: func(flags *pflag.FlagSet, req *sampleRequest) {
			flags.IntVar(&req.n, "n", 10, "number of draws")
			flags.Uint64Var(&req.seed, "seed", 0, "random seed, 0 picks one from the clock")
			flags.BoolVar(&req.json, "json", false, "print the drawn words and their counts as JSON")
		},
		Run: func(cmd *lite.Root[internal.Config], req *sampleRequest, args []string) error {
			ctx := cmd.Context()
			updates := render.Spinner(&cmd.Command)
			bag, err := internal.Tally(ctx, &cmd.Config, dirFrom(args), updates)
			close(updates)
			if err != nil {
				return err
			}
			seed := req.seed
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			logger.Debugf(ctx, "Sampling %d of %d words with seed %d", req.n, bag.Len(), seed)
			r := rand.New(rand.NewPCG(seed, seed))
			drawn := counters.New[string]()
			for i := 0; i < req.n; i++ {
				word, err := bag.Choose(r)
				if err != nil {
					return fmt.Errorf("draw %d: %w", i+1, err)
				}
				drawn.Add(word)
				if !req.json {
					fmt.Fprintln(cmd.OutOrStdout(), word)
				}
			}
			if req.json {
				return render.JSON(cmd.OutOrStdout(), drawn)
			}
			return nil
		},
	}
}
