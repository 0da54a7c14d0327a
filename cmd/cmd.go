package cmd

import (
	"context"

	"github.com/databrickslabs/sandbox/heavybag/internal"
	"github.com/databrickslabs/sandbox/heavybag/lite"
	"github.com/spf13/pflag"
)

const productName = "heavybag"
const productVersion = "0.1.0"

func Run(ctx context.Context) {
	New(ctx).Run(ctx)
}

func New(ctx context.Context) *lite.Root[internal.Config] {
	return lite.New[internal.Config](ctx, lite.Init[internal.Config]{
		Name:       productName,
		Version:    productVersion,
		Short:      "Count words of text files into a bag and sample from it",
		ConfigPath: "$HOME/.config/heavybag",
		EnvPrefix:  "HEAVYBAG",
		Bind: func(flags *pflag.FlagSet, cfg *internal.Config) {
			cfg.Bind(flags)
		},
	}).With(
		newCount(),
		newSample(),
	)
}

func dirFrom(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
