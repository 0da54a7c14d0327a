package internal

import (
	"github.com/hashicorp/go-set/v3"
	"github.com/spf13/pflag"
)

type Config struct {
	Workers int
	Pattern string
	Ignore  []string
	Lower   bool
}

func (c *Config) Bind(flags *pflag.FlagSet) {
	flags.IntVar(&c.Workers, "workers", 4, "Number of files read in parallel")
	flags.StringVar(&c.Pattern, "pattern", ".*", "Regular expression for relative paths of files to read")
	flags.StringSliceVar(&c.Ignore, "ignore", nil, "Words to leave out of the tally")
	flags.BoolVar(&c.Lower, "lower", false, "Fold words to lower case")
}

func (c *Config) ignored() *set.Set[string] {
	return set.From(c.Ignore)
}
