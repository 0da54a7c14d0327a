package fixtures

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/databricks/databricks-sdk-go/logger"
)

// Letters splits s into one-character strings: "aab" becomes a, a, b.
func Letters(s string) (out []string) {
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Rand returns a deterministic generator, so statistical tests are repeatable.
func Rand(t testing.TB, seed uint64) *rand.Rand {
	logger.Debugf(Context(t), "random seed: %d", seed)
	return rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
}

func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
