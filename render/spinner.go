package render

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Spinner shows progress on stderr while updates are sent. Closing the
// channel stops it.
func Spinner(cmd *cobra.Command) chan<- string {
	ctx := cmd.Context()
	isTTY := !color.NoColor
	var sp *spinner.Spinner
	if isTTY {
		charset := spinner.CharSets[11]
		sp = spinner.New(charset, 200*time.Millisecond,
			spinner.WithWriter(cmd.ErrOrStderr()),
			spinner.WithColor("green"))
		sp.Start()
	}
	updates := make(chan string)
	go func() {
		if isTTY {
			defer sp.Stop()
		}
		for {
			select {
			case <-ctx.Done():
				return
			case x, hasMore := <-updates:
				if !hasMore {
					return
				}
				if isTTY {
					// `sp` access is isolated to this goroutine
					sp.Suffix = " " + x
				}
			}
		}
	}()
	return updates
}
