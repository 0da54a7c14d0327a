package main

import (
	"context"

	"github.com/databrickslabs/sandbox/heavybag/cmd"
)

func main() {
	cmd.Run(context.Background())
}
