package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olimci/pyname/cmd"
)

func main() {
	if err := cmd.Execute(context.Background(), os.Args, cmd.Options{}); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
