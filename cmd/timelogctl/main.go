package main

import (
	"fmt"
	"os"

	"github.com/limbo/timelog/internal/cli"
)

func main() {
	app := &cli.App{Server: os.Getenv("TIMELOG_SERVER")}
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
