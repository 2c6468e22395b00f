package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/healthtrackapp/healthtrack/internal/cli"
)

func main() {
	dbPath := flag.String("db", "healthtrack.db", "path to the SQLite store")
	flag.Parse()

	app, err := cli.NewApp(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
