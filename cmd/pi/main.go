package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/agenthands/pilang/pkg/engine"
	"github.com/agenthands/pilang/pkg/interp"
)

func main() {
	// debug mode: if DEBUG environment variable is set, enable debug logging
	if _, ok := os.LookupEnv("DEBUG"); ok {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: pi <script.pi>")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	scriptPath := flag.Arg(0)

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.New(engine.DefaultCacheSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	slog.Debug("running script", "path", scriptPath, "bytes", len(src))
	env, err := eng.Run(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printState(os.Stdout, env)
}

// printState writes the final variable state, one binding per line, sorted
// by name.
func printState(w io.Writer, env interp.Env) {
	for _, name := range env.Names() {
		value, _ := env.Lookup(name)
		fmt.Fprintf(w, "%s = %d\n", name, value)
	}
}
