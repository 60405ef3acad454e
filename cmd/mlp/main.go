// Package main provides the mlp command-line driver.
//
// Usage:
//
//	mlp version
//	mlp xor   [-epochs 10000] [-lr 0.1] [-hidden 3] [-seed 0] [-report 100]
//	mlp waves [-samples 1000] [-dim 10] [-epochs 1000] [-lr 0.01] [-seed 0] [-report 100]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Fatalf("mlp: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "mlp %s\n", version)
		return nil
	case "xor":
		return runXOR(args[1:], out)
	case "waves":
		return runWaves(args[1:], out)
	case "help", "-h", "--help":
		usage(out)
		return nil
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "mlp - feed-forward network trainer")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  xor        Train a 2->h->1 Tanh network on XOR")
	fmt.Fprintln(out, "  waves      Train a 10->50->30->10->1 network on synthetic sine/cosine data")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Run 'mlp <command> -h' for command flags.")
}
