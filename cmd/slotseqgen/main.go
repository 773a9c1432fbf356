// Command slotseqgen turns YAML or JSON sequence documents into Go source
// that rebuilds each sequence with slotseq.FromSlots.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/chenyanchen/slotseq/internal/gen"
)

func main() {
	cfg, err := gen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		gen.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gen.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		gen.Exitf("Error: %v", err)
	}
}
