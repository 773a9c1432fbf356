// Package gen implements the slotseqgen command: it decodes sequence documents
// and writes Go files that rebuild them.
package gen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chenyanchen/slotseq"
	"github.com/chenyanchen/slotseq/exp/emit"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const generatorName = "slotseqgen"

// Document is one input file. JSON documents are accepted as YAML.
//
// Values lists the slots in order, null for an empty slot. Capacity, when larger
// than len(Values), pads the sequence with trailing empty slots.
type Document struct {
	Package  string    `yaml:"package" json:"package"`
	Var      string    `yaml:"var" json:"var"`
	Type     string    `yaml:"type" json:"type"`
	Capacity int       `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	Compact  bool      `yaml:"compact,omitempty" json:"compact,omitempty"`
	Values   yaml.Node `yaml:"values" json:"values"`
}

// Result describes one generated file.
type Result struct {
	Input  string
	Output string
	Source []byte
}

// Run generates every input in cfg, at most cfg.Jobs at a time.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	results := make([]Result, len(cfg.Inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, input := range cfg.Inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Generate(input, cfg)
			if err != nil {
				logger.Error("generate failed", "input", input, "err", err)
				return fmt.Errorf("generate %s: %w", input, err)
			}
			results[i] = res
			logger.Debug("generated", "input", input, "output", res.Output, "bytes", len(res.Source))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs []error
	for _, res := range results {
		if cfg.DryRun {
			if _, err := fmt.Fprintf(out, "// %s\n%s\n", res.Output, res.Source); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := os.WriteFile(res.Output, res.Source, 0o644); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", res.Output, err))
			continue
		}
		logger.Info("wrote", "output", res.Output)
		fmt.Fprintln(out, res.Output)
	}
	return errors.Join(errs...)
}

// Generate decodes one input document and renders its Go source.
func Generate(input string, cfg Config) (Result, error) {
	payload, err := os.ReadFile(input)
	if err != nil {
		return Result{}, err
	}
	doc, err := ParseDocument(payload)
	if err != nil {
		return Result{}, err
	}

	src, err := Render(doc, emit.Options{Qualifier: cfg.Qualifier})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Input:  input,
		Output: outputPath(input, cfg.OutDir),
		Source: src,
	}, nil
}

// ParseDocument decodes and validates a YAML or JSON document.
func ParseDocument(payload []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	if doc.Package == "" {
		return Document{}, fmt.Errorf("decode document: package is empty")
	}
	if doc.Var == "" {
		return Document{}, fmt.Errorf("decode document: var is empty")
	}
	if doc.Type == "" {
		doc.Type = "int"
	}
	return doc, nil
}

// Render decodes doc.Values as a sequence of doc.Type and emits the file.
func Render(doc Document, opts emit.Options) ([]byte, error) {
	switch doc.Type {
	case "int":
		return renderAs[int](doc, opts)
	case "int64":
		return renderAs[int64](doc, opts)
	case "uint8", "byte":
		return renderAs[uint8](doc, opts)
	case "float64":
		return renderAs[float64](doc, opts)
	case "string":
		return renderAs[string](doc, opts)
	case "bool":
		return renderAs[bool](doc, opts)
	}
	return nil, fmt.Errorf("unsupported element type %q", doc.Type)
}

func renderAs[T comparable](doc Document, opts emit.Options) ([]byte, error) {
	seq, err := decodeSeq[T](doc)
	if err != nil {
		return nil, err
	}
	if opts.TypeName == "" {
		opts.TypeName = doc.Type
	}
	return emit.File[T](seq, emit.FileOptions{
		Options:   opts,
		Package:   doc.Package,
		Var:       doc.Var,
		Generator: generatorName,
	})
}

func decodeSeq[T comparable](doc Document) (slotseq.Seq[T], error) {
	var seq slotseq.Seq[T]
	if doc.Values.Kind != 0 {
		if err := doc.Values.Decode(&seq); err != nil {
			return seq, fmt.Errorf("decode values: %w", err)
		}
	}
	if doc.Capacity > 0 && doc.Capacity < seq.Cap() {
		return seq, fmt.Errorf("capacity %d is smaller than %d values", doc.Capacity, seq.Cap())
	}
	for seq.Cap() < doc.Capacity {
		seq = seq.GrowByOne()
	}
	if doc.Compact {
		seq.Compact()
	}
	return seq, nil
}

func outputPath(input string, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := base + "_slotseq.go"
	if outDir != "" {
		return filepath.Join(outDir, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}
