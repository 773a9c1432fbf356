package emit

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"iter"
	"strings"

	"github.com/chenyanchen/slotseq"
	"golang.org/x/tools/imports"
)

// ImportPath is the import path generated files use for the slotseq package.
const ImportPath = "github.com/chenyanchen/slotseq"

// Source is the read view the emitter needs: every slot, in index order.
type Source[T comparable] interface {
	All() iter.Seq2[int, slotseq.Slot[T]]
}

var _ Source[int] = slotseq.Seq[int]{}

// Options controls expression rendering.
//
// Qualifier is the package name prefixed to slotseq identifiers. Empty means
// "slotseq"; use "-" to emit unqualified identifiers (code inside package slotseq).
// TypeName overrides the element type argument, which defaults to %T of T.
// Literal overrides value rendering, which defaults to %#v.
type Options struct {
	Qualifier string
	TypeName  string
	Literal   func(v any) (string, error)
}

// FileOptions describes a generated file holding one sequence variable.
type FileOptions struct {
	Options

	Package   string
	Var       string
	Generator string
}

// Expr renders src as a slotseq.FromSlots call expression.
func Expr[T comparable](src Source[T], opts Options) (string, error) {
	if src == nil {
		return "", fmt.Errorf("emit expr: source is nil")
	}
	qual := qualifier(opts.Qualifier)
	typ := opts.TypeName
	if typ == "" {
		var zero T
		typ = fmt.Sprintf("%T", zero)
	}
	literal := opts.Literal
	if literal == nil {
		literal = goLiteral
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%sFromSlots[%s](", qual, typ))
	for i, slot := range src.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		v, ok := slot.Value()
		if !ok {
			b.WriteString(fmt.Sprintf("%sEmpty[%s]()", qual, typ))
			continue
		}
		lit, err := literal(v)
		if err != nil {
			return "", fmt.Errorf("emit expr: render slot %d: %w", i, err)
		}
		b.WriteString(fmt.Sprintf("%sOccupied[%s](%s)", qual, typ, lit))
	}
	b.WriteByte(')')

	expr, err := parser.ParseExpr(b.String())
	if err != nil {
		return "", fmt.Errorf("emit expr: generated invalid Go: %w", err)
	}
	var out bytes.Buffer
	if err := format.Node(&out, token.NewFileSet(), expr); err != nil {
		return "", fmt.Errorf("emit expr: format: %w", err)
	}
	return out.String(), nil
}

// File renders a complete Go source file declaring opts.Var = <Expr>.
func File[T comparable](src Source[T], opts FileOptions) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("emit file: package is empty")
	}
	if !token.IsIdentifier(opts.Var) {
		return nil, fmt.Errorf("emit file: invalid variable name %q", opts.Var)
	}
	expr, err := Expr(src, opts.Options)
	if err != nil {
		return nil, err
	}
	sum, err := Checksum(src)
	if err != nil {
		return nil, err
	}
	generator := opts.Generator
	if generator == "" {
		generator = "slotseq/exp/emit"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("// Code generated by %s. DO NOT EDIT.\n\n", generator))
	b.WriteString(fmt.Sprintf("package %s\n\n", opts.Package))
	if opts.Qualifier != "-" {
		if opts.Qualifier == "" || opts.Qualifier == "slotseq" {
			b.WriteString(fmt.Sprintf("import %q\n\n", ImportPath))
		} else {
			b.WriteString(fmt.Sprintf("import %s %q\n\n", opts.Qualifier, ImportPath))
		}
	}
	b.WriteString(fmt.Sprintf("// %s checksum: %s\n", opts.Var, sum))
	b.WriteString(fmt.Sprintf("var %s = %s\n", opts.Var, expr))

	out, err := imports.Process("", []byte(b.String()), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("emit file: format: %w", err)
	}
	return out, nil
}

// Checksum hashes the normalized JSON form of the ordered slots, so equal
// sequences always share a checksum.
func Checksum[T comparable](src Source[T]) (string, error) {
	var slots []slotseq.Slot[T]
	for _, slot := range src.All() {
		slots = append(slots, slot)
	}
	raw, err := json.Marshal(slotseq.FromSlots(slots...))
	if err != nil {
		return "", fmt.Errorf("checksum: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

func qualifier(q string) string {
	switch q {
	case "":
		return "slotseq."
	case "-":
		return ""
	}
	return q + "."
}

func goLiteral(v any) (string, error) {
	switch v.(type) {
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return fmt.Sprintf("%#v", v), nil
	}
	lit := fmt.Sprintf("%#v", v)
	if _, err := parser.ParseExpr(lit); err != nil {
		return "", fmt.Errorf("value %v of type %T has no Go literal form", v, v)
	}
	return lit, nil
}
