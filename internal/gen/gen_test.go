package gen

import (
	"bytes"
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chenyanchen/slotseq/exp/emit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("slotseqgen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"a.yaml", "b.json"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.yaml", "b.json"}, cfg.Inputs)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.OutDir)
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("SLOTSEQGEN_OUT_DIR", "/tmp/env-out")
	t.Setenv("SLOTSEQGEN_JOBS", "2")
	t.Setenv("SLOTSEQGEN_LOG_LEVEL", "debug")

	fs := flag.NewFlagSet("slotseqgen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-jobs", "8", "-dry-run", "in.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env-out", cfg.OutDir)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.DryRun)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig(flag.NewFlagSet("slotseqgen", flag.ContinueOnError), nil)
	require.Error(t, err)

	_, err = ParseConfig(flag.NewFlagSet("slotseqgen", flag.ContinueOnError), []string{"-jobs", "0", "in.yaml"})
	require.Error(t, err)

	_, err = ParseConfig(flag.NewFlagSet("slotseqgen", flag.ContinueOnError), []string{"-log-level", "loud", "in.yaml"})
	require.Error(t, err)

	t.Setenv("SLOTSEQGEN_JOBS", "many")
	_, err = ParseConfig(flag.NewFlagSet("slotseqgen", flag.ContinueOnError), []string{"in.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestRenderPadsAndCompacts(t *testing.T) {
	doc, err := ParseDocument([]byte(`
package: fixtures
var: Ports
type: int
capacity: 4
compact: true
values: [8080, null, 9090]
`))
	require.NoError(t, err)

	src, err := Render(doc, emit.Options{})
	require.NoError(t, err)
	assert.Contains(t, string(src),
		"var Ports = slotseq.FromSlots[int](slotseq.Occupied[int](8080), slotseq.Occupied[int](9090), slotseq.Empty[int](), slotseq.Empty[int]())")
}

func TestRenderTypes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "string json",
			doc:  `{"package": "p", "var": "Names", "type": "string", "values": ["a", null]}`,
			want: `slotseq.FromSlots[string](slotseq.Occupied[string]("a"), slotseq.Empty[string]())`,
		},
		{
			name: "bool",
			doc:  "package: p\nvar: Flags\ntype: bool\nvalues: [true, ~]\n",
			want: "slotseq.FromSlots[bool](slotseq.Occupied[bool](true), slotseq.Empty[bool]())",
		},
		{
			name: "default int",
			doc:  "package: p\nvar: Empty\ncapacity: 2\n",
			want: "slotseq.FromSlots[int](slotseq.Empty[int](), slotseq.Empty[int]())",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.doc))
			require.NoError(t, err)
			src, err := Render(doc, emit.Options{})
			require.NoError(t, err)
			assert.Contains(t, string(src), tt.want)
		})
	}
}

func TestRenderErrors(t *testing.T) {
	_, err := ParseDocument([]byte("var: X\n"))
	require.Error(t, err)
	_, err = ParseDocument([]byte("package: p\n"))
	require.Error(t, err)

	doc, err := ParseDocument([]byte("package: p\nvar: X\ntype: complex128\nvalues: [1]\n"))
	require.NoError(t, err)
	_, err = Render(doc, emit.Options{})
	require.Error(t, err)

	doc, err = ParseDocument([]byte("package: p\nvar: X\ncapacity: 1\nvalues: [1, 2]\n"))
	require.NoError(t, err)
	_, err = Render(doc, emit.Options{})
	require.Error(t, err)

	doc, err = ParseDocument([]byte("package: p\nvar: X\nvalues: [a]\n"))
	require.NoError(t, err)
	_, err = Render(doc, emit.Options{})
	require.Error(t, err)
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeInput(t, dir, "ports.yaml", "package: fixtures\nvar: Ports\nvalues: [1, null, 3]\n"),
		writeInput(t, dir, "names.json", `{"package": "fixtures", "var": "Names", "type": "string", "values": ["x"]}`),
	}

	var out, errOut bytes.Buffer
	cfg := Config{Inputs: inputs, Jobs: 2, LogLevel: slog.LevelDebug}
	require.NoError(t, Run(context.Background(), cfg, &out, &errOut))

	portsPath := filepath.Join(dir, "ports_slotseq.go")
	namesPath := filepath.Join(dir, "names_slotseq.go")
	assert.Equal(t, portsPath+"\n"+namesPath+"\n", out.String())

	ports, err := os.ReadFile(portsPath)
	require.NoError(t, err)
	assert.Contains(t, string(ports), "// Code generated by slotseqgen. DO NOT EDIT.")
	assert.Contains(t, string(ports), "var Ports = slotseq.FromSlots[int](slotseq.Occupied[int](1), slotseq.Empty[int](), slotseq.Occupied[int](3))")

	names, err := os.ReadFile(namesPath)
	require.NoError(t, err)
	assert.Contains(t, string(names), `var Names = slotseq.FromSlots[string](slotseq.Occupied[string]("x"))`)

	assert.Contains(t, errOut.String(), "generated")
}

func TestRunDryRunAndOutDir(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	input := writeInput(t, dir, "q.yaml", "package: fixtures\nvar: Q\nvalues: [7]\n")

	var out bytes.Buffer
	cfg := Config{Inputs: []string{input}, Jobs: 1, OutDir: outDir, DryRun: true}
	require.NoError(t, Run(context.Background(), cfg, &out, nil))

	assert.True(t, strings.HasPrefix(out.String(), "// "+filepath.Join(outDir, "q_slotseq.go")+"\n"), out.String())
	assert.Contains(t, out.String(), "var Q = slotseq.FromSlots[int](slotseq.Occupied[int](7))")
	_, err := os.Stat(filepath.Join(outDir, "q_slotseq.go"))
	assert.True(t, os.IsNotExist(err), "dry run must not write files")
}

func TestRunReportsBadInput(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, "good.yaml", "package: p\nvar: G\nvalues: [1]\n")
	bad := writeInput(t, dir, "bad.yaml", "package: p\nvar: B\ntype: int\nvalues: [oops]\n")

	var errOut bytes.Buffer
	err := Run(context.Background(), Config{Inputs: []string{good, bad}, Jobs: 2}, nil, &errOut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
	assert.Contains(t, errOut.String(), "generate failed")

	err = Run(context.Background(), Config{Inputs: []string{filepath.Join(dir, "missing.yaml")}, Jobs: 1}, nil, nil)
	require.Error(t, err)
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
