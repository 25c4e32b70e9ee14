// Command tuplegen renders the fixed-arity tuple views (T2..T16) committed
// at the repository root. Run it from the repo root; -check verifies the
// committed file matches the manifest without rewriting it.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/ownref/internal/logging"
)

const generatedHeader = "// Code generated by tuplegen. DO NOT EDIT."

var (
	ErrArityOutOfRange = errors.New("tuplegen: max_arity must be between 2 and 16")
	ErrStale           = errors.New("tuplegen: generated file is stale")
)

type manifest struct {
	Package  string `toml:"package"`
	MaxArity int    `toml:"max_arity"`
	Output   string `toml:"output"`
}

func main() {
	cfgPath := flag.String("config", "cmd/tuplegen/tuplegen.toml", "generator manifest path")
	output := flag.String("output", "", "output path (overrides the manifest)")
	check := flag.Bool("check", false, "verify the committed output is current")
	force := flag.Bool("force", false, "overwrite output that lacks the generated header")
	flag.Parse()

	logging.ConfigureRuntime()

	m, err := loadManifest(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", *cfgPath).Msg("load manifest")
	}
	if *output != "" {
		m.Output = *output
	}

	src, err := render(m)
	if err != nil {
		log.Fatal().Err(err).Msg("render")
	}

	if *check {
		if err := verifyCurrent(m.Output, src); err != nil {
			log.Fatal().Err(err).Str("output", m.Output).Msg("check")
		}
		log.Info().Str("output", m.Output).Msg("generated file is current")
		return
	}

	if err := writeOutput(m.Output, src, *force); err != nil {
		log.Fatal().Err(err).Msg("write")
	}
	log.Info().Str("output", m.Output).Int("max_arity", m.MaxArity).Msg("wrote tuple definitions")
}

func loadManifest(path string) (manifest, error) {
	m := manifest{Package: "ownref", MaxArity: 16, Output: "tuple.go"}
	if path != "" {
		if _, err := toml.DecodeFile(path, &m); err != nil {
			return manifest{}, fmt.Errorf("tuplegen: decode manifest: %w", err)
		}
	}
	if m.MaxArity < 2 || m.MaxArity > 16 {
		return manifest{}, ErrArityOutOfRange
	}
	if m.Package == "" {
		return manifest{}, errors.New("tuplegen: manifest has empty package")
	}
	if m.Output == "" {
		return manifest{}, errors.New("tuplegen: manifest has empty output")
	}
	return m, nil
}

const tupleTemplate = `// Code generated by tuplegen. DO NOT EDIT.

package {{.Package}}
{{range .Tuples}}
// T{{.N}} is a fixed group of {{.N}} views. Slots erase and reconstitute
// independently, in declaration order; the combinator adds no cross-slot
// behavior.
type T{{.N}}[{{.Params}} any] struct {
{{- range .Slots}}
	{{.}} {{.}}
{{- end}}
}

// MakeT{{.N}} builds the group in slot order.
func MakeT{{.N}}[{{.Params}} any]({{.Args}}) T{{.N}}[{{.Params}}] {
	return T{{.N}}[{{.Params}}]{{"{"}}{{.Inits}}{{"}"}}
}
{{end}}`

const slotLetters = "ABCDEFGHIJKLMNOP"

type tupleDef struct {
	N      int
	Params string
	Slots  []string
	Args   string
	Inits  string
}

func defineTuple(n int) tupleDef {
	slots := make([]string, n)
	args := make([]string, n)
	inits := make([]string, n)
	for i := 0; i < n; i++ {
		field := string(slotLetters[i])
		arg := strings.ToLower(field)
		slots[i] = field
		args[i] = arg + " " + field
		inits[i] = field + ": " + arg
	}
	return tupleDef{
		N:      n,
		Params: strings.Join(slots, ", "),
		Slots:  slots,
		Args:   strings.Join(args, ", "),
		Inits:  strings.Join(inits, ", "),
	}
}

func render(m manifest) ([]byte, error) {
	tuples := make([]tupleDef, 0, m.MaxArity-1)
	for n := 2; n <= m.MaxArity; n++ {
		tuples = append(tuples, defineTuple(n))
	}

	tmpl := template.Must(template.New("tuple").Parse(tupleTemplate))
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Package string
		Tuples  []tupleDef
	}{Package: m.Package, Tuples: tuples})
	if err != nil {
		return nil, fmt.Errorf("tuplegen: render: %w", err)
	}
	return buf.Bytes(), nil
}

func verifyCurrent(path string, src []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !bytes.Equal(existing, src) {
		return ErrStale
	}
	return nil
}

func writeOutput(path string, src []byte, force bool) error {
	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return err
	case !bytes.HasPrefix(existing, []byte(generatedHeader)) && !force:
		return fmt.Errorf("tuplegen: %s was not generated by tuplegen (rerun with -force)", path)
	}
	return os.WriteFile(path, src, 0o644)
}
