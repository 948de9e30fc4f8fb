// Package modelfile reads and writes decode problems: an HMM plus one
// observation sequence, in either the six-line whitespace text format or YAML.
//
// Text format (one record per line, values separated by whitespace):
//
//	S T
//	<S state ids>
//	<S start probabilities>
//	<T observation symbols>
//	<S·S transition probabilities, row-major>
//	<S·A emission probabilities, row-major; A is inferred>
//
// YAML format:
//
//	states: [0, 1]
//	state_names: [Healthy, Fever]   # optional
//	symbol_names: [normal, cold, dizzy]   # optional
//	start: [0.6, 0.4]
//	observations: [0, 1, 2]
//	transition: [[0.7, 0.3], [0.4, 0.6]]
//	emission: [[0.5, 0.4, 0.1], [0.1, 0.3, 0.6]]
//
// Parsers check structure only (counts, number syntax); probability semantics
// are left to hmm.Decode.
package modelfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/viterbi/hmm"
)

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("modelfile: malformed problem")

// ErrUnknownFormat is returned for an unsupported Format value or file extension.
var ErrUnknownFormat = errors.New("modelfile: unknown format")

// Format selects a problem encoding.
type Format string

const (
	// FormatAuto picks YAML for .yaml/.yml files and text otherwise.
	FormatAuto Format = "auto"
	// FormatText is the six-line whitespace format.
	FormatText Format = "text"
	// FormatYAML is the YAML mapping format.
	FormatYAML Format = "yaml"
)

// Problem is one decoding task.
type Problem struct {
	States       []int       `yaml:"states"`
	StateNames   []string    `yaml:"state_names,omitempty"`
	Start        []float64   `yaml:"start"`
	Observations []int       `yaml:"observations"`
	Transition   [][]float64 `yaml:"transition"`
	Emission     [][]float64 `yaml:"emission"`
	SymbolNames  []string    `yaml:"symbol_names,omitempty"`
}

// Decode runs hmm.Decode on the problem.
func (p *Problem) Decode(opts ...hmm.Option) ([]int, error) {
	return hmm.Decode(p.States, p.Start, p.Observations, p.Transition, p.Emission, opts...)
}

// DecodeResult runs hmm.DecodeResult on the problem.
func (p *Problem) DecodeResult(opts ...hmm.Option) (hmm.Result, error) {
	return hmm.DecodeResult(p.States, p.Start, p.Observations, p.Transition, p.Emission, opts...)
}

// Label returns the display name of state index i: its state_names entry when
// present, otherwise the index itself.
func (p *Problem) Label(i int) string {
	if i >= 0 && i < len(p.StateNames) {
		return p.StateNames[i]
	}

	return strconv.Itoa(i)
}

// Labels maps a decoded path to display names.
func (p *Problem) Labels(path []int) []string {
	return names(path, p.StateNames)
}

// SymbolLabels maps the observation sequence to display names.
func (p *Problem) SymbolLabels() []string {
	return names(p.Observations, p.SymbolNames)
}

func names(idx []int, table []string) []string {
	out := make([]string, len(idx))
	for t, i := range idx {
		if i >= 0 && i < len(table) {
			out[t] = table[i]
		} else {
			out[t] = strconv.Itoa(i)
		}
	}

	return out
}

// Load reads a problem from path. FormatAuto chooses by file extension.
func Load(path string, format Format) (*Problem, error) {
	if format == FormatAuto || format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			format = FormatText
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("modelfile: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatText:
		return ParseText(f)
	case FormatYAML:
		return ParseYAML(f)
	default:
		return nil, fmt.Errorf("modelfile: %q: %w", format, ErrUnknownFormat)
	}
}

// malformed builds a positioned ErrMalformed.
func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("modelfile: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrMalformed)
}
