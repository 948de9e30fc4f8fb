package modelfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a YAML problem. Unknown keys are rejected. When states is
// omitted it defaults to 0..len(start)-1.
//
// Errors:
//   - ErrMalformed for YAML syntax/type errors, unknown keys, an empty
//     document, or a state_names/symbol_names list whose length differs from
//     the number of states/emission columns.
func ParseYAML(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	p := &Problem{}
	if err := dec.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("modelfile: empty YAML document: %w", ErrMalformed)
		}
		return nil, fmt.Errorf("modelfile: %v: %w", err, ErrMalformed)
	}

	if len(p.States) == 0 && len(p.Start) > 0 {
		p.States = make([]int, len(p.Start))
		for i := range p.States {
			p.States[i] = i
		}
	}
	if len(p.StateNames) > 0 && len(p.StateNames) != len(p.States) {
		return nil, fmt.Errorf("modelfile: %d state_names for %d states: %w",
			len(p.StateNames), len(p.States), ErrMalformed)
	}
	if len(p.SymbolNames) > 0 && len(p.Emission) > 0 && len(p.SymbolNames) != len(p.Emission[0]) {
		return nil, fmt.Errorf("modelfile: %d symbol_names for %d symbols: %w",
			len(p.SymbolNames), len(p.Emission[0]), ErrMalformed)
	}

	return p, nil
}

// WriteYAML serializes p as YAML.
func WriteYAML(w io.Writer, p *Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("modelfile: %w", err)
	}

	return enc.Close()
}
