package main

import (
	"fmt"

	"github.com/katalvlaran/viterbi/hmm"
	"github.com/katalvlaran/viterbi/modelfile"
	"github.com/spf13/cobra"
)

type genFlags struct {
	states, symbols, length int
	seed                    int64
	format                  string
}

func genCMD(a *app) *cobra.Command {
	var f genFlags

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "write a random problem (model plus sampled observations) to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.gen(cmd, f)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&f.states, "states", "s", 4, "number of hidden states")
	fs.IntVarP(&f.symbols, "symbols", "a", 3, "alphabet size")
	fs.IntVarP(&f.length, "length", "t", 100, "observation sequence length")
	fs.Int64Var(&f.seed, "seed", 0, "RNG seed (0 selects a fixed default)")
	fs.StringVarP(&f.format, "format", "f", string(modelfile.FormatText), "output format: text|yaml")

	return cmd
}

func (a *app) gen(cmd *cobra.Command, f genFlags) error {
	if f.states < 1 || f.symbols < 1 {
		return fmt.Errorf("gen: %d states, %d symbols: %w", f.states, f.symbols, hmm.ErrEmptyInput)
	}
	start, trans, emit := hmm.RandomParams(f.states, f.symbols, f.seed)
	m, err := hmm.NewModel(start, trans, emit)
	if err != nil {
		return err
	}
	_, obs, err := m.Sample(f.length, f.seed)
	if err != nil {
		return err
	}

	p := &modelfile.Problem{
		States:       make([]int, f.states),
		Start:        start,
		Observations: obs,
		Transition:   trans,
		Emission:     emit,
	}
	for i := range p.States {
		p.States[i] = i
	}
	a.log.Debugw("generated", "states", f.states, "symbols", f.symbols, "length", f.length, "seed", f.seed)

	out := cmd.OutOrStdout()
	switch modelfile.Format(f.format) {
	case modelfile.FormatText:
		return modelfile.WriteText(out, p)
	case modelfile.FormatYAML:
		return modelfile.WriteYAML(out, p)
	default:
		return fmt.Errorf("gen: %q: %w", f.format, modelfile.ErrUnknownFormat)
	}
}
