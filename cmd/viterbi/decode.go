package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/viterbi/modelfile"
	"github.com/spf13/cobra"
)

func decodeCMD(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "print the most probable hidden-state path of a problem file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decode(cmd, args[0], modelfile.Format(format))
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&format, "format", "f", string(modelfile.FormatAuto), "problem format: auto|text|yaml")
	fs.Bool("log-space", false, "decode with log probabilities")
	fs.IntP("workers", "w", 0, "goroutines per time step (<=1 is sequential)")
	fs.Bool("strict", false, "reject negative or non-finite probabilities")
	fs.Float64("tolerance", 0, "also require distributions to sum to 1 within this tolerance")

	return cmd
}

func (a *app) decode(cmd *cobra.Command, file string, format modelfile.Format) error {
	begin := time.Now()

	p, err := modelfile.Load(file, format)
	if err != nil {
		a.log.Errorw("load failed", "file", file, "err", err)
		return err
	}
	a.log.Debugw("problem loaded",
		"file", file,
		"states", len(p.States),
		"observations", len(p.Observations),
	)
	if len(p.SymbolNames) > 0 {
		a.log.Debugw("observation symbols", "symbols", p.SymbolLabels())
	}

	res, err := p.DecodeResult(a.cfg.Options()...)
	if err != nil {
		a.log.Errorw("decode failed", "file", file, "err", err)
		return err
	}
	a.log.Infow("decoded",
		"length", len(res.Path),
		"score", res.Score,
		"log_space", res.LogSpace,
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Most probable hidden states are:")
	fmt.Fprintf(out, "[%s]\n", strings.Join(p.Labels(res.Path), ", "))
	fmt.Fprintf(out, "total time %.4fs\n", time.Since(begin).Seconds())

	return nil
}
