// Command viterbi decodes the most probable hidden-state path of an HMM
// problem file and generates synthetic problems.
//
// Usage:
//
//	viterbi decode problem.txt
//	viterbi decode --log-space --workers 4 problem.yaml
//	viterbi gen --states 8 --symbols 5 --length 1000 --seed 42 > problem.txt
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
