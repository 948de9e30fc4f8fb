package modelfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line numbers of the text format records.
const (
	lineHeader = iota + 1
	lineStates
	lineStart
	lineObservations
	lineTransition
	lineEmission
)

// maxLineBytes bounds a single record; emission lines of large models are long.
const maxLineBytes = 64 << 20

// ParseText reads the six-line whitespace format.
//
// Errors:
//   - ErrMalformed for missing lines, bad numbers, counts that disagree with
//     the header, or an emission count that is not a positive multiple of S.
//
// Complexity: O(input size).
func ParseText(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines [lineEmission][]string
	n := 0
	for sc.Scan() {
		n++
		if n > lineEmission {
			if strings.TrimSpace(sc.Text()) != "" {
				return nil, malformed(n, "unexpected trailing content")
			}
			continue
		}
		lines[n-1] = strings.Fields(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("modelfile: %w", err)
	}
	if n < lineEmission {
		return nil, malformed(n+1, "expected %d lines, got %d", lineEmission, n)
	}

	header, err := parseInts(lines[lineHeader-1], lineHeader)
	if err != nil {
		return nil, err
	}
	if len(header) != 2 || header[0] < 0 || header[1] < 0 {
		return nil, malformed(lineHeader, "header must be two non-negative counts \"S T\"")
	}
	s, t := header[0], header[1]

	p := &Problem{}
	if p.States, err = parseInts(lines[lineStates-1], lineStates); err != nil {
		return nil, err
	}
	if err = expectCount(len(p.States), s, lineStates); err != nil {
		return nil, err
	}
	if p.Start, err = parseFloats(lines[lineStart-1], lineStart); err != nil {
		return nil, err
	}
	if err = expectCount(len(p.Start), s, lineStart); err != nil {
		return nil, err
	}
	if p.Observations, err = parseInts(lines[lineObservations-1], lineObservations); err != nil {
		return nil, err
	}
	if err = expectCount(len(p.Observations), t, lineObservations); err != nil {
		return nil, err
	}

	flat, err := parseFloats(lines[lineTransition-1], lineTransition)
	if err != nil {
		return nil, err
	}
	if err = expectCount(len(flat), s*s, lineTransition); err != nil {
		return nil, err
	}
	p.Transition = reshape(flat, s, s)

	flat, err = parseFloats(lines[lineEmission-1], lineEmission)
	if err != nil {
		return nil, err
	}
	if s == 0 || len(flat) == 0 || len(flat)%s != 0 {
		return nil, malformed(lineEmission, "%d emission values is not a positive multiple of %d states", len(flat), s)
	}
	p.Emission = reshape(flat, s, len(flat)/s)

	return p, nil
}

// WriteText serializes p in the six-line format. Floats use the shortest
// representation that round-trips exactly.
func WriteText(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(p.States), len(p.Observations))
	writeInts(bw, p.States)
	writeFloats(bw, p.Start)
	writeInts(bw, p.Observations)
	writeFloats(bw, flatten(p.Transition))
	writeFloats(bw, flatten(p.Emission))

	return bw.Flush()
}

func parseInts(fields []string, line int) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, malformed(line, "field %d: %v", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

func parseFloats(fields []string, line int) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, malformed(line, "field %d: %v", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

func expectCount(got, want, line int) error {
	if got != want {
		return malformed(line, "got %d values, header says %d", got, want)
	}

	return nil
}

// reshape splits flat into rows of width c. Rows share flat's storage.
func reshape(flat []float64, r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = flat[i*c : (i+1)*c : (i+1)*c]
	}

	return out
}

func flatten(rows [][]float64) []float64 {
	var out []float64
	for _, row := range rows {
		out = append(out, row...)
	}

	return out
}

func writeInts(w *bufio.Writer, xs []int) {
	for i, x := range xs {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(strconv.Itoa(x))
	}
	w.WriteByte('\n')
}

func writeFloats(w *bufio.Writer, xs []float64) {
	for i, x := range xs {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	w.WriteByte('\n')
}
