package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// pair is one output line.
type pair struct {
	x, y float64
}

func fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
}

func isComment(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}

// readPairs reads one "x,y" pair per line.
func readPairs(r io.Reader) ([]pair, error) {
	var p []pair
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if isComment(line) {
			continue
		}
		f := fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("line %d: want 2 columns, got %d", lineNo, len(f))
		}
		xv, err := strconv.ParseFloat(f[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		yv, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		p = append(p, pair{xv, yv})
	}
	return p, sc.Err()
}

// readValues reads numbers separated by whitespace or commas, any number per line.
func readValues(r io.Reader) ([]float64, error) {
	var v []float64
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if isComment(line) {
			continue
		}
		for _, f := range fields(line) {
			xv, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			v = append(v, xv)
		}
	}
	return v, sc.Err()
}

// mergeSorted joins samples and interpolated points, ordered by x. Samples
// come before interpolated points with the same x.
func mergeSorted(samples []pair, xi, yi []float64) []pair {
	out := make([]pair, 0, len(samples)+len(xi))
	out = append(out, samples...)
	for i := range xi {
		out = append(out, pair{xi[i], yi[i]})
	}
	slices.SortStableFunc(out, func(a, b pair) int {
		return cmp.Compare(a.x, b.x)
	})
	return out
}

func split(p []pair) (x, y []float64) {
	x = make([]float64, len(p))
	y = make([]float64, len(p))
	for i := range p {
		x[i], y[i] = p[i].x, p[i].y
	}
	return x, y
}

func zip(x, y []float64) []pair {
	p := make([]pair, len(x))
	for i := range x {
		p[i] = pair{x[i], y[i]}
	}
	return p
}

func writePairs(w io.Writer, p []pair, format string) error {
	bw := bufio.NewWriter(w)
	for _, v := range p {
		if _, err := fmt.Fprintf(bw, format, v.x, v.y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	v, err := read(f)
	if err != nil {
		return v, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
