package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPairs(t *testing.T) {
	in := "# x,y\n0,0\n1, 1\n\n2,8\n3\t27\n"
	p, err := readPairs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []pair{{0, 0}, {1, 1}, {2, 8}, {3, 27}}, p)

	x, y := split(p)
	assert.Equal(t, []float64{0, 1, 2, 3}, x)
	assert.Equal(t, []float64{0, 1, 8, 27}, y)
}

func TestReadPairsErrors(t *testing.T) {
	_, err := readPairs(strings.NewReader("0,0\n1,2,3\n"))
	assert.ErrorContains(t, err, "line 2: want 2 columns, got 3")

	_, err = readPairs(strings.NewReader("0,zero\n"))
	assert.ErrorContains(t, err, "line 1")
}

func TestReadValues(t *testing.T) {
	v, err := readValues(strings.NewReader("0.5\n1.5 2.5\n3e0,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3, 4}, v)

	_, err = readValues(strings.NewReader("1\nx\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestMergeSorted(t *testing.T) {
	samples := []pair{{0, 0}, {1, 1}, {2, 8}}
	got := mergeSorted(samples, []float64{1.5, -1, 1}, []float64{3.28, -5, 1.01})
	assert.Equal(t, []pair{{-1, -5}, {0, 0}, {1, 1}, {1, 1.01}, {1.5, 3.28}, {2, 8}}, got)
}

func TestWritePairs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePairs(&buf, []pair{{0, 0}, {1.5, 3.2803}, {2, 8}}, outputFormat))
	assert.Equal(t, "0,0.00\n2,3.28\n2,8.00\n", buf.String())
}
