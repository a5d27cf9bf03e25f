package monospline

import (
	"encoding/json"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theothertomelliott/acyclic"
)

func TestDumpRoundTrip(t *testing.T) {
	s := mustNew(t, datasets[1].x, datasets[1].y)
	d := s.Dump()
	require.NoError(t, acyclic.Check(d))

	restored, err := FromDump(d)
	require.NoError(t, err)
	if diff := pretty.Compare(d, restored.Dump()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, s.Tangents(), restored.Tangents())
}

func TestFromDumpSortsPoints(t *testing.T) {
	d := &Dump{Points: []Point{{X: 2, Y: 8}, {X: 0, Y: 0}, {X: 3, Y: 27}, {X: 1, Y: 1}}}
	s, err := FromDump(d)
	require.NoError(t, err)

	want := &Dump{Points: []Point{{0, 0}, {1, 1}, {2, 8}, {3, 27}}}
	if diff := pretty.Compare(want, s.Dump()); diff != "" {
		t.Errorf("sorted dump mismatch (-want +got):\n%s", diff)
	}
	// The caller's dump is left untouched.
	assert.Equal(t, 2.0, d.Points[0].X)
}

func TestFromDumpRejectsDuplicates(t *testing.T) {
	_, err := FromDump(&Dump{Points: []Point{{1, 1}, {2, 2}, {1, 3}}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FromDump(&Dump{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJSON(t *testing.T) {
	s := mustNew(t, []float64{0, 1, 2, 3}, []float64{0, 1, 8, 27})
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"points":[{"x":0,"y":0},{"x":1,"y":1},{"x":2,"y":8},{"x":3,"y":27}]}`, string(b))

	var got Spline
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, s.Evaluate([]float64{-1, 0.5, 1.5, 4}), got.Evaluate([]float64{-1, 0.5, 1.5, 4}))
}

func TestUnmarshalJSONErrors(t *testing.T) {
	var s Spline
	assert.Error(t, json.Unmarshal([]byte(`{"points":`), &s))

	err := json.Unmarshal([]byte(`{"points":[{"x":0,"y":0},{"x":1,"y":1}]}`), &s)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, s.Len())
}
