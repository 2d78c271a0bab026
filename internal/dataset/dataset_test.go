package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sixPoint = `x,y,label
1,4,0
2,9,1
5,6,1
4,5,1
6,0.7,0
1,1.5,0
`

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader(sixPoint), Options{Inputs: 2, Header: true})
	require.NoError(t, err)

	require.Equal(t, 6, d.Len())
	assert.Equal(t, []float64{1, 4}, d.Inputs[0])
	assert.Equal(t, []float64{0}, d.Expected[0])
	assert.Equal(t, []float64{6, 0.7}, d.Inputs[4])
	assert.Equal(t, []float64{1}, d.Expected[3])
}

func TestReadInputsDoNotAliasExpected(t *testing.T) {
	d, err := Read(strings.NewReader("1,2,3\n"), Options{Inputs: 2})
	require.NoError(t, err)

	d.Inputs[0] = append(d.Inputs[0], 99)
	assert.Equal(t, []float64{3}, d.Expected[0])
}

func TestReadMultipleOutputsAndComments(t *testing.T) {
	input := "# a, b -> c, d\n0.5, 1, 0, 1\n 1, 0.5, 1, 0\n"
	d, err := Read(strings.NewReader(input), Options{Inputs: 2})
	require.NoError(t, err)

	require.Equal(t, 2, d.Len())
	assert.Equal(t, []float64{0.5, 1}, d.Inputs[0])
	assert.Equal(t, []float64{1, 0}, d.Expected[1])
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
	}{
		{"no input columns", "1,2\n", Options{Inputs: 0}},
		{"no rows", "", Options{Inputs: 1}},
		{"header only", "a,b\n", Options{Inputs: 1, Header: true}},
		{"no outputs", "1,2\n", Options{Inputs: 2}},
		{"not a number", "1,x,0\n", Options{Inputs: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.opts)
			assert.True(t, errors.Is(err, ErrInvalidData), "got %v", err)
		})
	}

	_, err := Read(strings.NewReader("1,2,3\n1,2\n"), Options{Inputs: 1})
	assert.Error(t, err, "ragged rows")
}

func TestSplit(t *testing.T) {
	d, err := Read(strings.NewReader(sixPoint), Options{Inputs: 2, Header: true})
	require.NoError(t, err)

	train, val := d.Split(0.5)
	assert.Equal(t, 3, train.Len())
	assert.Equal(t, 3, val.Len())
	assert.Equal(t, []float64{4, 5}, val.Inputs[0])
	assert.Equal(t, []float64{1}, val.Expected[0])

	train, val = d.Split(0)
	assert.Equal(t, 6, train.Len())
	assert.Equal(t, 0, val.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sixPoint), 0o600))

	d, err := Load(path, Options{Inputs: 2, Header: true})
	require.NoError(t, err)
	assert.Equal(t, 6, d.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"), Options{Inputs: 2})
	assert.Error(t, err)
}
