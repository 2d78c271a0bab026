package network

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	n := newFixture(t)

	var buf bytes.Buffer
	require.NoError(t, n.Describe(&buf))

	want := "A (0) B (0) \n" +
		"C (1) D (-6) \n" +
		"E (-3.92) \n" +
		"\n" +
		"A->C W: 3\n" +
		"A->D W: 6\n" +
		"B->C W: 4\n" +
		"B->D W: 5\n" +
		"C->E W: 2\n" +
		"D->E W: 4\n"
	assert.Equal(t, want, buf.String())
}

func TestLabel(t *testing.T) {
	tests := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for id, want := range tests {
		assert.Equal(t, want, Label(id), "id %d", id)
	}
}
