package network

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlliePugh/parkr/internal/activation"
)

func newSeeded(t *testing.T, seed int64, inputs, outputs int, hidden []int, m activation.Method) *Network {
	t.Helper()
	n, err := New(Config{
		Inputs:  inputs,
		Outputs: outputs,
		Hidden:  hidden,
		Method:  m,
		Rand:    rand.New(rand.NewSource(seed)),
	})
	require.NoError(t, err)
	return n
}

func TestNewTopology(t *testing.T) {
	tests := []struct {
		name    string
		inputs  int
		outputs int
		hidden  []int
	}{
		{"no hidden", 3, 2, nil},
		{"one hidden", 2, 1, []int{2}},
		{"deep", 4, 3, []int{5, 3, 7}},
		{"single nodes", 1, 1, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newSeeded(t, 1, tt.inputs, tt.outputs, tt.hidden, activation.Sigmoid)

			sizes := append(append([]int{tt.inputs}, tt.hidden...), tt.outputs)
			assert.Equal(t, sizes, n.LayerSizes())
			assert.Equal(t, tt.hidden, nilIfEmpty(n.HiddenSizes()))

			layers := n.Layers()
			require.Len(t, layers, len(sizes))
			assert.Equal(t, Input, layers[0].Kind)
			assert.Equal(t, Output, layers[len(layers)-1].Kind)
			for _, l := range layers[1 : len(layers)-1] {
				assert.Equal(t, Hidden, l.Kind)
			}

			totalNodes, totalLinks := 0, 0
			for i, size := range sizes {
				totalNodes += size
				if i+1 < len(sizes) {
					totalLinks += size * sizes[i+1]
				}
			}
			assert.Equal(t, totalNodes, n.NodeCount())
			assert.Equal(t, totalLinks, n.LinkCount())
		})
	}
}

func nilIfEmpty(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestNewLinksAdjacentLayersOnly(t *testing.T) {
	n := newSeeded(t, 2, 3, 2, []int{4, 2}, activation.Tanh)
	layers := n.Layers()

	between := make([]int, len(layers)-1)
	for id := 0; id < n.LinkCount(); id++ {
		link, err := n.Link(id)
		require.NoError(t, err)

		parent, err := n.Node(link.Parent)
		require.NoError(t, err)
		child, err := n.Node(link.Child)
		require.NoError(t, err)

		require.Equal(t, parent.Layer+1, child.Layer, "link %d skips a layer", id)
		assert.Contains(t, parent.Out, id)
		assert.Contains(t, child.In, id)
		between[parent.Layer]++
	}

	for i := range between {
		assert.Equal(t, layers[i].Count*layers[i+1].Count, between[i], "links between layer %d and %d", i, i+1)
	}

	for _, id := range layers[0].Nodes() {
		node, _ := n.Node(id)
		assert.Empty(t, node.In, "input node %d has incoming links", id)
	}
	for _, id := range layers[len(layers)-1].Nodes() {
		node, _ := n.Node(id)
		assert.Empty(t, node.Out, "output node %d has outgoing links", id)
	}
}

func TestNewInitialBounds(t *testing.T) {
	n := newSeeded(t, 3, 4, 3, []int{8}, activation.ReLU)
	sizes := n.LayerSizes()

	for id := 0; id < n.LinkCount(); id++ {
		link, _ := n.Link(id)
		parent, _ := n.Node(link.Parent)
		bound := 2 / float64(sizes[parent.Layer])
		assert.LessOrEqual(t, link.Weight, bound)
		assert.GreaterOrEqual(t, link.Weight, -bound)
	}

	for id := 0; id < n.NodeCount(); id++ {
		node, _ := n.Node(id)
		if node.Layer == 0 {
			assert.Zero(t, node.Bias)
			continue
		}
		bound := 2 / float64(sizes[node.Layer-1])
		assert.LessOrEqual(t, node.Bias, bound)
		assert.GreaterOrEqual(t, node.Bias, -bound)
	}
}

func TestNewSeedIsReproducible(t *testing.T) {
	a := newSeeded(t, 42, 3, 2, []int{4}, activation.Sigmoid)
	b := newSeeded(t, 42, 3, 2, []int{4}, activation.Sigmoid)
	c := newSeeded(t, 43, 3, 2, []int{4}, activation.Sigmoid)

	assert.Equal(t, a.Weights(), b.Weights())
	assert.Equal(t, a.Biases(), b.Biases())
	assert.NotEqual(t, a.Weights(), c.Weights())
}

func TestNewDefaultRand(t *testing.T) {
	n, err := New(Config{Inputs: 2, Outputs: 1, Method: activation.Linear})
	require.NoError(t, err)
	assert.Equal(t, 2, n.LinkCount())
}

func TestNewInvalidTopology(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero inputs", Config{Inputs: 0, Outputs: 1}},
		{"negative outputs", Config{Inputs: 1, Outputs: -1}},
		{"zero hidden", Config{Inputs: 1, Outputs: 1, Hidden: []int{3, 0}}},
		{"too large", Config{Inputs: MaxLayerSize + 1, Outputs: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(tt.cfg)
			assert.Nil(t, n)
			assert.True(t, errors.Is(err, ErrInvalidTopology), "got %v", err)
		})
	}
}

func TestNewUnknownMethod(t *testing.T) {
	n, err := New(Config{Inputs: 1, Outputs: 1, Method: activation.Method(9)})
	assert.Nil(t, n)
	assert.True(t, errors.Is(err, activation.ErrUnknownMethod))
}

func TestAddLayerOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	n := &Network{}
	err := n.addLayer(Hidden, 2, rng)
	assert.True(t, errors.Is(err, ErrInvalidTopology), "layer without predecessor must be input")
	err = n.addLayer(Output, 2, rng)
	assert.True(t, errors.Is(err, ErrInvalidTopology))

	require.NoError(t, n.addLayer(Input, 2, rng))
	err = n.addLayer(Input, 2, rng)
	assert.True(t, errors.Is(err, ErrInvalidTopology), "input layer cannot have a predecessor")

	err = n.addLayer(Hidden, 0, rng)
	assert.True(t, errors.Is(err, ErrInvalidTopology))

	assert.Len(t, n.layers, 1)
	assert.Len(t, n.nodes, 2)
	assert.Empty(t, n.links)
}

func TestNodeAndLinkOutOfRange(t *testing.T) {
	n := newSeeded(t, 1, 2, 1, nil, activation.Linear)

	_, err := n.Node(-1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = n.Node(n.NodeCount())
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = n.Link(n.LinkCount())
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestNodeReturnsCopy(t *testing.T) {
	n := newSeeded(t, 1, 2, 2, nil, activation.Linear)

	node, err := n.Node(0)
	require.NoError(t, err)
	node.Out[0] = 99
	node.Bias = 5

	again, _ := n.Node(0)
	assert.NotEqual(t, 99, again.Out[0])
	assert.Zero(t, again.Bias)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "input", Input.String())
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "output", Output.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
