// Package network implements a layered, fully-connected feedforward network.
//
// The graph is stored as three flat arenas owned by the Network: layers, nodes
// and links. Nodes and links refer to each other by integer ID, so the graph
// has no pointer cycles and is released with the Network.
//
// Every node of layer i is linked to every node of layer i+1. Topology is
// fixed by New; only weights and biases change afterwards.
package network

import (
	"math"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/OlliePugh/parkr/internal/activation"
)

// MaxLayerSize is the largest layer the persisted uint16 header can describe.
const MaxLayerSize = math.MaxUint16

// Kind tags the position of a layer in the network.
type Kind uint8

// Layer kinds.
const (
	Input Kind = iota
	Hidden
	Output
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Hidden:
		return "hidden"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// Link is a weighted edge between nodes of adjacent layers.
type Link struct {
	Parent int // Node ID in layer i.
	Child  int // Node ID in layer i+1.
	Weight float64
}

// Node is a single neuron.
//
// In and Out hold link IDs in creation order. Input-layer nodes have no In
// links and output-layer nodes have no Out links. The node's current value and
// raw value are held by the Network, see Network.Value.
type Node struct {
	Layer int
	Bias  float64
	In    []int
	Out   []int
}

// Layer is a contiguous range of node IDs.
type Layer struct {
	Kind  Kind
	First int // ID of the first node.
	Count int
}

// Nodes returns the node IDs of the layer in order.
func (l Layer) Nodes() []int {
	ids := make([]int, l.Count)
	for i := range ids {
		ids[i] = l.First + i
	}
	return ids
}

// Config describes the topology of a new network.
type Config struct {
	Inputs  int               // Nodes in the input layer.
	Outputs int               // Nodes in the output layer.
	Hidden  []int             // Node count of each hidden layer, input side first.
	Method  activation.Method // Applied to every non-input node.

	// Rand draws the initial weights and biases. Nil uses a generator that is
	// seeded once per process.
	Rand *rand.Rand
}

// Network is a feedforward multilayer perceptron.
//
// A Network is not safe for concurrent use.
type Network struct {
	method     activation.Method
	activate   func(float64) float64
	derivative func(float64) float64

	layers []Layer
	nodes  []Node
	links  []Link

	state *state
}

var (
	defaultRandMu sync.Mutex
	defaultRand   *rand.Rand
)

// New builds a network from cfg.
func New(cfg Config) (*Network, error) {
	sizes := make([]int, 0, len(cfg.Hidden)+2)
	sizes = append(sizes, cfg.Inputs)
	sizes = append(sizes, cfg.Hidden...)
	sizes = append(sizes, cfg.Outputs)
	for i, size := range sizes {
		if size <= 0 || size > MaxLayerSize {
			return nil, errors.Wrapf(ErrInvalidTopology, "layer %d has %d nodes, need 1..%d", i, size, MaxLayerSize)
		}
	}

	act, deriv, err := activation.Funcs(cfg.Method)
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		defaultRandMu.Lock()
		defer defaultRandMu.Unlock()
		if defaultRand == nil {
			//nolint:gosec // weight initialisation is not security sensitive
			defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		rng = defaultRand
	}

	n := &Network{
		method:     cfg.Method,
		activate:   act,
		derivative: deriv,
		layers:     make([]Layer, 0, len(sizes)),
	}

	for i, size := range sizes {
		kind := Hidden
		switch i {
		case 0:
			kind = Input
		case len(sizes) - 1:
			kind = Output
		}
		if err := n.addLayer(kind, size, rng); err != nil {
			return nil, err
		}
	}

	n.state = newState(len(n.nodes))
	return n, nil
}

// addLayer appends a layer of size nodes and links every node of the previous
// layer to each of them. Only the first layer may be, and must be, an input
// layer.
func (n *Network) addLayer(kind Kind, size int, rng *rand.Rand) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidTopology, "%s layer has %d nodes", kind, size)
	}
	if kind == Input && len(n.layers) > 0 {
		return errors.Wrap(ErrInvalidTopology, "input layer cannot follow another layer")
	}
	if kind != Input && len(n.layers) == 0 {
		return errors.Wrapf(ErrInvalidTopology, "%s layer needs a preceding layer", kind)
	}

	layer := Layer{Kind: kind, First: len(n.nodes), Count: size}
	index := len(n.layers)

	if kind == Input {
		for i := 0; i < size; i++ {
			n.nodes = append(n.nodes, Node{Layer: index})
		}
		n.layers = append(n.layers, layer)
		return nil
	}

	prev := n.layers[index-1]
	bound := 2 / float64(prev.Count)

	for i := 0; i < size; i++ {
		n.nodes = append(n.nodes, Node{
			Layer: index,
			Bias:  uniform(rng, bound),
			In:    make([]int, 0, prev.Count),
		})
	}

	for p := prev.First; p < prev.First+prev.Count; p++ {
		for c := layer.First; c < layer.First+layer.Count; c++ {
			id := len(n.links)
			n.links = append(n.links, Link{
				Parent: p,
				Child:  c,
				Weight: uniform(rng, bound),
			})
			n.nodes[p].Out = append(n.nodes[p].Out, id)
			n.nodes[c].In = append(n.nodes[c].In, id)
		}
	}

	n.layers = append(n.layers, layer)
	return nil
}

// uniform draws from [-bound, bound].
func uniform(rng *rand.Rand, bound float64) float64 {
	return (rng.Float64()*2 - 1) * bound
}

// Method returns the activation method applied to non-input nodes.
func (n *Network) Method() activation.Method {
	return n.method
}

// Layers returns a copy of the layer table, input layer first.
func (n *Network) Layers() []Layer {
	return slices.Clone(n.layers)
}

// LayerSizes returns the node count of every layer, input layer first.
func (n *Network) LayerSizes() []int {
	sizes := make([]int, len(n.layers))
	for i, l := range n.layers {
		sizes[i] = l.Count
	}
	return sizes
}

// HiddenSizes returns the node count of every hidden layer.
func (n *Network) HiddenSizes() []int {
	sizes := n.LayerSizes()
	return sizes[1 : len(sizes)-1]
}

// InputSize returns the number of input nodes.
func (n *Network) InputSize() int {
	return n.layers[0].Count
}

// OutputSize returns the number of output nodes.
func (n *Network) OutputSize() int {
	return n.layers[len(n.layers)-1].Count
}

// NodeCount returns the total number of nodes.
func (n *Network) NodeCount() int {
	return len(n.nodes)
}

// LinkCount returns the total number of links.
func (n *Network) LinkCount() int {
	return len(n.links)
}

// Node returns a copy of node id.
func (n *Network) Node(id int) (Node, error) {
	if id < 0 || id >= len(n.nodes) {
		return Node{}, errors.Wrapf(ErrInvalidArgument, "node %d out of range [0, %d)", id, len(n.nodes))
	}
	node := n.nodes[id]
	node.In = slices.Clone(node.In)
	node.Out = slices.Clone(node.Out)
	return node, nil
}

// Link returns a copy of link id.
func (n *Network) Link(id int) (Link, error) {
	if id < 0 || id >= len(n.links) {
		return Link{}, errors.Wrapf(ErrInvalidArgument, "link %d out of range [0, %d)", id, len(n.links))
	}
	return n.links[id], nil
}
