package network

import "github.com/pkg/errors"

// state holds the per-node results of a forward pass, indexed by node ID.
type state struct {
	value []float64 // Post-activation value.
	raw   []float64 // Pre-activation value; the input itself for input nodes.
}

func newState(nodes int) *state {
	return &state{
		value: make([]float64, nodes),
		raw:   make([]float64, nodes),
	}
}

// ForwardPass evaluates the network for inputs and returns the output layer
// values in node order.
func (n *Network) ForwardPass(inputs []float64) ([]float64, error) {
	if err := n.checkInputs(inputs); err != nil {
		return nil, err
	}
	n.feed(n.state, inputs)
	return n.outputs(n.state), nil
}

// ComputeNode recomputes node id from the current values of its parents and
// returns its new value. Input nodes hold externally supplied values and
// cannot be computed.
func (n *Network) ComputeNode(id int) (float64, error) {
	if id < 0 || id >= len(n.nodes) {
		return 0, errors.Wrapf(ErrInvalidArgument, "node %d out of range [0, %d)", id, len(n.nodes))
	}
	if n.layers[n.nodes[id].Layer].Kind == Input {
		return 0, errors.Wrapf(ErrInvalidOperation, "cannot compute value of input node %d", id)
	}
	n.evaluate(n.state, id)
	return n.state.value[id], nil
}

// Value returns the post-activation value of node id from the last forward pass.
func (n *Network) Value(id int) (float64, error) {
	if id < 0 || id >= len(n.nodes) {
		return 0, errors.Wrapf(ErrInvalidArgument, "node %d out of range [0, %d)", id, len(n.nodes))
	}
	return n.state.value[id], nil
}

// RawValue returns the pre-activation value of node id from the last forward
// pass. For input nodes this is the input itself.
func (n *Network) RawValue(id int) (float64, error) {
	if id < 0 || id >= len(n.nodes) {
		return 0, errors.Wrapf(ErrInvalidArgument, "node %d out of range [0, %d)", id, len(n.nodes))
	}
	return n.state.raw[id], nil
}

func (n *Network) checkInputs(inputs []float64) error {
	if want := n.InputSize(); len(inputs) != want {
		return errors.Wrapf(ErrDimensionMismatch, "expecting %d input values, received %d", want, len(inputs))
	}
	return nil
}

// feed runs a full forward pass into s. It reads weights and biases only, so
// several states may be fed concurrently.
func (n *Network) feed(s *state, inputs []float64) {
	in := n.layers[0]
	for i, v := range inputs {
		s.value[in.First+i] = v
		s.raw[in.First+i] = v
	}

	for _, l := range n.layers[1:] {
		for id := l.First; id < l.First+l.Count; id++ {
			n.evaluate(s, id)
		}
	}
}

func (n *Network) evaluate(s *state, id int) {
	node := &n.nodes[id]

	var sum float64
	for _, lid := range node.In {
		link := &n.links[lid]
		sum += link.Weight * s.value[link.Parent]
	}

	raw := sum + node.Bias
	s.raw[id] = raw
	s.value[id] = n.activate(raw)
}

func (n *Network) outputs(s *state) []float64 {
	out := n.layers[len(n.layers)-1]
	result := make([]float64, out.Count)
	copy(result, s.value[out.First:out.First+out.Count])
	return result
}
