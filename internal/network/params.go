package network

import "github.com/pkg/errors"

// Biases returns the bias of every node, layer by layer and node by node.
func (n *Network) Biases() []float64 {
	biases := make([]float64, 0, len(n.nodes))
	for _, l := range n.layers {
		for id := l.First; id < l.First+l.Count; id++ {
			biases = append(biases, n.nodes[id].Bias)
		}
	}
	return biases
}

// SetBiases assigns biases in the order returned by Biases.
func (n *Network) SetBiases(biases []float64) error {
	if len(biases) != len(n.nodes) {
		return errors.Wrapf(ErrDimensionMismatch, "expecting %d biases, received %d", len(n.nodes), len(biases))
	}
	pos := 0
	for _, l := range n.layers {
		for id := l.First; id < l.First+l.Count; id++ {
			n.nodes[id].Bias = biases[pos]
			pos++
		}
	}
	return nil
}

// Weights returns the weight of every link, walking each non-output layer
// node by node and each node's outgoing links in order.
func (n *Network) Weights() []float64 {
	weights := make([]float64, 0, len(n.links))
	for _, l := range n.layers[:len(n.layers)-1] {
		for id := l.First; id < l.First+l.Count; id++ {
			for _, lid := range n.nodes[id].Out {
				weights = append(weights, n.links[lid].Weight)
			}
		}
	}
	return weights
}

// SetWeights assigns weights in the order returned by Weights.
func (n *Network) SetWeights(weights []float64) error {
	if len(weights) != len(n.links) {
		return errors.Wrapf(ErrDimensionMismatch, "expecting %d weights, received %d", len(n.links), len(weights))
	}
	pos := 0
	for _, l := range n.layers[:len(n.layers)-1] {
		for id := l.First; id < l.First+l.Count; id++ {
			for _, lid := range n.nodes[id].Out {
				n.links[lid].Weight = weights[pos]
				pos++
			}
		}
	}
	return nil
}
