package network

// proposal holds the parameter values one training example asks for.
// weights is indexed by link ID and biases by node ID; input-node biases are
// never proposed and stay zero.
type proposal struct {
	weights []float64
	biases  []float64
}

func newProposal(n *Network) proposal {
	return proposal{
		weights: make([]float64, len(n.links)),
		biases:  make([]float64, len(n.nodes)),
	}
}

func (p proposal) clone() proposal {
	c := proposal{
		weights: make([]float64, len(p.weights)),
		biases:  make([]float64, len(p.biases)),
	}
	copy(c.weights, p.weights)
	copy(c.biases, p.biases)
	return c
}

// workspace is the scratch memory for evaluating one example at a time.
type workspace struct {
	state    *state
	delta    []float64
	proposal proposal
}

func (n *Network) newWorkspace() *workspace {
	return &workspace{
		state:    newState(len(n.nodes)),
		delta:    make([]float64, len(n.nodes)),
		proposal: newProposal(n),
	}
}

// propose runs a forward pass for one example, back-propagates the error
// against expected and fills w.proposal. It returns the example's squared
// error averaged over the outputs, as measured before any update.
func (n *Network) propose(w *workspace, inputs, expected []float64, step float64) float64 {
	n.feed(w.state, inputs)
	n.deltas(w.state, expected, w.delta)
	n.candidates(w.state, w.delta, step, w.proposal)
	return squaredError(n.outputs(w.state), expected)
}

// deltas fills delta for every non-input node. Children must be done before
// their parents, so layers are walked from the output backwards.
func (n *Network) deltas(s *state, expected, delta []float64) {
	last := len(n.layers) - 1

	out := n.layers[last]
	for i := 0; i < out.Count; i++ {
		id := out.First + i
		v := s.value[id]
		delta[id] = (expected[i] - v) * n.derivative(v)
	}

	for li := last - 1; li > 0; li-- {
		l := n.layers[li]
		for id := l.First; id < l.First+l.Count; id++ {
			var sum float64
			for _, lid := range n.nodes[id].Out {
				link := &n.links[lid]
				sum += link.Weight * delta[link.Child]
			}
			delta[id] = n.derivative(s.value[id]) * sum
		}
	}
}

// candidates writes the delta-rule values each parameter would take if this
// example alone were applied.
func (n *Network) candidates(s *state, delta []float64, step float64, p proposal) {
	for id := range n.links {
		link := &n.links[id]
		p.weights[id] = link.Weight + step*delta[link.Child]*s.value[link.Parent]
	}

	for _, l := range n.layers[1:] {
		for id := l.First; id < l.First+l.Count; id++ {
			p.biases[id] = n.nodes[id].Bias + step*delta[id]
		}
	}
}

// accumulator averages proposals over a batch.
type accumulator struct {
	sum  proposal
	size float64
}

func (n *Network) newAccumulator(size int) *accumulator {
	return &accumulator{sum: newProposal(n), size: float64(size)}
}

func (a *accumulator) add(p proposal) {
	for i, w := range p.weights {
		a.sum.weights[i] += w / a.size
	}
	for i, b := range p.biases {
		a.sum.biases[i] += b / a.size
	}
}

// apply writes the averaged proposals back. Input-node biases are left alone.
func (n *Network) apply(a *accumulator) {
	for id := range n.links {
		n.links[id].Weight = a.sum.weights[id]
	}
	for _, l := range n.layers[1:] {
		for id := l.First; id < l.First+l.Count; id++ {
			n.nodes[id].Bias = a.sum.biases[id]
		}
	}
}
