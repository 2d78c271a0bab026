package network

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// squaredError returns mean((expected - predicted)²) over the outputs.
func squaredError(predicted, expected []float64) float64 {
	diff := make([]float64, len(expected))
	floats.SubTo(diff, expected, predicted)
	return floats.Dot(diff, diff) / float64(len(diff))
}

// mean returns the arithmetic mean of xs, or 0 for no values.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// Loss returns the mean squared error of the network over a dataset: the
// squared difference of every output against its expected value, averaged
// over all outputs of all rows. An empty dataset has zero loss.
//
// Loss runs a forward pass per row, so node values afterwards reflect the
// last row.
func (n *Network) Loss(inputs, expected [][]float64) (float64, error) {
	if err := n.checkDataset("dataset", inputs, expected); err != nil {
		return 0, err
	}
	return n.loss(inputs, expected), nil
}

func (n *Network) loss(inputs, expected [][]float64) float64 {
	costs := make([]float64, len(inputs))
	for i, row := range inputs {
		n.feed(n.state, row)
		costs[i] = squaredError(n.outputs(n.state), expected[i])
	}
	return mean(costs)
}

// checkDataset verifies that inputs and expected pair up row for row and that
// every row has the width of the input or output layer.
func (n *Network) checkDataset(name string, inputs, expected [][]float64) error {
	if len(inputs) != len(expected) {
		return errors.Wrapf(ErrDatasetSizeMismatch, "%s has %d rows but %d expected results", name, len(inputs), len(expected))
	}
	in, out := n.InputSize(), n.OutputSize()
	for i := range inputs {
		if len(inputs[i]) != in {
			return errors.Wrapf(ErrDimensionMismatch, "%s row %d: expecting %d input values, received %d", name, i, in, len(inputs[i]))
		}
		if len(expected[i]) != out {
			return errors.Wrapf(ErrDimensionMismatch, "%s row %d: expecting %d expected values, received %d", name, i, out, len(expected[i]))
		}
	}
	return nil
}
