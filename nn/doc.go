// Copyright 2025 The Parkr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feedforward network trained with
// backpropagation.
//
// # Overview
//
// A Network is a stack of layers: one input layer, any number of hidden
// layers and one output layer. Every node of a layer is linked to every node
// of the next. Each non-input node carries a bias and applies the network's
// activation function to the weighted sum of its parents.
//
// # Basic Usage
//
//	import "github.com/OlliePugh/parkr/nn"
//
//	func main() {
//	    net, err := nn.New(nn.Config{
//	        Inputs:  2,
//	        Hidden:  []int{2},
//	        Outputs: 1,
//	        Method:  nn.Sigmoid,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    loss, err := net.Train(10000, inputs, expected, inputs, expected, nn.TrainConfig{
//	        StepSize: 0.1,
//	        Options:  nn.SuppressLossLog,
//	    })
//
//	    outputs, err := net.ForwardPass([]float64{1, 4})
//	}
//
// # Training
//
// Train applies full-batch gradient descent. BatchTrain cuts the training
// set into contiguous mini-batches. Within a batch every example proposes new
// weights and biases from the current parameters; the proposals are averaged
// and applied once. Per-epoch losses are logged through log/slog and can be
// exported as CSV:
//
//	var buf bytes.Buffer
//	_, err := net.BatchTrain(100, 8, train, trainY, val, valY, nn.TrainConfig{
//	    Options:    nn.ExportLosses,
//	    LossWriter: &buf,
//	    Workers:    4,
//	})
//
// # Activations
//
// Linear, Sigmoid, Tanh, ReLU and LeakyReLU. The numeric values are part of
// the persisted model format and never change.
//
// # Persistence
//
// See package github.com/OlliePugh/parkr/serialization.
package nn
