// Copyright 2025 The Parkr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/OlliePugh/parkr/internal/activation"
	"github.com/OlliePugh/parkr/internal/network"
)

// Network is a layered perceptron.
type Network = network.Network

// Config describes the topology of a new network.
type Config = network.Config

// New builds a network with randomly initialised weights and biases.
//
// Example:
//
//	net, err := nn.New(nn.Config{Inputs: 2, Hidden: []int{3}, Outputs: 1, Method: nn.Tanh})
func New(cfg Config) (*Network, error) {
	return network.New(cfg)
}

// Graph elements

// Kind identifies the role of a layer.
type Kind = network.Kind

// Layer kinds.
const (
	Input  = network.Input
	Hidden = network.Hidden
	Output = network.Output
)

// Layer is a contiguous range of node IDs.
type Layer = network.Layer

// Node is a neuron of the network.
type Node = network.Node

// Link is a weighted edge between nodes of adjacent layers.
type Link = network.Link

// MaxLayerSize is the largest number of nodes a layer may hold.
const MaxLayerSize = network.MaxLayerSize

// Label returns the display name of a node, as printed by Network.Describe.
func Label(id int) string {
	return network.Label(id)
}

// Activations

// Method selects the activation function of a network.
type Method = activation.Method

// Activation methods.
const (
	Linear    = activation.Linear
	Sigmoid   = activation.Sigmoid
	Tanh      = activation.Tanh
	ReLU      = activation.ReLU
	LeakyReLU = activation.LeakyReLU
)

// ParseMethod looks up an activation method by name, e.g. "sigmoid" or "leaky_relu".
func ParseMethod(name string) (Method, error) {
	return activation.Parse(name)
}

// Methods returns every supported activation method.
func Methods() []Method {
	return activation.Methods()
}

// Training

// TrainConfig holds the settings of Train and BatchTrain.
type TrainConfig = network.TrainConfig

// Options is a set of training flags.
type Options = network.Options

// Training flags.
const (
	SuppressLossLog = network.SuppressLossLog
	ExportLosses    = network.ExportLosses
)

// DefaultStepSize is the learning rate used when TrainConfig.StepSize is zero.
const DefaultStepSize = network.DefaultStepSize

// Errors

// Errors returned by the package. Match with errors.Is.
var (
	ErrDimensionMismatch   = network.ErrDimensionMismatch
	ErrDatasetSizeMismatch = network.ErrDatasetSizeMismatch
	ErrInvalidTopology     = network.ErrInvalidTopology
	ErrInvalidOperation    = network.ErrInvalidOperation
	ErrBatchSizeInvalid    = network.ErrBatchSizeInvalid
	ErrInvalidArgument     = network.ErrInvalidArgument
	ErrUnknownMethod       = activation.ErrUnknownMethod
)
