// Package activation implements the scalar activation functions used by parkr networks.
//
// Every Method maps to a pair of functions: the activation f(x) and its slope.
// Slopes are expressed in terms of the activated value y = f(x), which is what a
// network node stores after a forward pass:
//
//	Linear     f(x) = x                 f'(y) = 1
//	Sigmoid    f(x) = 1 / (1 + e^-x)    f'(y) = y(1 - y)
//	Tanh       f(x) = tanh(x)           f'(y) = 1 - y²
//	ReLU       f(x) = max(0, x)         f'(y) = 1 if y > 0, else 0
//	LeakyReLU  f(x) = max(0.01x, x)     f'(y) = 1 if y >= 0, else 0.01
//
// For the ReLU family the sign of y equals the sign of x, so the pre-activation
// value is never needed.
package activation

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownMethod is returned for a Method outside the recognised set.
var ErrUnknownMethod = errors.New("unknown activation method")

// LeakySlope is the slope of LeakyReLU for negative inputs.
const LeakySlope = 0.01

// Method selects an activation function.
//
// The underlying value is persisted as a little-endian int32, so existing
// constants must never be renumbered.
type Method int32

// Supported activation methods.
const (
	Linear Method = iota
	Sigmoid
	Tanh
	ReLU
	LeakyReLU
)

type entry struct {
	name       string
	activate   func(x float64) float64
	derivative func(y float64) float64
}

var table = [...]entry{
	Linear: {
		name:       "linear",
		activate:   func(x float64) float64 { return x },
		derivative: func(float64) float64 { return 1 },
	},
	Sigmoid: {
		name:       "sigmoid",
		activate:   func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		derivative: func(y float64) float64 { return y * (1 - y) },
	},
	Tanh: {
		name:       "tanh",
		activate:   math.Tanh,
		derivative: func(y float64) float64 { return 1 - y*y },
	},
	ReLU: {
		name:     "relu",
		activate: func(x float64) float64 { return math.Max(0, x) },
		derivative: func(y float64) float64 {
			if y > 0 {
				return 1
			}
			return 0
		},
	},
	LeakyReLU: {
		name:     "leaky_relu",
		activate: func(x float64) float64 { return math.Max(LeakySlope*x, x) },
		derivative: func(y float64) float64 {
			if y < 0 {
				return LeakySlope
			}
			return 1
		},
	},
}

// Valid reports whether m is a recognised method.
func (m Method) Valid() bool {
	return m >= 0 && int(m) < len(table)
}

// String returns the lower-case name of the method.
func (m Method) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return table[m].name
}

// Methods returns every recognised method in enumeration order.
func Methods() []Method {
	methods := make([]Method, len(table))
	for i := range table {
		methods[i] = Method(i)
	}
	return methods
}

// Parse resolves a method by name. Matching ignores case, and "-" is accepted
// in place of "_".
func Parse(name string) (Method, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, e := range table {
		if e.name == normalized {
			return Method(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMethod, "%q", name)
}

// Activate applies m to the pre-activation value x.
func Activate(m Method, x float64) (float64, error) {
	if !m.Valid() {
		return 0, errors.Wrapf(ErrUnknownMethod, "method %d", int32(m))
	}
	return table[m].activate(x), nil
}

// Derivative returns the slope of m at the activated value y.
func Derivative(m Method, y float64) (float64, error) {
	if !m.Valid() {
		return 0, errors.Wrapf(ErrUnknownMethod, "method %d", int32(m))
	}
	return table[m].derivative(y), nil
}

// Funcs returns the activation and derivative functions of m.
//
// Hot loops resolve the pair once and call the functions directly instead of
// checking the method on every node.
func Funcs(m Method) (activate, derivative func(float64) float64, err error) {
	if !m.Valid() {
		return nil, nil, errors.Wrapf(ErrUnknownMethod, "method %d", int32(m))
	}
	return table[m].activate, table[m].derivative, nil
}
