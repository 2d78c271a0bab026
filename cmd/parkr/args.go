package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseSizes parses a comma-separated list of layer sizes. An empty string
// means no hidden layers.
func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	sizes := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Errorf("layer %d: %q is not an integer", i+1, f)
		}
		sizes[i] = n
	}
	return sizes, nil
}

// parseValues parses a comma-separated list of numbers.
func parseValues(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Errorf("value %d: %q is not a number", i+1, f)
		}
		values[i] = v
	}
	return values, nil
}
