// Copyright 2025 The Parkr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package serialization_test

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlliePugh/parkr/nn"
	"github.com/OlliePugh/parkr/serialization"
)

func newNetwork(t *testing.T) *nn.Network {
	t.Helper()
	net, err := nn.New(nn.Config{
		Inputs:  2,
		Hidden:  []int{3},
		Outputs: 2,
		Method:  nn.LeakyReLU,
		Rand:    rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)
	return net
}

// TestRoundTrip verifies that a saved network predicts exactly like the original.
func TestRoundTrip(t *testing.T) {
	for _, layout := range []serialization.Layout{serialization.LayoutTagged, serialization.LayoutLegacy} {
		t.Run(layout.String(), func(t *testing.T) {
			net := newNetwork(t)
			path := filepath.Join(t.TempDir(), "model.prkr")

			require.NoError(t, serialization.Save(path, net, serialization.Options{Layout: layout}))
			loaded, header, err := serialization.Load(path)
			require.NoError(t, err)

			assert.Equal(t, layout, header.Layout)
			assert.Equal(t, nn.LeakyReLU, header.Method)
			assert.Equal(t, []int{2, 3, 2}, header.Sizes)

			in := []float64{0.25, -1.5}
			want, err := net.ForwardPass(in)
			require.NoError(t, err)
			got, err := loaded.ForwardPass(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

// TestDecodeTruncated verifies that a short stream is rejected.
func TestDecodeTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, serialization.Encode(&buf, newNetwork(t), serialization.Options{Layout: serialization.LayoutLegacy}))

	data := buf.Bytes()
	_, _, err := serialization.Decode(bytes.NewReader(data[:len(data)-3]))
	assert.True(t, errors.Is(err, serialization.ErrCorruptOrTruncated), "got %v", err)
}

// TestDecodeChecksum verifies that a flipped body byte is detected.
func TestDecodeChecksum(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, serialization.Encode(&buf, newNetwork(t), serialization.Options{}))

	data := buf.Bytes()
	data[12] ^= 0xff
	_, _, err := serialization.Decode(bytes.NewReader(data))
	assert.True(t, errors.Is(err, serialization.ErrChecksumMismatch), "got %v", err)
}
