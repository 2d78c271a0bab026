// Copyright 2025 The Parkr Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization saves and loads trained parkr networks.
//
// Two layouts are supported. The legacy layout stores the activation method,
// the layer sizes, every bias and every weight, little-endian and without a
// header. The tagged layout (the default) wraps the same body in a "PRKR"
// magic, a format version and a SHA-256 checksum. Loading detects the layout
// automatically.
//
// Example:
//
//	if err := serialization.Save("model.prkr", net, serialization.Options{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	net, header, err := serialization.Load("model.prkr")
package serialization

import (
	"io"

	"github.com/OlliePugh/parkr/internal/serialization"
	"github.com/OlliePugh/parkr/nn"
)

// Layout selects the on-disk framing.
type Layout = serialization.Layout

// Supported layouts.
const (
	LayoutTagged = serialization.LayoutTagged
	LayoutLegacy = serialization.LayoutLegacy
)

// Options controls encoding.
type Options = serialization.Options

// Header describes a decoded model.
type Header = serialization.Header

// FormatVersion is the version written in the tagged layout.
const FormatVersion = serialization.FormatVersion

// Errors returned while decoding.
var (
	ErrCorruptOrTruncated = serialization.ErrCorruptOrTruncated
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
)

// Encode writes the parameters of n to w.
func Encode(w io.Writer, n *nn.Network, opts Options) error {
	return serialization.Encode(w, n, opts)
}

// Decode reads a model written by Encode in either layout.
func Decode(r io.Reader) (*nn.Network, Header, error) {
	return serialization.Decode(r)
}

// Save writes the parameters of n to the file at path.
func Save(path string, n *nn.Network, opts Options) error {
	return serialization.Save(path, n, opts)
}

// Load reads a model from the file at path.
func Load(path string) (*nn.Network, Header, error) {
	return serialization.Load(path)
}
