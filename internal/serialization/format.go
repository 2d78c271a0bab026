package serialization

import (
	"crypto/sha256"

	"github.com/OlliePugh/parkr/internal/activation"
)

// Format constants.
const (
	MagicBytes    = "PRKR"
	FormatVersion = 1  // v1: tagged body with SHA-256 trailer
	ChecksumSize  = sha256.Size
	prefixSize    = len(MagicBytes) + 4 // magic + version
	methodSize    = 4                   // int32
	countSize     = 2                   // uint16
	scalarSize    = 8                   // float64
)

// Layout selects how the body is framed.
type Layout int

// Supported layouts.
const (
	// LayoutTagged prefixes magic and version and appends a checksum.
	LayoutTagged Layout = iota
	// LayoutLegacy writes the bare body.
	LayoutLegacy
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutTagged:
		return "tagged"
	case LayoutLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Options configures Encode and Save.
type Options struct {
	Layout Layout // Default: LayoutTagged.
}

// Header describes a decoded model.
type Header struct {
	Layout  Layout
	Version uint32 // 0 for the legacy layout.
	Method  activation.Method
	Sizes   []int // Node count of every layer, input first.
}

// Nodes returns the total node count described by the header.
func (h Header) Nodes() int {
	total := 0
	for _, s := range h.Sizes {
		total += s
	}
	return total
}

// Links returns the total link count implied by the header.
func (h Header) Links() int {
	total := 0
	for i := 0; i+1 < len(h.Sizes); i++ {
		total += h.Sizes[i] * h.Sizes[i+1]
	}
	return total
}

// ComputeChecksum computes the SHA-256 checksum of data.
func ComputeChecksum(data []byte) [ChecksumSize]byte {
	return sha256.Sum256(data)
}
