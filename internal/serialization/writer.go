package serialization

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/OlliePugh/parkr/internal/network"
)

// Encode writes n to w using the layout in opts.
func Encode(w io.Writer, n *network.Network, opts Options) error {
	body, err := encodeBody(n)
	if err != nil {
		return err
	}

	switch opts.Layout {
	case LayoutLegacy:
		if _, err := w.Write(body); err != nil {
			return errors.Wrap(err, "failed to write model")
		}
		return nil
	case LayoutTagged:
		return writeTagged(w, body)
	default:
		return errors.Errorf("unknown layout %d", opts.Layout)
	}
}

func writeTagged(w io.Writer, body []byte) error {
	if _, err := io.WriteString(w, MagicBytes); err != nil {
		return errors.Wrap(err, "failed to write magic bytes")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return errors.Wrap(err, "failed to write version")
	}
	if _, err := w.Write(body); err != nil {
		return errors.Wrap(err, "failed to write model")
	}
	sum := ComputeChecksum(body)
	if _, err := w.Write(sum[:]); err != nil {
		return errors.Wrap(err, "failed to write checksum")
	}
	return nil
}

// encodeBody lays out method, counts, biases and weights.
func encodeBody(n *network.Network) ([]byte, error) {
	sizes := n.LayerSizes()
	hidden := len(sizes) - 2
	if hidden > math.MaxUint16 {
		return nil, errors.Wrapf(network.ErrInvalidTopology, "%d hidden layers cannot be stored", hidden)
	}

	var buf bytes.Buffer
	buf.Grow(methodSize + countSize*(len(sizes)+1) + scalarSize*(n.NodeCount()+n.LinkCount()))

	// Writes to a bytes.Buffer cannot fail.
	_ = binary.Write(&buf, binary.LittleEndian, int32(n.Method()))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(hidden))
	for _, s := range sizes {
		_ = binary.Write(&buf, binary.LittleEndian, uint16(s))
	}
	_ = binary.Write(&buf, binary.LittleEndian, n.Biases())
	_ = binary.Write(&buf, binary.LittleEndian, n.Weights())

	return buf.Bytes(), nil
}

// Save writes n to the file at path, replacing any existing file.
func Save(path string, n *network.Network, opts Options) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "failed to close file")
		}
	}()

	return Encode(file, n, opts)
}
