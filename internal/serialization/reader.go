package serialization

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"

	"github.com/OlliePugh/parkr/internal/activation"
	"github.com/OlliePugh/parkr/internal/network"
)

// Decode reads a model in either layout and rebuilds the network.
func Decode(r io.Reader) (*network.Network, Header, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Header{}, errors.Wrap(err, "failed to read model")
	}

	header := Header{Layout: LayoutLegacy}
	body := data

	if bytes.HasPrefix(data, []byte(MagicBytes)) {
		header.Layout = LayoutTagged
		if len(data) < prefixSize+ChecksumSize {
			return nil, Header{}, errors.Wrapf(ErrCorruptOrTruncated, "%d bytes is shorter than the tagged frame", len(data))
		}
		header.Version = binary.LittleEndian.Uint32(data[len(MagicBytes):prefixSize])
		if header.Version != FormatVersion {
			return nil, Header{}, errors.Wrapf(ErrUnsupportedVersion, "got %d, expected %d", header.Version, FormatVersion)
		}

		body = data[prefixSize : len(data)-ChecksumSize]
		var stored [ChecksumSize]byte
		copy(stored[:], data[len(data)-ChecksumSize:])
		if ComputeChecksum(body) != stored {
			return nil, Header{}, ErrChecksumMismatch
		}
	}

	n, err := decodeBody(body, &header)
	if err != nil {
		return nil, Header{}, err
	}
	return n, header, nil
}

// decodeBody parses the body, filling in header as fields are read.
func decodeBody(body []byte, header *Header) (*network.Network, error) {
	br := bytes.NewReader(body)

	var method int32
	if err := read(br, &method, "activation method"); err != nil {
		return nil, err
	}
	header.Method = activation.Method(method)

	var hidden uint16
	if err := read(br, &hidden, "hidden layer count"); err != nil {
		return nil, err
	}

	counts := make([]uint16, int(hidden)+2)
	if err := read(br, counts, "node counts"); err != nil {
		return nil, err
	}
	header.Sizes = make([]int, len(counts))
	for i, c := range counts {
		header.Sizes[i] = int(c)
	}

	// Check the remaining length before allocating parameter slices.
	nodes, links := header.Nodes(), header.Links()
	if want := int64(nodes+links) * scalarSize; int64(br.Len()) != want {
		return nil, errors.Wrapf(ErrCorruptOrTruncated, "expected %d parameter bytes, found %d", want, br.Len())
	}

	biases := make([]float64, nodes)
	if err := read(br, biases, "biases"); err != nil {
		return nil, err
	}
	weights := make([]float64, links)
	if err := read(br, weights, "weights"); err != nil {
		return nil, err
	}

	n, err := network.New(network.Config{
		Inputs:  header.Sizes[0],
		Outputs: header.Sizes[len(header.Sizes)-1],
		Hidden:  header.Sizes[1 : len(header.Sizes)-1],
		Method:  header.Method,
		// Every parameter is overwritten below.
		Rand: rand.New(rand.NewSource(0)), //nolint:gosec // not security sensitive
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to rebuild network")
	}
	if err := n.SetBiases(biases); err != nil {
		return nil, err
	}
	if err := n.SetWeights(weights); err != nil {
		return nil, err
	}
	return n, nil
}

func read(r io.Reader, data any, field string) error {
	err := binary.Read(r, binary.LittleEndian, data)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrapf(ErrCorruptOrTruncated, "reading %s", field)
	}
	return errors.Wrapf(err, "failed to read %s", field)
}

// Load reads a model from the file at path.
func Load(path string) (*network.Network, Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}
