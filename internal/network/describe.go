package network

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Describe writes a readable dump of the network to w.
//
// The first block has one line per layer listing each node's label and bias.
// The second block has one line per link, e.g. "A->C W: 0.25". Nodes are
// labelled A, B, ... Z, AA, AB, ... in ID order.
func (n *Network) Describe(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, l := range n.layers {
		for id := l.First; id < l.First+l.Count; id++ {
			fmt.Fprintf(bw, "%s (%s) ", Label(id), formatFloat(n.nodes[id].Bias))
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	for _, l := range n.layers[:len(n.layers)-1] {
		for id := l.First; id < l.First+l.Count; id++ {
			for _, lid := range n.nodes[id].Out {
				link := n.links[lid]
				fmt.Fprintf(bw, "%s->%s W: %s\n", Label(link.Parent), Label(link.Child), formatFloat(link.Weight))
			}
		}
	}

	return bw.Flush()
}

// Label returns the spreadsheet-style label of node id: A..Z, AA..AZ, BA...
func Label(id int) string {
	var buf []byte
	for id++; id > 0; id = (id - 1) / 26 {
		buf = append([]byte{byte('A' + (id-1)%26)}, buf...)
	}
	return string(buf)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
