// Package serialization saves and restores trained networks in the .prkr format.
//
// Only scalar parameters are stored. Connectivity is implied: every node of a
// layer is linked to every node of the next, so the graph is rebuilt from the
// per-layer node counts.
//
// Body (all values little-endian):
//
//	[4 bytes:  activation method (int32)]
//	[2 bytes:  hidden layer count H (uint16)]
//	[2 bytes:  node count (uint16)] x (H + 2)     input, hidden..., output
//	[8 bytes:  bias (float64)] x total nodes      layer order, node order
//	[8 bytes:  weight (float64)] x total links    non-output layers, node order, out-link order
//
// Two layouts wrap the body:
//
//	Legacy:  [body]
//	Tagged:  [4 bytes: magic "PRKR"] [4 bytes: version (uint32)] [body] [32 bytes: SHA-256 of body]
//
// The legacy layout is byte-compatible with files written by earlier parkr
// releases. Encode writes the tagged layout unless told otherwise; Decode
// accepts both and tells them apart by the leading magic.
//
// Example usage:
//
//	if err := serialization.Save("model.prkr", net, serialization.Options{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	net, header, err := serialization.Load("model.prkr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(header.Layout, header.Sizes)
package serialization
