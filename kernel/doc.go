// Package kernel is the frame codec: typed field conversion, single-field decoders,
// the dual-cursor Reader, the placeholder aware Writer and the declarative drivers that
// run a list of field definitions against them.
//
// Decoding a frame:
//
//	r := kernel.NewReader(frame)
//	err := r.ReadAndTranslateCRC(2, crc.Modbus, 0, -2)
//	err = kernel.AutoDecode(kernel.DecodingSet{
//		kernel.DecodeDef{Name: "head", Len: 1, Target: []byte{0x68}},
//		kernel.DecodeDef{Name: "reading", Len: 4, Type: kernel.Uint32(0.01), Unit: kernel.SymbolCubicMeter},
//	}, r)
//
// Building a frame:
//
//	w := kernel.NewWriter()
//	w.WriteBytes("head", []byte{0x68}, "68")
//	_ = w.WritePlaceholder("crc", 2)
//	_ = w.WriteCRC(crc.Modbus, 0, -2, "crc", false)
package kernel
