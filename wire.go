package nx

import "encoding/binary"

// readHeader decodes the fixed header from the start of data.
// The caller guarantees len(data) >= headerSize.
func readHeader(data []byte) header {
	var h header
	h.NodeCount = binary.LittleEndian.Uint32(data[4:8])
	h.NodeOffset = binary.LittleEndian.Uint64(data[8:16])
	h.StringCount = binary.LittleEndian.Uint32(data[16:20])
	h.StringOffset = binary.LittleEndian.Uint64(data[20:28])
	h.BitmapCount = binary.LittleEndian.Uint32(data[28:32])
	h.BitmapOffset = binary.LittleEndian.Uint64(data[32:40])
	h.AudioCount = binary.LittleEndian.Uint32(data[40:44])
	h.AudioOffset = binary.LittleEndian.Uint64(data[44:52])
	return h
}
