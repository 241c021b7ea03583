package nx

import (
	"encoding/binary"
	"fmt"
)

// validateOffsets checks that all four tables and every offset-table entry
// (including each record's length-prefixed extent) lie inside the region.
// Audio entries are only checked against the region start, since their
// record length lives in the node payload, not the file.
func validateOffsets(data []byte, h header) error {
	size := uint64(len(data))
	if err := checkRange("node table", h.NodeOffset, NodeSize*uint64(h.NodeCount), size); err != nil {
		return err
	}

	tables := []struct {
		name  string
		off   uint64
		count uint32
	}{
		{"string", h.StringOffset, h.StringCount},
		{"bitmap", h.BitmapOffset, h.BitmapCount},
		{"audio", h.AudioOffset, h.AudioCount},
	}
	for _, t := range tables {
		if err := checkRange(t.name+" table", t.off, 8*uint64(t.count), size); err != nil {
			return err
		}
		for i := uint32(0); i < t.count; i++ {
			entry := binary.LittleEndian.Uint64(data[t.off+8*uint64(i):])
			name := fmt.Sprintf("%s record %d", t.name, i)
			switch t.name {
			case "string":
				if err := checkRange(name, entry, 2, size); err != nil {
					return err
				}
				n := uint64(binary.LittleEndian.Uint16(data[entry:]))
				if err := checkRange(name, entry+2, n, size); err != nil {
					return err
				}
			case "bitmap":
				if err := checkRange(name, entry, 4, size); err != nil {
					return err
				}
				n := uint64(binary.LittleEndian.Uint32(data[entry:]))
				if err := checkRange(name, entry+4, n, size); err != nil {
					return err
				}
			case "audio":
				if err := checkRange(name, entry, 0, size); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// checkRange reports whether [off, off+length) fits in size bytes,
// without overflowing.
func checkRange(name string, off, length, size uint64) error {
	if off > size || length > size-off {
		return fmt.Errorf("%w: %s spans [%d, %d+%d) outside region of %d bytes", ErrInvalidHeader, name, off, off, length, size)
	}
	return nil
}
