package nx

const (
	// headerSize is the fixed NX header: 4 magic bytes followed by four
	// (count u32, offset u64) pairs for the node, string, bitmap, and
	// audio tables.
	headerSize = 52

	// NodeSize is the stride of one node table record in bytes. Node
	// records are opaque to this package; the node-tree layer interprets
	// them.
	NodeSize = 20

	// AudioHeaderSize is the fixed audio format header carried at the
	// front of every audio record.
	AudioHeaderSize = 82
)

// Magic is the 4-byte NX file signature.
var Magic = [4]byte{'P', 'K', 'G', '4'}

// header mirrors the fixed-size header at offset 0 of an NX file.
// All offsets are file-relative byte offsets.
type header struct {
	NodeCount    uint32
	NodeOffset   uint64
	StringCount  uint32
	StringOffset uint64
	BitmapCount  uint32
	BitmapOffset uint64
	AudioCount   uint32
	AudioOffset  uint64
}
