package nx

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Bitmap is a view of one bitmap record: LZ4 block-compressed pixel data,
// four bytes per pixel. Width and height are not stored in the record;
// they come from the node payload that referenced it.
type Bitmap struct {
	width  uint16
	height uint16
	data   []byte
}

// NewBitmap wraps the compressed record bytes returned by File.GetBitmap.
func NewBitmap(data []byte, width, height uint16) Bitmap {
	return Bitmap{width: width, height: height, data: data}
}

// Width returns the width in pixels.
func (b Bitmap) Width() uint16 { return b.width }

// Height returns the height in pixels.
func (b Bitmap) Height() uint16 { return b.height }

// Len returns the decompressed size in bytes, width*height*4. Data
// requires an output buffer of exactly this size.
func (b Bitmap) Len() uint32 {
	return uint32(b.width) * uint32(b.height) * 4
}

// Data decompresses the pixel data into out. It fails with
// ErrSizeMismatch if out is not exactly Len() bytes or the compressed
// stream does not decompress to exactly Len() bytes. A zero-area bitmap
// decompresses successfully into an empty buffer.
//
// The block format stores no decompressed size of its own; Len is the
// size the decompressor is held to.
func (b Bitmap) Data(out []byte) error {
	if len(out) != int(b.Len()) {
		return fmt.Errorf("%w: out buffer is %d bytes, bitmap needs %d", ErrSizeMismatch, len(out), b.Len())
	}
	n, err := lz4.UncompressBlock(b.data, out)
	if err != nil {
		return fmt.Errorf("nx: decompress bitmap: %w", err)
	}
	if n != int(b.Len()) {
		return fmt.Errorf("%w: decompressed %d bytes, want %d", ErrSizeMismatch, n, b.Len())
	}
	return nil
}

// RawData returns the compressed bytes without decompressing, for callers
// that cache or forward the compressed form.
func (b Bitmap) RawData() []byte {
	return b.data
}
