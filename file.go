package nx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is a read-only view over an NX container.
//
// A File is immutable after construction and safe for concurrent use by
// any number of goroutines without locking: every accessor is a read-only
// projection over the same byte region, and bitmap decompression writes
// only into caller-owned buffers.
//
// All slices returned by accessors borrow from the underlying region and
// must not be used after Close.
type File struct {
	data []byte
	m    mmap.MMap // nil when constructed via FromBytes
	hdr  header
}

// Open memory-maps the NX file at path and validates its header.
//
// Open fails with ErrTooShort if the file is smaller than the fixed
// header, ErrInvalidMagic if the signature does not match, and a wrapped
// OS error for any open or mapping failure. With WithOffsetValidation it
// additionally fails with ErrInvalidHeader if any table offset falls
// outside the file.
func Open(path string, opts ...Option) (*File, error) {
	osf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nx: open %s: %w", path, err)
	}
	defer osf.Close()

	st, err := osf.Stat()
	if err != nil {
		return nil, fmt.Errorf("nx: stat %s: %w", path, err)
	}
	if st.Size() < headerSize {
		return nil, ErrTooShort
	}

	m, err := mmap.Map(osf, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("nx: mmap %s: %w", path, err)
	}
	f, err := FromBytes(m, opts...)
	if err != nil {
		_ = m.Unmap()
		return nil, err
	}
	f.m = m
	return f, nil
}

// FromBytes constructs a File over an in-memory byte arena holding NX
// container bytes. data must remain valid and unmodified for the lifetime
// of the File and of every view handed out by it.
//
// The error contract is the same as Open's, minus the OS errors.
func FromBytes(data []byte, opts ...Option) (*File, error) {
	var cfg openConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(data) < headerSize {
		return nil, ErrTooShort
	}
	if !bytes.Equal(data[:4], Magic[:]) {
		return nil, ErrInvalidMagic
	}
	hdr := readHeader(data)
	if cfg.validateOffsets {
		if err := validateOffsets(data, hdr); err != nil {
			return nil, err
		}
	}
	return &File{data: data, hdr: hdr}, nil
}

// Close releases the memory mapping. Every view previously obtained from
// the File is invalidated. Close is a no-op for a File built with
// FromBytes.
func (f *File) Close() error {
	if f.m == nil {
		return nil
	}
	m := f.m
	f.m = nil
	f.data = nil
	return m.Unmap()
}

// NodeCount reports the number of node records in the file.
func (f *File) NodeCount() uint32 { return f.hdr.NodeCount }

// StringCount reports the number of strings in the file.
func (f *File) StringCount() uint32 { return f.hdr.StringCount }

// BitmapCount reports the number of bitmaps in the file.
func (f *File) BitmapCount() uint32 { return f.hdr.BitmapCount }

// AudioCount reports the number of audio records in the file.
func (f *File) AudioCount() uint32 { return f.hdr.AudioCount }

// tableOffset reads the index'th entry of the offset table at base.
func (f *File) tableOffset(base uint64, index uint32) uint64 {
	p := base + 8*uint64(index)
	return binary.LittleEndian.Uint64(f.data[p : p+8])
}

// GetNode returns the raw fixed-stride node record at index. Node records
// are opaque here; the node-tree layer decodes them.
//
// The caller guarantees index < NodeCount(); no bounds check is performed.
func (f *File) GetNode(index uint32) []byte {
	p := f.hdr.NodeOffset + NodeSize*uint64(index)
	return f.data[p : p+NodeSize : p+NodeSize]
}

// Root returns the root node record, the entry point for tree traversal.
func (f *File) Root() []byte {
	return f.GetNode(0)
}

// GetStringBytes returns the UTF-8 bytes of the string at index, borrowed
// from the underlying region. The bytes are not validated as UTF-8.
//
// The caller guarantees index < StringCount().
func (f *File) GetStringBytes(index uint32) []byte {
	p := f.tableOffset(f.hdr.StringOffset, index)
	n := uint64(binary.LittleEndian.Uint16(f.data[p : p+2]))
	return f.data[p+2 : p+2+n : p+2+n]
}

// GetString returns the string at index. Unlike GetStringBytes this
// copies, since Go string conversion must.
func (f *File) GetString(index uint32) string {
	return string(f.GetStringBytes(index))
}

// GetAudio returns length bytes of the audio record at index, verbatim,
// including the fixed format header. Audio records carry no embedded
// length; length comes from the node payload that referenced the record.
//
// The caller guarantees index < AudioCount() and that length matches the
// referencing node payload.
func (f *File) GetAudio(index, length uint32) []byte {
	p := f.tableOffset(f.hdr.AudioOffset, index)
	end := p + uint64(length)
	return f.data[p:end:end]
}

// GetBitmap returns the LZ4 block-compressed pixel data of the bitmap at
// index, with the record's length prefix stripped. Pair it with the
// width and height from the referencing node payload via NewBitmap.
//
// The caller guarantees index < BitmapCount().
func (f *File) GetBitmap(index uint32) []byte {
	p := f.tableOffset(f.hdr.BitmapOffset, index)
	n := uint64(binary.LittleEndian.Uint32(f.data[p : p+4]))
	end := p + 4 + n
	return f.data[p+4 : end : end]
}
