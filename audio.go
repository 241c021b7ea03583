package nx

import "fmt"

// Audio is a zero-copy view of one audio record: a fixed 82-byte format
// header followed by the encoded payload.
type Audio struct {
	data  []byte
	index uint32
}

// NewAudio wraps the raw record bytes returned by File.GetAudio. index
// records the originating audio-table index; it is carried for
// diagnostics and plays no part in decoding.
func NewAudio(data []byte, index uint32) Audio {
	return Audio{data: data, index: index}
}

// Header returns the fixed audio format header, verbatim. It fails with
// ErrSizeMismatch if the record is shorter than AudioHeaderSize.
func (a Audio) Header() ([]byte, error) {
	if len(a.data) < AudioHeaderSize {
		return nil, fmt.Errorf("%w: audio record %d is %d bytes, header needs %d", ErrSizeMismatch, a.index, len(a.data), AudioHeaderSize)
	}
	return a.data[:AudioHeaderSize:AudioHeaderSize], nil
}

// Data returns the payload after the format header. It panics if the
// record is shorter than AudioHeaderSize.
func (a Audio) Data() []byte {
	return a.data[AudioHeaderSize:]
}

// Index returns the audio-table index this view was constructed from.
func (a Audio) Index() uint32 {
	return a.index
}
