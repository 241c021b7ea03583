// Package nx implements read-only access to NX container files.
//
// An NX file packs a hierarchical tree of typed nodes together with three
// resource pools: strings, LZ4-compressed bitmaps, and raw audio records.
// The format is built for memory-mapped, zero-copy access: every accessor
// resolves a table index to a byte location inside the mapped file and
// returns a view of the bytes in place. Only bitmap pixel data is ever
// copied, because it must be decompressed.
//
// # File Format Overview
//
// An NX file consists of:
//   - A 52-byte fixed header: 4 magic bytes ("PKG4") followed by four
//     (count, offset) pairs locating the node, string, bitmap, and audio
//     tables
//   - A node table of fixed 20-byte records, interpreted by the caller
//   - Three offset tables of 8-byte file-relative offsets, one level of
//     indirection to the variable-sized string, bitmap, and audio records
//
// A string record is a 2-byte length prefix plus UTF-8 bytes. A bitmap
// record is a 4-byte length prefix plus an LZ4 block whose decompressed
// size is width*height*4. An audio record is raw bytes whose total length
// is stored in the referencing node payload, not the record; the first 82
// bytes are a fixed format header.
//
// # Basic Usage
//
//	f, err := nx.Open("Data.nx")
//	if err != nil { ... }
//	defer f.Close()
//
//	name := f.GetString(3)
//	bmp := nx.NewBitmap(f.GetBitmap(0), width, height)
//	out := make([]byte, bmp.Len())
//	err = bmp.Data(out)
//
// Width, height, audio lengths, and valid index ranges all come from the
// node tree, which this package exposes only as raw records via GetNode.
//
// # Trust Model
//
// Open validates the header's length and magic; it does not validate
// table offsets, and accessors perform no index bounds checks. Callers
// guarantee index arguments against the header counts, exactly as the
// node tree's own payloads guarantee them. On a malformed file, or with
// an out-of-range index, accessors panic via the runtime's slice bounds
// checks rather than returning an error. That includes Audio.Data on a
// record shorter than its fixed header: a too-short record means the
// caller-supplied length was wrong, a precondition violation like a bad
// index. Only Audio.Header and Bitmap.Data report size violations as
// errors, because they are the seams where a caller-owned buffer or the
// decompressor's output meets the file. The WithOffsetValidation option
// opts into verifying every table offset at open time for callers that
// handle untrusted files.
//
// A File is safe for concurrent use without locking once constructed.
package nx
