package axml

import (
	"encoding/binary"
	"fmt"
)

// chunkType identifies a binary XML chunk. The values come from Android's
// ResourceTypes.h; only a subset ever appears inside a compiled manifest.
type chunkType uint16

const (
	chunkNull           chunkType = 0x0000
	chunkStringPool     chunkType = 0x0001
	chunkTable          chunkType = 0x0002
	chunkXML            chunkType = 0x0003
	chunkStartNamespace chunkType = 0x0100
	chunkEndNamespace   chunkType = 0x0101
	chunkStartElement   chunkType = 0x0102
	chunkEndElement     chunkType = 0x0103
	chunkCData          chunkType = 0x0104
	chunkResourceMap    chunkType = 0x0180
)

// chunkHeaderSize is the fixed on-wire size of a chunk header:
// type (u16) + headerSize (u16) + size (u32).
const chunkHeaderSize = 8

// chunkHeader is the self-describing prefix of every chunk.
// Invariant: size >= headerSize >= chunkHeaderSize.
type chunkHeader struct {
	typ        chunkType
	headerSize uint16
	size       uint32
}

// reader decodes little-endian primitives from an in-memory buffer.
// It never copies the backing bytes; slices returned by bytes() alias buf.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

// need fails with ErrTruncatedInput unless n more bytes are available.
func (r *reader) need(n int) error {
	if r.remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncatedInput, n, r.pos, r.remaining())
	}
	return nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// bytes returns the next n bytes without copying.
func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// readChunkHeader reads the 8-byte chunk header at the current position and
// validates the size invariant. It does not validate the type tag; callers
// dispatch on it.
func readChunkHeader(r *reader) (chunkHeader, error) {
	typ, err := r.u16()
	if err != nil {
		return chunkHeader{}, err
	}
	headerSize, err := r.u16()
	if err != nil {
		return chunkHeader{}, err
	}
	size, err := r.u32()
	if err != nil {
		return chunkHeader{}, err
	}

	hdr := chunkHeader{typ: chunkType(typ), headerSize: headerSize, size: size}
	if hdr.size < uint32(hdr.headerSize) || hdr.headerSize < chunkHeaderSize {
		return chunkHeader{}, fmt.Errorf("%w: chunk 0x%04x declares size %d smaller than header size %d",
			ErrInvalidFormat, typ, hdr.size, hdr.headerSize)
	}
	return hdr, nil
}
