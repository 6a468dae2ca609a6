package axml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Primitives(t *testing.T) {
	var b bin
	b.u8(0x7f)
	b.u16(0x0102)
	b.u32(0xDEADBEEF)

	r := &reader{buf: b.Bytes()}

	v8, err := r.u8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7f), v8)

	v16, err := r.u16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v16)

	v32, err := r.u32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v32)

	assert.Equal(t, 0, r.remaining())

	_, err = r.u8()
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestReader_BytesAliasesBuffer(t *testing.T) {
	r := &reader{buf: []byte{1, 2, 3, 4}}
	b, err := r.bytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.Equal(t, 1, r.remaining())
}

func TestReader_Skip(t *testing.T) {
	r := &reader{buf: []byte{1, 2, 3}}
	require.NoError(t, r.skip(2))
	assert.Equal(t, 1, r.remaining())
	assert.ErrorIs(t, r.skip(2), ErrTruncatedInput)
}

func TestReadChunkHeader(t *testing.T) {
	var b bin
	b.u16(uint16(chunkStringPool))
	b.u16(28)
	b.u32(100)

	hdr, err := readChunkHeader(&reader{buf: b.Bytes()})
	require.NoError(t, err)
	assert.Equal(t, chunkStringPool, hdr.typ)
	assert.Equal(t, uint16(28), hdr.headerSize)
	assert.Equal(t, uint32(100), hdr.size)
}

func TestReadChunkHeader_SizeSmallerThanHeader(t *testing.T) {
	var b bin
	b.u16(uint16(chunkXML))
	b.u16(16)
	b.u32(8) // size < headerSize

	_, err := readChunkHeader(&reader{buf: b.Bytes()})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestReadChunkHeader_HeaderSmallerThanMinimum(t *testing.T) {
	var b bin
	b.u16(uint16(chunkXML))
	b.u16(4)
	b.u32(100)

	_, err := readChunkHeader(&reader{buf: b.Bytes()})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestReadChunkHeader_Truncated(t *testing.T) {
	_, err := readChunkHeader(&reader{buf: []byte{0x03, 0x00, 0x08}})
	assert.ErrorIs(t, err, ErrTruncatedInput)
}
