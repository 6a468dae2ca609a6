package axml

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// sentinelIndex marks an absent string reference. It is never a real index.
const sentinelIndex = 0xFFFFFFFF

// flagUTF8 selects UTF-8 entry encoding for the whole pool; when clear the
// pool is UTF-16LE.
const flagUTF8 = 1 << 8

// stringPoolHeaderSize is the on-wire size of the pool header: the 8-byte
// chunk header plus stringCount, styleCount, flags, stringDataOffset and
// styleDataOffset (u32 each).
const stringPoolHeaderSize = 28

// stringPool is the deduplicated string table referenced everywhere else by
// integer index. It owns all decoded string storage for the whole decode;
// lookups hand out the interned values, never fresh copies.
type stringPool struct {
	strings []string
	utf8    bool
}

// parseStringPool decodes a string pool chunk. cr covers the chunk payload:
// everything after the 8-byte chunk header.
func parseStringPool(cr *reader) (*stringPool, error) {
	stringCount, err := cr.u32()
	if err != nil {
		return nil, err
	}
	styleCount, err := cr.u32()
	if err != nil {
		return nil, err
	}
	flags, err := cr.u32()
	if err != nil {
		return nil, err
	}
	stringStart, err := cr.u32()
	if err != nil {
		return nil, err
	}
	if _, err := cr.u32(); err != nil { // styleDataOffset, unused
		return nil, err
	}

	if styleCount != 0 {
		return nil, fmt.Errorf("%w: string pool carries %d styled strings",
			ErrUnsupportedFeature, styleCount)
	}

	// The offset table is stringCount u32 values. Check it fits before
	// allocating anything sized by the count.
	if int64(stringCount)*4 > int64(cr.remaining()) {
		return nil, fmt.Errorf("%w: string pool declares %d entries but only %d bytes follow",
			ErrTruncatedInput, stringCount, cr.remaining())
	}
	offsets := make([]uint32, stringCount)
	for i := range offsets {
		offsets[i], err = cr.u32()
		if err != nil {
			return nil, err
		}
	}

	// stringDataOffset is relative to the chunk start; cr starts after the
	// 8-byte chunk header.
	if stringStart < stringPoolHeaderSize || int64(stringStart)-chunkHeaderSize > int64(len(cr.buf)) {
		return nil, fmt.Errorf("%w: string data offset %d outside pool chunk",
			ErrInvalidFormat, stringStart)
	}
	data := cr.buf[stringStart-chunkHeaderSize:]

	pool := &stringPool{
		strings: make([]string, 0, stringCount),
		utf8:    flags&flagUTF8 != 0,
	}
	for _, off := range offsets {
		var s string
		if pool.utf8 {
			s, err = decodeUTF8Entry(data, off)
		} else {
			s, err = decodeUTF16Entry(data, off)
		}
		if err != nil {
			return nil, err
		}
		pool.strings = append(pool.strings, s)
	}
	return pool, nil
}

// lookup resolves a pool index. ok is false for the absent sentinel; an
// out-of-bounds index is an error, never silently absent.
func (p *stringPool) lookup(index uint32) (s string, ok bool, err error) {
	if index == sentinelIndex {
		return "", false, nil
	}
	if uint64(index) >= uint64(len(p.strings)) {
		return "", false, fmt.Errorf("%w: index %d, pool holds %d strings",
			ErrStringNotFound, index, len(p.strings))
	}
	return p.strings[index], true, nil
}

// decodeUTF16Entry decodes a UTF-16LE pool entry: a u16 code-unit count
// followed by that many code units.
func decodeUTF16Entry(data []byte, off uint32) (string, error) {
	if int64(off)+2 > int64(len(data)) {
		return "", fmt.Errorf("%w: string entry offset %d outside string data",
			ErrTruncatedInput, off)
	}
	length := binary.LittleEndian.Uint16(data[off:])
	if length&0x8000 != 0 {
		return "", fmt.Errorf("%w: string longer than 32767 code units", ErrUnsupportedFeature)
	}

	start := int64(off) + 2
	end := start + int64(length)*2
	if end > int64(len(data)) {
		return "", fmt.Errorf("%w: string entry at offset %d needs %d bytes",
			ErrTruncatedInput, off, end-start)
	}

	units := make([]uint16, length)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[start+int64(i)*2:])
	}
	return decodeUTF16Units(units)
}

// decodeUTF16Units converts code units to a string, rejecting unpaired
// surrogates instead of substituting replacement characters.
func decodeUTF16Units(units []uint16) (string, error) {
	var b strings.Builder
	b.Grow(len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u < 0xDC00: // high surrogate
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] >= 0xE000 {
				return "", fmt.Errorf("%w: unpaired high surrogate 0x%04x", ErrInvalidEncoding, u)
			}
			b.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case u >= 0xDC00 && u < 0xE000: // low surrogate without a lead
			return "", fmt.Errorf("%w: unpaired low surrogate 0x%04x", ErrInvalidEncoding, u)
		default:
			b.WriteRune(rune(u))
		}
	}
	return b.String(), nil
}

// decodeUTF8Entry decodes a UTF-8 pool entry: a character-count byte
// (ignored), a byte-length byte, then that many bytes.
func decodeUTF8Entry(data []byte, off uint32) (string, error) {
	if int64(off)+2 > int64(len(data)) {
		return "", fmt.Errorf("%w: string entry offset %d outside string data",
			ErrTruncatedInput, off)
	}
	length := data[off+1]
	if length&0x80 != 0 {
		return "", fmt.Errorf("%w: string uses multi-byte length encoding", ErrUnsupportedFeature)
	}

	start := int64(off) + 2
	end := start + int64(length)
	if end > int64(len(data)) {
		return "", fmt.Errorf("%w: string entry at offset %d needs %d bytes",
			ErrTruncatedInput, off, length)
	}

	raw := data[start:end]
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: invalid UTF-8 sequence in string entry at offset %d",
			ErrInvalidEncoding, off)
	}
	return string(raw), nil
}
