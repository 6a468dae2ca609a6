package axml

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// Test fixtures are assembled byte-by-byte so every test states exactly
// what wire layout it exercises.

type bin struct {
	bytes.Buffer
}

func (b *bin) u8(v uint8) {
	b.WriteByte(v)
}

func (b *bin) u16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.Write(tmp[:])
}

func (b *bin) u32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.Write(tmp[:])
}

// buildChunk wraps a payload in a chunk header. The declared size always
// matches the real length; tests that need a lying size build headers by
// hand.
func buildChunk(typ uint16, headerSize uint16, payload []byte) []byte {
	var b bin
	b.u16(typ)
	b.u16(headerSize)
	b.u32(uint32(chunkHeaderSize + len(payload)))
	b.Write(payload)
	return b.Bytes()
}

// buildDocument wraps chunks in a top-level binary XML chunk.
func buildDocument(chunks ...[]byte) []byte {
	var payload bin
	for _, c := range chunks {
		payload.Write(c)
	}
	return buildChunk(uint16(chunkXML), chunkHeaderSize, payload.Bytes())
}

// buildUTF8Pool builds a string pool chunk with UTF-8 entries.
func buildUTF8Pool(strs ...string) []byte {
	var data bin
	offsets := make([]uint32, len(strs))
	for i, s := range strs {
		offsets[i] = uint32(data.Len())
		data.u8(uint8(len(s))) // character count, ignored by the decoder
		data.u8(uint8(len(s))) // byte length
		data.WriteString(s)
	}

	var p bin
	p.u32(uint32(len(strs)))                                // stringCount
	p.u32(0)                                                // styleCount
	p.u32(flagUTF8)                                         // flags
	p.u32(uint32(stringPoolHeaderSize + 4*len(strs)))       // stringDataOffset
	p.u32(0)                                                // styleDataOffset
	for _, off := range offsets {
		p.u32(off)
	}
	p.Write(data.Bytes())
	return buildChunk(uint16(chunkStringPool), stringPoolHeaderSize, p.Bytes())
}

// buildUTF16Pool builds a string pool chunk with UTF-16LE entries.
func buildUTF16Pool(strs ...string) []byte {
	var data bin
	offsets := make([]uint32, len(strs))
	for i, s := range strs {
		offsets[i] = uint32(data.Len())
		units := utf16.Encode([]rune(s))
		data.u16(uint16(len(units)))
		for _, u := range units {
			data.u16(u)
		}
	}

	var p bin
	p.u32(uint32(len(strs)))
	p.u32(0)
	p.u32(0) // UTF-16 flag clear
	p.u32(uint32(stringPoolHeaderSize + 4*len(strs)))
	p.u32(0)
	for _, off := range offsets {
		p.u32(off)
	}
	p.Write(data.Bytes())
	return buildChunk(uint16(chunkStringPool), stringPoolHeaderSize, p.Bytes())
}

func buildResourceMap(ids ...uint32) []byte {
	var p bin
	for _, id := range ids {
		p.u32(id)
	}
	return buildChunk(uint16(chunkResourceMap), chunkHeaderSize, p.Bytes())
}

// buildNodeChunk wraps an event body with the common node header
// (line number and absent comment reference).
func buildNodeChunk(typ chunkType, body []byte) []byte {
	var p bin
	p.u32(1)             // line number
	p.u32(sentinelIndex) // comment reference, absent
	p.Write(body)
	return buildChunk(uint16(typ), 16, p.Bytes())
}

func buildStartNamespace(prefix, uri uint32) []byte {
	var b bin
	b.u32(prefix)
	b.u32(uri)
	return buildNodeChunk(chunkStartNamespace, b.Bytes())
}

func buildEndNamespace(prefix, uri uint32) []byte {
	var b bin
	b.u32(prefix)
	b.u32(uri)
	return buildNodeChunk(chunkEndNamespace, b.Bytes())
}

// testAttr describes one attribute record of a start-element fixture.
type testAttr struct {
	ns   uint32
	name uint32
	typ  ValueType
	data uint32
}

func buildStartElement(ns, name uint32, attrs ...testAttr) []byte {
	var b bin
	b.u32(ns)
	b.u32(name)
	b.u16(20)                 // attributeStart
	b.u16(attributeWireSize)  // attributeSize
	b.u16(uint16(len(attrs))) // attributeCount
	b.u16(0)                  // idIndex
	b.u16(0)                  // classIndex
	b.u16(0)                  // styleIndex
	for _, a := range attrs {
		b.u32(a.ns)
		b.u32(a.name)
		b.u32(sentinelIndex) // rawValue, informational
		b.u16(8)             // value size
		b.u8(0)              // reserved
		b.u8(uint8(a.typ))
		b.u32(a.data)
	}
	return buildNodeChunk(chunkStartElement, b.Bytes())
}

func buildEndElement(ns, name uint32) []byte {
	var b bin
	b.u32(ns)
	b.u32(name)
	return buildNodeChunk(chunkEndElement, b.Bytes())
}

func buildCData(dataRef uint32, typ ValueType, data uint32) []byte {
	var b bin
	b.u32(dataRef)
	b.u16(8)
	b.u8(0)
	b.u8(uint8(typ))
	b.u32(data)
	return buildNodeChunk(chunkCData, b.Bytes())
}
