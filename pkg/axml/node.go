package axml

import (
	"fmt"
)

// Node chunks share a common header: the chunk header followed by the
// source line number and an optional comment reference. Both extra fields
// are informational and do not influence tree assembly.
type nodeHeader struct {
	header     chunkHeader
	lineNumber uint32
	commentRef uint32
}

// readNodeHeader consumes lineNumber and commentRef from a chunk payload
// reader; the chunk header itself has already been read.
func readNodeHeader(cr *reader, hdr chunkHeader) (nodeHeader, error) {
	lineNumber, err := cr.u32()
	if err != nil {
		return nodeHeader{}, err
	}
	commentRef, err := cr.u32()
	if err != nil {
		return nodeHeader{}, err
	}
	return nodeHeader{header: hdr, lineNumber: lineNumber, commentRef: commentRef}, nil
}

// startNamespace declares a prefix for a namespace URI. endNamespace mirrors
// it; the decoder reads it for stream consistency but it carries no
// tree-level meaning.
type startNamespace struct {
	prefix uint32
	uri    uint32
}

func parseStartNamespace(cr *reader) (startNamespace, error) {
	prefix, err := cr.u32()
	if err != nil {
		return startNamespace{}, err
	}
	uri, err := cr.u32()
	if err != nil {
		return startNamespace{}, err
	}
	return startNamespace{prefix: prefix, uri: uri}, nil
}

// attrExt is the fixed part of a StartElement payload.
type attrExt struct {
	ns             uint32
	name           uint32
	attributeStart uint16
	attributeSize  uint16
	attributeCount uint16
	idIndex        uint16
	classIndex     uint16
	styleIndex     uint16
}

// attributeWireSize is the on-wire size of one attribute record:
// ns (u32) + name (u32) + rawValue (u32) + an 8-byte resource value.
const attributeWireSize = 20

// attribute is one attribute record of a StartElement. rawValue is the raw
// string form and is informational only; the typed value is authoritative.
type attribute struct {
	ns         uint32
	name       uint32
	rawValue   uint32
	typedValue resourceValue
}

type startElement struct {
	ext        attrExt
	attributes []attribute
}

func parseStartElement(cr *reader) (startElement, error) {
	var ext attrExt
	var err error
	if ext.ns, err = cr.u32(); err != nil {
		return startElement{}, err
	}
	if ext.name, err = cr.u32(); err != nil {
		return startElement{}, err
	}
	if ext.attributeStart, err = cr.u16(); err != nil {
		return startElement{}, err
	}
	if ext.attributeSize, err = cr.u16(); err != nil {
		return startElement{}, err
	}
	if ext.attributeCount, err = cr.u16(); err != nil {
		return startElement{}, err
	}
	if ext.idIndex, err = cr.u16(); err != nil {
		return startElement{}, err
	}
	if ext.classIndex, err = cr.u16(); err != nil {
		return startElement{}, err
	}
	if ext.styleIndex, err = cr.u16(); err != nil {
		return startElement{}, err
	}

	// Check the attribute block fits before allocating count slots.
	if int64(ext.attributeCount)*attributeWireSize > int64(cr.remaining()) {
		return startElement{}, fmt.Errorf("%w: element declares %d attributes but only %d bytes follow",
			ErrTruncatedInput, ext.attributeCount, cr.remaining())
	}

	attrs := make([]attribute, 0, ext.attributeCount)
	for i := 0; i < int(ext.attributeCount); i++ {
		var a attribute
		if a.ns, err = cr.u32(); err != nil {
			return startElement{}, err
		}
		if a.name, err = cr.u32(); err != nil {
			return startElement{}, err
		}
		if a.rawValue, err = cr.u32(); err != nil {
			return startElement{}, err
		}
		if a.typedValue, err = parseResourceValue(cr); err != nil {
			return startElement{}, err
		}
		attrs = append(attrs, a)
	}
	return startElement{ext: ext, attributes: attrs}, nil
}

type endElement struct {
	ns   uint32
	name uint32
}

func parseEndElement(cr *reader) (endElement, error) {
	ns, err := cr.u32()
	if err != nil {
		return endElement{}, err
	}
	name, err := cr.u32()
	if err != nil {
		return endElement{}, err
	}
	return endElement{ns: ns, name: name}, nil
}

// cdata is a character-data node: a raw string reference plus the typed
// value that tree assembly renders.
type cdata struct {
	data       uint32
	typedValue resourceValue
}

func parseCData(cr *reader) (cdata, error) {
	data, err := cr.u32()
	if err != nil {
		return cdata{}, err
	}
	value, err := parseResourceValue(cr)
	if err != nil {
		return cdata{}, err
	}
	return cdata{data: data, typedValue: value}, nil
}
