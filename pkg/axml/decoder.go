package axml

import (
	"fmt"
	"io"
)

// Parse reads all of r into memory and decodes it as a binary XML document.
// The decode is a single deterministic pass; any failure is terminal.
func Parse(r io.Reader) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return ParseBytes(buf)
}

// ParseBytes decodes a binary XML document from an in-memory buffer.
//
// The buffer must start with a top-level XML chunk (type 0x0003). The chunks
// inside it are scanned in order: the string pool and resource map are
// captured once each, and node chunks drive stack-based tree assembly.
// Decoding terminates as soon as the root element closes; any bytes after
// that are ignored.
func ParseBytes(buf []byte) (*Document, error) {
	r := &reader{buf: buf}

	hdr, err := readChunkHeader(r)
	if err != nil {
		return nil, err
	}
	if hdr.typ != chunkXML {
		return nil, fmt.Errorf("%w: top-level chunk type 0x%04x, want binary XML (0x0003)",
			ErrInvalidFormat, uint16(hdr.typ))
	}
	if int64(hdr.size) > int64(len(buf)) {
		return nil, fmt.Errorf("%w: document declares %d bytes, have %d",
			ErrTruncatedInput, hdr.size, len(buf))
	}
	if err := r.skip(int(hdr.headerSize) - chunkHeaderSize); err != nil {
		return nil, err
	}

	d := &decoder{r: r, namespaces: make(map[string]string)}
	return d.run()
}

// decoder carries the state of one decode pass: the captured string pool and
// resource map, the namespace table, and the stack of in-progress elements.
// All of it is discarded when the pass returns.
type decoder struct {
	r *reader

	pool        *stringPool
	resourceIDs []uint32
	poolSeen    bool
	mapSeen     bool

	// namespaces maps URI to prefix. StartNamespace inserts (overwriting on
	// collision); EndNamespace never removes, so late attributes can still
	// resolve prefixes declared anywhere earlier in the stream.
	namespaces map[string]string

	// stack holds the in-progress elements. Ownership of a completed
	// element transfers to its parent on pop; when the stack empties the
	// popped element is the document root.
	stack []*Element
}

// run scans chunks until the root element closes or the buffer is exhausted.
// Exhaustion exactly at a chunk boundary without a completed root is an
// incomplete document, never a silent empty success.
func (d *decoder) run() (*Document, error) {
	for d.r.remaining() > 0 {
		start := d.r.pos
		hdr, err := readChunkHeader(d.r)
		if err != nil {
			return nil, err
		}
		if int64(start)+int64(hdr.size) > int64(len(d.r.buf)) {
			return nil, fmt.Errorf("%w: chunk 0x%04x at offset %d declares %d bytes, only %d remain",
				ErrTruncatedInput, uint16(hdr.typ), start, hdr.size, len(d.r.buf)-start)
		}

		// The chunk payload gets its own bounded reader so a lying length
		// field inside one chunk cannot run into the next.
		cr := &reader{buf: d.r.buf[start+chunkHeaderSize : start+int(hdr.size)]}

		doc, err := d.consumeChunk(hdr, cr)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			return doc, nil
		}

		d.r.pos = start + int(hdr.size)
	}

	if !d.poolSeen {
		return nil, fmt.Errorf("%w: string pool", ErrMissingChunk)
	}
	if !d.mapSeen {
		return nil, fmt.Errorf("%w: resource map", ErrMissingChunk)
	}
	if len(d.stack) == 0 {
		return nil, fmt.Errorf("%w: no root element", ErrIncompleteDocument)
	}
	return nil, fmt.Errorf("%w: input ended with %d unterminated element(s)",
		ErrIncompleteDocument, len(d.stack))
}

// consumeChunk dispatches one chunk. It returns a non-nil Document only when
// the chunk closed the root element.
func (d *decoder) consumeChunk(hdr chunkHeader, cr *reader) (*Document, error) {
	switch hdr.typ {
	case chunkStringPool:
		pool, err := parseStringPool(cr)
		if err != nil {
			return nil, err
		}
		d.pool = pool
		d.poolSeen = true
		return nil, nil

	case chunkResourceMap:
		ids, err := parseResourceMap(cr, hdr)
		if err != nil {
			return nil, err
		}
		d.resourceIDs = ids
		d.mapSeen = true
		return nil, nil

	case chunkStartNamespace, chunkEndNamespace, chunkStartElement, chunkEndElement, chunkCData:
		if d.pool == nil {
			return nil, fmt.Errorf("%w: string pool (node chunk 0x%04x seen first)",
				ErrMissingChunk, uint16(hdr.typ))
		}
		if _, err := readNodeHeader(cr, hdr); err != nil {
			return nil, err
		}
		return d.consumeNode(hdr.typ, cr)

	default:
		return nil, fmt.Errorf("%w: unknown chunk type 0x%04x", ErrInvalidFormat, uint16(hdr.typ))
	}
}

// consumeNode advances the tree builder by one node event.
func (d *decoder) consumeNode(typ chunkType, cr *reader) (*Document, error) {
	switch typ {
	case chunkStartNamespace:
		ev, err := parseStartNamespace(cr)
		if err != nil {
			return nil, err
		}
		return nil, d.handleStartNamespace(ev)

	case chunkEndNamespace:
		// Read for stream consistency only; the namespace table keeps its
		// entries for the rest of the decode.
		_, err := parseStartNamespace(cr)
		return nil, err

	case chunkStartElement:
		ev, err := parseStartElement(cr)
		if err != nil {
			return nil, err
		}
		return nil, d.handleStartElement(ev)

	case chunkEndElement:
		if _, err := parseEndElement(cr); err != nil {
			return nil, err
		}
		return d.handleEndElement()

	case chunkCData:
		ev, err := parseCData(cr)
		if err != nil {
			return nil, err
		}
		return nil, d.handleCData(ev)
	}
	return nil, fmt.Errorf("%w: unknown node chunk type 0x%04x", ErrInvalidFormat, uint16(typ))
}

func (d *decoder) handleStartNamespace(ev startNamespace) error {
	uri, err := d.lookupRequired(ev.uri, "namespace URI")
	if err != nil {
		return err
	}
	prefix, err := d.lookupRequired(ev.prefix, "namespace prefix")
	if err != nil {
		return err
	}
	d.namespaces[uri] = prefix
	return nil
}

func (d *decoder) handleStartElement(ev startElement) error {
	if _, ok, err := d.pool.lookup(ev.ext.ns); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("%w: namespaced element tags", ErrUnsupportedFeature)
	}

	tag, err := d.lookupRequired(ev.ext.name, "element tag")
	if err != nil {
		return err
	}

	attrs := make(map[string]string, len(ev.attributes))
	for _, a := range ev.attributes {
		name, err := d.lookupRequired(a.name, "attribute name")
		if err != nil {
			return err
		}
		value, err := a.typedValue.resolve(d.pool)
		if err != nil {
			return err
		}

		key := name
		if uri, ok, err := d.pool.lookup(a.ns); err != nil {
			return err
		} else if ok {
			prefix, registered := d.namespaces[uri]
			if !registered {
				return fmt.Errorf("%w: %q", ErrNamespaceNotFound, uri)
			}
			key = prefix + ":" + name
		}

		// Duplicate keys overwrite in stream order.
		attrs[key] = value
	}

	d.stack = append(d.stack, &Element{Tag: tag, Attributes: attrs})
	return nil
}

// handleEndElement pops the current element. Closing the last open element
// produces the document; the Document is assembled here so the mandatory
// chunk check runs before the root is handed out.
func (d *decoder) handleEndElement() (*Document, error) {
	if len(d.stack) == 0 {
		return nil, fmt.Errorf("%w: end element without a matching start element", ErrInvalidFormat)
	}

	elem := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]

	if len(d.stack) > 0 {
		parent := d.stack[len(d.stack)-1]
		parent.Children = append(parent.Children, elem)
		return nil, nil
	}

	if !d.poolSeen {
		return nil, fmt.Errorf("%w: string pool", ErrMissingChunk)
	}
	if !d.mapSeen {
		return nil, fmt.Errorf("%w: resource map", ErrMissingChunk)
	}
	return &Document{
		Root:        elem,
		ResourceIDs: d.resourceIDs,
		StringCount: len(d.pool.strings),
		UTF8Pool:    d.pool.utf8,
	}, nil
}

func (d *decoder) handleCData(ev cdata) error {
	if len(d.stack) == 0 {
		return fmt.Errorf("%w: character data outside any element", ErrInvalidFormat)
	}
	text, err := ev.typedValue.resolve(d.pool)
	if err != nil {
		return err
	}
	parent := d.stack[len(d.stack)-1]
	parent.Children = append(parent.Children, &CharData{Data: text})
	return nil
}

// lookupRequired resolves a pool index that the format does not allow to be
// absent; the sentinel is reported as a missing string.
func (d *decoder) lookupRequired(index uint32, what string) (string, error) {
	s, ok, err := d.pool.lookup(index)
	if err != nil {
		return "", fmt.Errorf("%s: %w", what, err)
	}
	if !ok {
		return "", fmt.Errorf("%s: %w: index is the absent sentinel", what, ErrStringNotFound)
	}
	return s, nil
}
