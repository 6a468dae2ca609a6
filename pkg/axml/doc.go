// Package axml decodes Android's compiled binary XML chunk format (AXML),
// as used for compiled AndroidManifest.xml files, into an in-memory tree of
// elements and text nodes.
//
// # Overview
//
// The decoder is aimed at tools that need manifest metadata (package name,
// version, permissions, component declarations) without linking a full
// resource-table (resources.arsc) decoder. It performs a single synchronous
// pass over an in-memory byte buffer:
//
//  1. The top-level chunk header is read and must carry the binary XML tag.
//  2. The string pool and resource-id map are captured once each.
//  3. The remaining node chunks (namespace, element, and character-data
//     events) stream into a tree builder driven by an explicit element stack.
//
// The result is an immutable Document whose Root element holds attribute
// maps and child nodes in encounter order.
//
// # Format Support
//
// Deliberately out of scope, reported as ErrUnsupportedFeature:
//   - Styled strings (string pools with a non-zero style count)
//   - Strings longer than 32767 code units or bytes
//   - Namespaced element tags (namespaced attributes are supported)
//   - Resource-table resolution of reference values (rendered as
//     placeholders such as "Reference/2130903040" instead)
//
// # Hostile Input
//
// Every count and size field taken from the input is bounds-checked against
// the remaining buffer length before any allocation sized by it, so a
// corrupt or hostile manifest fails with a descriptive error instead of an
// oversized allocation. All failures are terminal; a decode never partially
// succeeds.
//
// # Usage
//
//	doc, err := axml.Parse(f)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc.Root.Tag)                          // "manifest"
//	fmt.Println(doc.Root.Attributes["package"])        // "com.example.app"
//
// Errors are classified with package sentinels and can be inspected with
// errors.Is:
//
//	if errors.Is(err, axml.ErrTruncatedInput) {
//	    // file was cut short
//	}
//
// # Package Structure
//
//   - chunk.go: little-endian primitive reader and chunk headers
//   - stringpool.go: UTF-8/UTF-16 string pool decoding and lookup
//   - value.go: typed resource values and their display form
//   - resmap.go: auxiliary resource-id table
//   - node.go: node-chunk payload decoding
//   - decoder.go: outer chunk scan and stack-based tree assembly
//   - document.go: the public Document/Node model
//   - errors.go: error sentinels and exit-code classification
package axml
