package axml

// Document is the result of one decode pass. It is built exactly once and
// never mutated afterwards; there is no update or deletion API.
type Document struct {
	// Root is the document's root element. It is always non-nil on a
	// successful decode; a stream that ends with elements still open fails
	// with ErrIncompleteDocument instead of producing an empty document.
	Root *Element

	// ResourceIDs is the decoded resource-id map, one Android resource
	// identifier per string-pool index. Informational only.
	ResourceIDs []uint32

	// StringCount is the number of entries in the document's string pool.
	StringCount int

	// UTF8Pool reports whether the string pool used UTF-8 entry encoding
	// (false means UTF-16LE).
	UTF8Pool bool
}

// Node is one node of the decoded tree: either an *Element or a *CharData.
type Node interface {
	node()
}

// Element is an XML element with its resolved attributes and children.
type Element struct {
	// Tag is the element name. Element tags are never namespaced.
	Tag string

	// Attributes maps final attribute keys ("android:versionCode",
	// "package") to resolved display values. Keys are unique; duplicate
	// attribute records overwrite in stream order. Iteration order is
	// unspecified.
	Attributes map[string]string

	// Children holds child elements and character data in encounter order.
	Children []Node
}

// CharData is a run of character data inside an element.
type CharData struct {
	Data string
}

func (*Element) node()  {}
func (*CharData) node() {}
