package xmlfmt

import (
	"sort"
	"strings"

	"github.com/vvka-141/axmldump/pkg/axml"
)

const (
	// DefaultIndent is the number of spaces per nesting level.
	DefaultIndent = 2

	// AndroidNamespaceURI is the namespace compiled manifests use for
	// framework attributes.
	AndroidNamespaceURI = "http://schemas.android.com/apk/res/android"

	xmlPrologue = `<?xml version="1.0" encoding="utf-8"?>`
)

// escaper covers the five XML predefined entities. Applied to attribute
// values and character data, never to tags or keys (which come from the
// manifest's identifier namespace and cannot contain markup).
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Options controls presentation. The zero value means default indentation
// and no synthetic namespace declarations.
type Options struct {
	// Indent is the number of spaces per nesting level. Values below 1 fall
	// back to DefaultIndent.
	Indent int

	// Namespaces maps prefix to URI. Each entry is emitted as an
	// xmlns:prefix declaration on the root element, sorted by prefix.
	Namespaces map[string]string
}

// DefaultOptions returns the options used when no config file overrides
// them: two-space indentation and the android namespace declared on the
// root.
func DefaultOptions() Options {
	return Options{
		Indent: DefaultIndent,
		Namespaces: map[string]string{
			"android": AndroidNamespaceURI,
		},
	}
}

// Format renders the document as indented XML text with a trailing newline.
func Format(doc *axml.Document, opts Options) string {
	if opts.Indent < 1 {
		opts.Indent = DefaultIndent
	}

	var b strings.Builder
	b.WriteString(xmlPrologue)
	b.WriteByte('\n')
	if doc.Root != nil {
		writeElement(&b, doc.Root, 0, opts)
	}
	return b.String()
}

func writeElement(b *strings.Builder, e *axml.Element, level int, opts Options) {
	indent := strings.Repeat(" ", level*opts.Indent)

	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(e.Tag)

	if level == 0 {
		writeNamespaceDeclarations(b, opts.Namespaces)
	}
	writeAttributes(b, e.Attributes)

	if len(e.Children) == 0 {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">\n")

	for _, child := range e.Children {
		switch n := child.(type) {
		case *axml.Element:
			writeElement(b, n, level+1, opts)
		case *axml.CharData:
			b.WriteString(strings.Repeat(" ", (level+1)*opts.Indent))
			b.WriteString(escaper.Replace(n.Data))
			b.WriteByte('\n')
		}
	}

	b.WriteString(indent)
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">\n")
}

func writeNamespaceDeclarations(b *strings.Builder, namespaces map[string]string) {
	prefixes := make([]string, 0, len(namespaces))
	for prefix := range namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		b.WriteString(` xmlns:`)
		b.WriteString(prefix)
		b.WriteString(`="`)
		b.WriteString(escaper.Replace(namespaces[prefix]))
		b.WriteByte('"')
	}
}

func writeAttributes(b *strings.Builder, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(escaper.Replace(attrs[key]))
		b.WriteByte('"')
	}
}
