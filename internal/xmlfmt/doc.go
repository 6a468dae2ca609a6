// Package xmlfmt serializes a decoded axml.Document back to textual XML.
//
// The decoder core knows nothing about presentation; everything here is
// display policy:
//   - indentation (configurable width)
//   - self-closing childless elements
//   - escaping of attribute values and character data
//   - synthetic namespace declarations on the root element
//
// Compiled manifests strip the xmlns declarations the original source
// carried, so without injection the output would use prefixes like
// "android:" that no declaration introduces. Format re-declares configured
// prefixes on the root element to keep the output loadable by standard XML
// tooling.
//
// Attribute output is sorted by key: the decoder's attribute maps are
// unordered, and stable output matters more for diffing and testing than
// recovering the original attribute order, which the compiled form does not
// preserve anyway.
package xmlfmt
