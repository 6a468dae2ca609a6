package xmlfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/axmldump/pkg/axml"
)

func TestFormat_MinimalManifest(t *testing.T) {
	doc := &axml.Document{
		Root: &axml.Element{
			Tag:        "manifest",
			Attributes: map[string]string{"package": "com.example"},
		},
	}

	got := Format(doc, DefaultOptions())

	want := `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android" package="com.example"/>
`
	assert.Equal(t, want, got)
}

func TestFormat_NestedElementsAndIndent(t *testing.T) {
	doc := &axml.Document{
		Root: &axml.Element{
			Tag:        "manifest",
			Attributes: map[string]string{"package": "com.example"},
			Children: []axml.Node{
				&axml.Element{
					Tag:        "application",
					Attributes: map[string]string{"android:label": "Demo"},
					Children: []axml.Node{
						&axml.Element{Tag: "activity", Attributes: map[string]string{}},
					},
				},
			},
		},
	}

	got := Format(doc, Options{Indent: 4})

	want := `<?xml version="1.0" encoding="utf-8"?>
<manifest package="com.example">
    <application android:label="Demo">
        <activity/>
    </application>
</manifest>
`
	assert.Equal(t, want, got)
}

func TestFormat_AttributesSortedByKey(t *testing.T) {
	doc := &axml.Document{
		Root: &axml.Element{
			Tag: "manifest",
			Attributes: map[string]string{
				"package":             "com.example",
				"android:versionName": "1.0",
				"android:versionCode": "42",
			},
		},
	}

	got := Format(doc, Options{})

	idx := func(s string) int { return strings.Index(got, s) }
	require.Positive(t, idx("android:versionCode"))
	assert.Less(t, idx("android:versionCode"), idx("android:versionName"))
	assert.Less(t, idx("android:versionName"), idx("package"))
}

func TestFormat_CharDataEscaped(t *testing.T) {
	doc := &axml.Document{
		Root: &axml.Element{
			Tag: "note",
			Children: []axml.Node{
				&axml.CharData{Data: `a < b & "c"`},
			},
		},
	}

	got := Format(doc, Options{})

	assert.Contains(t, got, "  a &lt; b &amp; &quot;c&quot;\n")
}

func TestFormat_AttributeValueEscaped(t *testing.T) {
	doc := &axml.Document{
		Root: &axml.Element{
			Tag:        "manifest",
			Attributes: map[string]string{"label": `<hi> & 'bye'`},
		},
	}

	got := Format(doc, Options{})

	assert.Contains(t, got, `label="&lt;hi&gt; &amp; &apos;bye&apos;"`)
}

func TestFormat_NoNamespaces(t *testing.T) {
	doc := &axml.Document{
		Root: &axml.Element{Tag: "manifest"},
	}

	got := Format(doc, Options{Namespaces: nil})

	assert.NotContains(t, got, "xmlns")
	assert.Contains(t, got, "<manifest/>")
}

func TestFormat_MultipleNamespacesSortedByPrefix(t *testing.T) {
	doc := &axml.Document{
		Root: &axml.Element{Tag: "manifest"},
	}

	got := Format(doc, Options{Namespaces: map[string]string{
		"tools":   "http://schemas.android.com/tools",
		"android": AndroidNamespaceURI,
	}})

	assert.Contains(t, got,
		`<manifest xmlns:android="http://schemas.android.com/apk/res/android" xmlns:tools="http://schemas.android.com/tools"/>`)
}

func TestFormat_IndentBelowOneFallsBack(t *testing.T) {
	doc := &axml.Document{
		Root: &axml.Element{
			Tag:      "manifest",
			Children: []axml.Node{&axml.Element{Tag: "application"}},
		},
	}

	got := Format(doc, Options{Indent: 0})

	assert.Contains(t, got, "\n  <application/>\n")
}
