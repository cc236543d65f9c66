// internal/fetch/contenttype.go
package fetch

import "strings"

// TextKind enumerates the text/* subtypes the crawler knows how to handle.
type TextKind int

const (
	TextPlain TextKind = iota
	TextHTML
	TextCSS
	TextJavascript
	TextXML
	TextMarkdown
	TextCSV
	TextRichtext
	TextTabSeparated
)

// Class says how a Content-Type header should be treated.
type Class int

const (
	// ClassUnknown covers a missing header.
	ClassUnknown Class = iota
	// ClassText covers the text/* subtypes above.
	ClassText
	// ClassOther is any other media type; its raw value is kept.
	ClassOther
)

type ContentType struct {
	Class Class
	Text  TextKind
	Value string
}

var textKinds = []struct {
	prefix string
	kind   TextKind
}{
	{"text/plain", TextPlain},
	{"text/html", TextHTML},
	{"text/css", TextCSS},
	{"text/javascript", TextJavascript},
	{"text/xml", TextXML},
	{"text/markdown", TextMarkdown},
	{"text/csv", TextCSV},
	{"text/richtext", TextRichtext},
	{"text/tab-separated-values", TextTabSeparated},
}

// Classify parses a Content-Type header value. Prefix matching keeps any
// charset parameter out of the way.
func Classify(value string) ContentType {
	if value == "" {
		return ContentType{Class: ClassUnknown}
	}
	for _, tk := range textKinds {
		if strings.HasPrefix(value, tk.prefix) {
			return ContentType{Class: ClassText, Text: tk.kind}
		}
	}
	return ContentType{Class: ClassOther, Value: value}
}

// IsText reports whether the value names a known text format.
func (ct ContentType) IsText() bool {
	return ct.Class == ClassText
}
