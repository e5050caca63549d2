package xmltree

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Declaration is written at the start of every document.
const Declaration = "<?xml version='1.0' encoding='utf-8'?>"

// WriteTo writes the document as UTF-8 to w. It implements io.WriterTo.
//
// Elements without children are written as empty-element tags. Nodes
// outside the root element are written on lines of their own. Elements
// with element-only content (no text children at all) are indented by two
// spaces per level; content with text, including whitespace, is written
// as it is.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	cw.WriteString(Declaration)
	cw.WriteString("\n")
	for _, n := range doc.root.Children {
		if n.Kind == TextNode {
			continue
		}
		writeNode(cw, n, 0)
		cw.WriteString("\n")
	}
	if cw.err == nil {
		cw.err = cw.w.Flush()
	}
	return cw.n, cw.err
}

// Bytes returns the serialized document.
func (doc *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = doc.WriteTo(&buf)
	return buf.Bytes()
}

func writeNode(w *countingWriter, n *Node, depth int) {
	switch n.Kind {
	case ElementNode:
		w.WriteString("<")
		w.WriteString(n.QName())
		for _, a := range n.Attrs {
			w.WriteString(" ")
			if a.Prefix != "" {
				w.WriteString(a.Prefix)
				w.WriteString(":")
			}
			w.WriteString(a.Name)
			w.WriteString(`="`)
			w.WriteString(attrEscaper.Replace(a.Value))
			w.WriteString(`"`)
		}
		if len(n.Children) == 0 {
			w.WriteString("/>")
			return
		}
		w.WriteString(">")
		if !indentable(n) {
			for _, ch := range n.Children {
				writeNode(w, ch, depth+1)
			}
		} else {
			inner := strings.Repeat("  ", depth+1)
			for _, ch := range n.Children {
				w.WriteString("\n")
				w.WriteString(inner)
				writeNode(w, ch, depth+1)
			}
			w.WriteString("\n")
			w.WriteString(strings.Repeat("  ", depth))
		}
		w.WriteString("</")
		w.WriteString(n.QName())
		w.WriteString(">")
	case TextNode:
		w.WriteString(textEscaper.Replace(n.Data))
	case CommentNode:
		w.WriteString("<!--")
		w.WriteString(n.Data)
		w.WriteString("-->")
	case ProcInstNode:
		w.WriteString("<?")
		w.WriteString(n.Name)
		if n.Data != "" {
			w.WriteString(" ")
			w.WriteString(n.Data)
		}
		w.WriteString("?>")
	case DirectiveNode:
		w.WriteString("<!")
		w.WriteString(n.Data)
		w.WriteString(">")
	}
}

// indentable is a predicate: does n have children, none of them text?
func indentable(n *Node) bool {
	for _, ch := range n.Children {
		if ch.Kind == TextNode {
			return false
		}
	}
	return len(n.Children) > 0
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r", "&#13;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\t", "&#9;",
	"\n", "&#10;",
	"\r", "&#13;",
)

// countingWriter remembers the first error and the number of bytes written.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countingWriter) WriteString(s string) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.WriteString(s)
	cw.n += int64(n)
	cw.err = err
}
