/*
Package xmltree reads XML documents into a mutable tree, finds nodes with
XPath and writes the tree back.

Translation files have to survive a read/write cycle as unchanged as
possible: comments, processing instructions, whitespace between elements,
attribute order and namespace prefixes are kept. CDATA sections are
turned into ordinary (escaped) text. The XML declaration of the input is
dropped; the output always starts with

	<?xml version='1.0' encoding='utf-8'?>

We use this library for XPath queries:

	github.com/antchfx/xpath

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/encoding/htmlindex"
)

// T traces with key 'rtlfix.xmltree'.
func T() tracing.Trace {
	return tracing.Select("rtlfix.xmltree")
}

// Errors returned by Parse.
var (
	ErrNoRoot       = errors.New("xmltree: document has no root element")
	ErrUnbalanced   = errors.New("xmltree: start and end tags do not match")
	ErrExtraContent = errors.New("xmltree: content after root element")
)

// NodeKind is the type of a node.
type NodeKind int8

// Node kinds
const (
	DocumentNode NodeKind = iota
	ElementNode
	TextNode
	CommentNode
	ProcInstNode
	DirectiveNode
)

func (k NodeKind) String() string {
	switch k {
	case DocumentNode:
		return "document"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case ProcInstNode:
		return "procinst"
	case DirectiveNode:
		return "directive"
	}
	return fmt.Sprintf("NodeKind(%d)", int8(k))
}

// Attr is an attribute of an element. Prefix is the namespace prefix as
// written in the document, not the namespace URL.
type Attr struct {
	Prefix, Name string
	Value        string
}

// Node is a node of a document tree.
type Node struct {
	Kind     NodeKind
	Prefix   string // namespace prefix of an element
	Name     string // local name of an element, target of a processing instruction
	Attrs    []Attr
	Data     string // content of text, comment, processing instruction or directive
	Parent   *Node
	Children []*Node
}

// Document is the tree representation of an XML document.
type Document struct {
	root *Node
}

// QName returns the qualified name of an element, i.e. prefix:name.
func (n *Node) QName() string {
	if n.Prefix == "" {
		return n.Name
	}
	return n.Prefix + ":" + n.Name
}

func (n *Node) String() string {
	switch n.Kind {
	case ElementNode:
		return "<" + n.QName() + ">"
	case TextNode:
		return fmt.Sprintf("%q", n.Data)
	}
	return n.Kind.String()
}

// Attr returns the value of the attribute with qualified name qname.
func (n *Node) Attr(qname string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Prefix == "" && a.Name == qname || a.Prefix+":"+a.Name == qname {
			return a.Value, true
		}
	}
	return "", false
}

// IsLeaf is a predicate: is n an element without child elements?
func (n *Node) IsLeaf() bool {
	if n.Kind != ElementNode {
		return false
	}
	for _, ch := range n.Children {
		if ch.Kind == ElementNode {
			return false
		}
	}
	return true
}

// Text returns the text of an element up to its first non-text child.
func (n *Node) Text() string {
	if len(n.Children) > 0 && n.Children[0].Kind == TextNode {
		return n.Children[0].Data
	}
	return ""
}

// SetText replaces the text of an element up to its first non-text child.
// The remaining children are not changed.
func (n *Node) SetText(text string) {
	if len(n.Children) > 0 && n.Children[0].Kind == TextNode {
		if text == "" {
			n.Children[0].Parent = nil
			n.Children = n.Children[1:]
			return
		}
		n.Children[0].Data = text
		return
	}
	if text == "" {
		return
	}
	t := &Node{Kind: TextNode, Data: text, Parent: n}
	n.Children = append([]*Node{t}, n.Children...)
}

// InnerText returns the concatenated text of n and all of its descendants.
func (n *Node) InnerText() string {
	if n.Kind == TextNode {
		return n.Data
	}
	var sb strings.Builder
	var collect func(*Node)
	collect = func(n *Node) {
		for _, ch := range n.Children {
			switch ch.Kind {
			case TextNode:
				sb.WriteString(ch.Data)
			case ElementNode:
				collect(ch)
			}
		}
	}
	collect(n)
	return sb.String()
}

func (n *Node) appendChild(ch *Node) {
	ch.Parent = n
	n.Children = append(n.Children, ch)
}

func (n *Node) appendText(text string) {
	if l := len(n.Children); l > 0 && n.Children[l-1].Kind == TextNode {
		n.Children[l-1].Data += text
		return
	}
	n.appendChild(&Node{Kind: TextNode, Data: text})
}

// Root returns the root element of the document.
func (doc *Document) Root() *Node {
	for _, ch := range doc.root.Children {
		if ch.Kind == ElementNode {
			return ch
		}
	}
	return nil
}

// Parse reads an XML document from r.
//
// Documents declaring an encoding other than UTF-8 are decoded with the
// help of golang.org/x/text; they will be written as UTF-8.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	doc := &Node{Kind: DocumentNode}
	cur := doc
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if cur == doc && (&Document{root: doc}).Root() != nil {
				return nil, fmt.Errorf("%w: second root element <%s>", ErrExtraContent, t.Name.Local)
			}
			n := &Node{Kind: ElementNode, Prefix: t.Name.Space, Name: t.Name.Local}
			if len(t.Attr) > 0 {
				n.Attrs = make([]Attr, len(t.Attr))
				for i, a := range t.Attr {
					n.Attrs[i] = Attr{Prefix: a.Name.Space, Name: a.Name.Local, Value: a.Value}
				}
			}
			cur.appendChild(n)
			cur = n
		case xml.EndElement:
			if cur.Kind != ElementNode || cur.Name != t.Name.Local || cur.Prefix != t.Name.Space {
				return nil, fmt.Errorf("%w: unexpected </%s> at line %d", ErrUnbalanced,
					qname(t.Name), line(dec))
			}
			cur = cur.Parent
		case xml.CharData:
			if cur == doc {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fmt.Errorf("%w: text outside of root element at line %d",
						ErrExtraContent, line(dec))
				}
				continue
			}
			cur.appendText(string(t))
		case xml.Comment:
			cur.appendChild(&Node{Kind: CommentNode, Data: string(t)})
		case xml.ProcInst:
			if cur == doc && t.Target == "xml" {
				continue // re-created on output
			}
			cur.appendChild(&Node{Kind: ProcInstNode, Name: t.Target, Data: string(t.Inst)})
		case xml.Directive:
			cur.appendChild(&Node{Kind: DirectiveNode, Data: string(t)})
		}
	}
	if cur != doc {
		return nil, fmt.Errorf("%w: element <%s> not closed", ErrUnbalanced, cur.QName())
	}
	d := &Document{root: doc}
	if d.Root() == nil {
		return nil, ErrNoRoot
	}
	T().Debugf("parsed document with root %s", d.Root())
	return d, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("xmltree: unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

func qname(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func line(dec *xml.Decoder) int {
	l, _ := dec.InputPos()
	return l
}
