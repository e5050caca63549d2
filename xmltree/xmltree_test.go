package xmltree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/rtlfix/internal/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version='1.0' encoding='utf-8'?>
<!-- language file -->
<LanguageData xmlns:x="urn:x" version="2">
  <Entry id="greeting">سلام</Entry>
  <Entry id="empty"/>
  <Group>
    <Entry id="press" x:note="a &amp; b">Press {0} &lt;now&gt;</Entry>
    <?hint keep?>
  </Group>
  <x:Extra>text<b>bold</b>tail</x:Extra>
</LanguageData>
`

func TestParseAndWrite(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	doc, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.NotNil(t, doc.Root())
	assert.Equal(t, "LanguageData", doc.Root().Name)
	assert.Equal(t, sample, string(doc.Bytes()))
}

func TestRoundTripIsStable(t *testing.T) {
	input := `<?xml version="1.0" encoding="UTF-8"?>
<LanguageInfo><Name lang="fa" desc='say "hi"'><![CDATA[a < b]]></Name><Empty></Empty></LanguageInfo>`
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	first := doc.Bytes()
	assert.True(t, bytes.HasPrefix(first, []byte(Declaration+"\n")))
	assert.Contains(t, string(first), `desc="say &quot;hi&quot;"`)
	assert.Contains(t, string(first), `<Name lang="fa" desc="say &quot;hi&quot;">a &lt; b</Name>`)
	assert.Contains(t, string(first), `<Empty/>`)
	doc2, err := Parse(bytes.NewReader(first))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(doc2.Bytes()))
}

func TestSelect(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	doc, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	entries, err := doc.Select("//Entry")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	id, ok := entries[2].Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "press", id)
	note, ok := entries[2].Attr("x:note")
	assert.True(t, ok)
	assert.Equal(t, "a & b", note)
	//
	_, err = doc.Select("//[")
	assert.Error(t, err)
}

func TestHasAny(t *testing.T) {
	doc, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	assert.True(t, doc.HasAny("LanguageInfo", "LanguageData"))
	assert.True(t, doc.HasAny("Group"))
	assert.False(t, doc.HasAny("LanguageInfo"))
	assert.False(t, doc.HasAny())
}

func TestLeaves(t *testing.T) {
	doc, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	leaves := doc.Leaves()
	var names []string
	for _, l := range leaves {
		assert.True(t, l.IsLeaf())
		names = append(names, l.QName())
	}
	assert.Equal(t, []string{"Entry", "Entry", "Entry", "b"}, names)
	assert.Equal(t, "سلام", leaves[0].Text())
	assert.Equal(t, "", leaves[1].Text())
	assert.Equal(t, "Press {0} <now>", leaves[2].Text())
}

func TestText(t *testing.T) {
	doc, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	extra, err := doc.Select("//x:Extra")
	require.NoError(t, err)
	require.Len(t, extra, 1)
	x := extra[0]
	assert.False(t, x.IsLeaf())
	assert.Equal(t, "text", x.Text())
	assert.Equal(t, "textboldtail", x.InnerText())
	//
	x.SetText("new")
	assert.Contains(t, string(doc.Bytes()), "<x:Extra>new<b>bold</b>tail</x:Extra>")
	x.SetText("")
	assert.Contains(t, string(doc.Bytes()), "<x:Extra><b>bold</b>tail</x:Extra>")
	x.SetText("again")
	assert.Equal(t, "again", x.Text())
	assert.Equal(t, x, x.Children[0].Parent)
}

func TestEscaping(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<a t="x&#9;y&#10;z"/>`))
	require.NoError(t, err)
	a := doc.Root()
	a.SetText(`1 < 2 & "3" > 0`)
	assert.Equal(t, Declaration+"\n"+`<a t="x&#9;y&#10;z">1 &lt; 2 &amp; "3" &gt; 0</a>`+"\n",
		string(doc.Bytes()))
}

func TestParseErrors(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	for _, tc := range []struct {
		input string
		err   error
	}{
		{"", ErrNoRoot},
		{"<!-- nothing -->", ErrNoRoot},
		{"<a><b></a></b>", ErrUnbalanced},
		{"<a><b></b>", ErrUnbalanced},
		{"<a/><b/>", ErrExtraContent},
		{"<a/>text", ErrExtraContent},
	} {
		_, err := Parse(strings.NewReader(tc.input))
		assert.True(t, errors.Is(err, tc.err), "input %q: expected %v, have %v", tc.input, tc.err, err)
	}
	_, err := Parse(strings.NewReader("<a><b></a"))
	assert.Error(t, err)
}

func TestLatin1(t *testing.T) {
	input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><a>caf\xe9</a>"
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "café", doc.Root().Text())
}

func TestIndentElementOnlyContent(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<r><g><e>1</e><!--c--></g><e>x<b/></e><z/></r>`))
	require.NoError(t, err)
	expected := Declaration + "\n" +
		"<r>\n" +
		"  <g>\n" +
		"    <e>1</e>\n" +
		"    <!--c-->\n" +
		"  </g>\n" +
		"  <e>x<b/></e>\n" +
		"  <z/>\n" +
		"</r>\n"
	out := string(doc.Bytes())
	assert.Equal(t, expected, out)
	doc2, err := Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, out, string(doc2.Bytes()))
}
