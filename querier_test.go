package adyen_soap_recurring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const querierDoc = `<?xml version="1.0"?>
<root xmlns:r="http://recurring.services.adyen.com" xmlns:p="http://payment.services.adyen.com">
  <r:item>
    <r:name>first</r:name>
    <r:inner><r:name>nested</r:name></r:inner>
  </r:item>
  <item xmlns="http://recurring.services.adyen.com">
    <name>second</name>
    <p:name>payment name</p:name>
  </item>
  <r:empty/>
  <r:blank>   </r:blank>
  <r:nil xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:nil="true"/>
</root>`

func TestXMLQuerier_ResolvesPrefixesByURI(t *testing.T) {
	q := newXMLQuerier([]byte(querierDoc))

	items := q.XPath("//recurring:item")
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Text("./recurring:name"))
	assert.Equal(t, "second", items[1].Text("./recurring:name"))
	assert.Equal(t, "payment name", items[1].Text("./payment:name"))
}

func TestXMLQuerier_DescendantSearch(t *testing.T) {
	q := newXMLQuerier([]byte(querierDoc))

	names := q.XPath("//recurring:name")
	require.Len(t, names, 3)
	assert.Equal(t, "first", names[0].text())
	assert.Equal(t, "nested", names[1].text())
	assert.Equal(t, "second", names[2].text())

	first, ok := q.First("//recurring:item")
	require.True(t, ok)
	assert.Len(t, first.XPath(".//recurring:name"), 2)
	assert.Len(t, first.XPath("./recurring:name"), 1)

	// "//" always starts from the document, whatever node it is asked on.
	assert.Len(t, first.XPath("//recurring:name"), 3)
}

func TestXMLQuerier_Misses(t *testing.T) {
	q := newXMLQuerier([]byte(querierDoc))

	assert.Empty(t, q.XPath("//recurring:missing"))
	assert.Empty(t, q.XPath("//unknown:item"))
	assert.Empty(t, q.XPath("//recurring:"))
	assert.Equal(t, "", q.Text("//recurring:item/recurring:missing"))

	_, ok := q.First("//payment:item")
	assert.False(t, ok)
}

func TestXMLQuerier_Empty(t *testing.T) {
	q := newXMLQuerier([]byte(querierDoc))

	for _, path := range []string{"//recurring:empty", "//recurring:blank", "//recurring:nil"} {
		node, ok := q.First(path)
		require.True(t, ok, path)
		assert.True(t, node.Empty(), path)
	}

	item, _ := q.First("//recurring:item")
	assert.False(t, item.Empty())

	name, _ := q.First("//recurring:name")
	assert.False(t, name.Empty())

	assert.True(t, xmlNode{}.Empty())
}

func TestXMLQuerier_UnparseableInput(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not xml at all <"), []byte("<a><b></a>")} {
		q := newXMLQuerier(data)
		assert.Empty(t, q.XPath("//recurring:item"))
		assert.Equal(t, "", q.Text("//recurring:item"))
	}
}
