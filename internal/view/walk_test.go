package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperifyio/mdrender/internal/node"
)

func txt(s string) Text { return Text{Runs: []Run{{Text: s}}} }

func TestWalk_ReadingOrder(t *testing.T) {
	v := VStack{Children: []View{
		Anchor{ID: "h", Child: txt("head")},
		Grid{Columns: []node.Alignment{node.AlignNone, node.AlignRight}, Rows: [][]View{
			{Frame{Child: txt("a")}, Frame{Child: txt("b")}},
			{Frame{Child: txt("1")}, Frame{Child: txt("2")}},
		}},
		HStack{Children: []View{Border{Child: txt("x")}, Indent{Marker: "• ", Child: txt("y")}}},
	}}
	assert.Equal(t, []string{"head", "a", "b", "1", "2", "x", "y"}, Texts(v))
}

func TestWalk_SkipChildren(t *testing.T) {
	v := VStack{Children: []View{Border{Child: txt("hidden")}, txt("shown")}}
	var seen []string
	Walk(v, func(cur View) bool {
		if _, ok := cur.(Border); ok {
			return false
		}
		if t, ok := cur.(Text); ok {
			seen = append(seen, t.PlainText())
		}
		return true
	})
	assert.Equal(t, []string{"shown"}, seen)
}

func TestPlainText_IncludesCode(t *testing.T) {
	v := VStack{Children: []View{txt("see"), Code{Lines: []string{"a := 1", "b := 2"}}, Rule{}, txt("")}}
	assert.Equal(t, "see a := 1\nb := 2", PlainText(v))
	assert.Equal(t, "ab", Text{Runs: []Run{{Text: "a"}, {Break: true}, {Text: "b"}}}.PlainText())
}
