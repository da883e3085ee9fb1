// Package savefile reads the game's save documents and extracts the
// mod list recorded in their metadata.
package savefile

import "encoding/xml"

// Node is one element of the parsed markup tree. An element is either
// a container (Children) or a value (Text); save files have no mixed
// content, so whitespace accumulated on containers is ignored and leaf
// text is kept byte for byte.
type Node struct {
	Name     string
	Attr     []xml.Attr
	Children []*Node
	Text     string
}

// Child returns the first direct child element with the given name,
// nil when there is none.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}
