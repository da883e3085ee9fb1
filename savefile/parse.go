package savefile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
)

var (
	// ErrNotFound reports that the input path does not exist or is
	// not a regular file.
	ErrNotFound = errors.New("save file not found")

	// ErrRead reports an I/O failure reading a file that exists.
	ErrRead = errors.New("save file not readable")

	// ErrMalformed reports a document that is not well-formed markup
	// or lacks a section a save file must have.
	ErrMalformed = errors.New("malformed save file")
)

// Load reads and parses the save document at path.
func Load(path string) (*Node, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %q: %v", ErrRead, path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %q is not a regular file", ErrNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrRead, path, err)
	}
	defer func() {
		cerr := f.Close()
		if cerr != nil {
			log.Printf("close %q: %+v", path, cerr)
		}
	}()

	root, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return root, nil
}

// Parse decodes a whole markup document into a Node tree. The document
// must have exactly one root element.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			t = t.Copy()
			n := &Node{Name: t.Name.Local, Attr: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformed)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				n := stack[len(stack)-1]
				// Containers accumulate indentation here;
				// only leaves are ever read back as text.
				if len(n.Children) == 0 {
					n.Text += string(t)
				}
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return root, nil
}
