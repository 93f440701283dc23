package captions

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// element est un nœud d'arbre XML minimaliste, suffisant pour naviguer les
// payloads de captions : tag, attributs, texte direct et enfants ordonnés.
type element struct {
	tag      string
	attrs    map[string]string
	text     string // chardata directement contenu dans l'élément
	children []*element
}

// parseXMLTree décode data en un arbre d'éléments et retourne la racine.
// Le décodeur est volontairement laxiste (entités HTML, XML approximatif) :
// les payloads observés ne sont pas toujours du XML strict.
func parseXMLTree(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity

	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{tag: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse xml: plusieurs éléments racine")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse xml: document vide")
	}
	return root, nil
}

// attr retourne la valeur de l'attribut et true s'il est présent.
func (e *element) attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// find retourne le premier enfant DIRECT portant ce tag, nil sinon.
func (e *element) find(tag string) *element {
	for _, c := range e.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// iter retourne tous les descendants (profondeur d'abord, ordre document)
// portant ce tag, l'élément lui-même inclus s'il correspond.
func (e *element) iter(tag string) []*element {
	var out []*element
	var walk func(n *element)
	walk = func(n *element) {
		if n.tag == tag {
			out = append(out, n)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(e)
	return out
}

// directText retourne le chardata direct de l'élément, sans les enfants.
func (e *element) directText() string {
	return e.text
}
