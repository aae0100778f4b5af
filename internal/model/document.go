package model

import "fmt"

// DocumentKey identifies one version of a composed document. Version is a
// fingerprint of the composed text, so keys compare by value.
type DocumentKey struct {
	FileName string
	Version  string
}

func (k DocumentKey) String() string {
	return fmt.Sprintf("%s#%s", k.FileName, k.Version)
}

// Viewport records one splice: the buffer's text occupies Region inside the
// destination document, OuterRegion additionally covers the region markers.
// Original is the span the region had in the host file before splicing.
type Viewport struct {
	Destination DocumentKey
	Region      Span
	OuterRegion Span
	Original    Span
	BufferID    BufferID
}

// ComposedDocument is a host file (or a standalone buffer) with all of its
// buffers spliced in.
type ComposedDocument struct {
	Key        DocumentKey
	Text       string
	Viewports  []Viewport
	Standalone bool
}

// Name returns the file name of the document.
func (d ComposedDocument) Name() string {
	return d.Key.FileName
}

// Composition is the arena of composed documents produced for one request.
type Composition struct {
	order  []DocumentKey
	byKey  map[DocumentKey]*ComposedDocument
	byName map[string]DocumentKey
}

// NewComposition builds an arena; documents keep the given order.
func NewComposition(docs ...ComposedDocument) *Composition {
	c := &Composition{
		order:  make([]DocumentKey, 0, len(docs)),
		byKey:  make(map[DocumentKey]*ComposedDocument, len(docs)),
		byName: make(map[string]DocumentKey, len(docs)),
	}

	for i := range docs {
		doc := docs[i]
		c.order = append(c.order, doc.Key)
		c.byKey[doc.Key] = &doc
		c.byName[doc.Key.FileName] = doc.Key
	}

	return c
}

// Documents returns the composed documents in request order.
func (c *Composition) Documents() []ComposedDocument {
	docs := make([]ComposedDocument, 0, len(c.order))
	for _, key := range c.order {
		docs = append(docs, *c.byKey[key])
	}

	return docs
}

// Lookup returns the document stored under key.
func (c *Composition) Lookup(key DocumentKey) (ComposedDocument, bool) {
	doc, ok := c.byKey[key]
	if !ok {
		return ComposedDocument{}, false
	}

	return *doc, true
}

// Document returns the current document for a file name.
func (c *Composition) Document(name string) (ComposedDocument, bool) {
	key, ok := c.byName[name]
	if !ok {
		return ComposedDocument{}, false
	}

	return c.Lookup(key)
}

// Viewports returns every viewport of every document.
func (c *Composition) Viewports() []Viewport {
	var all []Viewport
	for _, key := range c.order {
		all = append(all, c.byKey[key].Viewports...)
	}

	return all
}

// Viewport returns the viewport that holds the given buffer.
func (c *Composition) Viewport(id BufferID) (Viewport, bool) {
	for _, key := range c.order {
		for _, vp := range c.byKey[key].Viewports {
			if vp.BufferID == id {
				return vp, true
			}
		}
	}

	return Viewport{}, false
}
