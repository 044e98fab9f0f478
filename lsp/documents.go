package lsp

import "sync"

// Documents holds the text of every open document, keyed by URI.
type Documents struct {
	mu    sync.RWMutex
	files map[string]string
}

func NewDocuments() *Documents {
	return &Documents{files: make(map[string]string)}
}

func (d *Documents) Update(uri, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[uri] = text
}

func (d *Documents) Get(uri string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	text, ok := d.files[uri]
	return text, ok
}

func (d *Documents) Remove(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, uri)
}

func (d *Documents) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.files)
}
