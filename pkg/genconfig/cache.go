package genconfig

// Cache suppresses structurally identical documents. Range sampling rounds
// real-valued steps to integers, so two distinct branch paths can resolve to
// the same final document; the caller drops those after generation rather
// than the engine avoiding them during generation.
type Cache struct {
	seen map[string]struct{}
}

// NewCache returns an empty deduplication cache.
func NewCache() *Cache {
	return &Cache{seen: make(map[string]struct{})}
}

// Admit records the document's fingerprint and reports whether the document
// is new. A false return means an identical document was already admitted
// and this one should be discarded.
func (c *Cache) Admit(doc Document) bool {
	fp := doc.Fingerprint()
	if _, ok := c.seen[fp]; ok {
		return false
	}
	c.seen[fp] = struct{}{}
	return true
}

// Size reports how many distinct documents have been admitted.
func (c *Cache) Size() int {
	return len(c.seen)
}
