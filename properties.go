package tiled

// Properties is the flat string-keyed property bag attached to maps,
// tilesets, tiles, layers and objects. All values are stored as strings;
// interpretation is up to the consumer.
type Properties map[string]string

// Get returns the value for key, or "" when absent.
func (p Properties) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// Has reports whether key is present.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}
