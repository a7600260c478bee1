package game

// StrategyCatalog is the ordered, deduplicated list of strategy names
// shared by both creatures in an encounter. Appending a strategy must not
// change payoff values for previously existing pairs, so order is
// significant and preserved.
type StrategyCatalog []string

// NewStrategyCatalog builds a catalog from names, dropping duplicates while
// keeping first-occurrence order.
func NewStrategyCatalog(names ...string) StrategyCatalog {
	seen := make(map[string]struct{}, len(names))
	out := make(StrategyCatalog, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// IndexOf returns the catalog index of a strategy name, or -1 when absent.
func (c StrategyCatalog) IndexOf(name string) int {
	for i, n := range c {
		if n == name {
			return i
		}
	}
	return -1
}
