package genconfig

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Fingerprint returns a canonical, order-independent representation of the
// document. Two documents with the same entities, option names, and values
// produce the same fingerprint regardless of map iteration order.
func (d Document) Fingerprint() string {
	entities := make([]string, 0, len(d))
	for entity := range d {
		entities = append(entities, entity)
	}
	sort.Strings(entities)

	var b strings.Builder
	for _, entity := range entities {
		opts := d[entity]
		names := make([]string, 0, len(opts))
		for name := range opts {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString(entity)
		b.WriteByte('\n')
		for _, name := range names {
			b.WriteString(name)
			b.WriteByte('=')
			b.WriteString(canonicalValue(opts[name]))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// canonicalValue serialises a single option value deterministically. JSON is
// sufficient here: values are integers, strings, and flattened sequences, and
// encoding/json emits map keys sorted.
func canonicalValue(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(raw)
}
