package genconfig

// Fixed keys present on every document. They are seeded at construction and
// never subject to enumeration.
const (
	KeyProgressionBalancing = "progression_balancing"
	KeyAccessibility        = "accessibility"
)

// Document maps an entity name to a mapping from option identifier to a
// concrete value (integer, label string, or flattened sequence). Documents
// are mutable while the engine assembles them and treated as immutable once
// yielded to a caller.
type Document map[string]map[string]any

// New returns a document for one entity seeded with the fixed core keys.
func New(entity string) Document {
	return Document{
		entity: {
			KeyProgressionBalancing: 0,
			KeyAccessibility:        "items",
		},
	}
}

// Options returns the option map for the entity, or nil when absent.
func (d Document) Options(entity string) map[string]any {
	return d[entity]
}

// Len reports how many options are resolved for the entity.
func (d Document) Len(entity string) int {
	return len(d[entity])
}

// Set assigns one option value, creating the entity map if needed.
func (d Document) Set(entity, option string, value any) {
	opts, ok := d[entity]
	if !ok {
		opts = make(map[string]any)
		d[entity] = opts
	}
	opts[option] = value
}

// Clone deep-copies the document so sibling enumeration branches and callers
// holding previously yielded documents never observe later mutations.
func (d Document) Clone() Document {
	clone := make(Document, len(d))
	for entity, opts := range d {
		copied := make(map[string]any, len(opts))
		for name, value := range opts {
			copied[name] = cloneValue(value)
		}
		clone[entity] = copied
	}
	return clone
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case []any:
		copied := make([]any, len(v))
		for i, item := range v {
			copied[i] = cloneValue(item)
		}
		return copied
	case map[string]any:
		copied := make(map[string]any, len(v))
		for k, item := range v {
			copied[k] = cloneValue(item)
		}
		return copied
	default:
		return v
	}
}
