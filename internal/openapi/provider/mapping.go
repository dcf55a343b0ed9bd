package provider

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-enumgen/pkg/schema"
)

// Extension keys understood on entity and option schemas.
const (
	// kindExtensionKey forces the option kind regardless of the inferred one.
	kindExtensionKey = "x-option-kind"

	// orderExtensionKey fixes option order on the entity schema. OpenAPI
	// property maps are unordered, so without it options fall back to sorted
	// name order; both are deterministic for a fixed document.
	orderExtensionKey = "x-option-order"

	// codesExtensionKey maps choice labels to explicit integer codes.
	codesExtensionKey = "x-option-codes"

	// specialsExtensionKey lists named out-of-interval sentinels and turns a
	// range into a named range.
	specialsExtensionKey = "x-special-values"

	// customExtensionKey marks a choice as accepting free-form values,
	// turning it into a (non-enumerable) text choice.
	customExtensionKey = "x-allow-custom"
)

func mapEntity(entity string, src *openapi3.Schema) (schema.Schema, error) {
	if len(src.Properties) == 0 {
		return nil, nil
	}

	order := propertyOrder(src)
	sch := make(schema.Schema, 0, len(order))
	for _, name := range order {
		ref := src.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		opt, err := mapOption(name, ref.Value)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		sch = append(sch, opt)
	}
	return sch, nil
}

// propertyOrder honours x-option-order when present: listed names first (in
// the listed order, unknown names dropped), then any unlisted properties in
// sorted order.
func propertyOrder(src *openapi3.Schema) []string {
	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	declared, ok := stringSlice(src.Extensions[orderExtensionKey])
	if !ok {
		return names
	}

	seen := make(map[string]struct{}, len(declared))
	ordered := make([]string, 0, len(names))
	for _, name := range declared {
		if _, exists := src.Properties[name]; !exists {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}
	for _, name := range names {
		if _, listed := seen[name]; !listed {
			ordered = append(ordered, name)
		}
	}
	return ordered
}

func mapOption(name string, src *openapi3.Schema) (schema.Option, error) {
	opt := schema.Option{Name: name}

	kind, err := inferKind(src)
	if err != nil {
		return schema.Option{}, err
	}
	opt.Kind = kind

	switch kind {
	case schema.KindToggle, schema.KindDefaultOnToggle:
		opt.Default = toggleDefault(src.Default)
	case schema.KindChoice, schema.KindTextChoice:
		opt.Choices = mapChoices(src)
		opt.Default = choiceDefault(src.Default, opt.Choices)
	case schema.KindRange, schema.KindNamedRange:
		if src.Min == nil || src.Max == nil {
			return schema.Option{}, fmt.Errorf("range option requires minimum and maximum")
		}
		opt.RangeStart = int(*src.Min)
		opt.RangeEnd = int(*src.Max)
		if opt.RangeStart > opt.RangeEnd {
			return schema.Option{}, fmt.Errorf("range start %d exceeds end %d", opt.RangeStart, opt.RangeEnd)
		}
		opt.Default = normalizeNumber(src.Default)
		if kind == schema.KindNamedRange {
			opt.Specials = mapSpecials(src.Extensions[specialsExtensionKey])
		}
	case schema.KindFreeText:
		opt.Default = src.Default
	}

	return opt, nil
}

// inferKind decides the option kind from the x-option-kind override or from
// the property's type shape.
func inferKind(src *openapi3.Schema) (schema.Kind, error) {
	if forced, ok := src.Extensions[kindExtensionKey].(string); ok && forced != "" {
		kind := schema.Kind(strings.TrimSpace(forced))
		switch kind {
		case schema.KindToggle, schema.KindDefaultOnToggle, schema.KindChoice,
			schema.KindRange, schema.KindNamedRange, schema.KindFreeText,
			schema.KindTextChoice:
			return kind, nil
		default:
			return "", fmt.Errorf("unknown %s value %q", kindExtensionKey, forced)
		}
	}

	switch firstSchemaType(src.Type) {
	case "boolean":
		if b, ok := src.Default.(bool); ok && b {
			return schema.KindDefaultOnToggle, nil
		}
		return schema.KindToggle, nil
	case "string":
		if len(src.Enum) == 0 {
			return schema.KindFreeText, nil
		}
		if allow, ok := src.Extensions[customExtensionKey].(bool); ok && allow {
			return schema.KindTextChoice, nil
		}
		return schema.KindChoice, nil
	case "integer", "number":
		if src.Min != nil && src.Max != nil {
			if specials := mapSpecials(src.Extensions[specialsExtensionKey]); len(specials) > 0 {
				return schema.KindNamedRange, nil
			}
			return schema.KindRange, nil
		}
		return schema.KindFreeText, nil
	default:
		return schema.KindFreeText, nil
	}
}

// mapChoices pairs enum labels with codes from x-option-codes, falling back
// to the label's enum position.
func mapChoices(src *openapi3.Schema) []schema.Choice {
	codes, _ := src.Extensions[codesExtensionKey].(map[string]any)

	choices := make([]schema.Choice, 0, len(src.Enum))
	for i, raw := range src.Enum {
		label, ok := raw.(string)
		if !ok {
			label = fmt.Sprintf("%v", raw)
		}
		code := i
		if mapped, ok := asInt(codes[label]); ok {
			code = mapped
		}
		choices = append(choices, schema.Choice{Label: label, Code: code})
	}
	return choices
}

// choiceDefault resolves a label default to its code; integer defaults pass
// through unchanged.
func choiceDefault(raw any, choices []schema.Choice) any {
	if label, ok := raw.(string); ok {
		for _, c := range choices {
			if c.Label == label {
				return c.Code
			}
		}
		return raw
	}
	return normalizeNumber(raw)
}

// mapSpecials converts the x-special-values mapping, sorted by name for a
// stable enumeration order.
func mapSpecials(raw any) []schema.SpecialValue {
	mapped, ok := raw.(map[string]any)
	if !ok || len(mapped) == 0 {
		return nil
	}

	names := make([]string, 0, len(mapped))
	for name := range mapped {
		names = append(names, name)
	}
	sort.Strings(names)

	specials := make([]schema.SpecialValue, 0, len(names))
	for _, name := range names {
		value, ok := asInt(mapped[name])
		if !ok {
			continue
		}
		specials = append(specials, schema.SpecialValue{Name: name, Value: value})
	}
	return specials
}

func toggleDefault(raw any) any {
	if b, ok := raw.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return normalizeNumber(raw)
}

// normalizeNumber collapses JSON's float64 decoding of integers back to int.
func normalizeNumber(raw any) any {
	if f, ok := raw.(float64); ok && f == float64(int(f)) {
		return int(f)
	}
	return raw
}

func stringSlice(raw any) ([]string, bool) {
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
