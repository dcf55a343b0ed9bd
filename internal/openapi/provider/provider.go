// Package provider interprets OpenAPI documents as option schemas. Each
// entry under components.schemas is an entity; its properties are the
// entity's options. The kin-openapi dependency stays behind the
// schema.Provider contract.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-enumgen/pkg/schema"
)

// Provider is an immutable snapshot of the parsed document. All methods are
// safe for concurrent use.
type Provider struct {
	entities []string
	schemas  map[string]schema.Schema
}

// Ensure the implementation satisfies the public interface.
var _ schema.Provider = (*Provider)(nil)

// New parses the document and extracts one option schema per entity.
func New(ctx context.Context, doc schema.Document, options schema.ProviderOptions) (*Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("schema provider: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema provider: load document: %w", err)
	}

	if options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("schema provider: validate: %w", err)
		}
	}

	schemas := make(map[string]schema.Schema)
	if spec.Components != nil {
		for entity, ref := range spec.Components.Schemas {
			if ref == nil || ref.Value == nil {
				continue
			}
			sch, err := mapEntity(entity, ref.Value)
			if err != nil {
				return nil, fmt.Errorf("schema provider: entity %q: %w", entity, err)
			}
			schemas[entity] = sch
		}
	}

	if len(schemas) == 0 && !options.AllowEmptyDocuments {
		return nil, errors.New("schema provider: document declares no entities")
	}

	entities := make([]string, 0, len(schemas))
	for entity := range schemas {
		entities = append(entities, entity)
	}
	sort.Strings(entities)

	return &Provider{entities: entities, schemas: schemas}, nil
}

// Entities lists every entity described by the document, sorted.
func (p *Provider) Entities(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), p.entities...), nil
}

// Options returns the ordered option schema for one entity.
func (p *Provider) Options(ctx context.Context, entity string) (schema.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sch, ok := p.schemas[entity]
	if !ok {
		return nil, fmt.Errorf("schema provider: %q: %w", entity, schema.ErrEntityUnknown)
	}
	return sch, nil
}
