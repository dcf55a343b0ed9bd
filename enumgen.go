// Package enumgen generates every valid combination of a chosen subset of an
// entity's configuration options. Given a schema document describing each
// option's kind, legal values, and default, it builds a base configuration
// for the options held fixed, predicts the size of the expansion, and lazily
// enumerates one fully resolved document per combination.
//
// This package is a thin facade: it wires the internal document loader and
// OpenAPI-backed schema provider to the public contracts in pkg/schema and
// re-exports the orchestrator entry points.
package enumgen

import (
	"context"

	internalloader "github.com/goliatone/go-enumgen/internal/openapi/loader"
	internalprovider "github.com/goliatone/go-enumgen/internal/openapi/provider"
	"github.com/goliatone/go-enumgen/pkg/orchestrator"
	"github.com/goliatone/go-enumgen/pkg/schema"
)

// Report aliases the orchestrator run report for convenience.
type Report = orchestrator.Report

// Request aliases the orchestrator request.
type Request = orchestrator.Request

// EntityRequest aliases one entity's enumeration request.
type EntityRequest = orchestrator.EntityRequest

// NewLoader constructs a schema document loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	cfg := schema.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// NewProviderFromDocument builds a provider from an already loaded document.
func NewProviderFromDocument(ctx context.Context, doc schema.Document, options ...schema.ProviderOption) (schema.Provider, error) {
	cfg := schema.NewProviderOptions(options...)
	return internalprovider.New(ctx, doc, cfg)
}

// NewProvider loads the schema document from the source and builds a
// provider in one step.
func NewProvider(ctx context.Context, src schema.Source, loaderOptions []schema.LoaderOption, providerOptions ...schema.ProviderOption) (schema.Provider, error) {
	loader := NewLoader(loaderOptions...)
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return NewProviderFromDocument(ctx, doc, providerOptions...)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Run loads the schema source, builds the provider, and processes the
// request. It is the simplest entry point for callers that want generated
// documents with a single call; the emitter and prompt driver come in
// through orchestrator options.
func Run(ctx context.Context, src schema.Source, req Request, options ...orchestrator.Option) (Report, error) {
	provider, err := NewProvider(ctx, src, nil)
	if err != nil {
		return Report{}, err
	}
	opts := append([]orchestrator.Option{orchestrator.WithProvider(provider)}, options...)
	return orchestrator.New(opts...).Run(ctx, req)
}
