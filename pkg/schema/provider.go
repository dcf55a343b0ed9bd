package schema

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"
)

// ErrEntityUnknown is returned by providers when the requested entity is not
// described by the loaded document.
var ErrEntityUnknown = errors.New("schema: entity unknown")

// Loader fetches option schema documents from different sources (filesystem,
// fs.FS, HTTP). Implementations live under internal/openapi but satisfy this
// contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// Provider resolves the option schema of named entities. The Schema returned
// by Options is ordered; consumers must not re-order it, since schema order
// drives enumeration order.
type Provider interface {
	// Entities lists every entity described by the provider, sorted.
	Entities(ctx context.Context) ([]string, error)

	// Options returns the ordered option schema for one entity. It reports
	// ErrEntityUnknown when the entity is absent.
	Options(ctx context.Context, entity string) (Schema, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; defaults to the
	// operating system if nil.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means HTTP sources are disabled unless AllowHTTPFallback
	// is true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles the default HTTP loader when no client is
	// supplied. Keeping this explicit preserves offline-first behaviour.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations when AllowHTTPFallback is
	// true.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for relative paths.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote schema documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading using a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// ProviderOptions configures document interpretation.
type ProviderOptions struct {
	// ResolveReferences validates the document and resolves $ref entries
	// before options are extracted.
	ResolveReferences bool

	// AllowEmptyDocuments suppresses the error normally raised when a
	// document declares no entities.
	AllowEmptyDocuments bool
}

// ProviderOption mutates ProviderOptions prior to construction.
type ProviderOption func(*ProviderOptions)

// WithReferenceResolution enables $ref resolution and document validation.
func WithReferenceResolution() ProviderOption {
	return func(opts *ProviderOptions) {
		opts.ResolveReferences = true
	}
}

// WithEmptyDocuments tolerates documents that declare no entities.
func WithEmptyDocuments() ProviderOption {
	return func(opts *ProviderOptions) {
		opts.AllowEmptyDocuments = true
	}
}

// NewProviderOptions applies ProviderOption values and returns the resulting
// configuration.
func NewProviderOptions(options ...ProviderOption) ProviderOptions {
	cfg := ProviderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
