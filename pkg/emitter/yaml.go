package emitter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-enumgen/pkg/genconfig"
)

// DefaultNamePattern names each document after its entity and sequence
// number, e.g. "Timespinner3".
const DefaultNamePattern = "{{ entity }}{{ seq }}"

// YAMLOption customises the YAML emitter.
type YAMLOption func(*YAML)

// WithNamePattern overrides the per-document name pattern. The pattern
// receives "entity" and "seq" in its context.
func WithNamePattern(pattern string) YAMLOption {
	return func(e *YAML) {
		e.namePattern = pattern
	}
}

// WithDescriptionPattern overrides the per-document description pattern.
func WithDescriptionPattern(pattern string) YAMLOption {
	return func(e *YAML) {
		e.descPattern = pattern
	}
}

// YAML writes one multi-document YAML file per entity under a base
// directory. Every document carries name, description, and game headers
// ahead of the option mapping, separated from its neighbours by "---".
type YAML struct {
	dir         string
	namePattern string
	descPattern string

	nameTpl *pongo2.Template
	descTpl *pongo2.Template
}

var _ Emitter = (*YAML)(nil)

// NewYAML constructs the file emitter. Patterns are compiled once up front so
// a malformed pattern fails the run before any file is opened.
func NewYAML(dir string, options ...YAMLOption) (*YAML, error) {
	e := &YAML{
		dir:         dir,
		namePattern: DefaultNamePattern,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.dir == "" {
		e.dir = "."
	}
	if e.descPattern == "" {
		e.descPattern = e.namePattern
	}

	var err error
	if e.nameTpl, err = pongo2.FromString(e.namePattern); err != nil {
		return nil, fmt.Errorf("emitter: compile name pattern: %w", err)
	}
	if e.descTpl, err = pongo2.FromString(e.descPattern); err != nil {
		return nil, fmt.Errorf("emitter: compile description pattern: %w", err)
	}
	return e, nil
}

// Begin opens the entity's output file, truncating any previous run.
func (e *YAML) Begin(ctx context.Context, entity string) (DocumentWriter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(e.dir, FileName(entity))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("emitter: open %s: %w", path, err)
	}
	return &yamlWriter{
		entity:  entity,
		file:    f,
		buf:     bufio.NewWriter(f),
		nameTpl: e.nameTpl,
		descTpl: e.descTpl,
	}, nil
}

// FileName derives the per-entity output filename: spaces collapse to
// underscores, extension is .yaml.
func FileName(entity string) string {
	return strings.Join(strings.Fields(entity), "_") + ".yaml"
}

type yamlWriter struct {
	entity  string
	file    *os.File
	buf     *bufio.Writer
	nameTpl *pongo2.Template
	descTpl *pongo2.Template
}

func (w *yamlWriter) Write(doc genconfig.Document, seq int) error {
	tctx := pongo2.Context{"entity": w.entity, "seq": seq}

	name, err := w.nameTpl.Execute(tctx)
	if err != nil {
		return fmt.Errorf("emitter: render name: %w", err)
	}
	desc, err := w.descTpl.Execute(tctx)
	if err != nil {
		return fmt.Errorf("emitter: render description: %w", err)
	}

	body, err := yaml.Marshal(map[string]map[string]any(doc))
	if err != nil {
		return fmt.Errorf("emitter: marshal document: %w", err)
	}

	fmt.Fprintf(w.buf, "name: %s\n", name)
	fmt.Fprintf(w.buf, "description: %s\n", desc)
	fmt.Fprintf(w.buf, "game: %s\n", w.entity)
	w.buf.Write(body)
	if _, err := w.buf.WriteString("---\n"); err != nil {
		return fmt.Errorf("emitter: write document: %w", err)
	}
	return nil
}

func (w *yamlWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("emitter: flush: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("emitter: close: %w", err)
	}
	return nil
}
