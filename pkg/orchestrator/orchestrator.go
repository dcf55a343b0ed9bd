// Package orchestrator coordinates the full pipeline for each requested
// entity: schema resolution, base building, blast-radius estimation, the
// confirmation gate, enumeration, deduplication, and emission. Errors local
// to one entity never abort the others; the Report says what happened.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-enumgen/pkg/emitter"
	"github.com/goliatone/go-enumgen/pkg/enumerate"
	"github.com/goliatone/go-enumgen/pkg/genconfig"
	"github.com/goliatone/go-enumgen/pkg/prompt"
	"github.com/goliatone/go-enumgen/pkg/schema"
)

// DefaultThreshold is the estimated document count above which the
// confirmation gate engages. It is a safety valve against accidental
// combinatorial explosion, not a correctness mechanism.
const DefaultThreshold = 1000

// ErrNoEntities signals a request without any entities to process.
var ErrNoEntities = errors.New("orchestrator: no entities requested")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithProvider injects the option schema provider. Required.
func WithProvider(p schema.Provider) Option {
	return func(o *Orchestrator) {
		o.provider = p
	}
}

// WithEmitter injects the output writer. Required.
func WithEmitter(e emitter.Emitter) Option {
	return func(o *Orchestrator) {
		o.emitter = e
	}
}

// WithPrompt injects the confirmation gate driver. Defaults to the
// interactive survey driver.
func WithPrompt(d prompt.Driver) Option {
	return func(o *Orchestrator) {
		o.prompt = d
	}
}

// WithLogger threads an explicit logger through every stage.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithThreshold overrides the confirmation threshold.
func WithThreshold(n int) Option {
	return func(o *Orchestrator) {
		o.threshold = n
	}
}

// Orchestrator drives the per-entity enumeration pipeline. Construct with
// New; missing dependencies are initialised with built-in implementations so
// callers can start with a single constructor call.
type Orchestrator struct {
	provider  schema.Provider
	emitter   emitter.Emitter
	prompt    prompt.Driver
	logger    *slog.Logger
	threshold int

	base      *enumerate.BaseBuilder
	estimator *enumerate.Estimator
	engine    *enumerate.Engine

	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{threshold: DefaultThreshold}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// EntityRequest pairs one entity with its selection.
type EntityRequest struct {
	Entity    string
	Selection enumerate.Selection
}

// Request describes a full run.
type Request struct {
	Entities []EntityRequest
}

// Run processes every requested entity in order. Configuration problems that
// make the whole request unusable return an error; per-entity failures are
// recorded in the report and processing continues with the next entity.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	if o.provider == nil {
		return Report{}, errors.New("orchestrator: provider is required")
	}
	if o.emitter == nil {
		return Report{}, errors.New("orchestrator: emitter is required")
	}
	if len(req.Entities) == 0 {
		return Report{}, ErrNoEntities
	}

	var report Report
	for _, er := range req.Entities {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		o.runEntity(ctx, er, &report)
	}

	o.logger.Info("run finished",
		"processed", len(report.Processed), "skipped", len(report.Skipped))
	return report, nil
}

func (o *Orchestrator) runEntity(ctx context.Context, er EntityRequest, report *Report) {
	entity := er.Entity
	sel := er.Selection

	if err := sel.Validate(); err != nil {
		report.skip(entity, "invalid selection", err)
		o.logger.Warn("skipping entity", "entity", entity, "reason", err)
		return
	}

	sch, err := o.provider.Options(ctx, entity)
	if err != nil {
		report.skip(entity, "schema lookup failed", err)
		o.logger.Warn("skipping entity", "entity", entity, "reason", err)
		return
	}

	base := o.base.Build(entity, sch, sel)
	estimate := o.estimator.Estimate(sch, sel)
	o.logger.Info("estimated expansion", "entity", entity, "documents", estimate)

	if estimate > o.threshold {
		ok, err := o.prompt.Confirm(ctx, prompt.ConfirmConfig{
			Message: fmt.Sprintf("About to generate %d documents for %s. Continue?", estimate, entity),
			Help:    "The selection expands into more documents than the configured threshold.",
		})
		if err != nil {
			report.skip(entity, "confirmation failed", err)
			return
		}
		if !ok {
			report.skip(entity, "declined by user", nil)
			o.logger.Info("entity not processed", "entity", entity, "estimate", estimate)
			return
		}
	}

	w, err := o.emitter.Begin(ctx, entity)
	if err != nil {
		report.skip(entity, "output sink failed", err)
		o.logger.Warn("skipping entity", "entity", entity, "reason", err)
		return
	}

	cache := genconfig.NewCache()
	yielded, written := 0, 0
	var writeErr error
	for doc := range o.engine.Enumerate(entity, sch, base, sel) {
		yielded++
		if !cache.Admit(doc) {
			continue
		}
		written++
		if err := w.Write(doc, written); err != nil {
			writeErr = err
			break
		}
	}
	if err := w.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		report.skip(entity, "write failed", writeErr)
		o.logger.Warn("entity incomplete", "entity", entity, "reason", writeErr)
		return
	}

	if yielded < estimate {
		o.logger.Warn("produced fewer documents than estimated",
			"entity", entity, "estimate", estimate, "yielded", yielded)
	}
	o.logger.Info("entity processed",
		"entity", entity, "yielded", yielded, "written", written,
		"duplicates", yielded-written)
	report.Processed = append(report.Processed, entity)
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.prompt == nil {
		o.prompt = prompt.NewSurveyDriver()
	}
	if o.threshold <= 0 {
		o.threshold = DefaultThreshold
	}
	o.base = enumerate.NewBaseBuilder(o.logger)
	o.estimator = enumerate.NewEstimator(o.logger)
	o.engine = enumerate.NewEngine(o.logger)
	o.defaultsApplied = true
}
