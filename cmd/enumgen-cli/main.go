package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	enumgen "github.com/goliatone/go-enumgen"
	"github.com/goliatone/go-enumgen/pkg/emitter"
	"github.com/goliatone/go-enumgen/pkg/enumerate"
	"github.com/goliatone/go-enumgen/pkg/orchestrator"
	"github.com/goliatone/go-enumgen/pkg/prompt"
	"github.com/goliatone/go-enumgen/pkg/runconfig"
	"github.com/goliatone/go-enumgen/pkg/schema"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "enumgen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("enumgen-cli", pflag.ContinueOnError)

	configFile := flags.StringP("config", "c", "", "config file with per-game enumeration requests")
	dir := flags.StringP("dir", "d", runconfig.DefaultDir, "output directory for generated yaml files")
	games := flags.StringSliceP("game", "g", nil, "games to enumerate configs for")
	ignore := flags.StringSliceP("ignore", "i", nil, "options to ignore when exploding enumeration")
	optionSpecs := flags.StringArrayP("option", "o", nil, "option to enumerate: name, name=all, name=N, or name=label,label")
	others := flags.String("others", "", "fill behavior for non-selected options: default, random, minimum, maximum")
	splits := flags.IntP("splits", "s", runconfig.DefaultSplits, "sections to split ranges into, minimum 1")
	source := flags.String("source", "", "option schema document path or URL")
	verbose := flags.CountP("verbose", "v", "verbosity; repeat for more")
	yes := flags.BoolP("yes", "y", false, "answer every confirmation affirmatively")
	dryRun := flags.Bool("dry-run", false, "print blast-radius estimates without generating anything")
	dumpConfig := flags.Bool("dump-config", false, "print the merged configuration and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg, err := mergeConfig(flags, *configFile, *dir, *games, *ignore, *optionSpecs, *others, *splits, *source, *verbose, *yes)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)

	if *dumpConfig {
		return dump(cfg)
	}

	if len(cfg.Entities) == 0 {
		return fmt.Errorf("must supply at least one game, via --game or a config file")
	}
	if cfg.Source == "" {
		return fmt.Errorf("must supply an option schema document via --source")
	}
	if cfg.Splits < 1 {
		return fmt.Errorf("--splits must be at least 1, got %d", cfg.Splits)
	}

	ctx := context.Background()

	src := parseSource(cfg.Source)
	var loaderOpts []schema.LoaderOption
	if src.Kind() == schema.SourceKindURL {
		loaderOpts = append(loaderOpts, schema.WithHTTPFallback(30*time.Second))
	}
	provider, err := enumgen.NewProvider(ctx, src, loaderOpts)
	if err != nil {
		return err
	}

	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}

	if *dryRun {
		return printEstimates(ctx, provider, req, logger)
	}

	sink, err := emitter.NewYAML(cfg.Dir)
	if err != nil {
		return err
	}

	var gate prompt.Driver = prompt.NewSurveyDriver()
	if cfg.Yes {
		gate = prompt.Static{Answer: true}
	}

	report, err := orchestrator.New(
		orchestrator.WithProvider(provider),
		orchestrator.WithEmitter(sink),
		orchestrator.WithPrompt(gate),
		orchestrator.WithLogger(logger),
	).Run(ctx, req)
	if err != nil {
		return err
	}

	printReport(report)
	if len(report.Processed) == 0 {
		return fmt.Errorf("no games processed")
	}
	return nil
}

// mergeConfig layers CLI flags over the config file over built-in defaults.
// Per-game requests come from --game when present, otherwise from the file.
func mergeConfig(flags *pflag.FlagSet, configFile, dir string, games, ignore, optionSpecs []string, others string, splits int, source string, verbose int, yes bool) (runconfig.Config, error) {
	cfg := runconfig.Default()

	if configFile != "" {
		entities, err := runconfig.LoadFile(configFile)
		if err != nil {
			return runconfig.Config{}, err
		}
		cfg.Entities = entities
	}

	if len(games) > 0 {
		options := make(map[string]any, len(optionSpecs))
		for _, spec := range optionSpecs {
			name, value, found := strings.Cut(spec, "=")
			if !found {
				options[name] = "all"
				continue
			}
			options[name] = value
		}
		cfg.Entities = cfg.Entities[:0]
		for _, game := range games {
			cfg.Entities = append(cfg.Entities, runconfig.EntityConfig{
				Entity:  game,
				Options: options,
				Others:  others,
				Ignore:  ignore,
			})
		}
	}

	// Per-entity flags override the file layer wherever the entities came
	// from, not just when --game rebuilt them.
	for i := range cfg.Entities {
		if flags.Changed("others") {
			cfg.Entities[i].Others = others
		}
		if flags.Changed("ignore") {
			cfg.Entities[i].Ignore = ignore
		}
	}

	if flags.Changed("dir") {
		cfg.Dir = dir
	}
	if flags.Changed("splits") {
		cfg.Splits = splits
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	cfg.Yes = yes
	cfg.Source = source
	return cfg, nil
}

func buildRequest(cfg runconfig.Config) (enumgen.Request, error) {
	var req enumgen.Request
	for _, ec := range cfg.Entities {
		sel, err := ec.Selection(cfg.Splits)
		if err != nil {
			return enumgen.Request{}, err
		}
		req.Entities = append(req.Entities, enumgen.EntityRequest{
			Entity:    ec.Entity,
			Selection: sel,
		})
	}
	return req, nil
}

func printEstimates(ctx context.Context, provider schema.Provider, req enumgen.Request, logger *slog.Logger) error {
	estimator := enumerate.NewEstimator(logger)
	for _, er := range req.Entities {
		sch, err := provider.Options(ctx, er.Entity)
		if err != nil {
			fmt.Printf("%s: %v\n", er.Entity, err)
			continue
		}
		fmt.Printf("%s: %d documents\n", er.Entity, estimator.Estimate(sch, er.Selection))
	}
	return nil
}

func printReport(report enumgen.Report) {
	fmt.Printf("processed %d games:\n", len(report.Processed))
	for _, entity := range report.Processed {
		fmt.Printf("  - %s\n", entity)
	}
	if len(report.Skipped) > 0 {
		fmt.Println("didn't process some games:")
		for _, skip := range report.Skipped {
			fmt.Printf("  - %s\n", skip)
		}
	}
}

func dump(cfg runconfig.Config) error {
	fmt.Printf("dir: %s\nsource: %s\nsplits: %d\nverbose: %d\nyes: %t\n",
		cfg.Dir, cfg.Source, cfg.Splits, cfg.Verbose, cfg.Yes)
	for _, ec := range cfg.Entities {
		fmt.Printf("game: %s\n  options: %v\n  others: %s\n  ignore: %v\n",
			ec.Entity, ec.Options, ec.Others, ec.Ignore)
	}
	return nil
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseSource(raw string) schema.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return schema.SourceFromURL(path)
	}
	return schema.SourceFromFile(path)
}
