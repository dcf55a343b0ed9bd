// Package schema exposes the public contracts for option schema loading and
// resolution. Implementations live under internal/openapi to keep kin-openapi
// dependencies hidden from consumers: callers program against Source, Loader,
// and Provider and never see the document format behind them.
package schema
