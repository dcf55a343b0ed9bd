// Package prompt abstracts the interactive confirmation gate so the pipeline
// can be tested without a real terminal and callers can swap implementations.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted signals that the user interrupted the prompt (Ctrl-C) rather
// than answering it.
var ErrAborted = errors.New("prompt: aborted")

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Driver is the minimal prompt surface the pipeline needs: a blocking yes/no
// question and an informational line.
type Driver interface {
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Info(ctx context.Context, msg string) error
}

// Static answers every confirmation with a fixed decision and swallows Info
// output. It backs the --yes flag and tests.
type Static struct {
	Answer bool
}

// Confirm returns the fixed answer.
func (s Static) Confirm(ctx context.Context, _ ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.Answer, nil
}

// Info discards the message.
func (s Static) Info(ctx context.Context, _ string) error {
	return ctx.Err()
}
