package main

import (
	"context"

	"separator-calculator/internal/calculator"
	"separator-calculator/internal/observability"
)

// initMetrics initialises all metric providers and the separator
// calculators' metric instruments.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
