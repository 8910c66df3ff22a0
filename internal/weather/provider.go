package weather

import (
	"context"
	"fmt"
)

// Provider abstracts a weather data source (OpenWeather, or the canned
// fixture used in test mode).
type Provider interface {
	Name() string
	Fetch(ctx context.Context) (Reading, error)
}

// FetchKind classifies why a fetch failed. Retry cadence is owned by the
// refresh scheduler, not the provider.
type FetchKind string

const (
	FetchNetwork FetchKind = "network"
	FetchAuth    FetchKind = "auth"
	FetchParse   FetchKind = "parse"
)

// FetchError wraps a provider failure with its classification.
type FetchError struct {
	Kind FetchKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("weather fetch (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewFetchError builds a classified fetch error.
func NewFetchError(kind FetchKind, err error) *FetchError {
	return &FetchError{Kind: kind, Err: err}
}
