package directory

import (
	"context"

	"servicedirectory/models"
)

// Result is a typed fetch result: a value together with the outcome that produced it.
type Result[T any] struct {
	Value   T
	Outcome Outcome
	Err     error
}

func (r Result[T]) OK() bool {
	return !r.Outcome.Failed()
}

// DirectoryService is the view-facing contract of the directory API.
type DirectoryService interface {
	// ListProviders fetches the list projection of every provider.
	ListProviders(ctx context.Context) Result[[]models.ServiceProvider]
	// GetProvider fetches the full projection of one provider.
	GetProvider(ctx context.Context, id string) Result[*models.ServiceProvider]
	// CreateProvider submits a new provider; the backend assigns its ID.
	CreateProvider(ctx context.Context, req models.NewProviderRequest) Result[*models.ServiceProvider]
	// Ping reports whether the directory API answers HTTP at all.
	Ping(ctx context.Context) error
}
