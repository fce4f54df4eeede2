// File: services/directory/view.go
package directory

import (
	"context"
	"sync"

	"servicedirectory/models"

	"go.uber.org/zap"
)

// ListingPath is where a failed detail view sends the visitor.
const ListingPath = "/service-providers"

// ViewState is the lifecycle of a fetch-then-render view. Views start in
// StateLoading and move to exactly one terminal state.
type ViewState int

const (
	StateLoading ViewState = iota
	StateReady
	StateEmptyReady
	StateRedirected
)

func (s ViewState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateEmptyReady:
		return "empty"
	case StateRedirected:
		return "redirected"
	default:
		return "unknown"
	}
}

// lifecycle holds what ListingView and DetailView share: one fetch per
// mount and a cancel func that Close fires.
type lifecycle struct {
	mu      sync.Mutex
	started bool
	closed  bool
	state   ViewState
	outcome Outcome
	err     error
	cancel  context.CancelFunc
}

// begin claims the single fetch of this view. ok is false when the view
// already fetched or was closed.
func (l *lifecycle) begin(parent context.Context) (ctx context.Context, done func(), ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started || l.closed {
		return nil, nil, false
	}
	l.started = true
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	return ctx, cancel, true
}

// Close tears the view down. An in-flight fetch is cancelled and its result discarded.
func (l *lifecycle) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *lifecycle) State() ViewState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *lifecycle) Outcome() Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outcome
}

func (l *lifecycle) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// ListingView backs the provider listing page.
type ListingView struct {
	lifecycle
	svc       DirectoryService
	logger    *zap.Logger
	providers []models.ServiceProvider
}

func NewListingView(svc DirectoryService, logger *zap.Logger) *ListingView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListingView{svc: svc, logger: logger}
}

// Load fetches the collection once. Any failure leaves the collection empty
// and ends in StateEmptyReady; the outcome says why. When ctx is cancelled
// mid-fetch nobody is left to render, so the view stays in StateLoading.
func (v *ListingView) Load(ctx context.Context) ViewState {
	ctx, done, ok := v.begin(ctx)
	if !ok {
		return v.State()
	}
	defer done()

	res := v.svc.ListProviders(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return v.state
	}
	v.outcome, v.err = res.Outcome, res.Err
	if res.Outcome == OutcomeCanceled {
		return v.state
	}
	if res.OK() {
		v.providers = res.Value
		v.state = StateReady
		return v.state
	}
	v.logger.Warn("Error fetching providers", zap.String("outcome", string(res.Outcome)), zap.Error(res.Err))
	v.providers = nil
	v.state = StateEmptyReady
	return v.state
}

// ListingSnapshot is everything the listing page renders.
type ListingSnapshot struct {
	State        ViewState
	Outcome      Outcome
	Criteria     Criteria
	Providers    []models.ServiceProvider
	ServiceTypes []string
	Total        int
}

// NoResults is true once loaded when nothing is left to show.
func (s ListingSnapshot) NoResults() bool {
	return s.State != StateLoading && len(s.Providers) == 0
}

// Unreachable is true when the list is empty because the server could not be reached.
func (s ListingSnapshot) Unreachable() bool {
	return s.State == StateEmptyReady && s.Outcome.Unreachable()
}

// Snapshot applies criteria to the loaded collection. It is recomputed on
// every call; collections are small.
func (v *ListingView) Snapshot(criteria Criteria) ListingSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return ListingSnapshot{
		State:        v.state,
		Outcome:      v.outcome,
		Criteria:     criteria,
		Providers:    FilterProviders(v.providers, criteria),
		ServiceTypes: ServiceTypes(v.providers),
		Total:        len(v.providers),
	}
}

// DetailView backs the provider detail page.
type DetailView struct {
	lifecycle
	svc      DirectoryService
	logger   *zap.Logger
	id       string
	provider *models.ServiceProvider
}

func NewDetailView(svc DirectoryService, id string, logger *zap.Logger) *DetailView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailView{svc: svc, id: id, logger: logger}
}

// Load fetches the provider once. Every failure class, not-found included,
// ends in StateRedirected. A cancelled ctx leaves the view in StateLoading.
func (v *DetailView) Load(ctx context.Context) ViewState {
	ctx, done, ok := v.begin(ctx)
	if !ok {
		return v.State()
	}
	defer done()

	res := v.svc.GetProvider(ctx, v.id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return v.state
	}
	v.outcome, v.err = res.Outcome, res.Err
	if res.Outcome == OutcomeCanceled {
		return v.state
	}
	if res.OK() && res.Value != nil {
		v.provider = res.Value
		v.state = StateReady
		return v.state
	}
	v.logger.Warn("Error fetching provider",
		zap.String("id", v.id),
		zap.String("outcome", string(res.Outcome)),
		zap.Error(res.Err),
	)
	v.state = StateRedirected
	return v.state
}

// Provider returns the loaded record, nil unless the view is ready.
func (v *DetailView) Provider() *models.ServiceProvider {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.provider
}

// RedirectTo is the navigation target once redirected, empty otherwise.
func (v *DetailView) RedirectTo() string {
	if v.State() != StateRedirected {
		return ""
	}
	return ListingPath
}
