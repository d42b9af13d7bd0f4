package specs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/WessleyAI/autospecs/engine/domain"
	"github.com/WessleyAI/autospecs/pkg/fn"
	"github.com/WessleyAI/autospecs/pkg/perplexity"
	"github.com/WessleyAI/autospecs/pkg/resilience"
	"github.com/WessleyAI/autospecs/pkg/vehiclenlp"
)

// Generator produces free text for a prompt.
type Generator interface {
	Complete(ctx context.Context, prompt string) (perplexity.Completion, error)
}

// Source names where a record came from.
type Source string

const (
	SourceUpstream Source = "upstream"
	SourceCatalog  Source = "catalog"
)

// Reason explains why a search fell back to the catalog.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNoCredential  Reason = "no_credential"
	ReasonUpstreamError Reason = "upstream_error"
	ReasonEmptyContent  Reason = "empty_content"
	ReasonMalformed     Reason = "malformed_content"
	ReasonCircuitOpen   Reason = "circuit_open"
)

// Outcome is a resolved record together with how it was obtained.
type Outcome struct {
	Spec   domain.Spec `json:"spec"`
	Source Source      `json:"source"`
	Reason Reason      `json:"reason,omitempty"`
}

// SearchEvent is emitted after every search. KnownMake is the make name the
// term starts with, if it is a recognised one; it does not affect the record.
type SearchEvent struct {
	ID         string      `json:"id"`
	Term       string      `json:"term"`
	KnownMake  string      `json:"known_make,omitempty"`
	Spec       domain.Spec `json:"spec"`
	Source     Source      `json:"source"`
	Reason     Reason      `json:"reason,omitempty"`
	DurationMS int64       `json:"duration_ms"`
	At         time.Time   `json:"at"`
}

// Notifier receives search events. Implementations must not block for long.
type Notifier interface {
	Notify(ctx context.Context, ev SearchEvent)
}

// Recorder receives per-search metrics.
type Recorder interface {
	ObserveSearch(source, reason string, d time.Duration)
}

// Service resolves search terms into specification records.
type Service struct {
	generate fn.Stage[string, perplexity.Completion]
	catalog  *Catalog
	breaker  *resilience.Breaker
	notifier Notifier
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithCatalog replaces the built-in fallback catalog.
func WithCatalog(c *Catalog) Option { return func(s *Service) { s.catalog = c } }

// WithBreaker sets the breaker guarding upstream calls.
func WithBreaker(b *resilience.Breaker) Option { return func(s *Service) { s.breaker = b } }

// WithNotifier sets the search event sink.
func WithNotifier(n Notifier) Option { return func(s *Service) { s.notifier = n } }

// WithRecorder sets the metrics sink.
func WithRecorder(r Recorder) Option { return func(s *Service) { s.recorder = r } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.logger = l } }

// NewService creates a Service. A nil gen means no upstream credential is
// configured and every search is answered from the catalog.
func NewService(gen Generator, opts ...Option) *Service {
	s := &Service{
		catalog: DefaultCatalog(),
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	if s.breaker == nil {
		s.breaker = resilience.NewBreaker(resilience.DefaultBreakerOpts)
	}
	if gen != nil {
		s.generate = resilience.BreakerStage(s.breaker,
			fn.TracedStage("specs.generate", fn.StageOf(gen.Complete)))
	}
	return s
}

// Search returns the record for raw. The only error is input validation;
// upstream problems resolve to catalog data.
func (s *Service) Search(ctx context.Context, raw string) (domain.Spec, error) {
	out, err := s.Lookup(ctx, raw)
	if err != nil {
		return domain.Spec{}, err
	}
	return out.Spec, nil
}

// Lookup is Search with provenance.
func (s *Service) Lookup(ctx context.Context, raw string) (Outcome, error) {
	term, err := domain.ValidateModel(raw)
	if err != nil {
		return Outcome{}, err
	}

	start := s.now()
	out := s.resolve(ctx, term)
	elapsed := s.now().Sub(start)

	if s.recorder != nil {
		s.recorder.ObserveSearch(string(out.Source), string(out.Reason), elapsed)
	}
	if s.notifier != nil {
		mk, _, _ := vehiclenlp.SplitMake(term)
		s.notifier.Notify(ctx, SearchEvent{
			ID:         uuid.NewString(),
			Term:       term,
			KnownMake:  mk,
			Spec:       out.Spec,
			Source:     out.Source,
			Reason:     out.Reason,
			DurationMS: elapsed.Milliseconds(),
			At:         start.UTC(),
		})
	}
	return out, nil
}

// LookupMany resolves terms concurrently, preserving order.
func (s *Service) LookupMany(ctx context.Context, raw []string) ([]Outcome, error) {
	terms, err := domain.ValidateModels(raw)
	if err != nil {
		return nil, err
	}
	results := fn.ParMapResult(terms, domain.MaxCompare, func(term string) fn.Result[Outcome] {
		return fn.FromPair(s.Lookup(ctx, term))
	})
	return fn.Collect(results).Unwrap()
}

func (s *Service) resolve(ctx context.Context, term string) Outcome {
	if s.generate == nil {
		return s.fallback(term, ReasonNoCredential)
	}

	q := SplitQuery(term)
	comp, err := s.generate(ctx, BuildPrompt(term)).Unwrap()
	if err != nil {
		reason := ReasonUpstreamError
		if errors.Is(err, resilience.ErrCircuitOpen) {
			reason = ReasonCircuitOpen
		}
		s.logger.Warn("upstream lookup failed, using placeholder data",
			"term", term, "reason", reason, "err", err)
		return s.fallback(term, reason)
	}

	text, ok := comp.Text()
	if !ok {
		reason := ReasonEmptyContent
		if comp.Status == perplexity.StatusMalformed {
			reason = ReasonMalformed
		}
		s.logger.Warn("upstream returned no usable content, using placeholder data",
			"term", term, "reason", reason)
		return s.fallback(term, reason)
	}

	return Outcome{Spec: BuildRecord(Extract(text, q)), Source: SourceUpstream}
}

func (s *Service) fallback(term string, reason Reason) Outcome {
	return Outcome{Spec: s.catalog.Resolve(term), Source: SourceCatalog, Reason: reason}
}
