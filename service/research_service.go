package service

import (
	"context"
	"errors"
	"time"

	"legalresearch-backend/corpus"
	"legalresearch-backend/models"
	"legalresearch-backend/observability"

	"go.uber.org/zap"
)

// SelectionSize is how many statutes and cases a research result cites
const SelectionSize = 2

var ErrCorpusNotSet = errors.New("corpus store not set")

// ResearchService answers research queries against the loaded corpora.
// It holds no mutable state and is safe for concurrent use.
type ResearchService struct {
	store   *corpus.Store
	metrics *observability.ResearchMetrics
	logger  *zap.Logger
}

// ResearchServiceOption is a functional option for ResearchService
type ResearchServiceOption func(*ResearchService)

// WithCorpus sets the corpus store
func WithCorpus(store *corpus.Store) ResearchServiceOption {
	return func(s *ResearchService) {
		s.store = store
	}
}

// WithMetrics sets the metrics recorder
func WithMetrics(metrics *observability.ResearchMetrics) ResearchServiceOption {
	return func(s *ResearchService) {
		s.metrics = metrics
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) ResearchServiceOption {
	return func(s *ResearchService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewResearchService creates a new research service
func NewResearchService(opts ...ResearchServiceOption) *ResearchService {
	s := &ResearchService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResearchRequest represents a research query
type ResearchRequest struct {
	Query models.ResearchQuery
}

// ResearchResult represents the outcome of a research query
type ResearchResult struct {
	Result *models.ResearchResult

	// Set when the query filter matched too few records and the unfiltered corpus was used
	StatutesFellBack bool
	CasesFellBack    bool
}

// Research selects statutes and cases for the query and builds the argument points.
// Partial matches never fail; the only error is a service without a corpus.
func (s *ResearchService) Research(ctx context.Context, req ResearchRequest) (*ResearchResult, error) {
	start := time.Now()

	if s.store == nil {
		s.metrics.RecordQuery(observability.StatusError, time.Since(start).Seconds())
		return nil, ErrCorpusNotSet
	}

	statutes, statutesFellBack := selectWithFallback(s.store.Statutes(), SelectionSize, MatchStatute(req.Query))
	cases, casesFellBack := selectWithFallback(s.store.Cases(), SelectionSize, MatchCase(req.Query))

	if statutesFellBack {
		s.metrics.RecordFallback(observability.CollectionStatutes)
	}
	if casesFellBack {
		s.metrics.RecordFallback(observability.CollectionCases)
	}

	result := AssembleResult(req.Query, statutes, cases, BuildArguments(statutes, cases))

	s.metrics.RecordQuery(observability.StatusSuccess, time.Since(start).Seconds())
	s.logger.Debug("Research query answered",
		zap.Stringp("jurisdiction", req.Query.Jurisdiction),
		zap.Stringp("case_type", req.Query.CaseType),
		zap.Int("statutes", len(statutes)),
		zap.Int("cases", len(cases)),
		zap.Bool("statutes_fallback", statutesFellBack),
		zap.Bool("cases_fallback", casesFellBack),
	)

	return &ResearchResult{
		Result:           result,
		StatutesFellBack: statutesFellBack,
		CasesFellBack:    casesFellBack,
	}, nil
}
