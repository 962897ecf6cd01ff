package app

import (
	"context"
	"math"
	"sync"
	"time"

	"gocontrast/domain/contrast"
	"gocontrast/domain/core"
	"gocontrast/domain/design"
	"gocontrast/internal"
	"gocontrast/internal/errors"
	"gocontrast/ports"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/semaphore"
)

// ContrastService resolves paradigm contrasts for callers that hold either a
// column list or a design file
type ContrastService struct {
	resolver ports.ContrastResolverPort
	logger   *internal.Logger
	options  ServiceOptions
}

// ServiceOptions bounds batch resolution
type ServiceOptions struct {
	MaxConcurrent int
	Timeout       time.Duration
}

// ResolveRequest names a paradigm and where its design columns come from.
// Source takes precedence over Columns; Introspect ignores both.
type ResolveRequest struct {
	Paradigm   string
	Columns    []string
	Source     ports.DesignSource
	Introspect bool
}

// Resolution is one resolved contrast set with its provenance
type Resolution struct {
	RunID       core.RunID                 `json:"run_id"`
	Paradigm    string                     `json:"paradigm"`
	CreatedAt   core.Timestamp             `json:"created_at"`
	Introspect  bool                       `json:"introspect,omitempty"`
	Columns     []string                   `json:"columns,omitempty"`
	Contrasts   contrast.Set               `json:"contrasts"`
	Summaries   map[string]ContrastSummary `json:"summaries,omitempty"`
	Fingerprint core.Hash                  `json:"fingerprint"`
	Catalog     core.CatalogHash           `json:"catalog"`
}

// ContrastSummary describes the weights of one contrast
type ContrastSummary struct {
	Rows    int     `json:"rows"`
	NonZero int     `json:"non_zero"`
	Sum     float64 `json:"sum"`
	Mean    float64 `json:"mean"`
	MaxAbs  float64 `json:"max_abs"`
}

// BatchResult pairs a batch request with its outcome. Exactly one of
// Resolution and Err is set.
type BatchResult struct {
	Index      int
	Paradigm   string
	Resolution *Resolution
	Err        error
}

// CatalogReport lists every resolvable paradigm id
type CatalogReport struct {
	Hash    core.CatalogHash        `json:"hash"`
	Entries []contrast.CatalogEntry `json:"entries"`
}

// NewContrastService creates a contrast service
func NewContrastService(resolver ports.ContrastResolverPort, logger *internal.Logger, options ServiceOptions) *ContrastService {
	if options.MaxConcurrent <= 0 {
		options.MaxConcurrent = 1
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ContrastService{
		resolver: resolver,
		logger:   logger.With("contrast"),
		options:  options,
	}
}

// Resolve reads the design columns and resolves the paradigm against them.
// Errors carry an application code; domain sentinels stay reachable via errors.Is.
func (s *ContrastService) Resolve(ctx context.Context, req ResolveRequest) (*Resolution, error) {
	id, err := core.ParseParadigmID(req.Paradigm)
	if err != nil {
		return nil, errors.InvalidInput(err.Error())
	}

	cols := design.Introspect
	var names []string
	if !req.Introspect {
		names, err = s.readColumns(ctx, req)
		if err != nil {
			s.logger.Warn("paradigm %s: %v", id, err)
			return nil, err
		}
		cols = design.NewColumns(names...)
	}

	set, err := s.resolver.Resolve(id.String(), cols)
	if err != nil {
		if core.IsDefect(err) {
			s.logger.Error("paradigm %s: %v", id, err)
		} else {
			s.logger.Warn("paradigm %s: %v", id, err)
		}
		return nil, errors.FromDomain(err)
	}

	res := &Resolution{
		RunID:       core.NewRunID(),
		Paradigm:    id.String(),
		CreatedAt:   core.Now(),
		Introspect:  req.Introspect,
		Columns:     names,
		Contrasts:   set,
		Fingerprint: set.Fingerprint(),
		Catalog:     s.resolver.Hash(),
	}
	if !req.Introspect {
		res.Summaries = summarize(set)
	}

	s.logger.Debug("paradigm %s resolved %d contrasts over %d columns (%s)",
		id, len(set), len(names), res.Fingerprint.Short())
	return res, nil
}

// Introspect returns the paradigm's declared contrast names as placeholders
func (s *ContrastService) Introspect(ctx context.Context, paradigm string) (*Resolution, error) {
	return s.Resolve(ctx, ResolveRequest{Paradigm: paradigm, Introspect: true})
}

// Catalog lists every resolvable paradigm id
func (s *ContrastService) Catalog() CatalogReport {
	return CatalogReport{
		Hash:    s.resolver.Hash(),
		Entries: s.resolver.Catalog(),
	}
}

// ResolveBatch resolves every request with bounded parallelism. Results keep
// request order and one failure does not affect the others.
func (s *ContrastService) ResolveBatch(ctx context.Context, reqs []ResolveRequest) []BatchResult {
	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	results := make([]BatchResult, len(reqs))
	sem := semaphore.NewWeighted(int64(s.options.MaxConcurrent))
	var wg sync.WaitGroup

	s.logger.Info("resolving batch of %d (max %d concurrent)", len(reqs), s.options.MaxConcurrent)

	for i, req := range reqs {
		results[i] = BatchResult{Index: i, Paradigm: req.Paradigm}

		if err := sem.Acquire(ctx, 1); err != nil {
			results[i].Err = errors.Wrapf(err, "batch item %d not started", i)
			continue
		}

		wg.Add(1)
		go func(i int, req ResolveRequest) {
			defer wg.Done()
			defer sem.Release(1)

			res, err := s.Resolve(ctx, req)
			if err != nil {
				results[i].Err = err
				return
			}
			results[i].Resolution = res
		}(i, req)
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.logger.Info("batch done: %d resolved, %d failed", len(reqs)-failed, failed)
	return results
}

func (s *ContrastService) readColumns(ctx context.Context, req ResolveRequest) ([]string, error) {
	if req.Source == nil {
		return append([]string(nil), req.Columns...), nil
	}
	names, err := req.Source.Columns(ctx)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.DesignSourceError(req.Source.Describe(), err)
	}
	return names, nil
}

func summarize(set contrast.Set) map[string]ContrastSummary {
	out := make(map[string]ContrastSummary, len(set))
	for name, c := range set {
		if c.IsPlaceholder() {
			continue
		}
		var weights, magnitudes []float64
		for _, row := range c.RawRows() {
			weights = append(weights, row...)
		}
		sum := ContrastSummary{Rows: c.Rows()}
		for _, w := range weights {
			if w != 0 {
				sum.NonZero++
			}
			magnitudes = append(magnitudes, math.Abs(w))
		}
		sum.Sum, _ = stats.Sum(weights)
		sum.Mean, _ = stats.Mean(weights)
		sum.MaxAbs, _ = stats.Max(magnitudes)
		out[name] = sum
	}
	return out
}
