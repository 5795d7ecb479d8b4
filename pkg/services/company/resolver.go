// Package company resolves free-text company names to stable identifiers.
package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fin-tools/filing-atlas/pkg/adapters"
	"github.com/fin-tools/filing-atlas/pkg/models/domain"
	"github.com/fin-tools/filing-atlas/pkg/models/store"
)

// maxCandidates caps how many ambiguous matches are reported back.
const maxCandidates = 5

// ErrNotFound means no company name matched, exactly or by substring.
var ErrNotFound = errors.New("company not found")

// AmbiguousError means a substring query matched more than one company.
type AmbiguousError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("company name %q is ambiguous, matches include: %s",
		e.Query, strings.Join(e.Candidates, ", "))
}

// IndexSource provides the full identifier master list, used when the local
// cache cannot.
type IndexSource interface {
	FetchCorpIndex(ctx context.Context) ([]store.CorpEntry, error)
}

// CacheStore persists master-list snapshots between runs.
type CacheStore interface {
	Load(ctx context.Context) ([]store.CorpEntry, error)
	Save(ctx context.Context, entries []store.CorpEntry) error
}

type Resolver struct {
	source IndexSource
	cache  CacheStore

	index  domain.CompanyIndex
	loaded bool
}

func NewResolver(source IndexSource, cache CacheStore) *Resolver {
	return &Resolver{source: source, cache: cache}
}

// Resolve maps a company name to its identifier. Exact matches win; otherwise
// a unique substring match resolves, zero matches is ErrNotFound, and several
// matches is an AmbiguousError carrying up to five candidate names.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNotFound
	}

	if err := r.ensureIndex(ctx); err != nil {
		return "", err
	}

	if code, ok := r.index.Lookup(name); ok {
		return code, nil
	}

	candidates := r.index.Candidates(name)
	switch len(candidates) {
	case 0:
		return "", ErrNotFound
	case 1:
		code, _ := r.index.Lookup(candidates[0])
		zerolog.Ctx(ctx).Debug().
			Str("query", name).
			Str("matched", candidates[0]).
			Msg("resolved by substring match")
		return code, nil
	default:
		if len(candidates) > maxCandidates {
			candidates = candidates[:maxCandidates]
		}
		return "", &AmbiguousError{Query: name, Candidates: candidates}
	}
}

// ensureIndex loads the company index once per run: cache first, with a full
// rebuild from the master-list source (and a one-time save) on a miss.
func (r *Resolver) ensureIndex(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	logger := zerolog.Ctx(ctx)

	entries, err := r.cache.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("identifier cache load failed, rebuilding")
		entries = nil
	}

	if len(entries) == 0 {
		entries, err = r.source.FetchCorpIndex(ctx)
		if err != nil {
			return fmt.Errorf("failed to rebuild identifier index: %w", err)
		}
		if err := r.cache.Save(ctx, entries); err != nil {
			// A failed save is not fatal; the next run rebuilds again.
			logger.Warn().Err(err).Msg("failed to save identifier cache")
		}
	}

	r.index = adapters.MapCorpEntriesToIndex(entries)
	r.loaded = true
	logger.Info().Int("companies", r.index.Len()).Msg("company index ready")
	return nil
}
