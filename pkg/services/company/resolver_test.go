package company

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/filing-atlas/pkg/models/store"
)

type stubSource struct {
	entries []store.CorpEntry
	err     error
	calls   int
}

func (s *stubSource) FetchCorpIndex(_ context.Context) ([]store.CorpEntry, error) {
	s.calls++
	return s.entries, s.err
}

type stubCache struct {
	entries []store.CorpEntry
	loadErr error
	saveErr error
	saved   []store.CorpEntry
}

func (s *stubCache) Load(_ context.Context) ([]store.CorpEntry, error) {
	return s.entries, s.loadErr
}

func (s *stubCache) Save(_ context.Context, entries []store.CorpEntry) error {
	s.saved = entries
	return s.saveErr
}

func TestResolver_ExactMatch(t *testing.T) {
	cache := &stubCache{entries: []store.CorpEntry{
		{Name: "Acme Corp", Code: "00012345"},
		{Name: "Acme Foods", Code: "00099999"},
	}}
	r := NewResolver(&stubSource{}, cache)

	code, err := r.Resolve(context.Background(), "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, "00012345", code)
}

func TestResolver_SingleSubstringMatch(t *testing.T) {
	cache := &stubCache{entries: []store.CorpEntry{
		{Name: "Acme Corp", Code: "00012345"},
		{Name: "Globex", Code: "00000077"},
	}}
	r := NewResolver(&stubSource{}, cache)

	code, err := r.Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, "00012345", code)
}

func TestResolver_AmbiguousMatch(t *testing.T) {
	cache := &stubCache{entries: []store.CorpEntry{
		{Name: "Acme Corp", Code: "00012345"},
		{Name: "Acme Foods", Code: "00099999"},
	}}
	r := NewResolver(&stubSource{}, cache)

	_, err := r.Resolve(context.Background(), "Acme")

	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, 2)
	assert.Contains(t, ambiguous.Candidates, "Acme Corp")
	assert.Contains(t, ambiguous.Candidates, "Acme Foods")
}

func TestResolver_AmbiguousCandidatesCappedAtFive(t *testing.T) {
	var entries []store.CorpEntry
	for i := 0; i < 8; i++ {
		entries = append(entries, store.CorpEntry{
			Name: fmt.Sprintf("Acme %d", i),
			Code: fmt.Sprintf("%08d", i),
		})
	}
	r := NewResolver(&stubSource{}, &stubCache{entries: entries})

	_, err := r.Resolve(context.Background(), "Acme")

	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, 5)
}

func TestResolver_NotFound(t *testing.T) {
	cache := &stubCache{entries: []store.CorpEntry{{Name: "Acme Corp", Code: "00012345"}}}
	r := NewResolver(&stubSource{}, cache)

	_, err := r.Resolve(context.Background(), "Globex")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolver_CacheHitSkipsSource(t *testing.T) {
	source := &stubSource{}
	cache := &stubCache{entries: []store.CorpEntry{{Name: "Acme Corp", Code: "00012345"}}}
	r := NewResolver(source, cache)

	_, err := r.Resolve(context.Background(), "Acme Corp")
	require.NoError(t, err)
	assert.Zero(t, source.calls)
}

func TestResolver_CacheMissRebuildsAndSaves(t *testing.T) {
	source := &stubSource{entries: []store.CorpEntry{{Name: "Acme Corp", Code: "12345"}}}
	cache := &stubCache{}
	r := NewResolver(source, cache)

	code, err := r.Resolve(context.Background(), "Acme Corp")
	require.NoError(t, err)

	// Identifiers are zero-padded to 8 characters on index build.
	assert.Equal(t, "00012345", code)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, source.entries, cache.saved)
}

func TestResolver_IndexLoadedOncePerRun(t *testing.T) {
	source := &stubSource{entries: []store.CorpEntry{{Name: "Acme Corp", Code: "00012345"}}}
	r := NewResolver(source, &stubCache{})

	_, err := r.Resolve(context.Background(), "Acme Corp")
	require.NoError(t, err)
	_, err = r.Resolve(context.Background(), "Acme Corp")
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
}

func TestResolver_RebuildFailureIsFatalForResolution(t *testing.T) {
	source := &stubSource{err: errors.New("provider unreachable")}
	r := NewResolver(source, &stubCache{})

	_, err := r.Resolve(context.Background(), "Acme")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestResolver_SaveFailureIsNotFatal(t *testing.T) {
	source := &stubSource{entries: []store.CorpEntry{{Name: "Acme Corp", Code: "00012345"}}}
	cache := &stubCache{saveErr: errors.New("disk full")}
	r := NewResolver(source, cache)

	code, err := r.Resolve(context.Background(), "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, "00012345", code)
}
