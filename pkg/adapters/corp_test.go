package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/filing-atlas/pkg/models/store"
)

func TestPadCorpCode(t *testing.T) {
	assert.Equal(t, "00012345", PadCorpCode("12345"))
	assert.Equal(t, "00012345", PadCorpCode("00012345"))
	assert.Equal(t, "123456789", PadCorpCode("123456789"))
}

func TestMapCorpEntriesToIndex(t *testing.T) {
	index := MapCorpEntriesToIndex([]store.CorpEntry{
		{Name: " Acme Corp ", Code: "12345"},
		{Name: "Globex", Code: "00000077"},
		{Name: "", Code: "999"},
		{Name: "Nameless", Code: ""},
	})

	require.Equal(t, 2, index.Len())

	code, ok := index.Lookup("Acme Corp")
	require.True(t, ok)
	assert.Equal(t, "00012345", code)

	code, ok = index.Lookup("Globex")
	require.True(t, ok)
	assert.Equal(t, "00000077", code)
}
