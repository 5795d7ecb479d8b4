package adapters

import (
	"strings"

	"github.com/fin-tools/filing-atlas/pkg/models/domain"
	"github.com/fin-tools/filing-atlas/pkg/models/store"
)

const corpCodeLen = 8

// MapCorpEntriesToIndex builds the domain company index from master-list
// entries. Identifiers are zero-padded to 8 characters; entries missing a
// name or code are dropped.
func MapCorpEntriesToIndex(entries []store.CorpEntry) domain.CompanyIndex {
	codes := make(map[string]string, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		code := strings.TrimSpace(e.Code)
		if name == "" || code == "" {
			continue
		}
		codes[name] = PadCorpCode(code)
	}
	return domain.NewCompanyIndex(codes)
}

// PadCorpCode left-pads an identifier with zeros to the canonical 8 characters.
func PadCorpCode(code string) string {
	if len(code) >= corpCodeLen {
		return code
	}
	return strings.Repeat("0", corpCodeLen-len(code)) + code
}
