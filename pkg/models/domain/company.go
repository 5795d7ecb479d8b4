package domain

import (
	"sort"
	"strings"
)

// CompanyIndex maps company display names to their 8-character identifiers.
// It is built once per run and read-only afterwards.
type CompanyIndex struct {
	codes map[string]string
}

func NewCompanyIndex(codes map[string]string) CompanyIndex {
	return CompanyIndex{codes: codes}
}

func (idx CompanyIndex) Len() int {
	return len(idx.codes)
}

// Lookup returns the identifier for an exact name match.
func (idx CompanyIndex) Lookup(name string) (string, bool) {
	code, ok := idx.codes[name]
	return code, ok
}

// Candidates returns every company whose name contains the query as a
// substring, sorted for stable output.
func (idx CompanyIndex) Candidates(query string) []string {
	if query == "" {
		return nil
	}
	var names []string
	for name := range idx.codes {
		if strings.Contains(name, query) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
