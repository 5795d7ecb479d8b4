package store

// CorpEntry is one company in the identifier master list. The JSON field
// names match the cache file layout, which mirrors the provider's corpCode
// record shape.
type CorpEntry struct {
	Name string `json:"corp_name"`
	Code string `json:"corp_code"`
}
