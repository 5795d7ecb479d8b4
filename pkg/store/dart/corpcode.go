package dart

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/fin-tools/filing-atlas/pkg/models/store"
)

// corpCodeDoc is the XML document inside the corpCode archive.
type corpCodeDoc struct {
	List []corpCodeEntry `xml:"list"`
}

type corpCodeEntry struct {
	CorpCode string `xml:"corp_code"`
	CorpName string `xml:"corp_name"`
}

// FetchCorpIndex downloads the full identifier master list. The provider
// serves a zip archive containing a single XML document.
func (c *Client) FetchCorpIndex(ctx context.Context) ([]store.CorpEntry, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("crtfc_key", c.apiKey)

	body, err := c.get(ctx, "/corpCode.xml", params)
	if err != nil {
		return nil, fmt.Errorf("failed to download identifier master list: %w", err)
	}

	entries, err := parseCorpCodeArchive(body)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int("companies", len(entries)).Msg("identifier master list downloaded")
	return entries, nil
}

func parseCorpCodeArchive(data []byte) ([]store.CorpEntry, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("master list is not a valid zip archive: %w", err)
	}
	if len(archive.File) == 0 {
		return nil, fmt.Errorf("master list archive is empty")
	}

	f, err := archive.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open master list document: %w", err)
	}
	defer f.Close()

	xmlData, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read master list document: %w", err)
	}

	var doc corpCodeDoc
	if err := xml.Unmarshal(xmlData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse master list XML: %w", err)
	}

	entries := make([]store.CorpEntry, 0, len(doc.List))
	for _, e := range doc.List {
		if e.CorpCode == "" || e.CorpName == "" {
			continue
		}
		entries = append(entries, store.CorpEntry{Name: e.CorpName, Code: e.CorpCode})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("master list contained no companies")
	}
	return entries, nil
}
