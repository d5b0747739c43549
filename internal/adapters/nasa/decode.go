package nasa

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cosmos-daily/internal/domain"
)

// wireRecord mirrors the APOD JSON. Pointers distinguish missing fields
// from empty ones.
type wireRecord struct {
	Date           *string `json:"date"`
	Explanation    *string `json:"explanation"`
	MediaType      *string `json:"media_type"`
	ServiceVersion *string `json:"service_version"`
	Title          *string `json:"title"`
	URL            *string `json:"url"`
	HDURL          *string `json:"hdurl"`
}

// Decode reads one APOD JSON object from r and validates its shape.
// Unknown fields (copyright, thumbnail_url, ...) are ignored.
func Decode(r io.Reader) (*domain.Record, error) {
	var raw wireRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty response body", domain.ErrInvalidRecord)
		}
		return nil, fmt.Errorf("decode apod response: %w", err)
	}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"date", raw.Date},
		{"media_type", raw.MediaType},
		{"title", raw.Title},
		{"url", raw.URL},
	} {
		if f.value == nil || strings.TrimSpace(*f.value) == "" {
			return nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidRecord, f.name)
		}
	}

	if !domain.ValidDate(*raw.Date) {
		return nil, fmt.Errorf("%w: malformed date %q", domain.ErrInvalidRecord, *raw.Date)
	}

	return &domain.Record{
		Date:           *raw.Date,
		Explanation:    deref(raw.Explanation),
		MediaType:      domain.MediaType(*raw.MediaType),
		ServiceVersion: deref(raw.ServiceVersion),
		Title:          *raw.Title,
		URL:            *raw.URL,
		HDURL:          deref(raw.HDURL),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
