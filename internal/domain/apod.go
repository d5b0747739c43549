// Package domain contains the core business entities and rules.
package domain

// Record is one day's Astronomy Picture of the Day entry.
// A Record is never mutated after decode; a new fetch replaces it wholesale.
type Record struct {
	Date           string    `json:"date"`
	Explanation    string    `json:"explanation"`
	MediaType      MediaType `json:"media_type"`
	ServiceVersion string    `json:"service_version"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	HDURL          string    `json:"hdurl,omitempty"` // Only present for images
}

// MediaSource returns the URL an image should be loaded from: the HD
// variant when present, otherwise the standard URL.
func (r Record) MediaSource() string {
	if r.HDURL != "" {
		return r.HDURL
	}
	return r.URL
}

// MediaType is the kind of media an entry carries.
// Values outside the known set are kept verbatim.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)
