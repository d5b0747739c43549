// Package fixtures provides APOD response bodies for tests.
package fixtures

// ImageRecord is a typical image entry with an HD variant.
func ImageRecord() string {
	return `{
  "copyright": "Jane Doe",
  "date": "2024-06-12",
  "explanation": "A nebula glows in the southern sky.",
  "hdurl": "https://apod.nasa.gov/apod/image/2406/nebula_hd.jpg",
  "media_type": "image",
  "service_version": "v1",
  "title": "Nebula at Dawn",
  "url": "https://apod.nasa.gov/apod/image/2406/nebula.jpg"
}`
}

// ImageRecordWithoutHD is the end-to-end scenario payload: an image with no hdurl.
func ImageRecordWithoutHD() string {
	return `{"date":"2024-06-12","title":"Test","media_type":"image","url":"https://x/img.jpg","explanation":"E","service_version":"1"}`
}

// VideoRecord is an entry whose media is an embeddable video.
func VideoRecord() string {
	return `{
  "date": "2024-06-13",
  "explanation": "A time-lapse of the aurora.",
  "media_type": "video",
  "service_version": "v1",
  "title": "Aurora Time-Lapse",
  "url": "https://www.youtube.com/embed/abc123?rel=0"
}`
}

// OtherMediaRecord carries a media type the viewer does not render.
func OtherMediaRecord() string {
	return `{
  "date": "2024-06-14",
  "explanation": "An interactive page.",
  "media_type": "other",
  "service_version": "v1",
  "title": "Interactive Sky",
  "url": "https://apod.nasa.gov/apod/ap240614.html"
}`
}

// MissingTitleRecord lacks a required field.
func MissingTitleRecord() string {
	return `{"date":"2024-06-12","media_type":"image","url":"https://x/img.jpg","explanation":"E","service_version":"1"}`
}

// MalformedDateRecord has a date that is not YYYY-MM-DD.
func MalformedDateRecord() string {
	return `{"date":"June 12th","title":"Test","media_type":"image","url":"https://x/img.jpg","explanation":"E","service_version":"1"}`
}

// TruncatedBody is not valid JSON.
func TruncatedBody() string {
	return `{"date":"2024-06-12","title":"Tes`
}

// RateLimitBody is what api.nasa.gov sends alongside a 429.
func RateLimitBody() string {
	return `{"error":{"code":"OVER_RATE_LIMIT","message":"You have exceeded your rate limit. Try again later."}}`
}
