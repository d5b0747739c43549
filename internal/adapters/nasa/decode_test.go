package nasa

import (
	"strings"
	"testing"

	"cosmos-daily/internal/domain"
	"cosmos-daily/test/fixtures"
)

func TestDecode_VideoRecord(t *testing.T) {
	// Act
	rec, err := Decode(strings.NewReader(fixtures.VideoRecord()))

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.MediaType != domain.MediaVideo {
		t.Errorf("MediaType: got %v, want video", rec.MediaType)
	}
	if rec.HDURL != "" {
		t.Errorf("HDURL: got %q, want empty", rec.HDURL)
	}
}

func TestDecode_UnknownMediaType_KeptVerbatim(t *testing.T) {
	rec, err := Decode(strings.NewReader(fixtures.OtherMediaRecord()))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.MediaType != "other" {
		t.Errorf("MediaType: got %q, want other", rec.MediaType)
	}
}

func TestDecode_OptionalFieldsDefaultToEmpty(t *testing.T) {
	body := `{"date":"2024-06-12","title":"T","media_type":"image","url":"https://x/i.jpg"}`

	rec, err := Decode(strings.NewReader(body))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Explanation != "" || rec.ServiceVersion != "" {
		t.Errorf("optional fields should default to empty, got %+v", rec)
	}
}

func TestDecode_WrongFieldType_ReturnsError(t *testing.T) {
	body := `{"date":"2024-06-12","title":42,"media_type":"image","url":"https://x/i.jpg"}`

	if _, err := Decode(strings.NewReader(body)); err == nil {
		t.Error("expected error for numeric title")
	}
}

func TestDecode_ErrorMessageNamesField(t *testing.T) {
	_, err := Decode(strings.NewReader(fixtures.MissingTitleRecord()))

	if err == nil || err.Error() != "invalid APOD record: missing title" {
		t.Errorf("got %v, want 'invalid APOD record: missing title'", err)
	}
}
