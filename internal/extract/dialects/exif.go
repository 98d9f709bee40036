package dialects

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// Exif extracts JPEG metadata. Every EXIF tag passes through as a
// string field; DateTimeOriginal ("YYYY:MM:DD HH:MM:SS") becomes the
// ISO timestamp, the camera make/model feed the detail, and the author
// is "unspecified" since EXIF rarely names a person. Operates on the
// raw bytes: binary input never goes through sanitize.
type Exif struct{}

func NewExif() *Exif { return &Exif{} }

func (e *Exif) Name() string        { return "exif" }
func (e *Exif) Kinds() []model.Kind { return []model.Kind{model.KindImage} }
func (e *Exif) Required() []string  { return nil }

// tagWalker collects every tag into a candidate map.
type tagWalker struct {
	fields extract.Candidate
}

func (w *tagWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	w.fields[string(name)] = strings.Trim(tag.String(), `"`)
	return nil
}

func (e *Exif) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	meta, err := exif.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("decode exif: %w", err)
	}

	walker := &tagWalker{fields: make(extract.Candidate)}
	if err := meta.Walk(walker); err != nil {
		return nil, fmt.Errorf("walk exif tags: %w", err)
	}

	candidate := walker.fields
	iso := isoFromExifDate(tagString(meta, exif.DateTimeOriginal))
	if iso == "" {
		iso = isoFromExifDate(tagString(meta, exif.DateTime))
	}

	make := tagString(meta, exif.Make)
	if make == "" {
		make = "UnknownMake"
	}
	cameraModel := tagString(meta, exif.Model)
	if cameraModel == "" {
		cameraModel = "UnknownModel"
	}

	candidate["author"] = "unspecified"
	if iso != "" {
		// Left absent when unparsable: completing it from the contextual
		// date would fabricate a capture time for an undated photo.
		candidate["timestamp"] = iso
	}
	candidate["detail"] = fmt.Sprintf("Picture taken by %s %s at %s", make, cameraModel, iso)

	return []extract.Candidate{candidate}, nil
}

func tagString(meta *exif.Exif, name exif.FieldName) string {
	tag, err := meta.Get(name)
	if err != nil {
		return ""
	}
	if s, err := tag.StringVal(); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.Trim(tag.String(), `"`)
}

// isoFromExifDate converts the colon-separated EXIF datetime into ISO
// form; unparsable input yields "" and the record fails validation.
func isoFromExifDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse("2006:01:02 15:04:05", raw)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02T15:04:05")
}
