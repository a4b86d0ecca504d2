package slidecmp

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/slidecmp-go/pkg/slidecmp/models"
)

const slideHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`

func rectSlide(fill string) string {
	return slideHeader + `<p:cSld><p:spTree>
  <p:sp>
    <p:nvSpPr><p:cNvPr id="2" name="Rect 1"/></p:nvSpPr>
    <p:spPr>
      <a:xfrm><a:off x="914400" y="914400"/><a:ext cx="1828800" cy="914400"/></a:xfrm>
      <a:prstGeom prst="rect"/>
      <a:solidFill><a:srgbClr val="` + fill + `"/></a:solidFill>
    </p:spPr>
    <p:txBody><a:p><a:r><a:rPr sz="1800"><a:latin typeface="Arial"/></a:rPr><a:t>Box</a:t></a:r></a:p></p:txBody>
  </p:sp>
</p:spTree></p:cSld></p:sld>`
}

func writePresentation(t *testing.T, name string, slides map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for entryName, content := range slides {
		entry, err := w.Create(entryName)
		if err != nil {
			t.Fatalf("create entry: %v", err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("write entry: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return path
}

func TestExtractSummary(t *testing.T) {
	path := writePresentation(t, "a.pptx", map[string]string{
		"ppt/slides/slide1.xml": rectSlide("FF0000"),
		"ppt/slides/slide2.xml": rectSlide("00FF00"),
	})

	doc, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if doc.File != path {
		t.Errorf("File = %q, expected %q", doc.File, path)
	}
	if doc.Summary.TotalSlides != 2 || doc.Summary.TotalShapes != 2 || doc.Summary.TotalImages != 0 {
		t.Errorf("totals = (%d, %d, %d), expected (2, 2, 0)",
			doc.Summary.TotalSlides, doc.Summary.TotalShapes, doc.Summary.TotalImages)
	}
	if doc.Summary.ShapeTypes["rect"] != 2 {
		t.Errorf("ShapeTypes[rect] = %d, expected 2", doc.Summary.ShapeTypes["rect"])
	}
	if !reflect.DeepEqual(doc.Summary.ColorsUsed, []string{"#00FF00", "#FF0000"}) {
		t.Errorf("ColorsUsed = %v, expected sorted [#00FF00 #FF0000]", doc.Summary.ColorsUsed)
	}
	if !reflect.DeepEqual(doc.Summary.FontsUsed, []string{"Arial"}) {
		t.Errorf("FontsUsed = %v, expected [Arial]", doc.Summary.FontsUsed)
	}
}

func TestExtractDeterminism(t *testing.T) {
	path := writePresentation(t, "a.pptx", map[string]string{
		"ppt/slides/slide1.xml": rectSlide("FF0000"),
		"ppt/slides/slide2.xml": rectSlide("00FF00"),
	})

	first, err := Extract(path)
	if err != nil {
		t.Fatalf("first Extract failed: %v", err)
	}
	second, err := Extract(path)
	if err != nil {
		t.Fatalf("second Extract failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("extracting the same document twice yielded different records")
	}
}

func TestExtractInvalidArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.pptx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := Extract(path)
	if err == nil {
		t.Fatal("expected an error for an invalid archive")
	}

	var extractErr *ExtractError
	if !errors.As(err, &extractErr) {
		t.Errorf("error type = %T, expected *ExtractError", err)
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("error chain does not include ErrInvalidFormat: %v", err)
	}
}

func TestCompareEndToEnd(t *testing.T) {
	oursPath := writePresentation(t, "ours.pptx", map[string]string{
		"ppt/slides/slide1.xml": rectSlide("FF0000"),
	})
	theirsPath := writePresentation(t, "theirs.pptx", map[string]string{
		"ppt/slides/slide1.xml": rectSlide("00FF00"),
	})

	ours, err := Extract(oursPath)
	if err != nil {
		t.Fatalf("Extract(ours) failed: %v", err)
	}
	theirs, err := Extract(theirsPath)
	if err != nil {
		t.Fatalf("Extract(theirs) failed: %v", err)
	}

	diffs := Compare(ours, theirs)
	if len(diffs) != 1 {
		t.Fatalf("got %d diffs, expected 1", len(diffs))
	}
	if len(diffs[0].Issues) != 1 {
		t.Fatalf("got %d issues, expected exactly 1: %+v", len(diffs[0].Issues), diffs[0].Issues)
	}

	issue := diffs[0].Issues[0]
	if issue.Type != models.IssueFillColorMismatch {
		t.Errorf("issue type = %q, expected fill_color_mismatch", issue.Type)
	}
	if issue.Ours != "#FF0000" || issue.Zai != "#00FF00" {
		t.Errorf("issue values = (%v, %v), expected (#FF0000, #00FF00)", issue.Ours, issue.Zai)
	}
	if diffs[0].ShapeDiff != 0 {
		t.Errorf("ShapeDiff = %d, expected 0", diffs[0].ShapeDiff)
	}
}
