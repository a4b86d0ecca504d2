package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/slidecmp-go/pkg/slidecmp/models"
)

const (
	slideEntryPrefix = "ppt/slides/slide"
	slideEntrySuffix = ".xml"
)

// slideEntry pairs an archive entry with its embedded slide number.
type slideEntry struct {
	file *zip.File
	num  int
}

// ExtractSlides opens a pptx archive and parses every slide entry into a
// Slide, ordered by the numeric index embedded in the entry name. Lexical
// ordering would misplace slide10 before slide2. Any archive or XML error
// fails the whole extraction; there is no partial result.
func ExtractSlides(path string) ([]models.Slide, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	entries := collectSlideEntries(&r.Reader)

	slides := make([]models.Slide, 0, len(entries))
	for _, entry := range entries {
		data, err := readZipFile(entry.file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.file.Name, err)
		}
		slide, err := parseSlideXML(data, entry.num)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.file.Name, err)
		}
		slides = append(slides, slide)
	}

	return slides, nil
}

// collectSlideEntries returns slide XML entries sorted by slide number.
func collectSlideEntries(r *zip.Reader) []slideEntry {
	var entries []slideEntry
	for _, f := range r.File {
		if !strings.HasPrefix(f.Name, slideEntryPrefix) || !strings.HasSuffix(f.Name, slideEntrySuffix) {
			continue
		}
		numStr := strings.TrimSuffix(strings.TrimPrefix(f.Name, slideEntryPrefix), slideEntrySuffix)
		num, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}
		entries = append(entries, slideEntry{file: f, num: num})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].num < entries[j].num })
	return entries
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseSlideXML parses one slide payload into a Slide record.
func parseSlideXML(data []byte, slideNum int) (models.Slide, error) {
	slide := models.Slide{
		SlideNum: slideNum,
		Shapes:   []models.Shape{},
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Slide{}, err
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "bg":
				if slide.BackgroundColor == nil {
					slide.BackgroundColor = parseBackground(decoder)
				}
			case "spTree":
				shapes, images := parseShapeTree(decoder, slideNum)
				slide.Shapes = shapes
				slide.ImageCount = images
			}
		}
	}

	slide.ShapeCount = len(slide.Shapes)
	for _, shape := range slide.Shapes {
		if shape.TextContent != nil {
			slide.TextCount++
		}
	}

	return slide, nil
}

// parseBackground consumes a p:bg subtree and resolves the background color
// from a direct bgPr/solidFill chain, if present.
func parseBackground(decoder *xml.Decoder) *string {
	var color *string

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 && t.Name.Local == "bgPr" {
				if c := parseBackgroundProps(decoder); c != nil && color == nil {
					color = c
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return color
}

func parseBackgroundProps(decoder *xml.Decoder) *string {
	var color *string

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 && t.Name.Local == "solidFill" {
				info := parseColorElement(decoder)
				if color == nil {
					color = info.color
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return color
}

// parseShapeTree consumes a p:spTree subtree. Shapes are taken from direct
// p:sp children only (group members are not extracted), while pictures are
// counted at any depth, including inside groups. The picture over-count for
// grouped content is deliberate.
func parseShapeTree(decoder *xml.Decoder, slideNum int) ([]models.Shape, int) {
	shapes := []models.Shape{}
	images := 0

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch {
			case t.Name.Local == "sp" && depth == 2:
				if shape := parseShapeElement(decoder, slideNum); shape != nil {
					shapes = append(shapes, *shape)
				}
				depth--
			case t.Name.Local == "pic":
				images++
			}
		case xml.EndElement:
			depth--
		}
	}

	return shapes, images
}
