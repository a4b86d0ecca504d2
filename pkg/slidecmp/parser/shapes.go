package parser

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/slidecmp-go/pkg/slidecmp/models"
)

// shapeProps holds intermediate style-properties (spPr) parsing results.
type shapeProps struct {
	hasXfrm      bool
	hasOff       bool
	hasExt       bool
	x, y, cx, cy int64
	rotation     *int
	hasPrstGeom  bool
	prst         string
	hasSolidFill bool
	solid        colorInfo
	hasGradFill  bool
	grad         colorInfo
	hasNoFill    bool
	hasLine      bool
	lineWidth    *float64
	lineColor    *string
}

// textProps holds text-body parsing results. Font attributes follow
// last-run-wins semantics: every run carrying properties overwrites them.
type textProps struct {
	texts     []string
	fontSize  *float64
	fontFace  *string
	fontColor *string
	fontBold  bool
}

// parseShapeElement parses a p:sp subtree into a Shape. It returns nil for
// elements lacking a non-visual properties container, style properties, or a
// complete transform; those are not drawable primitives this tool
// understands, and skipping them is not an error.
func parseShapeElement(decoder *xml.Decoder, slideNum int) *models.Shape {
	var (
		hasNonVisual bool
		shapeID      = "unknown"
		shapeName    = "unknown"
		hasProps     bool
		props        shapeProps
		text         textProps
	)

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue
			}
			switch t.Name.Local {
			case "nvSpPr":
				hasNonVisual = true
				id, name := parseNonVisualProps(decoder)
				if id != "" {
					shapeID = id
				}
				if name != "" {
					shapeName = name
				}
				depth--
			case "spPr":
				hasProps = true
				props = parseStyleProps(decoder)
				depth--
			case "txBody":
				text = parseTextBody(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	if !hasNonVisual || !hasProps || !props.hasXfrm || !props.hasOff || !props.hasExt {
		return nil
	}

	shape := &models.Shape{
		SlideNum:  slideNum,
		ShapeID:   shapeID,
		ShapeName: shapeName,
		ShapeType: "custom",
		X:         EMUToInches(props.x),
		Y:         EMUToInches(props.y),
		W:         EMUToInches(props.cx),
		H:         EMUToInches(props.cy),
		Rotation:  props.rotation,
	}
	if props.hasPrstGeom {
		shape.ShapeType = props.prst
	}

	// Fill resolution: solid, then gradient, then explicit no-fill. The
	// check order governs even for malformed shapes carrying several fill
	// blocks.
	switch {
	case props.hasSolidFill:
		shape.FillColor = props.solid.color
		shape.FillTransparency = props.solid.alpha
	case props.hasGradFill:
		if props.grad.color != nil {
			c := "gradient:" + *props.grad.color
			shape.FillColor = &c
		}
		shape.FillTransparency = props.grad.alpha
	case props.hasNoFill:
		none := "none"
		shape.FillColor = &none
	}

	if props.hasLine {
		shape.LineColor = props.lineColor
		shape.LineWidth = props.lineWidth
	}

	if len(text.texts) > 0 {
		joined := strings.Join(text.texts, " ")
		shape.TextContent = &joined
	}
	shape.FontSize = text.fontSize
	shape.FontFace = text.fontFace
	shape.FontColor = text.fontColor
	shape.FontBold = text.fontBold

	return shape
}

// parseNonVisualProps consumes an nvSpPr subtree and returns the id and name
// attributes of the first cNvPr element.
func parseNonVisualProps(decoder *xml.Decoder) (id, name string) {
	seen := false
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "cNvPr" && !seen {
				seen = true
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "id":
						id = attr.Value
					case "name":
						name = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return
}

// parseStyleProps consumes an spPr subtree, collecting transform, preset
// geometry, fill, and line information from its direct children.
func parseStyleProps(decoder *xml.Decoder) shapeProps {
	var props shapeProps

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue
			}
			switch t.Name.Local {
			case "xfrm":
				props.hasXfrm = true
				props.rotation = parseRotation(t)
				parseTransform(decoder, &props)
				depth--
			case "prstGeom":
				props.hasPrstGeom = true
				props.prst = attrOrDefault(t, "prst", "unknown")
			case "solidFill":
				props.hasSolidFill = true
				props.solid = parseColorElement(decoder)
				depth--
			case "gradFill":
				props.hasGradFill = true
				props.grad = parseGradientFill(decoder)
				depth--
			case "noFill":
				props.hasNoFill = true
			case "ln":
				props.hasLine = true
				props.lineWidth, props.lineColor = parseLineProps(decoder, t)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return props
}

// parseRotation reads the rot attribute, stored natively in 1/60000ths of a
// degree, and converts it to whole degrees.
func parseRotation(start xml.StartElement) *int {
	for _, attr := range start.Attr {
		if attr.Name.Local == "rot" && attr.Value != "" {
			if native, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
				deg := int(native / 60000)
				return &deg
			}
		}
	}
	return nil
}

// parseTransform consumes an xfrm subtree and records offset and extent in
// EMU. Missing attributes default to 0; missing elements leave the
// corresponding presence flag unset, which disqualifies the shape.
func parseTransform(decoder *xml.Decoder, props *shapeProps) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue
			}
			switch t.Name.Local {
			case "off":
				props.hasOff = true
				props.x = emuAttr(t, "x")
				props.y = emuAttr(t, "y")
			case "ext":
				props.hasExt = true
				props.cx = emuAttr(t, "cx")
				props.cy = emuAttr(t, "cy")
			}
		case xml.EndElement:
			depth--
		}
	}
}

func emuAttr(el xml.StartElement, name string) int64 {
	val := attrOrDefault(el, name, "0")
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseGradientFill consumes a gradFill subtree and resolves the first
// gradient stop's color and transparency.
func parseGradientFill(decoder *xml.Decoder) colorInfo {
	var info colorInfo
	found := false

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "gs" && !found {
				found = true
				info = parseColorElement(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return info
}

// parseLineProps consumes an ln subtree. Width comes from the w attribute
// (EMU, converted to inches); color resolution is solid-beats-none, unset
// when the line carries neither.
func parseLineProps(decoder *xml.Decoder, start xml.StartElement) (width *float64, color *string) {
	for _, attr := range start.Attr {
		if attr.Name.Local == "w" && attr.Value != "" {
			if emu, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
				in := EMUToInches(emu)
				width = &in
			}
		}
	}

	var solid *string
	hasNoFill := false

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue
			}
			switch t.Name.Local {
			case "solidFill":
				info := parseColorElement(decoder)
				if solid == nil {
					solid = info.color
				}
				depth--
			case "noFill":
				hasNoFill = true
			}
		case xml.EndElement:
			depth--
		}
	}

	if solid != nil {
		color = solid
	} else if hasNoFill {
		none := "none"
		color = &none
	}
	return
}

// parseTextBody consumes a txBody subtree, collecting the text of every run
// and the font properties of the last run carrying them.
func parseTextBody(decoder *xml.Decoder) textProps {
	var text textProps

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "r" {
				parseTextRun(decoder, &text)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return text
}

// parseTextRun consumes a single a:r subtree.
func parseTextRun(decoder *xml.Decoder, text *textProps) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue
			}
			switch t.Name.Local {
			case "rPr":
				parseRunProps(decoder, t, text)
				depth--
			case "t":
				if s, err := readElementText(decoder); err == nil && s != "" {
					text.texts = append(text.texts, s)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseRunProps consumes an rPr subtree and overwrites the shape-level font
// attributes. Bold is recomputed for every run carrying properties, so a
// trailing run without a b attribute clears it; size is stored natively in
// hundredths of a point.
func parseRunProps(decoder *xml.Decoder, start xml.StartElement, text *textProps) {
	bold := false
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "sz":
			if n, err := strconv.Atoi(attr.Value); err == nil {
				size := float64(n) / 100
				text.fontSize = &size
			}
		case "b":
			bold = attr.Value == "1" || attr.Value == "true"
		}
	}
	text.fontBold = bold

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue
			}
			switch t.Name.Local {
			case "latin":
				for _, attr := range t.Attr {
					if attr.Name.Local == "typeface" {
						face := attr.Value
						text.fontFace = &face
					}
				}
			case "solidFill":
				info := parseColorElement(decoder)
				if info.color != nil {
					text.fontColor = info.color
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// readElementText consumes an element subtree and returns its character data.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}
