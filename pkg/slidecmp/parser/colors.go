package parser

import (
	"encoding/xml"
	"math"
	"strconv"
)

// colorInfo holds the resolved color and alpha of one fill-bearing element.
type colorInfo struct {
	color *string
	alpha *int
}

// parseColorElement consumes the subtree of a fill-bearing element and
// resolves its color and transparency. A direct RGB value (srgbClr) wins
// over a theme reference (schemeClr); within each kind the first element in
// the subtree is taken. Alpha is stored natively in 0-100000 units and
// converted to an integer 0-100 percent.
func parseColorElement(decoder *xml.Decoder) colorInfo {
	var srgb, scheme *string
	var alpha *int

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "srgbClr":
				if srgb == nil {
					val := attrOrDefault(t, "val", "000000")
					c := "#" + val
					srgb = &c
				}
			case "schemeClr":
				if scheme == nil {
					val := attrOrDefault(t, "val", "unknown")
					c := "scheme:" + val
					scheme = &c
				}
			case "alpha":
				if alpha == nil {
					val := attrOrDefault(t, "val", "100000")
					if n, err := strconv.Atoi(val); err == nil {
						pct := int(math.Round(float64(n) / 1000.0))
						alpha = &pct
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	info := colorInfo{alpha: alpha}
	if srgb != nil {
		info.color = srgb
	} else if scheme != nil {
		info.color = scheme
	}
	return info
}

func attrOrDefault(el xml.StartElement, name, fallback string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return fallback
}
