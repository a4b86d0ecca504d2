package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"github.com/ukaji3/slidecmp-go/pkg/slidecmp/models"
)

// Display truncation limits. The JSON report is never truncated; these only
// bound the terminal output.
const (
	maxColorsShown  = 20
	maxIssuesShown  = 5
	maxShapesShown  = 10
	maxDetailSlides = 5
	maxTextWidth    = 30
)

var (
	sectionTitle = color.New(color.FgCyan, color.Bold)
	issueCount   = color.New(color.FgYellow)
)

// WriteText renders the human-readable comparison report: the summary
// tables, the per-slide issue list, and the detailed dump of the first
// slides of each document.
func WriteText(w io.Writer, ours, theirs *models.DocumentData, diffs []models.SlideDiff) {
	writeSummary(w, ours, theirs)
	writeSlideIssues(w, diffs)
	writeDetail(w, ours, theirs)
}

func writeHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	sectionTitle.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 80))
}

func writeSummary(w io.Writer, ours, theirs *models.DocumentData) {
	writeHeader(w, "SUMMARY COMPARISON")

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Ours", "Theirs", "Diff"})
	t.AppendRow(table.Row{"Total Slides", ours.Summary.TotalSlides, theirs.Summary.TotalSlides,
		fmt.Sprintf("%+d", ours.Summary.TotalSlides-theirs.Summary.TotalSlides)})
	t.AppendRow(table.Row{"Total Shapes", ours.Summary.TotalShapes, theirs.Summary.TotalShapes,
		fmt.Sprintf("%+d", ours.Summary.TotalShapes-theirs.Summary.TotalShapes)})
	t.AppendRow(table.Row{"Total Images", ours.Summary.TotalImages, theirs.Summary.TotalImages,
		fmt.Sprintf("%+d", ours.Summary.TotalImages-theirs.Summary.TotalImages)})
	t.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Shape Types")
	st := table.NewWriter()
	st.SetOutputMirror(w)
	st.SetStyle(table.StyleLight)
	st.AppendHeader(table.Row{"Type", "Ours", "Theirs", "Diff"})
	for _, name := range unionKeys(ours.Summary.ShapeTypes, theirs.Summary.ShapeTypes) {
		a := ours.Summary.ShapeTypes[name]
		b := theirs.Summary.ShapeTypes[name]
		st.AppendRow(table.Row{name, a, b, fmt.Sprintf("%+d", a-b)})
	}
	st.Render()

	writeColorList(w, "Colors used (Ours)", ours.Summary.ColorsUsed)
	writeColorList(w, "Colors used (Theirs)", theirs.Summary.ColorsUsed)

	fmt.Fprintf(w, "\nFonts (Ours): %v\n", ours.Summary.FontsUsed)
	fmt.Fprintf(w, "Fonts (Theirs): %v\n", theirs.Summary.FontsUsed)
}

func writeColorList(w io.Writer, title string, colors []string) {
	fmt.Fprintf(w, "\n%s: %d\n", title, len(colors))
	shown := colors
	if len(shown) > maxColorsShown {
		shown = shown[:maxColorsShown]
	}
	for _, c := range shown {
		fmt.Fprintf(w, "  %s\n", c)
	}
	if rest := len(colors) - maxColorsShown; rest > 0 {
		fmt.Fprintf(w, "  ... and %d more\n", rest)
	}
}

func writeSlideIssues(w io.Writer, diffs []models.SlideDiff) {
	writeHeader(w, "SLIDE-BY-SLIDE COMPARISON")

	for _, diff := range diffs {
		if len(diff.Issues) == 0 {
			continue
		}

		fmt.Fprintln(w)
		issueCount.Fprintf(w, "Slide %d: %d issues\n", diff.SlideNum, len(diff.Issues))
		shown := diff.Issues
		if len(shown) > maxIssuesShown {
			shown = shown[:maxIssuesShown]
		}
		for _, issue := range shown {
			fmt.Fprintf(w, "  - %s: ours=%s, zai=%s\n", issue.Type, issueValue(issue.Ours), issueValue(issue.Zai))
		}
		if rest := len(diff.Issues) - maxIssuesShown; rest > 0 {
			fmt.Fprintf(w, "  ... and %d more issues\n", rest)
		}
	}
}

func writeDetail(w io.Writer, ours, theirs *models.DocumentData) {
	writeHeader(w, "DETAILED SLIDE ANALYSIS")

	n := len(ours.Slides)
	if len(theirs.Slides) < n {
		n = len(theirs.Slides)
	}
	if n > maxDetailSlides {
		n = maxDetailSlides
	}

	for i := 0; i < n; i++ {
		a, b := ours.Slides[i], theirs.Slides[i]

		fmt.Fprintf(w, "\n--- Slide %d ---\n", a.SlideNum)
		fmt.Fprintf(w, "Background: Ours=%s, Theirs=%s\n", optStr(a.BackgroundColor), optStr(b.BackgroundColor))
		fmt.Fprintf(w, "Shapes: Ours=%d, Theirs=%d\n", a.ShapeCount, b.ShapeCount)
		fmt.Fprintf(w, "Images: Ours=%d, Theirs=%d\n", a.ImageCount, b.ImageCount)

		writeShapeList(w, "Our shapes", a.Shapes)
		writeShapeList(w, "Their shapes", b.Shapes)
	}
}

func writeShapeList(w io.Writer, title string, shapes []models.Shape) {
	fmt.Fprintf(w, "\n%s (first %d):\n", title, maxShapesShown)
	shown := shapes
	if len(shown) > maxShapesShown {
		shown = shown[:maxShapesShown]
	}
	for _, s := range shown {
		fmt.Fprintf(w, "  %-15s @ (%.2f, %.2f) %.2fx%.2f fill=%s text=%s\n",
			s.ShapeType, s.X, s.Y, s.W, s.H, optStr(s.FillColor), truncatedText(s.TextContent))
	}
}

// truncatedText clips shape text to a display width, accounting for wide
// runes.
func truncatedText(s *string) string {
	if s == nil {
		return "unset"
	}
	return runewidth.Truncate(*s, maxTextWidth, "")
}

func optStr(s *string) string {
	if s == nil {
		return "unset"
	}
	return *s
}

func issueValue(v any) string {
	if v == nil {
		return "unset"
	}
	return fmt.Sprint(v)
}

func unionKeys(a, b map[string]int) []string {
	set := map[string]struct{}{}
	for k := range a {
		set[k] = struct{}{}
	}
	for k := range b {
		set[k] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
