// Command validate checks a rendered heat map SVG against the dataset it was
// rendered from. It verifies the document structure, one cell per
// observation with the expected data attributes, color ordering by
// temperature, axis tick labels, and the legend swatches.
//
// Usage:
//
//	go run ./cmd/render -input internal/pipeline/testdata/global-temperature.json -format svg -out /tmp/heatmap.svg
//	go run ./cmd/validate \
//	  -dataset internal/pipeline/testdata/global-temperature.json \
//	  -svg /tmp/heatmap.svg
package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/render"
)

// node is a generic XML element.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
	Text    string     `xml:",chardata"`
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *node) hasClass(class string) bool {
	v, _ := n.attr("class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// findAll returns every descendant (including n) matching fn in document order.
func (n *node) findAll(fn func(*node) bool) []*node {
	var out []*node
	var walk func(*node)
	walk = func(e *node) {
		if fn(e) {
			out = append(out, e)
		}
		for i := range e.Nodes {
			walk(&e.Nodes[i])
		}
	}
	walk(n)
	return out
}

func (n *node) findID(id string) *node {
	found := n.findAll(func(e *node) bool {
		v, ok := e.attr("id")
		return ok && v == id
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	datasetPath := flag.String("dataset", "", "path to the dataset JSON the chart was rendered from")
	svgPath := flag.String("svg", "", "path to the rendered SVG document")
	flag.Parse()

	if *datasetPath == "" || *svgPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*datasetPath, *svgPath, os.Stdout); code != 0 {
		os.Exit(code)
	}
}

func run(datasetPath, svgPath string, out io.Writer) int {
	fmt.Fprintln(out, "=== Heat Map Conformance Validation ===")
	fmt.Fprintln(out)

	ds, err := loadDataset(datasetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load dataset: %v\n", err)
		return 1
	}
	root, err := loadSVG(svgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load svg: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateStructure(root),
		validateCells(root, ds),
		validateColorOrder(root),
		validateAxes(root, ds),
		validateLegend(root),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Observations: %d, years %d-%d\n", len(ds.MonthlyVariance), firstYear(ds), lastYear(ds))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

func loadDataset(path string) (domain.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Dataset{}, err
	}
	return domain.ParseDataset(data)
}

func loadSVG(path string) (*node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	return &root, nil
}

func firstYear(ds domain.Dataset) int {
	lo, _ := ds.YearSpan()
	return lo
}

func lastYear(ds domain.Dataset) int {
	_, hi := ds.YearSpan()
	return hi
}

// ── Phase 1 ──

func validateStructure(root *node) *phase {
	p := &phase{name: "Phase 1: Document Structure"}

	if root.XMLName.Local != "svg" {
		p.errorf("root element is <%s>, want <svg>", root.XMLName.Local)
	}
	if id, _ := root.attr("id"); id != "heatmap" {
		p.errorf("root id = %q, want %q", id, "heatmap")
	}
	for _, attr := range []string{"width", "height"} {
		if _, ok := root.attr(attr); !ok {
			p.errorf("root is missing %s", attr)
		}
	}
	for _, id := range []string{"x-axis", "y-axis", "legend"} {
		g := root.findID(id)
		switch {
		case g == nil:
			p.errorf("missing #%s", id)
		case g.XMLName.Local != "g":
			p.errorf("#%s is <%s>, want <g>", id, g.XMLName.Local)
		}
	}
	return p
}

// ── Phase 2 ──

func cells(root *node) []*node {
	return root.findAll(func(e *node) bool {
		return e.XMLName.Local == "rect" && e.hasClass("cell")
	})
}

func validateCells(root *node, ds domain.Dataset) *phase {
	p := &phase{name: "Phase 2: Cells (one per observation)"}

	rects := cells(root)
	if len(rects) != len(ds.MonthlyVariance) {
		p.errorf("cell count = %d, want %d", len(rects), len(ds.MonthlyVariance))
		return p
	}

	palette := map[string]bool{}
	for _, c := range render.Palette() {
		palette[c] = true
	}

	for i, o := range ds.MonthlyVariance {
		checkCell(p, i, rects[i], o, ds.Temperature(o), palette)
	}
	return p
}

func checkCell(p *phase, i int, rect *node, o domain.Observation, temp float64, palette map[string]bool) {
	month, err := intAttr(rect, "data-month")
	switch {
	case err != nil:
		p.errorf("cell[%d]: data-month: %v", i, err)
	case month < 0 || month > 11:
		p.errorf("cell[%d]: data-month %d out of range 0-11", i, month)
	case month != o.MonthIndex():
		p.errorf("cell[%d]: data-month = %d, want %d", i, month, o.MonthIndex())
	}

	year, err := intAttr(rect, "data-year")
	switch {
	case err != nil:
		p.errorf("cell[%d]: data-year: %v", i, err)
	case year != o.Year:
		p.errorf("cell[%d]: data-year = %d, want %d", i, year, o.Year)
	}

	got, err := floatAttr(rect, "data-temp")
	switch {
	case err != nil:
		p.errorf("cell[%d]: data-temp: %v", i, err)
	case math.Abs(got-temp) > 1e-9:
		p.errorf("cell[%d]: data-temp = %g, want %g", i, got, temp)
	}

	for _, attr := range []string{"width", "height"} {
		v, err := floatAttr(rect, attr)
		if err != nil || v <= 0 {
			p.errorf("cell[%d]: %s must be positive", i, attr)
		}
	}

	if fill, _ := rect.attr("fill"); !palette[fill] {
		p.errorf("cell[%d]: fill %q is not a palette color", i, fill)
	}
}

// ── Phase 3 ──

func validateColorOrder(root *node) *phase {
	p := &phase{name: "Phase 3: Color Ordering (cold to hot)"}

	bucket := map[string]int{}
	for i, c := range render.Palette() {
		bucket[c] = i
	}

	type reading struct {
		temp   float64
		bucket int
	}
	var readings []reading
	for _, rect := range cells(root) {
		temp, err := floatAttr(rect, "data-temp")
		if err != nil {
			continue
		}
		fill, _ := rect.attr("fill")
		b, ok := bucket[fill]
		if !ok {
			continue
		}
		readings = append(readings, reading{temp: temp, bucket: b})
	}

	sort.SliceStable(readings, func(i, j int) bool { return readings[i].temp < readings[j].temp })
	for i := 1; i < len(readings); i++ {
		if readings[i].bucket < readings[i-1].bucket {
			p.errorf("temperature %g has color bucket %d, below bucket %d of colder %g",
				readings[i].temp, readings[i].bucket, readings[i-1].bucket, readings[i-1].temp)
		}
	}
	return p
}

// ── Phase 4 ──

func tickLabels(g *node) []string {
	var labels []string
	for _, t := range g.findAll(func(e *node) bool { return e.XMLName.Local == "text" }) {
		labels = append(labels, strings.TrimSpace(t.Text))
	}
	return labels
}

func validateAxes(root *node, ds domain.Dataset) *phase {
	p := &phase{name: "Phase 4: Axes (decades, month names)"}

	if g := root.findID("x-axis"); g != nil {
		var want []string
		for _, y := range render.DecadeYears(ds.Years()) {
			want = append(want, strconv.Itoa(y))
		}
		got := tickLabels(g)
		if strings.Join(got, ",") != strings.Join(want, ",") {
			p.errorf("x-axis labels = %v, want %v", got, want)
		}
	}

	if g := root.findID("y-axis"); g != nil {
		want := make([]string, 12)
		for i := range want {
			want[i] = domain.MonthName(i)
		}
		got := tickLabels(g)
		if strings.Join(got, ",") != strings.Join(want, ",") {
			p.errorf("y-axis labels = %v, want %v", got, want)
		}
	}
	return p
}

// ── Phase 5 ──

func validateLegend(root *node) *phase {
	p := &phase{name: "Phase 5: Legend"}

	g := root.findID("legend")
	if g == nil {
		p.errorf("missing #legend")
		return p
	}

	palette := render.Palette()
	rects := g.findAll(func(e *node) bool { return e.XMLName.Local == "rect" })
	if len(rects) != len(palette) {
		p.errorf("legend swatches = %d, want %d", len(rects), len(palette))
		return p
	}
	for i, r := range rects {
		if fill, _ := r.attr("fill"); fill != palette[i] {
			p.errorf("legend swatch %d fill = %q, want %q", i, fill, palette[i])
		}
	}

	labels := tickLabels(g)
	if len(labels) != len(palette)-1 {
		p.errorf("legend labels = %d, want %d", len(labels), len(palette)-1)
	}
	for i, l := range labels {
		if _, err := strconv.ParseFloat(strings.Replace(l, "−", "-", 1), 64); err != nil {
			p.errorf("legend label %d %q is not a number", i, l)
		}
	}
	return p
}

func intAttr(n *node, name string) (int, error) {
	v, ok := n.attr(name)
	if !ok {
		return 0, fmt.Errorf("missing")
	}
	return strconv.Atoi(v)
}

func floatAttr(n *node, name string) (float64, error) {
	v, ok := n.attr(name)
	if !ok {
		return 0, fmt.Errorf("missing")
	}
	return strconv.ParseFloat(v, 64)
}
