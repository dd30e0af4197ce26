package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
)

// pageData is the view model for pageTemplate.
type pageData struct {
	Title          string
	Description    string
	SVG            template.HTML
	MonthNames     []string
	TooltipOpacity float64
	TooltipOffsetX int
	TooltipOffsetY int
	GeneratedAt    string
	ChartID        string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="generator" content="temperature-heatmap {{.ChartID}}">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 0; display: flex; flex-direction: column; align-items: center; }
  #title { margin-bottom: 0; }
  #description { margin-top: 0.5em; }
  #tooltip { position: absolute; opacity: 0; pointer-events: none; padding: 6px 10px;
             background: rgba(0, 0, 0, 0.8); color: #fff; border-radius: 4px; font-size: 12px; line-height: 1.4; }
  rect.cell:hover { stroke: #000; stroke-width: 1; }
</style>
</head>
<body>
<h1 id="title">{{.Title}}</h1>
<h3 id="description">{{.Description}}</h3>
{{.SVG}}
<div id="tooltip"></div>
<footer><small>Generated {{.GeneratedAt}}</small></footer>
<script>
(function () {
  var months = {{.MonthNames}};
  var tooltip = document.getElementById("tooltip");
  document.querySelectorAll("#heatmap rect.cell").forEach(function (cell) {
    cell.addEventListener("mouseover", function (event) {
      var year = cell.getAttribute("data-year");
      var month = Number(cell.getAttribute("data-month"));
      var temp = Number(cell.getAttribute("data-temp"));
      var variance = Number(cell.getAttribute("data-variance"));
      tooltip.setAttribute("data-year", year);
      tooltip.innerHTML = "<strong>" + year + " - " + months[month] + "</strong><br>" +
        "Temp: " + temp.toFixed(2) + "℃<br>" +
        "Variance: " + variance.toFixed(2) + "℃";
      tooltip.style.opacity = {{.TooltipOpacity}};
      tooltip.style.left = (event.pageX + {{.TooltipOffsetX}}) + "px";
      tooltip.style.top = (event.pageY + {{.TooltipOffsetY}}) + "px";
    });
    cell.addEventListener("mouseout", function () {
      tooltip.style.opacity = 0;
    });
  });
})();
</script>
</body>
</html>
`))

// WritePage writes an HTML document embedding the chart, the #tooltip element
// and the hover script that drives it.
func (c *Chart) WritePage(w io.Writer) error {
	months := make([]string, 12)
	for i := range months {
		months[i] = domain.MonthName(i)
	}

	data := pageData{
		Title:          "Monthly Global Land-Surface Temperature",
		Description:    fmt.Sprintf("%d - %d: base temperature %s℃", c.FirstYear, c.LastYear, formatBase(c.BaseTemperature)),
		SVG:            template.HTML(c.Document.String()), //nolint:gosec // element text and attributes are XML-escaped by svg.Encode
		MonthNames:     months,
		TooltipOpacity: TooltipOpacity,
		TooltipOffsetX: TooltipOffsetX,
		TooltipOffsetY: TooltipOffsetY,
		GeneratedAt:    c.GeneratedAt.Format("2006-01-02 15:04 MST"),
		ChartID:        c.ID,
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

func formatBase(v float64) string {
	return fmt.Sprintf("%g", v)
}
