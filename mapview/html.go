package mapview

import (
	"fmt"
	"strings"
)

// HTML renders the info panel as the markup shown in the map corner
func (p *InfoPanel) HTML() string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h4>%s</h4>\n", p.Title)
	fmt.Fprintf(&b, "Size: %g MB<br>\n", p.SizeMB)
	fmt.Fprintf(&b, "Start: %s<br>\n", p.Start)
	fmt.Fprintf(&b, "End: %s<br>\n", p.End)

	for _, link := range p.DataLinks {
		fmt.Fprintf(&b, "<a href=%s>link</a><br>\n", link)
	}

	b.WriteString("<div>")
	for _, image := range p.BrowseImages {
		fmt.Fprintf(&b, "<img src=%s width='200px'/>", image)
	}
	b.WriteString("</div>")

	return b.String()
}
