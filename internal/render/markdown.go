package render

import (
	"fmt"
	"strings"
)

// Markdown flattens a document into plain markdown for terminal output.
// Code tabs become one fenced block per tab; model grids become a list.
func Markdown(doc Document) string {
	var b strings.Builder
	for i, blk := range doc.Blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		switch blk.Kind {
		case KindHeading:
			fmt.Fprintf(&b, "%s %s\n", strings.Repeat("#", blk.Level), blk.Text)
		case KindParagraph:
			b.WriteString(blk.Text + "\n")
		case KindCodeTabs:
			writeCodeTabs(&b, blk.Code)
		case KindDataTable:
			writeTable(&b, blk.Table)
		case KindModelGrid:
			for _, m := range blk.Grid.Models {
				fmt.Fprintf(&b, "- **%s**: %s\n", m.Title, m.Description)
			}
		}
	}
	return b.String()
}

func writeCodeTabs(b *strings.Builder, c *CodeTabs) {
	if c.Title != "" {
		fmt.Fprintf(b, "**%s**\n\n", c.Title)
	}
	for i, tab := range c.All() {
		if i > 0 {
			b.WriteString("\n")
		}
		if !c.Single() {
			fmt.Fprintf(b, "_%s_\n\n", tab.Label)
		}
		fence := "```"
		for strings.Contains(tab.Code, fence) {
			fence += "`"
		}
		fmt.Fprintf(b, "%s%s\n%s\n%s\n", fence, tab.Language, strings.TrimRight(tab.Code, "\n"), fence)
	}
}

func writeTable(b *strings.Builder, t *DataTable) {
	cell := func(s string) string {
		return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
	}

	b.WriteString("|")
	for _, h := range t.Headers {
		b.WriteString(" " + cell(h) + " |")
	}
	b.WriteString("\n|")
	for range t.Headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString("|")
		for i := range t.Headers {
			text := ""
			if i < len(row) {
				text = cell(row[i].Text)
				if row[i].Code && text != "" {
					text = "`" + text + "`"
				}
			}
			b.WriteString(" " + text + " |")
		}
		b.WriteString("\n")
	}
}
