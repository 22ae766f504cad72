// Package render turns stored section content into structured blocks:
// headings, paragraphs and the CodeBlock, DataTable and ModelGrid components.
package render

import "strings"

// Render scans content line by line. Component blocks that fail to parse are
// left out of the result and recorded in Document.Errors.
func Render(content string) Document {
	doc := Document{Blocks: []Block{}}
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			i++
			continue
		}

		if level, text, ok := heading(line); ok {
			doc.Blocks = append(doc.Blocks, Block{Kind: KindHeading, Level: level, Text: text})
			i++
			continue
		}

		if opensComponent(trimmed) {
			start := i
			var buf strings.Builder
			buf.WriteString(line)
			i++

			if !closesComponent(line) {
				depth := 1
				for i < len(lines) && depth > 0 {
					buf.WriteString("\n")
					buf.WriteString(lines[i])
					if containsComponent(lines[i]) {
						depth++
					}
					if closesComponent(lines[i]) {
						depth--
					}
					i++
				}
			}

			name, block, err := parseComponent(buf.String())
			if err != nil {
				doc.Errors = append(doc.Errors, &ComponentError{Line: start + 1, Component: name, Err: err})
				continue
			}
			doc.Blocks = append(doc.Blocks, *block)
			continue
		}

		if !strings.HasPrefix(line, "<") {
			doc.Blocks = append(doc.Blocks, Block{Kind: KindParagraph, Text: line})
		}
		i++
	}

	return doc
}

func heading(line string) (int, string, bool) {
	for level, marker := range []string{"# ", "## ", "### "} {
		if strings.HasPrefix(line, marker) {
			return level + 1, line[len(marker):], true
		}
	}
	return 0, "", false
}

func opensComponent(trimmed string) bool {
	for _, tag := range componentTags {
		if strings.HasPrefix(trimmed, tag) {
			return true
		}
	}
	return false
}

func containsComponent(line string) bool {
	for _, tag := range componentTags {
		if strings.Contains(line, tag) {
			return true
		}
	}
	return false
}

func closesComponent(line string) bool {
	return strings.Contains(line, "/>") || strings.Contains(line, "</")
}
