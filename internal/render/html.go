package render

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// LanguageIcons maps a code tab language to its icon URL.
var LanguageIcons = map[string]string{
	"python":     "https://cdn.simpleicons.org/python",
	"javascript": "https://cdn.simpleicons.org/javascript",
	"typescript": "https://cdn.simpleicons.org/typescript",
	"bash":       "https://cdn.simpleicons.org/gnubash",
	"shell":      "https://cdn.simpleicons.org/gnubash",
	"curl":       "https://cdn.simpleicons.org/curl",
	"json":       "https://cdn.simpleicons.org/json",
	"go":         "https://cdn.simpleicons.org/go",
	"rust":       "https://cdn.simpleicons.org/rust",
	"java":       "https://cdn.simpleicons.org/openjdk",
	"csharp":     "https://cdn.simpleicons.org/csharp",
	"php":        "https://cdn.simpleicons.org/php",
	"ruby":       "https://cdn.simpleicons.org/ruby",
	"swift":      "https://cdn.simpleicons.org/swift",
	"kotlin":     "https://cdn.simpleicons.org/kotlin",
}

const blockTemplates = `
{{- define "blocks"}}{{range .}}{{template "block" .}}{{end}}{{end}}

{{- define "block"}}
{{- if eq .Kind "heading"}}
{{- if eq .Level 1}}<h1 class="doc-h1">{{.Text}}</h1>{{else if eq .Level 2}}<h2 class="doc-h2">{{.Text}}</h2>{{else}}<h3 class="doc-h3">{{.Text}}</h3>{{end}}
{{- else if eq .Kind "paragraph"}}<p class="doc-p">{{.Text}}</p>
{{- else if eq .Kind "code_tabs"}}{{template "code" .Code}}
{{- else if eq .Kind "data_table"}}{{template "table" .Table}}
{{- else if eq .Kind "model_grid"}}{{template "grid" .Grid}}
{{- end}}
{{- end}}

{{- define "code"}}
{{- if .Single}}<div class="code-block code-single"><div class="code-header"><span class="code-title">{{.Title}}</span><button type="button" class="code-copy" aria-label="Copy code">Copy</button></div>
{{- range .All}}<pre class="code-pane"><code class="language-{{.Language}}">{{.Code}}</code></pre>{{end}}</div>
{{- else}}<div class="code-block code-tabs" data-active="{{.ActiveTab}}"><div class="code-header">
{{- if .Title}}<span class="code-title">{{.Title}}</span>{{end}}
{{- range .Tabs}}<button type="button" class="code-tab{{if eq .ID $.ActiveTab}} active{{end}}" data-tab="{{.ID}}">{{with icon .Language}}<img src="{{.}}" alt="" loading="lazy" class="code-icon">{{end}}{{.Label}}</button>{{end}}
{{- if .DropdownTabs}}<div class="code-dropdown">{{range .DropdownTabs}}<button type="button" class="code-tab code-more{{if eq .ID $.ActiveTab}} active{{end}}" data-tab="{{.ID}}">{{.Label}}</button>{{end}}</div>{{end}}
{{- "" }}<button type="button" class="code-copy" aria-label="Copy code">Copy</button></div>
{{- range .All}}<pre class="code-pane{{if ne .ID $.ActiveTab}} hidden{{end}}" data-pane="{{.ID}}"><code class="language-{{.Language}}">{{.Code}}</code></pre>{{end}}</div>
{{- end}}
{{- end}}

{{- define "table"}}<div class="data-table"><table><thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead><tbody>
{{- range .Rows}}<tr>{{range .}}<td>{{if .Code}}<code>{{.Text}}</code>{{else}}<span class="cell-text">{{.Text}}</span>{{end}}</td>{{end}}</tr>{{end}}</tbody></table></div>
{{- end}}

{{- define "grid"}}<div class="model-grid">{{range .Models}}<div class="model-card"><div class="model-banner bg-gradient-to-br {{.GradientClass}}"><h3>{{.Title}}</h3></div><div class="model-body"><p>{{.Description}}</p></div></div>{{end}}</div>
{{- end}}
`

// HTMLRenderer turns rendered documents into sanitised HTML fragments.
type HTMLRenderer struct {
	tmpl   *template.Template
	policy *bluemonday.Policy
}

func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"icon": func(lang string) string { return LanguageIcons[strings.ToLower(lang)] },
	}

	p := bluemonday.UGCPolicy()
	p.AllowElements("section", "div", "span", "button", "pre", "code", "table", "thead", "tbody", "tr", "th", "td", "img")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-zA-Z0-9_\- ]*$`)).Globally()
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^[a-zA-Z0-9_\-:.]+$`)).Globally()
	p.AllowDataAttributes()
	p.AllowAttrs("type", "aria-label").OnElements("button")
	p.AllowAttrs("src", "alt", "loading").OnElements("img")

	return &HTMLRenderer{
		tmpl:   template.Must(template.New("render").Funcs(funcs).Parse(blockTemplates)),
		policy: p,
	}
}

// Blocks renders a block sequence.
func (r *HTMLRenderer) Blocks(blocks []Block) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "blocks", blocks); err != nil {
		return "", err
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Section renders content wrapped in a <section> anchored at id.
func (r *HTMLRenderer) Section(id, content string) (template.HTML, Document, error) {
	doc := Render(content)
	inner, err := r.Blocks(doc.Blocks)
	if err != nil {
		return "", doc, err
	}
	var buf bytes.Buffer
	buf.WriteString(`<section class="doc-section" id="`)
	template.HTMLEscape(&buf, []byte(id))
	buf.WriteString(`">`)
	buf.WriteString(string(inner))
	buf.WriteString(`</section>`)
	return template.HTML(buf.String()), doc, nil
}
