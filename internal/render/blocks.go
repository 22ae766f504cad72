package render

import "fmt"

type BlockKind string

const (
	KindHeading   BlockKind = "heading"
	KindParagraph BlockKind = "paragraph"
	KindCodeTabs  BlockKind = "code_tabs"
	KindDataTable BlockKind = "data_table"
	KindModelGrid BlockKind = "model_grid"
)

// Block is one renderable unit. Exactly one payload matches Kind.
type Block struct {
	Kind  BlockKind  `json:"kind"`
	Level int        `json:"level,omitempty"`
	Text  string     `json:"text,omitempty"`
	Code  *CodeTabs  `json:"code,omitempty"`
	Table *DataTable `json:"table,omitempty"`
	Grid  *ModelGrid `json:"grid,omitempty"`
}

type CodeTab struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

type CodeTabs struct {
	Title        string    `json:"title,omitempty"`
	Tabs         []CodeTab `json:"tabs"`
	DropdownTabs []CodeTab `json:"dropdownTabs,omitempty"`
	ActiveTab    string    `json:"activeTab"`
}

// All returns the inline tabs followed by the overflow ones.
func (c *CodeTabs) All() []CodeTab {
	out := make([]CodeTab, 0, len(c.Tabs)+len(c.DropdownTabs))
	out = append(out, c.Tabs...)
	return append(out, c.DropdownTabs...)
}

// Single reports whether the block is a titled one-tab panel.
func (c *CodeTabs) Single() bool {
	return c.Title != "" && len(c.Tabs)+len(c.DropdownTabs) == 1
}

type TableCell struct {
	Text string `json:"text"`
	Code bool   `json:"code,omitempty"`
}

type DataTable struct {
	Headers []string      `json:"headers"`
	Rows    [][]TableCell `json:"rows"`
}

// ModelCard is one card of a model grid; GradientClass is the resolved CSS class list.
type ModelCard struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Gradient      string `json:"gradient"`
	GradientClass string `json:"gradientClass"`
}

type ModelGrid struct {
	Models []ModelCard `json:"models"`
}

// ComponentError records a component block that was skipped.
type ComponentError struct {
	Line      int
	Component string
	Err       error
}

func (e *ComponentError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Component, e.Err)
}

func (e *ComponentError) Unwrap() error { return e.Err }

// Document is the result of rendering one content string.
type Document struct {
	Blocks []Block           `json:"blocks"`
	Errors []*ComponentError `json:"-"`
}

// ErrorStrings is Errors in a JSON-friendly form.
func (d *Document) ErrorStrings() []string {
	out := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		out = append(out, e.Error())
	}
	return out
}
