package render

import (
	"errors"
	"fmt"
	"strings"
)

const (
	tagCodeBlock = "CodeBlock"
	tagDataTable = "DataTable"
	tagModelGrid = "ModelGrid"
)

var componentTags = []string{"<" + tagCodeBlock, "<" + tagDataTable, "<" + tagModelGrid}

var errMissingAttr = errors.New("missing required attribute")

// Gradients maps a model gradient identifier to its CSS classes.
var Gradients = map[string]string{
	"lunaby-pro":    "from-rose-500 to-amber-400",
	"lunaby":        "from-purple-500 to-indigo-500",
	"lunaby-vision": "from-cyan-500 to-pink-400",
}

const defaultGradient = "lunaby"

func gradientClass(id string) string {
	if c, ok := Gradients[id]; ok {
		return c
	}
	return Gradients[defaultGradient]
}

// parseComponent turns the accumulated text of one component block into a Block.
func parseComponent(src string) (string, *Block, error) {
	name, attrs, err := parseTag(src)
	if err != nil {
		return name, nil, err
	}

	switch name {
	case tagCodeBlock:
		b, err := codeBlock(attrs)
		return name, b, err
	case tagDataTable:
		b, err := dataTable(attrs)
		return name, b, err
	case tagModelGrid:
		b, err := modelGrid(attrs)
		return name, b, err
	}
	return name, nil, fmt.Errorf("unknown component %q", name)
}

// arrayAttr parses the {[...]} attribute key. ok is false when it is absent.
func arrayAttr(attrs map[string]attr, key string) ([]Value, bool, error) {
	a, found := attrs[key]
	if !found {
		return nil, false, nil
	}
	if !a.isExpr {
		return nil, true, fmt.Errorf("%s: expected {[...]} expression", key)
	}
	v, err := ParseLiteral(a.value)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", key, err)
	}
	if v.Kind != KindArray {
		return nil, true, fmt.Errorf("%s: expected array, got %s", key, v.Kind)
	}
	return v.Arr, true, nil
}

func codeBlock(attrs map[string]attr) (*Block, error) {
	rawTabs, ok, err := arrayAttr(attrs, "tabs")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: tabs", errMissingAttr)
	}
	tabs, err := codeTabs(rawTabs)
	if err != nil {
		return nil, fmt.Errorf("tabs: %w", err)
	}

	rawDropdown, _, err := arrayAttr(attrs, "dropdownTabs")
	if err != nil {
		return nil, err
	}
	dropdown, err := codeTabs(rawDropdown)
	if err != nil {
		return nil, fmt.Errorf("dropdownTabs: %w", err)
	}

	ct := &CodeTabs{Tabs: tabs, DropdownTabs: dropdown}
	if t, found := attrs["title"]; found && !t.isExpr {
		ct.Title = t.value
	}
	if all := ct.All(); len(all) > 0 {
		ct.ActiveTab = all[0].ID
	}
	return &Block{Kind: KindCodeTabs, Code: ct}, nil
}

func codeTabs(in []Value) ([]CodeTab, error) {
	out := make([]CodeTab, 0, len(in))
	for i, v := range in {
		if v.Kind != KindObject {
			return nil, fmt.Errorf("tab %d: expected object, got %s", i, v.Kind)
		}
		out = append(out, CodeTab{
			ID:       v.Get("id").Text(),
			Label:    v.Get("label").Text(),
			Language: v.Get("language").Text(),
			Code:     v.Get("code").Text(),
		})
	}
	return out, nil
}

func dataTable(attrs map[string]attr) (*Block, error) {
	rawHeaders, ok, err := arrayAttr(attrs, "headers")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: headers", errMissingAttr)
	}
	rawRows, ok, err := arrayAttr(attrs, "rows")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: rows", errMissingAttr)
	}

	table := &DataTable{Headers: make([]string, 0, len(rawHeaders)), Rows: make([][]TableCell, 0, len(rawRows))}
	for _, h := range rawHeaders {
		table.Headers = append(table.Headers, h.Text())
	}
	for i, r := range rawRows {
		if r.Kind != KindArray {
			return nil, fmt.Errorf("row %d: expected array, got %s", i, r.Kind)
		}
		row := make([]TableCell, 0, len(r.Arr))
		for _, c := range r.Arr {
			row = append(row, tableCell(c))
		}
		table.Rows = append(table.Rows, row)
	}
	return &Block{Kind: KindDataTable, Table: table}, nil
}

// tableCell: {code} or {label} are code-styled, {value} is plain text.
func tableCell(v Value) TableCell {
	if v.Kind != KindObject {
		return TableCell{Text: v.Text()}
	}
	if code := v.Get("code").Text(); code != "" {
		return TableCell{Text: code, Code: true}
	}
	if label := v.Get("label").Text(); label != "" {
		return TableCell{Text: label, Code: true}
	}
	return TableCell{Text: v.Get("value").Text()}
}

func modelGrid(attrs map[string]attr) (*Block, error) {
	raw, ok, err := arrayAttr(attrs, "models")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: models", errMissingAttr)
	}

	grid := &ModelGrid{Models: make([]ModelCard, 0, len(raw))}
	for i, m := range raw {
		if m.Kind != KindObject {
			return nil, fmt.Errorf("model %d: expected object, got %s", i, m.Kind)
		}
		gradient := strings.TrimSpace(m.Get("gradient").Text())
		grid.Models = append(grid.Models, ModelCard{
			Title:         m.Get("title").Text(),
			Description:   m.Get("description").Text(),
			Gradient:      gradient,
			GradientClass: gradientClass(gradient),
		})
	}
	return &Block{Kind: KindModelGrid, Grid: grid}, nil
}
