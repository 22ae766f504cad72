package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_HeadingAndParagraph(t *testing.T) {
	doc := Render("# Title\n\nBody text")

	want := []Block{
		{Kind: KindHeading, Level: 1, Text: "Title"},
		{Kind: KindParagraph, Text: "Body text"},
	}
	if diff := cmp.Diff(want, doc.Blocks); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, doc.Errors)
}

func TestRender_LineRules(t *testing.T) {
	content := "## Sub\r\n### Small\n#### Four\n  # indented\n<div>raw html</div>\n\n\n  keep   spacing  "
	doc := Render(content)

	want := []Block{
		{Kind: KindHeading, Level: 2, Text: "Sub"},
		{Kind: KindHeading, Level: 3, Text: "Small"},
		{Kind: KindParagraph, Text: "#### Four"},
		{Kind: KindParagraph, Text: "  # indented"},
		{Kind: KindParagraph, Text: "  keep   spacing  "},
	}
	if diff := cmp.Diff(want, doc.Blocks); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Empty(t *testing.T) {
	doc := Render("")
	assert.NotNil(t, doc.Blocks)
	assert.Empty(t, doc.Blocks)
}

func TestRender_DataTable(t *testing.T) {
	content := `<DataTable headers={["A","B"]} rows={[[{ code: "x" }, { value: "y" }]]} />`
	doc := Render(content)
	require.Len(t, doc.Blocks, 1)
	require.Empty(t, doc.Errors)

	want := &DataTable{
		Headers: []string{"A", "B"},
		Rows:    [][]TableCell{{{Text: "x", Code: true}, {Text: "y"}}},
	}
	assert.Equal(t, KindDataTable, doc.Blocks[0].Kind)
	if diff := cmp.Diff(want, doc.Blocks[0].Table); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_TableCellLabel(t *testing.T) {
	doc := Render(`<DataTable headers={["Model"]} rows={[[{ label: "lunaby-pro" }], ["plain"]]} />`)
	require.Len(t, doc.Blocks, 1)
	rows := doc.Blocks[0].Table.Rows
	assert.Equal(t, TableCell{Text: "lunaby-pro", Code: true}, rows[0][0])
	assert.Equal(t, TableCell{Text: "plain"}, rows[1][0])
}

func TestRender_BrokenComponentIsSkipped(t *testing.T) {
	content := "# Before\n<DataTable headers={[\"A\" rows={[]} />\nAfter"
	doc := Render(content)

	want := []Block{
		{Kind: KindHeading, Level: 1, Text: "Before"},
		{Kind: KindParagraph, Text: "After"},
	}
	if diff := cmp.Diff(want, doc.Blocks); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, 2, doc.Errors[0].Line)
	assert.Equal(t, "DataTable", doc.Errors[0].Component)
	assert.Len(t, doc.ErrorStrings(), 1)
}

func TestRender_MissingAttributeIsSkipped(t *testing.T) {
	doc := Render("<ModelGrid />\ntext")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, KindParagraph, doc.Blocks[0].Kind)
	require.Len(t, doc.Errors, 1)
	assert.ErrorIs(t, doc.Errors[0], errMissingAttr)
}

func TestRender_MultiLineCodeBlock(t *testing.T) {
	content := `Intro
<CodeBlock
  title="Install"
  tabs={[
    { id: "sh", label: "Shell", language: "bash", code: "pip install lunaby" }
  ]}
/>
Outro`
	doc := Render(content)
	require.Empty(t, doc.Errors)
	require.Len(t, doc.Blocks, 3)

	code := doc.Blocks[1].Code
	require.NotNil(t, code)
	assert.Equal(t, "Install", code.Title)
	assert.True(t, code.Single())
	assert.Equal(t, "sh", code.ActiveTab)
	assert.Equal(t, "pip install lunaby", code.Tabs[0].Code)
	assert.Equal(t, "Outro", doc.Blocks[2].Text)
}

func TestRender_CodeBlockDropdown(t *testing.T) {
	content := "<CodeBlock tabs={[{ id: 'py', label: 'Python', language: 'python', code: 'x = 1' }, { id: 'js', label: 'JS', language: 'javascript', code: 'let x = 1' }]} dropdownTabs={[{ id: 'go', label: 'Go', language: 'go', code: 'x := 1' }]} />"
	doc := Render(content)
	require.Len(t, doc.Blocks, 1)

	code := doc.Blocks[0].Code
	assert.False(t, code.Single())
	assert.Equal(t, "py", code.ActiveTab)
	ids := []string{}
	for _, tab := range code.All() {
		ids = append(ids, tab.ID)
	}
	assert.Equal(t, []string{"py", "js", "go"}, ids)
}

func TestRender_ModelGridGradients(t *testing.T) {
	content := `<ModelGrid models={[
  { title: "Pro", description: "Big", gradient: "lunaby-pro" },
  { title: "Mystery", description: "?", gradient: "unknown" },
]} />`
	doc := Render(content)
	require.Empty(t, doc.Errors)
	require.Len(t, doc.Blocks, 1)

	models := doc.Blocks[0].Grid.Models
	require.Len(t, models, 2)
	assert.Equal(t, Gradients["lunaby-pro"], models[0].GradientClass)
	assert.Equal(t, Gradients["lunaby"], models[1].GradientClass)
}

func TestRender_ExpressionsAreNotEvaluated(t *testing.T) {
	doc := Render(`<DataTable headers={fetch("/steal")} rows={[]} />`)
	assert.Empty(t, doc.Blocks)
	require.Len(t, doc.Errors, 1)
}

func TestRender_CommentsInsideExpression(t *testing.T) {
	content := `<CodeBlock
  title="Auth"
  tabs={[
    // don't hardcode keys {like this}
    { id: "sh", label: "Shell", language: "bash", code: "export KEY=x" },
    /* a second tab lands later */
  ]}
/>`
	doc := Render(content)
	require.Empty(t, doc.Errors)
	require.Len(t, doc.Blocks, 1)
	require.NotNil(t, doc.Blocks[0].Code)
	assert.Equal(t, "export KEY=x", doc.Blocks[0].Code.Tabs[0].Code)
}

func TestRender_ErrorNamesComponentOnce(t *testing.T) {
	doc := Render(`<CodeBlock tabs={[{ code: "x }]} />`)
	require.Len(t, doc.Errors, 1)
	msg := doc.Errors[0].Error()
	assert.Equal(t, 1, strings.Count(msg, "CodeBlock"), msg)
	assert.Contains(t, msg, `attribute "tabs"`)
}
