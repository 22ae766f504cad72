package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteral_Tabs(t *testing.T) {
	src := `[
		// first tab
		{ id: 'py', label: "Python", language: "python", code: ` + "`print(\"hi\")\nprint('again')`" + ` },
		{ "id": "js", label: 'JS', },
	]`

	v, err := ParseLiteral(src)
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind)
	require.Len(t, v.Arr, 2)

	first := v.Arr[0]
	assert.Equal(t, KindObject, first.Kind)
	assert.Equal(t, []string{"id", "label", "language", "code"}, first.Keys)
	assert.Equal(t, "py", first.Get("id").Text())
	assert.Equal(t, "print(\"hi\")\nprint('again')", first.Get("code").Text())
	assert.Equal(t, "JS", v.Arr[1].Get("label").Text())
	assert.Equal(t, KindNull, v.Arr[1].Get("missing").Kind)
}

func TestParseLiteral_Scalars(t *testing.T) {
	v, err := ParseLiteral(`{a: 1, 'b': -2.5e1, "c": true, d: null, e: undefined, f: "tab\tand é"}`)
	require.NoError(t, err)

	assert.Equal(t, "1", v.Get("a").Text())
	assert.Equal(t, float64(-25), v.Get("b").Num)
	assert.True(t, v.Get("c").Bool)
	assert.Equal(t, KindNull, v.Get("d").Kind)
	assert.Equal(t, KindNull, v.Get("e").Kind)
	assert.Equal(t, "tab\tand é", v.Get("f").Text())
	assert.Equal(t, "", v.Get("a").Get("nested").Text())
}

func TestParseLiteral_Rejects(t *testing.T) {
	cases := map[string]string{
		"call":           `alert(1)`,
		"identifier":     `[window]`,
		"unterminated":   `[1, 2`,
		"interpolation":  "`${secret}`",
		"trailing input": `{a: 1} {b: 2}`,
		"missing colon":  `{a 1}`,
		"open string":    `"abc`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLiteral(src)
			require.Error(t, err)
			var se *SyntaxError
			assert.True(t, errors.As(err, &se))
		})
	}
}

func TestParseLiteral_DepthLimit(t *testing.T) {
	deep := ""
	for i := 0; i < maxLiteralDepth+2; i++ {
		deep += "["
	}
	_, err := ParseLiteral(deep)
	assert.Error(t, err)
}
