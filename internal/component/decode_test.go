package component_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojasmm/rowkit/internal/component"
	"github.com/lojasmm/rowkit/internal/wire"
)

func mustParse(t *testing.T, s string) wire.Node {
	t.Helper()
	n, err := wire.Parse([]byte(s))
	require.NoError(t, err)
	return n
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestDecode_NilNode(t *testing.T) {
	c, err := component.Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDecode_MissingType(t *testing.T) {
	_, err := component.Decode(mustParse(t, `{"components":[]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, component.ErrMalformedPayload)
	assert.False(t, errors.Is(err, component.ErrInvalidNesting))

	var cerr *component.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "type", cerr.Field)
}

func TestDecode_NestedRowRejected(t *testing.T) {
	n := mustParse(t, `{"type":1,"components":[{"type":1,"components":[]}]}`)

	c, err := component.Decode(n)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, component.ErrInvalidNesting)
}

func TestDecode_NestedRowAfterValidSibling(t *testing.T) {
	n := mustParse(t, `{"type":1,"components":[
		{"type":2,"style":1,"custom_id":"ok","disabled":false},
		{"type":1,"components":[]}
	]}`)

	c, err := component.Decode(n)
	assert.Nil(t, c, "no partial row on failure")
	assert.ErrorIs(t, err, component.ErrInvalidNesting)
}

func TestDecode_UnknownSiblingKept(t *testing.T) {
	n := mustParse(t, `{"type":1,"components":[
		{"type":2,"style":1,"custom_id":"a","label":"A","disabled":false},
		{"type":99,"custom_id":"future"},
		{"type":99}
	]}`)

	c, err := component.Decode(n)
	require.NoError(t, err)

	row, ok := c.(component.ActionRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3)

	want := []component.Leaf{
		component.Button{Style: component.ButtonPrimary, CustomID: strPtr("a"), Label: strPtr("A")},
		component.Unknown{Type: 99, CustomID: strPtr("future")},
		component.Unknown{Type: 99},
	}
	if diff := cmp.Diff(want, row.Components); diff != "" {
		t.Errorf("row components mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, component.Kind(99), row.Components[1].Kind())
}

func TestDecode_MissingComponentsIsEmptyRow(t *testing.T) {
	c, err := component.Decode(mustParse(t, `{"type":1}`))
	require.NoError(t, err)
	assert.Equal(t, component.ActionRow{Components: []component.Leaf{}}, c)
}

func TestDecode_ButtonRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"missing disabled", `{"type":2,"style":1,"custom_id":"x"}`, "disabled"},
		{"missing style", `{"type":2,"custom_id":"x","disabled":false}`, "style"},
		{"style out of range", `{"type":2,"style":9,"custom_id":"x","disabled":false}`, "style"},
		{"missing custom_id", `{"type":2,"style":2,"disabled":false}`, "custom_id"},
		{"link without url", `{"type":2,"style":5,"disabled":false}`, "url"},
		{"bad emoji", `{"type":2,"style":1,"custom_id":"x","disabled":false,"emoji":"nope"}`, "emoji"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := component.Decode(mustParse(t, tt.input))
			require.ErrorIs(t, err, component.ErrMalformedPayload)

			var cerr *component.Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

func TestDecode_MalformedChildAbortsRow(t *testing.T) {
	n := mustParse(t, `{"type":1,"components":[
		{"type":2,"style":1,"custom_id":"a","disabled":false},
		{"type":2,"style":1,"custom_id":"b"}
	]}`)

	c, err := component.Decode(n)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, component.ErrMalformedPayload)
	assert.Contains(t, err.Error(), "component 1")
}

func TestDecode_LinkButton(t *testing.T) {
	c, err := component.Decode(mustParse(t, `{"type":2,"style":5,"url":"https://example.com","label":"Docs","disabled":true}`))
	require.NoError(t, err)

	b, ok := c.(component.Button)
	require.True(t, ok)
	assert.Equal(t, component.ButtonLink, b.Style)
	assert.Nil(t, b.CustomID)
	require.NotNil(t, b.URL)
	assert.Equal(t, "https://example.com", *b.URL)
	assert.True(t, b.Disabled)
}

func TestDecode_SelectMenu(t *testing.T) {
	n := mustParse(t, `{"type":3,"custom_id":"dropdown","placeholder":"Pick","min_values":1,"max_values":2,
		"options":[
			{"label":"Label, no description","value":"label_no_desc","default":false},
			{"label":"With emoji","value":"emoji","default":true,"description":"desc","emoji":{"id":"854260064906117121"}}
		]}`)

	c, err := component.Decode(n)
	require.NoError(t, err)

	want := component.SelectMenu{
		CustomID:    "dropdown",
		Placeholder: strPtr("Pick"),
		MinValues:   intPtr(1),
		MaxValues:   intPtr(2),
		Options: []component.SelectOption{
			{Label: "Label, no description", Value: "label_no_desc"},
			{Label: "With emoji", Value: "emoji", Default: true, Description: strPtr("desc"), Emoji: &component.Emoji{ID: 854260064906117121}},
		},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("select mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_SelectOptionMissingValue(t *testing.T) {
	_, err := component.Decode(mustParse(t, `{"type":3,"custom_id":"s","options":[{"label":"x"}]}`))
	assert.ErrorIs(t, err, component.ErrMalformedPayload)
}

func TestDecodeRows(t *testing.T) {
	nodes, err := wire.ParseList([]byte(`[
		{"type":1,"components":[{"type":2,"style":3,"custom_id":"yes","label":"Yes","disabled":false}]},
		{"type":1,"components":[{"type":2,"style":4,"custom_id":"no","label":"No","disabled":false}]}
	]`))
	require.NoError(t, err)

	rows, err := component.DecodeRows(nodes)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	id, ok := component.CustomIDOf(rows[1].Components[0])
	assert.True(t, ok)
	assert.Equal(t, "no", id)
}

func TestDecodeRows_LeafAtTopLevel(t *testing.T) {
	nodes, err := wire.ParseList([]byte(`[{"type":2,"style":1,"custom_id":"x","disabled":false}]`))
	require.NoError(t, err)

	_, err = component.DecodeRows(nodes)
	assert.ErrorIs(t, err, component.ErrMalformedPayload)
}

func TestDecode_YAMLStyleNumbers(t *testing.T) {
	// yaml.v3 hands back ints and plain maps rather than float64 and Node.
	n := wire.Node{
		"type": 1,
		"components": []any{
			map[string]any{"type": 2, "style": 2, "custom_id": "y", "disabled": false, "emoji": map[string]any{"name": "🔥"}},
		},
	}

	c, err := component.Decode(n)
	require.NoError(t, err)
	row := c.(component.ActionRow)
	b := row.Components[0].(component.Button)
	require.NotNil(t, b.Emoji)
	assert.Equal(t, "🔥", b.Emoji.Name)
	assert.False(t, b.Emoji.IsCustom())
}
