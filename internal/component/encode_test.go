package component_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojasmm/rowkit/internal/component"
)

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "button row",
			input: `{"type":1,"components":[{"type":2,"style":1,"custom_id":"a","label":"A","disabled":false}]}`,
		},
		{
			name:  "link button with custom emoji",
			input: `{"type":2,"style":5,"url":"https://example.com","label":"Go","disabled":true,"emoji":{"id":"854260064906117121","name":"blob","animated":true}}`,
		},
		{
			name:  "emoji only button",
			input: `{"type":2,"style":2,"custom_id":"fire","disabled":false,"emoji":{"name":"🔥"}}`,
		},
		{
			name: "select menu",
			input: `{"type":3,"custom_id":"dropdown","placeholder":"Pick one","min_values":1,"max_values":2,"disabled":false,
				"options":[
					{"label":"One","value":"1","default":false},
					{"label":"Two","value":"2","default":true,"description":"second","emoji":{"name":"✌️"}}
				]}`,
		},
		{
			name:  "unknown leaf",
			input: `{"type":99,"custom_id":"future"}`,
		},
		{
			name: "mixed row",
			input: `{"type":1,"components":[
				{"type":2,"style":4,"custom_id":"del","label":"Delete","disabled":false},
				{"type":99,"custom_id":"x"},
				{"type":3,"custom_id":"s","disabled":true,"options":[{"label":"L","value":"V","default":false}]}
			]}`,
		},
		{
			name:  "empty row",
			input: `{"type":1,"components":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := component.Decode(mustParse(t, tt.input))
			require.NoError(t, err)

			out, err := json.Marshal(component.Encode(c))
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestEncode_OmitsAbsentOptionals(t *testing.T) {
	n := component.Encode(component.Button{Style: component.ButtonPrimary, CustomID: strPtr("x")})

	assert.Equal(t, 2, n["type"])
	assert.Equal(t, false, n["disabled"])
	for _, key := range []string{"label", "url", "emoji"} {
		assert.False(t, n.Has(key), "%s should be omitted", key)
	}

	menu := component.Encode(component.NewSelectMenu("m"))
	for _, key := range []string{"placeholder", "min_values", "max_values"} {
		assert.False(t, menu.Has(key), "%s should be omitted", key)
	}
}

func TestEncode_SelectAddsAbsentDefaults(t *testing.T) {
	// Fields absent on input may come back present; nothing else changes.
	c, err := component.Decode(mustParse(t, `{"type":3,"custom_id":"s","options":[{"label":"L","value":"V"}]}`))
	require.NoError(t, err)

	out, err := json.Marshal(component.Encode(c))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":3,"custom_id":"s","disabled":false,"options":[{"label":"L","value":"V","default":false}]}`,
		string(out))
}

func TestEncodeRows(t *testing.T) {
	rows := []component.ActionRow{
		{Components: []component.Leaf{component.NewButton(component.ButtonSuccess, "ok", "OK")}},
		{Components: []component.Leaf{component.NewLinkButton("https://example.com", "Site")}},
	}

	out, err := json.Marshal(component.EncodeRows(rows))
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":1,"components":[{"type":2,"style":3,"custom_id":"ok","label":"OK","disabled":false}]},
		{"type":1,"components":[{"type":2,"style":5,"url":"https://example.com","label":"Site","disabled":false}]}
	]`, string(out))
}

func TestCloneRows_NoAliasing(t *testing.T) {
	label := "before"
	orig := []component.ActionRow{{Components: []component.Leaf{
		component.Button{Style: component.ButtonPrimary, CustomID: strPtr("a"), Label: &label},
		component.NewSelectMenu("s", component.SelectOption{Label: "L", Value: "V"}),
	}}}

	cp := component.CloneRows(orig)
	label = "after"
	orig[0].Components[1].(component.SelectMenu).Options[0].Label = "changed"
	orig[0].Components[0] = component.Unknown{Type: 42}

	b := cp[0].Components[0].(component.Button)
	assert.Equal(t, "before", *b.Label)
	assert.Equal(t, "L", cp[0].Components[1].(component.SelectMenu).Options[0].Label)
}

func TestEncode_NumericEmojiIDBecomesString(t *testing.T) {
	c, err := component.Decode(mustParse(t, `{"type":2,"style":2,"custom_id":"e","disabled":false,"emoji":{"id":123456789}}`))
	require.NoError(t, err)

	emoji, ok := component.Encode(c).Object("emoji")
	require.True(t, ok)
	assert.Equal(t, "123456789", emoji["id"])
}

func TestEncode_TypedNilLeaves(t *testing.T) {
	for _, leaf := range []component.Leaf{
		(*component.Button)(nil),
		(*component.SelectMenu)(nil),
		(*component.Unknown)(nil),
	} {
		assert.NotPanics(t, func() {
			assert.Nil(t, component.Encode(leaf))
			assert.Equal(t, leaf, component.CloneLeaf(leaf))
		})
	}
	assert.Nil(t, component.Encode((*component.ActionRow)(nil)))
}
