// Package response assembles outgoing interaction responses and checks the
// API's length and capacity limits as each field is set.
package response

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/lojasmm/rowkit/internal/component"
)

const (
	MaxContentLength = 2000
	MaxActionRows    = 5
)

// Draft is an outgoing message definition a response can be seeded from.
type Draft struct {
	Content    string
	Embeds     []Embed
	Components []component.ActionRow
	Mentions   []Mention
}

// Builder accumulates one interaction response. It is owned by a single
// request handler and must not be shared between goroutines; Clear lets the
// same handler reuse it.
type Builder struct {
	content   string
	embeds    []Embed
	rows      []component.ActionRow
	mentions  []Mention
	tts       bool
	ephemeral bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// NewBuilderFromDraft seeds a builder from d. Content, rows and mentions are
// deep-copied, so later changes on either side stay independent. Only the
// first embed of the draft is taken.
func NewBuilderFromDraft(d Draft) *Builder {
	b := &Builder{
		content:  d.Content,
		rows:     component.CloneRows(d.Components),
		mentions: slices.Clone(d.Mentions),
	}
	if len(d.Embeds) > 0 {
		b.embeds = []Embed{d.Embeds[0].clone()}
	}
	return b
}

// WithContent replaces the message text. Content longer than 2000
// characters is rejected.
func (b *Builder) WithContent(content string) (*Builder, error) {
	if n := utf8.RuneCountInString(content); n > MaxContentLength {
		return b, &ValidationError{
			Field: "content",
			Msg:   fmt.Sprintf("length %d exceeds %d characters", n, MaxContentLength),
		}
	}
	b.content = content
	return b, nil
}

func (b *Builder) AddEmbed(e Embed) *Builder {
	b.embeds = append(b.embeds, e.clone())
	return b
}

func (b *Builder) AddEmbeds(embeds ...Embed) *Builder {
	for _, e := range embeds {
		b.embeds = append(b.embeds, e.clone())
	}
	return b
}

// WithComponents wraps the given leaves in a new action row and appends it.
// A row must hold between 1 and 5 leaves, and a response at most 5 rows.
func (b *Builder) WithComponents(leaves ...component.Leaf) (*Builder, error) {
	switch {
	case len(leaves) == 0:
		return b, &ValidationError{Field: "components", Msg: "an action row needs at least one component"}
	case len(leaves) > component.MaxRowComponents:
		return b, &ValidationError{
			Field: "components",
			Msg:   fmt.Sprintf("cannot add more than %d components per action row, got %d", component.MaxRowComponents, len(leaves)),
		}
	case len(b.rows) >= MaxActionRows:
		return b, &ValidationError{
			Field: "components",
			Msg:   fmt.Sprintf("cannot add more than %d action rows", MaxActionRows),
		}
	}
	if err := checkLeaves("components", leaves); err != nil {
		return b, err
	}

	row := component.CloneRow(component.ActionRow{Components: leaves})
	b.rows = append(b.rows, row)
	return b, nil
}

// checkLeaves rejects nil leaves, typed-nil pointers and unknown leaves
// carrying the action row tag, none of which can be sent inside a row.
func checkLeaves(field string, leaves []component.Leaf) *ValidationError {
	for i, l := range leaves {
		var bad string
		switch v := l.(type) {
		case nil:
			bad = "component is nil"
		case *component.Button:
			if v == nil {
				bad = "component is a nil *Button"
			}
		case *component.SelectMenu:
			if v == nil {
				bad = "component is a nil *SelectMenu"
			}
		case *component.Unknown:
			if v == nil {
				bad = "component is a nil *Unknown"
			} else if v.Type == int(component.KindActionRow) {
				bad = "action rows cannot be nested"
			}
		case component.Unknown:
			if v.Type == int(component.KindActionRow) {
				bad = "action rows cannot be nested"
			}
		}
		if bad != "" {
			return &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Msg: bad}
		}
	}
	return nil
}

func (b *Builder) AddMention(m Mention) *Builder {
	b.mentions = append(b.mentions, m)
	return b
}

func (b *Builder) AddMentions(mentions ...Mention) *Builder {
	b.mentions = append(b.mentions, mentions...)
	return b
}

func (b *Builder) WithTTS(tts bool) *Builder {
	b.tts = tts
	return b
}

// AsEphemeral makes the response visible only to the user who triggered it.
func (b *Builder) AsEphemeral(ephemeral bool) *Builder {
	b.ephemeral = ephemeral
	return b
}

// Clear resets the builder to its empty state so it can be used again.
func (b *Builder) Clear() {
	b.content = ""
	b.embeds = nil
	b.rows = nil
	b.mentions = nil
	b.tts = false
	b.ephemeral = false
}

func (b *Builder) Content() string { return b.content }

// Embeds returns a copy; changing it does not affect the builder.
func (b *Builder) Embeds() []Embed {
	out := make([]Embed, len(b.embeds))
	for i, e := range b.embeds {
		out[i] = e.clone()
	}
	return out
}

// Components returns a deep copy of the action rows.
func (b *Builder) Components() []component.ActionRow {
	rows := component.CloneRows(b.rows)
	if rows == nil {
		rows = []component.ActionRow{}
	}
	return rows
}

func (b *Builder) Mentions() []Mention {
	out := make([]Mention, len(b.mentions))
	copy(out, b.mentions)
	return out
}

func (b *Builder) IsTTS() bool       { return b.tts }
func (b *Builder) IsEphemeral() bool { return b.ephemeral }
