package response

import (
	"fmt"
	"unicode/utf8"

	"github.com/lojasmm/rowkit/internal/component"
	"github.com/lojasmm/rowkit/internal/wire"
)

// FlagEphemeral is the message flag that hides a response from everyone but
// the invoking user.
const FlagEphemeral = 1 << 6

// Payload is the "data" object of an interaction response.
type Payload struct {
	Content         string           `json:"content,omitempty"`
	TTS             bool             `json:"tts,omitempty"`
	Embeds          []Embed          `json:"embeds,omitempty"`
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
	Components      []wire.Node      `json:"components,omitempty"`
	Flags           int              `json:"flags,omitempty"`
}

// Build checks the limits that cannot be enforced per call and encodes the
// builder's state. Drafts seeded with too many rows, invalid leaves or
// overlong content are caught here.
func (b *Builder) Build() (Payload, error) {
	if len(b.rows) > MaxActionRows {
		return Payload{}, &ValidationError{
			Field: "components",
			Msg:   fmt.Sprintf("%d action rows exceed the limit of %d", len(b.rows), MaxActionRows),
		}
	}
	for i, r := range b.rows {
		if n := len(r.Components); n == 0 || n > component.MaxRowComponents {
			return Payload{}, &ValidationError{
				Field: fmt.Sprintf("components[%d]", i),
				Msg:   fmt.Sprintf("action row holds %d components, want 1 to %d", n, component.MaxRowComponents),
			}
		}
		if err := checkLeaves(fmt.Sprintf("components[%d]", i), r.Components); err != nil {
			return Payload{}, err
		}
	}
	if n := utf8.RuneCountInString(b.content); n > MaxContentLength {
		return Payload{}, &ValidationError{
			Field: "content",
			Msg:   fmt.Sprintf("content has %d characters, limit is %d", n, MaxContentLength),
		}
	}

	p := Payload{
		Content:         b.content,
		TTS:             b.tts,
		Embeds:          b.Embeds(),
		AllowedMentions: allowedMentions(b.mentions),
	}
	if len(p.Embeds) == 0 {
		p.Embeds = nil
	}
	if len(b.rows) > 0 {
		p.Components = component.EncodeRows(b.rows)
	}
	if b.ephemeral {
		p.Flags |= FlagEphemeral
	}
	return p, nil
}
