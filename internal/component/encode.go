package component

import (
	"strconv"

	"github.com/lojasmm/rowkit/internal/wire"
)

// Encode projects a component back to its wire form. Absent optional fields
// are left out rather than sent as null. Encode does not validate.
//
// Custom emoji IDs are always written as decimal strings, the API's snowflake
// form, even when the decoded node carried the ID as a JSON number.
func Encode(c Component) wire.Node {
	switch v := c.(type) {
	case ActionRow:
		return encodeRow(v)
	case *ActionRow:
		if v == nil {
			return nil
		}
		return encodeRow(*v)
	case Leaf:
		return encodeLeaf(v)
	default:
		return nil
	}
}

// EncodeRows encodes a message's rows for its "components" field.
func EncodeRows(rows []ActionRow) []wire.Node {
	out := make([]wire.Node, len(rows))
	for i, r := range rows {
		out[i] = encodeRow(r)
	}
	return out
}

func encodeRow(r ActionRow) wire.Node {
	children := make([]wire.Node, len(r.Components))
	for i, l := range r.Components {
		children[i] = encodeLeaf(l)
	}
	return wire.Node{
		"type":       int(KindActionRow),
		"components": children,
	}
}

// encodeLeaf returns nil for nil leaves, including typed-nil pointers.
func encodeLeaf(l Leaf) wire.Node {
	switch v := l.(type) {
	case *Button:
		if v == nil {
			return nil
		}
		return encodeButton(*v)
	case *SelectMenu:
		if v == nil {
			return nil
		}
		return encodeSelect(*v)
	case *Unknown:
		if v == nil {
			return nil
		}
		return encodeUnknown(*v)
	case Button:
		return encodeButton(v)
	case SelectMenu:
		return encodeSelect(v)
	case Unknown:
		return encodeUnknown(v)
	default:
		return nil
	}
}

func encodeButton(b Button) wire.Node {
	n := wire.Node{
		"type":     int(KindButton),
		"style":    int(b.Style),
		"disabled": b.Disabled,
	}
	putString(n, "custom_id", b.CustomID)
	putString(n, "url", b.URL)
	putString(n, "label", b.Label)
	if b.Emoji != nil {
		n["emoji"] = encodeEmoji(*b.Emoji)
	}
	return n
}

func encodeSelect(m SelectMenu) wire.Node {
	options := make([]wire.Node, len(m.Options))
	for i, o := range m.Options {
		options[i] = encodeOption(o)
	}

	n := wire.Node{
		"type":      int(KindSelect),
		"custom_id": m.CustomID,
		"options":   options,
		"disabled":  m.Disabled,
	}
	putString(n, "placeholder", m.Placeholder)
	if m.MinValues != nil {
		n["min_values"] = *m.MinValues
	}
	if m.MaxValues != nil {
		n["max_values"] = *m.MaxValues
	}
	return n
}

func encodeOption(o SelectOption) wire.Node {
	n := wire.Node{
		"label":   o.Label,
		"value":   o.Value,
		"default": o.Default,
	}
	putString(n, "description", o.Description)
	if o.Emoji != nil {
		n["emoji"] = encodeEmoji(*o.Emoji)
	}
	return n
}

func encodeUnknown(u Unknown) wire.Node {
	n := wire.Node{"type": u.Type}
	putString(n, "custom_id", u.CustomID)
	return n
}

func encodeEmoji(e Emoji) wire.Node {
	n := wire.Node{}
	if e.ID != 0 {
		n["id"] = strconv.FormatUint(e.ID, 10)
	}
	if e.Name != "" {
		n["name"] = e.Name
	}
	if e.Animated {
		n["animated"] = true
	}
	return n
}

func putString(n wire.Node, key string, v *string) {
	if v != nil {
		n[key] = *v
	}
}
