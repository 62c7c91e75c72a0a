package component

import (
	"fmt"

	"github.com/lojasmm/rowkit/internal/wire"
)

// Decode converts a wire node into a typed component. A nil node decodes to
// nil without error. Rows are decoded one level deep; a row inside a row is
// rejected and no partial row is returned.
func Decode(n wire.Node) (Component, error) {
	if n == nil {
		return nil, nil
	}

	tag, ok := n.Tag()
	if !ok {
		return nil, malformed("type", "type does not resolve to a known component kind")
	}

	if Kind(tag) == KindActionRow {
		row, err := decodeRow(n)
		if err != nil {
			return nil, err
		}
		return row, nil
	}

	leaf, err := decodeLeaf(tag, n)
	if err != nil {
		return nil, err
	}
	return leaf, nil
}

// DecodeRows decodes the top-level "components" array of a message, where
// every element must be an action row.
func DecodeRows(nodes []wire.Node) ([]ActionRow, error) {
	rows := make([]ActionRow, 0, len(nodes))
	for i, n := range nodes {
		tag, ok := n.Tag()
		if !ok {
			return nil, fmt.Errorf("row %d: %w", i, malformed("type", "type does not resolve to a known component kind"))
		}
		if Kind(tag) != KindActionRow {
			return nil, fmt.Errorf("row %d: %w", i, malformed("type", fmt.Sprintf("top-level component must be an action row, got type %d", tag)))
		}
		row, err := decodeRow(n)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeRow(n wire.Node) (ActionRow, error) {
	children, ok := n.Children("components")
	if !ok {
		return ActionRow{}, malformed("components", "components must be an array of objects")
	}

	row := ActionRow{Components: make([]Leaf, 0, len(children))}
	for i, child := range children {
		tag, ok := child.Tag()
		if !ok {
			return ActionRow{}, fmt.Errorf("component %d: %w", i, malformed("type", "type does not resolve to a known component kind"))
		}
		if Kind(tag) == KindActionRow {
			return ActionRow{}, fmt.Errorf("component %d: %w", i, ErrInvalidNesting)
		}
		leaf, err := decodeLeaf(tag, child)
		if err != nil {
			return ActionRow{}, fmt.Errorf("component %d: %w", i, err)
		}
		row.Components = append(row.Components, leaf)
	}
	return row, nil
}

func decodeLeaf(tag int, n wire.Node) (Leaf, error) {
	switch Kind(tag) {
	case KindButton:
		b, err := decodeButton(n)
		if err != nil {
			return nil, err
		}
		return b, nil
	case KindSelect:
		menu, err := decodeSelectShell(n)
		if err != nil {
			return nil, err
		}
		if err := hydrateSelect(&menu, n); err != nil {
			return nil, err
		}
		return menu, nil
	default:
		return Unknown{Type: tag, CustomID: n.StringPtr("custom_id")}, nil
	}
}

func decodeButton(n wire.Node) (Button, error) {
	style, ok := n.Int("style")
	if !ok || !ButtonStyle(style).Valid() {
		return Button{}, malformed("style", "button style must be between 1 and 5")
	}

	// The API always sends disabled for buttons.
	disabled, ok := n.Bool("disabled")
	if !ok {
		return Button{}, malformed("disabled", "button is missing disabled")
	}

	b := Button{
		Style:    ButtonStyle(style),
		CustomID: n.StringPtr("custom_id"),
		URL:      n.StringPtr("url"),
		Label:    n.StringPtr("label"),
		Disabled: disabled,
	}

	if b.Style == ButtonLink {
		if b.URL == nil {
			return Button{}, malformed("url", "link button is missing url")
		}
	} else if b.CustomID == nil {
		return Button{}, malformed("custom_id", "button is missing custom_id")
	}

	if n.Has("emoji") {
		e, err := decodeEmoji(n)
		if err != nil {
			return Button{}, err
		}
		b.Emoji = e
	}
	return b, nil
}

// decodeSelectShell builds a menu with only its identity set.
func decodeSelectShell(n wire.Node) (SelectMenu, error) {
	customID, ok := n.String("custom_id")
	if !ok {
		return SelectMenu{}, malformed("custom_id", "select menu is missing custom_id")
	}
	return SelectMenu{CustomID: customID}, nil
}

// hydrateSelect fills in options and the optional settings of a menu shell.
func hydrateSelect(menu *SelectMenu, n wire.Node) error {
	options, ok := n.Children("options")
	if !ok {
		return malformed("options", "options must be an array of objects")
	}

	menu.Options = make([]SelectOption, 0, len(options))
	for i, o := range options {
		opt, err := decodeOption(o)
		if err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
		menu.Options = append(menu.Options, opt)
	}

	menu.Placeholder = n.StringPtr("placeholder")
	menu.MinValues = n.IntPtr("min_values")
	menu.MaxValues = n.IntPtr("max_values")
	menu.Disabled, _ = n.Bool("disabled")
	return nil
}

func decodeOption(n wire.Node) (SelectOption, error) {
	label, ok := n.String("label")
	if !ok {
		return SelectOption{}, malformed("label", "select option is missing label")
	}
	value, ok := n.String("value")
	if !ok {
		return SelectOption{}, malformed("value", "select option is missing value")
	}

	opt := SelectOption{
		Label:       label,
		Value:       value,
		Description: n.StringPtr("description"),
	}
	opt.Default, _ = n.Bool("default")

	if n.Has("emoji") {
		e, err := decodeEmoji(n)
		if err != nil {
			return SelectOption{}, err
		}
		opt.Emoji = e
	}
	return opt, nil
}

func decodeEmoji(parent wire.Node) (*Emoji, error) {
	if parent["emoji"] == nil {
		return nil, nil
	}
	n, ok := parent.Object("emoji")
	if !ok {
		return nil, malformed("emoji", "emoji must be an object")
	}

	var e Emoji
	if n.Has("id") && n["id"] != nil {
		id, ok := n.Snowflake("id")
		if !ok {
			return nil, malformed("emoji.id", "emoji id is not a snowflake")
		}
		e.ID = id
	}
	e.Name, _ = n.String("name")
	e.Animated, _ = n.Bool("animated")

	if e.ID == 0 && e.Name == "" {
		return nil, malformed("emoji", "emoji needs an id or a name")
	}
	return &e, nil
}
