package component

// CloneRows returns a deep copy of rows. Nothing in the copy aliases the
// original slices or pointed-to fields.
func CloneRows(rows []ActionRow) []ActionRow {
	if rows == nil {
		return nil
	}
	out := make([]ActionRow, len(rows))
	for i, r := range rows {
		out[i] = CloneRow(r)
	}
	return out
}

func CloneRow(r ActionRow) ActionRow {
	leaves := make([]Leaf, len(r.Components))
	for i, l := range r.Components {
		leaves[i] = CloneLeaf(l)
	}
	return ActionRow{Components: leaves}
}

// CloneLeaf deep-copies a leaf. Pointer leaves come back as values; nil
// pointers are returned unchanged.
func CloneLeaf(l Leaf) Leaf {
	switch v := l.(type) {
	case Button:
		return cloneButton(v)
	case *Button:
		if v == nil {
			return l
		}
		return cloneButton(*v)
	case SelectMenu:
		return cloneSelect(v)
	case *SelectMenu:
		if v == nil {
			return l
		}
		return cloneSelect(*v)
	case Unknown:
		return Unknown{Type: v.Type, CustomID: cloneString(v.CustomID)}
	case *Unknown:
		if v == nil {
			return l
		}
		return Unknown{Type: v.Type, CustomID: cloneString(v.CustomID)}
	default:
		return l
	}
}

func cloneButton(b Button) Button {
	return Button{
		Style:    b.Style,
		CustomID: cloneString(b.CustomID),
		URL:      cloneString(b.URL),
		Label:    cloneString(b.Label),
		Disabled: b.Disabled,
		Emoji:    cloneEmoji(b.Emoji),
	}
}

func cloneSelect(m SelectMenu) SelectMenu {
	out := SelectMenu{
		CustomID:    m.CustomID,
		Placeholder: cloneString(m.Placeholder),
		MinValues:   cloneInt(m.MinValues),
		MaxValues:   cloneInt(m.MaxValues),
		Disabled:    m.Disabled,
	}
	if m.Options != nil {
		out.Options = make([]SelectOption, len(m.Options))
		for i, o := range m.Options {
			out.Options[i] = SelectOption{
				Label:       o.Label,
				Value:       o.Value,
				Description: cloneString(o.Description),
				Default:     o.Default,
				Emoji:       cloneEmoji(o.Emoji),
			}
		}
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func cloneEmoji(e *Emoji) *Emoji {
	if e == nil {
		return nil
	}
	v := *e
	return &v
}
