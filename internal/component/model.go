// Package component models the interactive components attached to messages:
// action rows and the leaf components they group.
package component

// Kind is the wire-level "type" tag of a component.
type Kind int

const (
	KindActionRow Kind = 1
	KindButton    Kind = 2
	KindSelect    Kind = 3
)

// MaxRowComponents is how many leaf components one action row can hold.
const MaxRowComponents = 5

// Component is any node of the component tree.
type Component interface {
	Kind() Kind
	component()
}

// Leaf is a component that cannot contain other components.
// ActionRow does not implement it, so rows cannot be nested.
type Leaf interface {
	Component
	leaf()
}

// ActionRow groups leaf components for display.
type ActionRow struct {
	Components []Leaf
}

func (ActionRow) Kind() Kind  { return KindActionRow }
func (ActionRow) component() {}

// ButtonStyle selects the colour and behaviour of a button.
type ButtonStyle int

const (
	ButtonPrimary   ButtonStyle = 1
	ButtonSecondary ButtonStyle = 2
	ButtonSuccess   ButtonStyle = 3
	ButtonDanger    ButtonStyle = 4
	ButtonLink      ButtonStyle = 5
)

func (s ButtonStyle) Valid() bool {
	return s >= ButtonPrimary && s <= ButtonLink
}

// Button is a clickable component. Link buttons carry a URL instead of a
// custom ID. A label or an emoji should be set; the API does not enforce it.
type Button struct {
	Style    ButtonStyle
	CustomID *string
	URL      *string
	Label    *string
	Disabled bool
	Emoji    *Emoji
}

func (Button) Kind() Kind  { return KindButton }
func (Button) component() {}
func (Button) leaf()      {}

// SelectMenu is a dropdown of options. MinValues and MaxValues default to 1
// on the API side when nil.
type SelectMenu struct {
	CustomID    string
	Options     []SelectOption
	Placeholder *string
	MinValues   *int
	MaxValues   *int
	Disabled    bool
}

func (SelectMenu) Kind() Kind  { return KindSelect }
func (SelectMenu) component() {}
func (SelectMenu) leaf()      {}

// SelectOption is one entry of a SelectMenu. Options are not required to be
// unique within a menu.
type SelectOption struct {
	Label       string
	Value       string
	Description *string
	Default     bool
	Emoji       *Emoji
}

// Unknown stands in for component types this package does not model yet.
// Only the custom ID survives a round trip.
type Unknown struct {
	Type     int
	CustomID *string
}

func (u Unknown) Kind() Kind { return Kind(u.Type) }
func (Unknown) component()   {}
func (Unknown) leaf()        {}

// Emoji references either a custom emoji by ID or a unicode emoji by name.
type Emoji struct {
	ID       uint64
	Name     string
	Animated bool
}

// IsCustom reports whether the emoji is a guild emoji rather than unicode.
func (e Emoji) IsCustom() bool { return e.ID != 0 }

func NewButton(style ButtonStyle, customID, label string) Button {
	return Button{Style: style, CustomID: &customID, Label: &label}
}

func NewLinkButton(url, label string) Button {
	return Button{Style: ButtonLink, URL: &url, Label: &label}
}

func NewSelectMenu(customID string, options ...SelectOption) SelectMenu {
	return SelectMenu{CustomID: customID, Options: options}
}

// CustomIDOf returns the custom ID of a leaf, if it has one.
func CustomIDOf(l Leaf) (string, bool) {
	switch c := l.(type) {
	case Button:
		if c.CustomID != nil {
			return *c.CustomID, true
		}
	case *Button:
		if c != nil && c.CustomID != nil {
			return *c.CustomID, true
		}
	case SelectMenu:
		return c.CustomID, true
	case *SelectMenu:
		if c != nil {
			return c.CustomID, true
		}
	case Unknown:
		if c.CustomID != nil {
			return *c.CustomID, true
		}
	case *Unknown:
		if c != nil && c.CustomID != nil {
			return *c.CustomID, true
		}
	}
	return "", false
}
