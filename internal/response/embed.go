package response

// Embed is a rich content block attached to a message.
// Reference: https://discord.com/developers/docs/resources/message#embed-object
type Embed struct {
	Title       string       `json:"title,omitempty" yaml:"title,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string       `json:"url,omitempty" yaml:"url,omitempty"`
	Color       int          `json:"color,omitempty" yaml:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty" yaml:"footer,omitempty"`
	Image       *EmbedMedia  `json:"image,omitempty" yaml:"image,omitempty"`
	Thumbnail   *EmbedMedia  `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Author      *EmbedAuthor `json:"author,omitempty" yaml:"author,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type EmbedFooter struct {
	Text    string `json:"text" yaml:"text"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty"`
}

type EmbedMedia struct {
	URL string `json:"url" yaml:"url"`
}

type EmbedAuthor struct {
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Inline bool   `json:"inline,omitempty" yaml:"inline,omitempty"`
}

// clone copies the embed so the caller's pointers and field slice are not shared.
func (e Embed) clone() Embed {
	out := e
	if e.Footer != nil {
		f := *e.Footer
		out.Footer = &f
	}
	if e.Image != nil {
		m := *e.Image
		out.Image = &m
	}
	if e.Thumbnail != nil {
		m := *e.Thumbnail
		out.Thumbnail = &m
	}
	if e.Author != nil {
		a := *e.Author
		out.Author = &a
	}
	if e.Fields != nil {
		out.Fields = append([]EmbedField(nil), e.Fields...)
	}
	return out
}
