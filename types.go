package embedbuilder

import "unicode/utf8"

// Embed is a finished embed document. Its JSON encoding matches the
// platform's embed object.
//
// Embeds returned by Builder.Build share no memory with the builder and may
// be handed to an API client as-is. Embeds obtained elsewhere (for example
// decoded from a fetched message before editing) can be checked with
// Validate.
type Embed struct {
	Title       string  `json:"title,omitempty"`
	Type        string  `json:"type,omitempty"`
	Description string  `json:"description,omitempty"`
	URL         string  `json:"url,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
	Color       *int    `json:"color,omitempty"`
	Footer      *Footer `json:"footer,omitempty"`
	Image       *Media  `json:"image,omitempty"`
	Thumbnail   *Media  `json:"thumbnail,omitempty"`
	Author      *Author `json:"author,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
}

// Field is a name/value pair displayed within an embed.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Footer is the footer of an embed.
type Footer struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// Author is the author block of an embed.
type Author struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

// Media is an image or thumbnail. URL is either an http(s) URL or an
// attachment:// reference.
type Media struct {
	URL string `json:"url"`
}

// Length returns the number of characters counted against
// EmbedLengthLimit.
func (e Embed) Length() int {
	n := utf8.RuneCountInString(e.Title) + utf8.RuneCountInString(e.Description)
	for _, f := range e.Fields {
		n += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	if e.Footer != nil {
		n += utf8.RuneCountInString(e.Footer.Text)
	}
	if e.Author != nil {
		n += utf8.RuneCountInString(e.Author.Name)
	}
	return n
}

// clone returns a deep copy of e.
func (e Embed) clone() Embed {
	out := e
	if e.Color != nil {
		c := *e.Color
		out.Color = &c
	}
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
		out.Fields = append([]Field(nil), e.Fields...)
	}
	return out
}
