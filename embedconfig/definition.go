package embedconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jdziat/embedbuilder"
)

// Errors reported for malformed definitions. Violations of the platform
// limits are reported as *embedbuilder.ValidationError instead.
var (
	ErrEmptyDocument     = errors.New("embedconfig: document is empty")
	ErrNoEmbeds          = errors.New("embedconfig: document defines no embeds")
	ErrImageSource       = errors.New("embedconfig: image must set exactly one of url or attachment")
	ErrInvalidColor      = errors.New("embedconfig: invalid color")
	ErrMultipleDocuments = errors.New("embedconfig: file holds more than one YAML document; use an embeds list")
)

// File is a decoded document: the embeds of one message, in order.
type File struct {
	Embeds []Definition `yaml:"embeds"`
}

// Definition describes one embed.
type Definition struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	URL         string  `yaml:"url"`
	Color       *Color  `yaml:"color"`
	Timestamp   string  `yaml:"timestamp"`
	Footer      *Footer `yaml:"footer"`
	Author      *Author `yaml:"author"`
	Image       *Image  `yaml:"image"`
	Thumbnail   *Image  `yaml:"thumbnail"`
	Fields      []Field `yaml:"fields"`
}

// Field describes one embed field.
type Field struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Inline bool   `yaml:"inline"`
}

// Footer describes an embed footer.
type Footer struct {
	Text string `yaml:"text"`
	Icon *Image `yaml:"icon"`
}

// Author describes an embed author.
type Author struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon *Image `yaml:"icon"`
}

// Image is an image reference. Exactly one of URL and Attachment must be set.
type Image struct {
	URL        string `yaml:"url"`
	Attachment string `yaml:"attachment"`
}

// Color is an embed color. In YAML it may be an integer or a string in
// "#RRGGBB" or "0xRRGGBB" form. Note that an unquoted # starts a YAML
// comment.
type Color uint32

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidColor, value.Line)
	}
	v, err := ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("%w: line %d", err, value.Line)
	}
	*c = Color(v)
	return nil
}

// ParseColor parses a color written as a decimal integer, "#RRGGBB" or
// "0xRRGGBB". Range checks are left to the builder.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(s, "#"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}

	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	return uint32(v), nil
}

// Source converts the reference into a validated image source.
func (img Image) Source() (embedbuilder.ImageSource, error) {
	switch {
	case img.URL != "" && img.Attachment == "":
		return embedbuilder.ImageURL(img.URL)
	case img.Attachment != "" && img.URL == "":
		return embedbuilder.ImageAttachment(img.Attachment)
	default:
		return embedbuilder.ImageSource{}, ErrImageSource
	}
}

func imageSource(path string, img *Image) (embedbuilder.ImageSource, error) {
	if img == nil {
		return embedbuilder.ImageSource{}, nil
	}
	source, err := img.Source()
	if err != nil {
		return embedbuilder.ImageSource{}, fmt.Errorf("%s: %w", path, err)
	}
	return source, nil
}

// Build assembles the embed with embedbuilder, stopping at the first
// invalid value.
func (d Definition) Build() (embedbuilder.Embed, error) {
	b := embedbuilder.New()

	var steps []func() error
	if d.Title != "" {
		steps = append(steps, func() error { return b.Title(d.Title) })
	}
	if d.Description != "" {
		steps = append(steps, func() error { return b.Description(d.Description) })
	}
	if d.URL != "" {
		steps = append(steps, func() error { return b.URL(d.URL) })
	}
	if d.Color != nil {
		steps = append(steps, func() error { return b.Color(uint32(*d.Color)) })
	}
	if d.Timestamp != "" {
		steps = append(steps, func() error { return b.Timestamp(d.Timestamp) })
	}
	if d.Footer != nil {
		steps = append(steps, func() error { return d.applyFooter(b) })
	}
	if d.Author != nil {
		steps = append(steps, func() error { return d.applyAuthor(b) })
	}
	if d.Image != nil {
		steps = append(steps, func() error {
			source, err := imageSource("image", d.Image)
			if err != nil {
				return err
			}
			return b.Image(source)
		})
	}
	if d.Thumbnail != nil {
		steps = append(steps, func() error {
			source, err := imageSource("thumbnail", d.Thumbnail)
			if err != nil {
				return err
			}
			return b.Thumbnail(source)
		})
	}
	for _, f := range d.Fields {
		steps = append(steps, func() error { return b.AddField(f.Name, f.Value, f.Inline) })
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return embedbuilder.Embed{}, err
		}
	}
	return b.Build()
}

func (d Definition) applyFooter(b *embedbuilder.Builder) error {
	fb, err := embedbuilder.NewFooter(d.Footer.Text)
	if err != nil {
		return err
	}
	icon, err := imageSource("footer.icon", d.Footer.Icon)
	if err != nil {
		return err
	}
	return b.Footer(fb.Icon(icon).Build())
}

func (d Definition) applyAuthor(b *embedbuilder.Builder) error {
	ab, err := embedbuilder.NewAuthor(d.Author.Name)
	if err != nil {
		return err
	}
	if d.Author.URL != "" {
		if _, err := ab.URL(d.Author.URL); err != nil {
			return err
		}
	}
	icon, err := imageSource("author.icon", d.Author.Icon)
	if err != nil {
		return err
	}
	return b.Author(ab.Icon(icon).Build())
}

// Build builds every embed in order and checks the message-level limits.
// Errors name the offending embed by index.
func (f *File) Build() ([]embedbuilder.Embed, error) {
	if len(f.Embeds) == 0 {
		return nil, ErrNoEmbeds
	}

	embeds := make([]embedbuilder.Embed, 0, len(f.Embeds))
	for i, d := range f.Embeds {
		e, err := d.Build()
		if err != nil {
			return nil, fmt.Errorf("embedconfig: embeds[%d]: %w", i, err)
		}
		embeds = append(embeds, e)
	}

	if err := embedbuilder.ValidateMessage(embeds...); err != nil {
		return nil, fmt.Errorf("embedconfig: %w", err)
	}
	return embeds, nil
}
