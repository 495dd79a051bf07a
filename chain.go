package embedbuilder

import "time"

// ChainBuilder is a fluent wrapper around Builder. Each setter returns the
// chain so calls can be strung together; the first failing setter records
// its error and every later call becomes a no-op. Build and Result return
// that first error.
//
//	embed, err := embedbuilder.NewChain().
//	    Title("Deploy finished").
//	    Color(0x57F287).
//	    InlineField("Service", "api").
//	    InlineField("Version", "v1.4.2").
//	    Build()
type ChainBuilder struct {
	b   *Builder
	err error
}

// NewChain creates a fluent builder around a new Builder.
func NewChain() *ChainBuilder {
	return New().Chain()
}

// Chain returns a fluent wrapper that drives b.
func (b *Builder) Chain() *ChainBuilder {
	return &ChainBuilder{b: b}
}

func (c *ChainBuilder) apply(set func(*Builder) error) *ChainBuilder {
	if c.err == nil {
		c.err = set(c.b)
	}
	return c
}

// Title sets the embed title.
func (c *ChainBuilder) Title(title string) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.Title(title) })
}

// Description sets the embed description.
func (c *ChainBuilder) Description(description string) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.Description(description) })
}

// URL sets the embed URL.
func (c *ChainBuilder) URL(url string) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.URL(url) })
}

// Color sets the embed color.
func (c *ChainBuilder) Color(color uint32) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.Color(color) })
}

// Timestamp sets the embed timestamp from an RFC 3339 string.
func (c *ChainBuilder) Timestamp(timestamp string) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.Timestamp(timestamp) })
}

// TimestampTime sets the embed timestamp from t.
func (c *ChainBuilder) TimestampTime(t time.Time) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.TimestampTime(t) })
}

// Field appends a field that is not displayed inline.
func (c *ChainBuilder) Field(name, value string) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.AddField(name, value, false) })
}

// InlineField appends a field displayed inline.
func (c *ChainBuilder) InlineField(name, value string) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.AddField(name, value, true) })
}

// Footer sets the embed footer.
func (c *ChainBuilder) Footer(footer Footer) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.Footer(footer) })
}

// Author sets the embed author.
func (c *ChainBuilder) Author(author Author) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.Author(author) })
}

// Image sets the large image.
func (c *ChainBuilder) Image(source ImageSource) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.Image(source) })
}

// ImageURL sets the large image from an http(s) URL.
func (c *ChainBuilder) ImageURL(url string) *ChainBuilder {
	return c.apply(func(b *Builder) error {
		source, err := ImageURL(url)
		if err != nil {
			return err
		}
		return b.Image(source)
	})
}

// Thumbnail sets the thumbnail image.
func (c *ChainBuilder) Thumbnail(source ImageSource) *ChainBuilder {
	return c.apply(func(b *Builder) error { return b.Thumbnail(source) })
}

// ThumbnailURL sets the thumbnail image from an http(s) URL.
func (c *ChainBuilder) ThumbnailURL(url string) *ChainBuilder {
	return c.apply(func(b *Builder) error {
		source, err := ImageURL(url)
		if err != nil {
			return err
		}
		return b.Thumbnail(source)
	})
}

// Err returns the first error recorded by a setter, if any.
func (c *ChainBuilder) Err() error {
	return c.err
}

// Build returns the first setter error, or else the result of
// Builder.Build.
func (c *ChainBuilder) Build() (Embed, error) {
	if c.err != nil {
		return Embed{}, c.err
	}
	return c.b.Build()
}

// Result is Build wrapped in a BuildResult.
func (c *ChainBuilder) Result() BuildResult[Embed] {
	return NewBuildResult(c.Build())
}
