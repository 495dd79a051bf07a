package embedbuilder

import (
	"fmt"
	"time"
)

// Builder assembles an Embed.
//
// Every setter validates its own input immediately and returns a
// ValidationError on failure, leaving the builder unchanged. Setters may be
// called in any order; for singular members the last successful call wins,
// and fields are only ever appended. The aggregate length budget depends on
// every member and is checked once, by Build.
//
// A Builder is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization.
type Builder struct {
	embed Embed
	built bool
}

// New creates an empty embed builder.
func New() *Builder {
	return &Builder{embed: Embed{Type: EmbedTypeRich}}
}

// Title sets the embed title. Errors with KindTitleTooLong beyond
// TitleLengthLimit.
func (b *Builder) Title(title string) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if err := ValidateOptional("title", title, TitleLengthLimit, KindTitleTooLong); err != nil {
		return err
	}
	b.embed.Title = title
	return nil
}

// Description sets the embed description. Errors with
// KindDescriptionTooLong beyond DescriptionLengthLimit.
func (b *Builder) Description(description string) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if err := ValidateOptional("description", description, DescriptionLengthLimit, KindDescriptionTooLong); err != nil {
		return err
	}
	b.embed.Description = description
	return nil
}

// URL sets the link on the embed title. Errors with KindInvalidURL unless
// url is an absolute http(s) URL.
func (b *Builder) URL(url string) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if err := ValidateURL("url", url); err != nil {
		return err
	}
	b.embed.URL = url
	return nil
}

// Color sets the embed color as 0xRRGGBB. Errors with KindColorOutOfRange
// above ColorMaximum.
func (b *Builder) Color(color uint32) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if err := ValidateColor("color", color); err != nil {
		return err
	}
	c := int(color)
	b.embed.Color = &c
	return nil
}

// Timestamp sets the embed timestamp from an ISO 8601 (RFC 3339) string.
// Errors with KindInvalidTimestamp if it cannot be parsed.
func (b *Builder) Timestamp(timestamp string) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if err := ValidateTimestamp("timestamp", timestamp); err != nil {
		return err
	}
	b.embed.Timestamp = timestamp
	return nil
}

// TimestampTime sets the embed timestamp from t, formatted in UTC.
func (b *Builder) TimestampTime(t time.Time) error {
	return b.Timestamp(t.UTC().Format(time.RFC3339Nano))
}

// Field appends a field. Errors with KindTooManyFields if the embed already
// holds FieldLimit fields. Fields built with NewField always pass the
// per-field checks; fields constructed directly are checked here too.
func (b *Builder) Field(field Field) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if err := ValidateFieldCount(len(b.embed.Fields) + 1); err != nil {
		return err
	}
	v := &Validator{}
	validateField(v, fmt.Sprintf("fields[%d]", len(b.embed.Fields)), field)
	if err := v.First(); err != nil {
		return err
	}
	b.embed.Fields = append(b.embed.Fields, field)
	return nil
}

// AddField appends a field built from name and value, with the same checks
// as NewField.
func (b *Builder) AddField(name, value string, inline bool) error {
	return b.Field(Field{Name: name, Value: value, Inline: inline})
}

// Footer sets the embed footer.
func (b *Builder) Footer(footer Footer) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if err := ValidateRequired("footer.text", footer.Text, FooterTextLengthLimit, KindFooterTextEmpty, KindFooterTextTooLong); err != nil {
		return err
	}
	if footer.IconURL != "" {
		if err := ValidateMediaURL("footer.icon_url", footer.IconURL); err != nil {
			return err
		}
	}
	b.embed.Footer = &footer
	return nil
}

// Author sets the embed author.
func (b *Builder) Author(author Author) error {
	if b.built {
		return ErrBuilderConsumed
	}
	if err := ValidateRequired("author.name", author.Name, AuthorNameLengthLimit, KindAuthorNameEmpty, KindAuthorNameTooLong); err != nil {
		return err
	}
	if author.URL != "" {
		if err := ValidateURL("author.url", author.URL); err != nil {
			return err
		}
	}
	if author.IconURL != "" {
		if err := ValidateMediaURL("author.icon_url", author.IconURL); err != nil {
			return err
		}
	}
	b.embed.Author = &author
	return nil
}

// Image sets the large image. A zero ImageSource clears it.
func (b *Builder) Image(source ImageSource) error {
	if b.built {
		return ErrBuilderConsumed
	}
	b.embed.Image = nil
	if source.valid() {
		b.embed.Image = source.media()
	}
	return nil
}

// Thumbnail sets the thumbnail image. A zero ImageSource clears it.
func (b *Builder) Thumbnail(source ImageSource) error {
	if b.built {
		return ErrBuilderConsumed
	}
	b.embed.Thumbnail = nil
	if source.valid() {
		b.embed.Thumbnail = source.media()
	}
	return nil
}

// Length returns the aggregate character count accumulated so far.
func (b *Builder) Length() int {
	return b.embed.Length()
}

// FieldCount returns the number of fields appended so far.
func (b *Builder) FieldCount() int {
	return len(b.embed.Fields)
}

// Build checks the aggregate length budget and returns the finished embed.
// Errors with KindEmbedTooLarge, carrying the computed total, when the
// budget is exceeded.
//
// After Build the builder accepts no further changes. Build itself may be
// called again and returns an equal, independent copy each time.
func (b *Builder) Build() (Embed, error) {
	if err := ValidateEmbedLength(b.embed); err != nil {
		return Embed{}, err
	}
	b.built = true
	return b.embed.clone(), nil
}

// Result is Build wrapped in a BuildResult.
func (b *Builder) Result() BuildResult[Embed] {
	return NewBuildResult(b.Build())
}
