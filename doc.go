// Package embedbuilder builds validated embed documents for the chat
// platform's message API.
//
// An embed is a richly formatted attachment to a message: a title,
// description, color, up to 25 name/value fields, images, a footer, an
// author block and a timestamp. The platform rejects embeds that exceed its
// documented limits. This package enforces those limits while the embed is
// assembled, so that a built Embed can be serialized and sent without being
// rejected for size or shape.
//
// # Building an embed
//
//	b := embedbuilder.New()
//	if err := b.Title("Nightly build"); err != nil {
//	    return err
//	}
//	if err := b.Color(0xED4245); err != nil {
//	    return err
//	}
//	field, err := embedbuilder.NewField("Failed tests", "14")
//	if err != nil {
//	    return err
//	}
//	if err := b.Field(field.Inline().Build()); err != nil {
//	    return err
//	}
//	embed, err := b.Build()
//
// Or, with the fluent wrapper, which stops at the first error:
//
//	embed, err := embedbuilder.NewChain().
//	    Title("Nightly build").
//	    Color(0xED4245).
//	    InlineField("Failed tests", "14").
//	    Build()
//
// # Validation
//
// Limits local to one member (title length, color range, URL syntax, field
// count) are checked by the setter that receives the value, and a failing
// setter leaves the builder unchanged. The aggregate budget of
// EmbedLengthLimit characters spans the title, description, field names and
// values, footer text and author name, and is checked by Build.
//
// Failures are reported as *ValidationError values whose Kind identifies the
// violated constraint. They match the package sentinels with errors.Is:
//
//	if errors.Is(err, embedbuilder.ErrEmbedTooLarge) {
//	    // shorten the description
//	}
//
// Embeds that did not come from a Builder can be checked with Validate, and
// the embeds of one message together with ValidateMessage.
//
// # Images
//
// Images are referenced by ImageSource, either an http(s) URL (ImageURL) or
// the filename of a file uploaded alongside the message (ImageAttachment).
// Attachments are resolved by the platform, not by this package.
//
// # Thread Safety
//
// Builders are not internally synchronized. Built Embed values are plain
// data and may be shared freely once no goroutine modifies them.
package embedbuilder
