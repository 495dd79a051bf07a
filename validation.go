package embedbuilder

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Validator accumulates validation errors.
type Validator struct {
	errors []error
}

// AddError adds a validation error. Nil errors are ignored.
func (v *Validator) AddError(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

// HasErrors returns true if there are any validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all accumulated validation errors.
func (v *Validator) Errors() []error {
	return v.errors
}

// First returns the first accumulated error, or nil.
func (v *Validator) First() error {
	if len(v.errors) == 0 {
		return nil
	}
	return v.errors[0]
}

// CombinedError returns a single error combining all validation errors,
// or nil if there are no errors.
func (v *Validator) CombinedError() error {
	return combineErrors(v.errors)
}

// Validation rules

// ValidateRequired validates a mandatory text member: it must be non-empty
// and at most limit characters long.
func ValidateRequired(field, value string, limit int, emptyKind, tooLongKind ErrorKind) error {
	if value == "" {
		return newEmptyError(emptyKind, field)
	}
	return ValidateOptional(field, value, limit, tooLongKind)
}

// ValidateOptional validates an optional text member: empty is allowed,
// otherwise it must be at most limit characters long.
func ValidateOptional(field, value string, limit int, tooLongKind ErrorKind) error {
	if n := utf8.RuneCountInString(value); n > limit {
		return newLengthError(tooLongKind, field, n, limit)
	}
	return nil
}

// ValidateURL validates that raw is an absolute http or https URL with a
// host name. A port alone does not count as a host. The check is syntactic
// only.
func ValidateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return newValueError(KindInvalidURL, field, raw)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return nil
	default:
		return newValueError(KindInvalidURL, field, raw)
	}
}

// ValidateAttachmentName validates the filename of an uploaded attachment.
// It must be non-empty and a plain filename, without path separators, so a
// doubled "attachment://" prefix is rejected too.
func ValidateAttachmentName(field, name string) error {
	if name == "" {
		return newEmptyError(KindEmptyAttachmentName, field)
	}
	if strings.ContainsAny(name, `/\`) {
		return newValueError(KindInvalidAttachmentName, field, name)
	}
	return nil
}

// ValidateMediaURL validates an image reference, which is either an
// http(s) URL or an attachment:// reference to a plain filename.
func ValidateMediaURL(field, raw string) error {
	if name, ok := strings.CutPrefix(raw, AttachmentScheme); ok {
		return ValidateAttachmentName(field, name)
	}
	return ValidateURL(field, raw)
}

// ValidateTimestamp validates an ISO 8601 timestamp in RFC 3339 form, the
// format the platform accepts.
func ValidateTimestamp(field, value string) error {
	if _, err := time.Parse(time.RFC3339, value); err != nil {
		return newValueError(KindInvalidTimestamp, field, value)
	}
	return nil
}

// ValidateColor validates that color fits in 0xRRGGBB.
func ValidateColor(field string, color uint32) error {
	if color > ColorMaximum {
		return &ValidationError{
			Kind:  KindColorOutOfRange,
			Field: field,
			Value: fmt.Sprintf("0x%06X", color),
			Limit: ColorMaximum,
		}
	}
	return nil
}

// ValidateFieldCount validates that an embed holding count fields is within
// FieldLimit.
func ValidateFieldCount(count int) error {
	if count > FieldLimit {
		return newLengthError(KindTooManyFields, "fields", count, FieldLimit)
	}
	return nil
}

// ValidateEmbedLength validates the aggregate character budget of e.
func ValidateEmbedLength(e Embed) error {
	if n := e.Length(); n > EmbedLengthLimit {
		return newLengthError(KindEmbedTooLarge, "", n, EmbedLengthLimit)
	}
	return nil
}

func validateField(v *Validator, prefix string, f Field) {
	v.AddError(ValidateRequired(prefix+".name", f.Name, FieldNameLengthLimit, KindFieldNameEmpty, KindFieldNameTooLong))
	v.AddError(ValidateRequired(prefix+".value", f.Value, FieldValueLengthLimit, KindFieldValueEmpty, KindFieldValueTooLong))
}

// ValidateAll checks every rule against e and returns all failures in
// document order. It is intended for embeds that did not come from a
// Builder, such as ones decoded from an existing message.
func ValidateAll(e Embed) []error {
	v := &Validator{}

	v.AddError(ValidateOptional("title", e.Title, TitleLengthLimit, KindTitleTooLong))
	v.AddError(ValidateOptional("description", e.Description, DescriptionLengthLimit, KindDescriptionTooLong))
	if e.URL != "" {
		v.AddError(ValidateURL("url", e.URL))
	}
	if e.Timestamp != "" {
		v.AddError(ValidateTimestamp("timestamp", e.Timestamp))
	}
	if e.Color != nil {
		if *e.Color < 0 || *e.Color > ColorMaximum {
			v.AddError(&ValidationError{
				Kind:  KindColorOutOfRange,
				Field: "color",
				Value: fmt.Sprintf("%d", *e.Color),
				Limit: ColorMaximum,
			})
		}
	}
	if e.Footer != nil {
		v.AddError(ValidateRequired("footer.text", e.Footer.Text, FooterTextLengthLimit, KindFooterTextEmpty, KindFooterTextTooLong))
		if e.Footer.IconURL != "" {
			v.AddError(ValidateMediaURL("footer.icon_url", e.Footer.IconURL))
		}
	}
	if e.Image != nil {
		v.AddError(ValidateMediaURL("image.url", e.Image.URL))
	}
	if e.Thumbnail != nil {
		v.AddError(ValidateMediaURL("thumbnail.url", e.Thumbnail.URL))
	}
	if e.Author != nil {
		v.AddError(ValidateRequired("author.name", e.Author.Name, AuthorNameLengthLimit, KindAuthorNameEmpty, KindAuthorNameTooLong))
		if e.Author.URL != "" {
			v.AddError(ValidateURL("author.url", e.Author.URL))
		}
		if e.Author.IconURL != "" {
			v.AddError(ValidateMediaURL("author.icon_url", e.Author.IconURL))
		}
	}
	v.AddError(ValidateFieldCount(len(e.Fields)))
	for i, f := range e.Fields {
		validateField(v, fmt.Sprintf("fields[%d]", i), f)
	}
	v.AddError(ValidateEmbedLength(e))

	return v.Errors()
}

// Validate checks every rule against e and returns the first failure, or
// nil if e is a valid embed.
func Validate(e Embed) error {
	errs := ValidateAll(e)
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

// ValidateMessage checks the message-level limits for a set of embeds sent
// together: each embed must be valid, there may be at most
// EmbedsPerMessageLimit of them, and their combined length must not exceed
// MessageEmbedLengthLimit.
func ValidateMessage(embeds ...Embed) error {
	if len(embeds) > EmbedsPerMessageLimit {
		return newLengthError(KindTooManyEmbeds, "embeds", len(embeds), EmbedsPerMessageLimit)
	}

	total := 0
	for i, e := range embeds {
		if err := Validate(e); err != nil {
			return withFieldPrefix(err, fmt.Sprintf("embeds[%d]", i))
		}
		total += e.Length()
	}
	if total > MessageEmbedLengthLimit {
		return newLengthError(KindMessageTooLarge, "embeds", total, MessageEmbedLengthLimit)
	}
	return nil
}

// withFieldPrefix returns a copy of a ValidationError with its Field
// qualified by prefix. Other errors are returned unchanged.
func withFieldPrefix(err error, prefix string) error {
	valErr, ok := AsValidationError(err)
	if !ok {
		return err
	}
	out := *valErr
	if out.Field == "" {
		out.Field = prefix
	} else {
		out.Field = prefix + "." + out.Field
	}
	return &out
}
