package embedbuilder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies which constraint a ValidationError reports.
type ErrorKind string

// Validation error kinds.
const (
	KindFieldNameEmpty        ErrorKind = "FIELD_NAME_EMPTY"
	KindFieldNameTooLong      ErrorKind = "FIELD_NAME_TOO_LONG"
	KindFieldValueEmpty       ErrorKind = "FIELD_VALUE_EMPTY"
	KindFieldValueTooLong     ErrorKind = "FIELD_VALUE_TOO_LONG"
	KindTitleTooLong          ErrorKind = "TITLE_TOO_LONG"
	KindDescriptionTooLong    ErrorKind = "DESCRIPTION_TOO_LONG"
	KindFooterTextEmpty       ErrorKind = "FOOTER_TEXT_EMPTY"
	KindFooterTextTooLong     ErrorKind = "FOOTER_TEXT_TOO_LONG"
	KindAuthorNameEmpty       ErrorKind = "AUTHOR_NAME_EMPTY"
	KindAuthorNameTooLong     ErrorKind = "AUTHOR_NAME_TOO_LONG"
	KindInvalidURL            ErrorKind = "INVALID_URL"
	KindEmptyAttachmentName   ErrorKind = "EMPTY_ATTACHMENT_NAME"
	KindInvalidAttachmentName ErrorKind = "INVALID_ATTACHMENT_NAME"
	KindInvalidTimestamp      ErrorKind = "INVALID_TIMESTAMP"
	KindTooManyFields         ErrorKind = "TOO_MANY_FIELDS"
	KindColorOutOfRange       ErrorKind = "COLOR_OUT_OF_RANGE"
	KindEmbedTooLarge         ErrorKind = "EMBED_TOO_LARGE"
	KindTooManyEmbeds         ErrorKind = "TOO_MANY_EMBEDS"
	KindMessageTooLarge       ErrorKind = "MESSAGE_TOO_LARGE"
)

// Sentinel errors for use with errors.Is(). They match on Kind only, so
//
//	if errors.Is(err, embedbuilder.ErrTitleTooLong) { ... }
//
// holds for any title length violation regardless of the lengths involved.
var (
	ErrFieldNameEmpty        = &ValidationError{Kind: KindFieldNameEmpty}
	ErrFieldNameTooLong      = &ValidationError{Kind: KindFieldNameTooLong}
	ErrFieldValueEmpty       = &ValidationError{Kind: KindFieldValueEmpty}
	ErrFieldValueTooLong     = &ValidationError{Kind: KindFieldValueTooLong}
	ErrTitleTooLong          = &ValidationError{Kind: KindTitleTooLong}
	ErrDescriptionTooLong    = &ValidationError{Kind: KindDescriptionTooLong}
	ErrFooterTextEmpty       = &ValidationError{Kind: KindFooterTextEmpty}
	ErrFooterTextTooLong     = &ValidationError{Kind: KindFooterTextTooLong}
	ErrAuthorNameEmpty       = &ValidationError{Kind: KindAuthorNameEmpty}
	ErrAuthorNameTooLong     = &ValidationError{Kind: KindAuthorNameTooLong}
	ErrInvalidURL            = &ValidationError{Kind: KindInvalidURL}
	ErrEmptyAttachmentName   = &ValidationError{Kind: KindEmptyAttachmentName}
	ErrInvalidAttachmentName = &ValidationError{Kind: KindInvalidAttachmentName}
	ErrInvalidTimestamp      = &ValidationError{Kind: KindInvalidTimestamp}
	ErrTooManyFields         = &ValidationError{Kind: KindTooManyFields}
	ErrColorOutOfRange       = &ValidationError{Kind: KindColorOutOfRange}
	ErrEmbedTooLarge         = &ValidationError{Kind: KindEmbedTooLarge}
	ErrTooManyEmbeds         = &ValidationError{Kind: KindTooManyEmbeds}
	ErrMessageTooLarge       = &ValidationError{Kind: KindMessageTooLarge}
)

// ErrBuilderConsumed is returned by setters called after Build.
var ErrBuilderConsumed = errors.New("embedbuilder: builder has already been built")

// ValidationError reports a single violated constraint.
//
// Field names the offending member using the JSON path of the document,
// e.g. "title", "fields[3].value" or "author.url". Length and Limit carry
// the measured size and the allowed maximum for length and count kinds.
// Value carries the rejected input for format kinds (URLs, timestamps,
// colors).
type ValidationError struct {
	Kind   ErrorKind
	Field  string
	Length int
	Limit  int
	Value  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	field := e.Field
	if field == "" {
		field = "embed"
	}

	switch e.Kind {
	case KindFieldNameEmpty, KindFieldValueEmpty, KindFooterTextEmpty, KindAuthorNameEmpty:
		return fmt.Sprintf("embedbuilder: %s cannot be empty", field)
	case KindFieldNameTooLong, KindFieldValueTooLong, KindTitleTooLong, KindDescriptionTooLong,
		KindFooterTextTooLong, KindAuthorNameTooLong:
		return fmt.Sprintf("embedbuilder: %s is %d characters, exceeds limit of %d", field, e.Length, e.Limit)
	case KindInvalidURL:
		return fmt.Sprintf("embedbuilder: %s %q is not an absolute http(s) URL", field, e.Value)
	case KindEmptyAttachmentName:
		return fmt.Sprintf("embedbuilder: %s attachment filename cannot be empty", field)
	case KindInvalidAttachmentName:
		return fmt.Sprintf("embedbuilder: %s attachment filename %q must not contain a path", field, e.Value)
	case KindInvalidTimestamp:
		return fmt.Sprintf("embedbuilder: %s %q is not an ISO 8601 timestamp", field, e.Value)
	case KindTooManyFields:
		return fmt.Sprintf("embedbuilder: embed would have %d fields, exceeds limit of %d", e.Length, e.Limit)
	case KindColorOutOfRange:
		return fmt.Sprintf("embedbuilder: %s %s exceeds maximum 0x%06X", field, e.Value, e.Limit)
	case KindEmbedTooLarge:
		return fmt.Sprintf("embedbuilder: embed is %d characters, exceeds limit of %d", e.Length, e.Limit)
	case KindTooManyEmbeds:
		return fmt.Sprintf("embedbuilder: message has %d embeds, exceeds limit of %d", e.Length, e.Limit)
	case KindMessageTooLarge:
		return fmt.Sprintf("embedbuilder: message embeds are %d characters combined, exceeds limit of %d", e.Length, e.Limit)
	default:
		return fmt.Sprintf("embedbuilder: validation error for %s: %s", field, strings.ToLower(string(e.Kind)))
	}
}

// Is implements error comparison for errors.Is(). It matches on Kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Code returns the kind of the violated constraint.
func (e *ValidationError) Code() ErrorKind {
	return e.Kind
}

// AsValidationError extracts a ValidationError from the error chain.
// Returns the ValidationError and true if found, nil and false otherwise.
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}

// IsKind reports whether err carries a ValidationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	valErr, ok := AsValidationError(err)
	return ok && valErr.Kind == kind
}

func newEmptyError(kind ErrorKind, field string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field}
}

func newLengthError(kind ErrorKind, field string, length, limit int) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Length: length, Limit: limit}
}

func newValueError(kind ErrorKind, field, value string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value}
}

// combineErrors joins multiple errors into one, returning a single error
// unchanged so that its concrete type survives.
func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
