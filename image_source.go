package embedbuilder

import "strings"

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceURL
	sourceAttachment
)

// sourceField names the input in errors from ImageURL and ImageAttachment.
// The member a source ends up in is not known when it is created.
const sourceField = "source"

// ImageSource is a validated reference to an image: either an http(s) URL
// or the filename of an attachment uploaded alongside the message. The zero
// value is not a valid source; use ImageURL or ImageAttachment.
type ImageSource struct {
	kind  sourceKind
	value string
}

// ImageURL creates an image source from an absolute http or https URL.
//
// Returns a ValidationError of kind KindInvalidURL, with Field "source", if
// url lacks a scheme or host, or uses another scheme.
func ImageURL(url string) (ImageSource, error) {
	if err := ValidateURL(sourceField, url); err != nil {
		return ImageSource{}, err
	}
	return ImageSource{kind: sourceURL, value: url}, nil
}

// ImageAttachment creates an image source referring to an attachment by
// filename. The attachment is resolved by the platform when the message is
// sent; no existence check is performed here.
//
// A single leading "attachment://" is accepted and removed. Returns a
// ValidationError with Field "source" of kind KindEmptyAttachmentName if
// nothing remains, or KindInvalidAttachmentName if the remainder contains a
// path separator.
func ImageAttachment(filename string) (ImageSource, error) {
	filename = strings.TrimPrefix(filename, AttachmentScheme)
	if err := ValidateAttachmentName(sourceField, filename); err != nil {
		return ImageSource{}, err
	}
	return ImageSource{kind: sourceAttachment, value: filename}, nil
}

// IsURL reports whether the source is an http(s) URL.
func (s ImageSource) IsURL() bool {
	return s.kind == sourceURL
}

// IsAttachment reports whether the source is an attachment reference.
func (s ImageSource) IsAttachment() bool {
	return s.kind == sourceAttachment
}

// Filename returns the attachment filename, or "" for URL sources.
func (s ImageSource) Filename() string {
	if s.kind != sourceAttachment {
		return ""
	}
	return s.value
}

// String returns the value placed in the document: the URL itself or
// "attachment://<filename>".
func (s ImageSource) String() string {
	switch s.kind {
	case sourceURL:
		return s.value
	case sourceAttachment:
		return AttachmentScheme + s.value
	default:
		return ""
	}
}

func (s ImageSource) valid() bool {
	return s.kind != sourceNone
}

func (s ImageSource) media() *Media {
	return &Media{URL: s.String()}
}
