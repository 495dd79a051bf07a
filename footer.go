package embedbuilder

// FooterBuilder builds an embed footer.
type FooterBuilder struct {
	footer Footer
}

// NewFooter creates a footer builder with the given text.
//
// Returns a ValidationError if text is empty or longer than
// FooterTextLengthLimit.
func NewFooter(text string) (*FooterBuilder, error) {
	if err := ValidateRequired("footer.text", text, FooterTextLengthLimit, KindFooterTextEmpty, KindFooterTextTooLong); err != nil {
		return nil, err
	}
	return &FooterBuilder{footer: Footer{Text: text}}, nil
}

// Icon sets the footer icon. A zero ImageSource clears it.
func (b *FooterBuilder) Icon(source ImageSource) *FooterBuilder {
	b.footer.IconURL = source.String()
	return b
}

// Build returns the footer.
func (b *FooterBuilder) Build() Footer {
	return b.footer
}
