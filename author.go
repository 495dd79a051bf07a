package embedbuilder

// AuthorBuilder builds an embed author block.
type AuthorBuilder struct {
	author Author
}

// NewAuthor creates an author builder with the given name.
//
// Returns a ValidationError if name is empty or longer than
// AuthorNameLengthLimit.
func NewAuthor(name string) (*AuthorBuilder, error) {
	if err := ValidateRequired("author.name", name, AuthorNameLengthLimit, KindAuthorNameEmpty, KindAuthorNameTooLong); err != nil {
		return nil, err
	}
	return &AuthorBuilder{author: Author{Name: name}}, nil
}

// URL sets the link on the author's name. On error the builder is left
// unchanged.
func (b *AuthorBuilder) URL(url string) (*AuthorBuilder, error) {
	if err := ValidateURL("author.url", url); err != nil {
		return b, err
	}
	b.author.URL = url
	return b, nil
}

// Icon sets the author icon. A zero ImageSource clears it.
func (b *AuthorBuilder) Icon(source ImageSource) *AuthorBuilder {
	b.author.IconURL = source.String()
	return b
}

// Build returns the author.
func (b *AuthorBuilder) Build() Author {
	return b.author
}
