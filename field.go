package embedbuilder

// FieldBuilder builds a single embed field. The name and value are
// validated when the builder is created, so Build cannot fail.
type FieldBuilder struct {
	field Field
}

// NewField creates a field builder.
//
// Returns a ValidationError if name or value is empty or longer than
// FieldNameLengthLimit or FieldValueLengthLimit respectively.
func NewField(name, value string) (*FieldBuilder, error) {
	if err := ValidateRequired("field.name", name, FieldNameLengthLimit, KindFieldNameEmpty, KindFieldNameTooLong); err != nil {
		return nil, err
	}
	if err := ValidateRequired("field.value", value, FieldValueLengthLimit, KindFieldValueEmpty, KindFieldValueTooLong); err != nil {
		return nil, err
	}
	return &FieldBuilder{field: Field{Name: name, Value: value}}, nil
}

// Inline marks the field to be displayed inline with its neighbours.
func (b *FieldBuilder) Inline() *FieldBuilder {
	b.field.Inline = true
	return b
}

// Build returns the field.
func (b *FieldBuilder) Build() Field {
	return b.field
}
