package embedbuilder

// Limits imposed by the platform API on embed documents. Lengths are counted
// in Unicode code points.
const (
	// TitleLengthLimit is the maximum length of an embed title.
	TitleLengthLimit = 256

	// DescriptionLengthLimit is the maximum length of an embed description.
	DescriptionLengthLimit = 4096

	// FieldNameLengthLimit is the maximum length of a field name.
	FieldNameLengthLimit = 256

	// FieldValueLengthLimit is the maximum length of a field value.
	FieldValueLengthLimit = 1024

	// FieldLimit is the maximum number of fields in a single embed.
	FieldLimit = 25

	// FooterTextLengthLimit is the maximum length of footer text.
	FooterTextLengthLimit = 2048

	// AuthorNameLengthLimit is the maximum length of an author name.
	AuthorNameLengthLimit = 256

	// EmbedLengthLimit is the maximum combined length of the title,
	// description, field names, field values, footer text and author name.
	EmbedLengthLimit = 6000

	// ColorMaximum is the largest accepted color, 0xRRGGBB.
	ColorMaximum = 0xFFFFFF

	// EmbedsPerMessageLimit is the maximum number of embeds in one message.
	EmbedsPerMessageLimit = 10

	// MessageEmbedLengthLimit is the maximum combined length of every embed
	// in one message.
	MessageEmbedLengthLimit = 6000
)

// AttachmentScheme prefixes references to files uploaded with the message.
const AttachmentScheme = "attachment://"

// EmbedTypeRich is the only embed type that can be sent by clients.
const EmbedTypeRich = "rich"
