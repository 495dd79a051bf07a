package embedconfig

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/embedbuilder"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#5865F2", 0x5865F2, false},
		{"0x57f287", 0x57F287, false},
		{"0XFFFFFF", 0xFFFFFF, false},
		{"15548997", 15548997, false},
		{" 42 ", 42, false},
		{"#1000000", 0x1000000, false},
		{"", 0, true},
		{"#", 0, true},
		{"red", 0, true},
		{"-1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageSource(t *testing.T) {
	source, err := Image{URL: "https://example.com/a.png"}.Source()
	require.NoError(t, err)
	assert.True(t, source.IsURL())

	source, err = Image{Attachment: "a.png"}.Source()
	require.NoError(t, err)
	assert.Equal(t, "attachment://a.png", source.String())

	_, err = Image{}.Source()
	assert.ErrorIs(t, err, ErrImageSource)

	_, err = Image{URL: "https://example.com/a.png", Attachment: "a.png"}.Source()
	assert.ErrorIs(t, err, ErrImageSource)

	_, err = Image{URL: "a.png"}.Source()
	assert.ErrorIs(t, err, embedbuilder.ErrInvalidURL)
}

func TestDefinitionBuild(t *testing.T) {
	color := Color(0x5865F2)
	d := Definition{
		Title:       "Release",
		Description: "notes",
		URL:         "https://example.com/r",
		Color:       &color,
		Timestamp:   "2024-05-01T12:30:00Z",
		Footer:      &Footer{Text: "ci", Icon: &Image{Attachment: "ci.png"}},
		Author:      &Author{Name: "bot", URL: "https://example.com/bot", Icon: &Image{URL: "https://example.com/bot.png"}},
		Image:       &Image{URL: "https://example.com/banner.png"},
		Thumbnail:   &Image{Attachment: "logo.png"},
		Fields: []Field{
			{Name: "a", Value: "1", Inline: true},
			{Name: "b", Value: "2"},
		},
	}

	embed, err := d.Build()
	require.NoError(t, err)

	assert.Equal(t, "Release", embed.Title)
	assert.Equal(t, embedbuilder.EmbedTypeRich, embed.Type)
	require.NotNil(t, embed.Color)
	assert.Equal(t, 0x5865F2, *embed.Color)
	assert.Equal(t, &embedbuilder.Footer{Text: "ci", IconURL: "attachment://ci.png"}, embed.Footer)
	assert.Equal(t, &embedbuilder.Author{
		Name:    "bot",
		URL:     "https://example.com/bot",
		IconURL: "https://example.com/bot.png",
	}, embed.Author)
	assert.Equal(t, "https://example.com/banner.png", embed.Image.URL)
	assert.Equal(t, "attachment://logo.png", embed.Thumbnail.URL)
	assert.Equal(t, []embedbuilder.Field{
		{Name: "a", Value: "1", Inline: true},
		{Name: "b", Value: "2"},
	}, embed.Fields)
	assert.NoError(t, embedbuilder.Validate(embed))
}

func TestDefinitionBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want error
	}{
		{"long title", Definition{Title: strings.Repeat("t", 257)}, embedbuilder.ErrTitleTooLong},
		{"bad url", Definition{URL: "example.com"}, embedbuilder.ErrInvalidURL},
		{"bad color", Definition{Color: func() *Color { c := Color(0x1000000); return &c }()}, embedbuilder.ErrColorOutOfRange},
		{"bad timestamp", Definition{Timestamp: "today"}, embedbuilder.ErrInvalidTimestamp},
		{"empty footer", Definition{Footer: &Footer{}}, embedbuilder.ErrFooterTextEmpty},
		{"footer icon", Definition{Footer: &Footer{Text: "x", Icon: &Image{}}}, ErrImageSource},
		{"empty author", Definition{Author: &Author{}}, embedbuilder.ErrAuthorNameEmpty},
		{"author url", Definition{Author: &Author{Name: "a", URL: "a"}}, embedbuilder.ErrInvalidURL},
		{"author icon", Definition{Author: &Author{Name: "a", Icon: &Image{Attachment: "attachment://"}}}, embedbuilder.ErrEmptyAttachmentName},
		{"image", Definition{Image: &Image{}}, ErrImageSource},
		{"thumbnail", Definition{Thumbnail: &Image{URL: "x"}}, embedbuilder.ErrInvalidURL},
		{"field", Definition{Fields: []Field{{Name: "n"}}}, embedbuilder.ErrFieldValueEmpty},
		{"too large", Definition{
			Description: strings.Repeat("d", 4096),
			Footer:      &Footer{Text: strings.Repeat("f", 2048)},
		}, embedbuilder.ErrEmbedTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDefinitionBuild_ImageErrorPath(t *testing.T) {
	_, err := Definition{Footer: &Footer{Text: "x", Icon: &Image{}}}.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "footer.icon")
}

func TestDefinitionBuild_TooManyFields(t *testing.T) {
	var d Definition
	for i := 0; i < embedbuilder.FieldLimit+1; i++ {
		d.Fields = append(d.Fields, Field{Name: "n", Value: "v"})
	}

	_, err := d.Build()
	valErr, ok := embedbuilder.AsValidationError(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Equal(t, embedbuilder.KindTooManyFields, valErr.Kind)
}

func TestFileBuild(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		_, err := (&File{}).Build()
		assert.ErrorIs(t, err, ErrNoEmbeds)
	})

	t.Run("index in error", func(t *testing.T) {
		f := &File{Embeds: []Definition{
			{Title: "ok"},
			{Fields: []Field{{Value: "v"}}},
		}}
		_, err := f.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embeds[1]")
		assert.True(t, errors.Is(err, embedbuilder.ErrFieldNameEmpty))
	})

	t.Run("message limits", func(t *testing.T) {
		f := &File{}
		for i := 0; i < embedbuilder.EmbedsPerMessageLimit+1; i++ {
			f.Embeds = append(f.Embeds, Definition{Title: "t"})
		}
		_, err := f.Build()
		assert.ErrorIs(t, err, embedbuilder.ErrTooManyEmbeds)

		f = &File{Embeds: []Definition{
			{Description: strings.Repeat("a", 4000)},
			{Description: strings.Repeat("b", 2001)},
		}}
		_, err = f.Build()
		assert.ErrorIs(t, err, embedbuilder.ErrMessageTooLarge)
	})
}
