package embedbuilder

import (
	"errors"
	"testing"
)

func TestImageURL(t *testing.T) {
	t.Run("valid url", func(t *testing.T) {
		source, err := ImageURL("https://example.com/x.png")
		if err != nil {
			t.Fatalf("ImageURL() error = %v", err)
		}
		if !source.IsURL() || source.IsAttachment() {
			t.Error("source should be a URL source")
		}
		if source.String() != "https://example.com/x.png" {
			t.Errorf("String() = %q", source.String())
		}
		if source.Filename() != "" {
			t.Errorf("Filename() = %q, want empty for URL sources", source.Filename())
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		for _, url := range []string{"not-a-url", "https://:80/x.png", "ftp://example.com/x.png"} {
			_, err := ImageURL(url)
			if !errors.Is(err, ErrInvalidURL) {
				t.Errorf("ImageURL(%q) error = %v, want ErrInvalidURL", url, err)
			}
		}
	})

	t.Run("error names the source", func(t *testing.T) {
		_, err := ImageURL("not-a-url")
		valErr, ok := AsValidationError(err)
		if !ok {
			t.Fatalf("error = %v, want ValidationError", err)
		}
		if valErr.Field != "source" {
			t.Errorf("Field = %q, want %q", valErr.Field, "source")
		}
	})
}

func TestImageAttachment(t *testing.T) {
	t.Run("valid filename", func(t *testing.T) {
		source, err := ImageAttachment("cat.png")
		if err != nil {
			t.Fatalf("ImageAttachment() error = %v", err)
		}
		if !source.IsAttachment() || source.IsURL() {
			t.Error("source should be an attachment source")
		}
		if source.Filename() != "cat.png" {
			t.Errorf("Filename() = %q, want %q", source.Filename(), "cat.png")
		}
		if source.String() != "attachment://cat.png" {
			t.Errorf("String() = %q, want %q", source.String(), "attachment://cat.png")
		}
	})

	t.Run("prefixed filename", func(t *testing.T) {
		source, err := ImageAttachment("attachment://cat.png")
		if err != nil {
			t.Fatalf("ImageAttachment() error = %v", err)
		}
		if source.String() != "attachment://cat.png" {
			t.Errorf("String() = %q, want the prefix only once", source.String())
		}
	})

	t.Run("nested prefix", func(t *testing.T) {
		for _, name := range []string{"attachment://attachment://", "attachment://attachment://cat.png", "img/cat.png", `img\cat.png`} {
			_, err := ImageAttachment(name)
			if !errors.Is(err, ErrInvalidAttachmentName) {
				t.Errorf("ImageAttachment(%q) error = %v, want ErrInvalidAttachmentName", name, err)
			}
		}
	})

	t.Run("error names the source", func(t *testing.T) {
		_, err := ImageAttachment("")
		valErr, ok := AsValidationError(err)
		if !ok {
			t.Fatalf("error = %v, want ValidationError", err)
		}
		if valErr.Field != "source" {
			t.Errorf("Field = %q, want %q", valErr.Field, "source")
		}
	})

	t.Run("empty filename", func(t *testing.T) {
		for _, name := range []string{"", "attachment://"} {
			_, err := ImageAttachment(name)
			if !errors.Is(err, ErrEmptyAttachmentName) {
				t.Errorf("ImageAttachment(%q) error = %v, want ErrEmptyAttachmentName", name, err)
			}
		}
	})
}

func TestImageSourceZeroValue(t *testing.T) {
	var source ImageSource
	if source.valid() || source.IsURL() || source.IsAttachment() {
		t.Error("zero ImageSource should not be a valid source")
	}
	if source.String() != "" {
		t.Errorf("String() = %q, want empty", source.String())
	}
}
