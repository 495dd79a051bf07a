package embedbuilder

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestEmbedLength(t *testing.T) {
	tests := []struct {
		name  string
		embed Embed
		want  int
	}{
		{"empty", Embed{}, 0},
		{"title and description", Embed{Title: "abc", Description: "de"}, 5},
		{"multibyte counts code points", Embed{Title: "héllo", Description: "日本"}, 7},
		{
			name: "fields footer author",
			embed: Embed{
				Fields: []Field{{Name: "ab", Value: "cde"}, {Name: "f", Value: "g"}},
				Footer: &Footer{Text: "foot", IconURL: "https://example.com/i.png"},
				Author: &Author{Name: "me", URL: "https://example.com"},
			},
			want: 13,
		},
		{
			name:  "urls and timestamp excluded",
			embed: Embed{URL: "https://example.com", Timestamp: "2024-01-01T00:00:00Z", Image: &Media{URL: "https://example.com/x.png"}},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.embed.Length(); got != tt.want {
				t.Errorf("Length() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEmbedClone(t *testing.T) {
	color := 0x123456
	orig := Embed{
		Title:     "t",
		Color:     &color,
		Footer:    &Footer{Text: "f"},
		Image:     &Media{URL: "https://example.com/a.png"},
		Thumbnail: &Media{URL: "attachment://b.png"},
		Author:    &Author{Name: "a"},
		Fields:    []Field{{Name: "n", Value: "v"}},
	}

	c := orig.clone()
	if !reflect.DeepEqual(c, orig) {
		t.Fatalf("clone() = %+v, want %+v", c, orig)
	}

	*c.Color = 0
	c.Footer.Text = "changed"
	c.Image.URL = "changed"
	c.Thumbnail.URL = "changed"
	c.Author.Name = "changed"
	c.Fields[0].Name = "changed"

	if *orig.Color != 0x123456 || orig.Footer.Text != "f" || orig.Image.URL != "https://example.com/a.png" ||
		orig.Thumbnail.URL != "attachment://b.png" || orig.Author.Name != "a" || orig.Fields[0].Name != "n" {
		t.Errorf("clone shares memory with original: %+v", orig)
	}
}

func TestEmbedJSON(t *testing.T) {
	color := 0
	embed := Embed{
		Type:   EmbedTypeRich,
		Color:  &color,
		Footer: &Footer{Text: "f", IconURL: "attachment://icon.png"},
		Fields: []Field{{Name: "n", Value: "v"}},
	}

	data, err := json.Marshal(embed)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got := string(data)

	for _, want := range []string{`"type":"rich"`, `"color":0`, `"icon_url":"attachment://icon.png"`, `"fields":[{"name":"n","value":"v"}]`} {
		if !strings.Contains(got, want) {
			t.Errorf("Marshal() = %s, missing %s", got, want)
		}
	}
	for _, absent := range []string{`"title"`, `"description"`, `"image"`, `"author"`, `"inline"`} {
		if strings.Contains(got, absent) {
			t.Errorf("Marshal() = %s, should omit %s", got, absent)
		}
	}
}
