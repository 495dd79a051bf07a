package embedconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader decodes embed documents.
type Loader struct {
	logger StructuredLogger
	strict bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for decoding diagnostics.
func WithLogger(logger StructuredLogger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithStrict controls whether unknown keys are rejected. Defaults to true.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// NewLoader creates a Loader with the given options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		logger: NopLogger{},
		strict: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// multiProbe detects whether a document uses the multi-embed layout.
type multiProbe struct {
	Embeds yaml.Node `yaml:"embeds"`
}

// Parse decodes a document. Single-embed documents are returned as a File
// holding one definition.
func (l *Loader) Parse(data []byte) (*File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var probe multiProbe
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("embedconfig: parse: %w", err)
	}

	file := &File{}
	if probe.Embeds.Kind != 0 {
		if err := l.decode(data, file); err != nil {
			return nil, err
		}
		l.logger.Debug("decoded embed document", "layout", "multi", "embeds", len(file.Embeds))
	} else {
		var d Definition
		if err := l.decode(data, &d); err != nil {
			return nil, err
		}
		file.Embeds = []Definition{d}
		l.logger.Debug("decoded embed document", "layout", "single", "embeds", 1)
	}

	for i, d := range file.Embeds {
		l.logger.Debug("decoded embed definition", "index", i, "title", d.Title, "fields", len(d.Fields))
	}
	return file, nil
}

func (l *Loader) decode(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(l.strict)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyDocument
		}
		return fmt.Errorf("embedconfig: parse: %w", err)
	}

	// Later documents are only allowed if they are empty, as after a
	// trailing "---".
	for {
		var extra yaml.Node
		err := dec.Decode(&extra)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("embedconfig: parse: %w", err)
		}
		if content := documentContent(&extra); content != nil {
			return fmt.Errorf("%w: line %d", ErrMultipleDocuments, content.Line)
		}
	}
}

// documentContent returns the root of a decoded document, or nil if the
// document is empty.
func documentContent(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" && n.Value == "" {
		return nil
	}
	return n
}

// Load reads and decodes a document from r.
func (l *Loader) Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("embedconfig: read: %w", err)
	}
	return l.Parse(data)
}

// LoadFile reads and decodes the document at path.
func (l *Loader) LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("embedconfig: read %s: %w", path, err)
	}
	l.logger.Debug("read embed document", "path", path, "bytes", len(data))
	return l.Parse(data)
}

// Parse decodes a document with the default strict loader.
func Parse(data []byte) (*File, error) {
	return NewLoader().Parse(data)
}

// Load decodes a document from r with the default strict loader.
func Load(r io.Reader) (*File, error) {
	return NewLoader().Load(r)
}

// LoadFile decodes the document at path with the default strict loader.
func LoadFile(path string) (*File, error) {
	return NewLoader().LoadFile(path)
}
