// Package yamlsource loads a sectioned data source from a YAML document.
//
//	sections:
//	  - title: Fruits
//	    header: Fresh
//	    footer: priced per kg
//	    items: [apple, pear]
//
// Items are decoded into the Item type parameter,
// so any YAML decodable type can be used, including structs.
package yamlsource

import (
	"context"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"go.llib.dev/datasource/adapter/memory"
	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/port/option"
)

const ErrDecode errorkit.Error = "ErrDecode"

// Section is the section value of a YAML sourced data source.
type Section struct {
	Title string
}

// Source is what Decode produces.
// It is a regular in-memory sectioned source, so it can be further modified after loading.
type Source[Item any] = memory.Sectioned[Item, Section]

var _ datasource.SectionedSource[any, Section] = (*Source[any])(nil)

type Config struct {
	// Strict makes the decoding fail when the document has fields that are not known.
	Strict bool
}

func (c Config) Configure(o *Config) {
	o.Strict = c.Strict || o.Strict
}

type Option = option.Option[Config]

// Strict is a shorthand for Config{Strict: true}.
func Strict() Option { return Config{Strict: true} }

type document[Item any] struct {
	Sections []sectionDTO[Item] `yaml:"sections"`
}

type sectionDTO[Item any] struct {
	Title  string  `yaml:"title"`
	Header *string `yaml:"header"`
	Footer *string `yaml:"footer"`
	Items  []Item  `yaml:"items"`
}

// Decode reads a YAML document from the reader and turns it into a sectioned data source.
// An empty document results in a source without sections.
func Decode[Item any](ctx context.Context, r io.Reader, opts ...Option) (*Source[Item], error) {
	c := option.ToConfig[Config](opts)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(c.Strict)

	var doc document[Item]
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrDecode.Wrap(err)
	}

	src := &Source[Item]{}
	for _, dto := range doc.Sections {
		i := src.AddSection(Section{Title: dto.Title}, dto.Items...)
		if dto.Header != nil {
			src.SetHeader(i, *dto.Header)
		}
		if dto.Footer != nil {
			src.SetFooter(i, *dto.Footer)
		}
	}

	logger.Debug(ctx, "yaml data source decoded",
		logging.Field("sections", src.SectionCount()),
		logging.Field("items", src.ItemCount()))

	return src, nil
}

// Load decodes the YAML document found at the given path.
func Load[Item any](ctx context.Context, path string, opts ...Option) (_ *Source[Item], returnErr error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer errorkit.Finish(&returnErr, f.Close)
	src, err := Decode[Item](ctx, f, opts...)
	if err != nil {
		logger.Error(ctx, "failed to load yaml data source",
			logging.Field("path", path),
			logging.ErrField(err))
		return nil, err
	}
	return src, nil
}
