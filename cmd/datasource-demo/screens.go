package main

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"go.llib.dev/datasource/adapter/memory"
	"go.llib.dev/datasource/adapter/yamlsource"
	"go.llib.dev/datasource/pkg/asciiview"
	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Screen is an entry of the root list.
type Screen struct {
	Name    string
	Summary string
}

func (s Screen) String() string { return fmt.Sprintf("%s - %s", s.Name, s.Summary) }

var Screens = []Screen{
	{Name: "list", Summary: "a flat list of items"},
	{Name: "sectioned", Summary: "items in explicitly declared sections"},
	{Name: "grouped", Summary: "items grouped into sections by their initial"},
	{Name: "yaml", Summary: "sections loaded from a YAML file"},
}

func NewMux() *cli.Mux {
	var m cli.Mux
	m.Handle("root", RootCommand{})
	m.Handle("list", ListCommand{})
	m.Handle("sectioned", SectionedCommand{})
	m.Handle("grouped", GroupedCommand{})
	m.Handle("yaml", YAMLCommand{})
	return &m
}

type RootCommand struct{}

func (cmd RootCommand) Summary() string { return "list the available screens" }

func (cmd RootCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	root := datasource.EraseList[Screen](memory.NewList(Screens...))
	render[Screen, datasource.NoSection](w, r, "root", datasource.SectionedList[Screen]{List: root}, asciiview.Config{Title: "screens"})
}

type ListCommand struct{}

func (cmd ListCommand) Summary() string { return "render a flat list" }

func (cmd ListCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	list := datasource.EraseList[string](memory.NewList("apple", "banana", "cherry", "damson"))
	render[string, datasource.NoSection](w, r, "list", datasource.SectionedList[string]{List: list}, asciiview.Config{Title: "fruits"})
}

type SectionedCommand struct{}

func (cmd SectionedCommand) Summary() string { return "render a sectioned list" }

func (cmd SectionedCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	render[string, string](w, r, "sectioned", Catalog(), asciiview.Config{Title: "catalog"})
}

// GroupedCommand groups the words given as arguments,
// or a built-in word list when no argument is given.
type GroupedCommand struct{}

func (cmd GroupedCommand) Summary() string { return "render words grouped by their initial" }

func (cmd GroupedCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	words := r.Args
	if len(words) == 0 {
		words = []string{"avocado", "beet", "apricot", "basil", "cumin", "broccoli"}
	}
	render[string, string](w, r, "grouped", Glossary(words...), asciiview.Config{Title: "glossary"})
}

type YAMLCommand struct {
	File   string `flag:"file,f" env:"DATASOURCE_FILE" required:"true" desc:"path to the YAML document"`
	Strict bool   `flag:"strict" env:"DATASOURCE_STRICT" default:"false" desc:"fail on unknown fields"`
}

func (cmd YAMLCommand) Summary() string { return "render a YAML data source" }

func (cmd YAMLCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	var opts []yamlsource.Option
	if cmd.Strict {
		opts = append(opts, yamlsource.Strict())
	}
	src, err := yamlsource.Load[string](r.Context(), cmd.File, opts...)
	if err != nil {
		logger.Error(r.Context(), "failed to load the YAML data source", logging.Field("file", cmd.File), logging.ErrField(err))
		fail(w, err)
		return
	}
	render[string, yamlsource.Section](w, r, "yaml", datasource.EraseSectioned[string, yamlsource.Section](src), asciiview.Config{
		Title: cmd.File,
		SectionLabel: func(_ int, section any) string {
			return section.(yamlsource.Section).Title
		},
	})
}

// Catalog is the sample source of the sectioned screen.
func Catalog() datasource.AnySectioned[string, string] {
	src := &memory.Sectioned[string, string]{}
	fruits := src.AddSection("fruits", "apple", "pear", "plum")
	src.SetHeader(fruits, "Fruits")
	src.SetFooter(fruits, "priced per kg")
	vegetables := src.AddSection("vegetables", "carrot")
	src.SetHeader(vegetables, "Vegetables")
	return datasource.EraseSectioned[string, string](src)
}

// Glossary is the sample source of the grouped screen.
// It has the same erased type as Catalog, while its concrete type is a different one.
func Glossary(words ...string) datasource.AnySectioned[string, string] {
	src := memory.NewGrouped(func(word string) string {
		r, _ := utf8.DecodeRuneInString(word)
		if r == utf8.RuneError {
			return "#"
		}
		return string(unicode.ToUpper(r))
	}, words...)
	src.Title = func(initial string) string { return initial }
	return datasource.EraseSectioned[string, string](src)
}

func render[Item, Section any](w cli.ResponseWriter, r *cli.Request, screen string, src datasource.SectionedSource[Item, Section], opts ...asciiview.Option) {
	ctx := r.Context()
	logger.Info(ctx, "rendering screen",
		logging.Field("screen", screen),
		logging.Field("sections", src.SectionCount()),
		logging.Field("items", src.ItemCount()))

	if err := datasource.Validate(src); err != nil {
		logger.Warn(ctx, "data source reports inconsistent counts", logging.ErrField(err))
	}

	if err := asciiview.Render(w, src, opts...); err != nil {
		logger.Error(ctx, "failed to render screen", logging.Field("screen", screen), logging.ErrField(err))
		fail(w, err)
	}
}

// fail reports the error on the error output when the response has one.
func fail(w cli.ResponseWriter, err error) {
	w.ExitCode(cli.ExitCodeError)
	var out io.Writer = w
	if ew, ok := w.(cli.ErrorWriter); ok && ew.Stderr() != nil {
		out = ew.Stderr()
	}
	fmt.Fprintln(out, err.Error())
}
