// Package asciiview renders sectioned data sources as an ASCII tree,
// which is handy in CLI tools and in test failure messages.
package asciiview

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"

	"go.llib.dev/datasource/port/datasource"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

type Config struct {
	// Title is the label of the root node.
	//
	// Default: "items"
	Title string
	// ItemLabel formats an item.
	//
	// Default: fmt.Sprint
	ItemLabel func(item any) string
	// SectionLabel formats a section that has no header title.
	//
	// Default: "section #<index>"
	SectionLabel func(index int, section any) string
}

func (c Config) Configure(o *Config) {
	o.Title = zerokit.Coalesce(c.Title, o.Title)
	o.ItemLabel = zerokit.Coalesce(c.ItemLabel, o.ItemLabel)
	o.SectionLabel = zerokit.Coalesce(c.SectionLabel, o.SectionLabel)
}

type Option = option.Option[Config]

type node struct {
	Label    string   `asciitree:"label"`
	Props    []string `asciitree:"properties"`
	Children []node   `asciitree:"children"`
}

// Render writes the tree representation of the data source into w.
// Each section is a node, labelled with its header title when it has one,
// its footer title is shown as a property, and its items are the children.
func Render[Item, Section any](w io.Writer, src datasource.SectionedSource[Item, Section], opts ...Option) error {
	_, err := fmt.Fprint(w, Sprint(src, opts...))
	return err
}

func Sprint[Item, Section any](src datasource.SectionedSource[Item, Section], opts ...Option) string {
	return asciitree.RenderFancy(toTree(src, option.ToConfig[Config](opts)))
}

func toTree[Item, Section any](src datasource.SectionedSource[Item, Section], c Config) node {
	var (
		sections = src.Sections()
		root     = node{
			Label: zerokit.Coalesce(c.Title, "items"),
			Props: []string{fmt.Sprintf("sections: %d", src.SectionCount()), fmt.Sprintf("items: %d", src.ItemCount())},
		}
	)
	for i := 0; i < src.SectionCount(); i++ {
		sec := node{Label: sectionLabel(c, src, sections, i)}
		if footer, ok := src.FooterTitle(i); ok {
			sec.Props = append(sec.Props, "footer: "+footer)
		}
		for j := 0; j < src.ItemCountIn(i); j++ {
			item, ok := src.Item(datasource.IndexPath{Section: i, Item: j})
			if !ok {
				continue
			}
			sec.Children = append(sec.Children, node{Label: itemLabel(c, item)})
		}
		root.Children = append(root.Children, sec)
	}
	return root
}

func sectionLabel[Item, Section any](c Config, src datasource.SectionedSource[Item, Section], sections []Section, i int) string {
	if header, ok := src.HeaderTitle(i); ok {
		return header
	}
	if c.SectionLabel != nil && i < len(sections) {
		return c.SectionLabel(i, sections[i])
	}
	return fmt.Sprintf("section #%d", i)
}

func itemLabel(c Config, item any) string {
	if c.ItemLabel != nil {
		return c.ItemLabel(item)
	}
	return fmt.Sprint(item)
}
