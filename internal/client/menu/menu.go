// Package menu holds the sidebar navigation tree.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCycle is returned when an item is reachable from itself.
var ErrCycle = errors.New("menu contains a cycle")

// TypeExternal marks an item whose To is an outside URL.
const TypeExternal = "external"

// Item is one sidebar entry. A Header item is a section caption; a
// Divider item is a separator; anything else is a link.
type Item struct {
	Header      string  `json:"header,omitempty"`
	Title       string  `json:"title,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	To          string  `json:"to,omitempty"`
	Divider     bool    `json:"divider,omitempty"`
	Chip        string  `json:"chip,omitempty"`
	ChipColor   string  `json:"chipColor,omitempty"`
	ChipVariant string  `json:"chipVariant,omitempty"`
	ChipIcon    string  `json:"chipIcon,omitempty"`
	Children    []*Item `json:"children,omitempty"`
	Disabled    bool    `json:"disabled,omitempty"`
	Type        string  `json:"type,omitempty"`
	SubCaption  string  `json:"subCaption,omitempty"`
}

func (i *Item) External() bool {
	return i.Type == TypeExternal
}

// Sidebar returns a fresh copy of the dashboard sidebar.
func Sidebar() []*Item {
	return []*Item{
		{Header: "Navigation"},
		{Title: "Dashboard", Icon: "mdi-eye", To: "/dashboard"},
		{Header: "Authentication"},
		{Title: "Login", Icon: "mdi-eye", To: "/auth/login"},
		{Title: "Register", Icon: "mdi-eye", To: "/auth/register"},
		{Header: "Utilities"},
		{Title: "Typography", Icon: "mdi-eye", To: "/typography"},
		{Title: "Color", Icon: "mdi-eye", To: "/colors"},
		{Title: "Shadow", Icon: "mdi-eye", To: "/shadow"},
		{Title: "Ant Icons", Icon: "mdi-eye", To: "/icon/ant"},
		{Header: "Support"},
		{Title: "Sample Page", Icon: "mdi-eye", To: "/sample-page"},
		{
			Title:       "Documentation",
			Icon:        "mdi-eye",
			To:          "https://codedthemes.gitbook.io/mantis-vuetify/",
			Type:        TypeExternal,
			Chip:        "gitbook",
			ChipColor:   "secondary",
			ChipVariant: "flat",
		},
	}
}

// Validate rejects trees where an item appears among its own descendants.
func Validate(items []*Item) error {
	onPath := make(map[*Item]bool)

	var visit func(it *Item) error
	visit = func(it *Item) error {
		if onPath[it] {
			return fmt.Errorf("%w at %q", ErrCycle, it.Title)
		}
		onPath[it] = true
		for _, c := range it.Children {
			if err := visit(c); err != nil {
				return err
			}
		}
		delete(onPath, it)
		return nil
	}

	for _, it := range items {
		if err := visit(it); err != nil {
			return err
		}
	}
	return nil
}

// Walk calls fn for every item depth first with its nesting depth.
// Returning false from fn skips the item's children. Walk assumes a
// validated tree.
func Walk(items []*Item, fn func(it *Item, depth int) bool) {
	var walk func(items []*Item, depth int)
	walk = func(items []*Item, depth int) {
		for _, it := range items {
			if fn(it, depth) {
				walk(it.Children, depth+1)
			}
		}
	}
	walk(items, 0)
}

// Links returns the internal paths the menu points at.
func Links(items []*Item) []string {
	var out []string
	Walk(items, func(it *Item, _ int) bool {
		if it.To != "" && !it.External() {
			out = append(out, it.To)
		}
		return true
	})
	return out
}

// Render prints the tree. The item matching active is marked.
func Render(w io.Writer, items []*Item, active string) error {
	var err error
	Walk(items, func(it *Item, depth int) bool {
		if err != nil {
			return false
		}
		indent := strings.Repeat("  ", depth)
		switch {
		case it.Header != "":
			_, err = fmt.Fprintf(w, "%s%s\n", indent, strings.ToUpper(it.Header))
		case it.Divider:
			_, err = fmt.Fprintf(w, "%s----\n", indent)
		default:
			_, err = fmt.Fprintf(w, "%s%s\n", indent, formatLink(it, active))
		}
		return true
	})
	return err
}

func formatLink(it *Item, active string) string {
	var b strings.Builder
	if it.To == active && active != "" {
		b.WriteString("> ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(it.Title)
	if it.To != "" {
		b.WriteString("  ")
		b.WriteString(it.To)
	}
	if it.Chip != "" {
		fmt.Fprintf(&b, " [%s]", it.Chip)
	}
	if it.SubCaption != "" {
		fmt.Fprintf(&b, " (%s)", it.SubCaption)
	}
	if it.Disabled {
		b.WriteString(" (disabled)")
	}
	return b.String()
}
