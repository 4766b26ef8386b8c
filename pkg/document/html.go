package document

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formguard/pkg/guard"
)

// HTML is a parsed page. Values entered with Set take precedence over the
// values present in the markup.
type HTML struct {
	root    *html.Node
	entered map[guard.Control]string
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*HTML, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("document: parse html: %w", err)
	}
	return &HTML{root: root, entered: make(map[guard.Control]string)}, nil
}

// ParseString is Parse over an in-memory page.
func ParseString(page string) (*HTML, error) {
	return Parse(strings.NewReader(page))
}

// Value implements guard.Document. The first matching element in document
// order wins.
func (d *HTML) Value(kind guard.ControlKind, name string) (string, bool) {
	if d == nil {
		return "", false
	}
	node := d.find(kind, name)
	if node == nil {
		return "", false
	}
	if value, ok := d.entered[guard.Control{Kind: kind, Name: name}]; ok {
		return value, true
	}
	switch kind {
	case guard.ControlSelect:
		return selectValue(node), true
	default:
		value, _ := attr(node, "value")
		return value, true
	}
}

// Set simulates user entry into a control. Select values must match one of
// the select's options.
func (d *HTML) Set(kind guard.ControlKind, name, value string) error {
	node := d.find(kind, name)
	if node == nil {
		return fmt.Errorf("%w: %s[name=%q]", ErrNoControl, kind, name)
	}
	if kind == guard.ControlSelect && !containsString(optionValues(node), value) {
		return fmt.Errorf("%w: %q for select %q", ErrNoOption, value, name)
	}
	d.entered[guard.Control{Kind: kind, Name: name}] = value
	return nil
}

// Options returns the option values of the named select, in document order.
func (d *HTML) Options(name string) ([]string, error) {
	node := d.find(guard.ControlSelect, name)
	if node == nil {
		return nil, fmt.Errorf("%w: select[name=%q]", ErrNoControl, name)
	}
	return optionValues(node), nil
}

func (d *HTML) find(kind guard.ControlKind, name string) *html.Node {
	var tag atom.Atom
	switch kind {
	case guard.ControlInput:
		tag = atom.Input
	case guard.ControlSelect:
		tag = atom.Select
	default:
		return nil
	}

	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == tag {
			if value, ok := attr(n, "name"); ok && value == name {
				found = n
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(d.root)
	return found
}

// selectValue follows the browser selectedness rules: the last option marked
// selected wins; otherwise a drop-down falls back to its first enabled option
// and a list box (multiple, or size above 1) has no value.
func selectValue(sel *html.Node) string {
	opts := options(sel)
	if len(opts) == 0 {
		return ""
	}

	multiple := hasAttr(sel, "multiple")
	var chosen *html.Node
	for _, opt := range opts {
		if !hasAttr(opt, "selected") {
			continue
		}
		chosen = opt
		if multiple {
			// select.value reports the first selected option of a multi-select.
			break
		}
	}
	if chosen != nil {
		return optionValue(chosen)
	}

	if multiple || displaySize(sel) > 1 {
		return ""
	}
	for _, opt := range opts {
		if !optionDisabled(opt) {
			return optionValue(opt)
		}
	}
	return ""
}

func displaySize(sel *html.Node) int {
	raw, ok := attr(sel, "size")
	if !ok {
		return 1
	}
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || size < 1 {
		return 1
	}
	return size
}

func optionDisabled(opt *html.Node) bool {
	if hasAttr(opt, "disabled") {
		return true
	}
	parent := opt.Parent
	return parent != nil && parent.Type == html.ElementNode && parent.DataAtom == atom.Optgroup && hasAttr(parent, "disabled")
}

func optionValues(sel *html.Node) []string {
	opts := options(sel)
	out := make([]string, 0, len(opts))
	for _, opt := range opts {
		out = append(out, optionValue(opt))
	}
	return out
}

func options(sel *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			switch child.DataAtom {
			case atom.Option:
				out = append(out, child)
			case atom.Optgroup:
				walk(child)
			}
		}
	}
	walk(sel)
	return out
}

func optionValue(opt *html.Node) string {
	if value, ok := attr(opt, "value"); ok {
		return value
	}
	return strings.Join(strings.Fields(textContent(opt)), " ")
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
