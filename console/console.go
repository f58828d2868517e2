package console

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ostree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultIndent is the number of en positions a tree level is indented by.
const DefaultIndent = 5

// Unbalanced is the palette key for nodes violating the AVL condition.
// Other palette keys are balance factors -1, 0 and +1.
const Unbalanced = 2

// Printer outputs trees sideways to a console with a fixed width font.
type Printer struct {
	Indent  int            // indentation per tree level, in en positions
	Context *uax11.Context // context for measuring key labels
	colors  map[int]*color.Color
}

// NewPrinter creates a printer. colors maps balance factors to colors and
// may contain just a subset of them; if it is nil, a default palette is used.
func NewPrinter(colors map[int]*color.Color) *Printer {
	p := &Printer{
		Indent:  DefaultIndent,
		Context: uax11.LatinContext,
	}
	if colors == nil {
		p.colors = makeDefaultPalette()
	} else {
		p.colors = colors
	}
	return p
}

func makeDefaultPalette() map[int]*color.Color {
	palette := map[int]*color.Color{
		-1:         color.New(color.FgYellow),
		0:          color.New(color.FgGreen),
		1:          color.New(color.FgYellow),
		Unbalanced: color.New(color.FgRed, color.Bold),
	}
	return palette
}

var setupGraphemes sync.Once

type line struct {
	depth   int
	label   string
	width   int
	balance int
}

// Fprint writes tree to w, using printer p. If p is nil, a default printer
// is used.
func Fprint[K any](w io.Writer, tree *ostree.Tree[K], p *Printer) error {
	if p == nil {
		p = NewPrinter(nil)
	}
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	lines := make([]line, 0, tree.Len())
	maxw := 0
	var collect func(n *ostree.Node[K], depth int)
	collect = func(n *ostree.Node[K], depth int) {
		if n == nil {
			return
		}
		collect(n.Right(), depth+1)
		label := fmt.Sprintf("%v(%d)", n.Key(), n.Balance())
		l := line{depth: depth, label: label, width: p.width(label), balance: n.Balance()}
		maxw = max(maxw, l.width)
		lines = append(lines, l)
		collect(n.Left(), depth+1)
	}
	collect(tree.Root(), 0)
	tracer().Debugf("console: printing %d nodes, label width %d", len(lines), maxw)
	for _, l := range lines {
		pad := strings.Repeat(" ", l.depth*p.indent()+maxw-l.width)
		if _, err := io.WriteString(w, pad); err != nil {
			return err
		}
		if err := p.styledLabel(l, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Print outputs a tree to stdout, with indentation adapted to the terminal.
func Print[K any](tree *ostree.Tree[K]) error {
	p := NewPrinter(nil)
	p.Indent = IndentFromTerminal(tree.Height())
	p.Context = uax11.ContextFromEnvironment()
	return Fprint(os.Stdout, tree, p)
}

func (p *Printer) indent() int {
	if p.Indent <= 0 {
		return DefaultIndent
	}
	return p.Indent
}

func (p *Printer) width(label string) int {
	ctx := p.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(label), ctx)
}

func (p *Printer) styledLabel(l line, w io.Writer) error {
	key := l.balance
	if key < -1 || key > 1 {
		key = Unbalanced
	}
	if c, ok := p.colors[key]; ok {
		_, err := c.Fprint(w, l.label)
		return err
	}
	_, err := io.WriteString(w, l.label)
	return err
}

// --- Config for terminals --------------------------------------------------

// IndentFromTerminal is a simple helper for choosing an indentation per tree
// level. It checks whether stdout is a terminal, and if so it reads the
// terminal's width and shrinks the indentation until a tree of the given
// height fits.
func IndentFromTerminal(height int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultIndent
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return DefaultIndent
	}
	// leave room for labels
	indent := (w - 20) / (max(height, 0) + 1)
	if indent > DefaultIndent {
		indent = DefaultIndent
	} else if indent < 1 {
		indent = 1
	}
	tracer().P("console", "terminal").Infof("setting indent to %d en", indent)
	return indent
}
