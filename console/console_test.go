package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/ostree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func traceToTest(t *testing.T) func() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gotestingadapter.GetAdapter(t)))
	tracing.Select("ostree").SetTraceLevel(tracing.LevelDebug)
	return func() {
		tracing.SetTraceSelector(nil)
	}
}

func TestPrintSmallTree(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	color.NoColor = true
	//
	tree := ostree.NewOrdered[int]()
	tree.InsertAll(1, 2, 3)
	var buf bytes.Buffer
	p := NewPrinter(nil)
	p.Indent = 4
	if err := Fprint(&buf, tree, p); err != nil {
		t.Fatal(err)
	}
	expected := "    3(0)\n2(0)\n    1(0)\n"
	if buf.String() != expected {
		t.Errorf("expected\n%s\nhave\n%s", expected, buf.String())
	}
}

func TestPrintAlignsLabels(t *testing.T) {
	color.NoColor = true
	tree := ostree.NewOrdered[int]()
	tree.InsertAll(10, 9, 11, 12)
	var buf bytes.Buffer
	if err := Fprint(&buf, tree, &Printer{Indent: 2}); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", buf.String())
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, have %d", len(lines))
	}
	// labels are right-aligned within their level
	if lines[0] != "    12(0)" || lines[1] != "  11(1)" || lines[2] != "10(1)" || lines[3] != "   9(0)" {
		t.Errorf("unexpected layout %q", lines)
	}
}

func TestPrintEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, ostree.NewOrdered[string](), nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<empty>\n" {
		t.Errorf("unexpected output for empty tree: %q", buf.String())
	}
}

func TestIndentFromTerminalDefault(t *testing.T) {
	// go test does not run attached to a terminal
	if i := IndentFromTerminal(10); i < 1 || i > DefaultIndent {
		t.Errorf("indent %d out of range", i)
	}
}
