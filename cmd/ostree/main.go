/*
Command ostree loads key files into an order-statistics tree and answers
positional queries on them.

	ostree load  keys.txt          # count, height, smallest and largest key
	ostree kth   keys.txt 17       # the 17th smallest key
	ostree rank  keys.txt walrus   # number of keys <= "walrus"
	ostree range keys.txt a m      # number of keys in [a, m]
	ostree print keys.txt          # sideways tree dump
	ostree dot   keys.txt | dot -Tsvg > tree.svg
	ostree check keys.txt          # verify the tree's invariants

Key files hold one key per line. With --numeric, keys are decimal integers.
Defaults are read from $HOME/.ostree.yaml, if present.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) Norbert Pillmayer. All rights reserved.

Please refer to the License file in the repository root.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/ostree"
	"github.com/npillmayer/ostree/console"
	"github.com/npillmayer/ostree/keyfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// app carries settings shared by all sub-commands.
type app struct {
	configPath string
	config     *Config
}

// keyType bundles loading and parsing for one kind of key.
type keyType[K any] struct {
	load  func(string, ...keyfile.Option) (*ostree.Tree[K], error)
	parse func(string) (K, error)
}

var stringKeys = keyType[string]{
	load:  keyfile.Load,
	parse: func(s string) (string, error) { return s, nil },
}

var intKeys = keyType[int64]{
	load:  keyfile.LoadInts,
	parse: keyfile.ParseInt,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "ostree",
		Short:         "Order-statistics queries on key files",
		Long:          "ostree loads a file with one key per line into a balanced tree and answers rank and select queries.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $HOME/"+configName+")")
	flags.Bool("numeric", false, "load keys as decimal integers")
	flags.Bool("progress", false, "show a progress bar while loading")
	flags.String("trace", "", "trace level [debug|info|error]")
	flags.Int("indent", 0, "indent per tree level for print (0 fits the terminal)")

	cmdLoad := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a key file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.Numeric {
				return summary(a, cmd.OutOrStdout(), intKeys, args[0])
			}
			return summary(a, cmd.OutOrStdout(), stringKeys, args[0])
		},
	}
	cmdKth := &cobra.Command{
		Use:   "kth <file> <k>",
		Short: "Print the k-th smallest key (1-based)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rank must be an integer: %w", err)
			}
			if a.config.Numeric {
				return kth(a, cmd.OutOrStdout(), intKeys, args[0], k)
			}
			return kth(a, cmd.OutOrStdout(), stringKeys, args[0], k)
		},
	}
	cmdRank := &cobra.Command{
		Use:   "rank <file> <key>",
		Short: "Print the number of keys smaller than or equal to key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.Numeric {
				return rank(a, cmd.OutOrStdout(), intKeys, args[0], args[1])
			}
			return rank(a, cmd.OutOrStdout(), stringKeys, args[0], args[1])
		},
	}
	cmdRange := &cobra.Command{
		Use:   "range <file> <lo> <hi>",
		Short: "Print the number of keys between lo and hi, inclusive",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.Numeric {
				return countRange(a, cmd.OutOrStdout(), intKeys, args[0], args[1], args[2])
			}
			return countRange(a, cmd.OutOrStdout(), stringKeys, args[0], args[1], args[2])
		},
	}
	cmdPrint := &cobra.Command{
		Use:   "print <file>",
		Short: "Print the tree sideways, with balance factors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.Numeric {
				return printTree(a, cmd.OutOrStdout(), intKeys, args[0])
			}
			return printTree(a, cmd.OutOrStdout(), stringKeys, args[0])
		},
	}
	cmdDot := &cobra.Command{
		Use:   "dot <file>",
		Short: "Write the tree in Graphviz DOT format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.Numeric {
				return dot(a, cmd.OutOrStdout(), intKeys, args[0])
			}
			return dot(a, cmd.OutOrStdout(), stringKeys, args[0])
		},
	}
	cmdCheck := &cobra.Command{
		Use:   "check <file>",
		Short: "Load a key file and verify the tree's invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.Numeric {
				return check(a, cmd.OutOrStdout(), intKeys, args[0])
			}
			return check(a, cmd.OutOrStdout(), stringKeys, args[0])
		},
	}
	rootCmd.AddCommand(cmdLoad, cmdKth, cmdRank, cmdRange, cmdPrint, cmdDot, cmdCheck)
	return rootCmd
}

// setup reads the configuration, applies flags on top of it and installs
// tracing.
func (a *app) setup(cmd *cobra.Command) error {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("numeric") {
		config.Numeric, _ = flags.GetBool("numeric")
	}
	if flags.Changed("progress") {
		config.Progress, _ = flags.GetBool("progress")
	}
	if flags.Changed("trace") {
		config.Tracing, _ = flags.GetString("trace")
	}
	if flags.Changed("indent") {
		config.Indent, _ = flags.GetInt("indent")
	}
	if err = config.validate(); err != nil {
		return err
	}
	a.config = config
	//
	gtrace.CoreTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.TraceLevelFromString(config.Tracing)
	gtrace.CoreTracer.SetTraceLevel(level)
	tracing.Select("ostree").SetTraceLevel(level)
	return nil
}

func loadTree[K any](a *app, kt keyType[K], file string) (*ostree.Tree[K], error) {
	var opts []keyfile.Option
	if a.config.Progress {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("loading "+file),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		inserted := 0
		opts = append(opts,
			keyfile.ProgressEvery(256),
			keyfile.Subscribe(func(p keyfile.Progress) {
				bar.Add(p.Keys - inserted)
				inserted = p.Keys
				if p.Done {
					if p.Err != nil {
						bar.Describe("failed")
					}
					bar.Finish()
				}
			}))
	}
	return kt.load(file, opts...)
}

func summary[K any](a *app, w io.Writer, kt keyType[K], file string) error {
	tree, err := loadTree(a, kt, file)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "keys:   %d\n", tree.Len())
	fmt.Fprintf(w, "height: %d\n", tree.Height())
	if lo, ok := tree.Min(); ok {
		hi, _ := tree.Max()
		fmt.Fprintf(w, "min:    %v\n", lo)
		fmt.Fprintf(w, "max:    %v\n", hi)
	}
	return nil
}

func kth[K any](a *app, w io.Writer, kt keyType[K], file string, k int) error {
	tree, err := loadTree(a, kt, file)
	if err != nil {
		return err
	}
	key, err := tree.At(k)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, key)
	return nil
}

func rank[K any](a *app, w io.Writer, kt keyType[K], file, arg string) error {
	key, err := kt.parse(arg)
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", arg, err)
	}
	tree, err := loadTree(a, kt, file)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, tree.GetNumSmallerOrEqualTo(key))
	return nil
}

func countRange[K any](a *app, w io.Writer, kt keyType[K], file, loArg, hiArg string) error {
	lo, err := kt.parse(loArg)
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", loArg, err)
	}
	hi, err := kt.parse(hiArg)
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", hiArg, err)
	}
	tree, err := loadTree(a, kt, file)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, tree.CountRange(lo, hi))
	return nil
}

func printTree[K any](a *app, w io.Writer, kt keyType[K], file string) error {
	tree, err := loadTree(a, kt, file)
	if err != nil {
		return err
	}
	p := console.NewPrinter(nil)
	p.Context = uax11.ContextFromEnvironment()
	if a.config.Indent > 0 {
		p.Indent = a.config.Indent
	} else {
		p.Indent = console.IndentFromTerminal(tree.Height())
	}
	return console.Fprint(w, tree, p)
}

func dot[K any](a *app, w io.Writer, kt keyType[K], file string) error {
	tree, err := loadTree(a, kt, file)
	if err != nil {
		return err
	}
	ostree.Tree2Dot(tree, w)
	return nil
}

func check[K any](a *app, w io.Writer, kt keyType[K], file string) error {
	tree, err := loadTree(a, kt, file)
	if err != nil {
		return err
	}
	if err = tree.Check(); err != nil {
		return err
	}
	fmt.Fprintf(w, "ok: %d keys, height %d\n", tree.Len(), tree.Height())
	return nil
}
