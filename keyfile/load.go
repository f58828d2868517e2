package keyfile

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ostree"
)

// Some constants for loading defaults
const (
	defaultProgressEvery = 1024
	lineBufferSize       = 256
	maxLineLength        = 1048576
)

// Progress is broadcast to subscribers while a key file is loading.
type Progress struct {
	Lines int   // number of lines read so far
	Keys  int   // number of keys inserted so far
	Done  bool  // true for the final message of a load
	Err   error // error which terminated loading, if any
}

// Option configures a load.
type Option func(*config)

type config struct {
	every       int
	keepBlank   bool
	subscribers []func(Progress)
}

// ProgressEvery sets the number of keys between two progress messages.
func ProgressEvery(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.every = n
		}
	}
}

// KeepBlank makes blank lines count as (empty) keys instead of skipping them.
func KeepBlank() Option {
	return func(c *config) {
		c.keepBlank = true
	}
}

// Subscribe registers a callback for progress messages. Callbacks are called
// from a separate goroutine, in order, and have all been called when loading
// returns.
func Subscribe(fn func(Progress)) Option {
	return func(c *config) {
		if fn != nil {
			c.subscribers = append(c.subscribers, fn)
		}
	}
}

// keyFile represents a OS file which will be loaded into a tree.
type keyFile struct {
	path      string         // file name
	info      os.FileInfo    // result from Stat(path)
	file      *os.File       // file handle
	cast      *caster.Caster // broadcaster for progress messages
	lastError error          // remember last I/O error
}

type record struct {
	lineno int
	text   string
}

// Load reads a text file with one key per line and inserts all keys into a
// new tree. Trailing carriage returns are removed, blank lines are skipped
// unless option KeepBlank is given.
func Load(name string, opts ...Option) (*ostree.Tree[string], error) {
	tree := ostree.NewOrdered[string]()
	err := load(name, tree, func(s string) (string, error) { return s, nil }, opts)
	return tree, err
}

// LoadInts reads a text file with one decimal integer per line and inserts
// all of them into a new tree. Surrounding white space is ignored.
func LoadInts(name string, opts ...Option) (*ostree.Tree[int64], error) {
	tree := ostree.NewOrdered[int64]()
	err := load(name, tree, ParseInt, opts)
	return tree, err
}

// ParseInt parses a decimal 64-bit integer key, ignoring surrounding white
// space.
func ParseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// Into reads a key file into an existing tree, using parse to convert lines
// to keys.
func Into[K any](name string, tree *ostree.Tree[K], parse func(string) (K, error), opts ...Option) error {
	if tree == nil || parse == nil {
		return fmt.Errorf("%w: tree and parse function are required", ostree.ErrInvalidConfig)
	}
	return load(name, tree, parse, opts)
}

func load[K any](name string, tree *ostree.Tree[K], parse func(string) (K, error), opts []Option) error {
	cfg := config{every: defaultProgressEvery}
	for _, opt := range opts {
		opt(&cfg)
	}
	kf, err := openFile(name)
	if err != nil {
		return err
	}
	var wg sync.WaitGroup
	for _, fn := range cfg.subscribers {
		ch, ok := kf.cast.Sub(context.Background(), lineBufferSize)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(ch <-chan interface{}, fn func(Progress)) {
			defer wg.Done()
			for m := range ch {
				p := m.(Progress)
				fn(p)
				if p.Done {
					return
				}
			}
		}(ch, fn)
	}
	ctx, cancel := context.WithCancel(context.Background())
	lines := kf.startReading(ctx)
	progress := Progress{}
	for rec := range lines {
		progress.Lines = rec.lineno
		if rec.text == "" && !cfg.keepBlank {
			continue
		}
		key, perr := parse(rec.text)
		if perr != nil {
			err = fmt.Errorf("%w: %s:%d: %v", ErrMalformedLine, kf.path, rec.lineno, perr)
			break
		}
		tree.Insert(key)
		progress.Keys++
		if progress.Keys%cfg.every == 0 {
			kf.cast.Pub(progress)
		}
	}
	cancel()
	for range lines { // drain until the reader has stopped
	}
	if err == nil && kf.lastError != nil {
		err = kf.lastError
	}
	progress.Done, progress.Err = true, err
	kf.cast.Pub(progress)
	wg.Wait() // subscribers return after the final message
	kf.cast.Close()
	if err != nil {
		tracer().Errorf("key file %s: %v", kf.path, err)
		return err
	}
	tracer().Infof("loaded %d keys from %s, tree height %d", progress.Keys, kf.path, tree.Height())
	return nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*keyFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	kf := &keyFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages while keys are loaded
	}
	return kf, nil
}

// startReading scans the file line by line on a separate goroutine. The
// returned channel is closed when the file is exhausted, an I/O error occurs,
// or ctx is cancelled.
func (kf *keyFile) startReading(ctx context.Context) <-chan record {
	ch := make(chan record, lineBufferSize)
	tracer().Debugf("start reading %s (%d bytes)", kf.path, kf.info.Size())
	go func() {
		defer close(ch)
		defer kf.file.Close()
		scanner := bufio.NewScanner(kf.file)
		scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
		lineno := 0
		for scanner.Scan() {
			lineno++
			rec := record{lineno: lineno, text: strings.TrimSuffix(scanner.Text(), "\r")}
			select {
			case ch <- rec:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			kf.lastError = fmt.Errorf("error reading key file %s: %w", kf.path, err)
		}
	}()
	return ch
}
