/*
Package keyfile provides API helpers to bulk-load keys from text files into
order-statistics trees.

Key files are line oriented: every line holds exactly one key. Lines are read
by a background goroutine and handed over to the loading goroutine, which is
the only one to touch the tree. Clients interested in the progress of large
loads may subscribe to progress messages, which are broadcast while loading.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) Norbert Pillmayer. All rights reserved.

Please refer to the License file in the repository root.
*/
package keyfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ostree'
func tracer() tracing.Trace {
	return tracing.Select("ostree")
}

var (
	// ErrNotRegular signals that a key file is not a regular file.
	ErrNotRegular = errors.New("keyfile: not a regular file")
	// ErrMalformedLine signals a line which cannot be parsed as a key.
	ErrMalformedLine = errors.New("keyfile: malformed line")
)
