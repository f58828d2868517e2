package ostree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("ostree: invalid configuration")
	// ErrRankOutOfRange signals a rank outside of [1, size].
	ErrRankOutOfRange = errors.New("ostree: rank out of range")
	// ErrKeyNotFound signals that a key is not stored in the tree.
	ErrKeyNotFound = errors.New("ostree: key not found")
	// ErrNodeNotInTree signals that a node handle does not belong to the tree
	// it has been passed to.
	ErrNodeNotInTree = errors.New("ostree: node does not belong to tree")
	// ErrCorruptTree signals a violated structural invariant. This is always
	// a programming error.
	ErrCorruptTree = errors.New("ostree: corrupt tree")
)
