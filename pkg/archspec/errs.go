package archspec

import "errors"

var (
	// ErrNoNodes indicates a specification without architecture nodes.
	ErrNoNodes = errors.New("archspec: architecture has no nodes")

	// ErrDuplicateNode indicates two nodes sharing a name.
	ErrDuplicateNode = errors.New("archspec: duplicate node name")

	// ErrBadNode indicates a node without a name or class.
	ErrBadNode = errors.New("archspec: node needs a name and a class")
)
