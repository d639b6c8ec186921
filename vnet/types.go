// Package vnet defines the graph type, instance bounds, and sentinel
// errors for the pursuit domain.
package vnet

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// Instance bounds, enforced at construction. Violation is a hard
// construction failure, not a recoverable condition.
const (
	// MaxNodes is the largest supported node count.
	MaxNodes = 500
	// MaxEdges is the largest supported edge count.
	MaxEdges = 1000
)

// Sentinel errors for graph construction and queries.
var (
	// ErrBadEdgeFormat indicates an input line that is not two non-empty
	// node labels joined by a single hyphen.
	ErrBadEdgeFormat = errors.New("vnet: malformed edge line")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("vnet: self-loop not allowed")

	// ErrDuplicateEdge indicates the same undirected edge listed twice.
	ErrDuplicateEdge = errors.New("vnet: duplicate edge")

	// ErrTooManyNodes indicates the instance exceeds MaxNodes.
	ErrTooManyNodes = errors.New("vnet: node count over bound")

	// ErrTooManyEdges indicates the instance exceeds MaxEdges.
	ErrTooManyEdges = errors.New("vnet: edge count over bound")

	// ErrNodeNotFound indicates a query referenced an unknown node.
	ErrNodeNotFound = errors.New("vnet: node not found")
)

// IsGateway reports whether a node label names a protected gateway. The
// domain rule: a node is a gateway exactly when its first character is
// uppercase.
func IsGateway(label string) bool {
	r, _ := utf8.DecodeRuneInString(label)

	return unicode.IsUpper(r)
}
