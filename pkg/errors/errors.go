package errors

import (
	"fmt"
)

// ParseError represents a project document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures project, page, or token validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvariantKind names a core tree invariant.
type InvariantKind string

const (
	// InvariantUniqueID is violated when two nodes in one tree share an id.
	InvariantUniqueID InvariantKind = "unique_id"
	// InvariantAcyclic is violated when a node would become its own ancestor.
	InvariantAcyclic InvariantKind = "acyclic"
)

// InvariantError reports a violation of a core tree invariant. Unlike stale-id
// edits, which degrade to no-ops, these are collaborator bugs and must surface.
type InvariantError struct {
	Kind   InvariantKind
	NodeID string
}

// NewInvariantError constructs an InvariantError for the offending node.
func NewInvariantError(kind InvariantKind, nodeID string) error {
	return &InvariantError{Kind: kind, NodeID: nodeID}
}

func (e *InvariantError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case InvariantUniqueID:
		return fmt.Sprintf("invariant violation: duplicate node id %q", e.NodeID)
	case InvariantAcyclic:
		return fmt.Sprintf("invariant violation: node %q would become its own ancestor", e.NodeID)
	}
	return fmt.Sprintf("invariant violation: %s: node %q", e.Kind, e.NodeID)
}

// NotFoundError reports a lookup miss at a surface where silence is wrong,
// such as page mutations issued by a persistence collaborator.
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}
