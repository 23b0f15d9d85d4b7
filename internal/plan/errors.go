package plan

import "errors"

// ErrUnknownNode is returned when an operation names a node that is not in
// the catalog.
var ErrUnknownNode = errors.New("unknown node")

// ErrDuplicateNode is returned when a name is registered twice.
var ErrDuplicateNode = errors.New("duplicate node")

// ErrKindMismatch is returned when a node of the wrong kind is used, such as
// an obstacle passed where an ability is expected.
var ErrKindMismatch = errors.New("wrong node kind")

// ErrNotPlaced is returned when a node that must already be placed is not.
var ErrNotPlaced = errors.New("node not placed")

// ErrNotEnabled is returned when a placement is attempted for a node whose
// requirements are not met at the chosen branch.
var ErrNotEnabled = errors.New("node not enabled")
