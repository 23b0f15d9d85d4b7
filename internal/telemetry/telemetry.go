// Package telemetry provides a JSONL event stream for recording planner
// activity. Every catalog load, defeats change, placement, speculation and
// analysis run is recorded as a structured JSON event tagged with the
// session that produced it, making design sessions auditable and replayable.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindCatalogLoaded   = "catalog_loaded"
	KindCatalogReloaded = "catalog_reloaded"
	KindDefeats         = "defeats"
	KindPlacement       = "placement"
	KindSpeculation     = "speculation"
	KindAnalysis        = "analysis"
)

// Event represents a single telemetry record. Each event carries a timestamp,
// a kind tag, the session id and the node it concerns, along with arbitrary
// structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Session   string    `json:"session,omitempty"`
	Node      string    `json:"node,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file    *os.File
	enc     *json.Encoder
	session string
	mu      sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path, stamping events recorded through Record with session. The file is
// created if it does not exist, or appended to if it does.
func NewEmitter(path, session string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:    f,
		enc:     json.NewEncoder(f),
		session: session,
	}, nil
}

// Emit writes a single event to the JSONL file. It is safe for concurrent use.
// Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Record emits an event of the given kind for node, stamped with the
// current time and the emitter's session.
func (e *Emitter) Record(kind, node string, data any) error {
	if e == nil {
		return nil
	}
	return e.Emit(Event{
		Timestamp: time.Now().UTC(),
		Kind:      kind,
		Session:   e.session,
		Node:      node,
		Data:      data,
	})
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
