// Package hub defines the contract between game engines and the platform,
// plus a global registry engines join from their init() functions so the
// platform can discover and instantiate them without hardcoded imports.
package hub

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Engine is the interface every game engine implements. Engines are pure
// state machines: they hold no goroutines, no OS timers and do no rendering.
// All time comes in through the method arguments, so a driver advancing an
// engine with synthetic timestamps replays a session exactly.
//
// Engines are not safe for concurrent use. The platform calls every method
// from a single goroutine per engine.
type Engine interface {
	// ID returns a unique identifier for this engine (e.g. "snake").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g. "Snake").
	Title() string

	// Reset starts a fresh game at the given time, cancelling all pending
	// deferred work from the previous one. Also used to restart after a
	// game over.
	Reset(now time.Time)

	// Start attaches the engine to the clock at the given time. After a
	// Stop, pending deadlines are shifted by the stopped span so the game
	// resumes where it left off.
	Start(now time.Time)

	// Stop detaches the engine from the clock. While stopped, Advance is
	// a no-op and pending deadlines are frozen.
	Stop(now time.Time)

	// Advance gives the engine the current time. The engine fires every
	// deferred action and tick whose deadline has passed, in order.
	// Drivers call it as often as they like; frequency affects latency,
	// never logic.
	Advance(now time.Time)

	// Status returns the platform-facing summary of the current state.
	Status() Status
}

// Status is the engine-agnostic view the platform uses for HUDs, score
// persistence and lifecycle decisions. Per-engine detail travels through
// each engine's typed snapshot instead.
type Status struct {
	Score    int    // Current score
	Phase    string // Engine-specific phase label for HUD display
	GameOver bool   // Whether the game has ended
	Running  bool   // Whether the engine is attached to the clock
}

// Info contains metadata about a registered engine.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new engine instance.
type Factory func() Engine

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an engine factory to the registry.
// Typically called from an engine package's init() function.
// Panics if an engine with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("hub: engine %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	e := f()
	titles[id] = e.Title()
}

// List returns information about all registered engines, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new engine by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Engine, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("hub: unknown engine %q", id)
	}

	return f(), nil
}

// Exists checks if an engine with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
