package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "coursework-export context key " + string(c)
}

// RunIDKey is the key for the per-run UUID in context.Context
const RunIDKey = contextKey("runID")

// RunTimestampKey is the key for the run timestamp shared by all artifacts of a run
const RunTimestampKey = contextKey("runTimestamp")

// ModeKey is the key for the export mode (live or fallback)
const ModeKey = contextKey("mode")

// ComponentKey is the key for the component currently doing the work
const ComponentKey = contextKey("component")

// CollectionKey is the key for the collection being exported
const CollectionKey = contextKey("collection")
