package entity

// Compilation is an admin curated, optionally pinned set of events.
type Compilation struct {
	ID     int64  `db:"id"`
	Title  string `db:"title"`
	Pinned bool   `db:"pinned"`
}

type CompilationEvent struct {
	CompilationID int64 `db:"compilation_id"`
	EventID       int64 `db:"event_id"`
}
