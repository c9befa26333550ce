package entity

import "time"

type Comment struct {
	ID         int64     `db:"id"`
	Text       string    `db:"text"`
	EventID    int64     `db:"event_id"`
	AuthorID   int64     `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Created    time.Time `db:"created"`
}

// CommentFilter narrows a comment listing. Zero ids and nil bounds match
// everything.
type CommentFilter struct {
	AuthorID   int64
	EventID    int64
	RangeStart *time.Time
	RangeEnd   *time.Time
	From       int
	Size       int
}
