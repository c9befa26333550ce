package entity

import "time"

type Hit struct {
	ID        int64     `db:"id"`
	App       string    `db:"app"`
	URI       string    `db:"uri"`
	IP        string    `db:"ip"`
	Timestamp time.Time `db:"timestamp"`
}

type ViewStats struct {
	App  string `db:"app"`
	URI  string `db:"uri"`
	Hits int64  `db:"hits"`
}
