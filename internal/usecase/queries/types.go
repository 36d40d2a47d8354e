package queries

import (
	"time"
)

// Read models (DTOs for the read side)

type TableView struct {
	ID       int64 `json:"id"`
	Number   int   `json:"number"`
	Capacity int   `json:"capacity"`
}

type OrderView struct {
	ID           int64      `json:"id"`
	Reference    string     `json:"reference"`
	TableID      int64      `json:"table_id"`
	Installation time.Time  `json:"installation_datetime"`
	Departure    *time.Time `json:"departure_datetime,omitempty"`
	CreatedAt    time.Time  `json:"creation_datetime"`
}
