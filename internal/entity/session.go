package entity

import "time"

// Session binds a running game to its id and countdown.
type Session struct {
	ID        string    `json:"id"`
	Game      *Game     `json:"-"`
	Timer     Timer     `json:"-"`
	StartedAt time.Time `json:"started_at"`
}
