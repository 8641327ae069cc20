package entity

import "time"

// WinningTokenResolver supplies the winning token position when a game starts.
type WinningTokenResolver interface {
	Resolve() (int, error)
}

// TimerObserver is notified by a Timer once its countdown has elapsed.
type TimerObserver interface {
	Timeout()
}

// Timer is a countdown that delivers Timeout to its registered observers.
type Timer interface {
	Register(observer TimerObserver)
	SetFor(duration time.Duration)
	Stop()
	Tic()
}
