package constants

import "time"

const (
	// HistoryLimit is how many recent matches feed the aggregate.
	HistoryLimit = 20

	// EloLookback is the distance, in matches, to the historical rating
	// snapshot used for the elo delta. The Nth most recent match must
	// exist and carry a snapshot or the delta is absent.
	EloLookback = 20

	// DetailFanoutLimit caps concurrent match-detail requests per
	// incoming request.
	DetailFanoutLimit = 8
)

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)
