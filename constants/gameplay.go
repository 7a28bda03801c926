package constants

import "time"

// Arena Geometry
const (
	// MaxPlayers is the number of player slots
	MaxPlayers = 4

	// DefaultGridUnit is one terminal cell
	DefaultGridUnit = 1

	// StatusRows is reserved under the arena for the status line
	StatusRows = 1

	// MaxStartInset caps the distance of start positions from the arena corners, in grid units
	MaxStartInset = 44

	// DragItemReach is the proximity (in grid units) for obstacle and shield contact
	DragItemReach = 1
)

// Match Rules
const (
	// WinTarget is the win count that ends a match and forces a win reset
	WinTarget = 8

	// MinPlayersToStart arms the start control
	MinPlayersToStart = 2
)

// Match Timing
const (
	// CountdownPhaseDuration is the duration of each countdown light
	CountdownPhaseDuration = 1000 * time.Millisecond

	// RoundEndDelay is the pause between a decided round and the reset
	RoundEndDelay = 2000 * time.Millisecond

	// IdleTimeout starts the attract demo when no input arrives
	IdleTimeout = 10000 * time.Millisecond

	// ExplodeDuration and FadeDuration make up a crashed cycle's death effect
	ExplodeDuration = 200 * time.Millisecond
	FadeDuration    = 200 * time.Millisecond

	// ItemFlashPeriod is the blink period of active obstacle and shield
	ItemFlashPeriod = 600 * time.Millisecond
)

// Attract Mode
const (
	// DemoRespawnMin and DemoRespawnMax bound the delay before a scripted cycle reruns its route
	DemoRespawnMin = 600 * time.Millisecond
	DemoRespawnMax = 1200 * time.Millisecond

	// BackgroundAnimCount is the number of wandering crosshairs
	BackgroundAnimCount = 4

	// BackgroundTurnMin and BackgroundTurnMax bound the ticks between crosshair turns
	BackgroundTurnMin = 60
	BackgroundTurnMax = 120

	// AboutPadding is the horizontal margin around about text, in grid units
	AboutPadding = 2

	// AboutSpacing separates stacked about boxes, in grid units
	AboutSpacing = 2
)
