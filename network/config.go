package network

import "time"

// Config holds spectator feed settings
type Config struct {
	// Address to bind, empty disables the feed
	Address string

	// Path of the websocket endpoint
	Path string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout time.Duration
	PingInterval time.Duration
	ReadTimeout  time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns the feed defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "",
		Path:            "/feed",
		MaxPeers:        16,
		WriteTimeout:    5 * time.Second,
		PingInterval:    25 * time.Second,
		ReadTimeout:     60 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 16 * 1024,
		SendQueueSize:   256,
	}
}
