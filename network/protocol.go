package network

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// MessageType identifies the semantic meaning of a message
type MessageType uint8

const (
	// MsgHello is the first message on every connection
	MsgHello MessageType = 0x01

	// MsgEvent carries one game event
	MsgEvent MessageType = 0x12
)

// Message is one binary websocket frame, encoded with msgpack
// Slot, Winner and Wins are -1 when the event carries no such field
type Message struct {
	Type    MessageType `msgpack:"t"`
	Seq     uint32      `msgpack:"s"`
	Session string      `msgpack:"id"`

	// Hello
	ArenaWidth  int `msgpack:"w,omitempty"`
	ArenaHeight int `msgpack:"h,omitempty"`

	// Event
	Event  string `msgpack:"ev,omitempty"`
	Frame  uint64 `msgpack:"f,omitempty"`
	AtMs   int64  `msgpack:"at,omitempty"`
	Slot   int    `msgpack:"slot"`
	X      int    `msgpack:"x,omitempty"`
	Y      int    `msgpack:"y,omitempty"`
	Cause  string `msgpack:"cause,omitempty"`
	Winner int    `msgpack:"winner"`
	Wins   int    `msgpack:"wins"`
	Target bool   `msgpack:"target,omitempty"`
}

// NewMessage creates a message with no slot, winner or wins
func NewMessage(t MessageType) *Message {
	return &Message{Type: t, Slot: -1, Winner: -1, Wins: -1}
}

// Encode serializes the message
func (m *Message) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message type %d: %w", m.Type, err)
	}
	return data, nil
}

// Decode parses a message produced by Encode
func Decode(data []byte) (*Message, error) {
	var m Message
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}
	return &m, nil
}
