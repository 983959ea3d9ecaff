// Package dmx implements the DMX512 universe value holder: a fixed-capacity
// channel array with bounds-checked access and a trivial start-code-prefixed
// wire encoding. It shares the codec package's purity discipline with
// internal/rdm: no I/O, no logging, plain value types.
package dmx

import "errors"

// StartCode prefixes a standard (non-RDM) DMX512 frame.
const StartCode = 0x00

// MaxChannels is the largest channel count a universe can hold.
const MaxChannels = 512

var (
	// ErrInvalidChannelCount is returned by New for a count outside [1, MaxChannels].
	ErrInvalidChannelCount = errors.New("dmx: invalid channel count")
	// ErrChannelOutOfBounds is returned by Get/Set/GetRange/SetRange for an
	// out-of-range index or slice.
	ErrChannelOutOfBounds = errors.New("dmx: channel out of bounds")
	// ErrInvalidFrame is returned by Decode when the byte sequence is too
	// short, too long, or missing the start code.
	ErrInvalidFrame = errors.New("dmx: invalid frame")
)

// Universe is a fixed-capacity store of 8-bit DMX512 channel values. Its
// length never changes after construction.
type Universe struct {
	channels []byte
}

// New constructs a zero-initialized universe of count channels. count must
// fall within [1, MaxChannels].
func New(count int) (*Universe, error) {
	if count < 1 || count > MaxChannels {
		return nil, ErrInvalidChannelCount
	}
	return &Universe{channels: make([]byte, count)}, nil
}

// Len reports the universe's fixed channel count.
func (u *Universe) Len() int {
	return len(u.channels)
}

// Get returns the value of one channel, zero-based.
func (u *Universe) Get(channel int) (byte, error) {
	if channel < 0 || channel >= len(u.channels) {
		return 0, ErrChannelOutOfBounds
	}
	return u.channels[channel], nil
}

// Set assigns the value of one channel, zero-based.
func (u *Universe) Set(channel int, value byte) error {
	if channel < 0 || channel >= len(u.channels) {
		return ErrChannelOutOfBounds
	}
	u.channels[channel] = value
	return nil
}

// GetRange returns a copy of the channels [start, start+length).
func (u *Universe) GetRange(start, length int) ([]byte, error) {
	if start < 0 || length < 0 || start+length > len(u.channels) {
		return nil, ErrChannelOutOfBounds
	}
	out := make([]byte, length)
	copy(out, u.channels[start:start+length])
	return out, nil
}

// SetRange overwrites the channels starting at start with values.
func (u *Universe) SetRange(start int, values []byte) error {
	if start < 0 || start+len(values) > len(u.channels) {
		return ErrChannelOutOfBounds
	}
	copy(u.channels[start:], values)
	return nil
}

// Reset zeroes every channel.
func (u *Universe) Reset() {
	for i := range u.channels {
		u.channels[i] = 0
	}
}

// SetAll fills every channel with v.
func (u *Universe) SetAll(v byte) {
	for i := range u.channels {
		u.channels[i] = v
	}
}

// Encode prepends StartCode to the channel values, yielding a byte sequence
// of length Len()+1.
func (u *Universe) Encode() []byte {
	out := make([]byte, 0, len(u.channels)+1)
	out = append(out, StartCode)
	return append(out, u.channels...)
}

// Decode parses a start-code-prefixed DMX512 frame into a new Universe.
// buf must have length in [2, MaxChannels+1] and begin with StartCode.
func Decode(buf []byte) (*Universe, error) {
	if len(buf) < 2 || len(buf) > MaxChannels+1 {
		return nil, ErrInvalidFrame
	}
	if buf[0] != StartCode {
		return nil, ErrInvalidFrame
	}
	channels := make([]byte, len(buf)-1)
	copy(channels, buf[1:])
	return &Universe{channels: channels}, nil
}
