package dmx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidatesChannelCount(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr error
	}{
		{name: "minimum", count: 1},
		{name: "typical", count: 4},
		{name: "maximum", count: MaxChannels},
		{name: "zero", count: 0, wantErr: ErrInvalidChannelCount},
		{name: "negative", count: -1, wantErr: ErrInvalidChannelCount},
		{name: "too large", count: MaxChannels + 1, wantErr: ErrInvalidChannelCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New(tt.count)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, u)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.count, u.Len())
		})
	}
}

func TestGetSet(t *testing.T) {
	u, err := New(4)
	require.NoError(t, err)

	require.NoError(t, u.Set(2, 0x80))
	v, err := u.Get(2)
	require.NoError(t, err)
	require.Equal(t, byte(0x80), v)

	_, err = u.Get(4)
	require.ErrorIs(t, err, ErrChannelOutOfBounds)
	require.ErrorIs(t, u.Set(-1, 1), ErrChannelOutOfBounds)
}

func TestGetSetRange(t *testing.T) {
	u, err := New(8)
	require.NoError(t, err)

	require.NoError(t, u.SetRange(2, []byte{0x01, 0x02, 0x03}))
	got, err := u.GetRange(2, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, got)

	_, err = u.GetRange(6, 3)
	require.ErrorIs(t, err, ErrChannelOutOfBounds)

	err = u.SetRange(6, []byte{0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrChannelOutOfBounds)
}

func TestResetAndSetAll(t *testing.T) {
	u, err := New(4)
	require.NoError(t, err)

	u.SetAll(0xFF)
	got, err := u.GetRange(0, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, got)

	u.Reset()
	got, err = u.GetRange(0, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, got)
}

// TestDecodeEncodeRoundTrip covers the literal DMX round-trip scenario.
func TestDecodeEncodeRoundTrip(t *testing.T) {
	buf := []byte{0x00, 0x40, 0x80, 0xC0, 0xFF}

	u, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 4, u.Len())
	require.Equal(t, buf, u.Encode())
}

func TestDecodeRejectsBadStartCode(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x40})
	require.ErrorIs(t, err, ErrInvalidFrame)
}

func TestDecodeRejectsBadLength(t *testing.T) {
	_, err := Decode([]byte{0x00})
	require.ErrorIs(t, err, ErrInvalidFrame)

	toolong := make([]byte, MaxChannels+2)
	_, err = Decode(toolong)
	require.ErrorIs(t, err, ErrInvalidFrame)
}

func TestEncodeIndependentOfSourceBuffer(t *testing.T) {
	u, err := New(2)
	require.NoError(t, err)
	require.NoError(t, u.SetRange(0, []byte{1, 2}))

	encoded := u.Encode()
	encoded[1] = 0xFF

	v, err := u.Get(0)
	require.NoError(t, err)
	require.Equal(t, byte(1), v)
}
