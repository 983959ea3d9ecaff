// Package rdm implements the controller side of the RDM (Remote Device
// Management) wire protocol layered over DMX512: request encoding, response
// decoding, and the parameter-data catalogue used to discover, inventory,
// and configure networked lighting devices.
package rdm

import "fmt"

// DeviceUID is a 48-bit RDM device identifier: a 16-bit manufacturer ID and
// a 32-bit device ID, MSB-first on the wire. DeviceUID is an immutable value.
type DeviceUID struct {
	ManufacturerID uint16
	DeviceID       uint32
}

// BroadcastAllDevices is the distinguished all-ones UID that addresses
// every device on the bus.
var BroadcastAllDevices = DeviceUID{ManufacturerID: 0xFFFF, DeviceID: 0xFFFFFFFF}

// NewDeviceUID constructs a DeviceUID from its two wire fields.
func NewDeviceUID(manufacturerID uint16, deviceID uint32) DeviceUID {
	return DeviceUID{ManufacturerID: manufacturerID, DeviceID: deviceID}
}

// DeviceUIDFromUint64 recovers a DeviceUID from a 64-bit integer whose upper
// 16 bits hold the manufacturer ID and whose lower 32 bits hold the device ID.
func DeviceUIDFromUint64(v uint64) DeviceUID {
	return DeviceUID{
		ManufacturerID: uint16(v >> 32),
		DeviceID:       uint32(v),
	}
}

// Uint64 packs the UID into a 64-bit integer, manufacturer ID in the upper
// 16 bits.
func (u DeviceUID) Uint64() uint64 {
	return uint64(u.ManufacturerID)<<32 | uint64(u.DeviceID)
}

// DeviceUIDFromBytes recovers a DeviceUID from a 6-byte big-endian slice.
func DeviceUIDFromBytes(b []byte) (DeviceUID, error) {
	if len(b) != 6 {
		return DeviceUID{}, ErrTryFromSlice
	}
	return DeviceUID{
		ManufacturerID: uint16(b[0])<<8 | uint16(b[1]),
		DeviceID:       uint32(b[2])<<24 | uint32(b[3])<<16 | uint32(b[4])<<8 | uint32(b[5]),
	}, nil
}

// Bytes encodes the UID to its 6-byte big-endian wire form.
func (u DeviceUID) Bytes() [6]byte {
	return [6]byte{
		byte(u.ManufacturerID >> 8), byte(u.ManufacturerID),
		byte(u.DeviceID >> 24), byte(u.DeviceID >> 16), byte(u.DeviceID >> 8), byte(u.DeviceID),
	}
}

// IsBroadcast reports whether the UID is the all-devices broadcast UID.
func (u DeviceUID) IsBroadcast() bool {
	return u == BroadcastAllDevices
}

func (u DeviceUID) String() string {
	return fmt.Sprintf("%04X:%08X", u.ManufacturerID, u.DeviceID)
}

// SubDeviceId addresses a logically distinct entity within a physical
// device. 0x0000 is the root device; 0xFFFF addresses all sub-devices.
type SubDeviceId uint16

const (
	// RootDevice addresses the physical device itself.
	RootDevice SubDeviceId = 0x0000
	// SubDeviceAllCall addresses every sub-device of a device at once.
	SubDeviceAllCall SubDeviceId = 0xFFFF
)

// IsRoot reports whether the sub-device ID addresses the root device.
func (s SubDeviceId) IsRoot() bool {
	return s == RootDevice
}

// IsAllCall reports whether the sub-device ID addresses all sub-devices.
func (s SubDeviceId) IsAllCall() bool {
	return s == SubDeviceAllCall
}
