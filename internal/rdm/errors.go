package rdm

import (
	"errors"
	"fmt"
)

// Sentinel errors that carry no offending value.
var (
	ErrInvalidStartCode                  = errors.New("rdm: invalid start code")
	ErrInvalidDiscoveryUniqueBranchPreamble = errors.New("rdm: invalid discovery unique branch preamble")
	ErrMalformedPacket                   = errors.New("rdm: malformed packet")
	ErrTryFromSlice                      = errors.New("rdm: slice has wrong length for conversion")
	ErrUtf8                              = errors.New("rdm: invalid utf-8 in parameter data")
)

// ProtocolError is the value-carrying error type returned by the decode
// paths in this package; failures with no offending value are reported with
// the sentinel errors above. Each constructor below carries the offending
// wire value so callers can report diagnostics.
type ProtocolError struct {
	Kind  ErrorKind
	Value uint32 // the offending byte/word, widened to uint32
	Value2 uint32 // second offending value, used by InvalidChecksum (found vs computed)
}

// ErrorKind enumerates every decode failure mode this package can produce.
type ErrorKind int

const (
	KindInvalidFrameLength ErrorKind = iota
	KindInvalidMessageLength
	KindInvalidChecksum
	KindInvalidResponseType
	KindInvalidCommandClass
	KindUnsupportedParameterId
	KindInvalidParameterDataLength
	KindInvalidProductCategory
	KindInvalidLampState
	KindInvalidLampOnMode
	KindInvalidPowerState
	KindInvalidDisplayInvertMode
	KindInvalidResetDeviceMode
	KindInvalidSensorType
	KindInvalidSensorUnit
	KindInvalidSensorUnitPrefix
	KindInvalidStatusType
	KindInvalidSlotType
	KindInvalidCommandClassImplementation
	KindInvalidParameterDataType
	KindUnsupportedSlotIdDefinition
	KindInvalidProductDetail
)

var errorKindNames = map[ErrorKind]string{
	KindInvalidFrameLength:                "invalid frame length",
	KindInvalidMessageLength:              "invalid message length",
	KindInvalidChecksum:                   "invalid checksum",
	KindInvalidResponseType:               "invalid response type",
	KindInvalidCommandClass:               "invalid command class",
	KindUnsupportedParameterId:            "unsupported parameter id",
	KindInvalidParameterDataLength:        "invalid parameter data length",
	KindInvalidProductCategory:            "invalid product category",
	KindInvalidLampState:                  "invalid lamp state",
	KindInvalidLampOnMode:                 "invalid lamp on mode",
	KindInvalidPowerState:                 "invalid power state",
	KindInvalidDisplayInvertMode:          "invalid display invert mode",
	KindInvalidResetDeviceMode:            "invalid reset device mode",
	KindInvalidSensorType:                 "invalid sensor type",
	KindInvalidSensorUnit:                 "invalid sensor unit",
	KindInvalidSensorUnitPrefix:           "invalid sensor unit prefix",
	KindInvalidStatusType:                 "invalid status type",
	KindInvalidSlotType:                   "invalid slot type",
	KindInvalidCommandClassImplementation: "invalid command class implementation",
	KindInvalidParameterDataType:          "invalid parameter data type",
	KindUnsupportedSlotIdDefinition:       "unsupported slot id definition",
	KindInvalidProductDetail:              "invalid product detail",
}

func (e *ProtocolError) Error() string {
	name := errorKindNames[e.Kind]
	if e.Kind == KindInvalidChecksum {
		return fmt.Sprintf("rdm: %s: computed=0x%04x found=0x%04x", name, e.Value, e.Value2)
	}
	return fmt.Sprintf("rdm: %s: 0x%x", name, e.Value)
}

func newErr(kind ErrorKind, value uint32) *ProtocolError {
	return &ProtocolError{Kind: kind, Value: value}
}

func newChecksumErr(computed, found uint16) *ProtocolError {
	return &ProtocolError{Kind: KindInvalidChecksum, Value: uint32(computed), Value2: uint32(found)}
}
