package rdm

// Wire-level constants for the RDM frame format.
const (
	StartCode    byte = 0xCC
	SubStartCode byte = 0x01

	DubPreamble  byte = 0xFE
	DubSeparator byte = 0xAA

	MinPacketLen         = 26
	MaxParameterDataLen  = 231

	// headerLen is the number of bytes from the start code through the
	// parameter-data-length byte inclusive, i.e. offset 24 in the frame
	// layout — the fixed part of every standard frame.
	headerLen = 24
)

// frameHeader is the decoded form of the 24-byte fixed header shared by
// every standard RDM frame (offsets 0-23).
type frameHeader struct {
	MessageLength     uint8
	Destination       DeviceUID
	Source            DeviceUID
	TransactionNumber uint8
	PortOrResponse    uint8 // port ID on requests, response type on responses
	MessageCount      uint8
	SubDevice         SubDeviceId
	CommandClass      CommandClass
	ParameterId       ParameterId
	ParameterDataLen  uint8
}

// encodeHeader writes the 24-byte fixed header (everything before the
// parameter data) into buf, given the already-computed message length.
func encodeHeader(h frameHeader) []byte {
	buf := make([]byte, 0, headerLen)
	buf = append(buf, StartCode, SubStartCode, h.MessageLength)
	dst := h.Destination.Bytes()
	src := h.Source.Bytes()
	buf = append(buf, dst[:]...)
	buf = append(buf, src[:]...)
	buf = append(buf, h.TransactionNumber, h.PortOrResponse, h.MessageCount)
	buf = append(buf, byte(h.SubDevice>>8), byte(h.SubDevice))
	buf = append(buf, byte(h.CommandClass))
	buf = append(buf, byte(h.ParameterId>>8), byte(h.ParameterId))
	buf = append(buf, h.ParameterDataLen)
	return buf
}

// appendChecksum appends the big-endian BSD-16 checksum of frame (all bytes
// emitted so far) and returns the full encoded byte sequence.
func appendChecksum(frame []byte) []byte {
	sum := bsd16Sum(frame)
	return append(frame, byte(sum>>8), byte(sum))
}
