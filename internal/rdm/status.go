package rdm

// StatusMessageEntry is one queued status message, as reported by
// STATUS_MESSAGES.
type StatusMessageEntry struct {
	SubDevice       SubDeviceId
	StatusType      StatusType
	StatusMessageId uint16
	DataValue1      int16
	DataValue2      int16
}

const statusMessageEntryLen = 9

func decodeStatusMessageEntries(data []byte) ([]StatusMessageEntry, error) {
	if len(data)%statusMessageEntryLen != 0 {
		return nil, ErrMalformedPacket
	}
	c := newCursor(data)
	var out []StatusMessageEntry
	for c.remaining() > 0 {
		subDevice, err := c.u16()
		if err != nil {
			return nil, err
		}
		typeByte, err := c.u8()
		if err != nil {
			return nil, err
		}
		statusType, err := statusTypeFromByte(typeByte)
		if err != nil {
			return nil, err
		}
		msgID, err := c.u16()
		if err != nil {
			return nil, err
		}
		v1, err := c.i16()
		if err != nil {
			return nil, err
		}
		v2, err := c.i16()
		if err != nil {
			return nil, err
		}
		out = append(out, StatusMessageEntry{
			SubDevice:       SubDeviceId(subDevice),
			StatusType:      statusType,
			StatusMessageId: msgID,
			DataValue1:      v1,
			DataValue2:      v2,
		})
	}
	return out, nil
}
