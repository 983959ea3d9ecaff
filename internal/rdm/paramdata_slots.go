package rdm

// GetSlotInfoRequest asks for the type and label ID of every DMX slot a
// device's current personality occupies.
type GetSlotInfoRequest struct{}

func (GetSlotInfoRequest) commandClass() CommandClass { return CommandClassGet }
func (GetSlotInfoRequest) parameterID() ParameterId   { return PidSlotInfo }
func (GetSlotInfoRequest) payload() []byte            { return nil }

// SlotInfoEntry describes one DMX slot within SLOT_INFO.
type SlotInfoEntry struct {
	SlotOffset uint16
	SlotType   SlotType
	SlotLabel  uint16
}

// SlotInfoResponse is the SLOT_INFO GET response.
type SlotInfoResponse struct {
	Slots []SlotInfoEntry
}

func (SlotInfoResponse) isGetResponseParameterData() {}

func decodeSlotInfoResponse(data []byte) (GetResponseParameterData, error) {
	if len(data)%5 != 0 {
		return nil, ErrMalformedPacket
	}
	c := newCursor(data)
	var out []SlotInfoEntry
	for c.remaining() > 0 {
		offset, err := c.u16()
		if err != nil {
			return nil, err
		}
		typeByte, err := c.u8()
		if err != nil {
			return nil, err
		}
		slotType, err := slotTypeFromByte(typeByte)
		if err != nil {
			return nil, err
		}
		label, err := c.u16()
		if err != nil {
			return nil, err
		}
		out = append(out, SlotInfoEntry{SlotOffset: offset, SlotType: slotType, SlotLabel: label})
	}
	return SlotInfoResponse{Slots: out}, nil
}

// GetSlotDescriptionRequest asks for the human-readable description of one
// slot, addressed by its offset within the current personality.
type GetSlotDescriptionRequest struct {
	SlotOffset uint16
}

func (GetSlotDescriptionRequest) commandClass() CommandClass { return CommandClassGet }
func (GetSlotDescriptionRequest) parameterID() ParameterId   { return PidSlotDescription }
func (r GetSlotDescriptionRequest) payload() []byte {
	return []byte{byte(r.SlotOffset >> 8), byte(r.SlotOffset)}
}

// SlotDescriptionResponse is the SLOT_DESCRIPTION GET response.
type SlotDescriptionResponse struct {
	SlotOffset  uint16
	Description string
}

func (SlotDescriptionResponse) isGetResponseParameterData() {}

func decodeSlotDescriptionResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	offset, err := c.u16()
	if err != nil {
		return nil, err
	}
	desc, err := c.restString()
	if err != nil {
		return nil, err
	}
	return SlotDescriptionResponse{SlotOffset: offset, Description: desc}, nil
}

// GetDefaultSlotValueRequest asks for the power-on default value of every
// DMX slot.
type GetDefaultSlotValueRequest struct{}

func (GetDefaultSlotValueRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDefaultSlotValueRequest) parameterID() ParameterId   { return PidDefaultSlotValue }
func (GetDefaultSlotValueRequest) payload() []byte            { return nil }

// DefaultSlotValueEntry pairs a slot offset with its power-on default.
type DefaultSlotValueEntry struct {
	SlotOffset   uint16
	DefaultValue uint8
}

// DefaultSlotValueResponse is the DEFAULT_SLOT_VALUE GET response.
type DefaultSlotValueResponse struct {
	Slots []DefaultSlotValueEntry
}

func (DefaultSlotValueResponse) isGetResponseParameterData() {}

func decodeDefaultSlotValueResponse(data []byte) (GetResponseParameterData, error) {
	if len(data)%3 != 0 {
		return nil, ErrMalformedPacket
	}
	c := newCursor(data)
	var out []DefaultSlotValueEntry
	for c.remaining() > 0 {
		offset, err := c.u16()
		if err != nil {
			return nil, err
		}
		value, err := c.u8()
		if err != nil {
			return nil, err
		}
		out = append(out, DefaultSlotValueEntry{SlotOffset: offset, DefaultValue: value})
	}
	return DefaultSlotValueResponse{Slots: out}, nil
}
