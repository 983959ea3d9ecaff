package rdm

// GetDmxPersonalityRequest asks for a device's current personality and the
// total count of personalities it offers.
type GetDmxPersonalityRequest struct{}

func (GetDmxPersonalityRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDmxPersonalityRequest) parameterID() ParameterId   { return PidDmxPersonality }
func (GetDmxPersonalityRequest) payload() []byte            { return nil }

// SetDmxPersonalityRequest selects a personality by its 1-based index.
type SetDmxPersonalityRequest struct {
	PersonalityIndex uint8
}

func (SetDmxPersonalityRequest) commandClass() CommandClass { return CommandClassSet }
func (SetDmxPersonalityRequest) parameterID() ParameterId   { return PidDmxPersonality }
func (r SetDmxPersonalityRequest) payload() []byte          { return []byte{r.PersonalityIndex} }

// DmxPersonalityResponse is the DMX_PERSONALITY GET response.
type DmxPersonalityResponse struct {
	CurrentPersonality uint8
	PersonalityCount   uint8
}

func (DmxPersonalityResponse) isGetResponseParameterData() {}

func decodeDmxPersonalityResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	cur, err := c.u8()
	if err != nil {
		return nil, err
	}
	count, err := c.u8()
	if err != nil {
		return nil, err
	}
	return DmxPersonalityResponse{CurrentPersonality: cur, PersonalityCount: count}, nil
}

// GetDmxPersonalityDescriptionRequest asks for the footprint and
// description of a personality by its 1-based index.
type GetDmxPersonalityDescriptionRequest struct {
	PersonalityIndex uint8
}

func (GetDmxPersonalityDescriptionRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDmxPersonalityDescriptionRequest) parameterID() ParameterId {
	return PidDmxPersonalityDescription
}
func (r GetDmxPersonalityDescriptionRequest) payload() []byte { return []byte{r.PersonalityIndex} }

// DmxPersonalityDescriptionResponse is the DMX_PERSONALITY_DESCRIPTION GET
// response.
type DmxPersonalityDescriptionResponse struct {
	PersonalityIndex uint8
	DmxFootprint     uint16
	Description      string
}

func (DmxPersonalityDescriptionResponse) isGetResponseParameterData() {}

func decodeDmxPersonalityDescriptionResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	idx, err := c.u8()
	if err != nil {
		return nil, err
	}
	footprint, err := c.u16()
	if err != nil {
		return nil, err
	}
	desc, err := c.restString()
	if err != nil {
		return nil, err
	}
	return DmxPersonalityDescriptionResponse{PersonalityIndex: idx, DmxFootprint: footprint, Description: desc}, nil
}

// GetDmxStartAddressRequest asks for the device's DMX512 start address.
type GetDmxStartAddressRequest struct{}

func (GetDmxStartAddressRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDmxStartAddressRequest) parameterID() ParameterId   { return PidDmxStartAddress }
func (GetDmxStartAddressRequest) payload() []byte            { return nil }

// SetDmxStartAddressRequest assigns the device's DMX512 start address.
type SetDmxStartAddressRequest struct {
	StartAddress uint16
}

func (SetDmxStartAddressRequest) commandClass() CommandClass { return CommandClassSet }
func (SetDmxStartAddressRequest) parameterID() ParameterId   { return PidDmxStartAddress }
func (r SetDmxStartAddressRequest) payload() []byte {
	return []byte{byte(r.StartAddress >> 8), byte(r.StartAddress)}
}

// DmxStartAddressResponse is the DMX_START_ADDRESS GET response.
type DmxStartAddressResponse struct {
	StartAddress uint16
}

func (DmxStartAddressResponse) isGetResponseParameterData() {}

func decodeDmxStartAddressResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	v, err := c.u16()
	if err != nil {
		return nil, err
	}
	return DmxStartAddressResponse{StartAddress: v}, nil
}
