package rdm

// Uint32CounterResponse carries a single 4-byte counter value, the shape
// shared by DEVICE_HOURS, LAMP_HOURS, LAMP_STRIKES and DEVICE_POWER_CYCLES
// GET responses.
type Uint32CounterResponse struct {
	Value uint32
}

func (Uint32CounterResponse) isGetResponseParameterData() {}

func decodeUint32CounterResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	v, err := c.u32()
	if err != nil {
		return nil, err
	}
	return Uint32CounterResponse{Value: v}, nil
}

func encodeUint32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// GetDeviceHoursRequest asks for a device's total powered-on hours.
type GetDeviceHoursRequest struct{}

func (GetDeviceHoursRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDeviceHoursRequest) parameterID() ParameterId   { return PidDeviceHours }
func (GetDeviceHoursRequest) payload() []byte            { return nil }

// SetDeviceHoursRequest resets a device's powered-on hour counter.
type SetDeviceHoursRequest struct {
	Value uint32
}

func (SetDeviceHoursRequest) commandClass() CommandClass { return CommandClassSet }
func (SetDeviceHoursRequest) parameterID() ParameterId   { return PidDeviceHours }
func (r SetDeviceHoursRequest) payload() []byte          { return encodeUint32(r.Value) }

// GetLampHoursRequest asks for a lamp's total strike hours.
type GetLampHoursRequest struct{}

func (GetLampHoursRequest) commandClass() CommandClass { return CommandClassGet }
func (GetLampHoursRequest) parameterID() ParameterId   { return PidLampHours }
func (GetLampHoursRequest) payload() []byte            { return nil }

// SetLampHoursRequest resets a lamp's hour counter.
type SetLampHoursRequest struct {
	Value uint32
}

func (SetLampHoursRequest) commandClass() CommandClass { return CommandClassSet }
func (SetLampHoursRequest) parameterID() ParameterId   { return PidLampHours }
func (r SetLampHoursRequest) payload() []byte          { return encodeUint32(r.Value) }

// GetLampStrikesRequest asks for the number of times a lamp has been struck.
type GetLampStrikesRequest struct{}

func (GetLampStrikesRequest) commandClass() CommandClass { return CommandClassGet }
func (GetLampStrikesRequest) parameterID() ParameterId   { return PidLampStrikes }
func (GetLampStrikesRequest) payload() []byte            { return nil }

// SetLampStrikesRequest resets a lamp's strike counter.
type SetLampStrikesRequest struct {
	Value uint32
}

func (SetLampStrikesRequest) commandClass() CommandClass { return CommandClassSet }
func (SetLampStrikesRequest) parameterID() ParameterId   { return PidLampStrikes }
func (r SetLampStrikesRequest) payload() []byte          { return encodeUint32(r.Value) }

// GetDevicePowerCyclesRequest asks for the number of times a device has
// been power-cycled.
type GetDevicePowerCyclesRequest struct{}

func (GetDevicePowerCyclesRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDevicePowerCyclesRequest) parameterID() ParameterId   { return PidDevicePowerCycles }
func (GetDevicePowerCyclesRequest) payload() []byte            { return nil }

// SetDevicePowerCyclesRequest resets a device's power-cycle counter.
type SetDevicePowerCyclesRequest struct {
	Value uint32
}

func (SetDevicePowerCyclesRequest) commandClass() CommandClass { return CommandClassSet }
func (SetDevicePowerCyclesRequest) parameterID() ParameterId   { return PidDevicePowerCycles }
func (r SetDevicePowerCyclesRequest) payload() []byte          { return encodeUint32(r.Value) }

// GetLampStateRequest asks for a lamp's current on/off/strike state.
type GetLampStateRequest struct{}

func (GetLampStateRequest) commandClass() CommandClass { return CommandClassGet }
func (GetLampStateRequest) parameterID() ParameterId   { return PidLampState }
func (GetLampStateRequest) payload() []byte            { return nil }

// SetLampStateRequest forces a lamp into a given state.
type SetLampStateRequest struct {
	State LampState
}

func (SetLampStateRequest) commandClass() CommandClass { return CommandClassSet }
func (SetLampStateRequest) parameterID() ParameterId   { return PidLampState }
func (r SetLampStateRequest) payload() []byte          { return []byte{byte(r.State)} }

// LampStateResponse is the LAMP_STATE GET response.
type LampStateResponse struct {
	State LampState
}

func (LampStateResponse) isGetResponseParameterData() {}

func decodeLampStateResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	b, err := c.u8()
	if err != nil {
		return nil, err
	}
	state, err := lampStateFromByte(b)
	if err != nil {
		return nil, err
	}
	return LampStateResponse{State: state}, nil
}

// GetLampOnModeRequest asks for when a lamp strikes relative to power-on.
type GetLampOnModeRequest struct{}

func (GetLampOnModeRequest) commandClass() CommandClass { return CommandClassGet }
func (GetLampOnModeRequest) parameterID() ParameterId   { return PidLampOnMode }
func (GetLampOnModeRequest) payload() []byte            { return nil }

// SetLampOnModeRequest configures when a lamp strikes relative to power-on.
type SetLampOnModeRequest struct {
	Mode LampOnMode
}

func (SetLampOnModeRequest) commandClass() CommandClass { return CommandClassSet }
func (SetLampOnModeRequest) parameterID() ParameterId   { return PidLampOnMode }
func (r SetLampOnModeRequest) payload() []byte          { return []byte{byte(r.Mode)} }

// LampOnModeResponse is the LAMP_ON_MODE GET response.
type LampOnModeResponse struct {
	Mode LampOnMode
}

func (LampOnModeResponse) isGetResponseParameterData() {}

func decodeLampOnModeResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	b, err := c.u8()
	if err != nil {
		return nil, err
	}
	mode, err := lampOnModeFromByte(b)
	if err != nil {
		return nil, err
	}
	return LampOnModeResponse{Mode: mode}, nil
}
