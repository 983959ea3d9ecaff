package rdm

// GetIdentifyDeviceRequest asks whether a device's identify indicator is
// active.
type GetIdentifyDeviceRequest struct{}

func (GetIdentifyDeviceRequest) commandClass() CommandClass { return CommandClassGet }
func (GetIdentifyDeviceRequest) parameterID() ParameterId   { return PidIdentifyDevice }
func (GetIdentifyDeviceRequest) payload() []byte            { return nil }

// SetIdentifyDeviceRequest turns a device's identify indicator on or off.
type SetIdentifyDeviceRequest struct {
	Identify bool
}

func (SetIdentifyDeviceRequest) commandClass() CommandClass { return CommandClassSet }
func (SetIdentifyDeviceRequest) parameterID() ParameterId   { return PidIdentifyDevice }
func (r SetIdentifyDeviceRequest) payload() []byte          { return encodeBool(r.Identify) }

// IdentifyDeviceResponse is the IDENTIFY_DEVICE GET response.
type IdentifyDeviceResponse struct {
	Identifying bool
}

func (IdentifyDeviceResponse) isGetResponseParameterData() {}

func decodeIdentifyDeviceResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	b, err := c.u8()
	if err != nil {
		return nil, err
	}
	return IdentifyDeviceResponse{Identifying: b != 0}, nil
}

// ResetDeviceRequest reboots a device, warm or cold.
type ResetDeviceRequest struct {
	Mode ResetDeviceMode
}

func (ResetDeviceRequest) commandClass() CommandClass { return CommandClassSet }
func (ResetDeviceRequest) parameterID() ParameterId   { return PidResetDevice }
func (r ResetDeviceRequest) payload() []byte          { return []byte{byte(r.Mode)} }

// GetPowerStateRequest asks for a device's power-saving mode.
type GetPowerStateRequest struct{}

func (GetPowerStateRequest) commandClass() CommandClass { return CommandClassGet }
func (GetPowerStateRequest) parameterID() ParameterId   { return PidPowerState }
func (GetPowerStateRequest) payload() []byte            { return nil }

// SetPowerStateRequest selects a device's power-saving mode.
type SetPowerStateRequest struct {
	State PowerState
}

func (SetPowerStateRequest) commandClass() CommandClass { return CommandClassSet }
func (SetPowerStateRequest) parameterID() ParameterId   { return PidPowerState }
func (r SetPowerStateRequest) payload() []byte          { return []byte{byte(r.State)} }

// PowerStateResponse is the POWER_STATE GET response.
type PowerStateResponse struct {
	State PowerState
}

func (PowerStateResponse) isGetResponseParameterData() {}

func decodePowerStateResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	b, err := c.u8()
	if err != nil {
		return nil, err
	}
	state, err := powerStateFromByte(b)
	if err != nil {
		return nil, err
	}
	return PowerStateResponse{State: state}, nil
}

// SelfTestNumber identifies a self test, or selects all/none.
type SelfTestNumber uint8

const (
	SelfTestStopAll SelfTestNumber = 0x00
	SelfTestAll     SelfTestNumber = 0xFF
)

// PerformSelfTestRequest starts or stops a device self test.
type PerformSelfTestRequest struct {
	Test SelfTestNumber
}

func (PerformSelfTestRequest) commandClass() CommandClass { return CommandClassSet }
func (PerformSelfTestRequest) parameterID() ParameterId   { return PidPerformSelfTest }
func (r PerformSelfTestRequest) payload() []byte          { return []byte{byte(r.Test)} }

// GetSelfTestDescriptionRequest asks for the description of a self test by
// number.
type GetSelfTestDescriptionRequest struct {
	Test SelfTestNumber
}

func (GetSelfTestDescriptionRequest) commandClass() CommandClass { return CommandClassGet }
func (GetSelfTestDescriptionRequest) parameterID() ParameterId   { return PidSelfTestDescription }
func (r GetSelfTestDescriptionRequest) payload() []byte          { return []byte{byte(r.Test)} }

// SelfTestDescriptionResponse is the SELF_TEST_DESCRIPTION GET response.
type SelfTestDescriptionResponse struct {
	Test        SelfTestNumber
	Description string
}

func (SelfTestDescriptionResponse) isGetResponseParameterData() {}

func decodeSelfTestDescriptionResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	b, err := c.u8()
	if err != nil {
		return nil, err
	}
	desc, err := c.restString()
	if err != nil {
		return nil, err
	}
	return SelfTestDescriptionResponse{Test: SelfTestNumber(b), Description: desc}, nil
}

// CapturePresetRequest captures the device's current state into a scene
// with the given fade timing, all expressed in tenths of a second.
type CapturePresetRequest struct {
	SceneNumber  uint16
	UpFadeTime   uint16
	DownFadeTime uint16
	WaitTime     uint16
}

func (CapturePresetRequest) commandClass() CommandClass { return CommandClassSet }
func (CapturePresetRequest) parameterID() ParameterId   { return PidCapturePreset }
func (r CapturePresetRequest) payload() []byte {
	return []byte{
		byte(r.SceneNumber >> 8), byte(r.SceneNumber),
		byte(r.UpFadeTime >> 8), byte(r.UpFadeTime),
		byte(r.DownFadeTime >> 8), byte(r.DownFadeTime),
		byte(r.WaitTime >> 8), byte(r.WaitTime),
	}
}

// PresetPlaybackMode selects which captured scene, if any, a device plays.
type PresetPlaybackMode uint16

const (
	PresetPlaybackOff PresetPlaybackMode = 0x0000
	PresetPlaybackAll PresetPlaybackMode = 0xFFFF
)

// GetPresetPlaybackRequest asks which scene a device is currently playing.
type GetPresetPlaybackRequest struct{}

func (GetPresetPlaybackRequest) commandClass() CommandClass { return CommandClassGet }
func (GetPresetPlaybackRequest) parameterID() ParameterId   { return PidPresetPlayback }
func (GetPresetPlaybackRequest) payload() []byte            { return nil }

// SetPresetPlaybackRequest selects which scene a device plays, at a given
// output level.
type SetPresetPlaybackRequest struct {
	Mode  PresetPlaybackMode
	Level uint8
}

func (SetPresetPlaybackRequest) commandClass() CommandClass { return CommandClassSet }
func (SetPresetPlaybackRequest) parameterID() ParameterId   { return PidPresetPlayback }
func (r SetPresetPlaybackRequest) payload() []byte {
	return []byte{byte(r.Mode >> 8), byte(r.Mode), r.Level}
}

// PresetPlaybackResponse is the PRESET_PLAYBACK GET response.
type PresetPlaybackResponse struct {
	Mode  PresetPlaybackMode
	Level uint8
}

func (PresetPlaybackResponse) isGetResponseParameterData() {}

func decodePresetPlaybackResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	mode, err := c.u16()
	if err != nil {
		return nil, err
	}
	level, err := c.u8()
	if err != nil {
		return nil, err
	}
	return PresetPlaybackResponse{Mode: PresetPlaybackMode(mode), Level: level}, nil
}
