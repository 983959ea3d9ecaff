package rdm

// GetDeviceLabelRequest asks for the device's user-assigned label.
type GetDeviceLabelRequest struct{}

func (GetDeviceLabelRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDeviceLabelRequest) parameterID() ParameterId   { return PidDeviceLabel }
func (GetDeviceLabelRequest) payload() []byte            { return nil }

// SetDeviceLabelRequest assigns a new user label, up to 32 bytes.
type SetDeviceLabelRequest struct {
	Label string
}

func (SetDeviceLabelRequest) commandClass() CommandClass { return CommandClassSet }
func (SetDeviceLabelRequest) parameterID() ParameterId   { return PidDeviceLabel }
func (r SetDeviceLabelRequest) payload() []byte          { return encodeString(r.Label) }

// LanguageCode is an ISO 639-1 two-character language code as carried on
// the wire by LANGUAGE and LANGUAGE_CAPABILITIES.
type LanguageCode string

func decodeLanguageCode(data []byte) (LanguageCode, error) {
	if len(data) != 2 {
		return "", ErrMalformedPacket
	}
	return LanguageCode(data), nil
}

func (l LanguageCode) bytes() []byte {
	return []byte(l)
}

// GetLanguageCapabilitiesRequest asks for the set of languages a device
// can report STATUS_MESSAGES and other labels in.
type GetLanguageCapabilitiesRequest struct{}

func (GetLanguageCapabilitiesRequest) commandClass() CommandClass { return CommandClassGet }
func (GetLanguageCapabilitiesRequest) parameterID() ParameterId   { return PidLanguageCapabilities }
func (GetLanguageCapabilitiesRequest) payload() []byte            { return nil }

// LanguageCapabilitiesResponse is the LANGUAGE_CAPABILITIES GET response.
type LanguageCapabilitiesResponse struct {
	Languages []LanguageCode
}

func (LanguageCapabilitiesResponse) isGetResponseParameterData() {}

func decodeLanguageCapabilitiesResponse(data []byte) (GetResponseParameterData, error) {
	if len(data)%2 != 0 {
		return nil, ErrMalformedPacket
	}
	var out []LanguageCode
	for i := 0; i < len(data); i += 2 {
		code, err := decodeLanguageCode(data[i : i+2])
		if err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	return LanguageCapabilitiesResponse{Languages: out}, nil
}

// GetLanguageRequest asks for the device's currently active language.
type GetLanguageRequest struct{}

func (GetLanguageRequest) commandClass() CommandClass { return CommandClassGet }
func (GetLanguageRequest) parameterID() ParameterId   { return PidLanguage }
func (GetLanguageRequest) payload() []byte            { return nil }

// SetLanguageRequest selects the active language from the device's
// advertised LANGUAGE_CAPABILITIES set.
type SetLanguageRequest struct {
	Language LanguageCode
}

func (SetLanguageRequest) commandClass() CommandClass { return CommandClassSet }
func (SetLanguageRequest) parameterID() ParameterId   { return PidLanguage }
func (r SetLanguageRequest) payload() []byte          { return r.Language.bytes() }

// LanguageResponse is the LANGUAGE GET response.
type LanguageResponse struct {
	Language LanguageCode
}

func (LanguageResponse) isGetResponseParameterData() {}

func decodeLanguageResponse(data []byte) (GetResponseParameterData, error) {
	code, err := decodeLanguageCode(data)
	if err != nil {
		return nil, err
	}
	return LanguageResponse{Language: code}, nil
}

// GetSoftwareVersionLabelRequest asks for the running software's
// human-readable version label.
type GetSoftwareVersionLabelRequest struct{}

func (GetSoftwareVersionLabelRequest) commandClass() CommandClass { return CommandClassGet }
func (GetSoftwareVersionLabelRequest) parameterID() ParameterId   { return PidSoftwareVersionLabel }
func (GetSoftwareVersionLabelRequest) payload() []byte            { return nil }

// GetBootSoftwareVersionIdRequest asks for the numeric ID of the software
// image the device booted from.
type GetBootSoftwareVersionIdRequest struct{}

func (GetBootSoftwareVersionIdRequest) commandClass() CommandClass { return CommandClassGet }
func (GetBootSoftwareVersionIdRequest) parameterID() ParameterId   { return PidBootSoftwareVersionId }
func (GetBootSoftwareVersionIdRequest) payload() []byte            { return nil }

// BootSoftwareVersionIdResponse is the BOOT_SOFTWARE_VERSION_ID GET response.
type BootSoftwareVersionIdResponse struct {
	VersionId uint32
}

func (BootSoftwareVersionIdResponse) isGetResponseParameterData() {}

func decodeBootSoftwareVersionIdResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	v, err := c.u32()
	if err != nil {
		return nil, err
	}
	return BootSoftwareVersionIdResponse{VersionId: v}, nil
}

// GetBootSoftwareVersionLabelRequest asks for the human-readable label of
// the software image the device booted from.
type GetBootSoftwareVersionLabelRequest struct{}

func (GetBootSoftwareVersionLabelRequest) commandClass() CommandClass { return CommandClassGet }
func (GetBootSoftwareVersionLabelRequest) parameterID() ParameterId {
	return PidBootSoftwareVersionLabel
}
func (GetBootSoftwareVersionLabelRequest) payload() []byte { return nil }
