package rdm

// GetDimmerInfoRequest asks for the level range and curve/response-time
// capabilities of a dimmer.
type GetDimmerInfoRequest struct{}

func (GetDimmerInfoRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDimmerInfoRequest) parameterID() ParameterId   { return PidDimmerInfo }
func (GetDimmerInfoRequest) payload() []byte            { return nil }

// DimmerInfoResponse is the DIMMER_INFO GET response.
type DimmerInfoResponse struct {
	MinimumLevelLowerLimit uint16
	MinimumLevelUpperLimit uint16
	MaximumLevelLowerLimit uint16
	MaximumLevelUpperLimit uint16
	CurveCount             uint8
	LevelResolution        uint8
	SplitLevelsSupported   bool
}

func (DimmerInfoResponse) isGetResponseParameterData() {}

func decodeDimmerInfoResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	minLo, err := c.u16()
	if err != nil {
		return nil, err
	}
	minHi, err := c.u16()
	if err != nil {
		return nil, err
	}
	maxLo, err := c.u16()
	if err != nil {
		return nil, err
	}
	maxHi, err := c.u16()
	if err != nil {
		return nil, err
	}
	curveCount, err := c.u8()
	if err != nil {
		return nil, err
	}
	resolution, err := c.u8()
	if err != nil {
		return nil, err
	}
	splitSupported, err := c.u8()
	if err != nil {
		return nil, err
	}
	return DimmerInfoResponse{
		MinimumLevelLowerLimit: minLo,
		MinimumLevelUpperLimit: minHi,
		MaximumLevelLowerLimit: maxLo,
		MaximumLevelUpperLimit: maxHi,
		CurveCount:             curveCount,
		LevelResolution:        resolution,
		SplitLevelsSupported:   splitSupported != 0,
	}, nil
}

// GetMinimumLevelRequest asks for a dimmer's minimum-level behavior.
type GetMinimumLevelRequest struct{}

func (GetMinimumLevelRequest) commandClass() CommandClass { return CommandClassGet }
func (GetMinimumLevelRequest) parameterID() ParameterId   { return PidMinimumLevel }
func (GetMinimumLevelRequest) payload() []byte            { return nil }

// MinimumLevelResponse is the MINIMUM_LEVEL GET response;
// SetMinimumLevelRequest carries the same three fields.
type MinimumLevelResponse struct {
	MinimumLevelIncreasing uint16
	MinimumLevelDecreasing uint16
	OnBelowMinimum         bool
}

func (MinimumLevelResponse) isGetResponseParameterData() {}

func decodeMinimumLevelResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	inc, err := c.u16()
	if err != nil {
		return nil, err
	}
	dec, err := c.u16()
	if err != nil {
		return nil, err
	}
	onBelow, err := c.u8()
	if err != nil {
		return nil, err
	}
	return MinimumLevelResponse{MinimumLevelIncreasing: inc, MinimumLevelDecreasing: dec, OnBelowMinimum: onBelow != 0}, nil
}

// SetMinimumLevelRequest configures a dimmer's minimum-level behavior.
type SetMinimumLevelRequest struct {
	MinimumLevelIncreasing uint16
	MinimumLevelDecreasing uint16
	OnBelowMinimum         bool
}

func (SetMinimumLevelRequest) commandClass() CommandClass { return CommandClassSet }
func (SetMinimumLevelRequest) parameterID() ParameterId   { return PidMinimumLevel }
func (r SetMinimumLevelRequest) payload() []byte {
	onBelow := uint8(0)
	if r.OnBelowMinimum {
		onBelow = 1
	}
	return []byte{
		byte(r.MinimumLevelIncreasing >> 8), byte(r.MinimumLevelIncreasing),
		byte(r.MinimumLevelDecreasing >> 8), byte(r.MinimumLevelDecreasing),
		onBelow,
	}
}

// GetMaximumLevelRequest asks for a dimmer's maximum output level.
type GetMaximumLevelRequest struct{}

func (GetMaximumLevelRequest) commandClass() CommandClass { return CommandClassGet }
func (GetMaximumLevelRequest) parameterID() ParameterId   { return PidMaximumLevel }
func (GetMaximumLevelRequest) payload() []byte            { return nil }

// SetMaximumLevelRequest configures a dimmer's maximum output level.
type SetMaximumLevelRequest struct {
	MaximumLevel uint16
}

func (SetMaximumLevelRequest) commandClass() CommandClass { return CommandClassSet }
func (SetMaximumLevelRequest) parameterID() ParameterId   { return PidMaximumLevel }
func (r SetMaximumLevelRequest) payload() []byte {
	return []byte{byte(r.MaximumLevel >> 8), byte(r.MaximumLevel)}
}

// MaximumLevelResponse is the MAXIMUM_LEVEL GET response.
type MaximumLevelResponse struct {
	MaximumLevel uint16
}

func (MaximumLevelResponse) isGetResponseParameterData() {}

func decodeMaximumLevelResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	v, err := c.u16()
	if err != nil {
		return nil, err
	}
	return MaximumLevelResponse{MaximumLevel: v}, nil
}

// indexedSelectionResponse is the shared shape of the GET response for a
// "current index / count of choices" parameter (CURVE, OUTPUT_RESPONSE_TIME,
// MODULATION_FREQUENCY).
type indexedSelectionResponse struct {
	CurrentIndex uint8
	Count        uint8
}

func decodeIndexedSelectionResponse(data []byte) (indexedSelectionResponse, error) {
	c := newCursor(data)
	cur, err := c.u8()
	if err != nil {
		return indexedSelectionResponse{}, err
	}
	count, err := c.u8()
	if err != nil {
		return indexedSelectionResponse{}, err
	}
	return indexedSelectionResponse{CurrentIndex: cur, Count: count}, nil
}

// GetCurveRequest asks for a dimmer's current response curve and the
// number of curves it offers.
type GetCurveRequest struct{}

func (GetCurveRequest) commandClass() CommandClass { return CommandClassGet }
func (GetCurveRequest) parameterID() ParameterId   { return PidCurve }
func (GetCurveRequest) payload() []byte            { return nil }

// SetCurveRequest selects a response curve by its 1-based index.
type SetCurveRequest struct {
	CurveIndex uint8
}

func (SetCurveRequest) commandClass() CommandClass { return CommandClassSet }
func (SetCurveRequest) parameterID() ParameterId   { return PidCurve }
func (r SetCurveRequest) payload() []byte          { return []byte{r.CurveIndex} }

// CurveResponse is the CURVE GET response.
type CurveResponse struct {
	CurrentCurve uint8
	CurveCount   uint8
}

func (CurveResponse) isGetResponseParameterData() {}

func decodeCurveResponse(data []byte) (GetResponseParameterData, error) {
	sel, err := decodeIndexedSelectionResponse(data)
	if err != nil {
		return nil, err
	}
	return CurveResponse{CurrentCurve: sel.CurrentIndex, CurveCount: sel.Count}, nil
}

// GetCurveDescriptionRequest asks for the description of a response curve
// by its 1-based index.
type GetCurveDescriptionRequest struct {
	CurveIndex uint8
}

func (GetCurveDescriptionRequest) commandClass() CommandClass { return CommandClassGet }
func (GetCurveDescriptionRequest) parameterID() ParameterId   { return PidCurveDescription }
func (r GetCurveDescriptionRequest) payload() []byte          { return []byte{r.CurveIndex} }

// CurveDescriptionResponse is the CURVE_DESCRIPTION GET response.
type CurveDescriptionResponse struct {
	CurveIndex  uint8
	Description string
}

func (CurveDescriptionResponse) isGetResponseParameterData() {}

func decodeCurveDescriptionResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	idx, err := c.u8()
	if err != nil {
		return nil, err
	}
	desc, err := c.restString()
	if err != nil {
		return nil, err
	}
	return CurveDescriptionResponse{CurveIndex: idx, Description: desc}, nil
}

// GetOutputResponseTimeRequest asks for a dimmer's current output response
// time setting and the number of settings it offers.
type GetOutputResponseTimeRequest struct{}

func (GetOutputResponseTimeRequest) commandClass() CommandClass { return CommandClassGet }
func (GetOutputResponseTimeRequest) parameterID() ParameterId   { return PidOutputResponseTime }
func (GetOutputResponseTimeRequest) payload() []byte            { return nil }

// SetOutputResponseTimeRequest selects a response-time setting by its
// 1-based index.
type SetOutputResponseTimeRequest struct {
	ResponseTimeIndex uint8
}

func (SetOutputResponseTimeRequest) commandClass() CommandClass { return CommandClassSet }
func (SetOutputResponseTimeRequest) parameterID() ParameterId   { return PidOutputResponseTime }
func (r SetOutputResponseTimeRequest) payload() []byte          { return []byte{r.ResponseTimeIndex} }

// OutputResponseTimeResponse is the OUTPUT_RESPONSE_TIME GET response.
type OutputResponseTimeResponse struct {
	CurrentResponseTime uint8
	ResponseTimeCount   uint8
}

func (OutputResponseTimeResponse) isGetResponseParameterData() {}

func decodeOutputResponseTimeResponse(data []byte) (GetResponseParameterData, error) {
	sel, err := decodeIndexedSelectionResponse(data)
	if err != nil {
		return nil, err
	}
	return OutputResponseTimeResponse{CurrentResponseTime: sel.CurrentIndex, ResponseTimeCount: sel.Count}, nil
}

// GetOutputResponseTimeDescriptionRequest asks for the description of a
// response-time setting by its 1-based index.
type GetOutputResponseTimeDescriptionRequest struct {
	ResponseTimeIndex uint8
}

func (GetOutputResponseTimeDescriptionRequest) commandClass() CommandClass { return CommandClassGet }
func (GetOutputResponseTimeDescriptionRequest) parameterID() ParameterId {
	return PidOutputResponseTimeDescription
}
func (r GetOutputResponseTimeDescriptionRequest) payload() []byte { return []byte{r.ResponseTimeIndex} }

// OutputResponseTimeDescriptionResponse is the
// OUTPUT_RESPONSE_TIME_DESCRIPTION GET response.
type OutputResponseTimeDescriptionResponse struct {
	ResponseTimeIndex uint8
	Description       string
}

func (OutputResponseTimeDescriptionResponse) isGetResponseParameterData() {}

func decodeOutputResponseTimeDescriptionResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	idx, err := c.u8()
	if err != nil {
		return nil, err
	}
	desc, err := c.restString()
	if err != nil {
		return nil, err
	}
	return OutputResponseTimeDescriptionResponse{ResponseTimeIndex: idx, Description: desc}, nil
}

// GetModulationFrequencyRequest asks for a dimmer's current PWM modulation
// frequency setting and the number of settings it offers.
type GetModulationFrequencyRequest struct{}

func (GetModulationFrequencyRequest) commandClass() CommandClass { return CommandClassGet }
func (GetModulationFrequencyRequest) parameterID() ParameterId   { return PidModulationFrequency }
func (GetModulationFrequencyRequest) payload() []byte            { return nil }

// SetModulationFrequencyRequest selects a modulation-frequency setting by
// its 1-based index.
type SetModulationFrequencyRequest struct {
	FrequencyIndex uint8
}

func (SetModulationFrequencyRequest) commandClass() CommandClass { return CommandClassSet }
func (SetModulationFrequencyRequest) parameterID() ParameterId   { return PidModulationFrequency }
func (r SetModulationFrequencyRequest) payload() []byte          { return []byte{r.FrequencyIndex} }

// ModulationFrequencyResponse is the MODULATION_FREQUENCY GET response.
type ModulationFrequencyResponse struct {
	CurrentFrequency uint8
	FrequencyCount   uint8
}

func (ModulationFrequencyResponse) isGetResponseParameterData() {}

func decodeModulationFrequencyResponse(data []byte) (GetResponseParameterData, error) {
	sel, err := decodeIndexedSelectionResponse(data)
	if err != nil {
		return nil, err
	}
	return ModulationFrequencyResponse{CurrentFrequency: sel.CurrentIndex, FrequencyCount: sel.Count}, nil
}

// GetModulationFrequencyDescriptionRequest asks for the frequency value and
// description of a modulation-frequency setting by its 1-based index.
type GetModulationFrequencyDescriptionRequest struct {
	FrequencyIndex uint8
}

func (GetModulationFrequencyDescriptionRequest) commandClass() CommandClass { return CommandClassGet }
func (GetModulationFrequencyDescriptionRequest) parameterID() ParameterId {
	return PidModulationFrequencyDescription
}
func (r GetModulationFrequencyDescriptionRequest) payload() []byte { return []byte{r.FrequencyIndex} }

// ModulationFrequencyDescriptionResponse is the
// MODULATION_FREQUENCY_DESCRIPTION GET response.
type ModulationFrequencyDescriptionResponse struct {
	FrequencyIndex uint8
	FrequencyHz    uint32
	Description    string
}

func (ModulationFrequencyDescriptionResponse) isGetResponseParameterData() {}

func decodeModulationFrequencyDescriptionResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	idx, err := c.u8()
	if err != nil {
		return nil, err
	}
	freq, err := c.u32()
	if err != nil {
		return nil, err
	}
	desc, err := c.restString()
	if err != nil {
		return nil, err
	}
	return ModulationFrequencyDescriptionResponse{FrequencyIndex: idx, FrequencyHz: freq, Description: desc}, nil
}
