package rdm

// decodeGetResponse dispatches a GetCommandResponse parameter payload by
// its parameter ID to the matching sub-decoder.
func decodeGetResponse(pid ParameterId, data []byte) (GetResponseParameterData, error) {
	switch pid {
	case PidDeviceInfo:
		return decodeDeviceInfoResponse(data)
	case PidSupportedParameters:
		return decodeSupportedParametersResponse(data)
	case PidParameterDescription:
		return decodeParameterDescriptionResponse(data)
	case PidProductDetailIdList:
		return decodeProductDetailIdListResponse(data)
	case PidDeviceModelDescription, PidManufacturerLabel, PidDeviceLabel, PidSoftwareVersionLabel, PidBootSoftwareVersionLabel:
		resp, err := decodeStringResponse(data)
		if err != nil {
			return nil, err
		}
		return resp, nil
	case PidFactoryDefaults:
		return decodeFactoryDefaultsResponse(data)
	case PidLanguageCapabilities:
		return decodeLanguageCapabilitiesResponse(data)
	case PidLanguage:
		return decodeLanguageResponse(data)
	case PidBootSoftwareVersionId:
		return decodeBootSoftwareVersionIdResponse(data)
	case PidDmxPersonality:
		return decodeDmxPersonalityResponse(data)
	case PidDmxPersonalityDescription:
		return decodeDmxPersonalityDescriptionResponse(data)
	case PidDmxStartAddress:
		return decodeDmxStartAddressResponse(data)
	case PidSlotInfo:
		return decodeSlotInfoResponse(data)
	case PidSlotDescription:
		return decodeSlotDescriptionResponse(data)
	case PidDefaultSlotValue:
		return decodeDefaultSlotValueResponse(data)
	case PidSensorDefinition:
		return decodeSensorDefinitionResponse(data)
	case PidSensorValue:
		v, err := decodeSensorValue(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	case PidDimmerInfo:
		return decodeDimmerInfoResponse(data)
	case PidMinimumLevel:
		return decodeMinimumLevelResponse(data)
	case PidMaximumLevel:
		return decodeMaximumLevelResponse(data)
	case PidCurve:
		return decodeCurveResponse(data)
	case PidCurveDescription:
		return decodeCurveDescriptionResponse(data)
	case PidOutputResponseTime:
		return decodeOutputResponseTimeResponse(data)
	case PidOutputResponseTimeDescription:
		return decodeOutputResponseTimeDescriptionResponse(data)
	case PidModulationFrequency:
		return decodeModulationFrequencyResponse(data)
	case PidModulationFrequencyDescription:
		return decodeModulationFrequencyDescriptionResponse(data)
	case PidDeviceHours, PidLampHours, PidLampStrikes, PidDevicePowerCycles:
		return decodeUint32CounterResponse(data)
	case PidLampState:
		return decodeLampStateResponse(data)
	case PidLampOnMode:
		return decodeLampOnModeResponse(data)
	case PidDisplayInvert:
		return decodeDisplayInvertResponse(data)
	case PidDisplayLevel:
		return decodeDisplayLevelResponse(data)
	case PidPanInvert, PidTiltInvert, PidPanTiltSwap:
		return decodeBoolResponse(data)
	case PidRealTimeClock:
		return decodeRealTimeClockResponse(data)
	case PidIdentifyDevice:
		return decodeIdentifyDeviceResponse(data)
	case PidPowerState:
		return decodePowerStateResponse(data)
	case PidSelfTestDescription:
		return decodeSelfTestDescriptionResponse(data)
	case PidPresetPlayback:
		return decodePresetPlaybackResponse(data)
	case PidProxiedDevices:
		return decodeProxiedDevicesResponse(data)
	case PidProxiedDeviceCount:
		return decodeProxiedDeviceCountResponse(data)
	case PidCommsStatus:
		return decodeCommsStatusResponse(data)
	case PidStatusMessages:
		return decodeStatusMessagesResponse(data)
	case PidStatusIdDescription:
		return decodeStatusIdDescriptionResponse(data)
	case PidSubDeviceStatusReportThreshold:
		return decodeSubDeviceStatusReportThresholdResponse(data)
	default:
		return nil, newErr(KindUnsupportedParameterId, uint32(pid))
	}
}

// decodeSetResponse dispatches a SetCommandResponse parameter payload.
// Nearly every SET response is a bare acknowledgement with no parameter
// data; SENSOR_VALUE is the one standard exception, returning the sensor's
// post-reset reading.
func decodeSetResponse(pid ParameterId, data []byte) (SetResponseParameterData, error) {
	if pid == PidSensorValue {
		v, err := decodeSensorValue(data)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	if !standardParameterIds[pid] {
		return nil, newErr(KindUnsupportedParameterId, uint32(pid))
	}
	if len(data) != 0 {
		return nil, newErr(KindInvalidParameterDataLength, uint32(len(data)))
	}
	return EmptyResponse{}, nil
}
