package rdm

import (
	"bytes"

	"github.com/lunixbochs/struc"
)

// sensorDefinitionWire is the fixed-width prefix of a SENSOR_DEFINITION
// response, decoded with struc since every field is a plain fixed-offset
// integer and the struct tag already says exactly how wide each one is.
type sensorDefinitionWire struct {
	SensorNumber         uint8  `struc:"uint8"`
	Type                 uint8  `struc:"uint8"`
	Unit                 uint8  `struc:"uint8"`
	Prefix               uint8  `struc:"uint8"`
	RangeMin             int16  `struc:"int16,big"`
	RangeMax             int16  `struc:"int16,big"`
	NormalMin            int16  `struc:"int16,big"`
	NormalMax            int16  `struc:"int16,big"`
	RecordedValueSupport uint8  `struc:"uint8"`
}

// SensorDefinition describes the characteristics of one of a device's
// sensors.
type SensorDefinition struct {
	SensorNumber         uint8
	Type                 SensorType
	Unit                 SensorUnit
	Prefix               SensorUnitPrefix
	RangeMin             int16
	RangeMax             int16
	NormalMin            int16
	NormalMax            int16
	RecordedValueSupport uint8
	Description          string
}

func (SensorDefinition) isGetResponseParameterData() {}

const sensorDefinitionWireLen = 13

func decodeSensorDefinitionResponse(data []byte) (GetResponseParameterData, error) {
	if len(data) < sensorDefinitionWireLen {
		return nil, ErrMalformedPacket
	}
	var wire sensorDefinitionWire
	if err := struc.Unpack(bytes.NewReader(data[:sensorDefinitionWireLen]), &wire); err != nil {
		return nil, ErrMalformedPacket
	}
	sensorType, err := sensorTypeFromByte(wire.Type)
	if err != nil {
		return nil, err
	}
	unit, err := sensorUnitFromByte(wire.Unit)
	if err != nil {
		return nil, err
	}
	prefix, err := sensorUnitPrefixFromByte(wire.Prefix)
	if err != nil {
		return nil, err
	}
	c := newCursor(data[sensorDefinitionWireLen:])
	desc, err := c.restString()
	if err != nil {
		return nil, err
	}
	return SensorDefinition{
		SensorNumber:         wire.SensorNumber,
		Type:                 sensorType,
		Unit:                 unit,
		Prefix:               prefix,
		RangeMin:             wire.RangeMin,
		RangeMax:             wire.RangeMax,
		NormalMin:            wire.NormalMin,
		NormalMax:            wire.NormalMax,
		RecordedValueSupport: wire.RecordedValueSupport,
		Description:          desc,
	}, nil
}

// sensorValueWire is the fixed-width SENSOR_VALUE response payload.
type sensorValueWire struct {
	SensorNumber uint8 `struc:"uint8"`
	PresentValue int16 `struc:"int16,big"`
	LowestValue  int16 `struc:"int16,big"`
	HighestValue int16 `struc:"int16,big"`
	RecordedValue int16 `struc:"int16,big"`
}

// SensorValue is a decoded SENSOR_VALUE response.
type SensorValue struct {
	SensorNumber  uint8
	PresentValue  int16
	LowestValue   int16
	HighestValue  int16
	RecordedValue int16
}

func (SensorValue) isGetResponseParameterData() {}
func (SensorValue) isSetResponseParameterData() {}

const sensorValueWireLen = 9

func decodeSensorValue(data []byte) (SensorValue, error) {
	if len(data) != sensorValueWireLen {
		return SensorValue{}, ErrMalformedPacket
	}
	var wire sensorValueWire
	if err := struc.Unpack(bytes.NewReader(data), &wire); err != nil {
		return SensorValue{}, ErrMalformedPacket
	}
	return SensorValue{
		SensorNumber:  wire.SensorNumber,
		PresentValue:  wire.PresentValue,
		LowestValue:   wire.LowestValue,
		HighestValue:  wire.HighestValue,
		RecordedValue: wire.RecordedValue,
	}, nil
}
