package rdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSensorDefinitionResponse(t *testing.T) {
	data := []byte{
		0x00,       // sensor number
		0x00,       // type: temperature
		0x01,       // unit: centigrade
		0x00,       // prefix: none
		0x00, 0x00, // range min
		0x00, 0x64, // range max
		0x00, 0x0A, // normal min
		0x00, 0x50, // normal max
		0x01, // recorded value support
	}
	desc := append(data, []byte("Heat Sink")...)

	resp, err := decodeSensorDefinitionResponse(desc)
	require.NoError(t, err)
	require.Equal(t, SensorDefinition{
		SensorNumber:         0,
		Type:                 SensorTypeTemperature,
		Unit:                 SensorUnitCentigrade,
		Prefix:               SensorUnitPrefixNone,
		RangeMin:             0,
		RangeMax:             100,
		NormalMin:            10,
		NormalMax:            80,
		RecordedValueSupport: 1,
		Description:          "Heat Sink",
	}, resp)
}

func TestDecodeSensorDefinitionResponseTooShort(t *testing.T) {
	_, err := decodeSensorDefinitionResponse([]byte{0x00, 0x01})
	require.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeSensorDefinitionResponseInvalidType(t *testing.T) {
	data := []byte{
		0x00,
		0xFE, // not a recognized sensor type
		0x00,
		0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00,
	}
	_, err := decodeSensorDefinitionResponse(data)
	require.Error(t, err)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Equal(t, KindInvalidSensorType, protoErr.Kind)
}

func TestDecodeSensorValue(t *testing.T) {
	data := []byte{
		0x00,
		0x00, 0x14, // present 20
		0x00, 0x0A, // lowest 10
		0x00, 0x1E, // highest 30
		0x00, 0x14, // recorded 20
	}
	v, err := decodeSensorValue(data)
	require.NoError(t, err)
	require.Equal(t, SensorValue{
		SensorNumber:  0,
		PresentValue:  20,
		LowestValue:   10,
		HighestValue:  30,
		RecordedValue: 20,
	}, v)
}

func TestDecodeSensorValueWrongLength(t *testing.T) {
	_, err := decodeSensorValue([]byte{0x00})
	require.ErrorIs(t, err, ErrMalformedPacket)
}

func TestSensorRequestPayloads(t *testing.T) {
	require.Equal(t, []byte{AllSensors}, GetSensorValueRequest{SensorNumber: AllSensors}.payload())
	require.Equal(t, PidSensorValue, SetSensorValueRequest{}.parameterID())
	require.Equal(t, PidRecordSensors, RecordSensorsRequest{}.parameterID())
}
