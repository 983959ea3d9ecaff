package rdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeGetResponseDispatchesByPid(t *testing.T) {
	resp, err := decodeGetResponse(PidIdentifyDevice, []byte{0x01})
	require.NoError(t, err)
	require.Equal(t, IdentifyDeviceResponse{Identifying: true}, resp)

	resp, err = decodeGetResponse(PidManufacturerLabel, []byte("Acme Lighting"))
	require.NoError(t, err)
	require.Equal(t, StringResponse{Value: "Acme Lighting"}, resp)

	resp, err = decodeGetResponse(PidLampHours, []byte{0x00, 0x00, 0x01, 0x00})
	require.NoError(t, err)
	require.Equal(t, Uint32CounterResponse{Value: 256}, resp)

	resp, err = decodeGetResponse(PidSensorValue, []byte{0x00, 0x00, 0x14, 0x00, 0x0A, 0x00, 0x1E, 0x00, 0x14})
	require.NoError(t, err)
	require.Equal(t, SensorValue{SensorNumber: 0, PresentValue: 20, LowestValue: 10, HighestValue: 30, RecordedValue: 20}, resp)
}

func TestDecodeGetResponseUnsupportedPid(t *testing.T) {
	_, err := decodeGetResponse(ParameterId(0x9999), nil)
	require.Error(t, err)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Equal(t, KindUnsupportedParameterId, protoErr.Kind)
}

func TestDecodeSetResponseSensorValueSpecialCase(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	resp, err := decodeSetResponse(PidSensorValue, data)
	require.NoError(t, err)
	require.Equal(t, SensorValue{}, resp)
}

func TestDecodeSetResponseStandardEmptyAck(t *testing.T) {
	resp, err := decodeSetResponse(PidDeviceLabel, nil)
	require.NoError(t, err)
	require.Equal(t, EmptyResponse{}, resp)
}

func TestDecodeSetResponseStandardWithUnexpectedData(t *testing.T) {
	_, err := decodeSetResponse(PidDeviceLabel, []byte{0x01})
	require.Error(t, err)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Equal(t, KindInvalidParameterDataLength, protoErr.Kind)
}

func TestDecodeSetResponseUnsupportedPid(t *testing.T) {
	_, err := decodeSetResponse(ParameterId(0x9999), nil)
	require.Error(t, err)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Equal(t, KindUnsupportedParameterId, protoErr.Kind)
}
