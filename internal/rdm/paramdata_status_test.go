package rdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeStatusMessageEntries(t *testing.T) {
	data := []byte{
		0x00, 0x00, byte(StatusTypeWarning), 0x00, 0x01, 0x00, 0x0A, 0xFF, 0xFF,
		0x00, 0x01, byte(StatusTypeError), 0x00, 0x02, 0x00, 0x00, 0x00, 0x00,
	}
	entries, err := decodeStatusMessageEntries(data)
	require.NoError(t, err)
	require.Equal(t, []StatusMessageEntry{
		{SubDevice: 0, StatusType: StatusTypeWarning, StatusMessageId: 1, DataValue1: 10, DataValue2: -1},
		{SubDevice: 1, StatusType: StatusTypeError, StatusMessageId: 2, DataValue1: 0, DataValue2: 0},
	}, entries)
}

func TestDecodeStatusMessageEntriesBadLength(t *testing.T) {
	_, err := decodeStatusMessageEntries([]byte{0x00, 0x00, 0x00})
	require.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeStatusMessageEntriesInvalidType(t *testing.T) {
	data := []byte{0x00, 0x00, 0xEE, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}
	_, err := decodeStatusMessageEntries(data)
	require.Error(t, err)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Equal(t, KindInvalidStatusType, protoErr.Kind)
}

func TestDecodeProxiedDevicesResponse(t *testing.T) {
	uid1 := NewDeviceUID(0x0102, 0x03040506)
	uid2 := NewDeviceUID(0x0605, 0x04030201)
	b1, b2 := uid1.Bytes(), uid2.Bytes()
	data := append(append([]byte{}, b1[:]...), b2[:]...)
	resp, err := decodeProxiedDevicesResponse(data)
	require.NoError(t, err)
	require.Equal(t, ProxiedDevicesResponse{Devices: []DeviceUID{uid1, uid2}}, resp)
}

func TestDecodeProxiedDevicesResponseBadLength(t *testing.T) {
	_, err := decodeProxiedDevicesResponse([]byte{0x00, 0x01, 0x02})
	require.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeProxiedDeviceCountResponse(t *testing.T) {
	resp, err := decodeProxiedDeviceCountResponse([]byte{0x00, 0x02, 0x01})
	require.NoError(t, err)
	require.Equal(t, ProxiedDeviceCountResponse{DeviceCount: 2, ListChanged: true}, resp)
}

func TestDecodeCommsStatusResponse(t *testing.T) {
	resp, err := decodeCommsStatusResponse([]byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03})
	require.NoError(t, err)
	require.Equal(t, CommsStatusResponse{ShortMessage: 1, LengthMismatch: 2, ChecksumFail: 3}, resp)
}

func TestClearCommsStatusRequest(t *testing.T) {
	req := ClearCommsStatusRequest{}
	require.Nil(t, req.payload())
	require.Equal(t, PidCommsStatus, req.parameterID())
	require.Equal(t, CommandClassSet, req.commandClass())
}

func TestGetQueuedMessagePayload(t *testing.T) {
	req := GetQueuedMessageRequest{MinimumStatusType: StatusTypeAdvisory}
	require.Equal(t, []byte{byte(StatusTypeAdvisory)}, req.payload())
}

func TestGetStatusMessagesPayload(t *testing.T) {
	req := GetStatusMessagesRequest{MinimumStatusType: StatusTypeError}
	require.Equal(t, []byte{byte(StatusTypeError)}, req.payload())
}

func TestDecodeStatusMessagesResponse(t *testing.T) {
	data := []byte{0x00, 0x00, byte(StatusTypeAdvisory), 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}
	resp, err := decodeStatusMessagesResponse(data)
	require.NoError(t, err)
	require.Equal(t, StatusMessagesResponse{
		Messages: []StatusMessageEntry{
			{SubDevice: 0, StatusType: StatusTypeAdvisory, StatusMessageId: 1, DataValue1: 0, DataValue2: 0},
		},
	}, resp)
}

func TestGetStatusIdDescriptionPayload(t *testing.T) {
	req := GetStatusIdDescriptionRequest{StatusMessageId: 0x0102}
	require.Equal(t, []byte{0x01, 0x02}, req.payload())
}

func TestDecodeStatusIdDescriptionResponse(t *testing.T) {
	data := append([]byte{0x01, 0x02}, []byte("Lamp failure")...)
	resp, err := decodeStatusIdDescriptionResponse(data)
	require.NoError(t, err)
	require.Equal(t, StatusIdDescriptionResponse{StatusMessageId: 0x0102, Description: "Lamp failure"}, resp)
}

func TestClearStatusIdRequest(t *testing.T) {
	req := ClearStatusIdRequest{}
	require.Nil(t, req.payload())
	require.Equal(t, PidClearStatusId, req.parameterID())
}

func TestSubDeviceStatusReportThreshold(t *testing.T) {
	req := SetSubDeviceStatusReportThresholdRequest{Threshold: StatusTypeWarning}
	require.Equal(t, []byte{byte(StatusTypeWarning)}, req.payload())

	resp, err := decodeSubDeviceStatusReportThresholdResponse([]byte{byte(StatusTypeWarning)})
	require.NoError(t, err)
	require.Equal(t, SubDeviceStatusReportThresholdResponse{Threshold: StatusTypeWarning}, resp)
}

func TestDecodeSubDeviceStatusReportThresholdResponseInvalid(t *testing.T) {
	_, err := decodeSubDeviceStatusReportThresholdResponse([]byte{0xEE})
	require.Error(t, err)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Equal(t, KindInvalidStatusType, protoErr.Kind)
}
