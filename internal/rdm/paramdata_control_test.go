package rdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetIdentifyDevicePayload(t *testing.T) {
	require.Equal(t, []byte{0x01}, SetIdentifyDeviceRequest{Identify: true}.payload())
	require.Equal(t, []byte{0x00}, SetIdentifyDeviceRequest{Identify: false}.payload())
}

func TestDecodeIdentifyDeviceResponseDirect(t *testing.T) {
	resp, err := decodeIdentifyDeviceResponse([]byte{0x01})
	require.NoError(t, err)
	require.Equal(t, IdentifyDeviceResponse{Identifying: true}, resp)
}

func TestResetDevicePayload(t *testing.T) {
	require.Equal(t, []byte{byte(ResetDeviceWarm)}, ResetDeviceRequest{Mode: ResetDeviceWarm}.payload())
	require.Equal(t, []byte{byte(ResetDeviceCold)}, ResetDeviceRequest{Mode: ResetDeviceCold}.payload())
	require.Equal(t, PidResetDevice, ResetDeviceRequest{}.parameterID())
	require.Equal(t, CommandClassSet, ResetDeviceRequest{}.commandClass())
}

func TestSetPowerStatePayload(t *testing.T) {
	require.Equal(t, []byte{byte(PowerStateNormal)}, SetPowerStateRequest{State: PowerStateNormal}.payload())
}

func TestDecodePowerStateResponse(t *testing.T) {
	resp, err := decodePowerStateResponse([]byte{byte(PowerStateStandby)})
	require.NoError(t, err)
	require.Equal(t, PowerStateResponse{State: PowerStateStandby}, resp)

	resp, err = decodePowerStateResponse([]byte{byte(PowerStateNormal)})
	require.NoError(t, err)
	require.Equal(t, PowerStateResponse{State: PowerStateNormal}, resp)
}

func TestDecodePowerStateResponseInvalid(t *testing.T) {
	_, err := decodePowerStateResponse([]byte{0x7E})
	require.Error(t, err)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.Equal(t, KindInvalidPowerState, protoErr.Kind)
}

func TestPerformSelfTestPayload(t *testing.T) {
	require.Equal(t, []byte{byte(SelfTestStopAll)}, PerformSelfTestRequest{Test: SelfTestStopAll}.payload())
	require.Equal(t, []byte{byte(SelfTestAll)}, PerformSelfTestRequest{Test: SelfTestAll}.payload())
}

func TestGetSelfTestDescriptionPayload(t *testing.T) {
	req := GetSelfTestDescriptionRequest{Test: 0x01}
	require.Equal(t, []byte{0x01}, req.payload())
}

func TestDecodeSelfTestDescriptionResponse(t *testing.T) {
	data := append([]byte{0x01}, []byte("Full range strobe")...)
	resp, err := decodeSelfTestDescriptionResponse(data)
	require.NoError(t, err)
	require.Equal(t, SelfTestDescriptionResponse{
		Test:        0x01,
		Description: "Full range strobe",
	}, resp)
}

func TestCapturePresetPayload(t *testing.T) {
	req := CapturePresetRequest{
		SceneNumber:  0x0001,
		UpFadeTime:   0x0014,
		DownFadeTime: 0x0028,
		WaitTime:     0x0000,
	}
	require.Equal(t, []byte{
		0x00, 0x01,
		0x00, 0x14,
		0x00, 0x28,
		0x00, 0x00,
	}, req.payload())
	require.Equal(t, PidCapturePreset, req.parameterID())
	require.Equal(t, CommandClassSet, req.commandClass())
}

func TestSetPresetPlaybackPayload(t *testing.T) {
	req := SetPresetPlaybackRequest{Mode: PresetPlaybackAll, Level: 0xFF}
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF}, req.payload())

	req = SetPresetPlaybackRequest{Mode: PresetPlaybackOff, Level: 0x00}
	require.Equal(t, []byte{0x00, 0x00, 0x00}, req.payload())
}

func TestDecodePresetPlaybackResponse(t *testing.T) {
	resp, err := decodePresetPlaybackResponse([]byte{0x00, 0x01, 0x80})
	require.NoError(t, err)
	require.Equal(t, PresetPlaybackResponse{Mode: PresetPlaybackMode(1), Level: 0x80}, resp)
}
