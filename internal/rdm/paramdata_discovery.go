package rdm

// DiscUniqueBranchRequest asks every device whose UID falls within
// [Lower, Upper] to respond with a Discovery Unique Branch frame.
type DiscUniqueBranchRequest struct {
	Lower DeviceUID
	Upper DeviceUID
}

func (DiscUniqueBranchRequest) commandClass() CommandClass { return CommandClassDiscovery }
func (DiscUniqueBranchRequest) parameterID() ParameterId   { return PidDiscUniqueBranch }
func (r DiscUniqueBranchRequest) payload() []byte {
	lo := r.Lower.Bytes()
	hi := r.Upper.Bytes()
	out := make([]byte, 0, 12)
	out = append(out, lo[:]...)
	return append(out, hi[:]...)
}

// DiscMuteRequest silences the addressed device's discovery responses.
type DiscMuteRequest struct{}

func (DiscMuteRequest) commandClass() CommandClass { return CommandClassDiscovery }
func (DiscMuteRequest) parameterID() ParameterId   { return PidDiscMute }
func (DiscMuteRequest) payload() []byte            { return nil }

// DiscUnMuteRequest re-enables the addressed device's discovery responses.
type DiscUnMuteRequest struct{}

func (DiscUnMuteRequest) commandClass() CommandClass { return CommandClassDiscovery }
func (DiscUnMuteRequest) parameterID() ParameterId   { return PidDiscUnMute }
func (DiscUnMuteRequest) payload() []byte            { return nil }

// MuteControlField bits, carried in a MuteResponse.
const (
	MuteControlManagedProxy  uint16 = 1 << 0
	MuteControlSubDevice     uint16 = 1 << 1
	MuteControlBootLoader    uint16 = 1 << 2
	MuteControlProxiedDevice uint16 = 1 << 3
)

// MuteResponse is the DiscMute/DiscUnMute response payload.
type MuteResponse struct {
	ControlField uint16
	BindingUID   *DeviceUID
}

func (MuteResponse) isDiscoveryResponseParameterData() {}

func decodeDiscoveryResponse(pid ParameterId, data []byte) (DiscoveryResponseParameterData, error) {
	switch pid {
	case PidDiscMute, PidDiscUnMute:
		return decodeMuteResponse(data)
	default:
		return nil, newErr(KindUnsupportedParameterId, uint32(pid))
	}
}

func decodeMuteResponse(data []byte) (DiscoveryResponseParameterData, error) {
	c := newCursor(data)
	control, err := c.u16()
	if err != nil {
		return nil, err
	}
	resp := MuteResponse{ControlField: control}
	switch c.remaining() {
	case 0:
	case 6:
		uid, err := c.uid()
		if err != nil {
			return nil, err
		}
		resp.BindingUID = &uid
	default:
		return nil, ErrMalformedPacket
	}
	return resp, nil
}
