package rdm

// RdmResponse is a fully-decoded standard RDM frame.
type RdmResponse struct {
	Destination       DeviceUID
	Source            DeviceUID
	TransactionNumber uint8
	ResponseType      ResponseType
	MessageCount      uint8
	SubDevice         SubDeviceId
	CommandClass      CommandClass
	ParameterId       ParameterId

	// ParameterData holds the decoded payload, or nil if the frame carried
	// no parameter data. Its dynamic type implements GetResponseParameterData
	// when CommandClass is GetCommandResponse, SetResponseParameterData when
	// CommandClass is SetCommandResponse, or DiscoveryResponseParameterData
	// when CommandClass is DiscoveryCommandResponse.
	ParameterData any
}

// GetResponseParameterData is the closed set of payload shapes a
// GetCommandResponse frame can carry.
type GetResponseParameterData interface {
	isGetResponseParameterData()
}

// SetResponseParameterData is the closed set of payload shapes a
// SetCommandResponse frame can carry.
type SetResponseParameterData interface {
	isSetResponseParameterData()
}

// DiscoveryResponseParameterData is the closed set of payload shapes a
// DiscoveryCommandResponse frame can carry (DiscMute/DiscUnMute responses;
// the DUB response itself is a distinct frame shape, see FrameKindDiscoveryUniqueBranch).
type DiscoveryResponseParameterData interface {
	isDiscoveryResponseParameterData()
}

// FrameKind distinguishes the two frame shapes that share the RDM wire:
// the standard frame and the Discovery Unique Branch response.
type FrameKind int

const (
	FrameKindResponse FrameKind = iota
	FrameKindDiscoveryUniqueBranch
)

// Frame is the sum of the two shapes RDM.Parse can yield.
type Frame struct {
	Kind FrameKind

	// Response is set when Kind is FrameKindResponse.
	Response *RdmResponse

	// DiscoveryUID is set when Kind is FrameKindDiscoveryUniqueBranch.
	DiscoveryUID *DeviceUID
}
