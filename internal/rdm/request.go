package rdm

// RequestParameter is the closed set of request-side parameter payloads
// this package knows how to encode. The command class and parameter ID of
// an RdmRequest are derived from the concrete RequestParameter it carries,
// so a request can never claim a command class inconsistent with its
// payload.
type RequestParameter interface {
	commandClass() CommandClass
	parameterID() ParameterId
	payload() []byte
}

// RdmRequest is a fully-addressed, typed RDM request ready to encode.
type RdmRequest struct {
	Destination       DeviceUID
	Source            DeviceUID
	TransactionNumber uint8
	PortId            uint8
	SubDevice         SubDeviceId
	Parameter         RequestParameter
}

// NewRdmRequest constructs a request. The command class and parameter ID
// are derived entirely from parameter.
func NewRdmRequest(destination, source DeviceUID, transactionNumber, portId uint8, subDevice SubDeviceId, parameter RequestParameter) RdmRequest {
	return RdmRequest{
		Destination:       destination,
		Source:            source,
		TransactionNumber: transactionNumber,
		PortId:            portId,
		SubDevice:         subDevice,
		Parameter:         parameter,
	}
}

// CommandClass reports the command class derived from the request's parameter.
func (r RdmRequest) CommandClass() CommandClass {
	return r.Parameter.commandClass()
}

// ParameterId reports the parameter ID derived from the request's parameter.
func (r RdmRequest) ParameterId() ParameterId {
	return r.Parameter.parameterID()
}

// Encode deterministically produces the byte sequence for a standard RDM
// frame carrying this request. Encoding cannot fail: every RequestParameter
// is already typed correctly by construction.
func (r RdmRequest) Encode() []byte {
	data := r.Parameter.payload()

	h := frameHeader{
		MessageLength:     uint8(headerLen + len(data)),
		Destination:       r.Destination,
		Source:            r.Source,
		TransactionNumber: r.TransactionNumber,
		PortOrResponse:    r.PortId,
		MessageCount:      0x00, // always zero in requests
		SubDevice:         r.SubDevice,
		CommandClass:      r.CommandClass(),
		ParameterId:       r.ParameterId(),
		ParameterDataLen:  uint8(len(data)),
	}

	frame := encodeHeader(h)
	frame = append(frame, data...)
	return appendChecksum(frame)
}
