package main

import (
	"encoding/json"
	"fmt"

	"github.com/lumenctl/rdmctl/internal/rdm"
)

// frameMessage is the JSON shape broadcast to websocket clients for each
// decoded frame.
type frameMessage struct {
	Kind              string `json:"kind"`
	DiscoveryUID      string `json:"discoveryUid,omitempty"`
	Source            string `json:"source,omitempty"`
	Destination       string `json:"destination,omitempty"`
	TransactionNumber uint8  `json:"transactionNumber,omitempty"`
	CommandClass      string `json:"commandClass,omitempty"`
	ParameterId       string `json:"parameterId,omitempty"`
	ParameterData     any    `json:"parameterData,omitempty"`
}

// marshalFrame converts a decoded frame into its JSON wire form.
func marshalFrame(frame *rdm.Frame) ([]byte, error) {
	switch frame.Kind {
	case rdm.FrameKindDiscoveryUniqueBranch:
		return json.Marshal(frameMessage{
			Kind:         "discoveryUniqueBranch",
			DiscoveryUID: frame.DiscoveryUID.String(),
		})
	case rdm.FrameKindResponse:
		resp := frame.Response
		return json.Marshal(frameMessage{
			Kind:              "response",
			Source:            resp.Source.String(),
			Destination:       resp.Destination.String(),
			TransactionNumber: resp.TransactionNumber,
			CommandClass:      fmt.Sprintf("%v", resp.CommandClass),
			ParameterId:       fmt.Sprintf("%v", resp.ParameterId),
			ParameterData:     resp.ParameterData,
		})
	default:
		return nil, fmt.Errorf("rdmmonitor: unknown frame kind %d", frame.Kind)
	}
}
