package rdm

// Parse consumes complete frames from the front of *buf. On each call it
// either:
//
//   - returns (frame, nil) having advanced *buf past the consumed bytes;
//   - returns (nil, nil) meaning no frame was produced: either more bytes
//     are needed, and *buf is left untouched, or the leading byte cannot
//     start a frame, and *buf is advanced past it;
//   - returns (nil, err) having advanced *buf by exactly one byte so the
//     caller can retry at the next start-code candidate.
//
// One-byte error advancement exists because the line is shared and
// half-duplex: a frame prefix colliding with noise must not desynchronize
// the receiver.
func Parse(buf *[]byte) (*Frame, error) {
	b := *buf
	if len(b) == 0 {
		return nil, nil
	}

	switch {
	case b[0] == StartCode && len(b) >= 2 && b[1] == SubStartCode:
		return parseStandardFrame(buf)
	case b[0] == DubPreamble || b[0] == DubSeparator:
		return parseDiscoveryFrame(buf)
	default:
		*buf = b[1:]
		return nil, nil
	}
}

func parseStandardFrame(buf *[]byte) (*Frame, error) {
	b := *buf
	if len(b) < 25 {
		return nil, nil
	}

	length := b[2]
	if length < headerLen {
		*buf = b[1:]
		return nil, newErr(KindInvalidMessageLength, uint32(length))
	}
	L := int(length)

	if len(b) < L+2 {
		return nil, nil
	}

	computed := bsd16Sum(b[:L])
	found := uint16(b[L])<<8 | uint16(b[L+1])
	if computed != found {
		*buf = b[1:]
		return nil, newChecksumErr(computed, found)
	}

	dest, _ := DeviceUIDFromBytes(b[3:9])
	src, _ := DeviceUIDFromBytes(b[9:15])
	txn := b[15]
	responseTypeByte := b[16]
	msgCount := b[17]
	subDevice := SubDeviceId(uint16(b[18])<<8 | uint16(b[19]))

	cc, err := commandClassFromByte(b[20])
	if err != nil {
		*buf = b[1:]
		return nil, err
	}

	respType, err := responseTypeFromByte(responseTypeByte)
	if err != nil {
		*buf = b[1:]
		return nil, err
	}

	pid, err := ParameterIdFromUint16(uint16(b[21])<<8 | uint16(b[22]))
	if err != nil {
		*buf = b[1:]
		return nil, err
	}

	pdl := b[23]
	if pdl > MaxParameterDataLen || int(pdl) > L-headerLen {
		*buf = b[1:]
		return nil, newErr(KindInvalidParameterDataLength, uint32(pdl))
	}

	var paramData any
	if pdl > 0 {
		data := b[headerLen : headerLen+int(pdl)]
		decoded, decErr := decodeResponseParameterData(cc, pid, data)
		if decErr != nil {
			*buf = b[1:]
			return nil, decErr
		}
		paramData = decoded
	}

	*buf = b[L+2:]
	return &Frame{
		Kind: FrameKindResponse,
		Response: &RdmResponse{
			Destination:       dest,
			Source:            src,
			TransactionNumber: txn,
			ResponseType:      respType,
			MessageCount:      msgCount,
			SubDevice:         subDevice,
			CommandClass:      cc,
			ParameterId:       pid,
			ParameterData:     paramData,
		},
	}, nil
}

func parseDiscoveryFrame(buf *[]byte) (*Frame, error) {
	b := *buf
	uid, consumed, needMore, err := parseDiscoveryUniqueBranch(b)
	if needMore {
		return nil, nil
	}
	if err != nil {
		*buf = b[1:]
		return nil, err
	}
	*buf = b[consumed:]
	return &Frame{Kind: FrameKindDiscoveryUniqueBranch, DiscoveryUID: &uid}, nil
}
