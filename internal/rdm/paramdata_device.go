package rdm

// EmptyResponse is what decodeSetResponse returns for a SET acknowledgement
// with no parameter data. Parse itself leaves RdmResponse.ParameterData nil
// whenever a frame's parameter data length is zero. It satisfies all three
// response-parameter-data interfaces.
type EmptyResponse struct{}

func (EmptyResponse) isGetResponseParameterData()       {}
func (EmptyResponse) isSetResponseParameterData()       {}
func (EmptyResponse) isDiscoveryResponseParameterData() {}

// GetDeviceInfoRequest asks for a device's DEVICE_INFO record.
type GetDeviceInfoRequest struct{}

func (GetDeviceInfoRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDeviceInfoRequest) parameterID() ParameterId   { return PidDeviceInfo }
func (GetDeviceInfoRequest) payload() []byte            { return nil }

// DeviceInfoResponse is the DEVICE_INFO GET response.
type DeviceInfoResponse struct {
	ProtocolMajor      uint8
	ProtocolMinor      uint8
	ModelId            uint16
	ProductCategory    ProductCategory
	SoftwareVersion    uint32
	Footprint          uint16
	CurrentPersonality uint8
	PersonalityCount   uint8
	DmxStartAddress    uint16
	SubDeviceCount     uint16
	SensorCount        uint8
}

func (DeviceInfoResponse) isGetResponseParameterData() {}

func decodeDeviceInfoResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	major, err := c.u8()
	if err != nil {
		return nil, err
	}
	minor, err := c.u8()
	if err != nil {
		return nil, err
	}
	model, err := c.u16()
	if err != nil {
		return nil, err
	}
	categoryCode, err := c.u16()
	if err != nil {
		return nil, err
	}
	category, err := productCategoryFromUint16(categoryCode)
	if err != nil {
		return nil, err
	}
	sw, err := c.u32()
	if err != nil {
		return nil, err
	}
	footprint, err := c.u16()
	if err != nil {
		return nil, err
	}
	curPers, err := c.u8()
	if err != nil {
		return nil, err
	}
	persCount, err := c.u8()
	if err != nil {
		return nil, err
	}
	startAddr, err := c.u16()
	if err != nil {
		return nil, err
	}
	subCount, err := c.u16()
	if err != nil {
		return nil, err
	}
	sensorCount, err := c.u8()
	if err != nil {
		return nil, err
	}
	return DeviceInfoResponse{
		ProtocolMajor:      major,
		ProtocolMinor:      minor,
		ModelId:            model,
		ProductCategory:    category,
		SoftwareVersion:    sw,
		Footprint:          footprint,
		CurrentPersonality: curPers,
		PersonalityCount:   persCount,
		DmxStartAddress:    startAddr,
		SubDeviceCount:     subCount,
		SensorCount:        sensorCount,
	}, nil
}

// GetSupportedParametersRequest asks for the list of parameter IDs a
// device implements beyond the mandatory set.
type GetSupportedParametersRequest struct{}

func (GetSupportedParametersRequest) commandClass() CommandClass { return CommandClassGet }
func (GetSupportedParametersRequest) parameterID() ParameterId   { return PidSupportedParameters }
func (GetSupportedParametersRequest) payload() []byte            { return nil }

// SupportedParametersResponse partitions a device's advertised parameter
// IDs into the standard range [0x0060, 0x8000) and the manufacturer-specific
// range [0x8000, 0xFFFF].
type SupportedParametersResponse struct {
	StandardParameterIds            []ParameterId
	ManufacturerSpecificParameterIds []ParameterId
}

func (SupportedParametersResponse) isGetResponseParameterData() {}

func decodeSupportedParametersResponse(data []byte) (GetResponseParameterData, error) {
	if len(data)%2 != 0 {
		return nil, ErrMalformedPacket
	}
	c := newCursor(data)
	resp := SupportedParametersResponse{}
	for c.remaining() > 0 {
		code, err := c.u16()
		if err != nil {
			return nil, err
		}
		switch {
		case code >= 0x8000:
			resp.ManufacturerSpecificParameterIds = append(resp.ManufacturerSpecificParameterIds, ParameterId(code))
		case code >= 0x0060:
			resp.StandardParameterIds = append(resp.StandardParameterIds, ParameterId(code))
		}
	}
	return resp, nil
}

// GetParameterDescriptionRequest asks a device to describe a manufacturer-
// specific parameter ID it advertised via SUPPORTED_PARAMETERS.
type GetParameterDescriptionRequest struct {
	ParameterId uint16
}

func (GetParameterDescriptionRequest) commandClass() CommandClass { return CommandClassGet }
func (GetParameterDescriptionRequest) parameterID() ParameterId   { return PidParameterDescription }
func (r GetParameterDescriptionRequest) payload() []byte {
	return []byte{byte(r.ParameterId >> 8), byte(r.ParameterId)}
}

// ParameterDescriptionResponse describes the wire layout of a single
// manufacturer-specific parameter, using the byte-exact E1.20 layout with
// 4-byte min/max/default values at offsets 8/12/16.
type ParameterDescriptionResponse struct {
	ParameterId  uint16
	Size         uint8
	DataType     ParameterDataType
	CommandClass ImplementedCommandClass
	UnitPrefix   SensorUnitPrefix
	MinValue     int32
	MaxValue     int32
	DefaultValue int32
	Description  string
}

func (ParameterDescriptionResponse) isGetResponseParameterData() {}

func decodeParameterDescriptionResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	pid, err := c.u16()
	if err != nil {
		return nil, err
	}
	size, err := c.u8()
	if err != nil {
		return nil, err
	}
	dataTypeByte, err := c.u8()
	if err != nil {
		return nil, err
	}
	dataType, err := parameterDataTypeFromByte(dataTypeByte)
	if err != nil {
		return nil, err
	}
	ccByte, err := c.u8()
	if err != nil {
		return nil, err
	}
	cc, err := implementedCommandClassFromByte(ccByte)
	if err != nil {
		return nil, err
	}
	prefixByte, err := c.u8()
	if err != nil {
		return nil, err
	}
	prefix, err := sensorUnitPrefixFromByte(prefixByte)
	if err != nil {
		return nil, err
	}
	if _, err := c.u16(); err != nil { // reserved
		return nil, err
	}
	minV, err := c.i32()
	if err != nil {
		return nil, err
	}
	maxV, err := c.i32()
	if err != nil {
		return nil, err
	}
	defV, err := c.i32()
	if err != nil {
		return nil, err
	}
	desc, err := c.restString()
	if err != nil {
		return nil, err
	}
	return ParameterDescriptionResponse{
		ParameterId:  pid,
		Size:         size,
		DataType:     dataType,
		CommandClass: cc,
		UnitPrefix:   prefix,
		MinValue:     minV,
		MaxValue:     maxV,
		DefaultValue: defV,
		Description:  desc,
	}, nil
}

// ProductDetail classifies the physical technology behind a device, as
// reported in a PRODUCT_DETAIL_ID_LIST response.
type ProductDetail uint16

const (
	ProductDetailNotDeclared         ProductDetail = 0x0000
	ProductDetailArc                 ProductDetail = 0x0001
	ProductDetailMetalHalide         ProductDetail = 0x0002
	ProductDetailIncandescent        ProductDetail = 0x0003
	ProductDetailLED                 ProductDetail = 0x0004
	ProductDetailFluorescent         ProductDetail = 0x0005
	ProductDetailColdCathode         ProductDetail = 0x0006
	ProductDetailElectroluminescent  ProductDetail = 0x0007
	ProductDetailLaser               ProductDetail = 0x0008
	ProductDetailFlashtube           ProductDetail = 0x0009
	ProductDetailColorScroller       ProductDetail = 0x0100
	ProductDetailColorWheel          ProductDetail = 0x0101
	ProductDetailColorChangeMixing   ProductDetail = 0x0102
	ProductDetailIndirectIllumination ProductDetail = 0x0103
	ProductDetailIris                ProductDetail = 0x0104
	ProductDetailGobo                ProductDetail = 0x0105
	ProductDetailGoboRotator         ProductDetail = 0x0106
	ProductDetailPrism               ProductDetail = 0x0107
	ProductDetailOnOffControl        ProductDetail = 0x0108
	ProductDetailFan                 ProductDetail = 0x0109
	ProductDetailOther               ProductDetail = 0x7FFF
)

var productDetails = map[ProductDetail]bool{
	ProductDetailNotDeclared: true, ProductDetailArc: true, ProductDetailMetalHalide: true,
	ProductDetailIncandescent: true, ProductDetailLED: true, ProductDetailFluorescent: true,
	ProductDetailColdCathode: true, ProductDetailElectroluminescent: true, ProductDetailLaser: true,
	ProductDetailFlashtube: true, ProductDetailColorScroller: true, ProductDetailColorWheel: true,
	ProductDetailColorChangeMixing: true, ProductDetailIndirectIllumination: true, ProductDetailIris: true,
	ProductDetailGobo: true, ProductDetailGoboRotator: true, ProductDetailPrism: true,
	ProductDetailOnOffControl: true, ProductDetailFan: true, ProductDetailOther: true,
}

// GetProductDetailIdListRequest asks for the list of product-detail codes
// a device declares.
type GetProductDetailIdListRequest struct{}

func (GetProductDetailIdListRequest) commandClass() CommandClass { return CommandClassGet }
func (GetProductDetailIdListRequest) parameterID() ParameterId   { return PidProductDetailIdList }
func (GetProductDetailIdListRequest) payload() []byte            { return nil }

// ProductDetailIdListResponse is the PRODUCT_DETAIL_ID_LIST GET response.
type ProductDetailIdListResponse struct {
	Details []ProductDetail
}

func (ProductDetailIdListResponse) isGetResponseParameterData() {}

func decodeProductDetailIdListResponse(data []byte) (GetResponseParameterData, error) {
	if len(data)%2 != 0 {
		return nil, ErrMalformedPacket
	}
	c := newCursor(data)
	var out []ProductDetail
	for c.remaining() > 0 {
		code, err := c.u16()
		if err != nil {
			return nil, err
		}
		pd := ProductDetail(code)
		if !productDetails[pd] {
			return nil, newErr(KindInvalidProductDetail, uint32(code))
		}
		out = append(out, pd)
	}
	return ProductDetailIdListResponse{Details: out}, nil
}

// GetDeviceModelDescriptionRequest asks for a human-readable model name.
type GetDeviceModelDescriptionRequest struct{}

func (GetDeviceModelDescriptionRequest) commandClass() CommandClass { return CommandClassGet }
func (GetDeviceModelDescriptionRequest) parameterID() ParameterId   { return PidDeviceModelDescription }
func (GetDeviceModelDescriptionRequest) payload() []byte            { return nil }

// StringResponse carries a single UTF-8 string parameter value, used by
// several GET responses whose payload is nothing but a label extending to
// the end of the parameter data.
type StringResponse struct {
	Value string
}

func (StringResponse) isGetResponseParameterData() {}
func (StringResponse) isSetResponseParameterData() {}

func decodeStringResponse(data []byte) (StringResponse, error) {
	c := newCursor(data)
	s, err := c.restString()
	if err != nil {
		return StringResponse{}, err
	}
	return StringResponse{Value: s}, nil
}

// GetManufacturerLabelRequest asks for the manufacturer's name.
type GetManufacturerLabelRequest struct{}

func (GetManufacturerLabelRequest) commandClass() CommandClass { return CommandClassGet }
func (GetManufacturerLabelRequest) parameterID() ParameterId   { return PidManufacturerLabel }
func (GetManufacturerLabelRequest) payload() []byte            { return nil }

// GetFactoryDefaultsRequest asks whether a device is currently running its
// factory-default configuration.
type GetFactoryDefaultsRequest struct{}

func (GetFactoryDefaultsRequest) commandClass() CommandClass { return CommandClassGet }
func (GetFactoryDefaultsRequest) parameterID() ParameterId   { return PidFactoryDefaults }
func (GetFactoryDefaultsRequest) payload() []byte            { return nil }

// SetFactoryDefaultsRequest restores a device to its factory-default
// configuration. The response carries no data.
type SetFactoryDefaultsRequest struct{}

func (SetFactoryDefaultsRequest) commandClass() CommandClass { return CommandClassSet }
func (SetFactoryDefaultsRequest) parameterID() ParameterId   { return PidFactoryDefaults }
func (SetFactoryDefaultsRequest) payload() []byte            { return nil }

// FactoryDefaultsResponse is the FACTORY_DEFAULTS GET response.
type FactoryDefaultsResponse struct {
	FactoryDefaultsActive bool
}

func (FactoryDefaultsResponse) isGetResponseParameterData() {}

func decodeFactoryDefaultsResponse(data []byte) (GetResponseParameterData, error) {
	c := newCursor(data)
	b, err := c.u8()
	if err != nil {
		return nil, err
	}
	return FactoryDefaultsResponse{FactoryDefaultsActive: b != 0}, nil
}
