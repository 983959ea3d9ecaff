package rdm

// AllSensors addresses every sensor on a device in a single RECORD_SENSORS
// or SENSOR_VALUE request.
const AllSensors uint8 = 0xFF

// GetSensorDefinitionRequest asks for the characteristics of one sensor.
type GetSensorDefinitionRequest struct {
	SensorNumber uint8
}

func (GetSensorDefinitionRequest) commandClass() CommandClass { return CommandClassGet }
func (GetSensorDefinitionRequest) parameterID() ParameterId   { return PidSensorDefinition }
func (r GetSensorDefinitionRequest) payload() []byte          { return []byte{r.SensorNumber} }

// GetSensorValueRequest asks for the present/lowest/highest/recorded value
// of one sensor.
type GetSensorValueRequest struct {
	SensorNumber uint8
}

func (GetSensorValueRequest) commandClass() CommandClass { return CommandClassGet }
func (GetSensorValueRequest) parameterID() ParameterId   { return PidSensorValue }
func (r GetSensorValueRequest) payload() []byte          { return []byte{r.SensorNumber} }

// SetSensorValueRequest resets a sensor's recorded lowest/highest/recorded
// values to its present value. The response carries the post-reset values.
type SetSensorValueRequest struct {
	SensorNumber uint8
}

func (SetSensorValueRequest) commandClass() CommandClass { return CommandClassSet }
func (SetSensorValueRequest) parameterID() ParameterId   { return PidSensorValue }
func (r SetSensorValueRequest) payload() []byte          { return []byte{r.SensorNumber} }

// RecordSensorsRequest directs a device to update a sensor's recorded
// value from its current reading. The response carries no data.
type RecordSensorsRequest struct {
	SensorNumber uint8
}

func (RecordSensorsRequest) commandClass() CommandClass { return CommandClassSet }
func (RecordSensorsRequest) parameterID() ParameterId   { return PidRecordSensors }
func (r RecordSensorsRequest) payload() []byte          { return []byte{r.SensorNumber} }
