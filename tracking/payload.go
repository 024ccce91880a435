package tracking

// Payload is a single update delivered by the tracking bridge. Matrices are 16 values laid out
// row by row. SitStand may be empty, meaning the calibration transform is left untouched.
type Payload struct {
	ID                    []float32          `json:"id"`
	LeftProjectionMatrix  []float32          `json:"leftProjectionMatrix"`
	RightProjectionMatrix []float32          `json:"rightProjectionMatrix"`
	LeftViewMatrix        []float32          `json:"leftViewMatrix"`
	RightViewMatrix       []float32          `json:"rightViewMatrix"`
	SitStand              []float32          `json:"sitStand"`
	Controllers           []ControllerRecord `json:"controllers"`
}

// ControllerRecord is the raw, device-space state of one controller.
type ControllerRecord struct {
	Index int    `json:"index"`
	Hand  string `json:"hand"`
	// Orientation is a quaternion in x, y, z, w order.
	Orientation     []float32      `json:"orientation"`
	Position        []float32      `json:"position"`
	LinearVelocity  []float32      `json:"linearVelocity"`
	AngularVelocity []float32      `json:"angularVelocity"`
	Buttons         []ButtonSample `json:"buttons"`
}

// ButtonSample is the state of a single controller button. Its index in the controller's button
// list is its identity.
type ButtonSample struct {
	Pressed bool    `json:"pressed"`
	Touched bool    `json:"touched"`
	Value   float32 `json:"value"`
}
