package cube

import "gyrocube/sys/wire3d"

// Config holds the fixed scene and timing of the cube display.
//
// Durations are in kernel ticks (1 tick = 1 ms).
type Config struct {
	Model      wire3d.Model
	Projection wire3d.Projection
	Stroke     wire3d.Stroke
	Background wire3d.Color

	FrameIntervalMS      uint32
	CalibrationPollMS    uint32
	CalibrationTimeoutMS uint32
	SettleMS             uint32

	// CenterOnSurface replaces the projection center with the surface midpoint.
	CenterOnSurface bool
	ShowStatus      bool
}

func DefaultConfig() Config {
	return Config{
		Model:      wire3d.ReferenceCube,
		Projection: wire3d.ReferenceProjection,
		Stroke:     wire3d.ReferenceStroke,
		Background: wire3d.Black,

		FrameIntervalMS:      33,
		CalibrationPollMS:    100,
		CalibrationTimeoutMS: 5000,
		SettleMS:             500,

		CenterOnSurface: true,
		ShowStatus:      true,
	}
}
