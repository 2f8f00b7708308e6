package replay

import "github.com/younwookim/pufferdive/internal/domain/entity"

// FrameInput records the control input of a single simulated frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	A bool `json:"a,omitempty"` // Puff
	B bool `json:"b,omitempty"`
}

// NewFrameInput packs in as frame f.
func NewFrameInput(f int, in entity.ControlInput) FrameInput {
	return FrameInput{F: f, L: in.Left, R: in.Right, U: in.Up, D: in.Down, A: in.A, B: in.B}
}

// Input unpacks the frame.
func (fi FrameInput) Input() entity.ControlInput {
	return entity.ControlInput{Left: fi.L, Right: fi.R, Up: fi.U, Down: fi.D, A: fi.A, B: fi.B}
}

// ReplayData contains all data needed to replay a game session.
// Only frames in which the simulation advanced are recorded.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FrameDT returns the tick length of the recording, 1/60 when unset.
func (d ReplayData) FrameDT() float64 {
	if d.DT > 0 {
		return d.DT
	}
	return 1.0 / 60.0
}
