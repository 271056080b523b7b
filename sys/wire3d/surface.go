package wire3d

import (
	"errors"
	"fmt"
)

// ErrDisplayUnavailable reports that the surface could not be drawn to.
var ErrDisplayUnavailable = errors.New("wire3d: display unavailable")

// Stroke is the fixed line style of the wireframe.
type Stroke struct {
	Width   int
	Color   Color
	Rounded bool
}

// ReferenceStroke is 2 px wide, blue, with square caps.
var ReferenceStroke = Stroke{Width: 2, Color: Blue}

// Surface is the display collaborator.
//
// A frame is one Clear, one DrawLine per edge, and one Present.
type Surface interface {
	Clear() error
	DrawLine(a, b Vec2, s Stroke) error
	Present() error
}

// Renderer redraws a model's edges each frame.
type Renderer struct {
	Stroke Stroke
}

func NewRenderer() *Renderer {
	return &Renderer{Stroke: ReferenceStroke}
}

// Draw clears s and draws every edge between the projected points.
//
// Errors are wrapped with ErrDisplayUnavailable. Draw stops at the first failure;
// the caller is expected to drop the frame and try again on the next tick.
func (r *Renderer) Draw(s Surface, edges [CubeEdges]Edge, pts [CubeVertices]Vec2) error {
	if s == nil {
		return fmt.Errorf("%w: no surface", ErrDisplayUnavailable)
	}
	if err := s.Clear(); err != nil {
		return fmt.Errorf("%w: clear: %w", ErrDisplayUnavailable, err)
	}
	for i, e := range edges {
		if err := s.DrawLine(pts[e[0]], pts[e[1]], r.Stroke); err != nil {
			return fmt.Errorf("%w: edge %d: %w", ErrDisplayUnavailable, i, err)
		}
	}
	if err := s.Present(); err != nil {
		return fmt.Errorf("%w: present: %w", ErrDisplayUnavailable, err)
	}
	return nil
}
