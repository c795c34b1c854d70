package export

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/san-kum/votemap/internal/layout"
)

// Frame is the JSON export of one computed layout.
type Frame struct {
	Mode      string                     `json:"mode"`
	Period    int                        `json:"period"`
	Positions map[string]layout.Position `json:"positions"`
	// Colors maps unit id to the blended hex fill, when requested.
	Colors map[string]string `json:"colors,omitempty"`
}

// WriteJSON writes a frame with stable indentation.
func WriteJSON(w io.Writer, frame Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(frame)
}
