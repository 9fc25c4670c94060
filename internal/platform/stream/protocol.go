package stream

import (
	"github.com/vovakirdan/tui-starfield/internal/core"
	"github.com/vovakirdan/tui-starfield/internal/games/starfield"
)

// Client message types.
const (
	MsgInput  = "input"
	MsgStart  = "start"
	MsgPause  = "pause"
	MsgResize = "resize"
)

// Server message types.
const (
	MsgHello      = "hello"
	MsgBackground = "background"
	MsgFrame      = "frame"
)

// ClientMessage is anything a client sends. Held replaces the whole held
// set; actions not listed are released.
type ClientMessage struct {
	Type   string   `json:"type"`
	Held   []string `json:"held,omitempty"`
	Width  float64  `json:"width,omitempty"`
	Height float64  `json:"height,omitempty"`
}

// HelloMessage opens a session. It carries the background, which frames omit.
type HelloMessage struct {
	Type    string             `json:"type"`
	Session string             `json:"session"`
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Stars   []starfield.Star   `json:"stars"`
	Nebulas []starfield.Nebula `json:"nebulas"`
}

// BackgroundMessage follows a resize.
type BackgroundMessage struct {
	Type    string             `json:"type"`
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Stars   []starfield.Star   `json:"stars"`
	Nebulas []starfield.Nebula `json:"nebulas"`
}

// FrameMessage is sent once per tick.
type FrameMessage struct {
	Type   string             `json:"type"`
	Frame  starfield.Snapshot `json:"frame"`
	Cues   []core.Cue         `json:"cues,omitempty"`
	Paused bool               `json:"paused,omitempty"`
}

// heldFrame converts action names to an input frame. Unknown names and
// one-shot actions are dropped.
func heldFrame(names []string) core.InputFrame {
	f := core.NewInputFrame()
	for _, name := range names {
		switch a := core.ParseAction(name); a {
		case core.ActionForward, core.ActionLeft, core.ActionRight, core.ActionFire:
			f.Set(a)
		}
	}
	return f
}
