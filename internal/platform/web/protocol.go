package web

import (
	"github.com/vovakirdan/chill-runner/internal/core"
	"github.com/vovakirdan/chill-runner/internal/games/chill"
)

// Message types exchanged over the websocket.
const (
	TypeActivate = "activate"
	TypeResize   = "resize"
	TypePause    = "pause"
	TypeSky      = "sky"
	TypeSnapshot = "snapshot"
	TypeEvent    = "event"
	TypeHello    = "hello"
)

// clientMessage is any message sent by the browser. Fields not used by the
// message type are ignored.
type clientMessage struct {
	Type    string `json:"type"`
	Restart bool   `json:"restart,omitempty"` // activate aimed at the restart control
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Device  string `json:"device,omitempty"`
	Sky     string `json:"sky,omitempty"`
}

// helloFrame is sent once after the upgrade.
type helloFrame struct {
	Type     string `json:"type"`
	Game     string `json:"game"`
	Title    string `json:"title"`
	TickRate int    `json:"tickRate"`
}

// snapshotFrame carries the full render state of one tick.
type snapshotFrame struct {
	Type string `json:"type"`
	chill.Snapshot
}

// eventFrame carries one simulation event.
type eventFrame struct {
	Type string     `json:"type"`
	Name core.Event `json:"name"`
}
