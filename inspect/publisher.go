package inspect

import (
	"encoding/json"
	"time"

	"github.com/gogpu/cyclemenu"
)

// Event types sent to observers.
const (
	TypeStateInit     = "state_init"
	TypeStateChanged  = "state_changed"
	TypeOpenComplete  = "open_complete"
	TypeCloseComplete = "close_complete"
	TypePositionSaved = "position_saved"
)

// envelope is the wire format of every frame.
type envelope struct {
	Type string     `json:"type"`
	Ts   *time.Time `json:"ts,omitempty"`
	Data any        `json:"data,omitempty"`
}

// Snapshot is the data of a state_init frame: the widget as seen through
// the events published so far.
type Snapshot struct {
	State       string  `json:"state"`
	Position    int     `json:"position"`
	AngleOffset float64 `json:"angle_offset"`
	Opens       int     `json:"opens"`
	Closes      int     `json:"closes"`
}

func initialSnapshot() Snapshot {
	return Snapshot{State: cyclemenu.Closed.String(), Position: cyclemenu.NoPosition}
}

type stateChangedData struct {
	State string `json:"state"`
}

type positionSavedData struct {
	Position    int     `json:"position"`
	AngleOffset float64 `json:"angle_offset"`
}

// event is one widget callback on its way to observers.
type event struct {
	typ  string
	at   time.Time
	data any
}

// apply folds e into s.
func (e event) apply(s *Snapshot) {
	switch d := e.data.(type) {
	case stateChangedData:
		s.State = d.State
	case positionSavedData:
		s.Position, s.AngleOffset = d.Position, d.AngleOffset
	}
	switch e.typ {
	case TypeOpenComplete:
		s.Opens++
	case TypeCloseComplete:
		s.Closes++
	}
}

func (e event) encode() ([]byte, error) {
	ts := e.at.UTC()
	return json.Marshal(envelope{Type: e.typ, Ts: &ts, Data: e.data})
}

// sink receives published events. Hub is the only production sink.
type sink interface {
	publish(e event)
}

// Publisher turns widget callbacks into events for a Hub. It implements
// cyclemenu.StateListener and cyclemenu.StateSaveListener and never
// blocks the widget.
type Publisher struct {
	out sink
	now func() time.Time
}

var (
	_ cyclemenu.StateListener     = (*Publisher)(nil)
	_ cyclemenu.StateSaveListener = (*Publisher)(nil)
)

// NewPublisher returns a publisher feeding hub.
func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{out: hub, now: time.Now}
}

// OnStateChanged implements cyclemenu.StateListener.
func (p *Publisher) OnStateChanged(s cyclemenu.State) {
	p.send(TypeStateChanged, stateChangedData{State: s.String()})
}

// OnOpenComplete implements cyclemenu.StateListener.
func (p *Publisher) OnOpenComplete() { p.send(TypeOpenComplete, nil) }

// OnCloseComplete implements cyclemenu.StateListener.
func (p *Publisher) OnCloseComplete() { p.send(TypeCloseComplete, nil) }

// SaveState implements cyclemenu.StateSaveListener.
func (p *Publisher) SaveState(position int, angleOffset float64) {
	p.send(TypePositionSaved, positionSavedData{Position: position, AngleOffset: angleOffset})
}

func (p *Publisher) send(typ string, data any) {
	p.out.publish(event{typ: typ, at: p.now(), data: data})
}
