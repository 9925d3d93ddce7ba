package wumpus

import (
	"github.com/vovakirdan/tui-wumpus/internal/core"
)

// EventKind identifies an input event delivered to the simulation.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventMove
	EventShoot
)

// Event is a single input. Dir is only meaningful for EventMove.
type Event struct {
	Kind EventKind
	Dir  Direction
}

// Move returns a movement event for the given direction.
func Move(d Direction) Event {
	return Event{Kind: EventMove, Dir: d}
}

// Fire returns a shoot event.
func Fire() Event {
	return Event{Kind: EventShoot}
}

// actionDirections maps the directional actions to headings.
var actionDirections = map[core.Action]Direction{
	core.ActionUp:    DirUp,
	core.ActionDown:  DirDown,
	core.ActionLeft:  DirLeft,
	core.ActionRight: DirRight,
}

// EventForAction translates a platform action into a simulation event.
// Actions with no simulation meaning map to an EventNone event.
func EventForAction(a core.Action) Event {
	switch {
	case a.IsDirectional():
		return Move(actionDirections[a])
	case a == core.ActionShoot:
		return Fire()
	default:
		return Event{}
	}
}

// ResultKind describes what a handled event did.
type ResultKind uint8

const (
	ResultIgnored   ResultKind = iota // event had no meaning
	ResultTurned                      // heading changed, position kept
	ResultMoved                       // moved onto an empty tile
	ResultBlocked                     // move into the board edge
	ResultCollected                   // moved onto treasure and picked it up
	ResultKilled                      // moved onto a hole or hazard; the run was reset
	ResultHit                         // shot cleared a hazard
	ResultMissed                      // shot spent without hitting anything
	ResultDryFire                     // shoot requested with no ammo left
	ResultRestarted                   // run abandoned by an explicit restart
)

// String returns a short name for the result kind.
func (k ResultKind) String() string {
	switch k {
	case ResultIgnored:
		return "ignored"
	case ResultTurned:
		return "turned"
	case ResultMoved:
		return "moved"
	case ResultBlocked:
		return "blocked"
	case ResultCollected:
		return "collected"
	case ResultKilled:
		return "killed"
	case ResultHit:
		return "hit"
	case ResultMissed:
		return "missed"
	case ResultDryFire:
		return "dry_fire"
	case ResultRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Outcome tells the caller whether the run continues or was replaced.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeReset
)

// Cause records why a run ended.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseHole
	CauseHazard
	CauseRestart
	CauseQuit
)

// String returns the cause name as stored in run history.
func (c Cause) String() string {
	switch c {
	case CauseHole:
		return "hole"
	case CauseHazard:
		return "hazard"
	case CauseRestart:
		return "restart"
	case CauseQuit:
		return "quit"
	default:
		return "none"
	}
}

// RunSummary is the record of one board from generation until it was won,
// abandoned or lost.
type RunSummary struct {
	RunID      string
	Preset     string
	BoardSize  int
	Score      int
	TotalScore int
	Won        bool
	Cause      Cause
	ShotsFired int
	Moves      int
}

// Result is returned for every handled event.
type Result struct {
	Kind    ResultKind
	Outcome Outcome
	Cause   Cause
	Shot    *Shot       // set for hit and missed shots
	Ended   *RunSummary // the abandoned run when Outcome is OutcomeReset
}

// Message returns a one-line description suitable for a status bar.
func (r Result) Message() string {
	switch r.Kind {
	case ResultTurned:
		return "You turn around."
	case ResultBlocked:
		return "A wall blocks your way."
	case ResultCollected:
		return "You pick up the treasure!"
	case ResultKilled:
		if r.Cause == CauseHazard {
			return "The wumpus got you. A new cave awaits."
		}
		return "You fell into a hole. A new cave awaits."
	case ResultHit:
		return "A terrible scream echoes. The wumpus is dead!"
	case ResultMissed:
		return "Your arrow clatters against the wall."
	case ResultDryFire:
		return "You are out of arrows."
	case ResultRestarted:
		return "A fresh cave is generated."
	default:
		return ""
	}
}

// RunRecorder persists finished runs.
type RunRecorder interface {
	RecordRun(RunSummary) error
}
