// Package wumpus implements the Hunt the Wumpus grid-world simulation:
// board generation, hint derivation, the turn-then-move player state
// machine, shooting and scoring. It has no terminal dependencies; the
// platform layer drives it through HandleInput and reads Snapshots.
package wumpus

import (
	"context"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Params are the construction parameters of a simulation. They are fixed
// for the simulation's lifetime and reused on every reset.
type Params struct {
	Name          string // preset label recorded with finished runs
	Size          int
	Probabilities Probabilities
	StartAmmo     int
	Start         Coord
	Heading       Direction
}

// DefaultParams returns the standard 10x10 setup.
func DefaultParams() Params {
	return Params{
		Name:          "normal",
		Size:          10,
		Probabilities: DefaultProbabilities(),
		StartAmmo:     DefaultAmmo,
		Start:         C(0, 0),
		Heading:       DirUp,
	}
}

// Option configures optional collaborators of a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the tracer used to record board generation spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Simulation) {
		if t != nil {
			s.tracer = t
		}
	}
}

// Simulation owns one Board and one Player and is the only writer of both.
// It is not safe for concurrent use; callers serialize HandleInput against
// reads, which the single-threaded Bubble Tea loop does naturally.
type Simulation struct {
	params Params
	rng    *rand.Rand
	logger *log.Logger
	tracer trace.Tracer

	board      *Board
	player     Player
	score      int
	totalScore int

	runID      string
	shotsFired int
	moves      int
	resets     int
	last       Result
}

// New creates a simulation and generates its first board.
// Panics if params describe an impossible board (size < 1 or a start
// coordinate outside it); validate configuration before calling.
func New(params Params, rng *rand.Rand, opts ...Option) *Simulation {
	s := &Simulation{
		params: params,
		rng:    rng,
		logger: log.New(io.Discard),
		tracer: noop.NewTracerProvider().Tracer("wumpus/noop"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// reset replaces the board and player wholesale and clears the run counters.
func (s *Simulation) reset() {
	_, span := s.tracer.Start(context.Background(), "wumpus.generate")
	defer span.End()

	board := Generate(s.params.Size, s.params.Probabilities, s.rng)
	if !board.InBounds(s.params.Start) {
		panic("wumpus: start coordinate " + s.params.Start.String() + " outside the board")
	}

	s.board = board
	s.player = NewPlayer(s.params.Start, s.params.Heading, s.params.StartAmmo)
	s.board.Discover(s.player.Pos)
	s.score = 0
	s.totalScore = board.TreasureCount()
	s.shotsFired = 0
	s.moves = 0
	s.runID = s.newRunID()

	span.SetAttributes(
		attribute.String("run.id", s.runID),
		attribute.Int("board.size", board.Size()),
		attribute.Int("board.holes", board.Count(Hole)),
		attribute.Int("board.hazards", board.Count(Hazard)),
		attribute.Int("board.treasures", s.totalScore),
	)
	s.logger.Debug("board generated",
		"run", s.runID,
		"size", board.Size(),
		"treasures", s.totalScore,
		"holes", board.Count(Hole),
		"hazards", board.Count(Hazard),
	)
}

// newRunID derives a run identifier from the simulation's RNG so seeded
// sessions stay reproducible.
func (s *Simulation) newRunID() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// HandleInput is the single entry point for input. Moves go through the
// turn-then-move state machine followed by tile-effect evaluation, shoot
// events fire along the heading, and anything else is ignored.
func (s *Simulation) HandleInput(ev Event) Result {
	var res Result
	switch ev.Kind {
	case EventMove:
		res = s.handleMove(ev.Dir)
	case EventShoot:
		res = s.handleShoot()
	default:
		res = Result{Kind: ResultIgnored}
	}
	s.last = res
	return res
}

func (s *Simulation) handleMove(d Direction) Result {
	kind := s.player.Steer(d, s.board.Size())
	if kind != ResultMoved {
		return Result{Kind: kind}
	}

	s.moves++
	pos := s.player.Pos
	s.board.Discover(pos)

	switch content := s.board.Content(pos); {
	case content == Treasure:
		s.board.Collect(pos)
		s.score++
		s.logger.Debug("treasure collected", "run", s.runID, "pos", pos, "score", s.score, "total", s.totalScore)
		return Result{Kind: ResultCollected}
	case content.IsFatal():
		cause := CauseHole
		if content == Hazard {
			cause = CauseHazard
		}
		ended := s.endRun(cause)
		return Result{Kind: ResultKilled, Outcome: OutcomeReset, Cause: cause, Ended: &ended}
	default:
		return Result{Kind: ResultMoved}
	}
}

func (s *Simulation) handleShoot() Result {
	shot, fired := s.player.Shoot(s.board)
	if !fired {
		return Result{Kind: ResultDryFire}
	}
	s.shotsFired++

	if shot.Hit {
		s.logger.Debug("hazard destroyed", "run", s.runID, "target", shot.Target, "ammo", s.player.Ammo)
		return Result{Kind: ResultHit, Shot: &shot}
	}
	s.logger.Debug("shot missed", "run", s.runID, "heading", s.player.Heading, "ammo", s.player.Ammo)
	return Result{Kind: ResultMissed, Shot: &shot}
}

// endRun summarizes the current run and replaces it with a fresh one.
func (s *Simulation) endRun(cause Cause) RunSummary {
	ended := s.Summary()
	ended.Cause = cause
	s.logger.Info("run reset",
		"run", ended.RunID,
		"cause", cause,
		"score", ended.Score,
		"total", ended.TotalScore,
	)
	s.resets++
	s.reset()
	return ended
}

// Reset abandons the current run and starts a new board. The abandoned run
// is returned so it can be recorded.
func (s *Simulation) Reset() RunSummary {
	ended := s.endRun(CauseRestart)
	s.last = Result{Kind: ResultRestarted, Outcome: OutcomeReset, Cause: CauseRestart, Ended: &ended}
	return ended
}

// Summary describes the current run without ending it.
func (s *Simulation) Summary() RunSummary {
	return RunSummary{
		RunID:      s.runID,
		Preset:     s.params.Name,
		BoardSize:  s.board.Size(),
		Score:      s.score,
		TotalScore: s.totalScore,
		Won:        s.IsWon(),
		ShotsFired: s.shotsFired,
		Moves:      s.moves,
	}
}

// IsWon reports whether every treasure present at generation was collected.
func (s *Simulation) IsWon() bool {
	return s.score == s.totalScore
}

// Params returns the construction parameters.
func (s *Simulation) Params() Params {
	return s.params
}

// Size returns the board dimension.
func (s *Simulation) Size() int {
	return s.board.Size()
}

// Tile returns a copy of the tile at c.
func (s *Simulation) Tile(c Coord) Tile {
	return s.board.Tile(c)
}

// Player returns a copy of the player.
func (s *Simulation) Player() Player {
	return s.player
}

// Score returns the number of treasures collected on the current board.
func (s *Simulation) Score() int {
	return s.score
}

// TotalScore returns the number of treasures the current board started with.
func (s *Simulation) TotalScore() int {
	return s.totalScore
}

// Resets returns how many times the simulation replaced its board.
func (s *Simulation) Resets() int {
	return s.resets
}

// RunID identifies the current board.
func (s *Simulation) RunID() string {
	return s.runID
}

// Last returns the result of the most recent event.
func (s *Simulation) Last() Result {
	return s.last
}
