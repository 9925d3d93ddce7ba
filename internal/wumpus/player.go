package wumpus

// DefaultAmmo is the number of shots a fresh player carries.
const DefaultAmmo = 3

// Player is the explorer: a position, a heading and the remaining shots.
type Player struct {
	Pos     Coord
	Heading Direction
	Ammo    int
}

// NewPlayer creates a player at start facing heading with the given ammo.
func NewPlayer(start Coord, heading Direction, ammo int) Player {
	if ammo < 0 {
		ammo = 0
	}
	return Player{Pos: start, Heading: heading, Ammo: ammo}
}

// Steer applies one directional key press. A press that differs from the
// current heading only turns the player; a press matching the heading moves
// one tile, unless that would leave a board of the given size.
// Returns ResultTurned, ResultMoved or ResultBlocked.
func (p *Player) Steer(d Direction, size int) ResultKind {
	if p.Heading != d {
		p.Heading = d
		return ResultTurned
	}

	next := p.Pos.Step(d)
	if next.X < 0 || next.X >= size || next.Y < 0 || next.Y >= size {
		return ResultBlocked
	}
	p.Pos = next
	return ResultMoved
}

// Trajectory returns the cells strictly in front of pos along heading, from
// the adjacent cell out to the edge of a size x size board.
func Trajectory(pos Coord, heading Direction, size int) []Coord {
	dx, dy := heading.Delta()
	if dx == 0 && dy == 0 {
		return nil
	}

	var path []Coord
	current := pos.Add(dx, dy)
	for current.X >= 0 && current.X < size && current.Y >= 0 && current.Y < size {
		path = append(path, current)
		current = current.Add(dx, dy)
	}
	return path
}

// Shot describes a fired projectile.
type Shot struct {
	Path   []Coord // cells the projectile could traverse, nearest first
	Hit    bool    // a hazard was struck
	Target Coord   // the struck hazard, valid when Hit is set
}

// Shoot fires along the current heading. With no ammo nothing happens and
// fired is false. Otherwise one shot is spent and the first hazard on the
// trajectory, if any, is cleared and the board's hints are rebuilt.
// Holes neither block nor absorb the shot.
func (p *Player) Shoot(b *Board) (shot Shot, fired bool) {
	if p.Ammo <= 0 {
		return Shot{}, false
	}
	p.Ammo--

	shot.Path = Trajectory(p.Pos, p.Heading, b.Size())
	for _, c := range shot.Path {
		if b.Content(c) == Hazard {
			b.SetContent(c, Empty)
			b.RecomputeAllHints()
			shot.Hit = true
			shot.Target = c
			break
		}
	}
	return shot, true
}
