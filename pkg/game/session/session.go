// Package session runs one game on a generated dungeon: occupant overlays,
// symbolic movement, the chasing enemy, captures and replay.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"unicode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"dungeoncrawl/pkg/engine/pathfind"
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/generator"
)

// ErrNoRooms is returned when generation produced nowhere to place the avatar
var ErrNoRooms = errors.New("dungeon has no rooms")

const maxMessages = 5

// Builder generates a dungeon from a random stream
type Builder interface {
	Build(rng *rand.Rand) *generator.Dungeon
}

// Session is the mutable state of a single game. It owns its map.
type Session struct {
	ID      uuid.UUID
	Seed    int64
	Dungeon *generator.Dungeon

	// Messages holds the most recent game events, oldest first
	Messages []string

	opts   Options
	rng    *rand.Rand
	logger logrus.FieldLogger

	avatar       world.Point
	avatarStart  world.Point
	avatarRoom   int
	enemy        world.Point
	enemyPath    pathfind.Path
	collectibles mapset.Set[world.Point]
	lives        int

	history   []rune
	started   bool
	replaying bool

	showEnemyPath bool
	lineOfSight   bool
	visible       world.VisibleSet
}

// New generates the dungeon for seed and places the avatar, collectibles and
// enemy using the same random stream. A nil builder uses generator.Rooms and a
// nil logger discards output.
func New(seed int64, b Builder, opts Options, logger logrus.FieldLogger) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session options: %w", err)
	}
	if b == nil {
		b = generator.Rooms
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	rng := generator.NewRand(seed)
	d := b.Build(rng)
	d.Seed = seed
	if len(d.Rooms) == 0 {
		return nil, ErrNoRooms
	}

	id := uuid.New()
	s := &Session{
		ID:           id,
		Seed:         seed,
		Dungeon:      d,
		Messages:     make([]string, 0),
		opts:         opts,
		rng:          rng,
		logger:       logger.WithFields(logrus.Fields{"session": id.String(), "seed": seed}),
		collectibles: mapset.New[world.Point](),
		lives:        opts.Lives,
	}
	s.placeOccupants()

	s.logger.WithFields(logrus.Fields{
		"rooms":        len(d.Rooms),
		"collectibles": s.collectibles.Size(),
	}).Debug("session started")
	return s, nil
}

// placeOccupants draws the avatar, then each collectible, then the enemy
func (s *Session) placeOccupants() {
	rooms := s.Dungeon.Rooms

	s.avatarRoom = s.rng.Intn(len(rooms))
	s.avatar = rooms[s.avatarRoom].RandomInteriorPoint(s.rng)
	s.avatarStart = s.avatar

	for i := 0; i < s.opts.Collectibles; i++ {
		if !s.placeCollectible() {
			s.logger.WithField("collectible", i).Debug("collectible skipped, no free cell")
		}
	}

	enemyRoom := s.rng.Intn(len(rooms))
	for len(rooms) > 1 && enemyRoom == s.avatarRoom {
		enemyRoom = s.rng.Intn(len(rooms))
	}
	s.enemy = rooms[enemyRoom].RandomInteriorPoint(s.rng)
	for s.enemy == s.avatar {
		s.enemy = rooms[enemyRoom].RandomInteriorPoint(s.rng)
	}

	s.collectibles.Each(func(p world.Point) {
		s.redraw(p)
	})
	s.redraw(s.avatar)
	s.redraw(s.enemy)

	s.updateVisible()
	s.repath()
}

func (s *Session) placeCollectible() bool {
	rooms := s.Dungeon.Rooms
	for attempt := 0; attempt < s.opts.PlacementAttempts; attempt++ {
		p := rooms[s.rng.Intn(len(rooms))].RandomInteriorPoint(s.rng)
		if p != s.avatar && !s.collectibles.Has(p) {
			s.collectibles.Put(p)
			return true
		}
	}
	return false
}

// Map returns the session's tile map, overlays included
func (s *Session) Map() *world.TileMap {
	return s.Dungeon.Map
}

// Avatar returns the avatar position
func (s *Session) Avatar() world.Point {
	return s.avatar
}

// AvatarStart returns the cell the avatar returns to after a capture
func (s *Session) AvatarStart() world.Point {
	return s.avatarStart
}

// Enemy returns the enemy position
func (s *Session) Enemy() world.Point {
	return s.enemy
}

// EnemyPath returns a copy of the enemy's current chase path
func (s *Session) EnemyPath() pathfind.Path {
	return slices.Clone(s.enemyPath)
}

// Lives returns the remaining lives
func (s *Session) Lives() int {
	return s.lives
}

// Remaining returns the positions of the collectibles not yet picked up,
// ordered by x then y.
func (s *Session) Remaining() []world.Point {
	ps := make([]world.Point, 0, s.collectibles.Size())
	s.collectibles.Each(func(p world.Point) {
		ps = append(ps, p)
	})
	slices.SortFunc(ps, func(a, b world.Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
	return ps
}

// History returns every movement symbol applied so far
func (s *Session) History() string {
	return string(s.history)
}

// Started reports whether the avatar has attempted a move yet
func (s *Session) Started() bool {
	return s.started
}

// ShowEnemyPath reports whether the enemy path overlay is enabled
func (s *Session) ShowEnemyPath() bool {
	return s.showEnemyPath
}

// LineOfSight reports whether the view is limited to the visibility window
func (s *Session) LineOfSight() bool {
	return s.lineOfSight
}

// Visible returns the cells inside the avatar's visibility window
func (s *Session) Visible() world.VisibleSet {
	return s.visible
}

// Won reports whether every collectible has been picked up
func (s *Session) Won() bool {
	return s.collectibles.Size() == 0
}

// Lost reports whether the avatar has run out of lives
func (s *Session) Lost() bool {
	return s.lives <= 0
}

// Over reports whether the game has ended either way
func (s *Session) Over() bool {
	return s.Won() || s.Lost()
}

// Apply interprets one input symbol. Direction symbols move the avatar, 'k'
// toggles the enemy path overlay and 'v' toggles line of sight. It returns
// false for symbols it does not know.
func (s *Session) Apply(r rune) bool {
	switch unicode.ToLower(r) {
	case 'k':
		s.showEnemyPath = !s.showEnemyPath
		return true
	case 'v':
		s.lineOfSight = !s.lineOfSight
		return true
	}
	d, ok := world.DirectionFromSymbol(r)
	if !ok {
		return false
	}
	s.Move(d)
	return true
}

// ApplyAll applies every symbol in order and returns how many were recognised
func (s *Session) ApplyAll(symbols string) int {
	n := 0
	for _, r := range symbols {
		if s.Apply(r) {
			n++
		}
	}
	return n
}

// Move steps the avatar one tile. The symbol is recorded even when a wall
// blocks the step. Moves after the game is over are ignored.
func (s *Session) Move(d world.Direction) bool {
	if !d.IsValid() || s.Over() {
		return false
	}
	s.started = true
	s.history = append(s.history, d.Symbol())

	moved := s.step(d)
	if moved && !s.replaying && s.avatar == s.enemy {
		s.capture()
	}
	return moved
}

// step moves the avatar without recording history or checking for the enemy
func (s *Session) step(d world.Direction) bool {
	m := s.Dungeon.Map
	next := d.Step(s.avatar)
	if !m.Passable(next) {
		return false
	}

	prev := s.avatar
	s.avatar = next
	s.redraw(prev)

	if s.collectibles.Has(next) {
		s.collectibles.Remove(next)
		s.AddMessage(fmt.Sprintf("Picked up a collectible, %d left", s.collectibles.Size()))
		s.logger.WithFields(logrus.Fields{"x": next.X, "y": next.Y}).Debug("collectible picked up")
	}
	s.redraw(next)
	s.updateVisible()
	return true
}

// EnemyTick advances the enemy one step along its stored path, resolves a
// capture, and recomputes the path to the avatar when repath is set.
// The enemy stays put until the avatar has moved once.
func (s *Session) EnemyTick(repath bool) {
	if !s.started || s.Over() {
		return
	}
	if len(s.enemyPath) > 1 {
		prev := s.enemy
		s.enemy = s.enemyPath[1]
		s.enemyPath = s.enemyPath[1:]
		s.redraw(prev)
		s.redraw(s.enemy)
	}
	if s.enemy == s.avatar {
		s.capture()
	}
	if repath && !s.Over() {
		s.repath()
	}
}

// EnemyTickRandom is EnemyTick with the re-path decision drawn from the
// session's random stream.
func (s *Session) EnemyTickRandom() {
	if !s.started || s.Over() {
		return
	}
	s.EnemyTick(s.rng.Intn(10) < s.opts.RepathChance)
}

func (s *Session) repath() {
	path, ok := pathfind.FindPath(s.Dungeon.Map, s.enemy, s.avatar)
	if !ok {
		s.enemyPath = nil
		return
	}
	s.enemyPath = path
}

// capture costs a life and, while lives remain, walks the avatar back to its
// start along a shortest path. Those steps are recorded so a replay of the
// history ends in the same place. The walk stops early if it wins the game.
func (s *Session) capture() {
	s.lives--
	s.logger.WithField("lives", s.lives).Debug("avatar captured")
	if s.lives <= 0 {
		s.AddMessage("Caught! No lives left")
		s.redraw(s.avatar)
		return
	}
	s.AddMessage(fmt.Sprintf("Caught! %d lives left", s.lives))

	if path, ok := pathfind.FindPath(s.Dungeon.Map, s.avatar, s.avatarStart); ok {
		for _, d := range path.Directions() {
			// a pickup on the way back can end the game
			if s.Over() {
				break
			}
			s.history = append(s.history, d.Symbol())
			s.step(d)
		}
	}
	if s.avatar != s.avatarStart && !s.Over() {
		prev := s.avatar
		s.avatar = s.avatarStart
		s.redraw(prev)
		s.redraw(s.avatar)
		s.updateVisible()
	}
}

// redraw writes the topmost occupant of p onto the map, or floor when the cell is free
func (s *Session) redraw(p world.Point) {
	t := world.Floor
	switch {
	case p == s.enemy:
		t = world.Enemy
	case p == s.avatar:
		t = world.Avatar
	case s.collectibles.Has(p):
		t = world.Collectible
	}
	s.Dungeon.Map.Set(p, t)
}

func (s *Session) updateVisible() {
	s.visible = world.CalculateFOV(s.Dungeon.Map, s.avatar, s.opts.VisionRadius)
}

// AddMessage appends to the message log, keeping the last few entries
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}
