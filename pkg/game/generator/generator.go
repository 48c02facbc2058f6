package generator

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/pixil98/go-errors"
	"github.com/sirupsen/logrus"

	"dungeoncrawl/pkg/engine/world"
)

// Generator is an interface for dungeon generation algorithms
type Generator interface {
	Generate(seed int64) *Dungeon
	Name() string
}

// Available generators
var (
	Rooms = MustNewRoomGenerator(DefaultOptions())
)

// DefaultGenerator is the default dungeon generator
var DefaultGenerator Generator = Rooms

// Options controls map size and room placement.
// Room sides are drawn from [world.MinRoomSize, MaxRoomWidth) and
// [world.MinRoomSize, MaxRoomHeight).
type Options struct {
	Width             int `json:"width"`
	Height            int `json:"height"`
	MaxRoomWidth      int `json:"max_room_width"`
	MaxRoomHeight     int `json:"max_room_height"`
	MinRooms          int `json:"min_rooms"`
	MaxRooms          int `json:"max_rooms"`
	PlacementAttempts int `json:"placement_attempts"`
}

// DefaultOptions returns the standard 100x60 layout with 6 to 20 rooms
func DefaultOptions() Options {
	return Options{
		Width:             world.DefaultWidth,
		Height:            world.DefaultHeight,
		MaxRoomWidth:      12,
		MaxRoomHeight:     12,
		MinRooms:          6,
		MaxRooms:          20,
		PlacementAttempts: 100,
	}
}

// Validate checks that every room the options can produce fits inside the map border
func (o Options) Validate() error {
	el := errors.NewErrorList()
	if o.MaxRoomWidth <= world.MinRoomSize {
		el.Add(fmt.Errorf("max_room_width: must be greater than %d, got %d", world.MinRoomSize, o.MaxRoomWidth))
	}
	if o.MaxRoomHeight <= world.MinRoomSize {
		el.Add(fmt.Errorf("max_room_height: must be greater than %d, got %d", world.MinRoomSize, o.MaxRoomHeight))
	}
	if o.Width <= o.MaxRoomWidth {
		el.Add(fmt.Errorf("width: must be greater than max_room_width (%d), got %d", o.MaxRoomWidth, o.Width))
	}
	if o.Height <= o.MaxRoomHeight {
		el.Add(fmt.Errorf("height: must be greater than max_room_height (%d), got %d", o.MaxRoomHeight, o.Height))
	}
	if o.MinRooms < 1 {
		el.Add(fmt.Errorf("min_rooms: must be at least 1, got %d", o.MinRooms))
	}
	if o.MaxRooms < o.MinRooms {
		el.Add(fmt.Errorf("max_rooms: must not be below min_rooms (%d), got %d", o.MinRooms, o.MaxRooms))
	}
	if o.PlacementAttempts < 1 {
		el.Add(fmt.Errorf("placement_attempts: must be at least 1, got %d", o.PlacementAttempts))
	}
	return el.Err()
}

// Dungeon is the result of one generation run
type Dungeon struct {
	Seed     int64
	Map      *world.TileMap
	Rooms    []world.Room
	Hallways []Edge
}

// Validate checks the structural guarantees of a generated dungeon
func (d *Dungeon) Validate() error {
	if d.Map == nil {
		return fmt.Errorf("dungeon has no map")
	}
	for i := range d.Rooms {
		for j := i + 1; j < len(d.Rooms); j++ {
			if d.Rooms[i].Intersects(d.Rooms[j]) {
				return fmt.Errorf("rooms %d and %d overlap", i, j)
			}
		}
	}
	if len(d.Rooms) > 0 && len(d.Hallways) != len(d.Rooms)-1 {
		return fmt.Errorf("expected %d hallways for %d rooms, got %d", len(d.Rooms)-1, len(d.Rooms), len(d.Hallways))
	}
	if i, ok := RoomsConnected(d.Map, d.Rooms); !ok {
		return fmt.Errorf("room %d is not reachable from room 0", i)
	}
	return nil
}

// RoomGenerator places non-overlapping rectangular rooms and joins them with
// a minimum spanning tree of L-shaped hallways.
type RoomGenerator struct {
	opts   Options
	logger logrus.FieldLogger
}

// NewRoomGenerator validates opts and returns a generator using them
func NewRoomGenerator(opts Options) (*RoomGenerator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator options: %w", err)
	}
	return &RoomGenerator{opts: opts, logger: discardLogger()}, nil
}

// MustNewRoomGenerator is like NewRoomGenerator but panics on invalid options
func MustNewRoomGenerator(opts Options) *RoomGenerator {
	g, err := NewRoomGenerator(opts)
	if err != nil {
		panic(err)
	}
	return g
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithLogger returns a copy of the generator that logs to l
func (g *RoomGenerator) WithLogger(l logrus.FieldLogger) *RoomGenerator {
	c := *g
	if l == nil {
		l = discardLogger()
	}
	c.logger = l
	return &c
}

// Name returns the name of this generator
func (g *RoomGenerator) Name() string {
	return "Rooms and Hallways"
}

// Options returns the options the generator was built with
func (g *RoomGenerator) Options() Options {
	return g.opts
}

// NewRand returns the random stream used for a seed. Every draw made during
// generation and session setup comes from this one stream.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generate creates a new dungeon from seed
func (g *RoomGenerator) Generate(seed int64) *Dungeon {
	d := g.Build(NewRand(seed))
	d.Seed = seed
	return d
}

// Build generates a dungeon drawing from rng, leaving rng positioned after the
// last corridor endpoint so callers can keep drawing from it.
func (g *RoomGenerator) Build(rng *rand.Rand) *Dungeon {
	m := world.NewTileMap(g.opts.Width, g.opts.Height)
	rooms, hallways := g.Populate(m, rng)

	d := &Dungeon{Map: m, Rooms: rooms, Hallways: hallways}

	// Validate the generated dungeon
	if err := d.Validate(); err != nil {
		panic("generated invalid dungeon: " + err.Error())
	}
	return d
}

// Populate clears m and fills it with rooms and hallways
func (g *RoomGenerator) Populate(m *world.TileMap, rng *rand.Rand) ([]world.Room, []Edge) {
	m.Clear()

	target := g.RoomCount(rng)
	rooms := g.PlaceRooms(m, rng, target)
	hallways := Connect(m, rooms, rng)

	g.logger.WithFields(logrus.Fields{
		"target":   target,
		"rooms":    len(rooms),
		"hallways": len(hallways),
	}).Debug("dungeon generated")

	return rooms, hallways
}
