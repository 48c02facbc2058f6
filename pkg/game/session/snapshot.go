package session

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"dungeoncrawl/pkg/engine/world"
)

// Snapshot is everything needed to rebuild a session: the seed and history
// replay the map, the rest restores what replay cannot.
type Snapshot struct {
	Seed    int64       `json:"seed"`
	History string      `json:"history"`
	Enemy   world.Point `json:"enemy"`
	Lives   int         `json:"lives"`
}

// Snapshot captures the current session state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Seed:    s.Seed,
		History: s.History(),
		Enemy:   s.enemy,
		Lives:   s.lives,
	}
}

// Replay rebuilds a session from seed and applies symbols without enemy
// movement or captures.
func Replay(seed int64, symbols string, b Builder, opts Options, logger logrus.FieldLogger) (*Session, error) {
	s, err := New(seed, b, opts, logger)
	if err != nil {
		return nil, err
	}
	s.replaying = true
	s.ApplyAll(symbols)
	s.replaying = false
	return s, nil
}

// Resume replays a snapshot, then puts the enemy and lives back
func Resume(snap Snapshot, b Builder, opts Options, logger logrus.FieldLogger) (*Session, error) {
	if snap.Lives < 0 {
		return nil, fmt.Errorf("snapshot lives: must not be negative, got %d", snap.Lives)
	}
	s, err := Replay(snap.Seed, snap.History, b, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("replaying snapshot: %w", err)
	}
	if !s.Map().At(snap.Enemy).IsWalkable() {
		return nil, fmt.Errorf("snapshot enemy position %v is not walkable", snap.Enemy)
	}

	prev := s.enemy
	s.enemy = snap.Enemy
	s.redraw(prev)
	s.redraw(s.enemy)
	s.lives = snap.Lives
	s.repath()

	s.logger.WithField("history", len(snap.History)).Debug("session resumed")
	return s, nil
}
