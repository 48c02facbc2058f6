package session

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Options tunes the occupants placed on a freshly generated dungeon
type Options struct {
	Collectibles int `json:"collectibles"`
	Lives        int `json:"lives"`
	VisionRadius int `json:"vision_radius"`
	// RepathChance is out of 10: how often EnemyTickRandom recomputes the chase path.
	RepathChance int `json:"repath_chance"`
	// PlacementAttempts bounds the retries for a collectible landing on an occupied cell.
	PlacementAttempts int `json:"placement_attempts"`
}

// DefaultOptions returns three collectibles, three lives and a radius 4 window
func DefaultOptions() Options {
	return Options{
		Collectibles:      3,
		Lives:             3,
		VisionRadius:      4,
		RepathChance:      7,
		PlacementAttempts: 100,
	}
}

// Validate reports every out-of-range field at once
func (o Options) Validate() error {
	el := errors.NewErrorList()
	if o.Collectibles < 0 {
		el.Add(fmt.Errorf("collectibles: must not be negative, got %d", o.Collectibles))
	}
	if o.Lives < 1 {
		el.Add(fmt.Errorf("lives: must be at least 1, got %d", o.Lives))
	}
	if o.VisionRadius < 0 {
		el.Add(fmt.Errorf("vision_radius: must not be negative, got %d", o.VisionRadius))
	}
	if o.RepathChance < 0 || o.RepathChance > 10 {
		el.Add(fmt.Errorf("repath_chance: must be within [0, 10], got %d", o.RepathChance))
	}
	if o.PlacementAttempts < 1 {
		el.Add(fmt.Errorf("placement_attempts: must be at least 1, got %d", o.PlacementAttempts))
	}
	return el.Err()
}
