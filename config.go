package deck

import (
	"errors"
	"fmt"
)

// Config controls deck layout and interaction. Set it at construction;
// changing it after cards are loaded has no visual effect until the next
// Reload.
type Config struct {
	// DisplayDepth is the number of visible cards. One extra, fully
	// transparent card is kept resident behind them so it can fade in while
	// the front card leaves.
	DisplayDepth int

	// BottomPadding is the height below the front card where deeper cards
	// peek out. Adjacent cards are BottomPadding/DisplayDepth apart.
	BottomPadding float64

	// ReduceScale is the size ratio between adjacent depths, in (0, 1).
	ReduceScale float64

	// CriticalScale is the fraction of half the card width a drag must
	// exceed for the release to eject the card.
	CriticalScale float64

	// DraggingEnabled allows the front card to be dragged. Programmatic
	// ejects work either way.
	DraggingEnabled bool

	// Travel is the horizontal distance an ejected card moves and the width
	// that normalizes drag progress. Zero uses the deck width.
	Travel float64
}

// DefaultConfig returns the default deck configuration.
func DefaultConfig() Config {
	return Config{
		DisplayDepth:    3,
		BottomPadding:   20,
		ReduceScale:     0.9,
		CriticalScale:   2.0 / 3.0,
		DraggingEnabled: true,
	}
}

// Geometry returns the layout parameters of c.
func (c Config) Geometry() Geometry {
	return Geometry{
		BottomPadding: c.BottomPadding,
		DisplayDepth:  c.DisplayDepth,
		ReduceScale:   c.ReduceScale,
	}
}

// Validate reports every out-of-range field of c.
func (c Config) Validate() error {
	var errs []error
	if c.DisplayDepth < 1 {
		errs = append(errs, fmt.Errorf("display depth %d: must be at least 1", c.DisplayDepth))
	}
	if c.BottomPadding < 0 {
		errs = append(errs, fmt.Errorf("bottom padding %v: must not be negative", c.BottomPadding))
	}
	if c.ReduceScale <= 0 || c.ReduceScale >= 1 {
		errs = append(errs, fmt.Errorf("reduce scale %v: must be in (0, 1)", c.ReduceScale))
	}
	if c.CriticalScale <= 0 {
		errs = append(errs, fmt.Errorf("critical scale %v: must be positive", c.CriticalScale))
	}
	if c.Travel < 0 {
		errs = append(errs, fmt.Errorf("travel %v: must not be negative", c.Travel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("deck: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// sanitized returns c with every invalid field replaced by its default.
func (c Config) sanitized() Config {
	def := DefaultConfig()
	if c.DisplayDepth < 1 {
		debugf("config: display depth %d replaced by %d", c.DisplayDepth, def.DisplayDepth)
		c.DisplayDepth = def.DisplayDepth
	}
	if c.BottomPadding < 0 {
		debugf("config: bottom padding %v replaced by %v", c.BottomPadding, def.BottomPadding)
		c.BottomPadding = def.BottomPadding
	}
	if c.ReduceScale <= 0 || c.ReduceScale >= 1 {
		debugf("config: reduce scale %v replaced by %v", c.ReduceScale, def.ReduceScale)
		c.ReduceScale = def.ReduceScale
	}
	if c.CriticalScale <= 0 {
		debugf("config: critical scale %v replaced by %v", c.CriticalScale, def.CriticalScale)
		c.CriticalScale = def.CriticalScale
	}
	if c.Travel < 0 {
		c.Travel = 0
	}
	return c
}
