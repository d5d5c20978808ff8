package input

import (
	"github.com/tomz197/splitfleet/internal/fleet"
)

// Tracker turns per-frame player input into fleet actions. It remembers
// whether rotate was held last frame so that only changes produce
// RotateHoldOn and RotateHoldOff.
type Tracker struct {
	holding [2]bool
}

// Actions appends player's actions for this frame to dst. player is 1 or 2.
func (t *Tracker) Actions(dst []fleet.Action, player int, in PlayerInput) []fleet.Action {
	i := player - 1
	switch {
	case in.Rotate && !t.holding[i]:
		dst = append(dst, fleet.RotateHoldOn)
	case !in.Rotate && t.holding[i]:
		dst = append(dst, fleet.RotateHoldOff)
	}
	t.holding[i] = in.Rotate

	for k := 0; k < in.Fire; k++ {
		dst = append(dst, fleet.Fire)
	}
	for k := 0; k < in.Split; k++ {
		dst = append(dst, fleet.Split)
	}
	for k := 0; k < in.Switch; k++ {
		dst = append(dst, fleet.Switch)
	}
	return dst
}

// Reset releases both players' rotate keys.
func (t *Tracker) Reset() {
	t.holding = [2]bool{}
}
