package desktop

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/tomz197/splitfleet/internal/config"
)

// playerKeys are one player's controls as window keys.
type playerKeys struct {
	rotate, fire, split, switchShip ebiten.Key
}

// keyByName resolves a settings key name ("left", "a", "7") to a window key.
func keyByName(name string) (ebiten.Key, error) {
	want := strings.ToLower(name)
	switch want {
	case "left", "right", "up", "down":
		want = "arrow" + want
	}
	if len(want) == 1 && want[0] >= '0' && want[0] <= '9' {
		want = "digit" + want
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.ToLower(k.String()) == want {
			return k, nil
		}
	}
	return 0, errors.Errorf("no key named %q", name)
}

func resolveKeys(players [2]config.PlayerKeys) ([2]playerKeys, error) {
	var out [2]playerKeys
	for i, p := range players {
		for _, b := range []struct {
			name string
			dst  *ebiten.Key
		}{
			{p.Rotate, &out[i].rotate},
			{p.Fire, &out[i].fire},
			{p.Split, &out[i].split},
			{p.Switch, &out[i].switchShip},
		} {
			k, err := keyByName(b.name)
			if err != nil {
				return out, errors.Wrapf(err, "player %d", i+1)
			}
			*b.dst = k
		}
	}
	return out, nil
}
