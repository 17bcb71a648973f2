package component

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/fishtown/common"
)

var ErrUnknownZoneKind = errors.New("unknown zone kind")

type ZoneKind int

const (
	ZoneNone ZoneKind = iota
	ZoneOcean
	ZoneLand
)

func (k ZoneKind) String() string {
	switch k {
	case ZoneOcean:
		return "ocean"
	case ZoneLand:
		return "land"
	default:
		return "none"
	}
}

func ParseZoneKind(s string) (ZoneKind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "ocean":
		return ZoneOcean, nil
	case "land":
		return ZoneLand, nil
	}
	return ZoneNone, fmt.Errorf("%w %q%s", ErrUnknownZoneKind, s, common.Suggest(key, []string{"ocean", "land"}))
}

// Zone is a static interval centered on its entity's Transform.X.
type Zone struct {
	Name      string
	Kind      ZoneKind
	HalfWidth float64
}

func (z Zone) Contains(center, x float64) bool {
	return common.WithinHalfWidth(x, center, z.HalfWidth)
}

var ZoneComponent = NewComponent[Zone]()
