package contact

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator mints candidate contact identifiers. The Store enforces
// uniqueness, so a generator only needs to be unlikely to repeat.
type IDGenerator func() string

// RandomUUID returns a random (version 4) UUID string.
func RandomUUID() string {
	return uuid.NewString()
}

// Sequential returns a generator yielding "1", "2", "3", ...
func Sequential() IDGenerator {
	var n atomic.Uint64
	return func() string {
		return strconv.FormatUint(n.Add(1), 10)
	}
}

// GeneratorFor maps a config id_strategy name to a generator.
// Unknown names return false.
func GeneratorFor(strategy string) (IDGenerator, bool) {
	switch strategy {
	case "", "uuid":
		return RandomUUID, true
	case "sequential":
		return Sequential(), true
	default:
		return nil, false
	}
}
