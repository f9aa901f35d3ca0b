package widget

import (
	"fmt"
	"sort"
	"strconv"
)

// DefaultID is the pseudo-widget holding the default configuration.
const DefaultID = 0

// Identity is the widget a controller targets: either the standalone default
// configuration or exactly one host-managed instance.
type Identity struct {
	id int
}

// Standalone returns the identity of the default configuration.
func Standalone() Identity {
	return Identity{}
}

// Bound returns the identity for a host-managed instance. The reserved id 0
// maps to Standalone.
func Bound(id int) Identity {
	return Identity{id: id}
}

// IsStandalone reports whether the identity targets the default configuration.
func (i Identity) IsStandalone() bool {
	return i.id == DefaultID
}

// ID returns the widget id, 0 when standalone.
func (i Identity) ID() int {
	return i.id
}

func (i Identity) String() string {
	if i.IsStandalone() {
		return "standalone"
	}
	return fmt.Sprintf("widget %d", i.id)
}

// OrderedIDs flattens the bridge's id mapping into a stable slice. Integer
// keys come first in numeric order, remaining keys follow lexically; repeated
// ids and the reserved default id are dropped.
func OrderedIDs(ids map[string]int) []int {
	keys := make([]string, 0, len(ids))
	for k := range ids {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	seen := make(map[int]struct{}, len(keys))
	out := make([]int, 0, len(keys))
	for _, k := range keys {
		id := ids[k]
		if id == DefaultID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// IDMap builds the bridge's id mapping from an ordered slice.
func IDMap(ids []int) map[string]int {
	out := make(map[string]int, len(ids))
	for i, id := range ids {
		out[strconv.Itoa(i)] = id
	}
	return out
}
