package dock

import (
	"math"
	"strconv"
	"sync/atomic"
)

// DockID identifies a node or floating window. IDs are unique within the
// process as long as ReserveIDs is called after loading a persisted layout.
type DockID uint64

func (id DockID) String() string {
	return "dock#" + strconv.FormatUint(uint64(id), 10)
}

// MaxDockID is never minted and never accepted from a loaded layout.
const MaxDockID = DockID(math.MaxUint64)

var nextID atomic.Uint64

// NewID mints a fresh DockID.
func NewID() DockID {
	return DockID(nextID.Add(1) - 1)
}

// ReserveIDs advances the allocator so that every id minted afterwards is
// greater than max. It never moves the allocator backwards, and it leaves
// the allocator alone for MaxDockID, which has no successor.
func ReserveIDs(max DockID) {
	if max == MaxDockID {
		return
	}
	for {
		cur := nextID.Load()
		if cur > uint64(max) {
			return
		}
		if nextID.CompareAndSwap(cur, uint64(max)+1) {
			return
		}
	}
}

// PeekID returns the id the next call to NewID would mint.
func PeekID() DockID {
	return DockID(nextID.Load())
}
