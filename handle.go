package handlemap

import "fmt"

// Handle identifies an item in a Map independently of where it is stored.
// It is a plain value: freely copyable, comparable with ==, and cheap to
// keep around as a long-lived reference in place of a pointer.
//
// The zero Handle is the nil handle; no valid item is ever assigned
// index 0. Generation starts at 1 when a slot is first occupied and
// increments by one each time the slot is reused, so a handle to a removed
// item never validates again. (32-bit generation wraparound is an accepted,
// documented limitation.)
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsNil reports whether h is the nil handle.
func (h Handle) IsNil() bool {
	return h.Index == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("Handle(%d:%d)", h.Index, h.Generation)
}

// handleRef anchors the Item constraint. It is promoted into any struct
// that embeds Handle, which is how item types opt in to being stored.
func (h *Handle) handleRef() *Handle {
	return h
}

// Item constrains the types a Map can store: a pointer to a struct that
// embeds Handle. The embedded Handle is the item's self handle; the Map
// owns it and keeps it equal to the handle it returned from Add for as
// long as the item is live.
//
//	type Enemy struct {
//	    handlemap.Handle
//	    X, Y float32
//	    HP   int32
//	}
type Item[T any] interface {
	*T
	handleRef() *Handle
}
