package graph

import "fmt"

// CapacityError reports that Add, Append or SetTo would push the collection
// past its configured maximum state count.  The failed operation has no
// effect; callers decide whether to abort, approximate or surface the
// failure.
type CapacityError struct {
	// Limit is the configured maximum state count.
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("graph: state count limit %d exceeded", e.Limit)
}
