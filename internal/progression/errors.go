package progression

import "fmt"

// PersistenceError wraps a storage failure during a progression step.
// Nothing is rolled back in memory beyond the failed step; the next
// reconciliation resynchronizes XP from the log.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
