package hop_memory

import "fmt"

// InvalidPatternError reports a malformed or inconsistent pattern set at
// construction time.
type InvalidPatternError struct {
	Reason string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern set: %s", e.Reason)
}

// DimensionMismatchError reports a probe whose length does not match the
// network dimension.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("probe length %d does not match network dimension %d", e.Got, e.Want)
}
