package drafter

import "errors"

// Skip reasons. Editing operations never fail in a way that interrupts
// input; when a precondition is not met they leave every curve untouched
// and return one of these so callers can tell what happened.
var (
	// ErrNoSelection is returned when an operation needs a selected curve.
	ErrNoSelection = errors.New("drafter: no selection")

	// ErrLocked is returned when every target curve is locked.
	ErrLocked = errors.New("drafter: curve is locked")

	// ErrDegenerateBounds is returned when a resize met zero-size bounds
	// and the rotation nudge was applied instead.
	ErrDegenerateBounds = errors.New("drafter: degenerate bounds")

	// ErrEmptyPath is returned when there is no geometry to work on.
	ErrEmptyPath = errors.New("drafter: empty path")

	// ErrNotApplicable is returned when an operation does not apply to
	// the target, such as rounding the corners of an oval.
	ErrNotApplicable = errors.New("drafter: not applicable")

	// ErrTooFewCurves is returned when grouping fewer than two curves or
	// ungrouping a curve that is not a group.
	ErrTooFewCurves = errors.New("drafter: too few curves")

	// ErrEditing is returned when an operation is unavailable while the
	// selected curve is in edit mode.
	ErrEditing = errors.New("drafter: curve is being edited")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("drafter: invalid config")
)

var skips = []error{
	ErrNoSelection,
	ErrLocked,
	ErrDegenerateBounds,
	ErrEmptyPath,
	ErrNotApplicable,
	ErrTooFewCurves,
	ErrEditing,
}

// IsSkip reports whether err is, or wraps, a skip reason.
func IsSkip(err error) bool {
	for _, s := range skips {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}
