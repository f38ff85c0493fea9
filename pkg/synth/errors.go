package synth

import "errors"

// Sentinel errors for configuration defects caught at generator construction
var (
	ErrNoDepartments = errors.New("no departments configured")
	ErrNoPositions   = errors.New("department has no positions")
)
