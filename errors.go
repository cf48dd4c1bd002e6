package cyclemenu

import "errors"

// ErrInvalidArgument is returned, wrapped in an *InvalidArgumentError, when
// a required enum-valued setting is unset or out of range.
var ErrInvalidArgument = errors.New("cyclemenu: invalid argument")

// InvalidArgumentError names the parameter that was rejected.
type InvalidArgumentError struct {
	Param string
}

func (e *InvalidArgumentError) Error() string {
	return "cyclemenu: parameter \"" + e.Param + "\" can't be unset"
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Parameter names reported by InvalidArgumentError.
const (
	paramCorner        = "corner"
	paramScalingPolicy = "scalingPolicy"
	paramScrollPolicy  = "scrollPolicy"
)
