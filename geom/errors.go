package geom

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidPolygonError is the only error kind this package produces. It means
// the caller's vertex list cannot describe the polygon they asked about. The
// message is meant to be shown to a user as-is by the hosting application.
type InvalidPolygonError struct {
	msg string
}

func (e *InvalidPolygonError) Error() string {
	return e.msg
}

// invalidPolygonf builds an *InvalidPolygonError with a stack attached.
func invalidPolygonf(format string, args ...interface{}) error {
	return errors.WithStack(&InvalidPolygonError{msg: fmt.Sprintf(format, args...)})
}

// IsInvalidPolygon reports whether err is an *InvalidPolygonError, unwrapping
// any stack or context that was layered on top of it.
func IsInvalidPolygon(err error) bool {
	_, ok := errors.Cause(err).(*InvalidPolygonError)
	return ok
}
