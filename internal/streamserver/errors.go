package streamserver

import "errors"

var (
	errTooShort      = errors.New("streamserver: frame shorter than header")
	errBadDimensions = errors.New("streamserver: frame dimensions do not match pixel payload")
)
