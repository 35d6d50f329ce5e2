package oned

import "errors"

// ErrNotFound is returned when no registered reader decodes the image.
var ErrNotFound = errors.New("oned: no barcode found")
