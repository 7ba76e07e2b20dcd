package text

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks validation failures on mutating accessors.
	// The failed call leaves the prior state untouched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFontSize is returned when a requested font size is below the
	// minimum; errors.Is matches it against ErrInvalidArgument.
	ErrInvalidFontSize = fmt.Errorf("%w: font size below minimum", ErrInvalidArgument)

	// ErrUnsupportedContentKind is returned when a run is constructed from a
	// content kind the model does not recognize.
	ErrUnsupportedContentKind = errors.New("unsupported content kind")
)
