package domain

import "errors"

var (
	// ErrNoInputFiles is returned when the input directory holds no YAML documents.
	ErrNoInputFiles = errors.New("no YAML files found")

	// ErrNoOperations is returned when no operation could be extracted from any document.
	ErrNoOperations = errors.New("no API operations to convert")

	// ErrUnsupportedFormat is returned for an unknown report format name.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
