package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrNoProxiesFound is returned when a configuration declares neither
	// proxies nor proxy providers.
	ErrNoProxiesFound = errors.New("no proxies found")
)
