package client

import "errors"

var (
	errNoServices           = errors.New("client services are not provided")
	errNoStorages           = errors.New("client storages are not provided")
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
)
