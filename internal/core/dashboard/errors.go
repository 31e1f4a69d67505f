package dashboard

import "errors"

var (
	ErrAlreadyLoaded = errors.New("dashboard: employees already loaded")
	ErrNoDirectory   = errors.New("dashboard: directory is not configured")
)
