package domain

import "errors"

var (
	ErrNotLoaded    = errors.New("settings: document not loaded")
	ErrInvalidRules = errors.New("settings: invalid pricing rules")
)
