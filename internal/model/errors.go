package model

import "errors"

var ErrNoRecord = errors.New("no record")

var (
	ErrFetchFailed     = errors.New("fetch users failed")
	ErrNotLoaded       = errors.New("users are not loaded")
	ErrFeatureDisabled = errors.New("feature is not available for this variant")
	ErrUnknownVariant  = errors.New("unknown variant")
)
