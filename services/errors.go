package services

import "errors"

// Service-level failures returned to controllers, which map them onto HTTP
// statuses with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrDuplicateName    = errors.New("a sibling with that name already exists")
	ErrFolderNotEmpty   = errors.New("folder is not empty")
	ErrCategoryMismatch = errors.New("target belongs to a different category")
	ErrNotFound         = errors.New("not found")
	ErrStorage          = errors.New("storage backend failure")
)
