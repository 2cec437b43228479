package domain

import "errors"

// Error messages for the upload path keep the exact wording clients match
// against, so they are sentence-cased on purpose.
var (
	ErrMissingParameters = errors.New("Missing required parameters: scriptKey, fileName, or fileContent")
	ErrUnauthorized      = errors.New("Unauthorized: Invalid script key")
	ErrFileNotFound      = errors.New("file not found")
)
