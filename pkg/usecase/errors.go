package usecase

import "github.com/m-mizutani/goerr/v2"

// ErrInvalidArgument marks caller input errors so the HTTP layer can map
// them to 400 instead of 500
var ErrInvalidArgument = goerr.New("invalid argument")
