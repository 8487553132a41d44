package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrInvalidRepoRef   = goerr.New("invalid repository reference")
	ErrRepoInaccessible = goerr.New("repository inaccessible")
	ErrBackendFailure   = goerr.New("text generation backend failure")
)
