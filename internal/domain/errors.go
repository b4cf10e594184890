package domain

import "errors"

var (
	// ErrProductNotFound is returned when an identifier does not resolve to a catalog product
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrCompareLimitExceeded is returned when a third product is added to the compare set
	ErrCompareLimitExceeded = errors.New("you can compare up to 2 items only")

	// ErrInsufficientSelection is returned when a comparison is requested with fewer than 2 items
	ErrInsufficientSelection = errors.New("select two items to compare")

	// ErrRemoteFetchFailure is returned when the remote product API request fails
	ErrRemoteFetchFailure = errors.New("remote product API request failed")

	// ErrKeyNotFound is returned when a key is missing from the key-value store
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
