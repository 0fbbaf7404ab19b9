package application

import "errors"

// ErrUpstreamUnavailable classifies every failure of the live quote fetch.
var ErrUpstreamUnavailable = errors.New("upstream enrichment unavailable")
var ErrBadRequest = errors.New("bad request")
