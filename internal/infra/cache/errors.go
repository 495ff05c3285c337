package cache

import "errors"

var (
	ErrConnect  = errors.New("failed to connect to redis")
	ErrGet      = errors.New("failed to get value from cache")
	ErrSet      = errors.New("failed to set value in cache")
	ErrMarshal  = errors.New("failed to marshal cached value")
	ErrCacheMiss = errors.New("cache miss")
)
