package server

import "errors"

var (
	ErrMissingAddress = errors.New("server address is required")
	ErrAlreadyRunning = errors.New("server is already running")
	ErrServerFailed   = errors.New("http server error")
	ErrShutdownFailed = errors.New("http server shutdown error")
)
