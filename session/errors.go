package session

import "fmt"

// The window or its context could not be created. Nothing was acquired.
type InitializationError struct {
	Op  string
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization: %v: %v", e.Op, e.Err)
}
func (e *InitializationError) Unwrap() error { return e.Err }

//----------

// The renderer failed during a frame. The session stops.
type RenderError struct {
	Frame int
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: frame %v: %v", e.Frame, e.Err)
}
func (e *RenderError) Unwrap() error { return e.Err }
