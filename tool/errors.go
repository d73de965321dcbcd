package tool

import "fmt"

// ErrToolNotFound indicates a tool call referenced an unregistered tool.
type ErrToolNotFound struct {
	Name string
}

func (e *ErrToolNotFound) Error() string {
	return fmt.Sprintf("tool: %q not found in registry", e.Name)
}

// ErrToolAlreadyRegistered indicates a duplicate tool registration.
type ErrToolAlreadyRegistered struct {
	Name string
}

func (e *ErrToolAlreadyRegistered) Error() string {
	return fmt.Sprintf("tool: %q already registered", e.Name)
}
