// internal/errors/errors.go
package appErrors

import "fmt"

// ErrNotFound is returned when a row does not exist.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// Helper constructors
func NewOrganizationNotFound(id string) error {
	return &ErrNotFound{Entity: "organization", ID: id}
}

func NewCampaignNotFound(id string) error {
	return &ErrNotFound{Entity: "campaign", ID: id}
}

func NewChannelNotFound(id string) error {
	return &ErrNotFound{Entity: "channel", ID: id}
}

func NewContentNotFound(id string) error {
	return &ErrNotFound{Entity: "content", ID: id}
}

func NewChatSessionNotFound(id string) error {
	return &ErrNotFound{Entity: "chat session", ID: id}
}

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}
