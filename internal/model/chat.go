// internal/model/chat.go
package model

import "time"

type ChatSession struct {
	ID             string         `db:"id" json:"id"`
	OrganizationID *string        `db:"organization_id" json:"organization_id,omitempty"`
	Mode           string         `db:"mode" json:"mode"`
	Title          string         `db:"title" json:"title"`
	Context        map[string]any `db:"context" json:"context,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time     `db:"updated_at" json:"updated_at,omitempty"`
}

type ChatMessage struct {
	ID        string    `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"session_id"`
	Role      string    `db:"role" json:"role"` // user, assistant
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
