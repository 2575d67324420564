package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	appErrors "github.com/patriotech/marketing-intel/internal/errors"
	"github.com/patriotech/marketing-intel/internal/idgen"
	"github.com/patriotech/marketing-intel/internal/model"
)

type ChatRepositoryInterface interface {
	CreateSession(s *model.ChatSession) error
	GetSession(id string) (*model.ChatSession, error)
	ListSessions(orgID string, limit int) ([]model.ChatSession, error)
	DeleteSession(id string) error
	AddMessage(m *model.ChatMessage) error
	ListMessages(sessionID string) ([]model.ChatMessage, error)
}

type ChatRepository struct {
	DB *sql.DB
}

func (r *ChatRepository) CreateSession(s *model.ChatSession) error {
	if s.ID == "" {
		id, err := idgen.New(idgen.PrefixChatSession)
		if err != nil {
			return err
		}
		s.ID = id
	}
	if s.Mode == "" {
		s.Mode = "general"
	}
	if s.Title == "" {
		s.Title = "Chat Session"
	}
	s.CreatedAt = time.Now()

	ctx := s.Context
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctxJSON, err := json.Marshal(ctx)
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}

	query := `
        INSERT INTO chat_sessions (id, organization_id, mode, title, context, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err = r.DB.Exec(query, s.ID, s.OrganizationID, s.Mode, s.Title, ctxJSON, s.CreatedAt)
	return err
}

func (r *ChatRepository) GetSession(id string) (*model.ChatSession, error) {
	query := `
        SELECT id, organization_id, mode, title, context, created_at, updated_at
        FROM chat_sessions WHERE id=$1
    `
	var s model.ChatSession
	var ctxJSON []byte
	err := r.DB.QueryRow(query, id).Scan(&s.ID, &s.OrganizationID, &s.Mode, &s.Title, &ctxJSON, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewChatSessionNotFound(id)
		}
		return nil, err
	}
	if err := json.Unmarshal(ctxJSON, &s.Context); err != nil {
		return nil, fmt.Errorf("unmarshal context: %w", err)
	}
	return &s, nil
}

func (r *ChatRepository) ListSessions(orgID string, limit int) ([]model.ChatSession, error) {
	if limit < 1 {
		limit = 20
	}
	query := `
        SELECT id, organization_id, mode, title, context, created_at, updated_at
        FROM chat_sessions
    `
	args := []any{}
	if orgID != "" {
		query += ` WHERE organization_id=$1 ORDER BY COALESCE(updated_at, created_at) DESC LIMIT $2`
		args = append(args, orgID, limit)
	} else {
		query += ` ORDER BY COALESCE(updated_at, created_at) DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []model.ChatSession{}
	for rows.Next() {
		var s model.ChatSession
		var ctxJSON []byte
		if err := rows.Scan(&s.ID, &s.OrganizationID, &s.Mode, &s.Title, &ctxJSON, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(ctxJSON, &s.Context); err != nil {
			return nil, fmt.Errorf("unmarshal context: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *ChatRepository) DeleteSession(id string) error {
	res, err := r.DB.Exec(`DELETE FROM chat_sessions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewChatSessionNotFound(id)
	}
	return nil
}

// AddMessage inserts a message and bumps the session timestamp.
func (r *ChatRepository) AddMessage(m *model.ChatMessage) error {
	if m.ID == "" {
		id, err := idgen.New(idgen.PrefixChatMessage)
		if err != nil {
			return err
		}
		m.ID = id
	}
	m.CreatedAt = time.Now()

	query := `INSERT INTO chat_messages (id, session_id, role, content, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.DB.Exec(query, m.ID, m.SessionID, m.Role, m.Content, m.CreatedAt); err != nil {
		return err
	}

	_, err := r.DB.Exec(`UPDATE chat_sessions SET updated_at=NOW() WHERE id=$1`, m.SessionID)
	return err
}

func (r *ChatRepository) ListMessages(sessionID string) ([]model.ChatMessage, error) {
	query := `
        SELECT id, session_id, role, content, created_at
        FROM chat_messages WHERE session_id=$1 ORDER BY created_at
    `
	rows, err := r.DB.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.ChatMessage{}
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

var _ ChatRepositoryInterface = (*ChatRepository)(nil)
