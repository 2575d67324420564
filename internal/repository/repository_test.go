package repository

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	appErrors "github.com/patriotech/marketing-intel/internal/errors"
	"github.com/patriotech/marketing-intel/internal/model"
)

// newMockDB creates a sqlmock database with automatic cleanup and expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

var campaignRowColumns = []string{
	"id", "organization_id", "name", "campaign_type", "status", "start_date", "end_date",
	"budget", "spend", "impressions", "clicks", "conversions", "leads", "revenue",
	"performance_score", "roi_score", "overall_score", "rating", "created_at", "updated_at",
}

func TestCampaignCreateGeneratesID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CampaignRepository{DB: db}

	mock.ExpectExec("INSERT INTO campaigns").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c := &model.Campaign{OrganizationID: "org-1", Name: "Launch"}
	if err := repo.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(c.ID, "cmp-") {
		t.Errorf("expected generated cmp- id, got %q", c.ID)
	}
	if c.Status != "draft" {
		t.Errorf("expected default draft status, got %q", c.Status)
	}
}

func TestCampaignGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CampaignRepository{DB: db}

	now := time.Now()
	rows := sqlmock.NewRows(campaignRowColumns).AddRow(
		"cmp-1", "org-1", "Launch", "Lead Gen", "active", nil, nil,
		5000.0, 2500.0, 100000, 3000, 150, 300, 9000.0,
		nil, nil, nil, "", now, nil,
	)
	mock.ExpectQuery("SELECT .+ FROM campaigns WHERE id=\\$1").
		WithArgs("cmp-1").
		WillReturnRows(rows)

	c, err := repo.GetByID("cmp-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.Name != "Launch" || c.Conversions != 150 {
		t.Errorf("unexpected campaign: %+v", c)
	}
}

func TestCampaignGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CampaignRepository{DB: db}

	mock.ExpectQuery("SELECT .+ FROM campaigns WHERE id=\\$1").
		WithArgs("cmp-missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID("cmp-missing")
	if !appErrors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestCampaignUpdateScores(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CampaignRepository{DB: db}

	mock.ExpectExec("UPDATE campaigns").
		WithArgs(67.5, 100.0, 80.5, "Good", "cmp-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateScores("cmp-1", 67.5, 100, 80.5, "Good"); err != nil {
		t.Fatalf("UpdateScores: %v", err)
	}
}

func TestCampaignUpdateScoresNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CampaignRepository{DB: db}

	mock.ExpectExec("UPDATE campaigns").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateScores("cmp-missing", 1, 2, 3, "Poor")
	if !appErrors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestCampaignListByOrganization(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &CampaignRepository{DB: db}

	now := time.Now()
	rows := sqlmock.NewRows(campaignRowColumns).
		AddRow("cmp-1", "org-1", "A", "", "active", nil, nil, 0.0, 0.0, 0, 0, 0, 0, 0.0, nil, nil, nil, "", now, nil).
		AddRow("cmp-2", "org-1", "B", "", "paused", nil, nil, 0.0, 0.0, 0, 0, 0, 0, 0.0, nil, nil, nil, "", now, nil)
	mock.ExpectQuery("SELECT .+ FROM campaigns WHERE organization_id=\\$1 ORDER BY created_at DESC").
		WithArgs("org-1").
		WillReturnRows(rows)

	campaigns, err := repo.ListByOrganization("org-1")
	if err != nil {
		t.Fatalf("ListByOrganization: %v", err)
	}
	if len(campaigns) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(campaigns))
	}
}

func TestChannelUpdateKPIs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &ChannelRepository{DB: db}

	ctr := 3.5
	score := 82.0
	mock.ExpectExec("UPDATE channels").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateKPIs(&model.Channel{ID: "chn-1", CTR: &ctr, EfficiencyScore: &score, Rating: "Good"})
	if err != nil {
		t.Fatalf("UpdateKPIs: %v", err)
	}
}

func TestBenchmarkCreateMarshalsJSON(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &BenchmarkRepository{DB: db}

	mock.ExpectExec("INSERT INTO benchmark_results").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result := &model.BenchmarkResult{
		OrganizationID: "org-1",
		BenchmarkType:  "marketing",
		OverallScore:   84.2,
		OverallRating:  "Good",
		Grade:          "B",
		CategoryScores: map[string]float64{"Revenue": 92.1},
		Strengths:      []string{"ROAS: 420%"},
	}
	if err := repo.Create(result); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(result.ID, "bmk-") {
		t.Errorf("expected generated bmk- id, got %q", result.ID)
	}
}

func TestBenchmarkGetLatestRoundTrip(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &BenchmarkRepository{DB: db}

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "organization_id", "benchmark_type", "overall_score", "overall_rating", "grade",
		"category_scores", "strengths", "improvements", "recommendations", "created_at",
	}).AddRow(
		"bmk-1", "org-1", "marketing", 84.2, "Good", "B",
		[]byte(`{"Revenue":92.1}`), []byte(`["ROAS: 420%"]`), []byte(`[]`), []byte(`["Increase NPS"]`), now,
	)
	mock.ExpectQuery("SELECT .+ FROM benchmark_results WHERE organization_id=\\$1 AND benchmark_type=\\$2").
		WithArgs("org-1", "marketing").
		WillReturnRows(rows)

	b, err := repo.GetLatest("org-1", "marketing")
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if b.CategoryScores["Revenue"] != 92.1 {
		t.Errorf("category scores not unmarshalled: %+v", b.CategoryScores)
	}
	if len(b.Strengths) != 1 || len(b.Recommendations) != 1 {
		t.Errorf("JSON arrays not unmarshalled: %+v", b)
	}
}

func TestBenchmarkGetLatestNone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &BenchmarkRepository{DB: db}

	mock.ExpectQuery("SELECT .+ FROM benchmark_results WHERE organization_id=\\$1").
		WithArgs("org-1").
		WillReturnError(sql.ErrNoRows)

	b, err := repo.GetLatest("org-1", "")
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if b != nil {
		t.Errorf("expected nil result for empty history, got %+v", b)
	}
}

func TestChatSessionLifecycle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &ChatRepository{DB: db}

	mock.ExpectExec("INSERT INTO chat_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	session := &model.ChatSession{Mode: "roi_review", Title: "Budget review"}
	if err := repo.CreateSession(session); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if !strings.HasPrefix(session.ID, "chat-") {
		t.Errorf("expected generated chat- id, got %q", session.ID)
	}

	mock.ExpectExec("INSERT INTO chat_messages").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE chat_sessions SET updated_at=NOW").
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg := &model.ChatMessage{SessionID: session.ID, Role: "user", Content: "hello"}
	if err := repo.AddMessage(msg); err != nil {
		t.Fatalf("AddMessage: %v", err)
	}
}

func TestChatGetSessionNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &ChatRepository{DB: db}

	mock.ExpectQuery("SELECT .+ FROM chat_sessions WHERE id=\\$1").
		WithArgs("chat-missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSession("chat-missing")
	if !appErrors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestOrganizationCreateGeneratesID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &OrganizationRepository{DB: db}

	mock.ExpectExec("INSERT INTO organizations").
		WillReturnResult(sqlmock.NewResult(0, 1))

	org := &model.Organization{Name: "Acme", Industry: "Technology"}
	if err := repo.Create(org); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(org.ID, "org-") {
		t.Errorf("expected generated org- id, got %q", org.ID)
	}
}
