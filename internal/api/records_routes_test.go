package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/terraincognita07/lifeboard/internal/models"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func TestRootAndHealthArePublic(t *testing.T) {
	env := newTestApp(t)

	root := env.do(t, http.MethodGet, "/", nil, "")
	expectStatus(t, root, http.StatusOK)
	var info map[string]any
	decodeJSON(t, root, &info)
	if info["name"] != apiName || info["version"] != apiVersion {
		t.Fatalf("unexpected api info: %#v", info)
	}

	health := env.do(t, http.MethodGet, "/health", nil, "")
	expectStatus(t, health, http.StatusOK)
	var status map[string]string
	decodeJSON(t, health, &status)
	if status["status"] != "healthy" {
		t.Fatalf("expected healthy, got %#v", status)
	}
}

func TestAreasAndAIContent(t *testing.T) {
	env := newTestApp(t)

	areas := env.do(t, http.MethodGet, "/api/areas", nil, "")
	expectStatus(t, areas, http.StatusOK)
	var listed []models.LifeArea
	decodeJSON(t, areas, &listed)
	if len(listed) != 8 {
		t.Fatalf("expected 8 life areas, got %d", len(listed))
	}

	missing := env.do(t, http.MethodGet, "/api/ai/verse", nil, "")
	expectStatus(t, missing, http.StatusBadRequest)
	if message := readAPIError(t, missing.Body); message != "area is required" {
		t.Fatalf("expected area is required, got %q", message)
	}

	verse := env.do(t, http.MethodGet, "/api/ai/verse?area=unknown_area", nil, "")
	expectStatus(t, verse, http.StatusOK)
	var payload services.Verse
	decodeJSON(t, verse, &payload)
	if payload.Area != "unknown_area" || payload.Text == "" {
		t.Fatalf("expected fallback verse for unknown area, got %#v", payload)
	}

	expectStatus(t, env.do(t, http.MethodGet, "/api/ai/insight?area=spiritual", nil, ""), http.StatusOK)
}

func TestGoalOwnershipAndValidation(t *testing.T) {
	env := newTestApp(t)
	owner := env.signUp(t, "owner")
	other := env.signUp(t, "other")

	noArea := env.do(t, http.MethodPost, "/api/goals", map[string]any{
		"title":     "Run a marathon",
		"timeframe": "long",
	}, owner)
	expectStatus(t, noArea, http.StatusBadRequest)

	created := env.do(t, http.MethodPost, "/api/goals", map[string]any{
		"title":     "Run a marathon",
		"timeframe": "long",
		"area_ids":  []uint{1, 2},
	}, owner)
	expectStatus(t, created, http.StatusCreated)
	var goal models.Goal
	decodeJSON(t, created, &goal)
	if goal.Status != models.GoalStatusNotStarted || len(goal.Areas) != 2 {
		t.Fatalf("unexpected goal: %#v", goal)
	}

	path := fmt.Sprintf("/api/goals/%d", goal.ID)
	forbidden := env.do(t, http.MethodGet, path, nil, other)
	expectStatus(t, forbidden, http.StatusForbidden)
	if message := readAPIError(t, forbidden.Body); message != "not authorized" {
		t.Fatalf("expected not authorized, got %q", message)
	}

	missing := env.do(t, http.MethodGet, "/api/goals/9999", nil, owner)
	expectStatus(t, missing, http.StatusNotFound)
	if message := readAPIError(t, missing.Body); message != "goal not found" {
		t.Fatalf("expected goal not found, got %q", message)
	}

	badProgress := env.do(t, http.MethodPut, path, map[string]any{"progress_percentage": 120}, owner)
	expectStatus(t, badProgress, http.StatusBadRequest)

	expectStatus(t, env.do(t, http.MethodDelete, path, nil, other), http.StatusForbidden)
	expectStatus(t, env.do(t, http.MethodDelete, path, nil, owner), http.StatusNoContent)
	expectStatus(t, env.do(t, http.MethodGet, path, nil, owner), http.StatusNotFound)
}

func TestHabitCheckinFlow(t *testing.T) {
	env := newTestApp(t)
	session := env.signUp(t, "hana")

	created := env.do(t, http.MethodPost, "/api/habits", map[string]any{
		"name":                  "Morning run",
		"habit_type":            "build",
		"frequency_description": "daily",
		"area_ids":              []uint{1},
	}, session)
	expectStatus(t, created, http.StatusCreated)
	var habit models.Habit
	decodeJSON(t, created, &habit)
	base := fmt.Sprintf("/api/habits/%d", habit.ID)

	first := env.do(t, http.MethodPost, base+"/checkin", map[string]string{"checkin_date": "2026-03-09"}, session)
	expectStatus(t, first, http.StatusOK)

	second := env.do(t, http.MethodPost, base+"/checkin", nil, session)
	expectStatus(t, second, http.StatusOK)
	var result services.CheckinResult
	decodeJSON(t, second, &result)
	if result.CurrentStreak != 2 || result.LongestStreak != 2 {
		t.Fatalf("expected streak 2/2, got %d/%d", result.CurrentStreak, result.LongestStreak)
	}
	if result.CheckinDate.String() != "2026-03-10" {
		t.Fatalf("expected check-in to default to today, got %s", result.CheckinDate)
	}
	if result.HabitType != models.HabitTypeBuild {
		t.Fatalf("expected habit_type %q in result, got %q", models.HabitTypeBuild, result.HabitType)
	}

	duplicate := env.do(t, http.MethodPost, base+"/checkin", map[string]string{"checkin_date": "2026-03-10"}, session)
	expectStatus(t, duplicate, http.StatusBadRequest)
	if message := readAPIError(t, duplicate.Body); message != "already checked in for this date" {
		t.Fatalf("unexpected duplicate message %q", message)
	}

	future := env.do(t, http.MethodPost, base+"/checkin", map[string]string{"checkin_date": "2026-03-11"}, session)
	expectStatus(t, future, http.StatusBadRequest)

	history := env.do(t, http.MethodGet, base+"/checkins", nil, session)
	expectStatus(t, history, http.StatusOK)
	var checkins []models.HabitCheckin
	decodeJSON(t, history, &checkins)
	if len(checkins) != 2 || checkins[0].CheckinDate.String() != "2026-03-10" {
		t.Fatalf("expected two check-ins newest first, got %#v", checkins)
	}

	expectStatus(t, env.do(t, http.MethodPost, "/api/habits/9999/checkin", nil, session), http.StatusNotFound)

	scrape := env.do(t, http.MethodGet, "/metrics", nil, "")
	expectStatus(t, scrape, http.StatusOK)
	body, err := io.ReadAll(scrape.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	for _, line := range []string{
		`lifeboard_habits_checkins_total{habit_type="build",outcome="recorded"} 2`,
		`lifeboard_habits_checkins_total{habit_type="build",outcome="rejected"} 2`,
	} {
		if !strings.Contains(string(body), line) {
			t.Fatalf("expected %s in metrics, got:\n%s", line, string(body))
		}
	}
	if strings.Contains(string(body), `habit_type="unknown"`) {
		t.Fatalf("missing habit should not be counted as a check-in:\n%s", string(body))
	}
}

func TestTaskCompletionStampsCompletedAt(t *testing.T) {
	env := newTestApp(t)
	session := env.signUp(t, "tess")

	created := env.do(t, http.MethodPost, "/api/tasks", map[string]any{
		"area_id": 3,
		"title":   "File taxes",
	}, session)
	expectStatus(t, created, http.StatusCreated)
	var task models.Task
	decodeJSON(t, created, &task)
	if task.CompletedAt != nil {
		t.Fatal("expected new task to be open")
	}

	path := fmt.Sprintf("/api/tasks/%d", task.ID)
	done := env.do(t, http.MethodPut, path, map[string]string{"status": "done"}, session)
	expectStatus(t, done, http.StatusOK)
	decodeJSON(t, done, &task)
	if task.CompletedAt == nil {
		t.Fatal("expected completed_at after moving to done")
	}

	reopened := env.do(t, http.MethodPut, path, map[string]string{"status": "todo"}, session)
	expectStatus(t, reopened, http.StatusOK)
	var reopenedTask models.Task
	decodeJSON(t, reopened, &reopenedTask)
	if reopenedTask.CompletedAt != nil {
		t.Fatal("expected completed_at to clear when reopened")
	}

	unknownArea := env.do(t, http.MethodPost, "/api/tasks", map[string]any{"area_id": 42, "title": "x"}, session)
	expectStatus(t, unknownArea, http.StatusBadRequest)
}

func TestContactBirthdayEndpoint(t *testing.T) {
	env := newTestApp(t)
	session := env.signUp(t, "cleo")

	without := env.do(t, http.MethodPost, "/api/contacts", map[string]any{"name": "No Date"}, session)
	expectStatus(t, without, http.StatusCreated)
	var plain models.Contact
	decodeJSON(t, without, &plain)

	missing := env.do(t, http.MethodGet, fmt.Sprintf("/api/contacts/%d/birthday", plain.ID), nil, session)
	expectStatus(t, missing, http.StatusBadRequest)

	with := env.do(t, http.MethodPost, "/api/contacts", map[string]any{
		"name":     "Mom",
		"birthday": "1960-03-15",
	}, session)
	expectStatus(t, with, http.StatusCreated)
	var mom models.Contact
	decodeJSON(t, with, &mom)

	response := env.do(t, http.MethodGet, fmt.Sprintf("/api/contacts/%d/birthday", mom.ID), nil, session)
	expectStatus(t, response, http.StatusOK)
	var info services.BirthdayInfo
	decodeJSON(t, response, &info)
	if info.CurrentAge != 65 || info.DaysUntil != 5 || info.NextBirthday.String() != "2026-03-15" {
		t.Fatalf("unexpected birthday info: %#v", info)
	}
}

func TestFinanceSummaryEndpoint(t *testing.T) {
	env := newTestApp(t)
	session := env.signUp(t, "finn")

	accounts := []map[string]any{
		{"account_type": "banking", "name": "Checking", "current_balance": 1500.25},
		{"account_type": "credit_card", "name": "Visa", "current_balance": 200},
		{"account_type": "loan", "name": "Car", "current_balance": -500},
		{"account_type": "investment", "name": "Empty"},
	}
	for _, account := range accounts {
		expectStatus(t, env.do(t, http.MethodPost, "/api/finance", account, session), http.StatusCreated)
	}

	response := env.do(t, http.MethodGet, "/api/finance/summary", nil, session)
	expectStatus(t, response, http.StatusOK)
	var summary services.FinancialSummary
	decodeJSON(t, response, &summary)

	if !summary.TotalAssets.Equal(decimal.RequireFromString("1500.25")) {
		t.Fatalf("unexpected assets %s", summary.TotalAssets)
	}
	if !summary.TotalLiabilities.Equal(decimal.RequireFromString("700")) {
		t.Fatalf("unexpected liabilities %s", summary.TotalLiabilities)
	}
	if !summary.NetWorth.Equal(decimal.RequireFromString("800.25")) || summary.AccountCount != 4 {
		t.Fatalf("unexpected summary %#v", summary)
	}

	badLast4 := env.do(t, http.MethodPost, "/api/finance", map[string]any{
		"account_type":         "banking",
		"name":                 "Savings",
		"account_number_last4": "12a4",
	}, session)
	expectStatus(t, badLast4, http.StatusBadRequest)
}

func TestEntriesDateFilter(t *testing.T) {
	env := newTestApp(t)
	session := env.signUp(t, "joe")

	for _, date := range []string{"2026-03-01", "2026-03-05", "2026-03-09"} {
		response := env.do(t, http.MethodPost, "/api/entries", map[string]any{
			"area_id":    8,
			"title":      "Reflection " + date,
			"content":    "Notes",
			"entry_date": date,
		}, session)
		expectStatus(t, response, http.StatusCreated)
	}

	response := env.do(t, http.MethodGet, "/api/entries?start_date=2026-03-02&end_date=2026-03-09", nil, session)
	expectStatus(t, response, http.StatusOK)
	var entries []models.Entry
	decodeJSON(t, response, &entries)
	if len(entries) != 2 || entries[0].EntryDate.String() != "2026-03-09" {
		t.Fatalf("expected two entries newest first, got %#v", entries)
	}

	inverted := env.do(t, http.MethodGet, "/api/entries?start_date=2026-03-09&end_date=2026-03-01", nil, session)
	expectStatus(t, inverted, http.StatusBadRequest)
	if message := readAPIError(t, inverted.Body); message != "end_date must not be before start_date" {
		t.Fatalf("unexpected inverted range message %q", message)
	}

	defaulted := env.do(t, http.MethodPost, "/api/entries", map[string]any{
		"area_id": 8,
		"title":   "Today",
		"content": "Undated",
	}, session)
	expectStatus(t, defaulted, http.StatusCreated)
	var entry models.Entry
	decodeJSON(t, defaulted, &entry)
	if entry.EntryDate.String() != "2026-03-10" {
		t.Fatalf("expected entry_date to default to today, got %s", entry.EntryDate)
	}
}

func TestConflictTopicLimit(t *testing.T) {
	env := newTestApp(t)
	session := env.signUp(t, "kai")

	for index := 1; index <= models.MaxConflictTopics; index++ {
		response := env.do(t, http.MethodPost, "/api/one-on-one", map[string]string{
			"topic": fmt.Sprintf("Topic %d", index),
		}, session)
		expectStatus(t, response, http.StatusCreated)
	}

	response := env.do(t, http.MethodPost, "/api/one-on-one", map[string]string{"topic": "One too many"}, session)
	expectStatus(t, response, http.StatusBadRequest)
	if message := readAPIError(t, response.Body); !strings.Contains(message, "maximum of 3 conflict topics") {
		t.Fatalf("unexpected limit message %q", message)
	}
}

func TestMetricsEndpointExposesRequestCounters(t *testing.T) {
	env := newTestApp(t)
	expectStatus(t, env.do(t, http.MethodGet, "/health", nil, ""), http.StatusOK)

	response := env.do(t, http.MethodGet, "/metrics", nil, "")
	expectStatus(t, response, http.StatusOK)

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(body), `lifeboard_http_requests_total{method="GET",route="/health",status="200"} 1`) {
		t.Fatalf("expected health request to be counted, got:\n%s", string(body))
	}
}

func TestHealthCatalogAndReferenceRoutes(t *testing.T) {
	env := newTestApp(t)
	session := env.signUp(t, "noor")

	for _, item := range []map[string]string{
		{"catalog_type": "doctor", "name": "Dr. Lee", "doctor_specialty": "GP"},
		{"catalog_type": "supplement", "name": "Vitamin D", "supplement_dosage": "1000 IU"},
	} {
		expectStatus(t, env.do(t, http.MethodPost, "/api/health", item, session), http.StatusCreated)
	}
	badType := env.do(t, http.MethodPost, "/api/health", map[string]string{"catalog_type": "gym", "name": "x"}, session)
	expectStatus(t, badType, http.StatusBadRequest)

	doctors := env.do(t, http.MethodGet, "/api/health?catalog_type=doctor", nil, session)
	expectStatus(t, doctors, http.StatusOK)
	var items []models.HealthCatalogItem
	decodeJSON(t, doctors, &items)
	if len(items) != 1 || items[0].DoctorSpecialty != "GP" {
		t.Fatalf("expected one doctor, got %#v", items)
	}

	noURL := env.do(t, http.MethodPost, "/api/references", map[string]any{"title": "Docs", "type": "website"}, session)
	expectStatus(t, noURL, http.StatusBadRequest)
	if message := readAPIError(t, noURL.Body); message != "url is required for website references" {
		t.Fatalf("unexpected reference message %q", message)
	}

	website := env.do(t, http.MethodPost, "/api/references", map[string]any{
		"title":    "Docs",
		"type":     "website",
		"url":      "https://go.dev",
		"area_ids": []uint{2},
	}, session)
	expectStatus(t, website, http.StatusCreated)

	byArea := env.do(t, http.MethodGet, "/api/references?area_id=2", nil, session)
	expectStatus(t, byArea, http.StatusOK)
	var references []models.Reference
	decodeJSON(t, byArea, &references)
	if len(references) != 1 {
		t.Fatalf("expected one reference in area 2, got %d", len(references))
	}

	badFilter := env.do(t, http.MethodGet, "/api/references?area_id=abc", nil, session)
	expectStatus(t, badFilter, http.StatusBadRequest)
}
