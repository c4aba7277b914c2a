//go:build integration
// +build integration

// Package integration exercises a running API end to end: character
// creation, narrated actions, resting, journal reads, and deletion.
// It needs a live server with Redis and at least one narrator provider:
//
//	API_BASE_URL=http://localhost:8080 go test -tags integration ./integration/
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
)

var (
	baseURL = getEnv("API_BASE_URL", "http://localhost:8080")
	client  = &http.Client{Timeout: 90 * time.Second}
)

type characterView struct {
	Snapshot *game.Snapshot      `json:"snapshot"`
	Statuses []game.StatusEffect `json:"statuses"`
}

type actionResponse struct {
	Narrative string         `json:"narrative"`
	Snapshot  *game.Snapshot `json:"snapshot"`
}

type createResponse struct {
	Narrative string         `json:"narrative"`
	Snapshot  *game.Snapshot `json:"snapshot"`
}

func TestMain(m *testing.M) {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		fmt.Fprintf(os.Stderr, "API is not reachable at %s: %v\n", baseURL, err)
		os.Exit(1)
	}
	_ = resp.Body.Close()
	os.Exit(m.Run())
}

func TestStoryLifecycle(t *testing.T) {
	userID := fmt.Sprintf("it-user-%d", time.Now().UnixNano())

	var created createResponse
	doJSON(t, http.MethodPost, "/v1/characters", chat.CreateCharacterRequest{
		UserID:  userID,
		Name:    "Integration Vex",
		ClassID: "rogue",
	}, http.StatusCreated, &created)

	if created.Narrative == "" {
		t.Error("creation returned no opening narrative")
	}
	id := created.Snapshot.Character.ID
	t.Cleanup(func() {
		req, _ := http.NewRequest(http.MethodDelete, baseURL+"/v1/characters/"+id.String(), nil)
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
		}
	})

	// A second character for the same user must be rejected.
	doJSON(t, http.MethodPost, "/v1/characters", chat.CreateCharacterRequest{
		UserID:  userID,
		Name:    "Second",
		ClassID: "monk",
	}, http.StatusConflict, nil)

	var view characterView
	doJSON(t, http.MethodGet, "/v1/characters?user_id="+userID, nil, http.StatusOK, &view)
	if view.Snapshot.Character.ID != id {
		t.Fatalf("lookup returned character %s, want %s", view.Snapshot.Character.ID, id)
	}

	var acted actionResponse
	doJSON(t, http.MethodPost, "/v1/characters/"+id.String()+"/action",
		chat.ActionRequest{Action: "I look around and take stock of my situation."},
		http.StatusOK, &acted)
	if acted.Narrative == "" {
		t.Error("action returned no narrative")
	}

	doJSON(t, http.MethodPost, "/v1/characters/"+id.String()+"/rest", nil, http.StatusOK, nil)

	var journal []game.JournalEntry
	doJSON(t, http.MethodGet, "/v1/characters/"+id.String()+"/journal", nil, http.StatusOK, &journal)

	var msgs []chat.Message
	doJSON(t, http.MethodGet, "/v1/characters/"+id.String()+"/messages", nil, http.StatusOK, &msgs)
	if len(msgs) == 0 {
		t.Error("story log is empty after playing a turn")
	}
}

func TestCatalogs(t *testing.T) {
	var classes []game.Class
	doJSON(t, http.MethodGet, "/v1/classes", nil, http.StatusOK, &classes)
	if len(classes) == 0 {
		t.Error("class catalog is empty")
	}

	var zones []game.Zone
	doJSON(t, http.MethodGet, "/v1/zones", nil, http.StatusOK, &zones)
	if len(zones) == 0 || zones[0].ID != game.ZoneTavern {
		t.Errorf("zone catalog = %+v, want tavern first", zones)
	}
}

func doJSON(t *testing.T, method, path string, payload any, wantStatus int, out any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshaling request: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s returned %d, want %d: %s", method, path, resp.StatusCode, wantStatus, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("parsing response: %v", err)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
