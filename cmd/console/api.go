package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
)

// CharacterView mirrors the API's character read response.
type CharacterView struct {
	Snapshot *game.Snapshot      `json:"snapshot"`
	Statuses []game.StatusEffect `json:"statuses"`
}

// ActionResponse mirrors the API's action response.
type ActionResponse struct {
	Narrative      string              `json:"narrative"`
	Classification game.Classification `json:"classification"`
	DiceRoll       int                 `json:"dice_roll,omitempty"`
	Snapshot       *game.Snapshot      `json:"snapshot"`
	Statuses       []game.StatusEffect `json:"statuses"`
}

// RestResponse mirrors the API's rest response.
type RestResponse struct {
	Rest      game.RestResult     `json:"rest"`
	Encounter *ActionResponse     `json:"encounter,omitempty"`
	Snapshot  *game.Snapshot      `json:"snapshot"`
	Statuses  []game.StatusEffect `json:"statuses"`
}

// CreateResponse mirrors the API's creation response.
type CreateResponse struct {
	Narrative string              `json:"narrative"`
	Snapshot  *game.Snapshot      `json:"snapshot"`
	Statuses  []game.StatusEffect `json:"statuses"`
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

// decodeResponse reads a response body and decodes it into out, turning
// non-matching status codes into errors with the API's message.
func decodeResponse(resp *http.Response, wantStatus int, out any) error {
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		var errorResp chat.ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
			return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return fmt.Errorf("%s", errorResp.Error)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func postJSON(client *http.Client, url string, payload any) (*http.Response, error) {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
	}
	resp, err := client.Post(url, "application/json", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

func listClasses(client *http.Client, baseURL string) ([]game.Class, error) {
	resp, err := client.Get(baseURL + "/v1/classes")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	var classes []game.Class
	if err := decodeResponse(resp, http.StatusOK, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// lookupCharacter finds the user's character. A nil view with nil error
// means the user has none yet.
func lookupCharacter(client *http.Client, baseURL, userID string) (*CharacterView, error) {
	resp, err := client.Get(baseURL + "/v1/characters?user_id=" + userID)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, nil
	}
	var view CharacterView
	if err := decodeResponse(resp, http.StatusOK, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func createCharacter(client *http.Client, baseURL string, req chat.CreateCharacterRequest) (*CreateResponse, error) {
	resp, err := postJSON(client, baseURL+"/v1/characters", req)
	if err != nil {
		return nil, err
	}
	var created CreateResponse
	if err := decodeResponse(resp, http.StatusCreated, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func getCharacter(client *http.Client, baseURL string, id uuid.UUID) (*CharacterView, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/characters/%s", baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	var view CharacterView
	if err := decodeResponse(resp, http.StatusOK, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func sendAction(client *http.Client, baseURL string, id uuid.UUID, action string) (*ActionResponse, error) {
	resp, err := postJSON(client, fmt.Sprintf("%s/v1/characters/%s/action", baseURL, id),
		chat.ActionRequest{Action: action})
	if err != nil {
		return nil, err
	}
	var result ActionResponse
	if err := decodeResponse(resp, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func sendRest(client *http.Client, baseURL string, id uuid.UUID) (*RestResponse, error) {
	resp, err := postJSON(client, fmt.Sprintf("%s/v1/characters/%s/rest", baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	var result RestResponse
	if err := decodeResponse(resp, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func getJournal(client *http.Client, baseURL string, id uuid.UUID) ([]game.JournalEntry, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/characters/%s/journal", baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	var entries []game.JournalEntry
	if err := decodeResponse(resp, http.StatusOK, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func getMessages(client *http.Client, baseURL string, id uuid.UUID, limit int) ([]chat.Message, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/characters/%s/messages?limit=%d", baseURL, id, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	var msgs []chat.Message
	if err := decodeResponse(resp, http.StatusOK, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
