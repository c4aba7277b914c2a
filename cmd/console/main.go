package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"os/user"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberhollow/revenant/pkg/chat"
)

type ConsoleConfig struct {
	APIBaseURL string
	UserID     string
	Timeout    time.Duration
}

func main() {
	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		UserID:     getEnv("REVENANT_USER", defaultUserID()),
		Timeout:    90 * time.Second,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	if !testConnection(client, cfg.APIBaseURL) {
		fmt.Fprintf(os.Stderr, "Could not connect to API at %s. Please ensure the API is running.\n", cfg.APIBaseURL)
		os.Exit(1)
	}

	view, err := lookupCharacter(client, cfg.APIBaseURL, cfg.UserID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to look up character: %v\n", err)
		os.Exit(1)
	}

	var opening string
	if view == nil {
		view, opening, err = createFlow(client, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create character: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(NewConsoleUI(cfg, client, view, opening),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// createFlow walks a new player through character creation on plain
// stdin before the TUI starts.
func createFlow(client *http.Client, cfg *ConsoleConfig) (*CharacterView, string, error) {
	classes, err := listClasses(client, cfg.APIBaseURL)
	if err != nil || len(classes) == 0 {
		return nil, "", fmt.Errorf("listing classes: %w", err)
	}

	fmt.Println("You died betrayed. Time to come back.")
	fmt.Println("\nChoose your class:")
	for i, c := range classes {
		fmt.Printf("  %2d - %s (%s)\n", i+1, c.Name, c.Description)
	}
	fmt.Print("\nSelect a class by number: ")

	var choice int
	if _, err := fmt.Scanf("%d\n", &choice); err != nil || choice < 1 || choice > len(classes) {
		return nil, "", fmt.Errorf("invalid selection")
	}
	class := classes[choice-1]

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Name your revenant: ")
	name, err := reader.ReadString('\n')
	if err != nil {
		return nil, "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", fmt.Errorf("name cannot be empty")
	}

	fmt.Print("Backstory (one line, optional): ")
	backstory, _ := reader.ReadString('\n')

	fmt.Println("\nThe narrator is shaping your return...")
	created, err := createCharacter(client, cfg.APIBaseURL, chat.CreateCharacterRequest{
		UserID:    cfg.UserID,
		Name:      name,
		ClassID:   class.ID,
		Backstory: strings.TrimSpace(backstory),
	})
	if err != nil {
		return nil, "", err
	}

	return &CharacterView{Snapshot: created.Snapshot, Statuses: created.Statuses}, created.Narrative, nil
}

func defaultUserID() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
