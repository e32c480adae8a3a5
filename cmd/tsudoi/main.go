package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tsudoi-club/tsudoi/internal/api"
	"github.com/tsudoi-club/tsudoi/internal/cache"
	"github.com/tsudoi-club/tsudoi/internal/config"
	"github.com/tsudoi-club/tsudoi/internal/model"
	"github.com/tsudoi-club/tsudoi/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "login":
			if len(os.Args) < 4 {
				fmt.Fprintf(os.Stderr, "Usage: tsudoi login <email> <password>\n")
				os.Exit(1)
			}
			runLogin(os.Args[2], os.Args[3])
			return
		case "logout":
			runLogout()
			return
		case "whoami":
			runWhoami()
			return
		case "clear-cache":
			runClearCache()
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `tsudoi - study club client

Usage:
  tsudoi                        Open interactive TUI
  tsudoi login <email> <pass>   Log in and store the session
  tsudoi logout                 Forget the stored session
  tsudoi whoami                 Show who the stored session belongs to
  tsudoi clear-cache            Drop the local page cache
  tsudoi help                   Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    h/l         Prev/next page
    g/G         First/last page
    1-4         Switch screen (board, activities, japanese, quiz)
    Tab         Next screen

  Find:
    /           Search owner and title
    s           Fuzzy jump by title
    r           Refresh

  Editing:
    a           Add post/question
    e           Edit (own posts only)
    d           Delete (own posts only)
    Y           Copy media link to clipboard

  Quiz:
    n           Draw a random question
    Enter       Check answer

  Other:
    ?           Show help overlay
    q           Quit

Data Storage:
  ~/.config/tsudoi/config.json
  ~/.config/tsudoi/session.json
  ~/.config/tsudoi/cache.db
`
	fmt.Print(help)
}

// runTUI runs the full interactive TUI with the stored session.
func runTUI() {
	cfg := loadConfig()
	session := loadSession()

	client := api.NewClient(cfg.ServerURL)
	client.SetToken(session.Token)

	var pageCache *cache.Cache
	if cfg.CacheEnabled {
		cachePath, err := config.DefaultCachePath()
		if err == nil {
			// A broken cache only costs the first paint, so keep going.
			pageCache, _ = cache.Open(cachePath)
		}
		if pageCache != nil {
			defer pageCache.Close()
		}
	}

	if os.Getenv("TSUDOI_DEBUG") != "" {
		f, err := tea.LogToFile("tsudoi-debug.log", "debug")
		if err == nil {
			defer f.Close()
		}
	}

	app := tui.New(client, pageCache, cfg, session)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runLogin authenticates against the server and stores the session.
func runLogin(email, password string) {
	cfg := loadConfig()

	client := api.NewClient(cfg.ServerURL)
	session, err := client.Login(context.Background(), email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		os.Exit(1)
	}

	sessionPath, err := config.DefaultSessionPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting session path: %v\n", err)
		os.Exit(1)
	}
	if err := config.SaveSession(sessionPath, session); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Logged in as %s (%s)\n", session.Nickname, session.Email)
}

// runLogout forgets the stored session.
func runLogout() {
	sessionPath, err := config.DefaultSessionPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting session path: %v\n", err)
		os.Exit(1)
	}
	if err := config.ClearSession(sessionPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing session: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logged out")
}

// runWhoami asks the server who the stored token belongs to.
func runWhoami() {
	cfg := loadConfig()
	session := loadSession()

	client := api.NewClient(cfg.ServerURL)
	client.SetToken(session.Token)

	me, err := client.Me(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s (%s)\n", me.Nickname, me.Email)
}

// runClearCache drops every cached page.
func runClearCache() {
	cachePath, err := config.DefaultCachePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting cache path: %v\n", err)
		os.Exit(1)
	}
	if err := os.Remove(cachePath); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error removing cache: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Cache cleared")
}

func loadConfig() *config.Config {
	configPath, err := config.DefaultFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func loadSession() model.Session {
	sessionPath, err := config.DefaultSessionPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting session path: %v\n", err)
		os.Exit(1)
	}
	session, err := config.LoadSession(sessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return session
}
