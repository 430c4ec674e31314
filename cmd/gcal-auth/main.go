// Command gcal-auth authorizes Google Calendar access once and writes the
// OAuth token the API reads when google_calendar.credentials_path points at
// desktop-app credentials.
//
// Usage:
//
//	go run ./cmd/gcal-auth [credentials.json] [token.json]
//
// Paths default to google_calendar.credentials_path and
// google_calendar.token_path from config.yaml.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"todo-list-service/config"
	"todo-list-service/pkg/gcalendar"
	"todo-list-service/pkg/log"
)

func main() {
	ctx := context.Background()
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         log.ModeDevelopment,
		Encoding:     log.EncodingConsole,
		ColorEnabled: true,
	})

	credsPath, tokenPath := "google-credentials.json", gcalendar.DefaultTokenPath
	if cfg, err := config.Load(); err == nil {
		if cfg.GoogleCalendar.CredentialsPath != "" {
			credsPath = cfg.GoogleCalendar.CredentialsPath
		}
		if cfg.GoogleCalendar.TokenPath != "" {
			tokenPath = cfg.GoogleCalendar.TokenPath
		}
	}
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}

	oauthConfig, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials: %v (%q must be an OAuth desktop app credentials file)", err, credsPath)
	}

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: open this URL in a browser and sign in to Google:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		logger.Fatalf(ctx, "Failed to write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s. Restart the API to enable due-date mirroring.\n", tokenPath)
}
