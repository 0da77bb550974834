package config

import (
	"context"
	"log"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ConnectSheets builds the Google Sheets API client from the service account
// credentials file. The credentials file is required: without it no row can
// ever be written, so startup fails fast.
func ConnectSheets(ctx context.Context) *sheets.Service {
	credFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credFile == "" {
		// Try the well-known variable used by the Google client libraries
		credFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
	if credFile == "" {
		log.Fatal("GOOGLE_CREDENTIALS_FILE environment variable is required")
	}

	log.Printf("Loading Google service account credentials from %s", credFile)

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		log.Fatalf("Error initializing Google Sheets client: %v", err)
	}

	log.Println("Google Sheets client ready")
	return svc
}
