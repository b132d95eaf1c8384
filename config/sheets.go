package config

import (
	"context"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var SheetsService *sheets.Service

func ConnectSheets() {
	ctx := context.Background()

	var opts []option.ClientOption
	if AppConfig.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(AppConfig.CredentialsJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(AppConfig.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	var err error
	SheetsService, err = sheets.NewService(ctx, opts...)
	if err != nil {
		log.Fatalf("Unable to create Google Sheets client: %v\n", err)
	}

	log.Println("Google Sheets client ready")
}
