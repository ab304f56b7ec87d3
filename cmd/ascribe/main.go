package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/loftberg-tools/ascribe-cli/internal/adapters/driven/config/file"
	"github.com/loftberg-tools/ascribe-cli/internal/adapters/driven/connect"
	"github.com/loftberg-tools/ascribe-cli/internal/adapters/driven/keychain"
	"github.com/loftberg-tools/ascribe-cli/internal/adapters/driving/cli"
	"github.com/loftberg-tools/ascribe-cli/internal/core/services"
)

func main() {
	// A .env file is optional; local overrides only.
	_ = godotenv.Load()

	configStore, err := file.NewConfigStore(cli.EarlyConfigDir(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		os.Exit(1)
	}

	keychainService := configStore.GetString(file.KeyKeychainService)
	if keychainService == "" {
		keychainService = keychain.DefaultService
	}
	secretStore := keychain.NewSecretStore(keychainService)
	credentialsService := services.NewCredentialsService(secretStore)

	var clientOpts []connect.Option
	if baseURL := configStore.GetString(file.KeyAPIBaseURL); baseURL != "" {
		clientOpts = append(clientOpts, connect.WithBaseURL(baseURL))
	}
	client := connect.NewClient(credentialsService, clientOpts...)

	cli.SetServices(cli.Services{
		AppResolver:  services.NewAppResolverService(client),
		Versions:     services.NewVersionService(client),
		ReleaseNotes: services.NewReleaseNotesService(client),
		Builds:       services.NewBuildService(client),
		Submissions:  services.NewSubmissionService(client),
		Credentials:  credentialsService,
		Config:       configStore,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
