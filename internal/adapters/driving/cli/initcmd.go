package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

var (
	initIssuerID   string
	initKeyID      string
	initKeyPath    string
	initIndividual bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Store App Store Connect API credentials in the system keychain",
	Long: `Stores the issuer ID, key ID, and private key of an App Store Connect
API key in the operating system keychain. The .p8 file itself is not
retained; only its key material is kept, with the PEM armor stripped.

Individual keys have no issuer ID. Pass --individual to store one.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove stored credentials from the system keychain",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	initCmd.Flags().StringVar(&initIssuerID, "issuer-id", "", "issuer ID of the API key (team keys only)")
	initCmd.Flags().StringVar(&initKeyID, "key-id", "", "key ID of the API key")
	initCmd.Flags().StringVar(&initKeyPath, "key", "", "path to the .p8 private key file")
	initCmd.Flags().BoolVar(&initIndividual, "individual", false, "the key is an individual key without an issuer ID")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(clearCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	reader := bufio.NewReader(cmd.InOrStdin())

	issuerID := strings.TrimSpace(initIssuerID)
	if issuerID == "" && !initIndividual {
		if !interactive {
			return fmt.Errorf("%w: --issuer-id is required (or pass --individual)", domain.ErrInvalidInput)
		}
		value, err := prompt(cmd, reader, "Issuer ID (leave empty for an individual key): ")
		if err != nil {
			return err
		}
		issuerID = value
	}
	if initIndividual && issuerID != "" {
		return fmt.Errorf("%w: --individual and --issuer-id are mutually exclusive", domain.ErrInvalidInput)
	}

	keyID := strings.TrimSpace(initKeyID)
	if keyID == "" {
		if !interactive {
			return fmt.Errorf("%w: --key-id is required", domain.ErrInvalidInput)
		}
		value, err := prompt(cmd, reader, "Key ID: ")
		if err != nil {
			return err
		}
		keyID = value
	}
	if keyID == "" {
		return fmt.Errorf("%w: key ID must not be empty", domain.ErrInvalidInput)
	}

	keyPath := strings.TrimSpace(initKeyPath)
	if keyPath == "" {
		if !interactive {
			return fmt.Errorf("%w: --key is required", domain.ErrInvalidInput)
		}
		value, err := prompt(cmd, reader, "Path to the .p8 private key file: ")
		if err != nil {
			return err
		}
		keyPath = value
	}

	pemData, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("reading private key: %w", err)
	}
	privateKey := domain.StripPEMArmor(string(pemData))
	if privateKey == "" {
		return fmt.Errorf("%w: %s contains no key material", domain.ErrInvalidInput, keyPath)
	}

	creds := domain.Credentials{
		IssuerID:   issuerID,
		KeyID:      keyID,
		PrivateKey: privateKey,
	}
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := credentialsService.Save(cmd.Context(), creds); err != nil {
		return fmt.Errorf("storing credentials: %w", err)
	}

	logger.Debug("stored credentials for key %s", keyID)
	if creds.IsIndividual() {
		cmd.Println("Stored individual API key in the system keychain.")
	} else {
		cmd.Println("Stored team API key in the system keychain.")
	}
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}

	removed, err := credentialsService.Clear(cmd.Context())
	if err != nil {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	if len(removed) == 0 {
		cmd.Println("No stored credentials found.")
		return nil
	}
	cmd.Printf("Removed %s from the system keychain.\n", strings.Join(removed, ", "))
	return nil
}

func prompt(cmd *cobra.Command, reader *bufio.Reader, label string) (string, error) {
	cmd.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
