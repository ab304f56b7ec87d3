// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConnectClient: Executes authenticated App Store Connect API calls
//   - SecretStore: Persists API key material (OS keychain in production)
//   - CredentialsSource: Supplies loaded credentials to the remote adapter
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
