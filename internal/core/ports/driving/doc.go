// Package driving defines the interfaces through which the CLI calls
// INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the cobra command adapter consumes them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
