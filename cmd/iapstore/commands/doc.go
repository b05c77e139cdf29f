// Package commands defines the iapstore CLI and wires dependencies for subcommands.
//
// Commands
//
//   - offset get|set    Read or replace the purchase update offset
//   - entitle ...       Add, remove, check, list or clear entitled SKUs
//   - pending ...       Add, list or remove pending purchase transactions
//   - inspect           Print the decrypted cache document
//   - fingerprint       Print the derived cache key fingerprint
//   - reset             Delete the persisted cache
//
// # Implementation
//
// The root command resolves configuration (YAML file, .env, IAPSTORE_*
// variables, then flags) and builds the app wiring before any subcommand
// runs, so handlers share one loaded data store.
package commands
