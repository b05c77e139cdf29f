// Package app wires application dependencies for the CLI.
//
// It builds the storage backend, cipher, encrypted persister and purchase
// data store from config.Config, exposing them via the Wire struct for
// commands to use.
package app
