// Package vault persists purchase state as an encrypted blob.
//
// Save encodes the state with codec, seals it with a key derived from the
// private key and the device/account salts, and writes the blob to storage.
// Load reverses the steps. The key is derived per call and wiped afterwards.
package vault
