// Package crypto exposes the minimal primitives used by iapstore.
//
// Contents
//
//   - Salted cache key derivation (DeriveKey)
//   - AEAD ciphers over a 32-byte key (AESGCM, ChaCha20Poly1305)
//   - Short key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Keys are derived on every seal/open and never persisted. Callers should
// treat derived keys as sensitive and wipe them with memzero.Zero after use.
package crypto
