package crypto

import "crypto/sha256"

// KeyBytes is the size of a derived cache key.
const KeyBytes = sha256.Size

// DeriveKey salts the private key with the device and account identifiers and
// hashes the UTF-8 concatenation privateKey||deviceID||accountID with SHA-256.
func DeriveKey(privateKey, deviceID, accountID string) [KeyBytes]byte {
	buf := make([]byte, 0, len(privateKey)+len(deviceID)+len(accountID))
	buf = append(buf, privateKey...)
	buf = append(buf, deviceID...)
	buf = append(buf, accountID...)
	return sha256.Sum256(buf)
}
