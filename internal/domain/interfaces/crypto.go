package interfaces

// Cipher seals and opens blobs with a 32-byte symmetric key.
// Open must fail on any modification of the sealed blob.
type Cipher interface {
	Seal(key []byte, plaintext []byte) ([]byte, error)
	Open(key []byte, blob []byte) ([]byte, error)
}
