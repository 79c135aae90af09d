package secrets

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	algorithmID   = "aes-256-cbc"
	keyLength     = 32
	saltLength    = 16
	formatVersion = "2.0"

	// Reduced iteration count, kept for compatibility with pre-versioning
	// ciphertext produced by the original deployment.
	pbkdf2Iterations = 10000

	fieldContext = "field-encryption"
)

// ErrDecryptionFailed covers corrupted ciphertext, a wrong key, and version
// mismatches. Callers surface it as a failed field read, never a crash.
var ErrDecryptionFailed = errors.New("decryption failed: corrupted ciphertext or wrong key")

// EncryptedPayload is one encrypted field or document. A missing Version
// marks legacy ciphertext that must go through the pre-versioning key path.
type EncryptedPayload struct {
	Ciphertext string `json:"encryptedData"`
	IV         string `json:"iv"`
	Salt       string `json:"salt,omitempty"`
	Algorithm  string `json:"algorithm"`
	Version    string `json:"version,omitempty"`
}

// FieldCipher encrypts individual sensitive values and whole documents with
// a process-wide base key. All operations are pure functions of their inputs
// plus the key material, so it is safe for unlimited concurrency.
type FieldCipher struct {
	baseKey []byte
}

// NewFieldCipher parses the hex-encoded base key. A missing or malformed key
// is a configuration error; the process should not serve traffic without it.
func NewFieldCipher(hexKey string) (*FieldCipher, error) {
	if hexKey == "" {
		return nil, errors.New("encryption key is not configured (set ENCRYPTION_KEY)")
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not valid hex: %w", err)
	}
	if len(key) != keyLength {
		return nil, fmt.Errorf("encryption key must be %d bytes (%d hex characters), got %d bytes",
			keyLength, keyLength*2, len(key))
	}
	return &FieldCipher{baseKey: key}, nil
}

// EncryptField encrypts a short sensitive string under the field-context
// derived key and stamps the current format version.
func (c *FieldCipher) EncryptField(plaintext string) (EncryptedPayload, error) {
	ciphertext, iv, err := encrypt(c.contextKey(fieldContext), []byte(plaintext))
	if err != nil {
		return EncryptedPayload{}, err
	}
	return EncryptedPayload{
		Ciphertext: ciphertext,
		IV:         iv,
		Algorithm:  algorithmID,
		Version:    formatVersion,
	}, nil
}

// DecryptField dispatches on version presence: versioned payloads use the
// context-derived key, legacy payloads the salted or raw base key.
func (c *FieldCipher) DecryptField(payload EncryptedPayload) (string, error) {
	key, err := c.keyFor(payload, fieldContext)
	if err != nil {
		return "", err
	}
	plaintext, err := decrypt(key, payload.Ciphertext, payload.IV)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptDocument encrypts a whole binary blob. Documents are long-lived, so
// they always take the salted key path.
func (c *FieldCipher) EncryptDocument(data []byte) (EncryptedPayload, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return EncryptedPayload{}, fmt.Errorf("failed to generate salt: %w", err)
	}
	ciphertext, iv, err := encrypt(c.saltedKey(salt), data)
	if err != nil {
		return EncryptedPayload{}, err
	}
	return EncryptedPayload{
		Ciphertext: ciphertext,
		IV:         iv,
		Salt:       hex.EncodeToString(salt),
		Algorithm:  algorithmID,
		Version:    formatVersion,
	}, nil
}

// DecryptDocument reverses EncryptDocument.
func (c *FieldCipher) DecryptDocument(payload EncryptedPayload) ([]byte, error) {
	if payload.Salt == "" {
		return nil, ErrDecryptionFailed
	}
	salt, err := hex.DecodeString(payload.Salt)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return decrypt(c.saltedKey(salt), payload.Ciphertext, payload.IV)
}

// SelfTest round-trips a fixed string and a fixed byte blob. Run it once at
// startup so a bad key surfaces immediately instead of as silent data
// corruption later.
func (c *FieldCipher) SelfTest() error {
	const probe = "mission-scanner-encryption-check"

	field, err := c.EncryptField(probe)
	if err != nil {
		return fmt.Errorf("encryption self-test failed: %w", err)
	}
	got, err := c.DecryptField(field)
	if err != nil {
		return fmt.Errorf("encryption self-test failed: %w", err)
	}
	if got != probe {
		return errors.New("encryption self-test failed: field round trip mismatch")
	}

	doc, err := c.EncryptDocument([]byte(probe))
	if err != nil {
		return fmt.Errorf("encryption self-test failed: %w", err)
	}
	raw, err := c.DecryptDocument(doc)
	if err != nil {
		return fmt.Errorf("encryption self-test failed: %w", err)
	}
	if !bytes.Equal(raw, []byte(probe)) {
		return errors.New("encryption self-test failed: document round trip mismatch")
	}
	return nil
}

func (c *FieldCipher) keyFor(payload EncryptedPayload, context string) ([]byte, error) {
	if payload.Version != "" {
		return c.contextKey(context), nil
	}
	// Legacy path: data encrypted before versioning existed.
	if payload.Salt != "" {
		salt, err := hex.DecodeString(payload.Salt)
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		return c.saltedKey(salt), nil
	}
	return c.baseKey, nil
}

// contextKey folds a SHA-256 of the context string into the base key. This
// is a latency trade-off inherited from the original deployment, not a
// vetted KDF; the versioned/legacy split is the contract to preserve if the
// derivation is ever upgraded.
func (c *FieldCipher) contextKey(context string) []byte {
	contextHash := sha256.Sum256([]byte(context))
	key := make([]byte, keyLength)
	for i := 0; i < keyLength; i++ {
		key[i] = c.baseKey[i] ^ contextHash[i%len(contextHash)]
	}
	return key
}

func (c *FieldCipher) saltedKey(salt []byte) []byte {
	return pbkdf2.Key(c.baseKey, salt, pbkdf2Iterations, keyLength, sha256.New)
}

func encrypt(key, plaintext []byte) (ciphertextHex, ivHex string, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", "", fmt.Errorf("failed to generate IV: %w", err)
	}

	padded := pkcs7Pad(plaintext)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return hex.EncodeToString(out), hex.EncodeToString(iv), nil
}

func decrypt(key []byte, ciphertextHex, ivHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return nil, ErrDecryptionFailed
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)

	return pkcs7Unpad(out)
}

func pkcs7Pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(append([]byte(nil), b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrDecryptionFailed
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, ErrDecryptionFailed
	}
	for _, pad := range b[len(b)-n:] {
		if int(pad) != n {
			return nil, ErrDecryptionFailed
		}
	}
	return b[:len(b)-n], nil
}
