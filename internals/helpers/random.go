package helper

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strings"
)

const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateBatchCode menghasilkan kode join 4 hex char uppercase (2 byte acak).
func GenerateBatchCode() string {
	b := make([]byte, 2)
	_, _ = rand.Read(b)
	return strings.ToUpper(hex.EncodeToString(b))
}

// GenerateRandomPassword untuk akun admin/teacher yang dibuatkan (dikirim via email).
func GenerateRandomPassword(length int) string {
	if length <= 0 {
		length = 8
	}
	var sb strings.Builder
	max := big.NewInt(int64(len(passwordCharset)))
	for i := 0; i < length; i++ {
		n, _ := rand.Int(rand.Reader, max)
		sb.WriteByte(passwordCharset[n.Int64()])
	}
	return sb.String()
}

// GenerateToken membuat token acak 32 byte (hex) plus hash sha256-nya.
// Plaintext dikirim ke user, hash yang disimpan di DB.
func GenerateToken() (plain, hashed string) {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	plain = hex.EncodeToString(b)
	return plain, HashToken(plain)
}

func HashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
