// Package avatar derives gravatar URLs from email addresses. The derivation
// is pure: no network call happens here or anywhere downstream.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	size     = "200"
	rating   = "pg"
	fallback = "mm"
)

// URL returns the protocol-relative gravatar URL for an email address.
// Gravatar hashes the trimmed, lowercased address.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	return fmt.Sprintf("//www.gravatar.com/avatar/%s?s=%s&r=%s&d=%s",
		hex.EncodeToString(sum[:]), size, rating, fallback)
}
