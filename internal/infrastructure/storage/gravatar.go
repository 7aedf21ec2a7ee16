package storage

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL builds the Gravatar image URL for an email address. Used as a
// best-effort default avatar at registration time.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon", hash)
}
