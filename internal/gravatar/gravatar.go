package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar"

// URL derives a deterministic avatar URL from an email address: 200px,
// PG rated, with the "mystery man" default for addresses without an image.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%x?s=200&r=pg&d=mm", baseURL, hash)
}
