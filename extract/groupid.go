package extract

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/pwalkowski/richmark"
	"golang.org/x/crypto/sha3"
)

// groupIDDigestLen is the SHAKE digest length in bytes. The hex group ID
// is twice as long.
const groupIDDigestLen = 16

// GroupID derives an opaque grouping token from two identifiers. An
// 8-byte random salt is injected at a uniformly random position in the
// concatenated input before hashing with SHAKE-256, so the token is
// deliberately not reproducible across calls: it groups objects within
// one emitted graph and carries no content identity.
func GroupID(a, b string) (string, error) {
	salt := make([]byte, 8)
	if _, err := rand.Read(salt); err != nil {
		return "", richmark.Errorf(richmark.EINTERNAL, "group ID salt: %v", err)
	}

	joined := a + b
	pos, err := rand.Int(rand.Reader, big.NewInt(int64(len(joined)+1)))
	if err != nil {
		return "", richmark.Errorf(richmark.EINTERNAL, "group ID salt position: %v", err)
	}
	i := int(pos.Int64())
	salted := joined[:i] + hex.EncodeToString(salt) + joined[i:]

	digest := make([]byte, groupIDDigestLen)
	sha3.ShakeSum256(digest, []byte(salted))
	return hex.EncodeToString(digest), nil
}
