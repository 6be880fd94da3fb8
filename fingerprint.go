package lexicon

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Fingerprint returns a deterministic content hash of the lexicon.
// Two lexicons with the same entries in the same order share a fingerprint.
func (l *Lexicon) Fingerprint() string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, e := range l.all() {
		// Encoding a pair of strings cannot fail.
		_ = enc.Encode([2]string{e.Term, e.Definition})
	}
	return fmt.Sprintf("%x", h.Sum(nil)[:8])
}
