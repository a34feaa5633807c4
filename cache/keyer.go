package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Keyer derives stable fingerprints from operation inputs. The
// fingerprint addresses the cache entry for a memoized result.
//
// Contract:
//   - Determinism: identical inputs produce identical fingerprints,
//     regardless of map iteration order.
//   - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	// Fingerprint derives the cache key for an operation and its input.
	Fingerprint(op string, input any) (string, error)
}

// FingerprintKeyer derives SHA-256 based fingerprints.
type FingerprintKeyer struct{}

var _ Keyer = FingerprintKeyer{}

// Fingerprint returns "op:<name>:<hash>", where hash is the first 16
// hex characters of SHA-256 over the canonical JSON of input.
func (FingerprintKeyer) Fingerprint(op string, input any) (string, error) {
	canonical, err := canonicalJSON(input)
	if err != nil {
		return "", fmt.Errorf("cache: canonicalize input: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return fmt.Sprintf("op:%s:%s", op, hex.EncodeToString(sum[:8])), nil
}

// canonicalJSON serializes v deterministically: map keys are emitted
// in sorted order at every nesting level.
func canonicalJSON(v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte("null"), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			vb, err := canonicalJSON(val[k])
			if err != nil {
				return nil, err
			}
			buf.Write(vb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case []any:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := canonicalJSON(item)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return json.Marshal(v)
	}
}
