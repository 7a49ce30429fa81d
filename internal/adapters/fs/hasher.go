package fs

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints resolved configurations.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint computes the XXHash of the configuration's JSON encoding.
// encoding/json sorts map keys, so equal configurations hash equally.
func (h *Hasher) Fingerprint(cfg *domain.ResolvedBuildConfig) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrFingerprintFailed, err.Error()), "config", cfg.Name)
	}

	hasher := xxhash.New()
	_, _ = hasher.Write(data)

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
