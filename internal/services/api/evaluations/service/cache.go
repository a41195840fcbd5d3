package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"

	"interviewcoach/internal/platform/logger"
)

const cacheNamespace = "eval:"

// cacheKey hashes the kind and the inputs byte for byte; parts are separated by the unit separator.
// Surrounding whitespace is significant: grammar and pause detection both see it
func cacheKey(kind string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	for _, p := range parts {
		h.Write([]byte{0x1f})
		h.Write([]byte(p))
	}
	return cacheNamespace + kind + ":" + hex.EncodeToString(h.Sum(nil))
}

// revisionPart keys role-dependent results to the directory contents they were scored against
func (s *Svc) revisionPart() string {
	return "r" + strconv.FormatUint(s.eng.DirectoryRevision(), 10)
}

func floatPart(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

// cachedEval returns a cached result for key or computes and stores one.
// Cache errors are logged and fall through to eval
func cachedEval[T any](ctx context.Context, s *Svc, key string, eval func() (T, error)) (T, bool, error) {
	on := s.cache != nil && s.cfg.CacheTTL > 0
	if on {
		b, hit, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			logger.C(ctx).Warn().Err(err).Msg("evaluations: cache get failed")
		case hit:
			var v T
			if err := json.Unmarshal(b, &v); err == nil {
				return v, true, nil
			}
			logger.C(ctx).Warn().Str("key", key).Msg("evaluations: dropping undecodable cache entry")
		}
	}

	v, err := eval()
	if err != nil || !on {
		return v, false, err
	}
	if b, err := json.Marshal(v); err == nil {
		if err := s.cache.Set(ctx, key, b, s.cfg.CacheTTL); err != nil {
			logger.C(ctx).Warn().Err(err).Msg("evaluations: cache set failed")
		}
	}
	return v, false, nil
}
