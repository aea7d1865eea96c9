package event

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"gatherly/models"
	"gatherly/recurrence"

	"go.uber.org/zap"
)

const previewTTL = 10 * time.Minute

// PreviewRecurrence expands a draft rule so the operator form can show the
// resulting dates before anything is saved. Expansion is deterministic, so
// repeated previews of the same draft are served from the cache.
func (s *DefaultEventService) PreviewRecurrence(ctx context.Context, rule models.RecurrenceRule) ([]time.Time, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	key := previewKey(rule)
	if s.PreviewCache != nil {
		if data, err := s.PreviewCache.Get(ctx, key).Result(); err == nil {
			var cached []time.Time
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	instants, err := recurrence.Generate(rule)
	if err != nil {
		return nil, NewEventError(err.Error())
	}

	if s.PreviewCache != nil {
		if data, err := json.Marshal(instants); err == nil {
			if err := s.PreviewCache.Set(ctx, key, data, previewTTL).Err(); err != nil {
				zap.L().Warn("Failed to cache recurrence preview", zap.Error(err))
			}
		}
	}
	return instants, nil
}

func previewKey(rule models.RecurrenceRule) string {
	data, _ := json.Marshal(rule)
	sum := sha256.Sum256(data)
	return "recurrence:preview:" + hex.EncodeToString(sum[:])
}
