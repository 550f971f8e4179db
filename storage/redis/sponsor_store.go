package redisstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/open-rails/sponsorkit/sponsor"
)

// SponsorStore keeps all records in a single Redis hash, one field per
// account id. HSET/HDEL on one field are atomic, which gives the per-account
// last-write-wins the facade relies on; HGETALL serves enumeration.
type SponsorStore struct {
	rdb *redis.Client
	key string
}

// NewSponsorStore creates a Redis-backed sponsor store under the given hash
// key (default "sponsor:records").
func NewSponsorStore(rdb *redis.Client, key string) *SponsorStore {
	if key == "" {
		key = "sponsor:records"
	}
	return &SponsorStore{rdb: rdb, key: key}
}

func (s *SponsorStore) Upsert(ctx context.Context, rec sponsor.SponsorRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, s.key, rec.AccountID.String(), b).Err()
}

func (s *SponsorStore) Delete(ctx context.Context, accountID uuid.UUID) error {
	return s.rdb.HDel(ctx, s.key, accountID.String()).Err()
}

func (s *SponsorStore) Get(ctx context.Context, accountID uuid.UUID) (sponsor.SponsorRecord, bool, error) {
	val, err := s.rdb.HGet(ctx, s.key, accountID.String()).Bytes()
	if err == redis.Nil {
		return sponsor.SponsorRecord{}, false, nil
	}
	if err != nil {
		return sponsor.SponsorRecord{}, false, err
	}
	var rec sponsor.SponsorRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return sponsor.SponsorRecord{}, false, err
	}
	return rec, true, nil
}

func (s *SponsorStore) List(ctx context.Context) ([]sponsor.SponsorRecord, error) {
	vals, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, err
	}
	out := make([]sponsor.SponsorRecord, 0, len(vals))
	for _, v := range vals {
		var rec sponsor.SponsorRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
