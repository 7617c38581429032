package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

const (
	planKeyPrefix        = "snapshot:plan:"
	currentPlanKeyPrefix = "snapshot:current:"

	DefaultPlanTTL = 30 * time.Minute
)

type planRecord struct {
	ID            string        `json:"id"`
	SourceKey     string        `json:"source_key"`
	ExistingCount int           `json:"existing_count"`
	Entries       []entryRecord `json:"entries"`
	BuiltAt       time.Time     `json:"built_at"`
}

type entryRecord struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Index    int    `json:"index"`
}

type snapshotPlanRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotPlanRepository(client *redis.Client, ttl time.Duration) domain.SnapshotPlanRepository {
	if ttl <= 0 {
		ttl = DefaultPlanTTL
	}
	return &snapshotPlanRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *snapshotPlanRepository) SavePlan(ctx context.Context, plan *domain.SnapshotPlan) error {
	if plan == nil || plan.ID() == "" {
		return ErrInvalidPlanData
	}

	data, err := json.Marshal(toPlanRecord(plan))
	if err != nil {
		return ErrInvalidPlanData
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, planKeyPrefix+plan.ID(), data, r.ttl)
	pipe.Set(ctx, currentPlanKeyPrefix+plan.SourceKey(), plan.ID(), r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisConnection, err)
	}
	return nil
}

func (r *snapshotPlanRepository) GetPlan(ctx context.Context, planID string) (*domain.SnapshotPlan, error) {
	data, err := r.client.Get(ctx, planKeyPrefix+planID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRedisConnection, err)
	}

	var record planRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidPlanData
	}

	return record.toDomain(), nil
}

func (r *snapshotPlanRepository) GetCurrentPlanID(ctx context.Context, sourceKey string) (string, error) {
	id, err := r.client.Get(ctx, currentPlanKeyPrefix+sourceKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrPlanNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrRedisConnection, err)
	}
	return id, nil
}

// DeletePlan removes the plan and clears its source pointer if it still
// points at this plan.
func (r *snapshotPlanRepository) DeletePlan(ctx context.Context, planID string) error {
	plan, err := r.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return nil
		}
		return err
	}

	currentKey := currentPlanKeyPrefix + plan.SourceKey()
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, currentKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, planKeyPrefix+planID)
			if current == planID {
				pipe.Del(ctx, currentKey)
			}
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, txf, currentKey); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisConnection, err)
	}
	return nil
}

func toPlanRecord(plan *domain.SnapshotPlan) planRecord {
	entries := plan.Entries()
	records := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, entryRecord{
			Position: e.Position,
			Name:     e.Name,
			Index:    e.Index,
		})
	}

	return planRecord{
		ID:            plan.ID(),
		SourceKey:     plan.SourceKey(),
		ExistingCount: plan.ExistingCount(),
		Entries:       records,
		BuiltAt:       plan.BuiltAt(),
	}
}

func (r planRecord) toDomain() *domain.SnapshotPlan {
	entries := make([]domain.SnapshotEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, domain.SnapshotEntry{
			Position: e.Position,
			Name:     e.Name,
			Index:    e.Index,
		})
	}
	return domain.NewSnapshotPlan(r.ID, r.SourceKey, r.ExistingCount, entries, r.BuiltAt)
}
