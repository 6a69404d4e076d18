// Package cache provides the versioned read cache in front of the dashboard,
// asset and base listings.
//
// Every cached value lives under a key that embeds the current version of
// its topic. Writes bump the versions of the topics they affect, so readers
// never see an entry computed before the write; superseded entries simply
// age out by TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"armory/internal/logger"
)

// ErrMiss is returned by Store.Get when the key holds no live value.
var ErrMiss = errors.New("cache miss")

// Topic groups cached reads that are invalidated together.
type Topic string

const (
	TopicDashboard Topic = "dashboard"
	TopicAssets    Topic = "assets"
	TopicBases     Topic = "bases"
)

// Mutation names a write that affects cached reads.
type Mutation string

const (
	MutationAssetPurchase Mutation = "asset.purchase"
	MutationAssetCreate   Mutation = "asset.create"
	MutationAssetTransfer Mutation = "asset.transfer"
	MutationAssetAssign   Mutation = "asset.assign"
	MutationAssetReturn   Mutation = "asset.return"
	MutationAssetExpend   Mutation = "asset.expend"
	MutationAssetUpdate   Mutation = "asset.update"
	MutationBaseCreate    Mutation = "base.create"
	MutationBaseUpdate    Mutation = "base.update"
)

// ledgerTopics are touched by every write that appends to the ledger.
var ledgerTopics = []Topic{TopicAssets, TopicDashboard}

var affected = map[Mutation][]Topic{
	MutationAssetPurchase: ledgerTopics,
	MutationAssetTransfer: ledgerTopics,
	MutationAssetAssign:   ledgerTopics,
	MutationAssetReturn:   ledgerTopics,
	MutationAssetExpend:   ledgerTopics,
	MutationAssetCreate:   {TopicAssets, TopicDashboard},
	MutationAssetUpdate:   {TopicAssets, TopicDashboard},
	MutationBaseCreate:    {TopicBases},
	// Asset listings embed their base.
	MutationBaseUpdate: {TopicBases, TopicAssets},
}

// Affected returns the topics a mutation invalidates.
func Affected(m Mutation) []Topic {
	return affected[m]
}

// Store is a TTL key/value cache with per-topic version counters.
type Store interface {
	// Get returns ErrMiss when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Version returns the current version of topic, zero if never bumped.
	Version(ctx context.Context, topic Topic) (int64, error)
	Bump(ctx context.Context, topics ...Topic) error
	Close() error
}

// Key builds the storage key for a filter under a topic version.
func Key(topic Topic, version int64, filter string) string {
	return fmt.Sprintf("armory:%s:v%d:%s", topic, version, filter)
}

// Fetch returns the cached value for (topic, filter) or runs load and caches
// its result. Cache failures are logged and never fail the read. A nil store
// disables caching.
func Fetch[T any](ctx context.Context, store Store, ttl time.Duration, topic Topic, filter string, load func() (T, error)) (T, error) {
	if store == nil {
		return load()
	}
	log := logger.Named("cache")

	version, err := store.Version(ctx, topic)
	if err != nil {
		log.Warnw("cache version lookup failed", "topic", topic, "error", err)
		return load()
	}
	key := Key(topic, version, filter)

	raw, err := store.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		jsonErr := json.Unmarshal(raw, &cached)
		if jsonErr == nil {
			return cached, nil
		}
		log.Warnw("discarding undecodable cache entry", "key", key, "error", jsonErr)
	case !errors.Is(err, ErrMiss):
		log.Warnw("cache read failed", "key", key, "error", err)
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		log.Warnw("cache encode failed", "key", key, "error", err)
		return value, nil
	}
	if err := store.Set(ctx, key, encoded, ttl); err != nil {
		log.Warnw("cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// Invalidate bumps every topic the mutation affects. Failures are logged;
// the write that triggered them has already committed.
func Invalidate(ctx context.Context, store Store, m Mutation) {
	if store == nil {
		return
	}
	topics := Affected(m)
	if len(topics) == 0 {
		return
	}
	if err := store.Bump(ctx, topics...); err != nil {
		logger.Named("cache").Errorw("cache invalidation failed", "mutation", m, "error", err)
	}
}
