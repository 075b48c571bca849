// Package customvocab persists user-added vocabulary words in a Redis
// set so they survive restarts even though the trained model does not.
package customvocab

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "speller:custom_vocab"

// Store wraps a Redis client holding the custom vocabulary.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store on the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: defaultKey}
}

// Add inserts a word into the custom vocabulary.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes a word from the custom vocabulary.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// All returns every stored word, in no particular order.
func (s *Store) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}
