package redisLinkStore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultPrefix = "invitecrawler:"

type client interface {
	redis.Scripter
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Close() error
}

// insertScript marks the link seen and appends it in one step, so a marker
// never exists without its list entry.
var insertScript = redis.NewScript(`
if redis.call('SETNX', KEYS[1], ARGV[1]) == 1 then
	redis.call('RPUSH', KEYS[2], ARGV[2])
	return 1
end
return 0
`)

// Store keeps discovered links in a Redis list. A per-link SETNX marker
// decides which caller appends, so concurrent writers (in this process or
// others sharing the server) never append the same link twice. Marker and
// append run as one server-side script.
type Store struct {
	client client
	prefix string
}

// New connects to the Redis server at addr.
func New(addr, prefix string) *Store {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr}), prefix)
}

// NewWithClient builds a store around an existing client (tests).
func NewWithClient(c client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: c, prefix: prefix}
}

func (s *Store) seenKey(link string) string {
	return s.prefix + "seen:" + link
}

func (s *Store) listKey() string {
	return s.prefix + "links"
}

func (s *Store) InsertIfAbsent(ctx context.Context, link string) (bool, error) {
	keys := []string{s.seenKey(link), s.listKey()}
	added, err := insertScript.Run(ctx, s.client, keys, time.Now().UTC().Format(time.RFC3339), link).Int64()
	if err != nil {
		return false, fmt.Errorf("recording %s: %w", link, err)
	}
	return added == 1, nil
}

func (s *Store) Links(ctx context.Context) ([]string, error) {
	return s.client.LRange(ctx, s.listKey(), 0, -1).Result()
}

func (s *Store) Close() error {
	return s.client.Close()
}
