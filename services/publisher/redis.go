package publisher

import (
	"context"
	"encoding/base64"
	"math/rand"
	"strconv"

	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/pkg/errors"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher implements Publisher using Redis streams
type RedisPublisher struct {
	client          *redis.Client
	streamPrefix    string
	streamCount     int
	streamMaxLength int
	log             *logger.Logger
}

// NewRedisPublisher creates a new Redis publisher writing to streamCount
// streams named streamPrefix:0 .. streamPrefix:N-1
func NewRedisPublisher(addr string, db int, streamPrefix string, streamCount int, streamMaxLength int) *RedisPublisher {
	if streamCount < 1 {
		streamCount = 1
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	log := logger.ForPublisher()
	log.Debug().
		Str("addr", addr).
		Int("db", db).
		Str("streams", streamPrefix+":0.."+strconv.Itoa(streamCount-1)).
		Int("max_length", streamMaxLength).
		Msg("Redis publisher configured")

	return &RedisPublisher{
		client:          client,
		streamPrefix:    streamPrefix,
		streamCount:     streamCount,
		streamMaxLength: streamMaxLength,
		log:             log,
	}
}

// Ping checks the connection to Redis
func (p *RedisPublisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return errors.NewPublisher("redis", "ping", err)
	}
	return nil
}

// Publish publishes a message to a randomly chosen stream.
// The message is base64 encoded before publishing.
func (p *RedisPublisher) Publish(ctx context.Context, key string, message []byte) error {
	encodedMessage := base64.StdEncoding.EncodeToString(message)

	stream := p.streamPrefix + ":" + strconv.Itoa(rand.Intn(p.streamCount))

	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			key: encodedMessage,
		},
	}).Err()
	if err != nil {
		return errors.NewPublisher("redis", "xadd "+stream, err)
	}
	return nil
}

// TrimStreams trims all streams to the configured maximum length
func (p *RedisPublisher) TrimStreams(ctx context.Context) error {
	streams, err := p.client.Keys(ctx, p.streamPrefix+":*").Result()
	if err != nil {
		return errors.NewPublisher("redis", "list streams", err)
	}

	var trimmed int64
	for _, stream := range streams {
		n, err := p.client.XTrimMaxLen(ctx, stream, int64(p.streamMaxLength)).Result()
		if err != nil {
			return errors.NewPublisher("redis", "trim "+stream, err)
		}
		trimmed += n
	}

	p.log.Info().
		Int("streams", len(streams)).
		Int64("trimmed", trimmed).
		Msg("Trimmed streams")
	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
