package drafts

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNewRedisKVRequiresAddr(t *testing.T) {
	if _, err := NewRedisKV(RedisOptions{}); err == nil {
		t.Fatalf("expected error for empty address")
	}
}

func TestRedisKVKeyPrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	kv := newRedisKV(client, "", time.Hour)
	if got := kv.key(KeyTrip); got != "javaterra:drafts:bookingData" {
		t.Fatalf("key = %q", got)
	}
	kv = newRedisKV(client, "javaterra:draft:sess-1", time.Hour)
	if got := kv.key(KeyLastBookingID); got != "javaterra:draft:sess-1:lastBookingID" {
		t.Fatalf("key = %q", got)
	}
}

// An unreachable server is an error, not an absent draft.
func TestRedisKVUnreachableIsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	kv := newRedisKV(client, "test", time.Hour)
	defer kv.Close()

	if _, ok, err := kv.Get(KeyTrip); err == nil || ok {
		t.Fatalf("Get = ok=%v err=%v, want error", ok, err)
	}
	if err := kv.Set(KeyTrip, []byte(`{}`)); err == nil {
		t.Fatalf("Set should fail")
	}
	if _, _, err := NewStore(kv).Trip(); err == nil {
		t.Fatalf("store should surface the backend error")
	}
}
