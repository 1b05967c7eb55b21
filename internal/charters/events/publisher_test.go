package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client, mr
}

func TestRedisPublisher_PublishCreated(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, "charters:test")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewRedisPublisher(client, "charters:test")
	charter := &domain.ProjectCharter{ID: 7, NomeProjeto: "Portal"}
	require.NoError(t, pub.PublishCreated(ctx, charter))

	select {
	case msg := <-sub.Channel():
		var evt CharterEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &evt))
		assert.Equal(t, EventCharterCreated, evt.Type)
		require.NotNil(t, evt.Charter)
		assert.Equal(t, int64(7), evt.Charter.ID)
		assert.Equal(t, "Portal", evt.Charter.NomeProjeto)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for charter event")
	}
}

func TestRedisPublisher_ServerDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	pub := NewRedisPublisher(client, "charters:test")
	err := pub.PublishCreated(context.Background(), &domain.ProjectCharter{ID: 1})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishCreated(context.Background(), &domain.ProjectCharter{}))
}
