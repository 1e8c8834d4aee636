package payment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisNotifier_PublishSubscribe(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	n := NewRedisNotifier(client)
	ctx := context.Background()

	sub := n.Subscribe(ctx, "TEMPLATE_1_1_aaaaaa")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	want := StatusEvent{OrderID: "TEMPLATE_1_1_aaaaaa", Status: "PAID", InvitationSlug: "lan-nam"}
	require.NoError(t, n.Publish(ctx, want))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "payment:TEMPLATE_1_1_aaaaaa", msg.Channel)
		var got StatusEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestRedisNotifier_OtherOrdersAreNotDelivered(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	n := NewRedisNotifier(client)
	ctx := context.Background()

	sub := n.Subscribe(ctx, "A")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, n.Publish(ctx, StatusEvent{OrderID: "B", Status: "PAID"}))

	select {
	case msg := <-sub.Channel():
		t.Fatalf("unexpected message %s", msg.Payload)
	case <-time.After(200 * time.Millisecond):
	}
}
