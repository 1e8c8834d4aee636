package payment

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// StatusEvent được publish mỗi khi trạng thái đơn thay đổi
type StatusEvent struct {
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	InvitationSlug string `json:"invitationSlug,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event StatusEvent) error
}

// Channel là kênh Redis của một đơn hàng.
func Channel(orderID string) string {
	return "payment:" + orderID
}

// RedisNotifier publishes status events on payment:<orderId>.
type RedisNotifier struct {
	Client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{Client: client}
}

func (n *RedisNotifier) Publish(ctx context.Context, event StatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return n.Client.Publish(ctx, Channel(event.OrderID), payload).Err()
}

// Subscribe mở pubsub cho một đơn; caller phải Close.
func (n *RedisNotifier) Subscribe(ctx context.Context, orderID string) *redis.PubSub {
	return n.Client.Subscribe(ctx, Channel(orderID))
}
