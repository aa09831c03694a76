package notify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ogurasousui/staffhub/internal/core/watch"
	"go.uber.org/zap"
)

const reconnectDelay = time.Second

// Bridge はプロセス内の watch.Hub と PostgreSQL の LISTEN/NOTIFY を接続し、
// 複数インスタンス間で変更イベントを配送します。ローカルで発行された
// イベントは pg_notify で他インスタンスへ転送され、他インスタンス発の
// イベントはハブへ注入されます。自分が転送したイベントのエコーは
// インスタンス ID で抑止します。
type Bridge struct {
	pool       *pgxpool.Pool
	hub        *watch.Hub
	channel    string
	instanceID string
	logger     *zap.Logger
}

// NewBridge は Bridge を生成します。
func NewBridge(pool *pgxpool.Pool, hub *watch.Hub, channel string, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		pool:       pool,
		hub:        hub,
		channel:    channel,
		instanceID: uuid.NewString(),
		logger:     logger,
	}
}

// Run はイベントの双方向転送を開始し、ctx の終了までブロックします。
func (b *Bridge) Run(ctx context.Context) error {
	cancel := b.hub.Subscribe(func(e watch.Event) {
		b.forward(ctx, e)
	})
	defer cancel()

	for {
		if err := b.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			b.logger.Warn("notify listener disconnected", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func (b *Bridge) forward(ctx context.Context, e watch.Event) {
	// 他インスタンス発のイベントを転送し返すとループになる。
	if e.Origin != "" {
		return
	}

	e.Origin = b.instanceID
	payload, err := json.Marshal(e)
	if err != nil {
		b.logger.Error("notify marshal failed", zap.Error(err))
		return
	}

	if _, err := b.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, b.channel, string(payload)); err != nil {
		if ctx.Err() != nil {
			return
		}
		b.logger.Warn("notify publish failed", zap.Error(err))
	}
}

func (b *Bridge) listen(ctx context.Context) error {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{b.channel}.Sanitize()); err != nil {
		return err
	}

	b.logger.Info("notify listener started", zap.String("channel", b.channel))

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var event watch.Event
		if err := json.Unmarshal([]byte(notification.Payload), &event); err != nil {
			b.logger.Warn("notify payload discarded", zap.Error(err))
			continue
		}
		if event.Origin == "" || event.Origin == b.instanceID {
			continue
		}

		b.hub.Publish(event)
	}
}
