package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"social-backend/internal/domains/post/model"
	"social-backend/internal/shared"
	"social-backend/internal/shared/utils"
	"social-backend/pkg/logger"
)

// Client wraps the asynq producer used by the API process.
type Client struct {
	asynq *asynq.Client
}

func NewClient(redisAddress, password string, db int) *Client {
	return &Client{
		asynq: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddress,
			Password: password,
			DB:       db,
		}),
	}
}

// EnqueueScheduledPost queues a deferred post for publishing at the
// given time.
func (c *Client) EnqueueScheduledPost(ctx context.Context, payload model.ScheduledPostPayload, at time.Time) error {
	task, err := utils.MarshalTask(shared.TypeCreateScheduledPost, payload)
	if err != nil {
		return err
	}

	info, err := c.asynq.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(3),
		asynq.ProcessAt(at),
	)
	if err != nil {
		return fmt.Errorf("enqueue scheduled post: %w", err)
	}

	logger.Info("Enqueued scheduled post task", map[string]interface{}{
		"task_id":    info.ID,
		"process_at": at.Format(time.RFC3339),
	})

	return nil
}

func (c *Client) Close() error {
	return c.asynq.Close()
}
