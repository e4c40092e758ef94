package job

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"social-backend/internal/domains/post/model"
	postService "social-backend/internal/domains/post/service"
	"social-backend/internal/shared/utils"
)

// ScheduledPostHandler publishes posts whose schedule time has arrived.
// The task runs through the same creation path as an immediate post, so
// hashtag extraction happens at publish time.
type ScheduledPostHandler struct {
	postService postService.PostService
}

func NewScheduledPostHandler(postService postService.PostService) *ScheduledPostHandler {
	return &ScheduledPostHandler{
		postService: postService,
	}
}

func (h *ScheduledPostHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.ScheduledPostPayload
	if err := utils.UnmarshalTask(task, &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal scheduled post payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	authorID := utils.ParseStringToUUID(payload.AuthorID)
	if authorID == uuid.Nil {
		log.Error().
			Str("author_id", payload.AuthorID).
			Msg("Scheduled post payload has an invalid author ID")
		return fmt.Errorf("invalid author ID %q: %w", payload.AuthorID, asynq.SkipRetry)
	}

	log.Info().
		Str("author_id", payload.AuthorID).
		Msg("Publishing scheduled post")

	post, err := h.postService.CreateForAuthor(ctx, authorID, payload.Text)
	if err != nil {
		log.Error().
			Err(err).
			Str("author_id", payload.AuthorID).
			Msg("Failed to publish scheduled post")
		return fmt.Errorf("publish scheduled post: %w", err)
	}

	log.Info().
		Str("post_id", post.ID.String()).
		Str("author_id", payload.AuthorID).
		Msg("Scheduled post published")

	return nil
}
