package main

import (
	"github.com/hibiken/asynq"

	postJob "social-backend/internal/domains/post/job"
	"social-backend/internal/shared"
	"social-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	scheduledPost *postJob.ScheduledPostHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		scheduledPost: postJob.NewScheduledPostHandler(c.PostService),
	}
}

// RegisterHandlers binds task types to their handlers.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeCreateScheduledPost, h.scheduledPost.ProcessTask)
}
