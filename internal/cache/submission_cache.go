package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"sybil/internal/model"
)

type SubmissionCache interface {
	Set(ctx context.Context, submission *model.Submission) error
	Get(ctx context.Context, id string) (*model.Submission, error)
}

type submissionCache struct {
	client *redis.Client
}

func NewSubmissionCache(client *redis.Client) SubmissionCache {
	return &submissionCache{
		client: client,
	}
}

func (c *submissionCache) Set(ctx context.Context, submission *model.Submission) error {
	data, err := json.Marshal(submission)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "submission:"+submission.ID, data, 10*time.Minute).Err()
}

func (c *submissionCache) Get(ctx context.Context, id string) (*model.Submission, error) {
	data, err := c.client.Get(ctx, "submission:"+id).Result()
	if err != nil {
		return nil, err
	}
	var submission model.Submission
	err = json.Unmarshal([]byte(data), &submission)
	return &submission, err
}
