package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"sybil/internal/model"
)

type ScenarioCache interface {
	Set(ctx context.Context, scenario *model.Scenario) error
	Get(ctx context.Context, id string) (*model.Scenario, error)
	Delete(ctx context.Context, id string) error
}

type scenarioCache struct {
	client *redis.Client
}

func NewScenarioCache(client *redis.Client) ScenarioCache {
	return &scenarioCache{
		client: client,
	}
}

func (c *scenarioCache) Set(ctx context.Context, scenario *model.Scenario) error {
	data, err := json.Marshal(scenario)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "scenario:"+scenario.ID, data, 30*time.Minute).Err()
}

func (c *scenarioCache) Get(ctx context.Context, id string) (*model.Scenario, error) {
	data, err := c.client.Get(ctx, "scenario:"+id).Result()
	if err != nil {
		return nil, err
	}
	var scenario model.Scenario
	err = json.Unmarshal([]byte(data), &scenario)
	return &scenario, err
}

func (c *scenarioCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "scenario:"+id).Err()
}
