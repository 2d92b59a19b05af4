package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

var ErrResultNotFound = errors.New("game result not found")

type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	GetByID(ctx context.Context, id string) (*entity.GameResult, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal game result: %w", err)
	}

	resultKey := "result:" + result.ID
	err = that.client.Set(ctx, resultKey, resultJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.GameResult, error) {
	resultKey := "result:" + id

	response, err := that.client.Get(ctx, resultKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.GameResult{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.GameResult{}, fmt.Errorf("failed to get game result by ID: %w", err)
	}

	var result entity.GameResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return &entity.GameResult{}, fmt.Errorf("failed to unmarshal game result: %w", err)
	}

	return &result, nil
}
