package rulesets

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-stats/internal/redis"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

const (
	ruleSetKeyPrefix = "ruleset:"
	indexKey         = "rulesets:index"

	errNameEmpty = "rule set name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis rule set repository
type RedisConfig struct {
	Client redisclient.Client
	// Clock stamps UpdatedAt; defaults to the system clock
	Clock clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis backed rule set repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// ruleSetData is what gets serialized to Redis
type ruleSetData struct {
	Name      string    `json:"name"`
	Rules     rules.Raw `json:"rules"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	result, err := r.client.Get(ctx, Key(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.RuleNotFoundf("rule set %q not found", input.Name).
				WithMeta("ruleset", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get rule set %s", input.Name)
	}

	var data ruleSetData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal rule set %s", input.Name)
	}

	return &GetOutput{
		RuleSet: &RuleSet{
			Name:      data.Name,
			Rules:     data.Rules,
			UpdatedAt: data.UpdatedAt,
		},
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if input.Rules == nil {
		return nil, errors.InvalidArgumentf("rule set %s has no rules", input.Name)
	}

	_, diags, err := rules.Parse(input.Rules)
	if err != nil {
		return nil, errors.Wrapf(err, "rule set %s is invalid", input.Name)
	}

	data := ruleSetData{
		Name:      input.Name,
		Rules:     input.Rules,
		UpdatedAt: r.clock.Now(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal rule set %s", input.Name)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, Key(input.Name), jsonData, 0)
		pipe.SAdd(ctx, indexKey, input.Name)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store rule set %s", input.Name)
	}

	return &PutOutput{
		RuleSet: &RuleSet{
			Name:      data.Name,
			Rules:     data.Rules,
			UpdatedAt: data.UpdatedAt,
		},
		Diagnostics: diags,
	}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, Key(input.Name))
		pipe.SRem(ctx, indexKey, input.Name)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete rule set %s", input.Name)
	}

	if del.Val() == 0 {
		return nil, errors.RuleNotFoundf("rule set %q not found", input.Name).
			WithMeta("ruleset", input.Name)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rule sets")
	}

	sort.Strings(names)

	return &ListOutput{Names: names}, nil
}

// Key returns the Redis key of a rule set
func Key(name string) string {
	return ruleSetKeyPrefix + name
}
