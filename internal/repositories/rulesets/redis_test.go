package rulesets_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-stats/internal/repositories/rulesets"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
	"github.com/KirkDiggler/rpg-stats/internal/testutils"
)

type RedisRuleSetTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo rulesets.Repository
	ctx  context.Context
	now  time.Time
}

func TestRedisRuleSetSuite(t *testing.T) {
	suite.Run(t, new(RedisRuleSetTestSuite))
}

func (s *RedisRuleSetTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()
	s.now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	repo, err := rulesets.NewRedis(&rulesets.RedisConfig{
		Client: client,
		Clock:  clock.Fixed(s.now),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRuleSetTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *rulesets.RedisConfig
		errMsg string
	}{
		{
			name:   "error with nil config",
			config: nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "error with nil client",
			config: &rulesets.RedisConfig{},
			errMsg: "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := rulesets.NewRedis(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}

func (s *RedisRuleSetTestSuite) TestPutThenGet() {
	put, err := s.repo.Put(s.ctx, &rulesets.PutInput{
		Name:  "default",
		Rules: testutils.RulesRaw(),
	})
	s.Require().NoError(err)
	s.Equal("default", put.RuleSet.Name)
	s.Equal(s.now, put.RuleSet.UpdatedAt)
	s.Empty(put.Diagnostics)

	s.True(s.mr.Exists(rulesets.Key("default")))

	got, err := s.repo.Get(s.ctx, &rulesets.GetInput{Name: "default"})
	s.Require().NoError(err)
	s.Equal(testutils.RulesRaw(), got.RuleSet.Rules)
	s.True(s.now.Equal(got.RuleSet.UpdatedAt))
}

func (s *RedisRuleSetTestSuite) TestPutReplaces() {
	_, err := s.repo.Put(s.ctx, &rulesets.PutInput{Name: "default", Rules: testutils.RulesRaw()})
	s.Require().NoError(err)

	replacement := rules.Raw{"lvl": {"scale_amount": "2.0"}}
	_, err = s.repo.Put(s.ctx, &rulesets.PutInput{Name: "default", Rules: replacement})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &rulesets.GetInput{Name: "default"})
	s.Require().NoError(err)
	s.Equal(replacement, got.RuleSet.Rules)

	list, err := s.repo.List(s.ctx, &rulesets.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"default"}, list.Names)
}

func (s *RedisRuleSetTestSuite) TestPutReportsDiagnostics() {
	raw := testutils.RulesRaw()
	raw["hp"]["notes"] = "tank"

	put, err := s.repo.Put(s.ctx, &rulesets.PutInput{Name: "notes", Rules: raw})
	s.Require().NoError(err)
	s.Require().Len(put.Diagnostics, 1)
	s.Equal("notes", put.Diagnostics[0].Key)
}

func (s *RedisRuleSetTestSuite) TestPutValidation() {
	testCases := []struct {
		name  string
		input *rulesets.PutInput
		check func(error) bool
	}{
		{
			name:  "nil input",
			input: nil,
			check: errors.IsInvalidArgument,
		},
		{
			name:  "empty name",
			input: &rulesets.PutInput{Rules: testutils.RulesRaw()},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "missing rules",
			input: &rulesets.PutInput{Name: "default"},
			check: errors.IsInvalidArgument,
		},
		{
			name: "rules that do not parse",
			input: &rulesets.PutInput{
				Name:  "broken",
				Rules: rules.Raw{"hp": {"scale_method": "linear"}},
			},
			check: errors.IsRuleValidation,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err))
		})
	}

	s.False(s.mr.Exists(rulesets.Key("broken")))
}

func (s *RedisRuleSetTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, &rulesets.GetInput{Name: "missing"})
	s.Require().Error(err)
	s.True(errors.IsRuleNotFound(err))
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, &rulesets.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRuleSetTestSuite) TestGetCorruptData() {
	s.Require().NoError(s.mr.Set(rulesets.Key("corrupt"), "{not json"))

	_, err := s.repo.Get(s.ctx, &rulesets.GetInput{Name: "corrupt"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisRuleSetTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, &rulesets.PutInput{Name: "default", Rules: testutils.RulesRaw()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &rulesets.DeleteInput{Name: "default"})
	s.Require().NoError(err)
	s.False(s.mr.Exists(rulesets.Key("default")))

	list, err := s.repo.List(s.ctx, &rulesets.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Names)

	_, err = s.repo.Delete(s.ctx, &rulesets.DeleteInput{Name: "default"})
	s.Require().Error(err)
	s.True(errors.IsRuleNotFound(err))
}

func (s *RedisRuleSetTestSuite) TestListSorted() {
	for _, name := range []string{"pvp", "default", "hardcore"} {
		_, err := s.repo.Put(s.ctx, &rulesets.PutInput{Name: name, Rules: testutils.RulesRaw()})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, &rulesets.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"default", "hardcore", "pvp"}, list.Names)
}

func (s *RedisRuleSetTestSuite) TestStorageUnavailable() {
	s.mr.SetError("ERR forced failure")
	defer s.mr.SetError("")

	_, err := s.repo.List(s.ctx, &rulesets.ListInput{})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}
