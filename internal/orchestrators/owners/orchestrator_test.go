package owners_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-stats/internal/engine"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/owners"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/logging"
	"github.com/KirkDiggler/rpg-stats/internal/repositories/rulesets"
	rulesetsmock "github.com/KirkDiggler/rpg-stats/internal/repositories/rulesets/mock"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
	"github.com/KirkDiggler/rpg-stats/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *rulesetsmock.MockRepository
	bus      events.EventBus
	orch     owners.Service
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = rulesetsmock.NewMockRepository(s.ctrl)
	s.bus = events.NewBus()
	s.ctx = context.Background()

	orch, err := owners.NewOrchestrator(&owners.Config{
		RuleSetRepo:    s.mockRepo,
		IDGenerator:    idgen.NewSequential("owner"),
		EventBus:       s.bus,
		DefaultRuleset: "default",
		Logger:         logging.Discard(),
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectRuleset(name string) {
	s.mockRepo.EXPECT().
		Get(s.ctx, &rulesets.GetInput{Name: name}).
		Return(&rulesets.GetOutput{
			RuleSet: &rulesets.RuleSet{Name: name, Rules: testutils.RulesRaw()},
		}, nil)
}

func (s *OrchestratorTestSuite) createOwner() string {
	s.expectRuleset("default")

	out, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{})
	s.Require().NoError(err)
	return out.Owner.OwnerID
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	_, err := owners.NewOrchestrator(nil)
	s.Error(err)

	_, err = owners.NewOrchestrator(&owners.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "RuleSetRepo")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *OrchestratorTestSuite) TestCreateOwnerUsesDefaultRuleset() {
	s.expectRuleset("default")

	out, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{})
	s.Require().NoError(err)

	s.Equal("owner_1", out.Owner.OwnerID)
	s.Equal("default", out.Owner.Ruleset)
	s.Equal(1, out.Owner.Level)
	s.Equal(0, out.Owner.XP)
	s.Equal(106, out.Owner.XPToNextLevel)
	s.Empty(out.Owner.Stats)
}

func (s *OrchestratorTestSuite) TestCreateOwnerNamedRuleset() {
	s.expectRuleset("hardcore")

	out, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{Ruleset: "hardcore", Level: 5})
	s.Require().NoError(err)
	s.Equal("hardcore", out.Owner.Ruleset)
	s.Equal(5, out.Owner.Level)
}

func (s *OrchestratorTestSuite) TestCreateOwnerWithoutRules() {
	orch, err := owners.NewOrchestrator(&owners.Config{
		RuleSetRepo: s.mockRepo,
		IDGenerator: idgen.NewSequential("bare"),
		Logger:      logging.Discard(),
	})
	s.Require().NoError(err)

	out, err := orch.CreateOwner(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(out.Owner.Ruleset)
	s.Equal(105, out.Owner.XPToNextLevel)
}

func (s *OrchestratorTestSuite) TestCreateOwnerErrors() {
	s.Run("missing rule set", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, &rulesets.GetInput{Name: "missing"}).
			Return(nil, errors.RuleNotFoundf("rule set %q not found", "missing"))

		_, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{Ruleset: "missing"})
		s.Require().Error(err)
		s.True(errors.IsRuleNotFound(err))
	})

	s.Run("stored rules without a lvl section", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, &rulesets.GetInput{Name: "nolvl"}).
			Return(&rulesets.GetOutput{
				RuleSet: &rulesets.RuleSet{Name: "nolvl", Rules: rules.Raw{"hp": {}}},
			}, nil)

		_, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{Ruleset: "nolvl"})
		s.Require().Error(err)
		s.True(errors.IsRuleNotFound(err))
	})

	s.Run("explicit rule set missing even when it is the default name", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, &rulesets.GetInput{Name: "default"}).
			Return(nil, errors.RuleNotFoundf("rule set %q not found", "default"))

		_, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{Ruleset: "default"})
		s.Require().Error(err)
		s.True(errors.IsRuleNotFound(err))
	})

	s.Run("default rule set unavailable", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, &rulesets.GetInput{Name: "default"}).
			Return(nil, errors.Unavailable("redis down"))

		_, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{})
		s.Require().Error(err)
		s.True(errors.IsUnavailable(err))
	})

	s.Run("negative level", func() {
		_, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{Level: -2})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "level: is invalid: must not be negative")
	})
}

func (s *OrchestratorTestSuite) TestAddAndUpdateStats() {
	ownerID := s.createOwner()

	added, err := s.orch.AddStats(s.ctx, &owners.AddStatsInput{
		OwnerID: ownerID,
		Stats: []owners.StatInput{
			{Name: "sta", Base: 10},
			{Name: "hp", Base: 100},
			{Name: "crit", Base: 5},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(added.Owner.Stats, 3)
	s.Equal(engine.ScaleFlatByLevelOrStat.String(), added.Owner.Stats[0].Method)
	s.Len(added.Owner.Diagnostics, 1)

	_, err = s.orch.SetLevel(s.ctx, &owners.SetLevelInput{OwnerID: ownerID, Level: 10})
	s.Require().NoError(err)

	updated, err := s.orch.UpdateStats(s.ctx, &owners.UpdateStatsInput{OwnerID: ownerID})
	s.Require().NoError(err)
	s.Equal(28, updated.Owner.Stats[0].Value)
	s.Equal(380, updated.Owner.Stats[1].Value)
	s.Equal(100, updated.Owner.Stats[1].Base)

	hp, err := s.orch.GetStat(s.ctx, &owners.GetStatInput{OwnerID: ownerID, Name: "hp"})
	s.Require().NoError(err)
	s.Equal(380, hp.Value)

	raw, err := s.orch.GetStat(s.ctx, &owners.GetStatInput{OwnerID: ownerID, Name: "hp", Raw: true})
	s.Require().NoError(err)
	s.Equal(100, raw.Value)
}

func (s *OrchestratorTestSuite) TestAddStatsErrors() {
	ownerID := s.createOwner()

	_, err := s.orch.AddStats(s.ctx, &owners.AddStatsInput{OwnerID: ownerID})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.AddStats(s.ctx, &owners.AddStatsInput{
		OwnerID: ownerID,
		Stats:   []owners.StatInput{{Name: "luck", Base: 1}},
	})
	s.Require().Error(err)
	s.True(errors.IsRuleNotFound(err))

	_, err = s.orch.AddStats(s.ctx, &owners.AddStatsInput{
		OwnerID: "owner_404",
		Stats:   []owners.StatInput{{Name: "hp", Base: 1}},
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetStatNotFound() {
	ownerID := s.createOwner()

	_, err := s.orch.GetStat(s.ctx, &owners.GetStatInput{OwnerID: ownerID, Name: "mp"})
	s.Require().Error(err)
	s.True(errors.IsStatNotFound(err))
}

func (s *OrchestratorTestSuite) TestAwardXPPublishesLevelUp() {
	ownerID := s.createOwner()

	var published []string
	s.bus.SubscribeFunc(engine.EventLevelUp, 10, func(_ context.Context, event events.Event) error {
		published = append(published, event.Source().GetID())
		return nil
	})

	out, err := s.orch.AwardXP(s.ctx, &owners.AwardXPInput{OwnerID: ownerID, Amount: 150})
	s.Require().NoError(err)
	s.True(out.LeveledUp)
	s.Equal(2, out.Owner.Level)
	s.Equal(150, out.Owner.XP)
	s.Equal([]string{ownerID}, published)

	out, err = s.orch.AwardXP(s.ctx, &owners.AwardXPInput{OwnerID: ownerID, Amount: 10})
	s.Require().NoError(err)
	s.False(out.LeveledUp)
	s.Len(published, 1)
}

func (s *OrchestratorTestSuite) TestSetLevelInvalid() {
	ownerID := s.createOwner()

	_, err := s.orch.SetLevel(s.ctx, &owners.SetLevelInput{OwnerID: ownerID, Level: 0})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteOwner() {
	ownerID := s.createOwner()

	_, err := s.orch.DeleteOwner(s.ctx, &owners.DeleteOwnerInput{OwnerID: ownerID})
	s.Require().NoError(err)

	_, err = s.orch.UpdateStats(s.ctx, &owners.UpdateStatsInput{OwnerID: ownerID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.orch.DeleteOwner(s.ctx, &owners.DeleteOwnerInput{OwnerID: ownerID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.orch.DeleteOwner(s.ctx, &owners.DeleteOwnerInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestConcurrentAwardsAreSerialized() {
	ownerID := s.createOwner()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.orch.AwardXP(s.ctx, &owners.AwardXPInput{OwnerID: ownerID, Amount: 1})
			s.NoError(err)
		}()
	}
	wg.Wait()

	out, err := s.orch.AwardXP(s.ctx, &owners.AwardXPInput{OwnerID: ownerID, Amount: 0})
	s.Require().NoError(err)
	s.Equal(50, out.Owner.XP)
}

func (s *OrchestratorTestSuite) TestCreateOwnerDefaultRulesetNotStored() {
	s.mockRepo.EXPECT().
		Get(s.ctx, &rulesets.GetInput{Name: "default"}).
		Return(nil, errors.RuleNotFoundf("rule set %q not found", "default"))

	out, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{})
	s.Require().NoError(err)
	s.Empty(out.Owner.Ruleset)
	s.Equal(105, out.Owner.XPToNextLevel)
}

type RedisBackedOrchestratorTestSuite struct {
	suite.Suite
	repo rulesets.Repository
	orch owners.Service
	ctx  context.Context
}

func TestRedisBackedOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(RedisBackedOrchestratorTestSuite))
}

func (s *RedisBackedOrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := rulesets.NewRedis(&rulesets.RedisConfig{Client: client, Clock: clock.New()})
	s.Require().NoError(err)
	s.repo = repo

	orch, err := owners.NewOrchestrator(&owners.Config{
		RuleSetRepo:    repo,
		IDGenerator:    idgen.NewSequential("owner"),
		DefaultRuleset: "default",
		Logger:         logging.Discard(),
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *RedisBackedOrchestratorTestSuite) TestUnseededDefaultCreatesOwnerWithoutRules() {
	out, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{})
	s.Require().NoError(err)
	s.Empty(out.Owner.Ruleset)
	s.Equal(1, out.Owner.Level)
	s.Equal(105, out.Owner.XPToNextLevel)

	added, err := s.orch.AddStats(s.ctx, &owners.AddStatsInput{
		OwnerID: out.Owner.OwnerID,
		Stats:   []owners.StatInput{{Name: "dmg", Base: 10}},
	})
	s.Require().NoError(err)
	s.Equal(engine.ScaleExponentialByLevel.String(), added.Owner.Stats[0].Method)
}

func (s *RedisBackedOrchestratorTestSuite) TestNamedMissingRulesetFails() {
	_, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{Ruleset: "hardcore"})
	s.Require().Error(err)
	s.True(errors.IsRuleNotFound(err))
}

func (s *RedisBackedOrchestratorTestSuite) TestSeededDefaultIsBound() {
	_, err := s.repo.Put(s.ctx, &rulesets.PutInput{Name: "default", Rules: testutils.RulesRaw()})
	s.Require().NoError(err)

	out, err := s.orch.CreateOwner(s.ctx, &owners.CreateOwnerInput{})
	s.Require().NoError(err)
	s.Equal("default", out.Owner.Ruleset)
	s.Equal(106, out.Owner.XPToNextLevel)
}
