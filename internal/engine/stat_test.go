package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-stats/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-stats/internal/engine/mock"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
	"github.com/KirkDiggler/rpg-stats/internal/testutils"
)

type StatTestSuite struct {
	suite.Suite
	owner *engine.Owner
}

func TestStatSuite(t *testing.T) {
	suite.Run(t, new(StatTestSuite))
}

func (s *StatTestSuite) SetupTest() {
	owner, err := engine.NewOwner(&engine.OwnerConfig{ID: "owner_test"})
	s.Require().NoError(err)
	s.owner = owner
}

func (s *StatTestSuite) addStat(name string, base int) *engine.Stat {
	stat := engine.NewStat(name, base)
	s.Require().NoError(s.owner.Add(stat))
	return stat
}

func (s *StatTestSuite) TestNewStatDefaults() {
	stat := engine.NewStat("hp", 100)

	s.Assert().Equal("hp", stat.Name())
	s.Assert().Nil(stat.Owner())
	s.Assert().Equal(100, stat.Value(true))
	s.Assert().Equal(100, stat.Value(false))
	s.Assert().Equal(engine.ScaleExponentialByLevel, stat.ScaleMethod())
	s.Assert().Equal(engine.DefaultScaleAmount, stat.ScaleAmount())
	s.Assert().Equal(engine.DefaultCap, stat.Cap())
	s.Assert().Empty(stat.ScaleStat())
}

func (s *StatTestSuite) TestUpdateWithoutOwner() {
	stat := engine.NewStat("hp", 100)

	err := stat.Update()
	s.Require().Error(err)
	s.Assert().True(errors.IsOrphanStat(err))
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal(100, stat.Value(false))
}

func (s *StatTestSuite) TestRawValueNeverChanges() {
	stat := s.addStat("dmg", 10)
	s.Require().NoError(s.owner.SetLevel(40))

	for i := 0; i < 3; i++ {
		s.Require().NoError(stat.Update())
		s.Assert().Equal(10, stat.Value(true))
	}
	s.Assert().NotEqual(10, stat.Value(false))
}

func (s *StatTestSuite) TestValueIsCached() {
	stat := s.addStat("dmg", 10)
	s.Require().NoError(s.owner.SetLevel(20))
	s.Require().NoError(stat.Update())

	first := stat.Value(false)
	s.Require().NoError(s.owner.SetLevel(60))

	s.Assert().Equal(first, stat.Value(false))
	s.Assert().Equal(first, stat.Value(false))
}

func (s *StatTestSuite) TestExponentialByLevel() {
	testCases := []struct {
		level    int
		expected int
	}{
		{level: 1, expected: 10},
		{level: 20, expected: 18},
		{level: 80, expected: 100},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprintf("level %d", tc.level), func() {
			stat := s.addStat("dmg", 10)
			s.Require().NoError(s.owner.SetLevel(tc.level))
			s.Require().NoError(stat.Update())
			s.Assert().Equal(tc.expected, stat.Value(false))
		})
	}
}

func (s *StatTestSuite) TestFlatByLevel() {
	stat := s.addStat("sta", 10)
	stat.SetScaleMethod(engine.ScaleFlatByLevelOrStat)
	stat.SetScaleStat(rules.LevelSection)

	s.Require().NoError(stat.Update())
	s.Assert().Equal(10, stat.Value(false))

	s.Require().NoError(s.owner.SetLevel(10))
	s.Require().NoError(stat.Update())
	s.Assert().Equal(19, stat.Value(false))
}

func (s *StatTestSuite) TestFlatByStat() {
	sta := s.addStat("sta", 10)
	sta.SetValue(10)

	hp := s.addStat("hp", 100)
	hp.SetScaleMethod(engine.ScaleFlatByLevelOrStat)
	hp.SetScaleStat("sta")
	hp.SetScaleAmount(10)

	s.Require().NoError(hp.Update())
	s.Assert().Equal(200, hp.Value(false))
}

func (s *StatTestSuite) TestFlatByMissingStat() {
	hp := s.addStat("hp", 100)
	hp.SetScaleMethod(engine.ScaleFlatByLevelOrStat)
	hp.SetScaleStat("sta")

	err := hp.Update()
	s.Require().Error(err)
	s.Assert().True(errors.IsStatNotFound(err))
	s.Assert().Equal(100, hp.Value(false))
}

func (s *StatTestSuite) TestStatRelativeExponentialClampsUpToCap() {
	mana := s.addStat("mana", 5000)
	mana.SetValue(5000)

	regen := s.addStat("regen", 10)
	regen.SetScaleMethod(engine.ScaleStatRelativeExponential)
	regen.SetScaleStat("mana")

	s.Require().NoError(regen.Update())
	s.Assert().Equal(engine.DefaultCap, regen.Value(false))

	regen.SetCap(5)
	s.Require().NoError(regen.Update())
	// 10 * 10^(5000/10000)
	s.Assert().Equal(32, regen.Value(false))
}

func (s *StatTestSuite) TestStatRelativeExponentialZeroCapReference() {
	mana := s.addStat("mana", 5000)
	mana.SetCap(0)

	regen := s.addStat("regen", 10)
	regen.SetScaleMethod(engine.ScaleStatRelativeExponential)
	regen.SetScaleStat("mana")

	err := regen.Update()
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *StatTestSuite) TestUpdateAppliesModifiers() {
	ctrl := gomock.NewController(s.T())
	mods := enginemock.NewMockModifierSource(ctrl)
	mods.EXPECT().FlatModifiers("sta").Return([]float64{5, 5})
	mods.EXPECT().ScalarModifiers("sta").Return([]float64{0.1, 0.2})

	owner, err := engine.NewOwner(&engine.OwnerConfig{Modifiers: mods})
	s.Require().NoError(err)

	stat := engine.NewStat("sta", 10)
	stat.SetScaleMethod(engine.ScaleFlatByLevelOrStat)
	stat.SetScaleStat(rules.LevelSection)
	s.Require().NoError(owner.Add(stat))

	// (10 + 10) + (10 + 10) * 0.3
	s.Require().NoError(stat.Update())
	s.Assert().Equal(26, stat.Value(false))
}

func (s *StatTestSuite) TestUpdateWithStaticModifiers() {
	owner, err := engine.NewOwner(&engine.OwnerConfig{
		Modifiers: &engine.StaticModifiers{
			Flat:   map[string][]float64{"sta": {-4}},
			Scalar: map[string][]float64{"sta": {0.5}},
		},
	})
	s.Require().NoError(err)

	sta := engine.NewStat("sta", 10)
	sta.SetScaleMethod(engine.ScaleFlatByLevelOrStat)
	sta.SetScaleStat(rules.LevelSection)
	other := engine.NewStat("hp", 10)
	other.SetScaleMethod(engine.ScaleFlatByLevelOrStat)
	other.SetScaleStat(rules.LevelSection)
	s.Require().NoError(owner.Add(sta, other))

	s.Require().NoError(owner.UpdateAll())
	s.Assert().Equal(9, sta.Value(false))
	s.Assert().Equal(10, other.Value(false))
}

func (s *StatTestSuite) TestApplyRulesFlatBindsFlatMethod() {
	table := testutils.RulesTable(s.T())

	stat := engine.NewStat("sta", 10)
	diags, err := stat.ApplyRules(table)
	s.Require().NoError(err)
	s.Assert().Empty(diags)

	s.Assert().Equal(engine.ScaleFlatByLevelOrStat, stat.ScaleMethod())
	s.Assert().Equal([]string{rules.LevelSection}, stat.ScaleStat())
	s.Assert().Equal(2.0, stat.ScaleAmount())

	// behaves as flat by level: 10 + (5-1)*2
	s.Require().NoError(s.owner.Claim(stat))
	s.Require().NoError(s.owner.SetLevel(5))
	s.Require().NoError(stat.Update())
	s.Assert().Equal(18, stat.Value(false))
}

func (s *StatTestSuite) TestApplyRulesExp() {
	stat := engine.NewStat("dmg", 10)
	stat.SetScaleMethod(engine.ScaleFlatByLevelOrStat)

	diags, err := stat.ApplyRules(testutils.RulesTable(s.T()))
	s.Require().NoError(err)
	s.Assert().Empty(diags)
	s.Assert().Equal(engine.ScaleExponentialByLevel, stat.ScaleMethod())
	s.Assert().InDelta(1.2, stat.ScaleAmount(), 1e-9)
	s.Assert().Equal(10000, stat.Cap())
}

func (s *StatTestSuite) TestApplyRulesUnimplementedMethodFallsBack() {
	stat := engine.NewStat("crit", 5)

	diags, err := stat.ApplyRules(testutils.RulesTable(s.T()))
	s.Require().NoError(err)
	s.Require().Len(diags, 1)
	s.Assert().Equal("crit", diags[0].Section)
	s.Assert().Equal(rules.KeyScaleMethod, diags[0].Key)
	s.Assert().Equal(engine.ScaleExponentialByLevel, stat.ScaleMethod())
	s.Assert().Equal([]string{"dmg", "crit", "aspd"}, stat.ScaleStat())
	s.Assert().Equal("dmg", stat.ReferenceStat())
}

func (s *StatTestSuite) TestApplyRulesKeepsUnsetOptions() {
	stat := engine.NewStat("mp", 10)
	stat.SetScaleAmount(3)
	stat.SetCap(50)

	_, err := stat.ApplyRules(rules.Table{"mp": {ScaleMethod: rules.MethodFlat}})
	s.Require().NoError(err)
	s.Assert().Equal(3.0, stat.ScaleAmount())
	s.Assert().Equal(50, stat.Cap())
	s.Assert().Equal(engine.ScaleFlatByLevelOrStat, stat.ScaleMethod())
}

func (s *StatTestSuite) TestApplyRulesMissingSection() {
	stat := engine.NewStat("luck", 1)

	_, err := stat.ApplyRules(testutils.RulesTable(s.T()))
	s.Require().Error(err)
	s.Assert().True(errors.IsRuleNotFound(err))
	s.Assert().Equal("luck", errors.GetMeta(err)["stat"])
}

func (s *StatTestSuite) TestApplyRulesNilTable() {
	_, err := engine.NewStat("hp", 1).ApplyRules(nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidType(err))
}

func (s *StatTestSuite) TestCurveHelpers() {
	s.Assert().InDelta(17.7828, engine.ExponentialByLevel(10, 20, 1), 1e-4)
	s.Assert().InDelta(19, engine.FlatByLevel(10, 10, 1), 1e-9)
	s.Assert().InDelta(10, engine.FlatByLevel(10, 1, 5), 1e-9)
}

func (s *StatTestSuite) TestScaleMethodString() {
	s.Assert().Equal("flat_by_level_or_stat", engine.ScaleFlatByLevelOrStat.String())
	s.Assert().Equal("ScaleMethod(9)", engine.ScaleMethod(9).String())
}
