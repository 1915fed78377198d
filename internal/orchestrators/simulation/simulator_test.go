package simulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/simulation"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/logging"
	"github.com/KirkDiggler/rpg-stats/internal/testutils"
)

// fixedRoller rolls every die as the same face
type fixedRoller struct {
	face int
	err  error
}

func (r *fixedRoller) Roll(_ int) (int, error) {
	return r.face, r.err
}

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]int, count)
	for i := range out {
		out[i] = r.face
	}
	return out, nil
}

type SimulatorTestSuite struct {
	suite.Suite
	roller *fixedRoller
	sim    simulation.Service
	ctx    context.Context
}

func TestSimulatorSuite(t *testing.T) {
	suite.Run(t, new(SimulatorTestSuite))
}

func (s *SimulatorTestSuite) SetupTest() {
	s.roller = &fixedRoller{face: 10}
	s.ctx = context.Background()

	sim, err := simulation.NewSimulator(&simulation.Config{
		Roller: s.roller,
		Logger: logging.Discard(),
	})
	s.Require().NoError(err)
	s.sim = sim
}

func (s *SimulatorTestSuite) validInput() *simulation.RunInput {
	return &simulation.RunInput{
		Rules: testutils.RulesTable(s.T()),
		Stats: []simulation.StatInput{
			{Name: "sta", Base: 10},
			{Name: "hp", Base: 100},
			{Name: "dmg", Base: 10},
		},
		TargetLevel: 3,
		XPDice:      "4d10",
	}
}

func (s *SimulatorTestSuite) TestRun() {
	out, err := s.sim.Run(s.ctx, s.validInput())
	s.Require().NoError(err)

	s.Equal(6, out.TotalEncounters)
	s.Require().Len(out.Rows, 3)

	first := out.Rows[0]
	s.Equal(1, first.Level)
	s.Equal(0, first.Encounters)
	s.Equal(0, first.XP)
	s.Equal(106, first.NextLevelTarget)

	second := out.Rows[1]
	s.Equal(2, second.Level)
	s.Equal(3, second.Encounters)
	s.Equal(120, second.XP)

	last := out.Rows[2]
	s.Equal(3, last.Level)
	s.Equal(3, last.Encounters)
	s.Equal(240, last.XP)

	s.Require().Len(last.Stats, 3)
	sta, hp, dmg := last.Stats[0], last.Stats[1], last.Stats[2]

	s.Equal("sta", sta.Name)
	s.Equal(14, sta.Value)
	s.Require().NotNil(sta.Expected)
	s.InDelta(14.0, *sta.Expected, 1e-9)

	s.Equal("hp", hp.Name)
	s.Equal(240, hp.Value)
	s.Nil(hp.Expected)

	s.Equal("dmg", dmg.Name)
	s.Equal(11, dmg.Value)
	s.Require().NotNil(dmg.Expected)
	s.InDelta(10.977, *dmg.Expected, 1e-3)
}

func (s *SimulatorTestSuite) TestRunAlreadyAtTarget() {
	input := s.validInput()
	input.TargetLevel = 1

	out, err := s.sim.Run(s.ctx, input)
	s.Require().NoError(err)
	s.Len(out.Rows, 1)
	s.Zero(out.TotalEncounters)
}

func (s *SimulatorTestSuite) TestRunEncounterLimit() {
	input := s.validInput()
	input.MaxEncounters = 4

	_, err := s.sim.Run(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SimulatorTestSuite) TestRunValidation() {
	testCases := []struct {
		name   string
		modify func(*simulation.RunInput)
		field  string
	}{
		{
			name:   "missing rules",
			modify: func(in *simulation.RunInput) { in.Rules = nil },
			field:  "rules",
		},
		{
			name:   "target level below one",
			modify: func(in *simulation.RunInput) { in.TargetLevel = 0 },
			field:  "target_level",
		},
		{
			name:   "bad dice notation",
			modify: func(in *simulation.RunInput) { in.XPDice = "d20" },
			field:  "xp_dice",
		},
		{
			name:   "zero sided dice",
			modify: func(in *simulation.RunInput) { in.XPDice = "2d0" },
			field:  "xp_dice",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := s.validInput()
			tc.modify(input)

			_, err := s.sim.Run(s.ctx, input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Contains(fields, tc.field)
		})
	}
}

func (s *SimulatorTestSuite) TestRunStatWithoutRule() {
	input := s.validInput()
	input.Stats = append(input.Stats, simulation.StatInput{Name: "luck", Base: 1})

	_, err := s.sim.Run(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsRuleNotFound(err))
}

func (s *SimulatorTestSuite) TestRunRollFailure() {
	s.roller.err = errors.Internal("dice jammed")

	_, err := s.sim.Run(s.ctx, s.validInput())
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to roll 4d10")
}

func (s *SimulatorTestSuite) TestRunCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.sim.Run(ctx, s.validInput())
	s.Require().Error(err)
	s.ErrorIs(err, context.Canceled)
}
