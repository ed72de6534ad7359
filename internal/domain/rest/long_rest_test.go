package rest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	mockrest "github.com/KirkDiggler/dnd-long-rest/internal/domain/rest/mock"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LongRestTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	host      *mockrest.MockHost
	confirmer *mockrest.MockConfirmer
	hitDice   *mockrest.MockHitDiceRecoverer
	defaults  rest.Recoverers

	ctx  context.Context
	char *character.Character
}

func (s *LongRestTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.host = mockrest.NewMockHost(s.ctrl)
	s.confirmer = mockrest.NewMockConfirmer(s.ctrl)
	s.hitDice = mockrest.NewMockHitDiceRecoverer(s.ctrl)
	s.defaults = rest.Recoverers{
		HitPoints: mockrest.NewMockHitPointRecoverer(s.ctrl),
		HitDice:   s.hitDice,
		Resources: mockrest.NewMockResourceRecoverer(s.ctrl),
		Spells:    mockrest.NewMockSpellRecoverer(s.ctrl),
		ItemUses:  mockrest.NewMockItemUsesRecoverer(s.ctrl),
	}

	s.ctx = context.Background()
	s.char = &character.Character{
		ID:    "char-1",
		Name:  "Thorin",
		Level: 4,
		HP:    character.HitPoints{Value: 5, Max: 20},
		Items: []*character.Item{
			{ID: "fighter", Type: character.ItemTypeClass, HitDice: &character.ClassHitDice{Denomination: 10, Levels: 4, Used: 4}},
		},
	}

	// The host applies whatever it is handed so deltas can be observed
	s.host.EXPECT().UpdateCharacter(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *character.Character, updates character.Updates) error {
			return c.Apply(updates)
		}).AnyTimes()
	s.host.EXPECT().UpdateItems(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *character.Character, updates []character.ItemUpdate) error {
			return c.ApplyItemUpdates(updates)
		}).AnyTimes()
}

func (s *LongRestTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LongRestTestSuite) orchestrator(settings rest.Settings, variant rest.Variant) *rest.Orchestrator {
	overrides, err := rest.NewOverrides(settings, s.defaults)
	s.Require().NoError(err)

	o, err := rest.NewOrchestrator(&rest.OrchestratorConfig{
		Host:      s.host,
		Overrides: overrides,
		Confirmer: s.confirmer,
		Variant:   variant,
	})
	s.Require().NoError(err)
	return o
}

func (s *LongRestTestSuite) expectHitDiceRestored(count int) {
	s.hitDice.EXPECT().
		RecoverHitDice(s.char, rest.HitDiceOptions{MaxHitDice: count, Mode: rest.HitDiceModePreRecovery}).
		Return(rest.HitDiceResult{
			Updates: []character.ItemUpdate{
				{ID: "fighter", Fields: map[string]any{character.PathHitDiceUsed: 4 - count}},
			},
			HitDiceRecovered: count,
		})
}

func (s *LongRestTestSuite) TestLongRest_QuarterHitPointsFullHitDice() {
	settings := rest.DefaultSettings()
	settings.HitPoints = rest.FractionQuarter
	settings.HitDice = rest.FractionFull

	s.expectHitDiceRestored(4)

	s.confirmer.EXPECT().ConfirmLongRest(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *rest.ConfirmationRequest) (*rest.Confirmation, error) {
			// Hit points were already partially recovered when the player is asked
			s.Equal(8, req.Character.HP.Value)
			s.Equal(4, req.Character.HitDice())
			s.False(req.CanRoll)
			s.Nil(req.RollHitDie)
			s.True(req.PromptNewDay)
			s.True(req.NewDay)
			return &rest.Confirmation{NewDay: true}, nil
		})

	s.host.EXPECT().AutoSpendHitDice(s.ctx, s.char, 0).
		DoAndReturn(func(_ context.Context, c *character.Character, _ int) (*rest.AutoSpendResult, error) {
			c.Items[0].HitDice.Used = 2
			healed := c.HP.Heal(12)
			return &rest.AutoSpendResult{DiceSpent: 2, HitPointsHealed: healed}, nil
		})

	s.host.EXPECT().FinalizeRest(s.ctx, s.char, &rest.FinalizeInput{
		Chat:           true,
		NewDay:         true,
		LongRest:       true,
		DeltaHitDice:   2,
		DeltaHitPoints: 15,
	}).Return(&rest.RestResult{ID: "rest-1", CharacterID: "char-1", LongRest: true, NewDay: true}, nil)

	out, err := s.orchestrator(settings, rest.VariantNormal).LongRest(s.ctx, s.char, rest.DefaultLongRestInput())
	s.Require().NoError(err)

	s.Equal(rest.StateFinalized, out.State)
	s.Equal([]rest.State{
		rest.StateStart,
		rest.StateHitPointsRecovered,
		rest.StateHitDicePreRecovered,
		rest.StateAwaitingConfirmation,
		rest.StateHitDiceAutoSpent,
		rest.StateFinalized,
	}, out.Trail)
	s.Equal(3, out.HitPointsRecovered)
	s.Equal(4, out.HitDicePreRecovered)
	s.Equal(2, out.AutoSpend.DiceSpent)
	s.True(out.NewDay)
	s.Equal("rest-1", out.Result.ID)
	s.False(out.Aborted())
}

func (s *LongRestTestSuite) TestLongRest_DefaultSettingsLetThePlayerRoll() {
	s.char.Items[0].HitDice.Used = 1
	s.hitDice.EXPECT().RecoverHitDice(gomock.Any(), gomock.Any()).Times(0)
	s.host.EXPECT().AutoSpendHitDice(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.confirmer.EXPECT().ConfirmLongRest(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *rest.ConfirmationRequest) (*rest.Confirmation, error) {
			s.True(req.CanRoll)
			s.Require().NotNil(req.RollHitDie)
			roll, err := req.RollHitDie(ctx, 10)
			s.Require().NoError(err)
			s.Equal(7, roll.Healed)
			return &rest.Confirmation{NewDay: false}, nil
		})

	s.host.EXPECT().RollHitDie(s.ctx, s.char, 10).
		DoAndReturn(func(_ context.Context, c *character.Character, _ int) (*rest.HitDieRoll, error) {
			c.Items[0].HitDice.Used++
			healed := c.HP.Heal(7)
			return &rest.HitDieRoll{Denomination: 10, Roll: 5, Bonus: 2, Healed: healed}, nil
		})

	s.host.EXPECT().FinalizeRest(s.ctx, s.char, &rest.FinalizeInput{
		Chat:           true,
		NewDay:         false,
		LongRest:       true,
		DeltaHitDice:   -1,
		DeltaHitPoints: 7,
	}).Return(&rest.RestResult{ID: "rest-2"}, nil)

	out, err := s.orchestrator(rest.DefaultSettings(), rest.VariantNormal).LongRest(s.ctx, s.char, nil)
	s.Require().NoError(err)

	s.Equal(rest.StateFinalized, out.State)
	s.NotContains(out.Trail, rest.StateHitDicePreRecovered)
	s.NotContains(out.Trail, rest.StateHitDiceAutoSpent)
	s.Equal(0, out.HitPointsRecovered)
	s.False(out.NewDay)
}

// A cancelled dialog leaves the hit points and hit dice recovered before the
// prompt in place; only the finalizing step is skipped.
func (s *LongRestTestSuite) TestLongRest_CancelKeepsEarlierRecovery() {
	settings := rest.DefaultSettings()
	settings.HitPoints = rest.FractionHalf
	settings.HitDice = rest.FractionHalf
	settings.RecoverHitDiceBeforeRoll = true

	s.expectHitDiceRestored(2)
	s.confirmer.EXPECT().ConfirmLongRest(s.ctx, gomock.Any()).Return(nil, rest.ErrRestCancelled)
	s.host.EXPECT().AutoSpendHitDice(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.host.EXPECT().FinalizeRest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	out, err := s.orchestrator(settings, rest.VariantNormal).LongRest(s.ctx, s.char, rest.DefaultLongRestInput())
	s.Require().NoError(err)

	s.True(out.Aborted())
	s.Nil(out.Result)
	s.Equal(12, s.char.HP.Value)
	s.Equal(2, s.char.HitDice())
}

func (s *LongRestTestSuite) TestLongRest_GrittyAlwaysStartsNewDay() {
	s.confirmer.EXPECT().ConfirmLongRest(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *rest.ConfirmationRequest) (*rest.Confirmation, error) {
			s.False(req.PromptNewDay)
			s.False(req.NewDay)
			return &rest.Confirmation{NewDay: false}, nil
		})
	s.host.EXPECT().FinalizeRest(s.ctx, s.char, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *character.Character, input *rest.FinalizeInput) (*rest.RestResult, error) {
			s.True(input.NewDay)
			return &rest.RestResult{NewDay: input.NewDay}, nil
		})

	out, err := s.orchestrator(rest.DefaultSettings(), rest.VariantGritty).LongRest(s.ctx, s.char, rest.DefaultLongRestInput())
	s.Require().NoError(err)
	s.True(out.NewDay)
}

func (s *LongRestTestSuite) TestLongRest_WithoutDialogUsesInputNewDay() {
	s.confirmer.EXPECT().ConfirmLongRest(gomock.Any(), gomock.Any()).Times(0)
	s.host.EXPECT().FinalizeRest(s.ctx, s.char, &rest.FinalizeInput{
		Origin:   "route-1",
		Chat:     false,
		NewDay:   false,
		LongRest: true,
	}).Return(&rest.RestResult{}, nil)

	out, err := s.orchestrator(rest.DefaultSettings(), rest.VariantNormal).
		LongRest(s.ctx, s.char, &rest.LongRestInput{Origin: "route-1", Chat: false, Dialog: false, NewDay: false})
	s.Require().NoError(err)
	s.Equal(rest.StateFinalized, out.State)
}

func (s *LongRestTestSuite) TestLongRest_DialogNeedsConfirmer() {
	overrides, err := rest.NewOverrides(rest.DefaultSettings(), s.defaults)
	s.Require().NoError(err)
	o, err := rest.NewOrchestrator(&rest.OrchestratorConfig{Host: s.host, Overrides: overrides})
	s.Require().NoError(err)

	_, err = o.LongRest(s.ctx, s.char, rest.DefaultLongRestInput())
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
	s.Equal(5, s.char.HP.Value)
}

func (s *LongRestTestSuite) TestLongRest_HostFailureStopsTheRest() {
	settings := rest.DefaultSettings()
	settings.HitDice = rest.FractionFull

	s.expectHitDiceRestored(4)
	s.confirmer.EXPECT().ConfirmLongRest(gomock.Any(), gomock.Any()).Return(&rest.Confirmation{NewDay: true}, nil)
	s.host.EXPECT().AutoSpendHitDice(gomock.Any(), gomock.Any(), 0).
		Return(nil, dnderr.Internalf("dice server unavailable"))
	s.host.EXPECT().FinalizeRest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orchestrator(settings, rest.VariantNormal).LongRest(s.ctx, s.char, rest.DefaultLongRestInput())
	s.Require().Error(err)
	s.Equal(dnderr.CodeInternal, dnderr.GetCode(err))
	s.Equal("auto_spend_hit_dice", dnderr.GetMeta(err)["step"])
}

func (s *LongRestTestSuite) TestLongRest_ConfirmerFailureIsNotACancel() {
	s.confirmer.EXPECT().ConfirmLongRest(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	s.host.EXPECT().FinalizeRest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	out, err := s.orchestrator(rest.DefaultSettings(), rest.VariantNormal).LongRest(s.ctx, s.char, rest.DefaultLongRestInput())
	s.Error(err)
	s.Nil(out)
	s.False(dnderr.IsCancelled(err))
}

func (s *LongRestTestSuite) TestNewOrchestrator_Validation() {
	_, err := rest.NewOrchestrator(nil)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = rest.NewOrchestrator(&rest.OrchestratorConfig{Host: s.host})
	s.True(dnderr.IsInvalidArgument(err))
}

func TestLongRestSuite(t *testing.T) {
	suite.Run(t, new(LongRestTestSuite))
}
