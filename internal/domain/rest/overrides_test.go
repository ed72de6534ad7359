package rest_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	mockrest "github.com/KirkDiggler/dnd-long-rest/internal/domain/rest/mock"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OverridesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	hitPoints *mockrest.MockHitPointRecoverer
	hitDice   *mockrest.MockHitDiceRecoverer
	resources *mockrest.MockResourceRecoverer
	spells    *mockrest.MockSpellRecoverer
	itemUses  *mockrest.MockItemUsesRecoverer

	char *character.Character
}

func (s *OverridesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.hitPoints = mockrest.NewMockHitPointRecoverer(s.ctrl)
	s.hitDice = mockrest.NewMockHitDiceRecoverer(s.ctrl)
	s.resources = mockrest.NewMockResourceRecoverer(s.ctrl)
	s.spells = mockrest.NewMockSpellRecoverer(s.ctrl)
	s.itemUses = mockrest.NewMockItemUsesRecoverer(s.ctrl)

	s.char = &character.Character{
		ID:    "char-1",
		Level: 8,
		HP:    character.HitPoints{Value: 12, Max: 40, Temp: 5, TempMax: 2},
		Resources: map[string]*character.Resource{
			"primary": {Value: 0, Max: intPtr(4), LongRest: true},
		},
		Spells: map[string]*character.SpellSlot{
			"spell1": {Value: 0, Max: 4},
			"pact":   {Value: 0, Max: 2},
		},
		Items: []*character.Item{
			{ID: "fighter", Type: character.ItemTypeClass, HitDice: &character.ClassHitDice{Denomination: 10, Levels: 8, Used: 8}},
			{ID: "action-surge", Type: character.ItemTypeFeat, Uses: &character.Uses{Value: 0, Max: 2, Per: character.RecoveryPeriodLongRest}},
		},
	}
}

func (s *OverridesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OverridesTestSuite) defaults() rest.Recoverers {
	return rest.Recoverers{
		HitPoints: s.hitPoints,
		HitDice:   s.hitDice,
		Resources: s.resources,
		Spells:    s.spells,
		ItemUses:  s.itemUses,
	}
}

func (s *OverridesTestSuite) overrides(settings rest.Settings) *rest.Overrides {
	o, err := rest.NewOverrides(settings, s.defaults())
	s.Require().NoError(err)
	return o
}

func (s *OverridesTestSuite) TestNewOverrides_RequiresEveryDefault() {
	defaults := s.defaults()
	defaults.Spells = nil

	_, err := rest.NewOverrides(rest.DefaultSettings(), defaults)
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *OverridesTestSuite) TestNewOverrides_BadSettingFailsUpFront() {
	settings := rest.DefaultSettings()
	settings.Spells = "most"

	_, err := rest.NewOverrides(settings, s.defaults())
	s.Error(err)
	s.True(dnderr.IsInvalidConfiguration(err))
}

func (s *OverridesTestSuite) TestRecoverHitPoints_PinsCurrentValue() {
	opts := rest.HitPointOptions{RecoverTemp: true, RecoverTempMax: true}
	s.hitPoints.EXPECT().RecoverHitPoints(s.char, opts).Return(rest.HitPointResult{
		Updates: character.Updates{
			character.PathHPValue:   40,
			character.PathHPTemp:    0,
			character.PathHPTempMax: 0,
		},
		HitPointsRecovered: 28,
	})

	result := s.overrides(rest.DefaultSettings()).RecoverHitPoints(s.char, opts)

	s.Equal(character.Updates{
		character.PathHPValue:   12,
		character.PathHPTemp:    0,
		character.PathHPTempMax: 0,
	}, result.Updates)
	s.Equal(0, result.HitPointsRecovered)
}

func (s *OverridesTestSuite) TestRecoverHitDice_NormalModeUsesFraction() {
	settings := rest.DefaultSettings()
	settings.HitDice = rest.FractionQuarter

	expected := rest.HitDiceResult{
		Updates:          []character.ItemUpdate{{ID: "fighter", Fields: map[string]any{character.PathHitDiceUsed: 6}}},
		HitDiceRecovered: 2,
	}
	s.hitDice.EXPECT().
		RecoverHitDice(s.char, rest.HitDiceOptions{MaxHitDice: 2, Mode: rest.HitDiceModeNormal}).
		Return(expected)

	result := s.overrides(settings).RecoverHitDice(s.char, rest.HitDiceOptions{Mode: rest.HitDiceModeNormal})
	s.Equal(expected, result)
}

func (s *OverridesTestSuite) TestRecoverHitDice_RespectsCallerCap() {
	// half of 8 is 4, capped at 3 by the caller
	settings := rest.DefaultSettings()

	s.hitDice.EXPECT().
		RecoverHitDice(s.char, rest.HitDiceOptions{MaxHitDice: 3, Mode: rest.HitDiceModeNormal}).
		Return(rest.HitDiceResult{HitDiceRecovered: 3})

	result := s.overrides(settings).RecoverHitDice(s.char, rest.HitDiceOptions{MaxHitDice: 3})
	s.Equal(3, result.HitDiceRecovered)
}

func (s *OverridesTestSuite) TestRecoverHitDice_PreRecoverySkipsFinalizingCall() {
	settings := rest.DefaultSettings()
	settings.RecoverHitDiceBeforeRoll = true
	o := s.overrides(settings)

	s.hitDice.EXPECT().RecoverHitDice(gomock.Any(), gomock.Any()).Times(0)
	s.Empty(o.RecoverHitDice(s.char, rest.HitDiceOptions{MaxHitDice: 4, Mode: rest.HitDiceModeNormal}).Updates)
}

func (s *OverridesTestSuite) TestRecoverHitDice_PreRecoveryIgnoresCallerCap() {
	settings := rest.DefaultSettings()
	settings.HitDice = rest.FractionFull
	o := s.overrides(settings)

	s.hitDice.EXPECT().
		RecoverHitDice(s.char, rest.HitDiceOptions{MaxHitDice: 8, Mode: rest.HitDiceModePreRecovery}).
		Return(rest.HitDiceResult{HitDiceRecovered: 8})

	result := o.RecoverHitDice(s.char, rest.HitDiceOptions{MaxHitDice: 4, Mode: rest.HitDiceModePreRecovery})
	s.Equal(8, result.HitDiceRecovered)
}

func (s *OverridesTestSuite) TestRecoverHitDice_NoneRecoversNothing() {
	settings := rest.DefaultSettings()
	settings.HitDice = rest.FractionNone
	o := s.overrides(settings)

	s.hitDice.EXPECT().RecoverHitDice(gomock.Any(), gomock.Any()).Times(0)
	s.Equal(rest.HitDiceResult{}, o.RecoverHitDice(s.char, rest.HitDiceOptions{}))
}

func (s *OverridesTestSuite) TestRecoverResources_NeverCallsDefault() {
	s.resources.EXPECT().RecoverResources(gomock.Any(), gomock.Any()).Times(0)

	updates := s.overrides(rest.DefaultSettings()).RecoverResources(s.char, rest.ResourceOptions{
		RecoverShortRestResources: true,
		RecoverLongRestResources:  true,
	})
	s.Equal(character.Updates{"resources.primary.value": 4}, updates)
}

func (s *OverridesTestSuite) TestRecoverSpells_HostKeepsPactSlots() {
	settings := rest.DefaultSettings()
	settings.Spells = rest.FractionHalf

	s.spells.EXPECT().
		RecoverSpells(s.char, rest.SpellOptions{RecoverPact: true, RecoverSpells: false}).
		Return(character.Updates{"spells.pact.value": 2})

	updates := s.overrides(settings).RecoverSpells(s.char, rest.SpellOptions{RecoverPact: true, RecoverSpells: true})
	s.Equal(character.Updates{
		"spells.pact.value":   2,
		"spells.spell1.value": 2,
	}, updates)
}

func (s *OverridesTestSuite) TestRecoverSpells_NoneLeavesHostBatch() {
	settings := rest.DefaultSettings()
	settings.Spells = rest.FractionNone

	s.spells.EXPECT().
		RecoverSpells(s.char, rest.SpellOptions{RecoverPact: true, RecoverSpells: false}).
		Return(character.Updates{"spells.pact.value": 2})

	updates := s.overrides(settings).RecoverSpells(s.char, rest.SpellOptions{RecoverPact: true, RecoverSpells: true})
	s.Equal(character.Updates{"spells.pact.value": 2}, updates)
}

func (s *OverridesTestSuite) TestRecoverItemUses_HostOnlySeesShortRest() {
	s.itemUses.EXPECT().
		RecoverItemUses(s.char, rest.ItemUsesOptions{RecoverShortRestUses: true}).
		Return([]character.ItemUpdate{{ID: "second-wind", Fields: map[string]any{character.PathUsesValue: 1}}})

	updates := s.overrides(rest.DefaultSettings()).RecoverItemUses(s.char, rest.ItemUsesOptions{
		RecoverShortRestUses: true,
		RecoverLongRestUses:  true,
		RecoverDailyUses:     true,
	})
	s.Equal([]character.ItemUpdate{
		{ID: "second-wind", Fields: map[string]any{character.PathUsesValue: 1}},
		{ID: "action-surge", Fields: map[string]any{character.PathUsesValue: 2}},
	}, updates)
}

func (s *OverridesTestSuite) TestRecoverers_AllPointAtOverrides() {
	o := s.overrides(rest.DefaultSettings())
	recoverers := o.Recoverers()

	s.Same(o, recoverers.HitPoints)
	s.Same(o, recoverers.HitDice)
	s.Same(o, recoverers.Resources)
	s.Same(o, recoverers.Spells)
	s.Same(o, recoverers.ItemUses)
}

func TestOverridesSuite(t *testing.T) {
	suite.Run(t, new(OverridesTestSuite))
}

func TestOverrides_MultipliersReflectSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	o, err := rest.NewOverrides(rest.DefaultSettings(), rest.Recoverers{
		HitPoints: mockrest.NewMockHitPointRecoverer(ctrl),
		HitDice:   mockrest.NewMockHitDiceRecoverer(ctrl),
		Resources: mockrest.NewMockResourceRecoverer(ctrl),
		Spells:    mockrest.NewMockSpellRecoverer(ctrl),
		ItemUses:  mockrest.NewMockItemUsesRecoverer(ctrl),
	})
	require.NoError(t, err)

	m := o.Multipliers()
	assert.Equal(t, 0.0, m.HitPoints)
	assert.Equal(t, 0.5, m.HitDice)
	assert.Equal(t, rest.RoundingDown, m.Rounding)
	assert.Equal(t, 1.0, m.Spells)
	assert.Equal(t, rest.DefaultSettings(), o.Settings())
}
