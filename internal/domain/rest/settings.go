package rest

import (
	"strconv"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// Persisted setting keys
const (
	SettingHitPoints         = "recovery-mult-hitpoints"
	SettingHitDice           = "recovery-mult"
	SettingHitDiceBeforeRoll = "recover-hd-before-rest"
	SettingHitDiceRounding   = "recovery-rounding"
	SettingResources         = "recovery-mult-resources"
	SettingSpells            = "recovery-mult-spells"
	SettingOtherUses         = "recovery-mult-uses-others"
	SettingFeatUses          = "recovery-mult-uses-feats"
	SettingDailyUses         = "recovery-mult-day"
)

// SettingKeys lists every persisted setting in display order
var SettingKeys = []string{
	SettingHitPoints,
	SettingHitDice,
	SettingHitDiceBeforeRoll,
	SettingHitDiceRounding,
	SettingResources,
	SettingSpells,
	SettingOtherUses,
	SettingFeatUses,
	SettingDailyUses,
}

// Settings is the recovery configuration read once per rest. It is a value;
// With returns a modified copy.
type Settings struct {
	HitPoints                Fraction
	HitDice                  Fraction
	RecoverHitDiceBeforeRoll bool
	HitDiceRounding          Rounding
	Resources                Fraction
	Spells                   Fraction
	OtherUses                Fraction
	FeatUses                 Fraction
	DailyUses                Fraction
}

// DefaultSettings mirrors the defaults a fresh world starts with
func DefaultSettings() Settings {
	return Settings{
		HitPoints:                FractionNone,
		HitDice:                  FractionHalf,
		RecoverHitDiceBeforeRoll: false,
		HitDiceRounding:          RoundingDown,
		Resources:                FractionFull,
		Spells:                   FractionFull,
		OtherUses:                FractionFull,
		FeatUses:                 FractionFull,
		DailyUses:                FractionFull,
	}
}

// PreRecoverHitDice reports whether hit dice come back before the player may roll them.
// Full hit dice recovery always implies it because those dice are auto-rolled.
func (s Settings) PreRecoverHitDice() bool {
	return s.RecoverHitDiceBeforeRoll || s.HitDice == FractionFull
}

// AutoSpendHitDice reports whether hit dice are rolled automatically after confirmation
func (s Settings) AutoSpendHitDice() bool {
	return s.HitDice == FractionFull
}

// With returns a copy with one persisted key set. Fraction values are stored
// as given and only checked by Resolve, so a bad stored value still fails the rest.
func (s Settings) With(key, value string) (Settings, error) {
	switch key {
	case SettingHitPoints:
		s.HitPoints = Fraction(value)
	case SettingHitDice:
		s.HitDice = Fraction(value)
	case SettingHitDiceBeforeRoll:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return s, dnderr.InvalidConfigurationf("setting %s expects a boolean, got %q", key, value).
				WithMeta("setting", key)
		}
		s.RecoverHitDiceBeforeRoll = b
	case SettingHitDiceRounding:
		s.HitDiceRounding = Rounding(value)
	case SettingResources:
		s.Resources = Fraction(value)
	case SettingSpells:
		s.Spells = Fraction(value)
	case SettingOtherUses:
		s.OtherUses = Fraction(value)
	case SettingFeatUses:
		s.FeatUses = Fraction(value)
	case SettingDailyUses:
		s.DailyUses = Fraction(value)
	default:
		return s, dnderr.InvalidArgumentf("unknown setting '%s'", key).
			WithMeta("setting", key)
	}
	return s, nil
}

// Values returns the persisted form of every setting
func (s Settings) Values() map[string]string {
	return map[string]string{
		SettingHitPoints:         string(s.HitPoints),
		SettingHitDice:           string(s.HitDice),
		SettingHitDiceBeforeRoll: strconv.FormatBool(s.RecoverHitDiceBeforeRoll),
		SettingHitDiceRounding:   string(s.HitDiceRounding),
		SettingResources:         string(s.Resources),
		SettingSpells:            string(s.Spells),
		SettingOtherUses:         string(s.OtherUses),
		SettingFeatUses:          string(s.FeatUses),
		SettingDailyUses:         string(s.DailyUses),
	}
}

// Multipliers holds every fraction of a Settings value resolved to a number
type Multipliers struct {
	HitPoints float64
	HitDice   float64
	Rounding  Rounding
	Resources float64
	Spells    float64
	OtherUses float64
	FeatUses  float64
	DailyUses float64
}

// Resolve turns every fraction into a multiplier, failing on the first bad value
func (s Settings) Resolve() (*Multipliers, error) {
	if !s.HitDiceRounding.valid() {
		return nil, dnderr.InvalidConfigurationf("unable to parse hit dice rounding setting, got %q", string(s.HitDiceRounding)).
			WithMeta("setting", SettingHitDiceRounding)
	}

	m := &Multipliers{Rounding: s.HitDiceRounding}
	fields := []struct {
		key      string
		fraction Fraction
		target   *float64
	}{
		{SettingHitPoints, s.HitPoints, &m.HitPoints},
		{SettingHitDice, s.HitDice, &m.HitDice},
		{SettingResources, s.Resources, &m.Resources},
		{SettingSpells, s.Spells, &m.Spells},
		{SettingOtherUses, s.OtherUses, &m.OtherUses},
		{SettingFeatUses, s.FeatUses, &m.FeatUses},
		{SettingDailyUses, s.DailyUses, &m.DailyUses},
	}

	for _, f := range fields {
		v, err := Multiplier(f.fraction)
		if err != nil {
			return nil, dnderr.Wrapf(err, "invalid setting %s", f.key).
				WithMeta("setting", f.key)
		}
		*f.target = v
	}

	return m, nil
}

// Validate checks every value without building multipliers
func (s Settings) Validate() error {
	_, err := s.Resolve()
	return err
}
