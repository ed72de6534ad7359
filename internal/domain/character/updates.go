package character

import (
	"strings"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// Field paths understood by Apply
const (
	PathHPValue   = "attributes.hp.value"
	PathHPTemp    = "attributes.hp.temp"
	PathHPTempMax = "attributes.hp.tempmax"
)

// Field paths understood by ApplyItemUpdates
const (
	PathUsesValue       = "uses.value"
	PathRechargeCharged = "recharge.charged"
	PathHitDiceUsed     = "hitDice.used"
)

// ResourcePath is the update path of a resource's current value
func ResourcePath(key string) string {
	return "resources." + key + ".value"
}

// SpellPath is the update path of a spell level's current slots
func SpellPath(key string) string {
	return "spells." + key + ".value"
}

// Updates maps a field path to its new value. A path appears at most once.
type Updates map[string]any

// Merge copies other into u, other wins on conflicts
func (u Updates) Merge(other Updates) Updates {
	if u == nil {
		u = make(Updates, len(other))
	}
	for path, value := range other {
		u[path] = value
	}
	return u
}

// ItemUpdate carries the new field values for one owned item
type ItemUpdate struct {
	ID     string         `json:"_id"`
	Fields map[string]any `json:"fields"`
}

// Apply writes every update onto the character. Nothing is written unless
// every path and value is valid.
func (c *Character) Apply(updates Updates) error {
	setters := make([]func(), 0, len(updates))
	for path, value := range updates {
		set, err := c.setter(path, value)
		if err != nil {
			return err
		}
		setters = append(setters, set)
	}

	for _, set := range setters {
		set()
	}
	return nil
}

func (c *Character) setter(path string, value any) (func(), error) {
	switch path {
	case PathHPValue, PathHPTemp, PathHPTempMax:
		n, err := toInt(path, value)
		if err != nil {
			return nil, err
		}
		return func() {
			switch path {
			case PathHPValue:
				c.HP.Value = n
			case PathHPTemp:
				c.HP.Temp = n
			default:
				c.HP.TempMax = n
			}
		}, nil
	}

	parts := strings.Split(path, ".")
	if len(parts) != 3 || parts[2] != "value" {
		return nil, dnderr.InvalidArgumentf("unknown update path '%s'", path)
	}

	n, err := toInt(path, value)
	if err != nil {
		return nil, err
	}

	switch parts[0] {
	case "resources":
		r := c.Resources[parts[1]]
		if r == nil {
			return nil, dnderr.NotFoundf("resource '%s' not found", parts[1]).
				WithMeta("character_id", c.ID)
		}
		return func() { r.Value = n }, nil
	case "spells":
		s := c.Spells[parts[1]]
		if s == nil {
			return nil, dnderr.NotFoundf("spell level '%s' not found", parts[1]).
				WithMeta("character_id", c.ID)
		}
		return func() { s.Value = n }, nil
	}

	return nil, dnderr.InvalidArgumentf("unknown update path '%s'", path)
}

// ApplyItemUpdates writes item scoped updates in order. Nothing is written
// unless every update is valid.
func (c *Character) ApplyItemUpdates(updates []ItemUpdate) error {
	var setters []func()
	for _, update := range updates {
		item := c.Item(update.ID)
		if item == nil {
			return dnderr.NotFoundf("item '%s' not found", update.ID).
				WithMeta("character_id", c.ID)
		}

		for path, value := range update.Fields {
			set, err := item.setter(path, value)
			if err != nil {
				return err
			}
			setters = append(setters, set)
		}
	}

	for _, set := range setters {
		set()
	}
	return nil
}

func (i *Item) setter(path string, value any) (func(), error) {
	switch path {
	case PathUsesValue:
		if i.Uses == nil {
			return nil, dnderr.InvalidArgumentf("item '%s' has no uses", i.ID)
		}
		n, err := toInt(path, value)
		if err != nil {
			return nil, err
		}
		return func() { i.Uses.Value = n }, nil
	case PathHitDiceUsed:
		if i.HitDice == nil {
			return nil, dnderr.InvalidArgumentf("item '%s' has no hit dice", i.ID)
		}
		n, err := toInt(path, value)
		if err != nil {
			return nil, err
		}
		return func() { i.HitDice.Used = n }, nil
	case PathRechargeCharged:
		if i.Recharge == nil {
			return nil, dnderr.InvalidArgumentf("item '%s' has no recharge", i.ID)
		}
		charged, ok := value.(bool)
		if !ok {
			return nil, dnderr.InvalidArgumentf("'%s' expects a bool, got %T", path, value)
		}
		return func() { i.Recharge.Charged = charged }, nil
	}

	return nil, dnderr.InvalidArgumentf("unknown item update path '%s'", path)
}

func toInt(path string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		// JSON decoded batches arrive as float64
		return int(v), nil
	}
	return 0, dnderr.InvalidArgumentf("'%s' expects a number, got %T", path, value)
}
