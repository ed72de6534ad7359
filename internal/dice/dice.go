package dice

import (
	"log"
	"math/rand"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// RollResult is the outcome of one roll of count dice
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// Roll rolls count dice of the given size and adds bonus
func Roll(count, size, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice count %d", count)
	}

	if size < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice size %d", size)
	}

	total := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(size) + 1
		total += roll
		out[i] = roll
	}

	log.Println("Rolling", count, "d", size, ":", out, "total:", total, "bonus:", bonus)
	return &RollResult{
		Total:    total + bonus,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    size,
		RawTotal: total,
	}, nil
}
