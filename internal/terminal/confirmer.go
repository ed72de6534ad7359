// Package terminal asks for long rest confirmation on a text terminal
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// Confirmer reads answers line by line:
//
//	y        finish the rest
//	n        cancel
//	d        toggle the new day answer
//	r [die]  spend a hit die (largest available without a size)
type Confirmer struct {
	lines <-chan string
	out   io.Writer
}

// NewConfirmer reads from in and prompts on out
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
	}()

	return &Confirmer{lines: lines, out: out}
}

func (c *Confirmer) ConfirmLongRest(ctx context.Context, req *rest.ConfirmationRequest) (*rest.Confirmation, error) {
	if req == nil || req.Character == nil {
		return nil, dnderr.InvalidArgument("confirmation request needs a character")
	}

	newDay := req.NewDay
	for {
		c.prompt(req, newDay)

		var line string
		select {
		case <-ctx.Done():
			return nil, dnderr.Wrap(ctx.Err(), "long rest prompt abandoned")
		case l, ok := <-c.lines:
			if !ok {
				// end of input counts as walking away
				return nil, rest.ErrRestCancelled
			}
			line = l
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "y", "yes":
			return &rest.Confirmation{NewDay: newDay}, nil
		case "n", "no", "q":
			return nil, rest.ErrRestCancelled
		case "d":
			if req.PromptNewDay {
				newDay = !newDay
			}
		case "r":
			c.roll(ctx, req, fields[1:])
		default:
			fmt.Fprintf(c.out, "Unknown answer %q\n", line)
		}
	}
}

func (c *Confirmer) roll(ctx context.Context, req *rest.ConfirmationRequest, args []string) {
	if !req.CanRoll || req.RollHitDie == nil {
		fmt.Fprintln(c.out, "Hit dice are rolled automatically for this rest.")
		return
	}

	denomination := 0
	if len(args) > 0 {
		d, err := strconv.Atoi(strings.TrimPrefix(args[0], "d"))
		if err != nil {
			fmt.Fprintf(c.out, "Invalid hit die %q\n", args[0])
			return
		}
		denomination = d
	}

	result, err := req.RollHitDie(ctx, denomination)
	if err != nil {
		fmt.Fprintf(c.out, "Could not roll: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Rolled d%d: %d %+d, healed %d\n", result.Denomination, result.Roll, result.Bonus, result.Healed)
}

func (c *Confirmer) prompt(req *rest.ConfirmationRequest, newDay bool) {
	ch := req.Character
	fmt.Fprintf(c.out, "%s: HP %d/%d, hit dice %d/%d\n", ch.Name, ch.HP.Value, ch.HP.Max, ch.HitDice(), ch.MaxHitDice())
	if req.PromptNewDay {
		fmt.Fprintf(c.out, "New day: %t (d to toggle)\n", newDay)
	}
	if req.CanRoll {
		fmt.Fprint(c.out, "Roll a hit die with r [d6|d8|d10|d12]. ")
	}
	fmt.Fprint(c.out, "Finish the rest? [y/n] ")
}

var _ rest.Confirmer = (*Confirmer)(nil)
