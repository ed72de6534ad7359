package core

import (
	"strings"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

const (
	// CustomIDSeparator is the character used to separate parts
	CustomIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for custom IDs
	MaxCustomIDLength = 100
)

// CustomID is a parsed component custom ID: domain:action[:target[:args...]]
type CustomID struct {
	// Domain is the command the component belongs to (e.g. "longrest")
	Domain string

	// Action is what the component does (e.g. "confirm", "roll")
	Action string

	// Target is usually the id of the pending interaction
	Target string

	Args []string
}

// NewCustomID creates a new CustomID
func NewCustomID(domain, action string) *CustomID {
	return &CustomID{
		Domain: domain,
		Action: action,
	}
}

// WithTarget sets the target
func (c *CustomID) WithTarget(target string) *CustomID {
	c.Target = target
	return c
}

// WithArgs adds arguments
func (c *CustomID) WithArgs(args ...string) *CustomID {
	c.Args = append(c.Args, args...)
	return c
}

// Encode converts the CustomID to a string
func (c *CustomID) Encode() (string, error) {
	parts := []string{c.Domain, c.Action}
	if c.Target != "" || len(c.Args) > 0 {
		parts = append(parts, c.Target)
	}
	parts = append(parts, c.Args...)

	for _, p := range parts {
		if strings.Contains(p, CustomIDSeparator) {
			return "", dnderr.InvalidArgumentf("custom ID part %q contains the separator", p)
		}
	}

	result := strings.Join(parts, CustomIDSeparator)
	if len(result) > MaxCustomIDLength {
		return "", dnderr.InvalidArgumentf("custom ID exceeds maximum length of %d characters", MaxCustomIDLength)
	}

	return result, nil
}

// MustEncode is like Encode but panics on error
func (c *CustomID) MustEncode() string {
	result, err := c.Encode()
	if err != nil {
		panic(err)
	}
	return result
}

// ParseCustomID parses a custom ID string
func ParseCustomID(customID string) (*CustomID, error) {
	if customID == "" {
		return nil, dnderr.InvalidArgument("empty custom ID")
	}

	parts := strings.Split(customID, CustomIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, dnderr.InvalidArgumentf("invalid custom ID %q: expected at least domain:action", customID)
	}

	result := &CustomID{
		Domain: parts[0],
		Action: parts[1],
	}
	if len(parts) > 2 {
		result.Target = parts[2]
	}
	if len(parts) > 3 {
		result.Args = parts[3:]
	}

	return result, nil
}
