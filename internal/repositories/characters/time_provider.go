package characters

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/dnd-long-rest/internal/repositories/characters TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

// NewTimeProvider returns a TimeProvider backed by the wall clock
func NewTimeProvider() TimeProvider {
	return &realTimeProvider{}
}

func (p *realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
