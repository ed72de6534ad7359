package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

// Client is the slice of the D&D 5e API the long rest tools need
type Client interface {
	ListClasses() ([]*Class, error)
	GetClass(key string) (*Class, error)
}

// Class is a playable class and its hit die
type Class struct {
	Key    string
	Name   string
	HitDie int
}
