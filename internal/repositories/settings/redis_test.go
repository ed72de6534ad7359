package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	ctx        context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient, rest.DefaultSettings())
	s.ctx = context.Background()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestGet_Defaults() {
	s.mock.ExpectHGetAll(Key).SetVal(map[string]string{})

	got, err := s.repo.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(rest.DefaultSettings(), got)
}

func (s *RedisRepoTestSuite) TestGet_OverlaysStoredValues() {
	s.mock.ExpectHGetAll(Key).SetVal(map[string]string{
		rest.SettingHitPoints:         "quarter",
		rest.SettingHitDiceBeforeRoll: "true",
		rest.SettingHitDiceRounding:   "up",
		"recovery-mult-legacy":        "full",
	})

	got, err := s.repo.Get(s.ctx)
	s.Require().NoError(err)

	want := rest.DefaultSettings()
	want.HitPoints = rest.FractionQuarter
	want.RecoverHitDiceBeforeRoll = true
	want.HitDiceRounding = rest.RoundingUp
	s.Equal(want, got)
}

func (s *RedisRepoTestSuite) TestGet_BadStoredValueSurvivesUntilResolve() {
	s.mock.ExpectHGetAll(Key).SetVal(map[string]string{
		rest.SettingSpells: "most",
	})

	got, err := s.repo.Get(s.ctx)
	s.Require().NoError(err)
	s.True(dnderr.IsInvalidConfiguration(got.Validate()))
}

func (s *RedisRepoTestSuite) TestGet_RedisError() {
	s.mock.ExpectHGetAll(Key).SetErr(errors.New("connection refused"))

	_, err := s.repo.Get(s.ctx)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestSet() {
	s.mock.ExpectHSet(Key, rest.SettingHitDice, "full").SetVal(1)
	s.NoError(s.repo.Set(s.ctx, rest.SettingHitDice, "full"))

	err := s.repo.Set(s.ctx, "recovery-mult-legacy", "full")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestReset() {
	s.mock.ExpectDel(Key).SetVal(1)
	s.NoError(s.repo.Reset(s.ctx))
}
