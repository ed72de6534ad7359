package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/repositories/characters/mocks"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
	ctx          context.Context
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testCharacter() *character.Character {
	maxKi := 4
	return &character.Character{
		ID:      "char-1",
		OwnerID: "owner-1",
		Name:    "Mirela",
		Level:   4,
		HP:      character.HitPoints{Value: 12, Max: 30},
		Resources: map[string]*character.Resource{
			"primary": {Label: "Ki", Value: 1, Max: &maxKi, ShortRest: true},
		},
		Items: []*character.Item{
			{ID: "monk", Type: character.ItemTypeClass, HitDice: &character.ClassHitDice{Denomination: 8, Levels: 4, Used: 2}},
		},
	}
}

func (s *RedisRepoTestSuite) marshal(c *character.Character) string {
	data, err := json.Marshal(c)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	char := s.testCharacter()
	s.timeProvider.EXPECT().Now().Return(s.now)

	stored := char.Clone()
	stored.CreatedAt = s.now
	stored.UpdatedAt = s.now

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectSet("character:char-1", s.marshal(stored), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:characters", "char-1").SetVal(1)

	err := s.repo.Create(s.ctx, char)
	s.NoError(err)
	s.Equal(s.now, char.CreatedAt)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	s.mock.ExpectExists("character:char-1").SetVal(1)

	err := s.repo.Create(s.ctx, s.testCharacter())
	s.Error(err)

	var alreadyExists *dnderr.Error
	s.ErrorAs(err, &alreadyExists)
	s.Equal(dnderr.CodeAlreadyExists, alreadyExists.Code)
}

func (s *RedisRepoTestSuite) TestCreate_InputValidation() {
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))

	char := s.testCharacter()
	char.OwnerID = ""
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, char)))
}

func (s *RedisRepoTestSuite) TestGet() {
	char := s.testCharacter()
	s.mock.ExpectGet("character:char-1").SetVal(s.marshal(char))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(char, got)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("character:missing").RedisNil()

	_, err := s.repo.Get(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_RedisError() {
	s.mock.ExpectGet("character:char-1").SetErr(errors.New("connection refused"))

	_, err := s.repo.Get(s.ctx, "char-1")
	s.Error(err)
	s.False(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate_KeepsCreationTime() {
	created := s.now.Add(-48 * time.Hour)
	existing := s.testCharacter()
	existing.CreatedAt = created

	char := s.testCharacter()
	char.HP.Value = 30
	s.timeProvider.EXPECT().Now().Return(s.now)

	stored := char.Clone()
	stored.CreatedAt = created
	stored.UpdatedAt = s.now

	s.mock.ExpectGet("character:char-1").SetVal(s.marshal(existing))
	s.mock.ExpectSet("character:char-1", s.marshal(stored), 0).SetVal("OK")

	s.Require().NoError(s.repo.Update(s.ctx, char))
	s.Equal(created, char.CreatedAt)
	s.Equal(s.now, char.UpdatedAt)
}

func (s *RedisRepoTestSuite) TestUpdate_MovesOwnerIndex() {
	existing := s.testCharacter()
	char := s.testCharacter()
	char.OwnerID = "owner-2"
	s.timeProvider.EXPECT().Now().Return(s.now)

	stored := char.Clone()
	stored.UpdatedAt = s.now

	s.mock.ExpectGet("character:char-1").SetVal(s.marshal(existing))
	s.mock.ExpectSet("character:char-1", s.marshal(stored), 0).SetVal("OK")
	s.mock.ExpectSRem("owner:owner-1:characters", "char-1").SetVal(1)
	s.mock.ExpectSAdd("owner:owner-2:characters", "char-1").SetVal(1)

	s.NoError(s.repo.Update(s.ctx, char))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	s.mock.ExpectGet("character:char-1").RedisNil()

	err := s.repo.Update(s.ctx, s.testCharacter())
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetByOwner_SkipsMissingDocuments() {
	s.mock.MatchExpectationsInOrder(false)

	first := s.testCharacter()
	second := s.testCharacter()
	second.ID = "char-2"
	second.Name = "Thorin"

	s.mock.ExpectSMembers("owner:owner-1:characters").SetVal([]string{"char-1", "char-2", "char-3"})
	s.mock.ExpectGet("character:char-1").SetVal(s.marshal(first))
	s.mock.ExpectGet("character:char-2").SetVal(s.marshal(second))
	s.mock.ExpectGet("character:char-3").RedisNil()

	got, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectGet("character:char-1").SetVal(s.marshal(s.testCharacter()))
	s.mock.ExpectDel("character:char-1").SetVal(1)
	s.mock.ExpectSRem("owner:owner-1:characters", "char-1").SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, "char-1"))
}
