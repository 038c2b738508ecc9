package integration_test

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

// SessionsSuite verifies the redis-backed session round trip the way the
// server stores identities: the user id as a string plus an admin flag.
type SessionsSuite struct {
	suite.Suite
	cacheContainer *RedisContainer
	client         *redis.Client
	sessionManager *scs.SessionManager
}

func TestSessionsSuite(t *testing.T) {
	suite.Run(t, new(SessionsSuite))
}

func (s *SessionsSuite) SetupSuite() {
	ctx := context.Background()

	cacheContainer, err := getCacheContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}

	s.cacheContainer = cacheContainer
	s.client = redis.NewClient(&redis.Options{Addr: cacheContainer.ConnectionString})

	s.sessionManager = scs.New()
	s.sessionManager.Store = goredisstore.New(s.client)
	s.sessionManager.IdleTimeout = 20 * time.Minute
}

func (s *SessionsSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
	if err := testcontainers.TerminateContainer(s.cacheContainer.Container); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

func (s *SessionsSuite) TestSessionRoundTrip() {
	userId := uuid.New()

	ctx, err := s.sessionManager.Load(context.Background(), "")
	s.Require().NoError(err)

	s.sessionManager.Put(ctx, "userID", userId.String())
	s.sessionManager.Put(ctx, "isAdmin", true)

	token, _, err := s.sessionManager.Commit(ctx)
	s.Require().NoError(err)
	s.Require().NotEmpty(token)

	// A fresh context with the token sees the stored identity.
	ctx, err = s.sessionManager.Load(context.Background(), token)
	s.Require().NoError(err)

	s.Equal(userId.String(), s.sessionManager.GetString(ctx, "userID"))
	s.True(s.sessionManager.GetBool(ctx, "isAdmin"))
}

func (s *SessionsSuite) TestDestroyRemovesSession() {
	ctx, err := s.sessionManager.Load(context.Background(), "")
	s.Require().NoError(err)

	s.sessionManager.Put(ctx, "userID", uuid.NewString())

	token, _, err := s.sessionManager.Commit(ctx)
	s.Require().NoError(err)

	ctx, err = s.sessionManager.Load(context.Background(), token)
	s.Require().NoError(err)
	s.Require().NoError(s.sessionManager.Destroy(ctx))

	ctx, err = s.sessionManager.Load(context.Background(), token)
	s.Require().NoError(err)
	s.Empty(s.sessionManager.GetString(ctx, "userID"))
}
