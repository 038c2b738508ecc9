package integration_test

import (
	"context"
	"log"

	"github.com/evently/event-booking-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

// BaseSuite starts one Postgres container per suite and exposes the
// repositories wired against it. Tests create their own rows and never
// assume a particular database state beyond the migrations.
type BaseSuite struct {
	suite.Suite
	db          *pgxpool.Pool
	dbContainer *PostgresContainer

	users       *repository.PostgresUserRepository
	venues      *repository.PostgresVenueRepository
	caterings   *repository.PostgresCateringRepository
	decorations *repository.PostgresDecorationRepository
	cars        *repository.PostgresCarRepository
	promos      *repository.PostgresPromoRepository
	bookings    *repository.PostgresBookingRepository
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := getDbContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}

	s.dbContainer = postgresContainer

	pool, err := pgxpool.New(ctx, postgresContainer.ConnectionString)
	if err != nil {
		s.T().Fatalf("failed to create connection pool: %s", err)
	}

	s.db = pool
	s.users = repository.NewPostgresUserRepository(pool)
	s.venues = repository.NewPostgresVenueRepository(pool)
	s.caterings = repository.NewPostgresCateringRepository(pool)
	s.decorations = repository.NewPostgresDecorationRepository(pool)
	s.cars = repository.NewPostgresCarRepository(pool)
	s.promos = repository.NewPostgresPromoRepository(pool)
	s.bookings = repository.NewPostgresBookingRepository(pool)
}

func (s *BaseSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if err := testcontainers.TerminateContainer(s.dbContainer.Container.Container); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}
