//go:build integration

// AngelaMos | 2026
// integration_test.go

package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/migrations"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("fisherfans"),
		postgres.WithUsername("fisherfans"),
		postgres.WithPassword("fisherfans"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sqlx.ConnectContext(ctx, "pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(32)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Apply(ctx, db.DB))
	return db
}

func seedOccurrence(t *testing.T, db *sqlx.DB, capacity int) (tripID, occurrenceID string, userIDs []string) {
	t.Helper()
	ctx := context.Background()

	owner := "00000000-0000-0000-0000-000000000001"
	boatID := "00000000-0000-0000-0000-0000000000b1"
	tripID = "00000000-0000-0000-0000-0000000000a1"
	occurrenceID = "00000000-0000-0000-0000-0000000000c1"

	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, nom, prenom, date_naissance, email, telephone, adresse,
		                   code_postal, ville, statut, password_hash)
		VALUES ($1, 'Le Bihan', 'Yann', '1980-01-01', 'yann@example.com', '0600000000',
		        'Port', '29000', 'Quimper', 'particulier', 'x')`, owner)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		INSERT INTO boats (id, user_id, nom, marque, annee, permis_requis, type,
		                   caution_eur, capacite_max, couchages, port_attache_ville,
		                   lat, lon, motorisation, puissance_cv)
		VALUES ($1, $2, 'Ar Vag', 'Jeanneau', 2015, 'cotier', 'open', 300, $3, 0,
		        'Quimper', 47.9, -4.1, 'inboard', 90)`, boatID, owner, capacity)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		INSERT INTO trips (id, owner_id, boat_id, titre, type_sortie, type_tarif,
		                   nb_passagers, prix_eur)
		VALUES ($1, $2, $3, 'Lieu jaune', 'journaliere', 'par_personne', $4, 60)`,
		tripID, owner, boatID, capacity)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		INSERT INTO occurrences (id, trip_id, date_debut, date_fin, heure_depart, heure_fin)
		VALUES ($1, $2, '2026-07-01', '2026-07-02', '2026-07-01 06:00', '2026-07-01 12:00')`,
		occurrenceID, tripID)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("00000000-0000-0000-0000-1000000000%02d", i)
		_, err = db.ExecContext(ctx, `
			INSERT INTO users (id, nom, prenom, date_naissance, email, telephone, adresse,
			                   code_postal, ville, statut, password_hash)
			VALUES ($1, 'Client', 'Test', '1990-01-01', $2, '0600000000', 'Rue',
			        '29000', 'Quimper', 'particulier', 'x')`,
			id, fmt.Sprintf("client%d@example.com", i))
		require.NoError(t, err)
		userIDs = append(userIDs, id)
	}

	return tripID, occurrenceID, userIDs
}

func TestReserveHoldsCapacityUnderConcurrency(t *testing.T) {
	const capacity = 12
	const attempts = 50

	db := setupTestDB(t)
	tripID, occurrenceID, userIDs := seedOccurrence(t, db, capacity)
	repo := NewRepository(db)
	ctx := context.Background()

	errFull := errors.New("full")
	check := func(booked int) error {
		if booked+1 > capacity {
			return errFull
		}
		return nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := &Booking{
				ID:           fmt.Sprintf("00000000-0000-0000-0000-2000000000%02d", i),
				TripID:       tripID,
				UserID:       userIDs[i%len(userIDs)],
				OccurrenceID: occurrenceID,
				DateRetenue:  time.Now().UTC(),
				NbPlaces:     1,
				PrixTotalEur: 60,
			}

			err := repo.Reserve(ctx, b, check)
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return
			}
			if !errors.Is(err, errFull) {
				t.Errorf("reserve: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, capacity, accepted)

	booked, err := repo.TotalBookedPlaces(ctx, occurrenceID)
	require.NoError(t, err)
	assert.Equal(t, capacity, booked)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-999999999999")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
