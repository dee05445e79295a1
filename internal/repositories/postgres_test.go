package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRoundsPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	schema, err := os.ReadFile("../../migrations/0001_init.up.sql")
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// roundFixture is a seeded lobby/game/round chain with memberCount players.
type roundFixture struct {
	lobbyID  uuid.UUID
	gameID   uuid.UUID
	roundID  uuid.UUID
	promptID uuid.UUID
	users    []uuid.UUID
	members  []uuid.UUID
}

func seedRoundFixture(t *testing.T, db *sqlx.DB, memberCount int) roundFixture {
	t.Helper()

	f := roundFixture{
		lobbyID:  uuid.New(),
		gameID:   uuid.New(),
		roundID:  uuid.New(),
		promptID: uuid.New(),
	}

	_, err := db.Exec(`INSERT INTO lobbies (lobby_id, name) VALUES ($1, 'game night')`, f.lobbyID)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO games (game_id, lobby_id) VALUES ($1, $2)`, f.gameID, f.lobbyID)
	require.NoError(t, err)

	for i := 0; i < memberCount; i++ {
		userID := uuid.New()
		membershipID := uuid.New()
		memberID := uuid.New()

		_, err = db.Exec(`INSERT INTO users (user_id, name, email) VALUES ($1, $2, $3)`,
			userID, fmt.Sprintf("player-%d", i), fmt.Sprintf("%s@example.com", userID))
		require.NoError(t, err)

		_, err = db.Exec(`INSERT INTO lobby_memberships (membership_id, lobby_id, user_id) VALUES ($1, $2, $3)`,
			membershipID, f.lobbyID, userID)
		require.NoError(t, err)

		_, err = db.Exec(`INSERT INTO game_memberships (member_id, game_id, user_id, lobby_membership_id) VALUES ($1, $2, $3, $4)`,
			memberID, f.gameID, userID, membershipID)
		require.NoError(t, err)

		f.users = append(f.users, userID)
		f.members = append(f.members, memberID)
	}

	_, err = db.Exec(`INSERT INTO prompts (prompt_id, text, approved) VALUES ($1, 'best excuse for being late', TRUE)`,
		f.promptID)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO game_rounds (round_id, game_id, position) VALUES ($1, $2, 1)`,
		f.roundID, f.gameID)
	require.NoError(t, err)

	return f
}

func seedEntry(t *testing.T, db *sqlx.DB, roundID, memberID uuid.UUID, content string, createdAt time.Time) uuid.UUID {
	t.Helper()

	entryID := uuid.New()
	_, err := db.Exec(`INSERT INTO game_round_entries (entry_id, round_id, member_id, entry, created_at) VALUES ($1, $2, $3, $4, $5)`,
		entryID, roundID, memberID, content, createdAt)
	require.NoError(t, err)
	return entryID
}

// forceStarted backdates the round so the transition checks hold regardless
// of how much wall clock the container setup consumed.
func forceStarted(t *testing.T, db *sqlx.DB, roundID, promptID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(`
		UPDATE game_rounds
		SET created_at = NOW() - INTERVAL '3 minutes',
		    started_at = NOW() - INTERVAL '2 minutes',
		    prompt_id = $2
		WHERE round_id = $1
	`, roundID, promptID)
	require.NoError(t, err)
}

func forceFulfilled(t *testing.T, db *sqlx.DB, roundID, promptID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(`
		UPDATE game_rounds
		SET created_at = NOW() - INTERVAL '3 minutes',
		    started_at = NOW() - INTERVAL '2 minutes',
		    fulfilled_at = NOW() - INTERVAL '1 minute',
		    prompt_id = $2
		WHERE round_id = $1
	`, roundID, promptID)
	require.NoError(t, err)
}
