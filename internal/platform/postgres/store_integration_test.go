package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/platform/postgres"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
	"github.com/BenjaminLindeen/RoomHub/internal/testutils"
)

// These tests run against a real database and skip when DATABASE_URL is not
// set. Each test runs in a transaction that is rolled back afterwards.

func integrationDB(t *testing.T) *sql.DB {
	t.Helper()
	if !testutils.IsIntegrationTestEnvironment() {
		t.Skip("skipping integration test, DATABASE_URL not set")
	}
	db, err := testutils.GetTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createTestUser(t *testing.T, tx *sql.Tx, email string) *domain.User {
	t.Helper()
	users := postgres.NewUserStore(tx, bcrypt.MinCost)
	user, err := domain.NewUser("tester", email, "integration-password")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func createTestHouse(t *testing.T, tx *sql.Tx, name string) *domain.House {
	t.Helper()
	houses := postgres.NewHouseStore(tx)
	house, err := domain.NewHouse(name)
	require.NoError(t, err)
	require.NoError(t, houses.Create(context.Background(), house))
	return house
}

func TestUserStoreIntegration(t *testing.T) {
	db := integrationDB(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		users := postgres.NewUserStore(tx, bcrypt.MinCost)

		user := createTestUser(t, tx, "alice@example.com")
		require.NotZero(t, user.ID)

		got, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, got.HashedPassword)
		assert.NotEqual(t, "integration-password", got.HashedPassword)

		dup, err := domain.NewUser("other", "alice@example.com", "another-long-password")
		require.NoError(t, err)
		err = users.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrEmailExists)

		_, err = users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestHouseStoreIntegration(t *testing.T) {
	db := integrationDB(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		houses := postgres.NewHouseStore(tx)

		user := createTestUser(t, tx, "bob@example.com")
		house := createTestHouse(t, tx, "Maple Street")
		require.NotZero(t, house.ID)

		require.NoError(t, houses.AddMember(ctx, house.ID, user.ID))
		err := houses.AddMember(ctx, house.ID, user.ID)
		assert.ErrorIs(t, err, store.ErrAlreadyMember)

		isMember, err := houses.IsMember(ctx, house.ID, user.ID)
		require.NoError(t, err)
		assert.True(t, isMember)

		count, err := houses.MemberCount(ctx, house.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		members, err := houses.ListMembers(ctx, house.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, user.ID, members[0].ID)

		mine, err := houses.ListForUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)

		joinable, err := houses.ListToJoin(ctx, user.ID)
		require.NoError(t, err)
		for _, h := range joinable {
			assert.NotEqual(t, house.ID, h.ID)
		}

		dup, err := domain.NewHouse("Maple Street")
		require.NoError(t, err)
		err = houses.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrHouseNameExists)

		require.NoError(t, houses.RemoveMember(ctx, house.ID, user.ID))
		err = houses.RemoveMember(ctx, house.ID, user.ID)
		assert.ErrorIs(t, err, store.ErrMembershipNotFound)
	})
}

func TestTaskStoreIntegration(t *testing.T) {
	db := integrationDB(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		tasks := postgres.NewTaskStore(tx)

		user := createTestUser(t, tx, "carol@example.com")
		house := createTestHouse(t, tx, "The Burrow")

		task, err := domain.NewTask(house.ID, "Take out trash", user.ID, "2026-09-01T18:00")
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))
		require.NotZero(t, task.ID)

		got, err := tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Take out trash", got.Name)

		got.Name = "Take out recycling"
		require.NoError(t, tasks.Update(ctx, got))

		listed, err := tasks.ListByHouse(ctx, house.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "Take out recycling", listed[0].Name)

		require.NoError(t, tasks.Delete(ctx, task.ID))
		err = tasks.Delete(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestRestrictionStoreIntegration(t *testing.T) {
	db := integrationDB(t)

	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		restrictions := postgres.NewRestrictionStore(tx)

		user := createTestUser(t, tx, "dave@example.com")
		house := createTestHouse(t, tx, "Hill House")

		first := &domain.Restriction{
			HouseID: house.ID,
			UserID:  user.ID,
			Dietary: "vegetarian",
		}
		require.NoError(t, restrictions.Upsert(ctx, first))

		// A second upsert for the same member replaces the row.
		second := &domain.Restriction{
			HouseID:  house.ID,
			UserID:   user.ID,
			Dietary:  "vegan",
			Schedule: "away weekends",
		}
		require.NoError(t, restrictions.Upsert(ctx, second))

		listed, err := restrictions.ListByHouse(ctx, house.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "vegan", listed[0].Dietary)
		assert.Equal(t, "away weekends", listed[0].Schedule)

		require.NoError(t, restrictions.DeleteByHouse(ctx, house.ID))
		listed, err = restrictions.ListByHouse(ctx, house.ID)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}
