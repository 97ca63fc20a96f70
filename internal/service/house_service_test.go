package service

import (
	"context"
	"testing"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLastMember(t *testing.T) {
	ctx := context.Background()

	count := 1
	houses := &mockHouseStore{
		memberCountFn: func(ctx context.Context, houseID int64) (int, error) {
			return count, nil
		},
	}

	svc := NewHouseService(nil, houses, &mockTaskStore{}, &mockRestrictionStore{})

	last, err := svc.IsLastMember(ctx, 42)
	require.NoError(t, err)
	assert.True(t, last)

	count = 3
	last, err = svc.IsLastMember(ctx, 42)
	require.NoError(t, err)
	assert.False(t, last)
}

func TestJoinHouse(t *testing.T) {
	ctx := context.Background()

	var joined [2]int64
	houses := &mockHouseStore{
		getByIDFn: func(ctx context.Context, id int64) (*domain.House, error) {
			if id != 42 {
				return nil, store.ErrHouseNotFound
			}
			return &domain.House{ID: 42, Name: "the lake house"}, nil
		},
		addMemberFn: func(ctx context.Context, houseID, userID int64) error {
			joined = [2]int64{houseID, userID}
			return nil
		},
	}

	svc := NewHouseService(nil, houses, &mockTaskStore{}, &mockRestrictionStore{})

	require.NoError(t, svc.JoinHouse(ctx, 42, 7))
	assert.Equal(t, [2]int64{42, 7}, joined)

	err := svc.JoinHouse(ctx, 99, 7)
	assert.ErrorIs(t, err, store.ErrHouseNotFound)
}

func TestCreateHouseRejectsBadNames(t *testing.T) {
	ctx := context.Background()
	svc := NewHouseService(nil, &mockHouseStore{}, &mockTaskStore{}, &mockRestrictionStore{})

	// Validation fails before any store or transaction is touched, so the
	// nil *sql.DB is never dereferenced.
	_, err := svc.CreateHouse(ctx, "    ", 7)
	assert.ErrorIs(t, err, domain.ErrEmptyHouseName)

	_, err = svc.CreateHouse(ctx, "a name that is clearly much too long", 7)
	assert.ErrorIs(t, err, domain.ErrHouseNameTooLong)
}

func TestListDelegation(t *testing.T) {
	ctx := context.Background()

	all := []domain.House{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	houses := &mockHouseStore{
		listFn: func(ctx context.Context) ([]domain.House, error) { return all, nil },
		listForUserFn: func(ctx context.Context, userID int64) ([]domain.House, error) {
			return all[:1], nil
		},
		listToJoinFn: func(ctx context.Context, userID int64) ([]domain.House, error) {
			return all[1:], nil
		},
		listMembersFn: func(ctx context.Context, houseID int64) ([]domain.User, error) {
			return []domain.User{{ID: 7, Username: "benl"}}, nil
		},
	}

	svc := NewHouseService(nil, houses, &mockTaskStore{}, &mockRestrictionStore{})

	got, err := svc.ListHouses(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	mine, err := svc.ListUserHouses(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, all[:1], mine)

	joinable, err := svc.ListHousesToJoin(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, all[1:], joinable)

	members, err := svc.ListMembers(ctx, 42)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "benl", members[0].Username)
}
