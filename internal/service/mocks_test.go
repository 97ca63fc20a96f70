package service

import (
	"context"
	"database/sql"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// Hand-rolled store mocks with overridable function fields. Methods a test
// does not configure panic loudly rather than silently succeeding.

type mockHouseStore struct {
	createFn       func(ctx context.Context, house *domain.House) error
	getByIDFn      func(ctx context.Context, id int64) (*domain.House, error)
	getByNameFn    func(ctx context.Context, name string) (*domain.House, error)
	listFn         func(ctx context.Context) ([]domain.House, error)
	listForUserFn  func(ctx context.Context, userID int64) ([]domain.House, error)
	listToJoinFn   func(ctx context.Context, userID int64) ([]domain.House, error)
	deleteFn       func(ctx context.Context, id int64) error
	addMemberFn    func(ctx context.Context, houseID, userID int64) error
	removeMemberFn func(ctx context.Context, houseID, userID int64) error
	listMembersFn  func(ctx context.Context, houseID int64) ([]domain.User, error)
	memberCountFn  func(ctx context.Context, houseID int64) (int, error)
	isMemberFn     func(ctx context.Context, houseID, userID int64) (bool, error)
}

var _ store.HouseStore = (*mockHouseStore)(nil)

func (m *mockHouseStore) Create(ctx context.Context, house *domain.House) error {
	return m.createFn(ctx, house)
}

func (m *mockHouseStore) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockHouseStore) GetByName(ctx context.Context, name string) (*domain.House, error) {
	return m.getByNameFn(ctx, name)
}

func (m *mockHouseStore) List(ctx context.Context) ([]domain.House, error) {
	return m.listFn(ctx)
}

func (m *mockHouseStore) ListForUser(ctx context.Context, userID int64) ([]domain.House, error) {
	return m.listForUserFn(ctx, userID)
}

func (m *mockHouseStore) ListToJoin(ctx context.Context, userID int64) ([]domain.House, error) {
	return m.listToJoinFn(ctx, userID)
}

func (m *mockHouseStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockHouseStore) AddMember(ctx context.Context, houseID, userID int64) error {
	return m.addMemberFn(ctx, houseID, userID)
}

func (m *mockHouseStore) RemoveMember(ctx context.Context, houseID, userID int64) error {
	return m.removeMemberFn(ctx, houseID, userID)
}

func (m *mockHouseStore) ListMembers(ctx context.Context, houseID int64) ([]domain.User, error) {
	return m.listMembersFn(ctx, houseID)
}

func (m *mockHouseStore) MemberCount(ctx context.Context, houseID int64) (int, error) {
	return m.memberCountFn(ctx, houseID)
}

func (m *mockHouseStore) IsMember(ctx context.Context, houseID, userID int64) (bool, error) {
	return m.isMemberFn(ctx, houseID, userID)
}

func (m *mockHouseStore) WithTx(tx *sql.Tx) store.HouseStore { return m }

type mockTaskStore struct {
	createFn        func(ctx context.Context, task *domain.Task) error
	getByIDFn       func(ctx context.Context, id int64) (*domain.Task, error)
	listByHouseFn   func(ctx context.Context, houseID int64) ([]domain.Task, error)
	updateFn        func(ctx context.Context, task *domain.Task) error
	deleteFn        func(ctx context.Context, id int64) error
	deleteByHouseFn func(ctx context.Context, houseID int64) error
}

var _ store.TaskStore = (*mockTaskStore)(nil)

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	return m.createFn(ctx, task)
}

func (m *mockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTaskStore) ListByHouse(ctx context.Context, houseID int64) ([]domain.Task, error) {
	return m.listByHouseFn(ctx, houseID)
}

func (m *mockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	return m.updateFn(ctx, task)
}

func (m *mockTaskStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTaskStore) DeleteByHouse(ctx context.Context, houseID int64) error {
	return m.deleteByHouseFn(ctx, houseID)
}

func (m *mockTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return m }

type mockUserStore struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

var _ store.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }

type mockRestrictionStore struct {
	upsertFn        func(ctx context.Context, restriction *domain.Restriction) error
	listByHouseFn   func(ctx context.Context, houseID int64) ([]domain.Restriction, error)
	deleteByHouseFn func(ctx context.Context, houseID int64) error
}

var _ store.RestrictionStore = (*mockRestrictionStore)(nil)

func (m *mockRestrictionStore) Upsert(ctx context.Context, restriction *domain.Restriction) error {
	return m.upsertFn(ctx, restriction)
}

func (m *mockRestrictionStore) ListByHouse(ctx context.Context, houseID int64) ([]domain.Restriction, error) {
	return m.listByHouseFn(ctx, houseID)
}

func (m *mockRestrictionStore) DeleteByHouse(ctx context.Context, houseID int64) error {
	return m.deleteByHouseFn(ctx, houseID)
}

func (m *mockRestrictionStore) WithTx(tx *sql.Tx) store.RestrictionStore { return m }
