package api

import (
	"context"
	"database/sql"
	"errors"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/service"
	"github.com/BenjaminLindeen/RoomHub/internal/service/auth"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// Function-field mocks so each test configures only the calls it expects.

type mockHouseService struct {
	createHouseFn      func(ctx context.Context, name string, creatorID int64) (*domain.House, error)
	getHouseFn         func(ctx context.Context, houseID int64) (*domain.House, error)
	listHousesFn       func(ctx context.Context) ([]domain.House, error)
	listHousesToJoinFn func(ctx context.Context, userID int64) ([]domain.House, error)
	listUserHousesFn   func(ctx context.Context, userID int64) ([]domain.House, error)
	listMembersFn      func(ctx context.Context, houseID int64) ([]domain.User, error)
	joinHouseFn        func(ctx context.Context, houseID, userID int64) error
	leaveHouseFn       func(ctx context.Context, houseID, userID int64) error
	isLastMemberFn     func(ctx context.Context, houseID int64) (bool, error)
}

var _ service.HouseService = (*mockHouseService)(nil)

func (m *mockHouseService) CreateHouse(ctx context.Context, name string, creatorID int64) (*domain.House, error) {
	return m.createHouseFn(ctx, name, creatorID)
}

func (m *mockHouseService) GetHouse(ctx context.Context, houseID int64) (*domain.House, error) {
	return m.getHouseFn(ctx, houseID)
}

func (m *mockHouseService) ListHouses(ctx context.Context) ([]domain.House, error) {
	return m.listHousesFn(ctx)
}

func (m *mockHouseService) ListHousesToJoin(ctx context.Context, userID int64) ([]domain.House, error) {
	return m.listHousesToJoinFn(ctx, userID)
}

func (m *mockHouseService) ListUserHouses(ctx context.Context, userID int64) ([]domain.House, error) {
	return m.listUserHousesFn(ctx, userID)
}

func (m *mockHouseService) ListMembers(ctx context.Context, houseID int64) ([]domain.User, error) {
	return m.listMembersFn(ctx, houseID)
}

func (m *mockHouseService) JoinHouse(ctx context.Context, houseID, userID int64) error {
	return m.joinHouseFn(ctx, houseID, userID)
}

func (m *mockHouseService) LeaveHouse(ctx context.Context, houseID, userID int64) error {
	return m.leaveHouseFn(ctx, houseID, userID)
}

func (m *mockHouseService) IsLastMember(ctx context.Context, houseID int64) (bool, error) {
	return m.isLastMemberFn(ctx, houseID)
}

type mockTaskService struct {
	assignTaskFn     func(ctx context.Context, houseID int64, name string, assigneeID int64, dueDate string) (*domain.Task, error)
	listTasksFn      func(ctx context.Context, houseID int64) ([]domain.Task, error)
	calendarEventsFn func(ctx context.Context, houseID int64) ([]service.CalendarEvent, error)
	editTaskFn       func(ctx context.Context, houseID, taskID int64, name string, assigneeID int64, dueDate string) error
	deleteTaskFn     func(ctx context.Context, houseID, taskID int64) error
}

var _ service.TaskService = (*mockTaskService)(nil)

func (m *mockTaskService) AssignTask(
	ctx context.Context,
	houseID int64,
	name string,
	assigneeID int64,
	dueDate string,
) (*domain.Task, error) {
	return m.assignTaskFn(ctx, houseID, name, assigneeID, dueDate)
}

func (m *mockTaskService) ListTasks(ctx context.Context, houseID int64) ([]domain.Task, error) {
	return m.listTasksFn(ctx, houseID)
}

func (m *mockTaskService) CalendarEvents(ctx context.Context, houseID int64) ([]service.CalendarEvent, error) {
	return m.calendarEventsFn(ctx, houseID)
}

func (m *mockTaskService) EditTask(
	ctx context.Context,
	houseID, taskID int64,
	name string,
	assigneeID int64,
	dueDate string,
) error {
	return m.editTaskFn(ctx, houseID, taskID, name, assigneeID, dueDate)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, houseID, taskID int64) error {
	return m.deleteTaskFn(ctx, houseID, taskID)
}

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

type mockJWTService struct {
	generateTokenFn          func(ctx context.Context, userID int64) (string, error)
	validateTokenFn          func(ctx context.Context, tokenString string) (*auth.Claims, error)
	generateRefreshTokenFn   func(ctx context.Context, userID int64) (string, error)
	validateRefreshTokenFn   func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

var _ auth.JWTService = (*mockJWTService)(nil)

func (m *mockJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	if m.generateTokenFn != nil {
		return m.generateTokenFn(ctx, userID)
	}
	return "access-token", nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidToken
}

func (m *mockJWTService) GenerateRefreshToken(ctx context.Context, userID int64) (string, error) {
	if m.generateRefreshTokenFn != nil {
		return m.generateRefreshTokenFn(ctx, userID)
	}
	return "refresh-token", nil
}

func (m *mockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.validateRefreshTokenFn != nil {
		return m.validateRefreshTokenFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidToken
}

type mockPasswordVerifier struct {
	compareFn func(hashedPassword, password string) error
}

var _ auth.PasswordVerifier = (*mockPasswordVerifier)(nil)

func (m *mockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.compareFn != nil {
		return m.compareFn(hashedPassword, password)
	}
	return errors.New("no comparison configured")
}
