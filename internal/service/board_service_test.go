package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"gridboard/internal/model"
	"gridboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	args := m.Called(ctx, name)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) CreateIfAbsent(ctx context.Context, name string) (*model.User, error) {
	args := m.Called(ctx, name)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) ListAll(ctx context.Context) ([]model.Board, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Board, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	args := m.Called(ctx, id)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) FindByOwnerAndName(ctx context.Context, ownerID int64, name string) (*model.Board, error) {
	args := m.Called(ctx, ownerID, name)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) FindByOwnerAndNameExcluding(ctx context.Context, ownerID int64, name string, excludeID int64) (*model.Board, error) {
	args := m.Called(ctx, ownerID, name, excludeID)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testState(ch string) string {
	return strings.Repeat(ch, model.StateLength)
}

func TestCreateOrUpdate_InsertsWhenAbsent(t *testing.T) {
	// Arrange
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	alice := &model.User{ID: 1, Name: "alice"}
	users.On("CreateIfAbsent", mock.Anything, "alice").Return(alice, nil)
	boards.On("FindByOwnerAndName", mock.Anything, int64(1), "life").Return(nil, nil)
	boards.On("Create", mock.Anything, mock.AnythingOfType("*model.Board")).Return(nil)

	// Act
	created, err := svc.CreateOrUpdate(context.Background(), testState("0"), "life", "alice")

	// Assert
	assert.NoError(t, err)
	assert.True(t, created)
	boards.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		return b.BoardName == "life" && b.OwnerID == 1 && b.BoardState == testState("0")
	}))
	boards.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	users.AssertExpectations(t)
	boards.AssertExpectations(t)
}

func TestCreateOrUpdate_OverwritesWhenPresent(t *testing.T) {
	// Arrange
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	alice := &model.User{ID: 1, Name: "alice"}
	stale := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &model.Board{ID: 5, BoardName: "life", BoardState: testState("0"), OwnerID: 1, CreatedTime: stale}

	users.On("CreateIfAbsent", mock.Anything, "alice").Return(alice, nil)
	boards.On("FindByOwnerAndName", mock.Anything, int64(1), "life").Return(existing, nil)
	boards.On("Update", mock.Anything, mock.AnythingOfType("*model.Board")).Return(nil)

	// Act
	created, err := svc.CreateOrUpdate(context.Background(), testState("1"), "life", "alice")

	// Assert: same row updated, state replaced, timestamp refreshed
	assert.NoError(t, err)
	assert.False(t, created)
	boards.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		return b.ID == 5 && b.BoardState == testState("1") && b.CreatedTime.After(stale)
	}))
	boards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	boards.AssertExpectations(t)
}

func TestCreateOrUpdate_SameNameDifferentOwnerInserts(t *testing.T) {
	// Arrange: board names are unique per owner, not globally. "life"
	// already exists under alice; bob creating his own "life" must insert a
	// fresh row, because the lookup is scoped to bob's id.
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	bob := &model.User{ID: 2, Name: "bob"}
	users.On("CreateIfAbsent", mock.Anything, "bob").Return(bob, nil)
	boards.On("FindByOwnerAndName", mock.Anything, int64(2), "life").Return(nil, nil)
	boards.On("Create", mock.Anything, mock.AnythingOfType("*model.Board")).Return(nil)

	// Act
	created, err := svc.CreateOrUpdate(context.Background(), testState("1"), "life", "bob")

	// Assert: a create, not an overwrite of alice's board
	assert.NoError(t, err)
	assert.True(t, created)
	boards.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		return b.BoardName == "life" && b.OwnerID == 2
	}))
	boards.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	boards.AssertExpectations(t)
}

func TestCreateOrUpdate_AbsorbsInsertRace(t *testing.T) {
	// Arrange: the lookup misses but a concurrent request wins the insert;
	// the unique violation is absorbed into an update of the winner's row.
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	alice := &model.User{ID: 1, Name: "alice"}
	winner := &model.Board{ID: 6, BoardName: "life", BoardState: testState("0"), OwnerID: 1}

	users.On("CreateIfAbsent", mock.Anything, "alice").Return(alice, nil)
	boards.On("FindByOwnerAndName", mock.Anything, int64(1), "life").Return(nil, nil).Once()
	boards.On("Create", mock.Anything, mock.AnythingOfType("*model.Board")).Return(gorm.ErrDuplicatedKey)
	boards.On("FindByOwnerAndName", mock.Anything, int64(1), "life").Return(winner, nil).Once()
	boards.On("Update", mock.Anything, mock.AnythingOfType("*model.Board")).Return(nil)

	// Act
	created, err := svc.CreateOrUpdate(context.Background(), testState("1"), "life", "alice")

	// Assert
	assert.NoError(t, err)
	assert.False(t, created)
	boards.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		return b.ID == 6 && b.BoardState == testState("1")
	}))
	boards.AssertExpectations(t)
}

func TestReplace_BoardNotFound(t *testing.T) {
	// Arrange
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	boards.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	// Act
	err := svc.Replace(context.Background(), 99, testState("0"), "life", "alice")

	// Assert
	assert.ErrorIs(t, err, service.ErrBoardNotFound)
	users.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
}

func TestReplace_Conflict(t *testing.T) {
	// Arrange: a different board of the same user already holds the name
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	alice := &model.User{ID: 1, Name: "alice"}
	target := &model.Board{ID: 5, BoardName: "old", BoardState: testState("0"), OwnerID: 1}
	sibling := &model.Board{ID: 6, BoardName: "life", BoardState: testState("0"), OwnerID: 1}

	boards.On("GetByID", mock.Anything, int64(5)).Return(target, nil)
	users.On("CreateIfAbsent", mock.Anything, "alice").Return(alice, nil)
	boards.On("FindByOwnerAndNameExcluding", mock.Anything, int64(1), "life", int64(5)).Return(sibling, nil)

	// Act
	err := svc.Replace(context.Background(), 5, testState("1"), "life", "alice")

	// Assert: rejected and nothing written
	assert.ErrorIs(t, err, service.ErrNameConflict)
	boards.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReplace_SelfConflictDoesNotTrigger(t *testing.T) {
	// Arrange: unchanged (owner, name); the exclusion of the target's own id
	// keeps a no-op update from being rejected.
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	alice := &model.User{ID: 1, Name: "alice"}
	stale := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	target := &model.Board{ID: 5, BoardName: "life", BoardState: testState("0"), OwnerID: 1, CreatedTime: stale}

	boards.On("GetByID", mock.Anything, int64(5)).Return(target, nil)
	users.On("CreateIfAbsent", mock.Anything, "alice").Return(alice, nil)
	boards.On("FindByOwnerAndNameExcluding", mock.Anything, int64(1), "life", int64(5)).Return(nil, nil)
	boards.On("Update", mock.Anything, mock.AnythingOfType("*model.Board")).Return(nil)

	// Act
	err := svc.Replace(context.Background(), 5, testState("1"), "life", "alice")

	// Assert
	assert.NoError(t, err)
	boards.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		return b.ID == 5 && b.BoardState == testState("1") && b.CreatedTime.After(stale)
	}))
}

func TestReplace_OwnerChange(t *testing.T) {
	// Arrange: the payload names a different user, who is created on demand
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	bob := &model.User{ID: 2, Name: "bob"}
	target := &model.Board{ID: 5, BoardName: "life", BoardState: testState("0"), OwnerID: 1}

	boards.On("GetByID", mock.Anything, int64(5)).Return(target, nil)
	users.On("CreateIfAbsent", mock.Anything, "bob").Return(bob, nil)
	boards.On("FindByOwnerAndNameExcluding", mock.Anything, int64(2), "life", int64(5)).Return(nil, nil)
	boards.On("Update", mock.Anything, mock.AnythingOfType("*model.Board")).Return(nil)

	// Act
	err := svc.Replace(context.Background(), 5, testState("0"), "life", "bob")

	// Assert
	assert.NoError(t, err)
	boards.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(b *model.Board) bool {
		return b.OwnerID == 2
	}))
}

func TestReplace_StoreLevelRaceSurfacesAsConflict(t *testing.T) {
	// Arrange: pre-check passes but the constraint fires at write time
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	alice := &model.User{ID: 1, Name: "alice"}
	target := &model.Board{ID: 5, BoardName: "old", BoardState: testState("0"), OwnerID: 1}

	boards.On("GetByID", mock.Anything, int64(5)).Return(target, nil)
	users.On("CreateIfAbsent", mock.Anything, "alice").Return(alice, nil)
	boards.On("FindByOwnerAndNameExcluding", mock.Anything, int64(1), "life", int64(5)).Return(nil, nil)
	boards.On("Update", mock.Anything, mock.AnythingOfType("*model.Board")).Return(gorm.ErrDuplicatedKey)

	// Act
	err := svc.Replace(context.Background(), 5, testState("1"), "life", "alice")

	// Assert
	assert.ErrorIs(t, err, service.ErrNameConflict)
}

func TestDelete(t *testing.T) {
	// Arrange
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	target := &model.Board{ID: 5, BoardName: "life", BoardState: testState("0"), OwnerID: 1}
	boards.On("GetByID", mock.Anything, int64(5)).Return(target, nil)
	boards.On("Delete", mock.Anything, int64(5)).Return(nil)

	// Act
	err := svc.Delete(context.Background(), 5)

	// Assert
	assert.NoError(t, err)
	boards.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	// Arrange
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	boards.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	// Act
	err := svc.Delete(context.Background(), 99)

	// Assert
	assert.ErrorIs(t, err, service.ErrBoardNotFound)
	boards.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteAllForUser(t *testing.T) {
	// Arrange
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	alice := &model.User{ID: 1, Name: "alice"}
	owned := []model.Board{
		{ID: 3, BoardName: "a", OwnerID: 1},
		{ID: 4, BoardName: "b", OwnerID: 1},
		{ID: 5, BoardName: "c", OwnerID: 1},
	}

	users.On("FindByName", mock.Anything, "alice").Return(alice, nil)
	boards.On("ListByOwner", mock.Anything, int64(1)).Return(owned, nil)
	boards.On("Delete", mock.Anything, int64(3)).Return(nil)
	boards.On("Delete", mock.Anything, int64(4)).Return(nil)
	boards.On("Delete", mock.Anything, int64(5)).Return(nil)

	// Act
	err := svc.DeleteAllForUser(context.Background(), "alice")

	// Assert: every owned board removed, user row untouched
	assert.NoError(t, err)
	boards.AssertNumberOfCalls(t, "Delete", 3)
}

func TestDeleteAllForUser_UnknownUser(t *testing.T) {
	// Arrange
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	users.On("FindByName", mock.Anything, "nobody").Return(nil, nil)

	// Act
	err := svc.DeleteAllForUser(context.Background(), "nobody")

	// Assert: the lookup must not create the user as a side effect
	assert.ErrorIs(t, err, service.ErrUserNotFound)
	users.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	boards.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestDeleteAllForUser_PartialFailureSurfaces(t *testing.T) {
	// Arrange: deletion is best-effort with no wrapping transaction; the
	// first failing delete aborts the loop and its error surfaces.
	users := new(MockUserRepository)
	boards := new(MockBoardRepository)
	svc := service.NewBoardService(users, boards)

	alice := &model.User{ID: 1, Name: "alice"}
	owned := []model.Board{
		{ID: 3, BoardName: "a", OwnerID: 1},
		{ID: 4, BoardName: "b", OwnerID: 1},
	}

	users.On("FindByName", mock.Anything, "alice").Return(alice, nil)
	boards.On("ListByOwner", mock.Anything, int64(1)).Return(owned, nil)
	boards.On("Delete", mock.Anything, int64(3)).Return(assert.AnError)

	// Act
	err := svc.DeleteAllForUser(context.Background(), "alice")

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
	boards.AssertNotCalled(t, "Delete", mock.Anything, int64(4))
}
