package service

import (
	"context"
	"errors"
	"time"

	"gridboard/internal/model"
	"gridboard/internal/repository"

	"gorm.io/gorm"
)

// BoardService implements the write protocols over the two stores: the
// create-or-update upsert keyed by (owner, boardName), the replace-by-id with
// its conflict check, and the delete operations.
type BoardService struct {
	users  repository.UserRepositoryInterface
	boards repository.BoardRepositoryInterface
}

type BoardServiceInterface interface {
	CreateOrUpdate(ctx context.Context, state, name, userName string) (created bool, err error)
	Replace(ctx context.Context, id int64, state, name, userName string) error
	Delete(ctx context.Context, id int64) error
	DeleteAllForUser(ctx context.Context, userName string) error
}

var _ BoardServiceInterface = (*BoardService)(nil)

func NewBoardService(users repository.UserRepositoryInterface, boards repository.BoardRepositoryInterface) *BoardService {
	return &BoardService{users: users, boards: boards}
}

// CreateOrUpdate inserts a new board or overwrites the existing one with the
// same (owner, boardName). Repeating the same call never creates a duplicate
// row; it only refreshes content and timestamp, so the endpoint is idempotent
// under retries.
func (s *BoardService) CreateOrUpdate(ctx context.Context, state, name, userName string) (bool, error) {
	user, err := s.users.CreateIfAbsent(ctx, userName)
	if err != nil {
		return false, err
	}

	existing, err := s.boards.FindByOwnerAndName(ctx, user.ID, name)
	if err != nil {
		return false, err
	}

	if existing == nil {
		board := &model.Board{
			BoardName:  name,
			BoardState: state,
			OwnerID:    user.ID,
		}
		err = s.boards.Create(ctx, board)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, err
		}
		// Lost an insert race against a concurrent call with the same
		// (owner, boardName); fall through to updating the winner's row.
		existing, err = s.boards.FindByOwnerAndName(ctx, user.ID, name)
		if err != nil {
			return false, err
		}
		if existing == nil {
			return false, gorm.ErrDuplicatedKey
		}
	}

	existing.BoardState = state
	existing.CreatedTime = time.Now().UTC()
	if err := s.boards.Update(ctx, existing); err != nil {
		return false, err
	}
	return false, nil
}

// Replace overwrites the board with the given id. The owner may change, and
// the target user is created on demand like in CreateOrUpdate. The conflict
// check excludes the board's own id so an unchanged (owner, name) pair is not
// rejected as a self-conflict.
func (s *BoardService) Replace(ctx context.Context, id int64, state, name, userName string) error {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if board == nil {
		return ErrBoardNotFound
	}

	user, err := s.users.CreateIfAbsent(ctx, userName)
	if err != nil {
		return err
	}

	conflict, err := s.boards.FindByOwnerAndNameExcluding(ctx, user.ID, name, id)
	if err != nil {
		return err
	}
	if conflict != nil {
		return ErrNameConflict
	}

	board.OwnerID = user.ID
	board.BoardName = name
	board.BoardState = state
	board.CreatedTime = time.Now().UTC()

	err = s.boards.Update(ctx, board)
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// A concurrent write slipped past the pre-check; the constraint in
		// the store is authoritative.
		return ErrNameConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrBoardNotFound
	default:
		return err
	}
}

// Delete removes a single board by id.
func (s *BoardService) Delete(ctx context.Context, id int64) error {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if board == nil {
		return ErrBoardNotFound
	}
	return s.boards.Delete(ctx, id)
}

// DeleteAllForUser removes every board owned by the named user. The user row
// itself survives; owners are append-only. Deletion is best-effort, one row
// at a time with no wrapping transaction, so a mid-sequence failure leaves a
// partially deleted set and surfaces the failing delete's error.
func (s *BoardService) DeleteAllForUser(ctx context.Context, userName string) error {
	user, err := s.users.FindByName(ctx, userName)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	boards, err := s.boards.ListByOwner(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, board := range boards {
		if err := s.boards.Delete(ctx, board.ID); err != nil {
			return err
		}
	}
	return nil
}
