package repository

import (
	"context"
	"errors"
	"time"

	"gridboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardRepository struct {
	db *gorm.DB
}

type BoardRepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.Board, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Board, error)
	GetByID(ctx context.Context, id int64) (*model.Board, error)
	FindByOwnerAndName(ctx context.Context, ownerID int64, name string) (*model.Board, error)
	FindByOwnerAndNameExcluding(ctx context.Context, ownerID int64, name string, excludeID int64) (*model.Board, error)
	Create(ctx context.Context, board *model.Board) error
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id int64) error
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// ListAll returns every board, most recently written first.
func (r *BoardRepository) ListAll(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Preload("Owner").Order("created_time DESC").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Preload("Owner").Where("owner_id = ?", ownerID).
		Order("created_time DESC").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) FindByOwnerAndName(ctx context.Context, ownerID int64, name string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).Where("owner_id = ? AND board_name = ?", ownerID, name).First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByOwnerAndNameExcluding is the conflict probe for update-by-id: it
// must not match the board being updated, otherwise a no-op rename would be
// rejected as a self-conflict.
func (r *BoardRepository) FindByOwnerAndNameExcluding(ctx context.Context, ownerID int64, name string, excludeID int64) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND board_name = ? AND id <> ?", ownerID, name, excludeID).
		First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Create inserts the board and stamps created_time. The id is assigned by
// the database sequence.
func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	board.CreatedTime = time.Now().UTC()
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(board).Error
}

// Update overwrites all columns of an existing row.
func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	tx := r.db.WithContext(ctx).Omit(clause.Associations).Save(board)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete is idempotent at this level; whether a missing row is an error is
// the caller's call.
func (r *BoardRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Board{}, id).Error
}
