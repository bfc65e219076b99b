package service

import (
	"context"
	"time"

	"gridboard/internal/model"
	"gridboard/internal/repository"
)

// BoardSummary is the listing projection. The 2500-character state is
// deliberately omitted to keep list responses small.
type BoardSummary struct {
	ID        int64   `json:"id"`
	BoardName string  `json:"boardName"`
	CreatedAt float64 `json:"createdAt"`
	UserName  string  `json:"userName"`
}

// BoardDetail is the single-board projection. It carries the full state but
// no id or timestamp; the asymmetry with BoardSummary is intentional and the
// two projections are kept as separate types for that reason.
type BoardDetail struct {
	Board     string `json:"board"`
	BoardName string `json:"boardName"`
	UserName  string `json:"userName"`
}

// UserBoards is the per-user listing.
type UserBoards struct {
	UserName string         `json:"userName"`
	Boards   []BoardSummary `json:"boards"`
}

// BoardQueries serves the read side: listings ordered by last write
// (newest first) and the detail lookup.
type BoardQueries struct {
	users  repository.UserRepositoryInterface
	boards repository.BoardRepositoryInterface
}

type BoardQueriesInterface interface {
	ListAll(ctx context.Context) ([]BoardSummary, error)
	Detail(ctx context.Context, id int64) (*BoardDetail, error)
	ListForUser(ctx context.Context, userName string) (*UserBoards, error)
}

var _ BoardQueriesInterface = (*BoardQueries)(nil)

func NewBoardQueries(users repository.UserRepositoryInterface, boards repository.BoardRepositoryInterface) *BoardQueries {
	return &BoardQueries{users: users, boards: boards}
}

func (q *BoardQueries) ListAll(ctx context.Context) ([]BoardSummary, error) {
	boards, err := q.boards.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(boards), nil
}

func (q *BoardQueries) Detail(ctx context.Context, id int64) (*BoardDetail, error) {
	board, err := q.boards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	return &BoardDetail{
		Board:     board.BoardState,
		BoardName: board.BoardName,
		UserName:  board.Owner.Name,
	}, nil
}

func (q *BoardQueries) ListForUser(ctx context.Context, userName string) (*UserBoards, error) {
	user, err := q.users.FindByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	boards, err := q.boards.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &UserBoards{UserName: user.Name, Boards: summarize(boards)}, nil
}

func summarize(boards []model.Board) []BoardSummary {
	summaries := make([]BoardSummary, 0, len(boards))
	for _, board := range boards {
		summaries = append(summaries, BoardSummary{
			ID:        board.ID,
			BoardName: board.BoardName,
			CreatedAt: unixSeconds(board.CreatedTime),
			UserName:  board.Owner.Name,
		})
	}
	return summaries
}

// unixSeconds renders a timestamp as fractional seconds since the epoch,
// the wire format clients expect for createdAt.
func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
