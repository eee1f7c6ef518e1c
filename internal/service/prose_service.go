package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/repository"
)

type ProseService interface {
	CreateProse(ctx context.Context, prose model.GuerillaProse) (*model.GuerillaProse, error)
	GetProse(ctx context.Context, id int64) (*model.GuerillaProse, error)
	ListProses(ctx context.Context) ([]model.GuerillaProse, error)
	ListProsesForLabel(ctx context.Context, label string) ([]model.GuerillaProse, error)
	ListProsesForUser(ctx context.Context, userID int64) ([]model.GuerillaProse, error)
}

type proseService struct {
	proseRepo repository.ProseRepository
}

func NewProseService(proseRepo repository.ProseRepository) ProseService {
	return &proseService{proseRepo: proseRepo}
}

func (s *proseService) CreateProse(ctx context.Context, prose model.GuerillaProse) (*model.GuerillaProse, error) {
	id, err := s.proseRepo.Create(ctx, &prose)
	if err != nil {
		return nil, err
	}

	prose.ID = id
	return &prose, nil
}

func (s *proseService) GetProse(ctx context.Context, id int64) (*model.GuerillaProse, error) {
	prose, err := s.proseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProseNotFound
		}

		return nil, err
	}

	return prose, nil
}

func (s *proseService) ListProses(ctx context.Context) ([]model.GuerillaProse, error) {
	return s.proseRepo.List(ctx)
}

func (s *proseService) ListProsesForLabel(ctx context.Context, label string) ([]model.GuerillaProse, error) {
	return s.proseRepo.ListByLabel(ctx, label)
}

func (s *proseService) ListProsesForUser(ctx context.Context, userID int64) ([]model.GuerillaProse, error) {
	return s.proseRepo.ListByUser(ctx, userID)
}
