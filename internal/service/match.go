package service

import (
	"context"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/repository"
)

type matchService struct {
	userRepo repository.UserRepository
}

func NewMatchService(userRepo repository.UserRepository) MatchService {
	return &matchService{userRepo: userRepo}
}

func (s *matchService) ListAvailable(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListAvailable(ctx)
}

func (s *matchService) MatchBySkills(ctx context.Context, skills string) ([]domain.User, error) {
	wanted := domain.SplitSkills(skills)
	if len(wanted) == 0 {
		return s.userRepo.ListAvailable(ctx)
	}
	return s.userRepo.SearchBySkills(ctx, wanted)
}
