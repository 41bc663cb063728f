package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/logger"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/repository"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/storage"

	"github.com/google/uuid"
)

type profileService struct {
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
	photos    storage.PhotoStorage
}

func NewProfileService(userRepo repository.UserRepository, groupRepo repository.GroupRepository, photos storage.PhotoStorage) ProfileService {
	return &profileService{
		userRepo:  userRepo,
		groupRepo: groupRepo,
		photos:    photos,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID int32) (*domain.User, []domain.Group, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	groups, err := s.groupRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, groups, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID int32, update ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = update.Name
	user.Email = update.Email
	user.Skills = update.Skills
	user.LinkedIn = update.LinkedIn
	user.GitHub = update.GitHub
	user.Education = update.Education

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *profileService) ToggleAvailability(ctx context.Context, userID int32) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}

	next := !user.Availability
	if err := s.userRepo.SetAvailability(ctx, userID, next); err != nil {
		return false, err
	}
	logger.Info("Availability toggled", "user_id", userID, "available", next)
	return next, nil
}

func (s *profileService) AttachPhoto(ctx context.Context, userID int32, ext string, photo io.Reader) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "jpg", "jpeg", "png", "gif":
	default:
		return "", fmt.Errorf("unsupported photo type: %q", ext)
	}

	name := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	if err := s.photos.SaveFile(name, photo); err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}

	old := user.Photo
	user.Photo = &name
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Don't leave an orphaned file if the record update failed.
		_ = s.photos.DeleteFile(name)
		return "", err
	}
	if old != nil {
		_ = s.photos.DeleteFile(*old)
	}

	logger.Info("Profile photo updated", "user_id", userID, "photo", name)
	return name, nil
}

func (s *profileService) OpenPhoto(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.photos.ReadFile(name)
}
