package service

import (
	"context"
	"log/slog"

	"feedreader/internal/domain"
)

// UserService handles account creation. Registration seeds the default
// reading lists so a fresh account lands on a working "Unread" view.
type UserService struct {
	users        UserRegistrationStore
	readingLists *ReadingListService
	logger       *slog.Logger
}

func NewUserService(users UserRegistrationStore, readingLists *ReadingListService, logger *slog.Logger) *UserService {
	return &UserService{users: users, readingLists: readingLists, logger: logger}
}

func (s *UserService) Register(ctx context.Context, email string, wordsPerMinute int) (*domain.User, error) {
	user := &domain.User{Email: email, WordsPerMinute: wordsPerMinute}
	if user.WordsPerMinute == 0 {
		user.WordsPerMinute = domain.DefaultWordsPerMinute
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.readingLists.CreateDefaults(ctx, user.ID); err != nil {
		return nil, err
	}

	s.logger.Info("registered user", "user_id", user.ID)
	return user, nil
}
