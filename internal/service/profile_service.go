package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"jobify/api/internal/ids"
	"jobify/api/internal/models"
	"jobify/api/internal/repository"
	"jobify/api/internal/storage"
)

type ProfileService struct {
	users   *repository.UserRepository
	avatars *storage.AvatarStore
	log     zerolog.Logger
}

func NewProfileService(users *repository.UserRepository, avatars *storage.AvatarStore, log zerolog.Logger) *ProfileService {
	return &ProfileService{
		users:   users,
		avatars: avatars,
		log:     log,
	}
}

type UpdateProfileInput struct {
	UserID   string
	Name     string
	LastName string
	Email    string
	Location string
	Avatar   *multipart.FileHeader
}

// Update rewrites the caller's profile. A new avatar is uploaded before the
// record update and the previous object is removed after it; if the record
// update fails the uploaded object is left behind rather than rolled back.
func (s *ProfileService) Update(ctx context.Context, input UpdateProfileInput) error {
	current, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if other, err := s.users.FindByEmail(ctx, email); err == nil && other.ID != input.UserID {
		return ErrEmailTaken
	} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	updated := models.User{
		ID:       input.UserID,
		Name:     input.Name,
		LastName: input.LastName,
		Email:    email,
		Location: input.Location,
	}

	var uploadedKey string
	if input.Avatar != nil {
		key, url, err := s.uploadAvatar(ctx, input.UserID, input.Avatar)
		if err != nil {
			return err
		}
		uploadedKey = key
		updated.AvatarKey = &key
		updated.AvatarURL = &url
	}

	if err := s.users.UpdateProfile(ctx, updated); err != nil {
		return err
	}

	if uploadedKey != "" && current.AvatarKey != nil && *current.AvatarKey != uploadedKey {
		if err := s.avatars.Remove(ctx, *current.AvatarKey); err != nil {
			s.log.Warn().Err(err).Str("key", *current.AvatarKey).Msg("remove previous avatar failed")
		}
	}

	return nil
}

func (s *ProfileService) uploadAvatar(ctx context.Context, userID string, header *multipart.FileHeader) (string, string, error) {
	file, err := header.Open()
	if err != nil {
		return "", "", fmt.Errorf("open avatar upload: %w", err)
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%s%s", userID, ids.New(), strings.ToLower(path.Ext(header.Filename)))
	contentType := header.Header.Get("Content-Type")

	if err := s.avatars.Upload(ctx, key, file, header.Size, contentType); err != nil {
		return "", "", err
	}
	return key, s.avatars.PublicURL(key), nil
}
