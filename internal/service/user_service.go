package service

import (
	"context"
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/repository"
	"couple_coach_backend/internal/util"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"gorm.io/gorm"
)

// ProfileUpdate carries the editable account fields.
type ProfileUpdate struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// PreferenceUpdate carries the self-described profile fields the coach context
// falls back to when assessment data is missing.
type PreferenceUpdate struct {
	ProfileName    string `json:"profileName"`
	LoveLanguage   string `json:"loveLanguage"`
	Hobbies        string `json:"hobbies"`
	StressResponse string `json:"stressResponse"`
	Values         string `json:"values"`
	ReminderHour   *int   `json:"reminderHour"`
}

type UserService struct {
	UserRepo       *repository.UserRepository
	PreferenceRepo *repository.PreferenceRepository
	Storage        *StorageService
}

func NewUserService(userRepo *repository.UserRepository, preferenceRepo *repository.PreferenceRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		PreferenceRepo: preferenceRepo,
		Storage:        storage,
	}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Avatar != "" {
		user.Avatar = update.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetPreferences returns an empty preference row when the user never saved one.
func (s *UserService) GetPreferences(userID uint) (*model.UserPreference, error) {
	pref, err := s.PreferenceRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.UserPreference{UserID: userID, ReminderHour: 20}, nil
		}
		return nil, err
	}
	return pref, nil
}

func (s *UserService) UpdatePreferences(userID uint, update PreferenceUpdate) (*model.UserPreference, error) {
	pref, err := s.GetPreferences(userID)
	if err != nil {
		return nil, err
	}

	pref.ProfileName = update.ProfileName
	pref.LoveLanguage = update.LoveLanguage
	pref.Hobbies = update.Hobbies
	pref.StressResponse = update.StressResponse
	pref.Values = update.Values
	if update.ReminderHour != nil {
		pref.ReminderHour = *update.ReminderHour
	}

	if err := s.PreferenceRepo.Upsert(pref); err != nil {
		return nil, err
	}
	return pref, nil
}

func (s *UserService) UploadAvatar(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := filepath.Ext(filename)
	objectName := fmt.Sprintf("avatars/%d_%d%s", userID, time.Now().UnixNano(), ext)

	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}
	return url, nil
}
