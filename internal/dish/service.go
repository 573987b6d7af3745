package dish

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage is the object-storage collaborator that holds dish images.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

const defaultLanguage = "en"

// --------------------------------------------------
// Catalog fetch (per display language)
// --------------------------------------------------
func (s *Service) Catalog(ctx context.Context, language string) ([]Dish, error) {
	if language == "" {
		language = defaultLanguage
	}
	return s.repo.ListByLanguage(ctx, language)
}

func (s *Service) Get(ctx context.Context, language, id string) (*Dish, error) {
	if language == "" {
		language = defaultLanguage
	}
	return s.repo.GetByID(ctx, language, id)
}

// --------------------------------------------------
// Dish image upload (ADMIN)
// --------------------------------------------------
func (s *Service) UploadImage(
	ctx context.Context,
	dishID string,
	file multipart.File,
	filename string,
) (string, error) {

	if s.storage == nil {
		return "", errors.New("image storage not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"dishes/%s/%s%s",
		dishID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImageURL(ctx, dishID, url); err != nil {
		return "", err
	}

	return url, nil
}
