package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/cache"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// StickyNoteService maintains the singleton sticky note. Reads go through
// the Redis cache when one is configured; the service works without it.
type StickyNoteService struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewStickyNoteService creates a new sticky note service
func NewStickyNoteService(db *gorm.DB, c *cache.RedisCache) *StickyNoteService {
	return &StickyNoteService{db: db, cache: c}
}

// Get returns the note, creating an empty one on first access
func (s *StickyNoteService) Get(ctx context.Context) (*models.StickyNote, error) {
	var cached models.StickyNote
	if err := s.cache.Get(ctx, cache.StickyNoteKey, &cached); err == nil {
		return &cached, nil
	}

	var note models.StickyNote
	err := s.db.WithContext(ctx).Order("id ASC").First(&note).Error
	if err != nil {
		if !database.IsRecordNotFoundError(err) {
			return nil, errors.Wrap(err, "failed to get sticky note")
		}
		note = models.StickyNote{LastModified: time.Now()}
		if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
			return nil, errors.Wrap(err, "failed to create sticky note")
		}
	}

	_ = s.cache.Set(ctx, cache.StickyNoteKey, &note, time.Hour)
	return &note, nil
}

// Save overwrites the note's content and stamps LastModified
func (s *StickyNoteService) Save(ctx context.Context, content string) (*models.StickyNote, error) {
	note, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	note.Content = content
	note.LastModified = time.Now()
	if err := s.db.WithContext(ctx).Save(note).Error; err != nil {
		return nil, errors.Wrap(err, "failed to save sticky note")
	}

	_ = s.cache.Set(ctx, cache.StickyNoteKey, note, time.Hour)
	return note, nil
}
