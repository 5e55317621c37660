package service

import (
	"context"
	"encoding/json"
	"sync"

	"sql-arena/internal/cache"
	"sql-arena/internal/domain"
	"sql-arena/internal/logger"

	"go.uber.org/zap"
)

// ProfileService owns the single durable mutable record in the system. The
// persisted copy is read once at construction; afterwards the in-memory
// record is authoritative and every mutation writes the whole record back
// through to the store. There are no partial-field writes.
//
// Persisting is best-effort: a failed write is logged and the in-memory
// mutation stands. A failed load degrades silently to the default profile.
type ProfileService struct {
	mu      sync.Mutex
	store   domain.Store
	profile domain.UserProfile
}

// NewProfileService loads the persisted profile, or starts from the default
// one when nothing usable is stored.
func NewProfileService(ctx context.Context, store domain.Store) *ProfileService {
	s := &ProfileService{
		store:   store,
		profile: domain.DefaultProfile(),
	}

	saved, err := store.Get(ctx, cache.ProfileKey)
	if err != nil {
		if err != domain.ErrKeyNotFound {
			logger.Get().Warn("Failed to load saved profile, starting fresh", zap.Error(err))
		}
		return s
	}

	var p domain.UserProfile
	if err := json.Unmarshal([]byte(saved), &p); err != nil {
		logger.Get().Warn("Saved profile is unreadable, starting fresh", zap.Error(err))
		return s
	}
	if !p.SelectedDifficulty.IsValid() {
		p.SelectedDifficulty = domain.DifficultyIntermediate
	}
	s.profile = p
	return s
}

// Profile returns a snapshot of the current profile.
func (s *ProfileService) Profile() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetIdentity sets the learner's name and difficulty at onboarding. Score
// and streak are deliberately preserved so a returning learner who re-enters
// their name keeps their progress.
func (s *ProfileService) SetIdentity(ctx context.Context, name string, difficulty domain.Difficulty) domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Name = name
	s.profile.SelectedDifficulty = difficulty
	s.persist(ctx)
	return s.profile
}

// RecordCorrectAnswer adds the awarded points and advances the streak. The
// difficulty is not changed by this operation.
func (s *ProfileService) RecordCorrectAnswer(ctx context.Context, points int) domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.CurrentScore += points
	s.profile.Streak++
	s.persist(ctx)
	return s.profile
}

// LevelUp transitions the difficulty to its successor. At Expert this is a
// no-op, not an error.
func (s *ProfileService) LevelUp(ctx context.Context) domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.profile.SelectedDifficulty.Next()
	if next != s.profile.SelectedDifficulty {
		s.profile.SelectedDifficulty = next
		s.persist(ctx)
	}
	return s.profile
}

// Reset returns the profile to its default state and removes the persisted
// copy.
func (s *ProfileService) Reset(ctx context.Context) domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = domain.DefaultProfile()
	if err := s.store.Delete(ctx, cache.ProfileKey); err != nil {
		logger.Get().Warn("Failed to clear persisted profile", zap.Error(err))
	}
	return s.profile
}

// persist mirrors the whole record to the store. Callers hold the mutex.
func (s *ProfileService) persist(ctx context.Context) {
	data, err := json.Marshal(s.profile)
	if err != nil {
		logger.Get().Error("Failed to serialize profile", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, cache.ProfileKey, string(data), 0); err != nil {
		logger.Get().Warn("Failed to persist profile", zap.Error(err))
	}
}
