package service

import (
	"context"
	"strings"
	"time"

	"github.com/formdrop/backend/internal/model"
	"github.com/formdrop/backend/internal/repository"
	"github.com/google/uuid"
)

// submissionServiceImpl is the production implementation of SubmissionService.
type submissionServiceImpl struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService creates a SubmissionService backed by the given repository.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionServiceImpl{repo: repo}
}

// Create trims all text fields, rejects a submission whose name or email is
// empty after trimming, and persists with CreatedAt == UpdatedAt.
// A rejected submission is never persisted.
func (s *submissionServiceImpl) Create(ctx context.Context, sub *model.Submission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Company = strings.TrimSpace(sub.Company)
	sub.Message = strings.TrimSpace(sub.Message)

	if sub.Name == "" {
		return ErrNameRequired
	}
	if sub.Email == "" {
		return ErrEmailRequired
	}

	now := time.Now().UTC()
	sub.ID = uuid.NewString()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	return s.repo.Save(ctx, sub)
}

// List returns submissions ordered newest first.
func (s *submissionServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error) {
	return s.repo.List(ctx, opts)
}

// DeleteByID removes the submission with the given identifier.
func (s *submissionServiceImpl) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
