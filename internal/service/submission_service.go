package service

import (
	"context"

	"github.com/formdrop/backend/internal/model"
)

// SubmissionService defines the business logic for contact-form submissions.
type SubmissionService interface {
	// Create validates, stores and returns a new submission. The sub.ID and
	// timestamps will be populated by the implementation.
	Create(ctx context.Context, sub *model.Submission) error

	// List returns submissions newest first according to the given options.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error)

	// DeleteByID removes a submission. Returns repository.ErrNotFound when
	// no such record exists.
	DeleteByID(ctx context.Context, id string) error
}
