// Package workflow implements the page-local application flow: the existence
// check that gates the form, submission, review listing and accept/reject.
// It holds no cached state of its own.
package workflow

import (
	"context"
	"fmt"

	"campusgig/internal/api"
	"campusgig/internal/models"
	"campusgig/internal/validator"
	"campusgig/pkg/apperrors"
)

type ApplicationWorkflow struct {
	client   *api.Client
	validate *validator.Validator
}

func NewApplicationWorkflow(client *api.Client, validate *validator.Validator) *ApplicationWorkflow {
	return &ApplicationWorkflow{client: client, validate: validate}
}

// CheckExists reports whether an application already exists for the pair.
// Call it before rendering an application form: a student who already applied
// gets the existing record instead of a form. This is a UI gate, not a lock;
// two submissions racing past it are resolved (or not) by the backend.
func (w *ApplicationWorkflow) CheckExists(ctx context.Context, gigID, studentID string) (*models.ApplicationCheck, error) {
	if gigID == "" || studentID == "" {
		return nil, apperrors.ValidationError("gig id and student id are required")
	}
	return w.client.CheckApplication(ctx, gigID, studentID)
}

// Create validates and submits a new application. The returned record carries
// the backend-stamped pending status and applied_at, so the caller can flip to
// the "already applied" view without a re-fetch.
func (w *ApplicationWorkflow) Create(ctx context.Context, req models.ApplicationCreate) (*models.Application, error) {
	if err := w.validate.Validate(req); err != nil {
		return nil, err
	}
	return w.client.CreateApplication(ctx, req)
}

// ListForGig returns every application against the gig for the owning
// professor's review.
func (w *ApplicationWorkflow) ListForGig(ctx context.Context, gigID string) ([]models.Application, error) {
	return w.client.GigApplications(ctx, gigID)
}

// Decide moves a pending application to accepted or rejected. Decisions are
// one-way and the backend refuses a second one; nothing is shown as decided
// until the confirmed record comes back.
func (w *ApplicationWorkflow) Decide(ctx context.Context, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	if !models.DecidedApplicationStatus(status) {
		return nil, apperrors.ValidationError(fmt.Sprintf("status %q is not a valid decision", status))
	}
	return w.client.UpdateApplicationStatus(ctx, applicationID, status)
}

// Accept is shorthand for Decide(..., accepted).
func (w *ApplicationWorkflow) Accept(ctx context.Context, applicationID string) (*models.Application, error) {
	return w.Decide(ctx, applicationID, models.ApplicationStatusAccepted)
}

// Reject is shorthand for Decide(..., rejected).
func (w *ApplicationWorkflow) Reject(ctx context.Context, applicationID string) (*models.Application, error) {
	return w.Decide(ctx, applicationID, models.ApplicationStatusRejected)
}
