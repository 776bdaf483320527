package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pondpatrol-web/internal/domain"
	"pondpatrol-web/pkg/logger"
	"pondpatrol-web/pkg/security"
	"pondpatrol-web/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type contactUsecase struct {
	validate *validator.Validate
	repo     domain.InquiryRepository
	notifier domain.InquiryNotifier
	now      func() time.Time
}

// NewFormValidator returns the validator shared by the contact and newsletter usecases
func NewFormValidator() *validator.Validate {
	sizes := make([]string, len(domain.FarmSizes))
	for i, fs := range domain.FarmSizes {
		sizes[i] = string(fs)
	}
	return validation.New(sizes)
}

// NewContactUsecase creates a new contact usecase. repo and notifier are optional:
// with neither configured an accepted inquiry is only logged.
func NewContactUsecase(validate *validator.Validate, repo domain.InquiryRepository, notifier domain.InquiryNotifier) domain.ContactUsecase {
	return &contactUsecase{
		validate: validate,
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (uc *contactUsecase) Validate(req *domain.ContactRequest) domain.ValidationErrors {
	errs, err := validation.FieldErrors(uc.validate.Struct(req))
	if err != nil {
		// Only reachable for a nil request; treat every field as missing
		logger.Log.Warn("Contact validation could not run", "error", err)
		return missingAll()
	}
	return domain.ValidationErrors(errs)
}

// Submit validates the contact request and accepts it
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest, meta domain.SubmitMeta) (*domain.Inquiry, error) {
	if req == nil {
		return nil, missingAll()
	}
	if errs := uc.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	inq := &domain.Inquiry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     validation.NormalizePhone(req.Phone),
		FarmSize:  domain.FarmSize(req.FarmSize),
		Message:   strings.TrimSpace(req.Message),
		Source:    meta.Source,
		RemoteIP:  meta.RemoteIP,
		CreatedAt: uc.now().UTC(),
	}
	if inq.Source == "" {
		inq.Source = domain.SourceAPI
	}

	logger.Log.Info("Contact inquiry received",
		"inquiry_id", inq.ID,
		"source", inq.Source,
		"email", security.MaskEmail(inq.Email),
		"farm_size", string(inq.FarmSize),
		"request_id", meta.RequestID,
	)

	// Downstream failures are logged but never undo the acknowledgment
	if uc.repo != nil {
		if err := uc.repo.Create(ctx, inq); err != nil {
			logger.Log.Error("Failed to store inquiry", "inquiry_id", inq.ID, "error", err)
		}
	}
	if uc.notifier != nil {
		if err := uc.notifier.NotifyInquiry(ctx, inq); err != nil {
			logger.Log.Error("Failed to send inquiry notification", "inquiry_id", inq.ID, "error", err)
		}
	}

	return inq, nil
}

func missingAll() domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	for _, f := range domain.ContactFields {
		errs[f] = fmt.Sprintf("%s is required", validation.FieldLabels[f])
	}
	return errs
}
