package usecase

import (
	"context"
	"strings"
	"time"

	"pondpatrol-web/internal/domain"
	"pondpatrol-web/pkg/logger"
	"pondpatrol-web/pkg/security"
	"pondpatrol-web/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type newsletterUsecase struct {
	validate *validator.Validate
	repo     domain.SubscriberRepository
}

// NewNewsletterUsecase creates the footer subscribe usecase. repo may be nil.
func NewNewsletterUsecase(validate *validator.Validate, repo domain.SubscriberRepository) domain.NewsletterUsecase {
	return &newsletterUsecase{validate: validate, repo: repo}
}

func (uc *newsletterUsecase) Subscribe(ctx context.Context, req *domain.NewsletterRequest, meta domain.SubmitMeta) error {
	if req == nil {
		req = &domain.NewsletterRequest{}
	}
	errs, err := validation.FieldErrors(uc.validate.Struct(req))
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return domain.ValidationErrors(errs)
	}

	sub := &domain.Subscriber{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		CreatedAt: time.Now().UTC(),
	}

	logger.Log.Info("Newsletter subscription",
		"email", security.MaskEmail(sub.Email),
		"source", meta.Source,
		"request_id", meta.RequestID,
	)

	if uc.repo == nil {
		return nil
	}
	return uc.repo.Upsert(ctx, sub)
}
