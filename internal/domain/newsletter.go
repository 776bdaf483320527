package domain

import (
	"context"
	"time"
)

// NewsletterRequest is the footer subscribe form
type NewsletterRequest struct {
	Email string `json:"email" form:"email" validate:"notblank,pond_email"`
}

type Subscriber struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewsletterUsecase interface {
	// Subscribe validates the address and records it. Repeat subscriptions are not an error.
	Subscribe(ctx context.Context, req *NewsletterRequest, meta SubmitMeta) error
}

type SubscriberRepository interface {
	// Upsert stores the subscriber; an existing address is left untouched
	Upsert(ctx context.Context, sub *Subscriber) error
}
