package commands

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"slotbook/internal/domain/booking"
	domreview "slotbook/internal/domain/review"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidReviewToken = errs.Mark(domreview.ErrInvalidToken, errs.ErrNotFound)
	ErrAlreadyReviewed    = errs.Mark(domreview.ErrAlreadyReviewed, errs.ErrConflict)
)

const DefaultReviewBatchSize = 100

type CreateReviewInput struct {
	Token   string
	Rating  int
	Comment *string
}

type CreateReviewResult struct {
	ReviewID   uuid.UUID
	BusinessID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, in CreateReviewInput) (*CreateReviewResult, error)
	// SendDueReviewRequests invites every completed booking that has not been
	// invited yet, at most batch of them per call.
	SendDueReviewRequests(ctx context.Context, batch int) (int, error)
}

type reviewCommandsImpl struct {
	uow           shared.UnitOfWork
	clock         clock.Clock
	publicBaseURL string
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock, publicBaseURL string) ReviewCommands {
	return &reviewCommandsImpl{
		uow:           uow,
		clock:         clk,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, in CreateReviewInput) (*CreateReviewResult, error) {
	token := strings.TrimSpace(in.Token)
	if token == "" {
		return nil, ErrInvalidReviewToken
	}
	if _, err := domreview.NewRating(in.Rating); err != nil {
		return nil, invalid(err)
	}
	if _, err := domreview.NewComment(in.Comment); err != nil {
		return nil, invalid(err)
	}

	var result *CreateReviewResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByReviewTokenHashForUpdate(ctx, booking.HashReviewToken(token))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidReviewToken
			}
			return err
		}

		exists, err := tx.Reads().ReviewExistsForBooking(ctx, b.ID())
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := domreview.CheckEligibility(b, exists, now); err != nil {
			if errs.Is(err, domreview.ErrAlreadyReviewed) {
				return ErrAlreadyReviewed
			}
			return invalid(err)
		}

		rev, err := domreview.NewReview(b.BusinessID(), b.ID(), b.Customer().Name(), in.Rating, in.Comment, now)
		if err != nil {
			return invalid(err)
		}
		if err := tx.Reviews().Create(ctx, rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrAlreadyReviewed
			}
			return err
		}
		result = &CreateReviewResult{ReviewID: rev.ID(), BusinessID: rev.BusinessID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *reviewCommandsImpl) SendDueReviewRequests(ctx context.Context, batch int) (int, error) {
	if batch <= 0 {
		batch = DefaultReviewBatchSize
	}

	sent := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0 // reset on retry
		now := uc.clock.Now()
		due, err := tx.Reads().BookingsDueForReview(ctx, now, batch)
		if err != nil {
			return err
		}

		for _, b := range due {
			token, hash, err := booking.NewReviewToken()
			if err != nil {
				return errs.Wrap(err, "failed to generate review token")
			}
			if err := b.RequestReview(hash, now); err != nil {
				slog.Warn("skipping review request",
					"booking_id", b.ID(),
					"error", err)
				continue
			}
			if err := tx.Bookings().MarkReviewRequested(ctx, b); err != nil {
				return err
			}

			payload, err := reviewRequestPayload(b, uc.reviewURL(token))
			if err != nil {
				return err
			}
			if err := tx.Notifications().CreateJob(ctx, shared.NotificationKindEmail, shared.TopicReviewRequest, payload, now); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if sent > 0 {
		slog.Info("review requests enqueued", "count", sent)
	}
	return sent, nil
}

func (uc *reviewCommandsImpl) reviewURL(token string) string {
	return uc.publicBaseURL + "/review?token=" + url.QueryEscape(token)
}
