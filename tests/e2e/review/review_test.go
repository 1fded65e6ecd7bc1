//go:build e2e

package review_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/tests/common/authtest"
	"slotbook/tests/common/dbtest"
	"slotbook/tests/common/httptest"
	"slotbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	sendDueURL = "/api/admin/reviews/send-due"
	reviewURL  = "/api/public/reviews"
)

type reviewSuite struct {
	e2e.SharedSuite
	owner      dbtest.Owner
	adminToken string
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

func (s *reviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.owner = dbtest.CreateTestOwner(s.T(), s.DB, "owner@example.com", "lash-studio")
	s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
}

// insertBooking bypasses the booking command, which refuses starts in the past.
func (s *reviewSuite) insertBooking(start time.Time, duration int) uuid.UUID {
	s.T().Helper()
	id := uuid.New()
	_, err := s.DB.Exec(context.Background(), `
		INSERT INTO bookings (id, business_id, service_name, duration_minutes, price_cents, currency,
		                      start_at, slot, customer_name, customer_phone)
		VALUES ($1, $2, 'Classic Lash Set', $3, 8500, 'USD',
		        $4, tstzrange($4, $4 + make_interval(mins => $3 + 30)), 'Jamie Rivera', '+1 555 0100')`,
		id, s.owner.BusinessID, duration, start)
	require.NoError(s.T(), err)
	return id
}

func (s *reviewSuite) sweep() int {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sendDueURL, nil, s.adminToken)
	var res struct {
		Sent int `json:"sent"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	return res.Sent
}

// reviewToken reads the link from the queued review email.
func (s *reviewSuite) reviewToken(bookingID uuid.UUID) string {
	var link string
	err := s.DB.QueryRow(context.Background(),
		`SELECT payload->>'review_url' FROM notification_jobs
		  WHERE topic = 'review_request' AND payload->>'booking_id' = $1`, bookingID.String()).Scan(&link)
	s.Require().NoError(err)
	u, err := url.Parse(link)
	s.Require().NoError(err)
	return u.Query().Get("token")
}

func (s *reviewSuite) TestReviewFlow() {
	s.Run("success: sweep invites completed bookings once and the link accepts one review", func() {
		done := s.insertBooking(time.Now().UTC().Add(-3*time.Hour), 60)
		s.insertBooking(time.Now().UTC().Add(48*time.Hour), 60)

		s.Equal(1, s.sweep())
		s.Zero(s.sweep(), "second sweep finds nothing")

		token := s.reviewToken(done)
		s.Require().NotEmpty(token)

		var stored string
		s.Require().NoError(s.DB.QueryRow(context.Background(),
			"SELECT review_token_hash FROM bookings WHERE id = $1", done).Scan(&stored))
		s.NotEqual(token, stored, "only the token hash is stored")

		comment := "Lovely lashes"
		body := reqdto.CreateReviewRequest{Token: token, Rating: 5, Comment: &comment}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewURL, body, "")
		var created resdto.CreateReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal(s.owner.BusinessID, created.BusinessID)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewURL, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been reviewed")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/public/businesses/lash-studio/rating-stats", nil, "")
		var stats resdto.RatingStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &stats)
		s.Equal(int32(1), stats.TotalReviews)
		s.Equal(int32(1), stats.Rating5Count)
		s.InDelta(5.0, stats.AverageRating, 0.001)
	})

	s.Run("error: unknown token", func() {
		body := reqdto.CreateReviewRequest{Token: "not-a-real-token", Rating: 4}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewURL, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review link is invalid")
	})

	s.Run("error: rating out of range", func() {
		body := map[string]any{"token": "whatever", "rating": 6}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewURL, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: sweep is admin only", func() {
		ownerToken := authtest.LoginUser(s.T(), s.Router, s.owner.Email, dbtest.TestPassword)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sendDueURL, nil, ownerToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
