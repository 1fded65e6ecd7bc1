//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/tests/common/authtest"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/dbtest"
	"slotbook/tests/common/httptest"
	"slotbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const slug = "lash-studio"

type bookingSuite struct {
	e2e.SharedSuite
	owner dbtest.Owner
	token string
	day   time.Time
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.owner, s.token = authtest.CreateOwnerAndLogin(s.T(), s.DB, s.Router, "owner@example.com", slug)
	s.day = nextWednesday(time.Now().UTC())
}

// nextWednesday is at least a day ahead so bookings never start in the past.
func nextWednesday(now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func (s *bookingSuite) at(h, m int) time.Time {
	return s.day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func (s *bookingSuite) request(start time.Time, duration int) reqdto.CreateBookingRequest {
	return builder.NewBookingBuilder().WithStartAt(start).WithDuration(duration).BuildRequest()
}

func (s *bookingSuite) book(body any, headers map[string]string) (int, resdto.BookingResponse, string) {
	url := "/api/public/businesses/" + slug + "/bookings"
	rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, url, body, headers)
	var res resdto.BookingResponse
	if rec.Code < 300 {
		httptest.AssertSuccessResponse(s.T(), rec, rec.Code, &res)
	}
	return rec.Code, res, rec.Body.String()
}

func (s *bookingSuite) availability(duration int) resdto.DayAvailabilityResponse {
	url := fmt.Sprintf("/api/public/businesses/%s/availability?date=%s&duration=%d", slug, s.day.Format(time.DateOnly), duration)
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")
	var day resdto.DayAvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &day)
	return day
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("success: booking blocks its footprint", func() {
		code, res, body := s.book(s.request(s.at(11, 0), 60), nil)
		s.Require().Equal(http.StatusCreated, code, body)
		s.Equal("CONFIRMED", res.Status)
		s.True(s.at(12, 0).Equal(res.EndTimestamp))

		day := s.availability(60)
		s.Equal([]string{"11:00", "11:30", "12:00"}, day.Blocked)
		s.NotContains(day.Available, "10:00")
		s.Contains(day.Available, "13:30")
		s.Require().Len(day.Bookings, 1)

		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "notification_jobs", "topic = $1", "booking_confirmed"))
	})

	s.Run("error: offset start inside an existing booking conflicts", func() {
		code, _, body := s.book(s.request(s.at(11, 0), 60), nil)
		s.Require().Equal(http.StatusCreated, code, body)

		for _, start := range []time.Time{s.at(11, 15), s.at(11, 30), s.at(10, 30)} {
			code, _, body = s.book(s.request(start, 30), nil)
			s.Equal(http.StatusConflict, code, "start %s: %s", start.Format("15:04"), body)
		}
		code, _, body = s.book(s.request(s.at(10, 0), 30), nil)
		s.Equal(http.StatusCreated, code, body)
	})

	s.Run("error: rule violations are unprocessable", func() {
		cases := []struct {
			name     string
			start    time.Time
			duration int
		}{
			{name: "overlaps break", start: s.at(12, 30), duration: 60},
			{name: "before opening", start: s.at(9, 30), duration: 30},
			{name: "past closing", start: s.at(17, 30), duration: 30},
			{name: "weekend", start: s.at(24*3+11, 0), duration: 30},
		}
		for _, tc := range cases {
			code, _, body := s.book(s.request(tc.start, tc.duration), nil)
			s.Equal(http.StatusUnprocessableEntity, code, "%s: %s", tc.name, body)
			s.Contains(body, "Requested time is not bookable", tc.name)
		}
		s.Zero(dbtest.CountRows(s.T(), s.DB, "bookings", ""))
	})

	s.Run("error: unknown or inactive business is unavailable", func() {
		dbtest.SetBusinessActive(s.T(), s.DB, s.owner.BusinessID, false)
		code, _, body := s.book(s.request(s.at(11, 0), 60), nil)
		s.Equal(http.StatusConflict, code, body)
	})

	s.Run("concurrent requests for one slot book it exactly once", func() {
		const n = 8
		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			codes = map[int]int{}
		)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				// half of the requests start 15 minutes into the first one's footprint
				start := s.at(14, 0)
				if i%2 == 1 {
					start = s.at(14, 15)
				}
				code, _, _ := s.book(s.request(start, 30), nil)
				mu.Lock()
				codes[code]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		s.Equal(1, codes[http.StatusCreated], "codes: %v", codes)
		s.Equal(n-1, codes[http.StatusConflict], "codes: %v", codes)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings", "status = 'CONFIRMED'"))
	})

	s.Run("idempotent retry replays the original booking", func() {
		req := s.request(s.at(15, 0), 30)
		headers := map[string]string{"Idempotency-Key": "retry-1"}

		code, first, body := s.book(req, headers)
		s.Require().Equal(http.StatusCreated, code, body)

		url := "/api/public/businesses/" + slug + "/bookings"
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, url, req, headers)
		var second resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &second)
		s.Equal(first.ID, second.ID)
		s.Equal("true", rec.Header().Get("Idempotent-Replayed"))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings", ""))

		changed := req
		changed.CustomerName = "Someone Else"
		code, _, body = s.book(changed, headers)
		s.Equal(http.StatusUnprocessableEntity, code, body)
	})
}

func (s *bookingSuite) TestCancelBooking() {
	cancelURL := func(id string) string { return "/api/owner/bookings/" + id + "/cancel" }

	s.Run("success: cancel frees the slot and is idempotent", func() {
		code, created, body := s.book(s.request(s.at(11, 0), 60), nil)
		s.Require().Equal(http.StatusCreated, code, body)

		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL(created.ID.String()), nil, s.token)
			var res resdto.BookingResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
			s.Equal("CANCELLED", res.Status)
		}
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "notification_jobs", "topic = $1", "booking_cancelled"))

		s.Empty(s.availability(60).Blocked)
		code, _, body = s.book(s.request(s.at(11, 0), 60), nil)
		s.Equal(http.StatusCreated, code, body)
	})

	s.Run("error: another owner's booking is not found", func() {
		code, created, body := s.book(s.request(s.at(11, 0), 60), nil)
		s.Require().Equal(http.StatusCreated, code, body)

		_, otherToken := authtest.CreateOwnerAndLogin(s.T(), s.DB, s.Router, "other@example.com", "other-studio")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL(created.ID.String()), nil, otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: requires authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL("00000000-0000-0000-0000-000000000000"), nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, rec.Code)
	})
}
