//go:build e2e

package owner_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/tests/common/authtest"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/dbtest"
	"slotbook/tests/common/httptest"
	"slotbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const slug = "brow-bar"

type ownerSuite struct {
	e2e.SharedSuite
	owner dbtest.Owner
	token string
	day   time.Time
}

func TestOwnerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ownerSuite))
}

func (s *ownerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.owner, s.token = authtest.CreateOwnerAndLogin(s.T(), s.DB, s.Router, "brows@example.com", slug)
	s.day = nextWednesday(time.Now().UTC())
}

func nextWednesday(now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func (s *ownerSuite) at(h, m int) time.Time {
	return s.day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func (s *ownerSuite) putRule(req reqdto.RuleRequest) (int, resdto.RuleResponse) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/owner/availability", req, s.token)
	var rule resdto.RuleResponse
	if rec.Code < 300 {
		httptest.AssertSuccessResponse(s.T(), rec, rec.Code, &rule)
	}
	return rec.Code, rule
}

func (s *ownerSuite) bookService(serviceID uuid.UUID, start time.Time) (int, resdto.BookingResponse, string) {
	req := builder.NewBookingBuilder().WithStartAt(start).WithDuration(15).BuildRequest()
	req.ServiceID = &serviceID
	req.PriceCents = 1

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/public/businesses/"+slug+"/bookings", req, "")
	var res resdto.BookingResponse
	if rec.Code < 300 {
		httptest.AssertSuccessResponse(s.T(), rec, rec.Code, &res)
	}
	return rec.Code, res, rec.Body.String()
}

func (s *ownerSuite) dayAvailability(duration int) (int, resdto.DayAvailabilityResponse) {
	path := fmt.Sprintf("/api/public/businesses/%s/availability?date=%s&duration=%d", slug, s.day.Format(time.DateOnly), duration)
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
	var day resdto.DayAvailabilityResponse
	if rec.Code < 300 {
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &day)
	}
	return rec.Code, day
}

func (s *ownerSuite) TestCatalogBookingFlow() {
	s.Run("rule, service, booking by service, deactivation", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/availability", nil, s.token)
		var current resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &current)
		s.Equal("10:00", current.StartTime)

		code, rule := s.putRule(reqdto.RuleRequest{
			Timezone:        "UTC",
			WorkingDays:     []int{1, 2, 3, 4, 5},
			StartTime:       "09:00",
			EndTime:         "17:00",
			SlotStepMinutes: 30,
		})
		s.Require().Equal(http.StatusOK, code)
		s.Equal("09:00", rule.StartTime)
		s.Nil(rule.BreakStart)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/owner/services", reqdto.CreateServiceRequest{
			Name:            "Brow Lamination",
			DurationMinutes: 90,
			PriceCents:      12000,
			Currency:        "USD",
		}, s.token)
		var svc resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &svc)
		s.Require().NotEqual(uuid.Nil, svc.ID)
		s.True(svc.IsActive)

		code, booked, body := s.bookService(svc.ID, s.at(9, 0))
		s.Require().Equal(http.StatusCreated, code, body)
		s.Equal("Brow Lamination", booked.ServiceName)
		s.Equal(90, booked.DurationMinutes)
		s.Equal(int64(12000), booked.PriceCents)
		s.True(s.at(10, 30).Equal(booked.EndTimestamp))

		code, day := s.dayAvailability(90)
		s.Require().Equal(http.StatusOK, code)
		s.Equal([]string{"09:00", "09:30", "10:00"}, day.Blocked)
		s.Contains(day.Available, "10:30")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/owner/services/"+svc.ID.String(), nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/services", nil, s.token)
		var listed struct {
			Services []resdto.ServiceResponse `json:"services"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Require().Len(listed.Services, 1)
		s.False(listed.Services[0].IsActive)

		code, _, body = s.bookService(svc.ID, s.at(11, 0))
		s.Equal(http.StatusBadRequest, code, body)
		s.Contains(body, "Invalid booking request")
		s.Contains(body, "service is not active")
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings", ""))
	})

	s.Run("error: a service of another business cannot be booked", func() {
		other := dbtest.CreateTestOwner(s.T(), s.DB, "other@example.com", "other-bar")
		foreign := dbtest.CreateTestService(s.T(), s.DB, other.BusinessID, "Tint", 30)

		code, _, body := s.bookService(foreign, s.at(11, 0))
		s.Equal(http.StatusBadRequest, code, body)
		s.Zero(dbtest.CountRows(s.T(), s.DB, "bookings", ""))
	})

	s.Run("error: invalid rule is rejected and the old one kept", func() {
		code, _ := s.putRule(reqdto.RuleRequest{
			WorkingDays:     []int{1},
			StartTime:       "18:00",
			EndTime:         "09:00",
			SlotStepMinutes: 30,
		})
		s.Equal(http.StatusBadRequest, code)

		code, _ = s.putRule(reqdto.RuleRequest{
			WorkingDays:     []int{1},
			StartTime:       "09:00",
			EndTime:         "17:00",
			SlotStepMinutes: 30,
			BufferMinutes:   24*60 + 1,
		})
		s.Equal(http.StatusBadRequest, code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/availability", nil, s.token)
		var current resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &current)
		s.Equal("10:00", current.StartTime)
	})

	s.Run("error: durations beyond a day are rejected", func() {
		code, _ := s.dayAvailability(24*60 + 1)
		s.Equal(http.StatusBadRequest, code)

		req := builder.NewBookingBuilder().WithStartAt(s.at(11, 0)).WithDuration(9223372036854775802).BuildRequest()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/public/businesses/"+slug+"/bookings", req, "")
		s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	s.Run("error: owner endpoints require an owner token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/services", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *ownerSuite) TestDirectoryPagination() {
	s.Run("keyset pages cover every active business once", func() {
		for i := range 3 {
			dbtest.CreateTestOwner(s.T(), s.DB, fmt.Sprintf("owner%d@example.com", i), fmt.Sprintf("studio-%d", i))
		}
		hidden := dbtest.CreateTestOwner(s.T(), s.DB, "hidden@example.com", "hidden-studio")
		dbtest.SetBusinessActive(s.T(), s.DB, hidden.BusinessID, false)

		type page struct {
			Businesses []resdto.BusinessListItemResponse `json:"businesses"`
			NextCursor string                            `json:"next_cursor"`
		}
		fetch := func(path string) page {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
			var p page
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &p)
			return p
		}

		first := fetch("/api/public/businesses?limit=2")
		s.Len(first.Businesses, 2)
		s.Require().NotEmpty(first.NextCursor)

		second := fetch("/api/public/businesses?limit=2&after=" + url.QueryEscape(first.NextCursor))
		s.Len(second.Businesses, 2)
		s.Empty(second.NextCursor)

		seen := map[string]bool{}
		for _, b := range append(first.Businesses, second.Businesses...) {
			s.False(seen[b.Slug], "duplicate %s", b.Slug)
			seen[b.Slug] = true
		}
		s.Len(seen, 4)
		s.False(seen["hidden-studio"])
	})

	s.Run("error: malformed cursor", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/public/businesses?after=garbage", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
