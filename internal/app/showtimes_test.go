package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Jopa26/MovieBookingProject/api"
	"github.com/Jopa26/MovieBookingProject/internal/domain"
	"github.com/Jopa26/MovieBookingProject/internal/mocks"
)

type ShowtimesTestSuite struct {
	suite.Suite
	app      *application
	showRepo *mocks.MockShowRepo
}

func (s *ShowtimesTestSuite) SetupTest() {
	s.showRepo = new(mocks.MockShowRepo)

	s.app = newTestApplication(func(a *application) {
		a.showRepo = s.showRepo
	})
}

func TestShowtimesSuite(t *testing.T) {
	suite.Run(t, new(ShowtimesTestSuite))
}

func (s *ShowtimesTestSuite) TestGetShowtimesByMovie() {
	start := time.Date(2026, 8, 30, 20, 0, 0, 0, time.UTC)

	s.Run("should list shows sorted by start time", func() {
		s.SetupTest()
		s.showRepo.On("GetByMovieTitle", mock.Anything, "Inception").
			Return([]*domain.Show{
				{ID: "show-1", MovieID: "m1", ScreenID: "s1", StartTime: start},
				{ID: "show-2", MovieID: "m1", ScreenID: "s1", StartTime: start.Add(3 * time.Hour)},
			}, nil)

		w := serveRequest(s.T(), s.app, http.MethodGet, "/movies/Inception/showtimes", nil)

		s.Equal(http.StatusOK, w.Code)

		var resp api.ShowtimeListResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Equal("Inception", resp.MovieTitle)
		s.Require().Len(resp.Shows, 2)
		s.Equal("show-1", resp.Shows[0].ID)
		s.Equal("show-2", resp.Shows[1].ID)
	})

	s.Run("should return an empty list when nothing matches", func() {
		s.SetupTest()
		s.showRepo.On("GetByMovieTitle", mock.Anything, "Ghost").
			Return([]*domain.Show{}, nil)

		w := serveRequest(s.T(), s.app, http.MethodGet, "/movies/Ghost/showtimes", nil)

		s.Equal(http.StatusOK, w.Code)

		var resp api.ShowtimeListResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Empty(resp.Shows)
	})

	s.Run("should handle titles with encoded spaces", func() {
		s.SetupTest()
		s.showRepo.On("GetByMovieTitle", mock.Anything, "The Matrix").
			Return([]*domain.Show{}, nil)

		w := serveRequest(s.T(), s.app, http.MethodGet, "/movies/The%20Matrix/showtimes", nil)

		s.Equal(http.StatusOK, w.Code)
		s.showRepo.AssertExpectations(s.T())
	})
}

func (s *ShowtimesTestSuite) TestCreateShow() {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           api.CreateShowRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail when movie id is missing",
			body:           api.CreateShowRequest{ScreenID: "s1", StartTime: start},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "should fail when the movie does not exist",
			body: api.CreateShowRequest{MovieID: "ghost", ScreenID: "s1", StartTime: start},
			setupMocks: func() {
				s.showRepo.On("Create", mock.Anything, mock.Anything).
					Return(fmt.Errorf("movie ghost: %w", domain.ErrRecordNotFound))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "should create show with valid input",
			body: api.CreateShowRequest{ID: "show-9", MovieID: "m1", ScreenID: "s1", StartTime: start},
			setupMocks: func() {
				s.showRepo.On("Create", mock.Anything, mock.MatchedBy(func(show *domain.Show) bool {
					return show.ID == "show-9" && show.MovieID == "m1"
				})).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w := serveRequest(s.T(), s.app, http.MethodPost, "/shows", tt.body)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
			s.showRepo.AssertExpectations(s.T())
		})
	}
}
