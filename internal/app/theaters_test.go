package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Jopa26/MovieBookingProject/api"
	"github.com/Jopa26/MovieBookingProject/internal/domain"
	"github.com/Jopa26/MovieBookingProject/internal/mocks"
)

type TheatersTestSuite struct {
	suite.Suite
	app         *application
	theaterRepo *mocks.MockTheaterRepo
	screenRepo  *mocks.MockScreenRepo
}

func (s *TheatersTestSuite) SetupTest() {
	s.theaterRepo = new(mocks.MockTheaterRepo)
	s.screenRepo = new(mocks.MockScreenRepo)

	s.app = newTestApplication(func(a *application) {
		a.theaterRepo = s.theaterRepo
		a.screenRepo = s.screenRepo
	})
}

func TestTheatersSuite(t *testing.T) {
	suite.Run(t, new(TheatersTestSuite))
}

func (s *TheatersTestSuite) TestGetTheaters() {
	s.theaterRepo.On("GetAll", mock.Anything).Return([]*domain.Theater{
		{ID: "t1", Name: "Grand", Location: "Downtown"},
		{ID: "t2", Name: "Plaza", Location: "Uptown"},
	}, nil)

	w := serveRequest(s.T(), s.app, http.MethodGet, "/theaters", nil)

	s.Equal(http.StatusOK, w.Code)

	var resp []api.TheaterResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Require().Len(resp, 2)
	s.Equal("Grand", resp[0].Name)
}

func (s *TheatersTestSuite) TestGetScreensByTheater() {
	s.Run("should list screens of a theater", func() {
		s.SetupTest()
		s.theaterRepo.On("GetById", mock.Anything, "t1").
			Return(&domain.Theater{ID: "t1", Name: "Grand"}, nil)
		s.screenRepo.On("GetByTheater", mock.Anything, "t1").Return([]*domain.Screen{
			{ID: "s1", TheaterID: "t1", Rows: 10, SeatsPerRow: 10},
		}, nil)

		w := serveRequest(s.T(), s.app, http.MethodGet, "/theaters/t1/screens", nil)

		s.Equal(http.StatusOK, w.Code)

		var resp []api.ScreenResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Require().Len(resp, 1)
		s.Equal("s1", resp[0].ID)
	})

	s.Run("should return 404 for an unknown theater", func() {
		s.SetupTest()
		s.theaterRepo.On("GetById", mock.Anything, "ghost").
			Return(nil, domain.ErrRecordNotFound)

		w := serveRequest(s.T(), s.app, http.MethodGet, "/theaters/ghost/screens", nil)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *TheatersTestSuite) TestCreateTheater() {
	tests := []struct {
		name           string
		body           api.CreateTheaterRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail when name is missing",
			body:           api.CreateTheaterRequest{Location: "Downtown"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "should create theater with valid input",
			body: api.CreateTheaterRequest{ID: "t1", Name: "Grand", Location: "Downtown"},
			setupMocks: func() {
				s.theaterRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
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

			w := serveRequest(s.T(), s.app, http.MethodPost, "/theaters", tt.body)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
			s.theaterRepo.AssertExpectations(s.T())
		})
	}
}

func (s *TheatersTestSuite) TestCreateScreen() {
	tests := []struct {
		name           string
		body           api.CreateScreenRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail when rows exceed the row letter range",
			body:           api.CreateScreenRequest{TheaterID: "t1", Rows: 30, SeatsPerRow: 10},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be at most 26",
		},
		{
			name: "should fail when the theater does not exist",
			body: api.CreateScreenRequest{TheaterID: "ghost", Rows: 10, SeatsPerRow: 10},
			setupMocks: func() {
				s.screenRepo.On("Create", mock.Anything, mock.Anything).
					Return(fmt.Errorf("theater ghost: %w", domain.ErrRecordNotFound))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "should create screen with valid input",
			body: api.CreateScreenRequest{ID: "s1", TheaterID: "t1", Rows: 10, SeatsPerRow: 10},
			setupMocks: func() {
				s.screenRepo.On("Create", mock.Anything, mock.MatchedBy(func(screen *domain.Screen) bool {
					return screen.Rows == 10 && screen.SeatsPerRow == 10
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

			w := serveRequest(s.T(), s.app, http.MethodPost, "/screens", tt.body)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
			s.screenRepo.AssertExpectations(s.T())
		})
	}
}
