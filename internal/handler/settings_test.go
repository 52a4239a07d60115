package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/handler"
	"github.com/osse101/FrostPlanner_Go/mocks"
)

func TestHandleGetSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockSettingsService(t)
		svc.On("Get", mock.Anything, "owner-1").Return(savedSettings("owner-1", &savedFrost), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings?owner_id=owner-1", nil)
		w := httptest.NewRecorder()

		handler.HandleGetSettings(svc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"last_frost":"2025-04-08"`)
		assert.Contains(t, w.Body.String(), `"watering_cadence_days":3`)
	})

	t.Run("Missing owner", func(t *testing.T) {
		svc := mocks.NewMockSettingsService(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		w := httptest.NewRecorder()

		handler.HandleGetSettings(svc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleSaveSettings(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		body           interface{}
		setup          func(m *mocks.MockSettingsService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Partial update",
			body: map[string]interface{}{"owner_id": "owner-1", "watering_cadence_days": 5},
			setup: func(m *mocks.MockSettingsService) {
				m.On("Save", mock.Anything, mock.MatchedBy(func(s domain.UserSettings) bool {
					return s.OwnerID == "owner-1" && s.LastFrost == nil && s.WateringWeeks == nil &&
						s.WateringCadenceDays != nil && *s.WateringCadenceDays == 5
				})).Return(&domain.UserSettings{
					OwnerID:             "owner-1",
					WateringCadenceDays: domain.IntPtr(5),
					WateringWeeks:       domain.IntPtr(domain.DefaultWateringWeeks),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"watering_cadence_days":5`,
		},
		{
			name: "Frost date",
			body: map[string]interface{}{"owner_id": "owner-1", "last_frost": "2025-04-08"},
			setup: func(m *mocks.MockSettingsService) {
				m.On("Save", mock.Anything, mock.MatchedBy(func(s domain.UserSettings) bool {
					return s.LastFrost != nil && *s.LastFrost == savedFrost
				})).Return(savedSettings("owner-1", &savedFrost), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"last_frost":"2025-04-08"`,
		},
		{
			name:           "Missing owner",
			body:           map[string]interface{}{"watering_weeks": 2},
			setup:          func(m *mocks.MockSettingsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "owner_id",
		},
		{
			name:           "Bad date",
			body:           `{"owner_id":"owner-1","last_frost":"April 8"}`,
			setup:          func(m *mocks.MockSettingsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   handler.ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockSettingsService(t)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", jsonBody(t, tt.body))
			w := httptest.NewRecorder()

			handler.HandleSaveSettings(svc)(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
