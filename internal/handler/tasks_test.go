package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/handler"
	"github.com/osse101/FrostPlanner_Go/mocks"
)

func withTaskID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(handler.ParamTaskID, id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestTaskHandler_HandleListTasks(t *testing.T) {
	due := civil.Date{Year: 2025, Month: 4, Day: 15}

	tests := []struct {
		name           string
		query          string
		setup          func(m *mocks.MockRepositoryTaskStore)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			query: "?owner_id=owner-1",
			setup: func(m *mocks.MockRepositoryTaskStore) {
				m.On("ListTasks", mock.Anything, "owner-1").Return([]domain.TaskRecord{
					{ID: "kale-transplant-2025-04-15", Type: domain.TaskTypeTransplant, DueDate: due, OwnerID: "owner-1"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"due_date":"2025-04-15"`,
		},
		{
			name:  "No tasks is an empty list",
			query: "?owner_id=owner-2",
			setup: func(m *mocks.MockRepositoryTaskStore) {
				m.On("ListTasks", mock.Anything, "owner-2").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"tasks":[]`,
		},
		{
			name:           "Missing owner",
			query:          "",
			setup:          func(m *mocks.MockRepositoryTaskStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   fmt.Sprintf(handler.ErrMsgMissingQueryParam, handler.ParamOwnerID),
		},
		{
			name:  "Store failure",
			query: "?owner_id=owner-1",
			setup: func(m *mocks.MockRepositoryTaskStore) {
				m.On("ListTasks", mock.Anything, "owner-1").Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   handler.ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockRepositoryTaskStore(t)
			tt.setup(store)
			h := handler.NewTaskHandler(store)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks"+tt.query, nil)
			w := httptest.NewRecorder()

			h.HandleListTasks(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestTaskHandler_HandleMarkDone(t *testing.T) {
	doneAt := time.Date(2025, 4, 16, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		id             string
		setup          func(m *mocks.MockRepositoryTaskStore)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			query: "?owner_id=owner-1",
			id:    "kale-transplant-2025-04-15",
			setup: func(m *mocks.MockRepositoryTaskStore) {
				m.On("MarkDone", mock.Anything, "owner-1", "kale-transplant-2025-04-15").
					Return(&domain.TaskRecord{ID: "kale-transplant-2025-04-15", Done: true, DoneAt: &doneAt}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"done":true`,
		},
		{
			name:  "Unknown task",
			query: "?owner_id=owner-1",
			id:    "missing",
			setup: func(m *mocks.MockRepositoryTaskStore) {
				m.On("MarkDone", mock.Anything, "owner-1", "missing").
					Return(nil, fmt.Errorf("%w: missing", domain.ErrTaskNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   handler.ErrMsgTaskNotFoundError,
		},
		{
			name:           "Missing owner",
			id:             "kale-transplant-2025-04-15",
			setup:          func(m *mocks.MockRepositoryTaskStore) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockRepositoryTaskStore(t)
			tt.setup(store)
			h := handler.NewTaskHandler(store)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/"+tt.id+"/done"+tt.query, nil)
			req = withTaskID(req, tt.id)
			w := httptest.NewRecorder()

			h.HandleMarkDone(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
