package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	apperrors "github.com/johnquangdev/minutemeet/errors"
	"github.com/johnquangdev/minutemeet/internal/domain/entities"
	"github.com/johnquangdev/minutemeet/internal/domain/repositories"
	meetinguse "github.com/johnquangdev/minutemeet/internal/usecase/meeting"
	pkgvalidator "github.com/johnquangdev/minutemeet/pkg/validator"
)

type stubMeetingService struct {
	processFn func(ctx context.Context, input meetinguse.ProcessInput) (*entities.Meeting, error)
	getFn     func(ctx context.Context, id string) (*entities.Meeting, error)
	listFn    func(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error)
}

func (s *stubMeetingService) Process(ctx context.Context, input meetinguse.ProcessInput) (*entities.Meeting, error) {
	return s.processFn(ctx, input)
}

func (s *stubMeetingService) GetByID(ctx context.Context, id string) (*entities.Meeting, error) {
	return s.getFn(ctx, id)
}

func (s *stubMeetingService) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return s.listFn(ctx, filters)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func sampleMeeting(t *testing.T) *entities.Meeting {
	t.Helper()
	m := entities.NewMeeting("Weekly sync", "Alice: We need to ship the release.", entities.MeetingTypeGeneral, 30)
	m.Summary = "The team aligned on the release."
	m.HealthScore = 7.5
	if err := m.SetParticipants([]string{"Alice", "Bob"}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetKeyInsights([]string{"Decision made: ship it"}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetNextSteps([]string{"Follow up on: release notes"}); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMeetingHandler_Process(t *testing.T) {
	e := newEcho()
	m := sampleMeeting(t)
	h := NewMeetingHandler(&stubMeetingService{
		processFn: func(_ context.Context, input meetinguse.ProcessInput) (*entities.Meeting, error) {
			if input.MeetingType != entities.MeetingTypeGeneral {
				t.Errorf("unexpected meeting type %q", input.MeetingType)
			}
			return m, nil
		},
	}, nil)

	body := `{"transcript":"Alice: We need to ship the release this week.","participants":["Alice","Bob"],"meeting_type":"general","duration":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/meetings/process", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Process(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != 0 || resp.Message != "success" {
		t.Fatalf("unexpected envelope %+v", resp)
	}
	if !strings.Contains(string(resp.Data), m.ID.String()) {
		t.Fatalf("expected meeting id in response data: %s", resp.Data)
	}
}

func TestMeetingHandler_Process_ValidationFailure(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{
		processFn: func(_ context.Context, _ meetinguse.ProcessInput) (*entities.Meeting, error) {
			t.Fatal("service must not be called for invalid payloads")
			return nil, nil
		},
	}, nil)

	// Transcript below minimum length
	body := `{"transcript":"short","participants":["Alice"],"meeting_type":"general","duration":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/meetings/process", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Process(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMeetingHandler_Process_MalformedJSON(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/meetings/process", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Process(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMeetingHandler_GetByID_NotFound(t *testing.T) {
	e := newEcho()
	h := NewMeetingHandler(&stubMeetingService{
		getFn: func(_ context.Context, id string) (*entities.Meeting, error) {
			return nil, apperrors.ErrMeetingNotFound(id)
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/meetings/unknown", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/meetings/:id")
	c.SetParamNames("id")
	c.SetParamValues("unknown")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Code != int(apperrors.ErrorCode_MEETING_NOT_FOUND) {
		t.Fatalf("expected code %d, got %d", apperrors.ErrorCode_MEETING_NOT_FOUND, body.Code)
	}
}

func TestMeetingHandler_List(t *testing.T) {
	e := newEcho()
	m := sampleMeeting(t)
	h := NewMeetingHandler(&stubMeetingService{
		listFn: func(_ context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
			if filters.MeetingType != entities.MeetingTypeGeneral {
				t.Errorf("unexpected filter %q", filters.MeetingType)
			}
			return []*entities.Meeting{m}, 1, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/meetings?meeting_type=general", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Total != 1 {
		t.Fatalf("expected total 1, got %d", resp.Data.Total)
	}
}
