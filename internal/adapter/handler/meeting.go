package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/minutemeet/errors"
	"github.com/johnquangdev/minutemeet/internal/adapter/dto/common"
	meetingdto "github.com/johnquangdev/minutemeet/internal/adapter/dto/meeting"
	"github.com/johnquangdev/minutemeet/internal/domain/repositories"
	meetinguse "github.com/johnquangdev/minutemeet/internal/usecase/meeting"
)

// MeetingHandler handles meeting processing and retrieval endpoints
type MeetingHandler struct {
	svc    meetinguse.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc meetinguse.Service, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{svc: svc, logger: logger}
}

// Process analyzes a meeting transcript and persists the results
// @Summary      Process meeting transcript
// @Description  Runs summarization, action item extraction, health scoring and insight extraction on a transcript, then stores the meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meetingdto.ProcessMeetingRequest  true  "Transcript and metadata"
// @Success      200      {object}  meetingdto.ProcessMeetingResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid transcript, meeting type, participants or duration"
// @Failure      500      {object}  map[string]interface{}  "Processing failed"
// @Router       /api/meetings/process [post]
func (h *MeetingHandler) Process(c echo.Context) error {
	var req meetingdto.ProcessMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	m, err := h.svc.Process(c.Request().Context(), meetinguse.ProcessInput{
		Title:        req.Title,
		Transcript:   req.Transcript,
		Participants: req.Participants,
		MeetingType:  req.MeetingType,
		Duration:     req.Duration,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingdto.ProcessResponseFromEntity(m))
}

// List returns stored meetings, newest first
// @Summary      List meetings
// @Description  Returns processed meetings ordered by creation time with a total count
// @Tags         Meetings
// @Produce      json
// @Param        meeting_type  query     string  false  "Filter by meeting type"
// @Param        limit         query     int     false  "Page size"
// @Param        offset        query     int     false  "Page offset"
// @Success      200  {object}  common.ListResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/meetings [get]
func (h *MeetingHandler) List(c echo.Context) error {
	var req meetingdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meetings, total, err := h.svc.List(c.Request().Context(), repositories.MeetingFilters{
		MeetingType: req.MeetingType,
		Limit:       req.Limit,
		Offset:      req.Offset,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	items := make([]meetingdto.MeetingListItem, 0, len(meetings))
	for _, m := range meetings {
		items = append(items, meetingdto.ListItemFromEntity(m))
	}

	return HandleSuccess(h.logger, c, common.ListResponse{Data: items, Total: total})
}

// GetByID returns a meeting with its action items
// @Summary      Get meeting
// @Description  Returns the full meeting including analysis results and action items
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meetingdto.MeetingDetailResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/meetings/{id} [get]
func (h *MeetingHandler) GetByID(c echo.Context) error {
	m, err := h.svc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, meetingdto.DetailFromEntity(m))
}
