package meeting

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/minutemeet/errors"
	"github.com/johnquangdev/minutemeet/internal/domain/entities"
	"github.com/johnquangdev/minutemeet/internal/domain/repositories"
	"github.com/johnquangdev/minutemeet/internal/infrastructure/cache"
	"github.com/johnquangdev/minutemeet/internal/usecase/analysis"
)

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (r *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	r.meetings[m.ID] = m
	return nil
}

func (r *fakeMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *fakeMeetingRepo) List(_ context.Context, _ repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	var out []*entities.Meeting
	for _, m := range r.meetings {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMeetingRepo) Update(_ context.Context, m *entities.Meeting) error {
	r.meetings[m.ID] = m
	return nil
}

func (r *fakeMeetingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.meetings, id)
	return nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]*entities.ActionItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entities.ActionItem)}
}

func (r *fakeItemRepo) Create(_ context.Context, item *entities.ActionItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) CreateBatch(_ context.Context, items []*entities.ActionItem) error {
	for _, item := range items {
		r.items[item.ID] = item
	}
	return nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeItemRepo) FindByMeetingID(_ context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var out []*entities.ActionItem
	for _, item := range r.items {
		if item.MeetingID == meetingID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]*entities.ActionItem, error) {
	var out []*entities.ActionItem
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entities.ActionItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type fakeArchiver struct {
	archived map[string]string
}

func newFakeArchiver() *fakeArchiver {
	return &fakeArchiver{archived: make(map[string]string)}
}

func (a *fakeArchiver) ArchiveTranscript(_ context.Context, meetingID, transcript string) (string, error) {
	objectName := "meetings/" + meetingID + "/transcript.txt"
	a.archived[objectName] = transcript
	return objectName, nil
}

func (a *fakeArchiver) TranscriptURL(_ context.Context, objectName string) (string, error) {
	if _, ok := a.archived[objectName]; !ok {
		return "", gorm.ErrRecordNotFound
	}
	return "https://storage.local/" + objectName, nil
}

func newTestService(t *testing.T) (Service, *fakeMeetingRepo, *fakeItemRepo) {
	t.Helper()
	meetingRepo := newFakeMeetingRepo()
	itemRepo := newFakeItemRepo()
	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	svc := NewService(meetingRepo, itemRepo, analysis.NewEngine(nil, nil), store, nil, nil, nil)
	return svc, meetingRepo, itemRepo
}

func validInput() ProcessInput {
	return ProcessInput{
		Transcript: "Alice: We need to finalize the budget report by Friday. " +
			"Bob: I will prepare the presentation slides for the client.",
		Participants: []string{"Alice", "Bob"},
		MeetingType:  entities.MeetingTypeGeneral,
		Duration:     30,
	}
}

func assertCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, appErr.Code)
	}
}

func TestProcess_TranscriptTooShort(t *testing.T) {
	svc, _, _ := newTestService(t)

	input := validInput()
	input.Transcript = "too short"

	_, err := svc.Process(context.Background(), input)
	if err == nil {
		t.Fatal("expected error")
	}
	assertCode(t, err, apperrors.ErrorCode_TRANSCRIPT_TOO_SHORT)
}

func TestProcess_InvalidMeetingType(t *testing.T) {
	svc, _, _ := newTestService(t)

	input := validInput()
	input.MeetingType = "standup"

	_, err := svc.Process(context.Background(), input)
	if err == nil {
		t.Fatal("expected error")
	}
	assertCode(t, err, apperrors.ErrorCode_INVALID_MEETING_TYPE)
}

func TestProcess_RequiresParticipantsAndDuration(t *testing.T) {
	svc, _, _ := newTestService(t)

	input := validInput()
	input.Participants = nil
	_, err := svc.Process(context.Background(), input)
	assertCode(t, err, apperrors.ErrorCode_INVALID_ARGUMENT)

	input = validInput()
	input.Duration = 0
	_, err = svc.Process(context.Background(), input)
	assertCode(t, err, apperrors.ErrorCode_INVALID_ARGUMENT)
}

func TestProcess_PersistsMeetingAndActionItems(t *testing.T) {
	svc, meetingRepo, itemRepo := newTestService(t)

	m, err := svc.Process(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if m.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if m.HealthScore < 1.0 || m.HealthScore > 10.0 {
		t.Errorf("health score %f out of range", m.HealthScore)
	}
	if len(m.KeyInsightList()) < 2 {
		t.Errorf("expected at least 2 insights, got %v", m.KeyInsightList())
	}
	if len(m.NextStepList()) == 0 {
		t.Error("expected next steps")
	}
	if got := m.ParticipantList(); len(got) != 2 {
		t.Errorf("expected 2 participants, got %v", got)
	}

	if _, ok := meetingRepo.meetings[m.ID]; !ok {
		t.Error("meeting was not persisted")
	}
	if len(m.ActionItems) == 0 {
		t.Fatal("expected action items on the meeting")
	}
	if len(itemRepo.items) != len(m.ActionItems) {
		t.Errorf("persisted %d items, meeting carries %d", len(itemRepo.items), len(m.ActionItems))
	}
	for _, item := range m.ActionItems {
		if item.MeetingID != m.ID {
			t.Errorf("action item %s not linked to meeting", item.ID)
		}
	}
}

func TestProcess_GeneratesTitleWhenMissing(t *testing.T) {
	svc, _, _ := newTestService(t)

	m, err := svc.Process(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if m.Title == "" {
		t.Fatal("expected generated title")
	}
}

func TestProcess_CachesAnalysis(t *testing.T) {
	svc, _, _ := newTestService(t)

	first, err := svc.Process(context.Background(), validInput())
	if err != nil {
		t.Fatalf("first Process failed: %v", err)
	}
	second, err := svc.Process(context.Background(), validInput())
	if err != nil {
		t.Fatalf("second Process failed: %v", err)
	}

	if first.ID == second.ID {
		t.Fatal("expected distinct meetings")
	}
	if first.Summary != second.Summary {
		t.Errorf("expected identical summaries, got %q and %q", first.Summary, second.Summary)
	}
	if first.HealthScore != second.HealthScore {
		t.Errorf("expected identical health scores, got %f and %f", first.HealthScore, second.HealthScore)
	}
}

func TestProcess_ArchivesTranscriptAndPresignsOnRead(t *testing.T) {
	meetingRepo := newFakeMeetingRepo()
	itemRepo := newFakeItemRepo()
	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	archiver := newFakeArchiver()

	svc := NewService(meetingRepo, itemRepo, analysis.NewEngine(nil, nil), store, archiver, nil, nil)

	input := validInput()
	m, err := svc.Process(context.Background(), input)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	wantObject := "meetings/" + m.ID.String() + "/transcript.txt"
	if m.TranscriptObject != wantObject {
		t.Fatalf("expected object key %q, got %q", wantObject, m.TranscriptObject)
	}
	if archiver.archived[wantObject] != input.Transcript {
		t.Fatal("archived transcript does not match the input")
	}

	found, err := svc.GetByID(context.Background(), m.ID.String())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.TranscriptURL != "https://storage.local/"+wantObject {
		t.Fatalf("expected presigned link, got %q", found.TranscriptURL)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), uuid.NewString())
	assertCode(t, err, apperrors.ErrorCode_MEETING_NOT_FOUND)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assertCode(t, err, apperrors.ErrorCode_MEETING_NOT_FOUND)
}

func TestGetByID_ReturnsMeeting(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, err := svc.Process(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	found, err := svc.GetByID(context.Background(), created.ID.String())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected meeting %s, got %s", created.ID, found.ID)
	}
}
