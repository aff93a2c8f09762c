package issue

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	issueRepo "justnest/database/repository/issue"
	lawyerRepo "justnest/database/repository/lawyer"
	"justnest/models"
	"justnest/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentNotification struct {
	room  string
	event string
	data  map[string]any
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, room, event string, data map[string]any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{room: room, event: event, data: data})
	return n.err
}

type testEnv struct {
	svc      *DefaultIssueService
	notifier *recordingNotifier
	lawyers  *lawyerRepo.MemoryLawyerRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	notifier := &recordingNotifier{}
	lawyers := lawyerRepo.NewMemoryLawyerRepo()
	svc := NewDefaultIssueService(issueRepo.NewMemoryIssueRepo(), lawyers, notifier, zap.NewNop())

	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return &testEnv{svc: svc, notifier: notifier, lawyers: lawyers}
}

func validSubmission() models.IssueSubmission {
	return models.IssueSubmission{
		Category:    models.CategoryProperty,
		Title:       "Neighbour encroached on my land",
		Description: strings.Repeat("My neighbour built a wall on my side of the plot. ", 2),
		Urgency:     models.UrgencyHigh,
		Language:    "hi",
		Location:    "Pune",
		Consent:     models.Consent{Share: true},
	}
}

var (
	lawyerActor  = models.Identity{UserID: "USR_lawyer", Name: "Asha Rao", Role: models.RoleLawyer}
	citizenActor = models.Identity{UserID: "USR_citizen", Name: "Ravi Kumar", Role: models.RoleCitizen}
)

func requireKind(t *testing.T, err error, kind utils.ErrorKind) *utils.AppError {
	t.Helper()
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, kind, appErr.Kind)
	return appErr
}

func TestSubmit_StoresPendingIssue(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, utils.IssueIDPrefix+"_"))
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, int64(0), created.Views)
	assert.Empty(t, created.Responses)
	assert.NotNil(t, created.Tags)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	stored, err := env.svc.Repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, stored.Title)
}

func TestSubmit_PriorityDerivedFromUrgency(t *testing.T) {
	t.Parallel()
	tests := []struct {
		urgency  string
		priority string
	}{
		{models.UrgencyEmergency, models.PriorityHigh},
		{models.UrgencyHigh, models.PriorityMedium},
		{models.UrgencyMedium, models.PriorityLow},
		{models.UrgencyLow, models.PriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.urgency, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			in := validSubmission()
			in.Urgency = tt.urgency

			created, err := env.svc.Submit(context.Background(), in, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.priority, created.Priority)
		})
	}
}

func TestSubmit_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*models.IssueSubmission)
		field   string
		message string
	}{
		{"unknown category", func(in *models.IssueSubmission) { in.Category = "tax" }, "category", "Valid category is required"},
		{"short title", func(in *models.IssueSubmission) { in.Title = "Help me" }, "title", "Title must be between 10 and 100 characters"},
		{"title only spaces", func(in *models.IssueSubmission) { in.Title = "   a   " }, "title", "Title must be between 10 and 100 characters"},
		{"long title", func(in *models.IssueSubmission) { in.Title = strings.Repeat("x", 101) }, "title", "Title must be between 10 and 100 characters"},
		{"short description", func(in *models.IssueSubmission) { in.Description = "Too short" }, "description", "Description must be between 50 and 2000 characters"},
		{"bad urgency", func(in *models.IssueSubmission) { in.Urgency = "urgent" }, "urgency", "Valid urgency level is required"},
		{"bad language", func(in *models.IssueSubmission) { in.Language = "fr" }, "language", "Valid language is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			in := validSubmission()
			tt.mutate(&in)

			_, err := env.svc.Submit(context.Background(), in, nil)
			appErr := requireKind(t, err, utils.KindValidation)
			require.Len(t, appErr.Errors, 1)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
			assert.Equal(t, tt.message, appErr.Errors[0].Message)
			assert.Empty(t, env.notifier.sent)
		})
	}
}

func TestSubmit_TitleLengthBoundaries(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	in := validSubmission()
	in.Title = strings.Repeat("a", 10)
	_, err := env.svc.Submit(ctx, in, nil)
	require.NoError(t, err)

	in.Title = strings.Repeat("a", 100)
	_, err = env.svc.Submit(ctx, in, nil)
	require.NoError(t, err)

	// Lengths count characters, not bytes.
	in.Title = strings.Repeat("भ", 10)
	_, err = env.svc.Submit(ctx, in, nil)
	require.NoError(t, err)
}

func TestSubmit_StripsMarkup(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	in := validSubmission()
	in.Title = "<b>Neighbour</b> encroached <script>alert(1)</script>on my land"

	created, err := env.svc.Submit(context.Background(), in, nil)
	require.NoError(t, err)
	assert.NotContains(t, created.Title, "<")
	assert.Contains(t, created.Title, "Neighbour encroached")
}

func TestSubmit_StripsEncodedMarkup(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	in := validSubmission()
	in.Title = "&lt;script&gt;alert(1)&lt;/script&gt; boundary wall dispute"
	in.Description = "&lt;img src=x onerror=alert(1)&gt;" + in.Description

	created, err := env.svc.Submit(context.Background(), in, nil)
	require.NoError(t, err)
	assert.Equal(t, "boundary wall dispute", created.Title)
	assert.NotContains(t, created.Description, "<")
	assert.NotContains(t, created.Description, "onerror")
}

func TestSubmit_AnonymousDropsPersonalInfo(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	in := validSubmission()
	in.Anonymous = true
	in.PersonalInfo = &models.PersonalInfo{Name: "Ravi", Phone: "9876543210"}

	created, err := env.svc.Submit(context.Background(), in, nil)
	require.NoError(t, err)
	assert.Nil(t, created.PersonalInfo)

	detail, err := env.svc.View(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.PersonalInfo)
}

func TestSubmit_RecordsSubmitter(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	created, err := env.svc.Submit(context.Background(), validSubmission(), &citizenActor)
	require.NoError(t, err)
	assert.Equal(t, citizenActor.UserID, created.SubmittedBy)
}

func TestSubmit_Broadcasts(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	created, err := env.svc.Submit(context.Background(), validSubmission(), nil)
	require.NoError(t, err)

	require.Len(t, env.notifier.sent, 2)
	first, second := env.notifier.sent[0], env.notifier.sent[1]

	assert.Equal(t, "lang-hi", first.room)
	assert.Equal(t, models.EventNewLegalIssue, first.event)
	assert.Equal(t, created.ID, first.data["id"])
	assert.Equal(t, created.CreatedAt, first.data["timestamp"])

	assert.Equal(t, models.RoomLawyers, second.room)
	assert.Equal(t, models.EventNewCaseAvailable, second.event)
	assert.NotContains(t, second.data, "id")
	assert.Equal(t, models.CategoryProperty, second.data["category"])
}

func TestSubmit_BroadcastFailureDoesNotFail(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.notifier.err = errors.New("redis down")

	created, err := env.svc.Submit(context.Background(), validSubmission(), nil)
	require.NoError(t, err)
	require.NotNil(t, created)
}

func TestList_Pagination(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		created, err := env.svc.Submit(ctx, validSubmission(), nil)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	q, err := ParseIssueQuery(url.Values{"limit": {"2"}, "page": {"2"}})
	require.NoError(t, err)
	page, err := env.svc.List(ctx, q)
	require.NoError(t, err)

	// Newest first: positions 2 and 3 of the sorted list.
	require.Len(t, page.Issues, 2)
	assert.Equal(t, ids[2], page.Issues[0].ID)
	assert.Equal(t, ids[1], page.Issues[1].ID)

	p := page.Pagination
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(5), p.TotalIssues)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

func TestList_PageBeyondEnd(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)

	page, err := env.svc.List(ctx, models.IssueQuery{Page: 4, Limit: 10, SortBy: "createdAt", SortOrder: models.SortDesc})
	require.NoError(t, err)
	assert.Empty(t, page.Issues)
	assert.NotNil(t, page.Issues)
	assert.False(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPrevPage)
}

func TestList_FiltersAndSummary(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	family := validSubmission()
	family.Category = models.CategoryFamily
	family.Description = strings.Repeat("d", 250)
	family.PersonalInfo = &models.PersonalInfo{Name: "Meera"}
	_, err := env.svc.Submit(ctx, family, nil)
	require.NoError(t, err)
	_, err = env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)

	q, err := ParseIssueQuery(url.Values{"category": {"family"}, "language": {"hi"}})
	require.NoError(t, err)
	page, err := env.svc.List(ctx, q)
	require.NoError(t, err)

	require.Len(t, page.Issues, 1)
	s := page.Issues[0]
	assert.Equal(t, models.CategoryFamily, s.Category)
	assert.Equal(t, strings.Repeat("d", 200)+"...", s.Description)
	assert.Equal(t, 0, s.ResponsesCount)
}

func TestList_SortTiesBrokenByID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	env.svc.Now = func() time.Time { return fixed }
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		created, err := env.svc.Submit(ctx, validSubmission(), nil)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	asc, err := env.svc.List(ctx, models.IssueQuery{Page: 1, Limit: 10, SortBy: "createdAt", SortOrder: models.SortAsc})
	require.NoError(t, err)
	desc, err := env.svc.List(ctx, models.IssueQuery{Page: 1, Limit: 10, SortBy: "createdAt", SortOrder: models.SortDesc})
	require.NoError(t, err)

	require.Len(t, asc.Issues, 3)
	for i := range asc.Issues {
		assert.Equal(t, asc.Issues[i].ID, desc.Issues[len(desc.Issues)-1-i].ID)
	}
	assert.Less(t, asc.Issues[0].ID, asc.Issues[1].ID)
}

func TestParseIssueQuery(t *testing.T) {
	t.Parallel()

	q, err := ParseIssueQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPage, q.Page)
	assert.Equal(t, models.DefaultLimit, q.Limit)
	assert.Equal(t, "createdAt", q.SortBy)
	assert.Equal(t, models.SortDesc, q.SortOrder)

	invalid := []url.Values{
		{"page": {"0"}},
		{"page": {"abc"}},
		{"limit": {"-1"}},
		{"sortBy": {"passwordHash"}},
		{"sortOrder": {"sideways"}},
		{"status": {"archived"}},
		{"urgency": {"critical"}},
	}
	for _, values := range invalid {
		_, err := ParseIssueQuery(values)
		requireKind(t, err, utils.KindValidation)
	}

	maxInt := strconv.Itoa(math.MaxInt)
	q, err = ParseIssueQuery(url.Values{"page": {maxInt}, "limit": {maxInt}})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, q.Page)
	assert.Equal(t, math.MaxInt, q.Limit)
}

func TestList_HugePageAndLimit(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := env.svc.Submit(ctx, validSubmission(), nil)
		require.NoError(t, err)
	}

	tests := []struct {
		name        string
		page, limit int
		wantLen     int
		wantNext    bool
	}{
		{"huge limit on first page", 1, math.MaxInt, 3, false},
		{"huge limit on second page", 2, math.MaxInt, 0, false},
		{"huge page", math.MaxInt, 2, 0, false},
	}
	for _, tt := range tests {
		q, err := ParseIssueQuery(url.Values{
			"page":  {strconv.Itoa(tt.page)},
			"limit": {strconv.Itoa(tt.limit)},
		})
		require.NoError(t, err, tt.name)

		list, err := env.svc.List(ctx, q)
		require.NoError(t, err, tt.name)
		assert.Len(t, list.Issues, tt.wantLen, tt.name)
		assert.Equal(t, int64(3), list.Pagination.TotalIssues, tt.name)
		assert.Equal(t, tt.wantNext, list.Pagination.HasNextPage, tt.name)
	}
}

func TestView_IncrementsViews(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	in := validSubmission()
	in.PersonalInfo = &models.PersonalInfo{Name: "Meera", Phone: "9876543210"}
	created, err := env.svc.Submit(ctx, in, nil)
	require.NoError(t, err)

	first, err := env.svc.View(ctx, created.ID)
	require.NoError(t, err)
	second, err := env.svc.View(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Views)
	assert.Equal(t, int64(2), second.Views)
	assert.True(t, second.UpdatedAt.After(created.UpdatedAt))
	require.NotNil(t, second.PersonalInfo)
	assert.Equal(t, "Meera", second.PersonalInfo.Name)
}

func TestView_UnknownID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.svc.View(context.Background(), "LI_missing")
	appErr := requireKind(t, err, utils.KindNotFound)
	assert.Equal(t, "Legal issue not found", appErr.Message)
}

func TestAddResponse(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)

	resp, err := env.svc.AddResponse(ctx, created.ID, models.ResponseInput{Content: "  You should file a complaint with the tehsildar.  "}, lawyerActor)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.ID, utils.ResponseIDPrefix+"_"))
	assert.Equal(t, "You should file a complaint with the tehsildar.", resp.Content)
	assert.Equal(t, models.RoleLawyer, resp.ResponderType)
	assert.Equal(t, lawyerActor.UserID, resp.ResponderID)
	assert.Equal(t, lawyerActor.Name, resp.ResponderName)
	assert.Zero(t, resp.Helpful)
	assert.Zero(t, resp.NotHelpful)

	_, err = env.svc.AddResponse(ctx, created.ID, models.ResponseInput{Content: "Second reply in the thread"}, citizenActor)
	require.NoError(t, err)

	stored, err := env.svc.Repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Responses, 2)
	assert.Equal(t, resp.ID, stored.Responses[0].ID)
	assert.True(t, stored.UpdatedAt.After(created.UpdatedAt))
}

func TestAddResponse_Errors(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)

	_, err = env.svc.AddResponse(ctx, created.ID, models.ResponseInput{Content: "short"}, citizenActor)
	appErr := requireKind(t, err, utils.KindValidation)
	assert.Equal(t, "Response must be between 10 and 1000 characters", appErr.Errors[0].Message)

	_, err = env.svc.AddResponse(ctx, "LI_missing", models.ResponseInput{Content: "A perfectly fine response"}, citizenActor)
	requireKind(t, err, utils.KindNotFound)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)

	updated, err := env.svc.UpdateStatus(ctx, created.ID, models.StatusUpdate{Status: models.StatusResolved, Notes: "Settled"}, lawyerActor)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	assert.Equal(t, "Settled", updated.Notes)

	// Any status may follow any other, and empty notes keep the previous ones.
	updated, err = env.svc.UpdateStatus(ctx, created.ID, models.StatusUpdate{Status: models.StatusPending}, lawyerActor)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Equal(t, "Settled", updated.Notes)

	last := env.notifier.sent[len(env.notifier.sent)-1]
	assert.Equal(t, models.IssueRoom(created.ID), last.room)
	assert.Equal(t, models.EventIssueStatusChanged, last.event)
}

func TestUpdateStatus_Errors(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)

	_, err = env.svc.UpdateStatus(ctx, created.ID, models.StatusUpdate{Status: models.StatusClosed}, citizenActor)
	requireKind(t, err, utils.KindForbidden)

	_, err = env.svc.UpdateStatus(ctx, created.ID, models.StatusUpdate{Status: "archived"}, lawyerActor)
	appErr := requireKind(t, err, utils.KindValidation)
	assert.Equal(t, "Valid status is required", appErr.Errors[0].Message)

	_, err = env.svc.UpdateStatus(ctx, "LI_missing", models.StatusUpdate{Status: models.StatusClosed}, lawyerActor)
	requireKind(t, err, utils.KindNotFound)
}

func TestAssignLawyer(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.lawyers.Create(ctx, &models.Lawyer{
		ID: "LAW_1", FirstName: "Priya", LastName: "Sharma",
		Email: "priya@example.com", Phone: "9876543210", BarCouncilNumber: "MAH/1",
	}))
	created, err := env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)

	updated, err := env.svc.AssignLawyer(ctx, created.ID, models.AssignmentRequest{LawyerID: "LAW_1"}, lawyerActor)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	require.NotNil(t, updated.AssignedLawyer)
	assert.Equal(t, "LAW_1", updated.AssignedLawyer.ID)
	assert.Equal(t, "Priya Sharma", updated.AssignedLawyer.Name)
	assert.Equal(t, lawyerActor.UserID, updated.AssignedLawyer.AssignedBy)

	last := env.notifier.sent[len(env.notifier.sent)-1]
	assert.Equal(t, models.EventLawyerAssigned, last.event)
}

func TestAssignLawyer_Errors(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)

	_, err = env.svc.AssignLawyer(ctx, created.ID, models.AssignmentRequest{LawyerID: "LAW_1"}, citizenActor)
	requireKind(t, err, utils.KindForbidden)

	_, err = env.svc.AssignLawyer(ctx, created.ID, models.AssignmentRequest{}, lawyerActor)
	appErr := requireKind(t, err, utils.KindValidation)
	assert.Equal(t, "Lawyer ID is required", appErr.Errors[0].Message)

	_, err = env.svc.AssignLawyer(ctx, created.ID, models.AssignmentRequest{LawyerID: "LAW_unknown"}, lawyerActor)
	appErr = requireKind(t, err, utils.KindNotFound)
	assert.Equal(t, "Lawyer not found", appErr.Message)

	_, err = env.svc.AssignLawyer(ctx, "LI_missing", models.AssignmentRequest{LawyerID: "LAW_1"}, lawyerActor)
	appErr = requireKind(t, err, utils.KindNotFound)
	assert.Equal(t, "Legal issue not found", appErr.Message)

	stored, err := env.svc.Repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Nil(t, stored.AssignedLawyer)
}

func TestStats_Empty(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	stats, err := env.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.ResolutionRate)
	assert.NotNil(t, stats.Categories)
	assert.Empty(t, stats.Categories)
	assert.NotNil(t, stats.Languages)
	assert.NotNil(t, stats.Urgency)
}

func TestStats_Counts(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	emergency := validSubmission()
	emergency.Urgency = models.UrgencyEmergency
	emergency.Language = "en"

	first, err := env.svc.Submit(ctx, emergency, nil)
	require.NoError(t, err)
	_, err = env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)
	_, err = env.svc.Submit(ctx, validSubmission(), nil)
	require.NoError(t, err)
	_, err = env.svc.UpdateStatus(ctx, first.ID, models.StatusUpdate{Status: models.StatusResolved}, lawyerActor)
	require.NoError(t, err)

	stats, err := env.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Resolved)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Emergency)
	assert.InDelta(t, 33.33, stats.ResolutionRate, 0.0001)
	assert.Equal(t, map[string]int{"property": 3}, stats.Categories)
	assert.Equal(t, map[string]int{"en": 1, "hi": 2}, stats.Languages)
	assert.Equal(t, map[string]int{"emergency": 1, "high": 2}, stats.Urgency)
}
