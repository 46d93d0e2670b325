package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	aiRepo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/analyzer"
	catRepo "smart-todo-backend/internal/category/repository"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	"smart-todo-backend/internal/task/repository"
	"smart-todo-backend/internal/task/usecase"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockTaskRepo struct {
	tasks       map[string]model.Task
	created     []repository.CreateTaskOptions
	updated     []repository.UpdateTaskOptions
	suggestions []repository.SetAISuggestionOptions
	bulkUpdated *repository.BulkUpdateTasksOptions
	statsRow    repository.StatsRow
	listResult  []model.Task
	comments    []model.TaskComment
	failCreate  bool
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.failCreate {
		return model.Task{}, errors.New("db error")
	}
	m.created = append(m.created, opt)
	return model.Task{
		ID:            opt.ID,
		UserID:        opt.UserID,
		Title:         opt.Title,
		Description:   opt.Description,
		Status:        model.TaskStatusTodo,
		Priority:      opt.Priority,
		PriorityScore: opt.PriorityScore,
		Deadline:      opt.Deadline,
		CategoryID:    opt.CategoryID,
	}, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	return m.listResult, len(m.listResult), nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.updated = append(m.updated, opt)
	return model.Task{
		ID:            opt.ID,
		UserID:        opt.UserID,
		Title:         opt.Title,
		Description:   opt.Description,
		Status:        opt.Status,
		Priority:      opt.Priority,
		PriorityScore: opt.PriorityScore,
		Deadline:      opt.Deadline,
		CategoryID:    opt.CategoryID,
		CompletedAt:   opt.CompletedAt,
	}, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, userID, id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskRepo) BulkUpdateTasks(ctx context.Context, opt repository.BulkUpdateTasksOptions) (int, error) {
	m.bulkUpdated = &opt
	return len(opt.TaskIDs), nil
}

func (m *mockTaskRepo) CountOwnedTasks(ctx context.Context, userID string, ids []string) (int, error) {
	owned := 0
	for _, id := range ids {
		if t, ok := m.tasks[id]; ok && t.UserID == userID {
			owned++
		}
	}
	return owned, nil
}

func (m *mockTaskRepo) StatsCounts(ctx context.Context, userID string, now time.Time) (repository.StatsRow, error) {
	return m.statsRow, nil
}

func (m *mockTaskRepo) SetAISuggestion(ctx context.Context, opt repository.SetAISuggestionOptions) error {
	m.suggestions = append(m.suggestions, opt)
	return nil
}

func (m *mockTaskRepo) CreateComment(ctx context.Context, opt repository.CreateCommentOptions) (model.TaskComment, error) {
	c := model.TaskComment{ID: opt.ID, TaskID: opt.TaskID, UserID: opt.UserID, Content: opt.Content}
	m.comments = append(m.comments, c)
	return c, nil
}

func (m *mockTaskRepo) ListComments(ctx context.Context, taskID string) ([]model.TaskComment, error) {
	return m.comments, nil
}

type mockCategoryRepo struct {
	categories map[string]model.Category
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, opt catRepo.CreateCategoryOptions) (model.Category, error) {
	return model.Category{}, nil
}

func (m *mockCategoryRepo) GetOneCategory(ctx context.Context, opt catRepo.GetOneCategoryOptions) (model.Category, error) {
	c, ok := m.categories[opt.ID]
	if !ok || (opt.UserID != "" && c.UserID != opt.UserID) {
		return model.Category{}, nil
	}
	return c, nil
}

func (m *mockCategoryRepo) ListCategories(ctx context.Context, opt catRepo.ListCategoriesOptions) ([]model.Category, int, error) {
	return nil, 0, nil
}

func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, opt catRepo.UpdateCategoryOptions) (model.Category, error) {
	return model.Category{}, nil
}

func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, userID, id string) error {
	return nil
}

func (m *mockCategoryRepo) CountTasks(ctx context.Context, userID, id string) (int, error) {
	return 0, nil
}

type mockAIRepo struct {
	saved []aiRepo.SaveTaskAnalysisOptions
}

func (m *mockAIRepo) CreateAIRequest(ctx context.Context, opt aiRepo.CreateAIRequestOptions) (model.AIRequest, error) {
	return model.AIRequest{ID: opt.ID}, nil
}

func (m *mockAIRepo) ListAIRequests(ctx context.Context, opt aiRepo.ListAIRequestsOptions) ([]model.AIRequest, int, error) {
	return nil, 0, nil
}

func (m *mockAIRepo) GetPreferences(ctx context.Context, userID string) (model.UserAIPreferences, error) {
	return model.UserAIPreferences{}, nil
}

func (m *mockAIRepo) UpsertPreferences(ctx context.Context, opt aiRepo.UpsertPreferencesOptions) (model.UserAIPreferences, error) {
	return model.UserAIPreferences{}, nil
}

func (m *mockAIRepo) SaveTaskAnalysis(ctx context.Context, opt aiRepo.SaveTaskAnalysisOptions) (model.TaskAIAnalysis, error) {
	m.saved = append(m.saved, opt)
	return model.TaskAIAnalysis{ID: opt.ID, TaskID: opt.TaskID}, nil
}

func (m *mockAIRepo) GetOneTaskAnalysis(ctx context.Context, opt aiRepo.GetOneTaskAnalysisOptions) (model.TaskAIAnalysis, error) {
	return model.TaskAIAnalysis{}, nil
}

type mockAnalyzer struct {
	taskAnalysis   analyzer.TaskAnalysis
	prioritization analyzer.Prioritization
	ranked         []model.Task
}

func (m *mockAnalyzer) AnalyzeTask(ctx context.Context, sc model.Scope, t model.Task) (analyzer.TaskAnalysis, error) {
	m.taskAnalysis.TaskID = t.ID
	return m.taskAnalysis, nil
}

func (m *mockAnalyzer) PrioritizeTasks(ctx context.Context, sc model.Scope, tasks []model.Task) (analyzer.Prioritization, error) {
	m.ranked = tasks
	return m.prioritization, nil
}

func (m *mockAnalyzer) AnalyzeContext(ctx context.Context, sc model.Scope, entry model.ContextEntry) (analyzer.ContextAnalysis, error) {
	return analyzer.ContextAnalysis{}, nil
}

var sc = model.Scope{UserID: "u1", Email: "u1@example.com"}

func newTestUseCase(repo *mockTaskRepo, cats *mockCategoryRepo) task.UseCase {
	if repo.tasks == nil {
		repo.tasks = map[string]model.Task{}
	}
	if cats == nil {
		cats = &mockCategoryRepo{categories: map[string]model.Category{}}
	}
	return usecase.New(repo, cats, &mockAIRepo{}, &mockAnalyzer{}, &mockLogger{})
}

func TestCreateDefaults(t *testing.T) {
	repo := &mockTaskRepo{}
	uc := newTestUseCase(repo, nil)

	out, err := uc.Create(context.Background(), sc, task.CreateInput{Title: "Write the quarterly report"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Priority != model.TaskPriorityMedium {
		t.Errorf("Priority = %q, want medium", out.Task.Priority)
	}
	if out.Task.PriorityScore != model.DefaultPriorityScore {
		t.Errorf("PriorityScore = %d, want %d", out.Task.PriorityScore, model.DefaultPriorityScore)
	}
	if out.Task.Status != model.TaskStatusTodo {
		t.Errorf("Status = %q, want todo", out.Task.Status)
	}
	if out.Task.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestCreateValidation(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepo{}, nil)
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name  string
		input task.CreateInput
		want  error
	}{
		{"short title", task.CreateInput{Title: "ab"}, task.ErrTitleTooShort},
		{"whitespace title", task.CreateInput{Title: "   "}, task.ErrTitleTooShort},
		{"past deadline", task.CreateInput{Title: "Valid title", Deadline: &past}, task.ErrDeadlineInPast},
		{"bad priority", task.CreateInput{Title: "Valid title", Priority: "extreme"}, task.ErrInvalidPriority},
		{"missing category", task.CreateInput{Title: "Valid title", CategoryID: "nope"}, task.ErrCategoryNotFound},
	}
	for _, tc := range cases {
		if _, err := uc.Create(context.Background(), sc, tc.input); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestCreateWithCategory(t *testing.T) {
	repo := &mockTaskRepo{}
	cats := &mockCategoryRepo{categories: map[string]model.Category{
		"cat1": {ID: "cat1", UserID: "u1", Name: "Work"},
	}}
	uc := newTestUseCase(repo, cats)

	out, err := uc.Create(context.Background(), sc, task.CreateInput{Title: "File the expense report", CategoryID: "cat1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.CategoryID != "cat1" {
		t.Errorf("CategoryID = %q, want cat1", out.Task.CategoryID)
	}
}

func TestCreateRepositoryError(t *testing.T) {
	repo := &mockTaskRepo{failCreate: true}
	uc := newTestUseCase(repo, nil)

	if _, err := uc.Create(context.Background(), sc, task.CreateInput{Title: "Valid title"}); err == nil {
		t.Fatal("expected the repository error to surface")
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepo{}, nil)

	if _, err := uc.Detail(context.Background(), sc, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDetailScopedToOwner(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "someone-else", Title: "Theirs"},
	}}
	uc := newTestUseCase(repo, nil)

	if _, err := uc.Detail(context.Background(), sc, "t1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound for another user's task", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "u1", Title: "Original title", Description: "keep me",
			Status: model.TaskStatusTodo, Priority: model.TaskPriorityLow, PriorityScore: 30},
	}}
	uc := newTestUseCase(repo, nil)

	out, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: "t1", Status: model.TaskStatusInProgress})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Title != "Original title" {
		t.Errorf("Title = %q, want unchanged", out.Task.Title)
	}
	if out.Task.Description != "keep me" {
		t.Errorf("Description = %q, want unchanged", out.Task.Description)
	}
	if out.Task.Status != model.TaskStatusInProgress {
		t.Errorf("Status = %q, want in_progress", out.Task.Status)
	}
}

func TestUpdateClearDeadline(t *testing.T) {
	deadline := time.Now().Add(24 * time.Hour)
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "u1", Title: "With deadline", Deadline: &deadline,
			Status: model.TaskStatusTodo, Priority: model.TaskPriorityMedium},
	}}
	uc := newTestUseCase(repo, nil)

	out, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: "t1", ClearDeadline: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Deadline != nil {
		t.Errorf("Deadline = %v, want nil", out.Task.Deadline)
	}
}

func TestMarkCompleted(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "u1", Title: "Do the thing", Status: model.TaskStatusTodo, Priority: model.TaskPriorityMedium},
	}}
	uc := newTestUseCase(repo, nil)

	out, err := uc.MarkCompleted(context.Background(), sc, "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Status != model.TaskStatusCompleted {
		t.Errorf("Status = %q, want completed", out.Task.Status)
	}
	if out.Task.CompletedAt == nil {
		t.Error("CompletedAt should be stamped")
	}
}

func TestMarkCompletedTwice(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "u1", Title: "Done already", Status: model.TaskStatusCompleted},
	}}
	uc := newTestUseCase(repo, nil)

	if _, err := uc.MarkCompleted(context.Background(), sc, "t1"); !errors.Is(err, task.ErrAlreadyCompleted) {
		t.Errorf("err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestByStatusAlwaysHasAllBuckets(t *testing.T) {
	repo := &mockTaskRepo{listResult: []model.Task{
		{ID: "t1", Status: model.TaskStatusTodo},
		{ID: "t2", Status: model.TaskStatusTodo},
		{ID: "t3", Status: model.TaskStatusCompleted},
	}}
	uc := newTestUseCase(repo, nil)

	out, err := uc.ByStatus(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Groups) != 4 {
		t.Errorf("expected 4 buckets, got %d", len(out.Groups))
	}
	if len(out.Groups[model.TaskStatusTodo]) != 2 {
		t.Errorf("todo bucket = %d, want 2", len(out.Groups[model.TaskStatusTodo]))
	}
	if out.Groups[model.TaskStatusCancelled] == nil {
		t.Error("empty buckets must be non-nil")
	}
}

func TestDashboardStatsCompletionRate(t *testing.T) {
	repo := &mockTaskRepo{statsRow: repository.StatsRow{Total: 8, Completed: 2, Todo: 6}}
	uc := newTestUseCase(repo, nil)

	out, err := uc.DashboardStats(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Stats.CompletionRate != 25 {
		t.Errorf("CompletionRate = %f, want 25", out.Stats.CompletionRate)
	}
}

func TestDashboardStatsPriorityBreakdown(t *testing.T) {
	repo := &mockTaskRepo{statsRow: repository.StatsRow{
		Total:            10,
		PriorityLow:      1,
		PriorityMedium:   4,
		PriorityHigh:     3,
		PriorityUrgent:   2,
		AvgPriorityScore: 57.5,
	}}
	uc := newTestUseCase(repo, nil)

	out, err := uc.DashboardStats(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[model.TaskPriority]int{
		model.TaskPriorityLow:    1,
		model.TaskPriorityMedium: 4,
		model.TaskPriorityHigh:   3,
		model.TaskPriorityUrgent: 2,
	}
	for p, n := range want {
		if out.Stats.ByPriority[p] != n {
			t.Errorf("ByPriority[%s] = %d, want %d", p, out.Stats.ByPriority[p], n)
		}
	}
	if out.Stats.AvgPriorityScore != 57.5 {
		t.Errorf("AvgPriorityScore = %f, want 57.5", out.Stats.AvgPriorityScore)
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepo{}, nil)

	out, err := uc.DashboardStats(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Stats.CompletionRate != 0 {
		t.Errorf("CompletionRate = %f, want 0 with no tasks", out.Stats.CompletionRate)
	}
}

func TestBulkUpdateValidation(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepo{}, nil)

	cases := []struct {
		name  string
		input task.BulkUpdateInput
		want  error
	}{
		{"no ids", task.BulkUpdateInput{Status: model.TaskStatusTodo}, task.ErrEmptyBulkUpdate},
		{"no fields", task.BulkUpdateInput{TaskIDs: []string{"t1"}}, task.ErrEmptyBulkUpdate},
		{"bad status", task.BulkUpdateInput{TaskIDs: []string{"t1"}, Status: "paused"}, task.ErrInvalidStatus},
		{"bad priority", task.BulkUpdateInput{TaskIDs: []string{"t1"}, Priority: "extreme"}, task.ErrInvalidPriority},
	}
	for _, tc := range cases {
		if _, err := uc.BulkUpdate(context.Background(), sc, tc.input); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestBulkUpdateCompletedStampsTime(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "u1"},
		"t2": {ID: "t2", UserID: "u1"},
	}}
	uc := newTestUseCase(repo, nil)

	out, err := uc.BulkUpdate(context.Background(), sc, task.BulkUpdateInput{
		TaskIDs: []string{"t1", "t2"},
		Status:  model.TaskStatusCompleted,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Updated != 2 {
		t.Errorf("Updated = %d, want 2", out.Updated)
	}
	if repo.bulkUpdated == nil || repo.bulkUpdated.CompletedAt == nil {
		t.Error("completing via bulk update must stamp completed_at")
	}
}

func TestBulkUpdateRejectsForeignTasks(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "u1"},
		"t2": {ID: "t2", UserID: "someone-else"},
	}}
	uc := newTestUseCase(repo, nil)

	_, err := uc.BulkUpdate(context.Background(), sc, task.BulkUpdateInput{
		TaskIDs: []string{"t1", "t2"},
		Status:  model.TaskStatusCancelled,
	})
	if !errors.Is(err, task.ErrTasksNotOwned) {
		t.Fatalf("err = %v, want ErrTasksNotOwned", err)
	}
	if repo.bulkUpdated != nil {
		t.Error("no rows may change when any id in the batch is not owned")
	}
}

func TestBulkUpdateRejectsUnknownTasks(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "u1"},
	}}
	uc := newTestUseCase(repo, nil)

	_, err := uc.BulkUpdate(context.Background(), sc, task.BulkUpdateInput{
		TaskIDs:  []string{"t1", "missing"},
		Priority: model.TaskPriorityHigh,
	})
	if !errors.Is(err, task.ErrTasksNotOwned) {
		t.Fatalf("err = %v, want ErrTasksNotOwned", err)
	}
}

func TestPrioritizeNamedTasksOnly(t *testing.T) {
	repo := &mockTaskRepo{
		tasks: map[string]model.Task{
			"t1": {ID: "t1", UserID: "u1", Title: "File the report"},
			"t2": {ID: "t2", UserID: "u1", Title: "Plan the offsite"},
		},
		listResult: []model.Task{
			{ID: "t1", UserID: "u1"}, {ID: "t2", UserID: "u1"}, {ID: "t3", UserID: "u1"},
		},
	}
	cats := &mockCategoryRepo{categories: map[string]model.Category{}}
	az := &mockAnalyzer{}
	uc := usecase.New(repo, cats, &mockAIRepo{}, az, &mockLogger{})

	_, err := uc.Prioritize(context.Background(), sc, task.PrioritizeInput{TaskIDs: []string{"t2", "t1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(az.ranked) != 2 {
		t.Fatalf("ranked %d tasks, want the 2 named ones", len(az.ranked))
	}
	if az.ranked[0].ID != "t2" || az.ranked[1].ID != "t1" {
		t.Errorf("ranked = [%s %s], want requested order [t2 t1]", az.ranked[0].ID, az.ranked[1].ID)
	}
}

func TestPrioritizeAllOpenWhenNoIDs(t *testing.T) {
	repo := &mockTaskRepo{listResult: []model.Task{
		{ID: "t1", UserID: "u1"}, {ID: "t2", UserID: "u1"},
	}}
	cats := &mockCategoryRepo{categories: map[string]model.Category{}}
	az := &mockAnalyzer{}
	uc := usecase.New(repo, cats, &mockAIRepo{}, az, &mockLogger{})

	_, err := uc.Prioritize(context.Background(), sc, task.PrioritizeInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(az.ranked) != 2 {
		t.Errorf("ranked %d tasks, want all 2 open tasks", len(az.ranked))
	}
}

func TestPrioritizeRejectsForeignTasks(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "someone-else"},
	}}
	cats := &mockCategoryRepo{categories: map[string]model.Category{}}
	az := &mockAnalyzer{}
	uc := usecase.New(repo, cats, &mockAIRepo{}, az, &mockLogger{})

	_, err := uc.Prioritize(context.Background(), sc, task.PrioritizeInput{TaskIDs: []string{"t1"}})
	if !errors.Is(err, task.ErrTasksNotOwned) {
		t.Fatalf("err = %v, want ErrTasksNotOwned", err)
	}
	if az.ranked != nil {
		t.Error("nothing may be ranked when an id is not owned")
	}
}

func TestAnalyzeStoresResultAndSuggestion(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", UserID: "u1", Title: "Prepare the demo"},
	}}
	cats := &mockCategoryRepo{categories: map[string]model.Category{}}
	ai := &mockAIRepo{}
	deadline := time.Now().Add(72 * time.Hour)
	az := &mockAnalyzer{taskAnalysis: analyzer.TaskAnalysis{
		Priority: analyzer.PriorityAnalysis{SuggestedScore: 85, Factors: []string{"demo is client facing"}, Confidence: 80},
		Deadline: analyzer.DeadlineSuggestion{SuggestedDeadline: &deadline, Reasoning: "demo is in three days", Confidence: 75},
	}}
	uc := usecase.New(repo, cats, ai, az, &mockLogger{})

	out, err := uc.Analyze(context.Background(), sc, "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Analysis.Priority.SuggestedScore != 85 {
		t.Errorf("SuggestedScore = %d, want 85", out.Analysis.Priority.SuggestedScore)
	}
	if len(ai.saved) != 1 {
		t.Fatalf("expected 1 stored analysis, got %d", len(ai.saved))
	}
	if len(repo.suggestions) != 1 {
		t.Fatalf("expected the deadline suggestion on the task row, got %d", len(repo.suggestions))
	}
	if out.Task.AISuggestedDeadline == nil || !out.Task.AISuggestedDeadline.Equal(deadline) {
		t.Error("output task should carry the suggested deadline")
	}
}

func TestAddCommentChecksOwnership(t *testing.T) {
	repo := &mockTaskRepo{tasks: map[string]model.Task{}}
	uc := newTestUseCase(repo, nil)

	_, err := uc.AddComment(context.Background(), sc, task.AddCommentInput{TaskID: "missing", Content: "hello"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}
