package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/config"
)

const planDateLayout = "2006-01-02"

// StudyPlanService generates and maintains study plans. Plans decompose a
// course's upcoming assignments into scheduled study tasks; when the planner
// model is enabled, each task also gets suggested resources.
type StudyPlanService struct {
	planRepo       *repositories.StudyPlanRepository
	taskRepo       *repositories.StudyTaskRepository
	assignmentRepo *repositories.AssignmentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	courseRepo     *repositories.CourseRepository
	client         *openai.Client
	cfg            config.PlannerConfig
	logger         zerolog.Logger
}

// NewStudyPlanService creates a new StudyPlanService. The OpenAI client is
// only constructed when the planner model is enabled in config.
func NewStudyPlanService(
	repos *repositories.Repositories,
	cfg config.PlannerConfig,
	logger zerolog.Logger,
) *StudyPlanService {
	s := &StudyPlanService{
		planRepo:       repos.StudyPlanRepository,
		taskRepo:       repos.StudyTaskRepository,
		assignmentRepo: repos.AssignmentRepository,
		enrollmentRepo: repos.EnrollmentRepository,
		courseRepo:     repos.CourseRepository,
		cfg:            cfg,
		logger:         logger,
	}

	if cfg.Enabled && cfg.APIKey != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		s.client = openai.NewClientWithConfig(clientConfig)
	}

	return s
}

// GeneratePlan creates a plan for the student and fills it with study tasks
// derived from upcoming assignments. Dates default to today and thirty days
// out when the request omits them.
func (s *StudyPlanService) GeneratePlan(ctx context.Context, studentID int64, req *dto.GenerateStudyPlanRequest) (*models.StudyPlan, []*models.StudyTask, error) {
	startDate := time.Now().Truncate(24 * time.Hour)
	if req.StartDate != nil {
		parsed, err := time.Parse(planDateLayout, *req.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start date: %w", err)
		}
		startDate = parsed
	}

	endDate := startDate.AddDate(0, 0, 30)
	if req.EndDate != nil {
		parsed, err := time.Parse(planDateLayout, *req.EndDate)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid end date: %w", err)
		}
		endDate = parsed
	}
	if !endDate.After(startDate) {
		return nil, nil, fmt.Errorf("end date must be after start date")
	}

	planName := req.PlanName
	if planName == "" {
		var courseName string
		if req.CourseID != nil {
			courseName = "Course"
			if course, err := s.courseRepo.GetByID(ctx, *req.CourseID); err == nil && course != nil {
				courseName = course.CourseName
			}
		}
		planName = derivePlanName(courseName, startDate)
	}

	plan := &models.StudyPlan{
		StudentID: studentID,
		CourseID:  req.CourseID,
		PlanName:  planName,
		StartDate: &startDate,
		EndDate:   &endDate,
		Status:    models.StudyPlanStatusActive,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, nil, fmt.Errorf("error creating plan: %w", err)
	}

	assignments, err := s.upcomingAssignments(ctx, studentID, req.CourseID, startDate, endDate)
	if err != nil {
		return nil, nil, err
	}

	tasks := buildStudyTasks(*plan.PlanID, assignments, startDate, endDate)
	for _, task := range tasks {
		if s.client != nil {
			s.attachSuggestions(ctx, task)
		}
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return nil, nil, fmt.Errorf("error creating study task: %w", err)
		}
	}

	return plan, tasks, nil
}

// derivePlanName names an unnamed plan after its course, or after the month
// the plan starts when no course is attached.
func derivePlanName(courseName string, start time.Time) string {
	if courseName != "" {
		return "Study Plan for " + courseName
	}
	return "Study Plan - " + start.Format("January 2006")
}

// upcomingAssignments collects the assignments inside the plan window, from
// one course or from every course the student is enrolled in.
func (s *StudyPlanService) upcomingAssignments(ctx context.Context, studentID int64, courseID *int64, start, end time.Time) ([]*models.Assignment, error) {
	var courseIDs []int64
	if courseID != nil {
		courseIDs = []int64{*courseID}
	} else {
		enrollments, err := s.enrollmentRepo.GetByStudent(ctx, studentID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving enrollments: %w", err)
		}
		for _, e := range enrollments {
			if e.Status == models.EnrollmentStatusEnrolled {
				courseIDs = append(courseIDs, e.CourseID)
			}
		}
	}

	var upcoming []*models.Assignment
	for _, id := range courseIDs {
		assignments, err := s.assignmentRepo.GetByCourse(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("error retrieving assignments: %w", err)
		}
		for _, a := range assignments {
			if a.DueDate == nil {
				continue
			}
			if a.DueDate.Before(start) || a.DueDate.After(end) {
				continue
			}
			upcoming = append(upcoming, a)
		}
	}

	return upcoming, nil
}

// buildStudyTasks derives one study task per assignment, due two days before
// the assignment. When no assignments fall in the window, it spreads generic
// review tasks across the plan, one per week.
func buildStudyTasks(planID int64, assignments []*models.Assignment, start, end time.Time) []*models.StudyTask {
	var tasks []*models.StudyTask

	for _, a := range assignments {
		dueDate := a.DueDate.AddDate(0, 0, -2)
		if dueDate.Before(start) {
			dueDate = *a.DueDate
		}
		hours := estimateHours(a.MaxScore)
		description := fmt.Sprintf("Prepare for assignment: %s", a.Title)

		tasks = append(tasks, &models.StudyTask{
			PlanID:         planID,
			TaskTitle:      fmt.Sprintf("Study for %s", a.Title),
			Description:    &description,
			EstimatedHours: &hours,
			DueDate:        &dueDate,
			Priority:       priorityForDue(dueDate, start, end),
			Status:         models.StudyTaskStatusPending,
		})
	}

	if len(tasks) > 0 {
		return tasks
	}

	week := 1
	for due := start.AddDate(0, 0, 7); !due.After(end); due = due.AddDate(0, 0, 7) {
		hours := 4.0
		description := "General review and practice"
		dueCopy := due

		tasks = append(tasks, &models.StudyTask{
			PlanID:         planID,
			TaskTitle:      fmt.Sprintf("Week %d review", week),
			Description:    &description,
			EstimatedHours: &hours,
			DueDate:        &dueCopy,
			Priority:       models.PriorityMedium,
			Status:         models.StudyTaskStatusPending,
		})
		week++
	}

	return tasks
}

func estimateHours(maxScore float64) float64 {
	switch {
	case maxScore >= 100:
		return 8
	case maxScore >= 50:
		return 5
	default:
		return 3
	}
}

// priorityForDue ranks tasks by where they fall in the plan window: the first
// third is High, the middle Medium, the rest Low.
func priorityForDue(due, start, end time.Time) string {
	window := end.Sub(start)
	if window <= 0 {
		return models.PriorityMedium
	}
	offset := due.Sub(start)
	switch {
	case offset < window/3:
		return models.PriorityHigh
	case offset < 2*window/3:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// attachSuggestions asks the planner model for study resources. Failures are
// logged and skipped; the task is created without suggestions.
func (s *StudyPlanService) attachSuggestions(ctx context.Context, task *models.StudyTask) {
	prompt := fmt.Sprintf(
		"Suggest up to three study resources for the task %q. Reply as a JSON array of short strings.",
		task.TaskTitle)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("task", task.TaskTitle).Msg("Planner suggestion request failed")
		return
	}
	if len(resp.Choices) == 0 {
		return
	}

	content := resp.Choices[0].Message.Content
	var suggestions []string
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil {
		// keep the raw reply rather than losing it
		task.SuggestedResources = &content
		return
	}

	serialized, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	resources := string(serialized)
	task.SuggestedResources = &resources
}

// UpdateTaskProgress applies a status change and recomputes the plan's
// completion percentage
func (s *StudyPlanService) UpdateTaskProgress(ctx context.Context, taskID int64, req *dto.UpdateStudyTaskRequest) (*models.StudyTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	task.Status = req.Status
	if req.ActualHours != nil {
		task.ActualHours = req.ActualHours
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	if err := s.recomputeCompletion(ctx, task.PlanID); err != nil {
		s.logger.Warn().Err(err).Int64("planID", task.PlanID).Msg("Failed to recompute plan completion")
	}

	return task, nil
}

func (s *StudyPlanService) recomputeCompletion(ctx context.Context, planID int64) error {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan == nil {
		return nil
	}

	tasks, err := s.taskRepo.GetByPlan(ctx, planID)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		plan.CompletionPercentage = 0
	} else {
		completed := 0
		for _, t := range tasks {
			if t.Status == models.StudyTaskStatusCompleted {
				completed++
			}
		}
		plan.CompletionPercentage = float64(completed) / float64(len(tasks)) * 100
	}

	if plan.CompletionPercentage >= 100 {
		plan.Status = models.StudyPlanStatusCompleted
	}

	return s.planRepo.Update(ctx, plan)
}
