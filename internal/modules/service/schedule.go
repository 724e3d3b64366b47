package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/config"
	mq "github.com/modelday/modelday/internal/infra/queue"
	"github.com/modelday/modelday/internal/modules/model"
	"github.com/modelday/modelday/internal/modules/repo"
	"github.com/modelday/modelday/internal/pkg/parser"
	"github.com/modelday/modelday/internal/pkg/prompt"
	"github.com/modelday/modelday/internal/pkg/timeconv"
	"github.com/modelday/modelday/internal/pkg/tokenizer"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TextGenerator produces a raw completion for a prompt. Satisfied by
// aiclient.GeminiClient; faked in tests.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ScheduleService interface {
	Customize(ctx context.Context, in CustomizeScheduleInput) (*CustomizeScheduleOutput, error)
	Confirm(ctx context.Context, in ConfirmScheduleInput) (*ConfirmScheduleOutput, error)
	ActiveSchedule(ctx context.Context, userID uuid.UUID) (*model.UserSchedule, error)
	Stop(ctx context.Context, userID uuid.UUID) (*StopScheduleOutput, error)
}

type scheduleService struct {
	schedules repo.ScheduleRepo
	users     repo.UserRepo
	rankings  repo.RankingRepo
	roleModel RoleModelService
	ai        TextGenerator
	publisher *mq.Publisher
	cfg       *config.Config
	log       *zap.Logger
}

func NewScheduleService(
	schedules repo.ScheduleRepo,
	users repo.UserRepo,
	rankings repo.RankingRepo,
	roleModel RoleModelService,
	ai TextGenerator,
	publisher *mq.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		users:     users,
		rankings:  rankings,
		roleModel: roleModel,
		ai:        ai,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
	}
}

type CustomizeScheduleInput struct {
	UserID          uuid.UUID        `json:"userId"`
	RoleModelID     uuid.UUID        `json:"roleModelId"`
	CurrentSchedule []model.TimeSlot `json:"currentSchedule"`
	UserQuery       string           `json:"userQuery"`
}

type CustomizeScheduleOutput struct {
	Message          string           `json:"message"`
	ModifiedSchedule []model.TimeSlot `json:"modifiedSchedule"`
	OriginalSchedule []model.TimeSlot `json:"originalSchedule"`
}

func (s *scheduleService) Customize(ctx context.Context, in CustomizeScheduleInput) (*CustomizeScheduleOutput, error) {
	philosophy := ""
	rm, err := s.roleModel.Get(ctx, in.RoleModelID)
	switch {
	case err == nil:
		philosophy = rm.Philosophy
	case errors.Is(err, ErrRoleModelNotFound):
		// The prompt builder falls back to a generic philosophy.
	default:
		return nil, err
	}

	p := prompt.Build(in.CurrentSchedule, in.UserQuery, philosophy)

	// Long schedules are serialized without truncation; just flag the risk.
	if warn := s.cfg.Gemini.PromptTokenWarn; warn > 0 {
		if est, terr := tokenizer.CountTokens(p); terr == nil && est > warn {
			s.log.Warn("prompt exceeds token warning threshold",
				zap.Int("estimated_tokens", est),
				zap.Int("threshold", warn),
				zap.String("user_id", in.UserID.String()))
		}
	}

	completion, err := s.ai.Generate(ctx, p)
	if err != nil {
		return nil, err
	}

	result, err := parser.Parse(completion)
	if err != nil {
		return nil, err
	}

	return &CustomizeScheduleOutput{
		Message:          result.Explanation,
		ModifiedSchedule: result.Schedule,
		OriginalSchedule: in.CurrentSchedule,
	}, nil
}

type ConfirmScheduleInput struct {
	UserID        uuid.UUID        `json:"userId"`
	RoleModelID   uuid.UUID        `json:"roleModelId"`
	RoleModelName string           `json:"roleModelName"`
	Schedule      []model.TimeSlot `json:"schedule"`
}

type ConfirmScheduleOutput struct {
	UserScheduleID uuid.UUID `json:"userScheduleId"`
	TasksCreated   int       `json:"tasksCreated"`
	Message        string    `json:"message"`
}

// confirmState tracks how far the confirm saga has progressed, which decides
// what must be compensated when a later step fails. The three resources
// (header, tasks, user pointer) live behind separate calls with no shared
// transaction, so rollback is explicit.
type confirmState int

const (
	confirmStart confirmState = iota
	confirmCheckedNoActive
	confirmHeaderCreated
	confirmTasksCreated
	confirmUserLinked
)

func (s *scheduleService) Confirm(ctx context.Context, in ConfirmScheduleInput) (*ConfirmScheduleOutput, error) {
	state := confirmStart

	// Precondition: no active schedule. This read is advisory; the
	// authoritative guard is the conditional link update below.
	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.ActiveScheduleID != nil {
		return nil, ErrActiveScheduleExists
	}

	if _, err := s.roleModel.Get(ctx, in.RoleModelID); err != nil {
		return nil, err
	}
	state = confirmCheckedNoActive

	start := time.Now()
	durationDays := s.cfg.Schedule.DurationDays
	if durationDays <= 0 {
		durationDays = 1
	}
	header := &model.UserSchedule{
		UserID:        in.UserID,
		RoleModelID:   in.RoleModelID,
		RoleModelName: in.RoleModelName,
		Status:        model.ScheduleStatusActive,
		TotalScore:    0,
		StartDate:     datatypes.Date(start),
		EndDate:       datatypes.Date(start.AddDate(0, 0, durationDays)),
	}
	if err := s.schedules.Create(ctx, header); err != nil {
		return nil, &PersistenceError{Step: "create_header", Err: err}
	}
	state = confirmHeaderCreated

	tasks := buildTasks(header.ID, in.Schedule)
	if err := s.schedules.CreateTasks(ctx, tasks); err != nil {
		s.rollback(ctx, state, header.ID)
		return nil, &PersistenceError{Step: "create_tasks", Err: err}
	}
	state = confirmTasksCreated

	claimed, err := s.users.LinkActiveSchedule(ctx, in.UserID, header.ID)
	if err != nil {
		s.rollback(ctx, state, header.ID)
		return nil, &PersistenceError{Step: "link_user", Err: err}
	}
	if !claimed {
		// Lost a confirm race: another schedule was linked between the
		// precondition read and this update. Clean up our rows.
		s.rollback(ctx, state, header.ID)
		return nil, ErrActiveScheduleExists
	}
	return &ConfirmScheduleOutput{
		UserScheduleID: header.ID,
		TasksCreated:   len(tasks),
		Message:        "Schedule confirmed successfully",
	}, nil
}

// rollback issues the compensating deletes owed by the given state.
// Best-effort: a failed compensation is logged and the caller still returns
// the original error.
func (s *scheduleService) rollback(ctx context.Context, state confirmState, scheduleID uuid.UUID) {
	if state >= confirmTasksCreated {
		if err := s.schedules.DeleteTasks(ctx, scheduleID); err != nil {
			s.log.Error("rollback: failed to delete schedule tasks",
				zap.String("schedule_id", scheduleID.String()),
				zap.Error(err))
		}
	}
	if state >= confirmHeaderCreated {
		if err := s.schedules.Delete(ctx, scheduleID); err != nil {
			s.log.Error("rollback: failed to delete schedule header",
				zap.String("schedule_id", scheduleID.String()),
				zap.Error(err))
		}
	}
}

func buildTasks(scheduleID uuid.UUID, slots []model.TimeSlot) []model.UserTask {
	tasks := make([]model.UserTask, 0, len(slots))
	for i, slot := range slots {
		start := timeconv.To24Hour(slot.Time)
		minutes := timeconv.DurationMinutes(slot.Activity)
		tasks = append(tasks, model.UserTask{
			UserScheduleID: scheduleID,
			StartTime:      start,
			EndTime:        timeconv.EndTime(start, minutes),
			ActivityName:   slot.Activity,
			Category:       timeconv.DBCategory(slot.Category),
			DisplayOrder:   i + 1,
		})
	}
	return tasks
}

func (s *scheduleService) ActiveSchedule(ctx context.Context, userID uuid.UUID) (*model.UserSchedule, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.ActiveScheduleID == nil {
		return nil, nil
	}
	return s.schedules.GetByIDWithTasks(ctx, *user.ActiveScheduleID)
}

type StopScheduleOutput struct {
	UserScheduleID uuid.UUID `json:"userScheduleId"`
	FinalScore     int       `json:"finalScore"`
}

// ScheduleCompletedMQ is published when a schedule finishes.
type ScheduleCompletedMQ struct {
	UserID         uuid.UUID `json:"user_id"`
	UserScheduleID uuid.UUID `json:"user_schedule_id"`
	RoleModelName  string    `json:"role_model_name"`
	FinalScore     int       `json:"final_score"`
}

func (s *scheduleService) Stop(ctx context.Context, userID uuid.UUID) (*StopScheduleOutput, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.ActiveScheduleID == nil {
		return nil, ErrNoActiveSchedule
	}

	header, err := s.schedules.GetByID(ctx, *user.ActiveScheduleID)
	if err != nil {
		return nil, err
	}

	if err := s.schedules.UpdateStatus(ctx, header.ID, model.ScheduleStatusCompleted); err != nil {
		return nil, err
	}
	if err := s.users.ClearActiveSchedule(ctx, userID); err != nil {
		return nil, err
	}

	// Snapshot the final score on the leaderboard. Denormalized names keep
	// ranking reads free of joins.
	if err := s.rankings.Create(ctx, &model.Ranking{
		UserID:         userID,
		UserScheduleID: header.ID,
		UserName:       user.Name,
		RoleModelName:  header.RoleModelName,
		FinalScore:     header.TotalScore,
	}); err != nil {
		s.log.Error("failed to record ranking snapshot",
			zap.String("schedule_id", header.ID.String()),
			zap.Error(err))
	}

	if s.publisher != nil {
		if pubErr := s.publisher.PublishJSON(ctx,
			s.cfg.RabbitMQ.ExchangeName.Schedule,
			s.cfg.RabbitMQ.RoutingKey.ScheduleCompleted,
			ScheduleCompletedMQ{
				UserID:         userID,
				UserScheduleID: header.ID,
				RoleModelName:  header.RoleModelName,
				FinalScore:     header.TotalScore,
			}); pubErr != nil {
			s.log.Error("failed to publish schedule completed event",
				zap.String("schedule_id", header.ID.String()),
				zap.Error(pubErr))
		}
	}

	return &StopScheduleOutput{
		UserScheduleID: header.ID,
		FinalScore:     header.TotalScore,
	}, nil
}
