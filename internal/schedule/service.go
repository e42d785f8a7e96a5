package schedule

import (
	"context"
	"regexp"
	"time"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/clock"
)

var startTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type Service interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*ScheduledClass, error)
	GetByID(ctx context.Context, id int) (*ScheduledClass, error)
	ListUpcoming(ctx context.Context) ([]ScheduledClass, error)
}

type service struct {
	repo  Repository
	clock clock.Clock
	loc   *time.Location
}

func NewService(repo Repository, clk clock.Clock, loc *time.Location) Service {
	return &service{repo: repo, clock: clk, loc: loc}
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*ScheduledClass, error) {
	classDate, err := time.ParseInLocation("2006-01-02", req.ClassDate, s.loc)
	if err != nil {
		return nil, apperrors.New(apperrors.KindValidation, apperrors.CodeInvalidClassTime, "class_date must be YYYY-MM-DD")
	}

	if !startTimePattern.MatchString(req.StartTime) {
		return nil, apperrors.New(apperrors.KindValidation, apperrors.CodeInvalidClassTime, "start_time must be HH:MM")
	}

	return s.repo.CreateClass(ctx, req.Name, req.Instructor, classDate, req.StartTime+":00", req.DurationMins, req.Capacity)
}

func (s *service) GetByID(ctx context.Context, id int) (*ScheduledClass, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListUpcoming(ctx context.Context) ([]ScheduledClass, error) {
	today := s.clock.Now().In(s.loc)
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc)
	return s.repo.ListUpcoming(ctx, midnight)
}
