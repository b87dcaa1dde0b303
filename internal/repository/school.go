package repository

import (
	"context"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// SchoolRepository 只读访问排课和收费数据
//
//go:generate mockgen -source=./school.go -destination=./mocks/school.mock.go -package=repomocks -typed SchoolRepository
type SchoolRepository interface {
	UpcomingSessions(ctx context.Context, schoolID int64, fromDate string) ([]domain.Session, error)
	PendingPayments(ctx context.Context, schoolID int64) ([]domain.Payment, error)
	GetStudent(ctx context.Context, schoolID, id int64) (domain.Student, error)
	GetTeacher(ctx context.Context, schoolID, id int64) (domain.Teacher, error)
}

type schoolRepository struct {
	dao dao.SchoolDAO
}

func NewSchoolRepository(d dao.SchoolDAO) SchoolRepository {
	return &schoolRepository{dao: d}
}

func (r *schoolRepository) UpcomingSessions(ctx context.Context, schoolID int64, fromDate string) ([]domain.Session, error) {
	ss, err := r.dao.UpcomingSessions(ctx, schoolID, domain.SessionStatusScheduled, fromDate)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(_ int, src dao.Session) domain.Session {
		return domain.Session{
			ID:          src.ID,
			SchoolID:    src.SchoolID,
			StudentID:   src.StudentID,
			TeacherID:   src.TeacherID,
			GroupID:     src.GroupID,
			Subject:     src.Subject,
			Date:        src.Date,
			Time:        src.Time,
			Status:      src.Status,
			MeetingLink: src.MeetingLink,
		}
	}), nil
}

func (r *schoolRepository) PendingPayments(ctx context.Context, schoolID int64) ([]domain.Payment, error) {
	ps, err := r.dao.PaymentsByStatus(ctx, schoolID, domain.PaymentStatusPending)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(_ int, src dao.Payment) domain.Payment {
		return domain.Payment{
			ID:          src.ID,
			SchoolID:    src.SchoolID,
			StudentID:   src.StudentID,
			Amount:      src.Amount,
			Currency:    src.Currency,
			DueDate:     src.DueDate,
			Status:      src.Status,
			Description: src.Description,
		}
	}), nil
}

func (r *schoolRepository) GetStudent(ctx context.Context, schoolID, id int64) (domain.Student, error) {
	s, err := r.dao.GetStudent(ctx, schoolID, id)
	if err != nil {
		return domain.Student{}, err
	}
	return domain.Student{
		ID:          s.ID,
		SchoolID:    s.SchoolID,
		Name:        s.Name,
		Phone:       s.Phone,
		ParentName:  s.ParentName,
		ParentPhone: s.ParentPhone,
		Language:    s.Language,
	}, nil
}

func (r *schoolRepository) GetTeacher(ctx context.Context, schoolID, id int64) (domain.Teacher, error) {
	t, err := r.dao.GetTeacher(ctx, schoolID, id)
	if err != nil {
		return domain.Teacher{}, err
	}
	return domain.Teacher{
		ID:       t.ID,
		SchoolID: t.SchoolID,
		Name:     t.Name,
		Phone:    t.Phone,
	}, nil
}
