package dao

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/flycash/school-notification/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// 以下几张表归排课和收费系统所有，这里只读

type Session struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	SchoolID    int64  `gorm:"type:BIGINT;NOT NULL;index:idx_school_status_date,priority:1"`
	StudentID   int64  `gorm:"type:BIGINT;NOT NULL"`
	TeacherID   int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0"`
	GroupID     int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0"`
	Subject     string `gorm:"type:VARCHAR(128)"`
	Date        string `gorm:"type:CHAR(10);NOT NULL;index:idx_school_status_date,priority:3;comment:'YYYY-MM-DD'"`
	Time        string `gorm:"type:CHAR(5);NOT NULL;comment:'HH:MM'"`
	Status      string `gorm:"type:VARCHAR(16);NOT NULL;index:idx_school_status_date,priority:2"`
	MeetingLink string `gorm:"type:VARCHAR(512)"`
}

func (Session) TableName() string {
	return "sessions"
}

type Payment struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	SchoolID    int64   `gorm:"type:BIGINT;NOT NULL;index:idx_school_status,priority:1"`
	StudentID   int64   `gorm:"type:BIGINT;NOT NULL"`
	Amount      float64 `gorm:"type:DECIMAL(12,2);NOT NULL"`
	Currency    string  `gorm:"type:VARCHAR(8)"`
	DueDate     string  `gorm:"type:CHAR(10);NOT NULL;comment:'YYYY-MM-DD'"`
	Status      string  `gorm:"type:VARCHAR(16);NOT NULL;index:idx_school_status,priority:2"`
	Description string  `gorm:"type:VARCHAR(512)"`
}

func (Payment) TableName() string {
	return "payments"
}

type Student struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	SchoolID    int64  `gorm:"type:BIGINT;NOT NULL;index"`
	Name        string `gorm:"type:VARCHAR(128);NOT NULL"`
	Phone       string `gorm:"type:VARCHAR(32)"`
	ParentName  string `gorm:"type:VARCHAR(128)"`
	ParentPhone string `gorm:"type:VARCHAR(32)"`
	Language    string `gorm:"type:VARCHAR(16)"`
}

func (Student) TableName() string {
	return "students"
}

type Teacher struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	SchoolID int64  `gorm:"type:BIGINT;NOT NULL;index"`
	Name     string `gorm:"type:VARCHAR(128);NOT NULL"`
	Phone    string `gorm:"type:VARCHAR(32)"`
}

func (Teacher) TableName() string {
	return "teachers"
}

type SchoolDAO interface {
	// UpcomingSessions 某个状态下日期不早于 fromDate 的课程
	UpcomingSessions(ctx context.Context, schoolID int64, status, fromDate string) ([]Session, error)
	PaymentsByStatus(ctx context.Context, schoolID int64, status string) ([]Payment, error)
	GetStudent(ctx context.Context, schoolID, id int64) (Student, error)
	GetTeacher(ctx context.Context, schoolID, id int64) (Teacher, error)
}

type schoolDAO struct {
	db *egorm.Component
}

func NewSchoolDAO(db *egorm.Component) SchoolDAO {
	return &schoolDAO{db: db}
}

func (d *schoolDAO) UpcomingSessions(ctx context.Context, schoolID int64, status, fromDate string) ([]Session, error) {
	var res []Session
	// 日期是 YYYY-MM-DD，可以直接按字符串比较
	err := d.db.WithContext(ctx).
		Where("school_id = ? AND status = ? AND date >= ?", schoolID, status, fromDate).
		Order("date ASC, time ASC").Find(&res).Error
	return res, err
}

func (d *schoolDAO) PaymentsByStatus(ctx context.Context, schoolID int64, status string) ([]Payment, error) {
	var res []Payment
	err := d.db.WithContext(ctx).
		Where("school_id = ? AND status = ?", schoolID, status).
		Order("due_date ASC").Find(&res).Error
	return res, err
}

func (d *schoolDAO) GetStudent(ctx context.Context, schoolID, id int64) (Student, error) {
	var s Student
	err := d.db.WithContext(ctx).Where("id = ? AND school_id = ?", id, schoolID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Student{}, fmt.Errorf("%w: id = %d", errs.ErrStudentNotFound, id)
	}
	return s, err
}

func (d *schoolDAO) GetTeacher(ctx context.Context, schoolID, id int64) (Teacher, error) {
	var t Teacher
	err := d.db.WithContext(ctx).Where("id = ? AND school_id = ?", id, schoolID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Teacher{}, fmt.Errorf("%w: id = %d", errs.ErrTeacherNotFound, id)
	}
	return t, err
}
