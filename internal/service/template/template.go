package template

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gitee.com/flycash/school-notification/internal/domain"
	"gitee.com/flycash/school-notification/internal/errs"
	"gitee.com/flycash/school-notification/internal/pkg/catalog"
	"gitee.com/flycash/school-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var tokenRegexp = regexp.MustCompile(`\{([^{}\s]+)\}`)

// Service 消息模板服务
//
//go:generate mockgen -source=./template.go -destination=./mocks/template.mock.go -package=templatemocks -typed Service
type Service interface {
	Create(ctx context.Context, t domain.NotificationTemplate) (domain.NotificationTemplate, error)
	Update(ctx context.Context, t domain.NotificationTemplate) error
	Delete(ctx context.Context, schoolID, id int64) error
	GetByID(ctx context.Context, schoolID, id int64) (domain.NotificationTemplate, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]domain.NotificationTemplate, error)
	// GetForType 找不到指定语言的时候依次退回到默认语言、任意语言
	GetForType(ctx context.Context, schoolID int64, typ domain.NotificationType, language string) (domain.NotificationTemplate, error)

	// Parse 把 {key} 替换成 vars 里对应的值，没有提供的变量原样保留
	Parse(body string, vars map[string]string) string
	// Preview 没有提供的已知变量用示例值填充
	Preview(body string, vars map[string]string) string
	// Validate 只给出建议，不阻止保存
	Validate(t domain.NotificationTemplate) domain.ValidationResult

	// SeedDefaults 学校没有任何模板的时候写入默认模板，返回写入的数量
	SeedDefaults(ctx context.Context, schoolID int64) (int, error)
}

type templateService struct {
	repo    repository.NotificationTemplateRepository
	catalog catalog.Catalog
	logger  *elog.Component
}

func NewService(repo repository.NotificationTemplateRepository, c catalog.Catalog) Service {
	return &templateService{
		repo:    repo,
		catalog: c,
		logger:  elog.DefaultLogger,
	}
}

func (s *templateService) Create(ctx context.Context, t domain.NotificationTemplate) (domain.NotificationTemplate, error) {
	if t.Language == "" {
		t.Language = domain.DefaultLanguage
	}
	if err := s.checkSavable(t); err != nil {
		return domain.NotificationTemplate{}, err
	}
	t.ID = 0
	return s.repo.Create(ctx, t)
}

func (s *templateService) Update(ctx context.Context, t domain.NotificationTemplate) error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: ID = %d", errs.ErrInvalidParameter, t.ID)
	}
	if t.Language == "" {
		t.Language = domain.DefaultLanguage
	}
	if err := s.checkSavable(t); err != nil {
		return err
	}
	return s.repo.Update(ctx, t)
}

func (s *templateService) checkSavable(t domain.NotificationTemplate) error {
	if err := t.CheckKey(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: 模板名称不能为空", errs.ErrInvalidParameter)
	}
	if strings.TrimSpace(t.Body) == "" {
		return fmt.Errorf("%w: 模板内容不能为空", errs.ErrInvalidParameter)
	}
	return nil
}

func (s *templateService) Delete(ctx context.Context, schoolID, id int64) error {
	return s.repo.Delete(ctx, schoolID, id)
}

func (s *templateService) GetByID(ctx context.Context, schoolID, id int64) (domain.NotificationTemplate, error) {
	return s.repo.GetByID(ctx, schoolID, id)
}

func (s *templateService) ListBySchool(ctx context.Context, schoolID int64) ([]domain.NotificationTemplate, error) {
	return s.repo.ListBySchool(ctx, schoolID)
}

func (s *templateService) GetForType(ctx context.Context, schoolID int64, typ domain.NotificationType, language string) (domain.NotificationTemplate, error) {
	ts, err := s.repo.FindByType(ctx, schoolID, typ)
	if err != nil {
		return domain.NotificationTemplate{}, err
	}
	if len(ts) == 0 {
		return domain.NotificationTemplate{}, fmt.Errorf("%w: school = %d, type = %s", errs.ErrTemplateNotFound, schoolID, typ)
	}
	if language == "" {
		language = domain.DefaultLanguage
	}
	for _, lang := range []string{language, domain.DefaultLanguage} {
		for i := range ts {
			if ts[i].Language == lang {
				return ts[i], nil
			}
		}
	}
	return ts[0], nil
}

func (s *templateService) Parse(body string, vars map[string]string) string {
	if len(vars) == 0 {
		return body
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	// 一次扫描完成替换，变量值里面的 {xxx} 不会被再次替换
	return strings.NewReplacer(pairs...).Replace(body)
}

func (s *templateService) Preview(body string, vars map[string]string) string {
	merged := make(map[string]string, len(s.catalog.Variables)+len(vars))
	for k, v := range s.catalog.Variables {
		merged[k] = v
	}
	for k, v := range vars {
		merged[k] = v
	}
	return s.Parse(body, merged)
}

func (s *templateService) Validate(t domain.NotificationTemplate) domain.ValidationResult {
	res := domain.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}
	if strings.TrimSpace(t.Name) == "" {
		res.Errors = append(res.Errors, "模板名称不能为空")
	}
	if strings.TrimSpace(t.Body) == "" {
		res.Errors = append(res.Errors, "模板内容不能为空")
	}
	if strings.Count(t.Body, "{") != strings.Count(t.Body, "}") {
		res.Warnings = append(res.Warnings, "花括号不成对")
	}

	used := make(map[string]struct{})
	for _, m := range tokenRegexp.FindAllStringSubmatch(t.Body, -1) {
		name := m[1]
		if _, ok := used[name]; ok {
			continue
		}
		used[name] = struct{}{}
		if !s.catalog.IsKnownVariable(name) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("未知变量 {%s}", name))
		}
	}

	for _, name := range expectedVariables[t.Type] {
		if _, ok := used[name]; !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s 类型的模板通常会包含 {%s}", t.Type, name))
		}
	}
	res.Valid = len(res.Errors) == 0
	return res
}

// expectedVariables 各类型模板通常应该包含的变量
var expectedVariables = map[domain.NotificationType][]string{
	domain.NotificationTypeLessonReminder:  {"studentName", "lessonTime"},
	domain.NotificationTypePaymentReminder: {"amount"},
}

func (s *templateService) SeedDefaults(ctx context.Context, schoolID int64) (int, error) {
	if schoolID <= 0 {
		return 0, fmt.Errorf("%w: SchoolID = %d", errs.ErrInvalidParameter, schoolID)
	}
	// 先查后写，并发初始化的时候可能会重复写入
	cnt, err := s.repo.CountBySchool(ctx, schoolID)
	if err != nil {
		return 0, err
	}
	if cnt > 0 {
		return 0, nil
	}
	ts := s.catalog.TemplatesFor(schoolID)
	if err = s.repo.BatchCreate(ctx, ts); err != nil {
		return 0, errors.Join(errs.ErrCreateTemplateFailed, err)
	}
	s.logger.Info("初始化默认模板", elog.Int64("schoolID", schoolID), elog.Int("count", len(ts)))
	return len(ts), nil
}
