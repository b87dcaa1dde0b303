package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gitee.com/flycash/school-notification/internal/domain"
	"gopkg.in/yaml.v2"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Template struct {
	Type     domain.NotificationType `yaml:"type"`
	Language string                  `yaml:"language"`
	Name     string                  `yaml:"name"`
	Body     string                  `yaml:"body"`
}

type Rule struct {
	Type       domain.NotificationType `yaml:"type"`
	Enabled    bool                    `yaml:"enabled"`
	Recipients domain.Recipients       `yaml:"recipients"`
	Reminders  []domain.Reminder       `yaml:"reminders"`
}

// Catalog 默认模板、默认规则以及已知变量的示例值
type Catalog struct {
	Variables map[string]string `yaml:"variables"`
	Templates []Template        `yaml:"templates"`
	Rules     []Rule            `yaml:"rules"`
}

var (
	defaultCatalog Catalog
	loadErr        error
	once           sync.Once
)

// Default 解析内置的默认配置，只解析一次
func Default() (Catalog, error) {
	once.Do(func() {
		defaultCatalog, loadErr = Parse(defaultsYAML)
	})
	return defaultCatalog, loadErr
}

func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("解析默认配置失败: %w", err)
	}
	return c, nil
}

// KnownVariables 已知变量名，按字母序
func (c Catalog) KnownVariables() []string {
	res := make([]string, 0, len(c.Variables))
	for k := range c.Variables {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

func (c Catalog) IsKnownVariable(name string) bool {
	_, ok := c.Variables[name]
	return ok
}

// TemplatesFor 转换成某个学校的模板
func (c Catalog) TemplatesFor(schoolID int64) []domain.NotificationTemplate {
	res := make([]domain.NotificationTemplate, 0, len(c.Templates))
	for _, t := range c.Templates {
		res = append(res, domain.NotificationTemplate{
			SchoolID: schoolID,
			Type:     t.Type,
			Language: t.Language,
			Name:     t.Name,
			Body:     t.Body,
		})
	}
	return res
}

// RulesFor 转换成某个学校的规则
func (c Catalog) RulesFor(schoolID int64) []domain.NotificationRule {
	res := make([]domain.NotificationRule, 0, len(c.Rules))
	for _, r := range c.Rules {
		reminders := make([]domain.Reminder, len(r.Reminders))
		copy(reminders, r.Reminders)
		res = append(res, domain.NotificationRule{
			SchoolID:   schoolID,
			Type:       r.Type,
			Enabled:    r.Enabled,
			Recipients: r.Recipients,
			Reminders:  reminders,
		})
	}
	return res
}
