package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"training-plan-server/internal/model"
)

const noActivitiesText = "Aucune activité récente"

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-z_]+)\s*\}\}`)

var knownPlaceholders = map[string]struct{}{
	"course_label":      {},
	"course_km":         {},
	"course_elevation":  {},
	"course_type":       {},
	"course_type_value": {},
	"frequency":         {},
	"duration":          {},
	"user_presentation": {},
	"activities":        {},
}

// PromptTemplate : шаблон пользовательского промпта с плейсхолдерами {{name}}
type PromptTemplate struct {
	text string
}

// NewPromptTemplate : неизвестный плейсхолдер в шаблоне считается ошибкой
func NewPromptTemplate(text string) (*PromptTemplate, error) {
	var unknown []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if _, ok := knownPlaceholders[match[1]]; !ok {
			unknown = append(unknown, match[0])
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("неразрешённые плейсхолдеры в шаблоне: %s", strings.Join(unknown, ", "))
	}
	return &PromptTemplate{text: text}, nil
}

// Render : подстановка за один проход, значения пользователя повторно не разбираются
func (t *PromptTemplate) Render(input model.TrainingPlanInput) (string, error) {
	activities := noActivitiesText
	if len(input.Activities) > 0 {
		data, err := json.Marshal(input.Activities)
		if err != nil {
			return "", fmt.Errorf("ошибка сериализации активностей: %w", err)
		}
		activities = string(data)
	}

	values := map[string]string{
		"course_label":      input.CourseLabel,
		"course_km":         input.CourseKm,
		"course_elevation":  input.CourseElevation,
		"course_type":       input.CourseType.Label(),
		"course_type_value": string(input.CourseType),
		"frequency":         input.Frequency,
		"duration":          input.Duration,
		"user_presentation": input.UserPresentation,
		"activities":        activities,
	}

	var missing string
	rendered := placeholderPattern.ReplaceAllStringFunc(t.text, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		value, ok := values[name]
		if !ok {
			missing = token
			return token
		}
		return value
	})
	if missing != "" {
		return "", fmt.Errorf("неразрешённый плейсхолдер %s", missing)
	}

	return rendered, nil
}
