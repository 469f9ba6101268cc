package model

import (
	"errors"
	"fmt"
)

type CourseType string

const (
	CourseTypeRoadRunning CourseType = "road_running"
	CourseTypeTrail       CourseType = "trail"
)

func (c CourseType) Valid() bool {
	return c == CourseTypeRoadRunning || c == CourseTypeTrail
}

// Label : человекочитаемое название типа забега для промпта
func (c CourseType) Label() string {
	if c == CourseTypeRoadRunning {
		return "course sur route"
	}
	return "trail"
}

// TrainingPlanInput : параметры забега, передаваемые в генератор
type TrainingPlanInput struct {
	UserID           string
	CourseLabel      string
	CourseType       CourseType
	CourseKm         string
	CourseElevation  string
	Frequency        string
	Duration         string
	UserPresentation string
	Activities       []FilteredActivity
}

type PlanOverview struct {
	TotalWeeks      int    `json:"total_weeks"`
	SessionsPerWeek int    `json:"sessions_per_week"`
	CourseType      string `json:"course_type"`
	Objective       string `json:"objective"`
}

type Exercise struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// Session : одна тренировка. Done хранит только мобильный клиент.
type Session struct {
	SessionNumber   int        `json:"session_number"`
	Title           string     `json:"title"`
	Type            string     `json:"type"`
	DurationMinutes int        `json:"duration_minutes"`
	DistanceKm      *float64   `json:"distance_km,omitempty"`
	Intensity       string     `json:"intensity"`
	Description     string     `json:"description"`
	Exercises       []Exercise `json:"exercises"`
	Tips            []string   `json:"tips"`
	Done            *bool      `json:"done,omitempty"`
	Optional        *bool      `json:"optional,omitempty"`
}

type Week struct {
	WeekNumber int       `json:"week_number"`
	Phase      string    `json:"phase"`
	Focus      string    `json:"focus"`
	Sessions   []Session `json:"sessions"`
}

type TrainingPlanResponse struct {
	PlanOverview           *PlanOverview `json:"plan_overview"`
	Weeks                  []Week        `json:"weeks"`
	GeneralRecommendations []string      `json:"general_recommendations"`
}

var (
	Phases      = []string{"préparation", "développement", "affûtage"}
	SessionKind = []string{"endurance", "fractionné", "sortie_longue", "récupération", "tempo"}
	Intensities = []string{"faible", "modérée", "élevée"}
)

// Validate : строгая проверка ответа модели, отсутствующие поля не прощаются
func (p *TrainingPlanResponse) Validate() error {
	if p.PlanOverview == nil {
		return errors.New("plan_overview отсутствует")
	}
	if p.PlanOverview.TotalWeeks <= 0 {
		return errors.New("plan_overview.total_weeks отсутствует")
	}
	if p.PlanOverview.SessionsPerWeek <= 0 {
		return errors.New("plan_overview.sessions_per_week отсутствует")
	}
	if p.PlanOverview.CourseType == "" {
		return errors.New("plan_overview.course_type отсутствует")
	}
	if p.PlanOverview.Objective == "" {
		return errors.New("plan_overview.objective отсутствует")
	}
	if len(p.Weeks) == 0 {
		return errors.New("weeks пуст")
	}
	if p.GeneralRecommendations == nil {
		return errors.New("general_recommendations отсутствует")
	}

	for i, week := range p.Weeks {
		if week.WeekNumber <= 0 {
			return fmt.Errorf("weeks[%d].week_number отсутствует", i)
		}
		if !oneOf(week.Phase, Phases) {
			return fmt.Errorf("weeks[%d].phase недопустима: %q", i, week.Phase)
		}
		if week.Focus == "" {
			return fmt.Errorf("weeks[%d].focus отсутствует", i)
		}
		if len(week.Sessions) == 0 {
			return fmt.Errorf("weeks[%d].sessions пуст", i)
		}
		for j, session := range week.Sessions {
			if err := session.validate(); err != nil {
				return fmt.Errorf("weeks[%d].sessions[%d]: %w", i, j, err)
			}
		}
	}

	return nil
}

func (s *Session) validate() error {
	switch {
	case s.SessionNumber <= 0:
		return errors.New("session_number отсутствует")
	case s.Title == "":
		return errors.New("title отсутствует")
	case !oneOf(s.Type, SessionKind):
		return fmt.Errorf("type недопустим: %q", s.Type)
	case s.DurationMinutes <= 0:
		return errors.New("duration_minutes отсутствует")
	case !oneOf(s.Intensity, Intensities):
		return fmt.Errorf("intensity недопустима: %q", s.Intensity)
	case s.Description == "":
		return errors.New("description отсутствует")
	case s.Exercises == nil:
		return errors.New("exercises отсутствует")
	case s.Tips == nil:
		return errors.New("tips отсутствует")
	}

	for i, exercise := range s.Exercises {
		if exercise.Name == "" || exercise.Details == "" {
			return fmt.Errorf("exercises[%d]: name и details обязательны", i)
		}
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
