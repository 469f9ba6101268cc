package requestresponse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"training-plan-server/internal/model"
)

// FlexString : поле формы, которое клиент присылает строкой или числом
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ожидалась строка или число: %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// GenerateTrainingRequest : параметры забега из формы мобильного клиента
type GenerateTrainingRequest struct {
	CourseLabel      FlexString `json:"course_label" swaggertype:"string" example:"Marathon de Lyon"`
	CourseType       FlexString `json:"course_type" swaggertype:"string" enums:"road_running,trail" example:"road_running"`
	CourseKm         FlexString `json:"course_km" swaggertype:"string" example:"42.195"`
	CourseElevation  FlexString `json:"course_elevation" swaggertype:"string" example:"150"`
	Frequency        FlexString `json:"frequency" swaggertype:"string" example:"3+1"`
	Duration         FlexString `json:"duration" swaggertype:"string" example:"12"`
	UserPresentation string     `json:"user_presentation,omitempty" example:"Je cours depuis 2 ans, 3 fois par semaine"`
	UserID           string     `json:"userId,omitempty" example:"a3c1e9f0-5b7d-4c2e-9a11-7f3d2b8e6c40"`
}

// TrainingPlanEnvelope : успешный ответ генерации
type TrainingPlanEnvelope struct {
	Success bool                        `json:"success" example:"true"`
	Data    *model.TrainingPlanResponse `json:"data"`
}

// FailureEnvelope : ошибка генерации или валидации формы
type FailureEnvelope struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"отсутствуют обязательные поля: course_km"`
}
