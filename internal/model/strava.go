package model

// Athlete : профиль атлета Strava
type Athlete struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	ProfileMedium string `json:"profile_medium"`
	Profile       string `json:"profile"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
}

type ActivityMap struct {
	SummaryPolyline string `json:"summary_polyline"`
}

// Activity : активность Strava в том виде, в котором её отдаёт API
type Activity struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Distance           float64      `json:"distance"`    // метры
	MovingTime         int64        `json:"moving_time"` // секунды
	ElapsedTime        int64        `json:"elapsed_time"`
	Type               string       `json:"type"`
	SportType          string       `json:"sport_type"`
	StartDate          string       `json:"start_date"`
	StartDateLocal     string       `json:"start_date_local"`
	AverageSpeed       float64      `json:"average_speed"` // м/с
	MaxSpeed           float64      `json:"max_speed"`
	AverageHeartrate   *float64     `json:"average_heartrate,omitempty"`
	MaxHeartrate       *float64     `json:"max_heartrate,omitempty"`
	TotalElevationGain float64      `json:"total_elevation_gain"` // метры
	Map                *ActivityMap `json:"map,omitempty"`
}

// FilteredActivity : облегчённая проекция активности для промпта.
// Единицы совпадают с API: метры, секунды, м/с.
type FilteredActivity struct {
	Name               string   `json:"name"`
	Distance           float64  `json:"distance"`
	MovingTime         int64    `json:"moving_time"`
	TotalElevationGain float64  `json:"total_elevation_gain"`
	Type               string   `json:"type"`
	SportType          string   `json:"sport_type"`
	StartDate          string   `json:"start_date"`
	AverageSpeed       float64  `json:"average_speed"`
	AverageHeartrate   *float64 `json:"average_heartrate,omitempty"`
}
