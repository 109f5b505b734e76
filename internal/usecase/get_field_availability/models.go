package get_field_availability

import "time"

// Ключи дней в ответе
const (
	DayToday    = "today"
	DayTomorrow = "tomorrow"
	DayNext     = "next"
)

// Labels подписи дней в слотах ("Dziś 12:30")
type Labels struct {
	Today    string
	Tomorrow string
	Next     string
}

// DefaultLabels польские подписи
func DefaultLabels() Labels {
	return Labels{Today: "Dziś", Tomorrow: "Jutro", Next: "Pojutrze"}
}

// Request модель запроса свободного времени выездного сервиса
type Request struct {
	Limit int // 0 - значение по умолчанию
}

// DayResult свободные диапазоны одного дня
type DayResult struct {
	Key    string
	Label  string
	Date   time.Time
	Ranges []string // "12:30–13:30"
}

// Response модель ответа
type Response struct {
	Days  []DayResult // сегодня, завтра, послезавтра
	Slots []string    // "<Label> HH:mm", не больше Limit
}
