package habit

type CreateHabitRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// ToggleHabitRequest carries the calendar day being flipped, formatted
// as YYYY-MM-DD.
type ToggleHabitRequest struct {
	Date string `json:"date" validate:"required"`
}

// CalendarDay marks whether every habit existing on that day was completed.
type CalendarDay struct {
	Date        string `json:"date"`
	AllComplete bool   `json:"allComplete"`
}
