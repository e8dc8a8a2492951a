package wizard

// Step шаг мастера бронирования
type Step int

const (
	StepSelectStylist Step = iota
	StepSelectDate
	StepSelectTime
	StepConfirm
	StepDone // бронирование создано, мастер завершен
)

var stepNames = map[Step]string{
	StepSelectStylist: "Выбор специалиста",
	StepSelectDate:    "Выбор даты",
	StepSelectTime:    "Выбор времени",
	StepConfirm:       "Подтверждение",
	StepDone:          "Готово",
}

// String возвращает название шага для пользователя
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Неизвестный шаг"
}

// Переходы вперед по действиям пользователя
// Повторный выбор даты на шаге выбора времени разрешен (самопереход)
var transitions = map[Step]map[Step]struct{}{
	StepSelectStylist: {StepSelectDate: {}},
	StepSelectDate:    {StepSelectTime: {}},
	StepSelectTime:    {StepConfirm: {}},
	StepConfirm:       {StepDone: {}},
	StepDone:          {},
}

// CanTransition returns whether the wizard can move from one step to another by a forward action
func CanTransition(from, to Step) bool {
	if from == to {
		return from != StepDone
	}
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// CanGoBack returns whether free-form backward navigation is allowed from the step
func CanGoBack(from Step) bool {
	return from > StepSelectStylist && from < StepDone
}
