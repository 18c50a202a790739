package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	InstanceID  string             // ID инстанса (мойки)
	Date        *time.Time         // Дата; nil - расчет для понедельника
	StepMinutes int                // Шаг сетки; 0 - шаг по умолчанию
	Override    *domain.TimeWindow // Ручное окно оператора, заменяет рассчитанное
}

// Response модель ответа с сеткой слотов
type Response struct {
	Date     *time.Time
	Day      domain.DayName
	Window   domain.TimeWindow
	Closed   bool   // День закрыт, окно взято по умолчанию
	Fallback string // Причина использования окна по умолчанию
	Step     int
	Slots    []string
}
