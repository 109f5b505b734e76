package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/slotengine"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date     time.Time // Дата (Europe/Warsaw)
	Duration int       // Длительность услуги в минутах, 0 - определить по Service
	Service  string    // Название услуги, можно составное через '+'
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date        time.Time
	IsAvailable bool              // false - выходной по шаблону
	TimeGap     int               // Шаг между слотами
	Duration    int               // Длительность, по которой считались слоты
	Slots       []slotengine.Slot // Упорядочены по времени начала
}
