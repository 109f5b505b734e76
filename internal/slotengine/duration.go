package slotengine

import (
	"strings"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

// ServiceSeparator разделитель услуг в составном названии ("Wymiana opon + Wyważanie")
const ServiceSeparator = "+"

// NormalizeServiceName приводит название услуги к ключу справочника
func NormalizeServiceName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ServiceDurations строит справочник "название -> длительность".
// Пустые названия и неположительные длительности пропускаются, при дублях берется максимум.
func ServiceDurations(services []domain.Service) map[string]int {
	result := make(map[string]int, len(services))
	for _, s := range services {
		key := NormalizeServiceName(s.Name)
		if key == "" || s.Duration <= 0 {
			continue
		}
		if s.Duration > result[key] {
			result[key] = s.Duration
		}
	}
	return result
}

// ResolveServiceDuration возвращает длительность визита по составному названию.
// Берется максимум (не сумма) длительностей найденных услуг, если ничего не найдено - defaultDuration.
func ResolveServiceDuration(label string, durations map[string]int, defaultDuration int) int {
	best := 0
	for _, token := range strings.Split(label, ServiceSeparator) {
		key := NormalizeServiceName(token)
		if key == "" {
			continue
		}
		if d, ok := durations[key]; ok && d > best {
			best = d
		}
	}

	if best == 0 {
		return defaultDuration
	}
	return best
}
