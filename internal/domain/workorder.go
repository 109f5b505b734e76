package domain

import "time"

// WorkOrder is a field-service visit imported from the CRM.
type WorkOrder struct {
	ID        int64
	VisitDate time.Time
	VisitTime *string // "HH:mm", nil when the visit has no agreed time yet
	Service   string  // '+'-joined service label, e.g. "Wymiana opon + Wyważanie"
}

// Service is a catalog entry used to resolve visit durations.
type Service struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}
