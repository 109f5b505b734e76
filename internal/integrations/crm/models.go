package crm

// ServiceItem услуга из каталога CRM
type ServiceItem struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"` // минуты
}
