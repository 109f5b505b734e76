package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TireSlotService/internal/api/middleware"
)

// routeHandlers обработчики эндпоинтов API
type routeHandlers struct {
	GetAvailableSlots    http.HandlerFunc
	GetFieldAvailability http.HandlerFunc
	GetWeeklyTemplate    http.HandlerFunc
	CreateBooking        http.HandlerFunc
	UpdateWeeklyTemplate http.HandlerFunc
	GetDayBookings       http.HandlerFunc
	CancelBooking        http.HandlerFunc
}

// registerRoutes регистрирует маршруты на api.
// Админские маршруты на том же роутере: неподдерживаемый метод дает 405
func registerRoutes(api *mux.Router, h routeHandlers, adminToken string) {
	adminOnly := middleware.AdminAuth(adminToken)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты для записи в мастерскую
	api.HandleFunc("/available-slots", h.GetAvailableSlots).Methods(http.MethodGet)

	// Свободное время выездного сервиса на три дня
	api.HandleFunc("/field-service/availability", h.GetFieldAvailability).Methods(http.MethodGet)

	// Недельный шаблон расписания
	api.HandleFunc("/schedule/template", h.GetWeeklyTemplate).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	// Обновление недельного шаблона
	api.Handle("/schedule/template", adminOnly(h.UpdateWeeklyTemplate)).Methods(http.MethodPut)

	// Бронирования на дату
	api.Handle("/bookings", adminOnly(h.GetDayBookings)).Methods(http.MethodGet)

	// Отмена бронирования
	api.Handle("/bookings/{bookingId}/cancel", adminOnly(h.CancelBooking)).Methods(http.MethodPatch)
}
