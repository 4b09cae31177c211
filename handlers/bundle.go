package handlers

import (
	adminRepo "sctclinic/database/repository/admin"
)

// HandlerBundle groups the assembled handlers so route registration takes a
// single argument.
type HandlerBundle struct {
	AdminRepo adminRepo.AdminRepository

	Auth         *AdminAuthHandler
	BlockedDates *BlockedDateHandler
	Appointments *AppointmentHandler
	Ticker       *TickerHandler
	Slots        *SlotHandler
}
