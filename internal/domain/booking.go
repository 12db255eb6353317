package domain

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Booking is a committed reservation of a (service, date, time) slot. At
// most one booking may exist per slot; the database enforces this with a
// unique index.
type Booking struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference"`
	ServiceID  int64     `json:"service_id"`
	ClientName string    `json:"client_name"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookingConfirmation carries everything the notifier needs to build the
// confirmation message. It is also the payload published to the
// notifications topic when delivery is handled by the worker.
type BookingConfirmation struct {
	Reference   string `json:"reference"`
	To          string `json:"to"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
