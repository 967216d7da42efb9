package shared

// DomainMetrics records business events. Implementations must be safe for
// concurrent use.
type DomainMetrics interface {
	AppointmentBooked()
	BookingConflict(resource string)
	SalePaid()
	MovementRecorded(kind string)
}
