package constants

// NATS Subjects
const (
	SubjectLocationUpdate      = "tracking.location.update"
	SubjectTransmissionStatus  = "tracking.transmission.status"
	SubjectTransmissionStopped = "tracking.transmission.stopped"
)
