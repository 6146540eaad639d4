package models

type UserType string
type GigStatus string
type ApplicationStatus string
type NotificationType string

const (
	UserTypeProfessor UserType = "professor"
	UserTypeStudent   UserType = "student"

	GigStatusOpen   GigStatus = "open"
	GigStatusClosed GigStatus = "closed"
	GigStatusOnHold GigStatus = "on-hold"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
)

// ValidGigStatus reports whether s is one of the three lifecycle states.
func ValidGigStatus(s GigStatus) bool {
	switch s {
	case GigStatusOpen, GigStatusClosed, GigStatusOnHold:
		return true
	}
	return false
}

// DecidedApplicationStatus reports whether s is a terminal decision.
func DecidedApplicationStatus(s ApplicationStatus) bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}
