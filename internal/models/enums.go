package models

import "fmt"

// Account roles
const (
	RoleAdmin     = "Admin"
	RoleModerator = "Moderator"
	RoleUser      = "User"
)

// Account statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusBanned   = "Banned"
)

// Report statuses. Pending is the only non-terminal state:
// Pending -> Reviewed | Dismissed, no way back.
const (
	ReportPending   = "Pending"
	ReportReviewed  = "Reviewed"
	ReportDismissed = "Dismissed"
)

// ParseRole rejects unknown role strings instead of silently falling back to User.
func ParseRole(value string) (string, error) {
	switch value {
	case RoleAdmin, RoleModerator, RoleUser:
		return value, nil
	}
	return "", fmt.Errorf("неизвестная роль: %q", value)
}

func ParseStatus(value string) (string, error) {
	switch value {
	case StatusActive, StatusInactive, StatusBanned:
		return value, nil
	}
	return "", fmt.Errorf("неизвестный статус аккаунта: %q", value)
}

func ParseReportStatus(value string) (string, error) {
	switch value {
	case ReportPending, ReportReviewed, ReportDismissed:
		return value, nil
	}
	return "", fmt.Errorf("неизвестный статус жалобы: %q", value)
}
