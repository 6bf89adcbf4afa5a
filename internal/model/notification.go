package model

import "time"

type NotificationType string

const (
	NotificationExercise  NotificationType = "ejercicio"
	NotificationNutrition NotificationType = "nutricion"
	NotificationGoal      NotificationType = "meta"
	NotificationGeneral   NotificationType = "general"
)

// NotificationTypes lists the types in display order.
var NotificationTypes = []NotificationType{
	NotificationExercise,
	NotificationNutrition,
	NotificationGoal,
	NotificationGeneral,
}

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationExercise, NotificationNutrition, NotificationGoal, NotificationGeneral:
		return true
	}
	return false
}

func (t NotificationType) Label() string {
	switch t {
	case NotificationExercise:
		return "Ejercicio"
	case NotificationNutrition:
		return "Nutrición"
	case NotificationGoal:
		return "Meta"
	case NotificationGeneral:
		return "General"
	}
	return string(t)
}

type Notification struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"usuarioId,omitempty"`
	Type        NotificationType `json:"tipo"`
	Title       string           `json:"titulo"`
	Message     string           `json:"mensaje"`
	Read        bool             `json:"leida"`
	ScheduledAt *time.Time       `json:"fechaProgramada,omitempty"`
	CreatedAt   *time.Time       `json:"fechaCreacion,omitempty"`
}

type CreateNotificationRequest struct {
	Type        NotificationType `json:"tipo"`
	Title       string           `json:"titulo"`
	Message     string           `json:"mensaje"`
	ScheduledAt *time.Time       `json:"fechaProgramada,omitempty"`
}
