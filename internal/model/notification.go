package model

import (
	"cloud.google.com/go/civil"
)

// Notification is a message addressed to one user.
type Notification struct {
	Base
	Titre       TitreNotification    `json:"titre"`
	Message     *string              `json:"message,omitempty"`
	Date        civil.Date           `json:"date"`
	Time        civil.Time           `json:"time"`
	Type        TypeNotification     `json:"type"`
	Priorite    PrioriteNotification `json:"priorite"`
	Lue         bool                 `json:"lue"`
	Utilisateur *Ref[Utilisateur]    `json:"utilisateur,omitempty"`
}
