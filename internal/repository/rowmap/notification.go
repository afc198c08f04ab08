package rowmap

import (
	"github.com/jwalitptl/dental-tech/internal/model"
)

// MapNotification maps a notifications row. date, time and lue are
// mandatory; utilisateur_id becomes a stand-in when present.
func MapNotification(row Row) (*model.Notification, error) {
	r := newReader(row)
	n := &model.Notification{}
	n.ID = r.id()
	n.Titre = enum(r, "titre", model.ParseTitreNotification)
	n.Message = r.text("message")
	n.Date = r.requiredDate("date")
	n.Time = r.requiredTime("time")
	n.Type = enum(r, "type", model.ParseTypeNotification)
	n.Priorite = enum(r, "priorite", model.ParsePrioriteNotification)
	n.Lue = r.requiredBool("lue")
	if id := r.integer("utilisateur_id"); id != nil {
		n.Utilisateur = model.RefTo[model.Utilisateur](*id)
	}
	readAudit(r, &n.Base)
	if err := r.done("Notification"); err != nil {
		return nil, err
	}
	return n, nil
}
