package model

import (
	"cloud.google.com/go/civil"
)

// RDV is an appointment between a patient and a doctor.
type RDV struct {
	Base
	Date           civil.Date           `json:"date"`
	Heure          civil.Time           `json:"heure"`
	Motif          *string              `json:"motif,omitempty"`
	Statut         StatutRDV            `json:"statut"`
	NoteMedecin    *string              `json:"note_medecin,omitempty"`
	Patient        *Ref[Patient]        `json:"patient,omitempty"`
	Medecin        *Ref[Medecin]        `json:"medecin,omitempty"`
	DossierMedical *Ref[DossierMedical] `json:"dossier_medical,omitempty"`
}

// AgendaMensuel is a doctor's calendar for one month. The mapper only
// fills the identifier and the month key; JoursNonDisponibles and
// RendezVous are loaded by AgendaRepository.GetAgenda.
type AgendaMensuel struct {
	Base
	Mois                Mois         `json:"mois"`
	Annee               int          `json:"annee"`
	MedecinID           int64        `json:"medecin_id"`
	JoursNonDisponibles []civil.Date `json:"jours_non_disponibles,omitempty"`
	RendezVous          []*RDV       `json:"rendez_vous,omitempty"`
}
