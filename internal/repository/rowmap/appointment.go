package rowmap

import (
	"github.com/jwalitptl/dental-tech/internal/model"
)

// MapAgendaMensuel maps the agenda header row: id, mois, annee and
// medecin_id. The agenda table carries no audit columns.
func MapAgendaMensuel(row Row) (*model.AgendaMensuel, error) {
	r := newReader(row)
	a := &model.AgendaMensuel{}
	a.ID = r.id()
	a.Mois = enum(r, "mois", model.ParseMois)
	a.Annee = int(r.requiredInt64("annee"))
	a.MedecinID = r.requiredInt64("medecin_id")
	if err := r.done("AgendaMensuel"); err != nil {
		return nil, err
	}
	return a, nil
}

// MapRDV maps an appointment row. Patient, doctor and medical record are
// attached as stand-ins for whichever foreign keys are not null.
func MapRDV(row Row) (*model.RDV, error) {
	r := newReader(row)
	rdv := &model.RDV{}
	rdv.ID = r.id()
	rdv.Date = r.requiredDate("date")
	rdv.Heure = r.requiredTime("heure")
	rdv.Motif = r.text("motif")
	rdv.Statut = enum(r, "statut", model.ParseStatutRDV)
	rdv.NoteMedecin = r.text("noteMedecin")

	if id := r.integer("patient_id"); id != nil {
		rdv.Patient = model.RefTo[model.Patient](*id)
	}
	if id := r.integer("medecin_id"); id != nil {
		rdv.Medecin = model.RefTo[model.Medecin](*id)
	}
	if id := r.integer("dossier_id"); id != nil {
		rdv.DossierMedical = model.RefTo[model.DossierMedical](*id)
	}

	readAudit(r, &rdv.Base)
	if err := r.done("RDV"); err != nil {
		return nil, err
	}
	return rdv, nil
}
