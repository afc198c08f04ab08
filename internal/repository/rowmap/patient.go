package rowmap

import (
	"github.com/jwalitptl/dental-tech/internal/model"
)

// MapPatient maps a patients row. Antecedents are left empty.
func MapPatient(row Row) (*model.Patient, error) {
	r := newReader(row)
	p := &model.Patient{}
	p.ID = r.id()
	p.Nom = r.text("nom")
	p.Prenom = r.text("prenom")
	p.Adresse = r.text("adresse")
	p.Telephone = r.text("telephone")
	p.Email = r.text("email")
	p.DateNaissance = r.date("dateNaissance")
	readAudit(r, &p.Base)
	p.Sexe = enum(r, "sexe", model.ParseSexe)
	p.Assurance = enum(r, "assurance", model.ParseAssurance)
	if err := r.done("Patient"); err != nil {
		return nil, err
	}
	return p, nil
}

func MapAntecedent(row Row) (*model.Antecedent, error) {
	r := newReader(row)
	a := &model.Antecedent{}
	a.ID = r.id()
	a.Nom = r.text("nom")
	a.Categorie = enum(r, "categorie", model.ParseCategorieAntecedent)
	a.NiveauRisque = enum(r, "niveauRisque", model.ParseNiveauRisque)
	readAudit(r, &a.Base)
	if err := r.done("Antecedent"); err != nil {
		return nil, err
	}
	return a, nil
}

func MapDossierMedical(row Row) (*model.DossierMedical, error) {
	r := newReader(row)
	d := &model.DossierMedical{}
	d.ID = r.id()
	if id := r.integer("patient_id"); id != nil {
		d.Patient = model.RefTo[model.Patient](*id)
	}
	readAudit(r, &d.Base)
	if err := r.done("DossierMedical"); err != nil {
		return nil, err
	}
	return d, nil
}
