package model

import (
	"cloud.google.com/go/civil"
)

// Patient is a person treated by the cabinet. Antecedents are loaded
// separately by the patient repository.
type Patient struct {
	Base
	Nom           *string       `json:"nom,omitempty"`
	Prenom        *string       `json:"prenom,omitempty"`
	Adresse       *string       `json:"adresse,omitempty"`
	Telephone     *string       `json:"telephone,omitempty"`
	Email         *string       `json:"email,omitempty"`
	DateNaissance *civil.Date   `json:"date_naissance,omitempty"`
	Sexe          Sexe          `json:"sexe"`
	Assurance     Assurance     `json:"assurance"`
	Antecedents   []*Antecedent `json:"antecedents,omitempty"`
}

// Antecedent is a medical history entry (allergy, chronic disease, ...).
type Antecedent struct {
	Base
	Nom          *string             `json:"nom,omitempty"`
	Categorie    CategorieAntecedent `json:"categorie"`
	NiveauRisque NiveauRisque        `json:"niveau_risque"`
}

// DossierMedical is the medical record an appointment is attached to.
type DossierMedical struct {
	Base
	Patient *Ref[Patient] `json:"patient,omitempty"`
}
