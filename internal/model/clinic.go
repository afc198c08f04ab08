package model

import (
	"cloud.google.com/go/civil"
)

// CabinetMedical is the dental cabinet. Its collections are filled by
// CabinetRepository.LoadAll, never by the row mapper.
type CabinetMedical struct {
	Base
	Nom         *string `json:"nom,omitempty"`
	Email       *string `json:"email,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Adresse     *string `json:"adresse,omitempty"`
	Cin         *string `json:"cin,omitempty"`
	Tel1        *string `json:"tel1,omitempty"`
	Tel2        *string `json:"tel2,omitempty"`
	SiteWeb     *string `json:"site_web,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	Facebook    *string `json:"facebook,omitempty"`
	Description *string `json:"description,omitempty"`

	Staff        []*Staff        `json:"staff,omitempty"`
	Charges      []*Charges      `json:"charges,omitempty"`
	Revenues     []*Revenues     `json:"revenues,omitempty"`
	Statistiques []*Statistiques `json:"statistiques,omitempty"`
}

// Charges is an expense booked by the cabinet.
type Charges struct {
	Base
	Titre       *string              `json:"titre,omitempty"`
	Description *string              `json:"description,omitempty"`
	Montant     *float64             `json:"montant,omitempty"`
	Date        *civil.DateTime      `json:"date,omitempty"`
	Cabinet     *Ref[CabinetMedical] `json:"cabinet,omitempty"`
}

// Revenues is an income booked by the cabinet.
type Revenues struct {
	Base
	Titre       *string              `json:"titre,omitempty"`
	Description *string              `json:"description,omitempty"`
	Montant     *float64             `json:"montant,omitempty"`
	Date        *civil.DateTime      `json:"date,omitempty"`
	Cabinet     *Ref[CabinetMedical] `json:"cabinet,omitempty"`
}

// Statistiques is a computed indicator for a cabinet.
type Statistiques struct {
	Base
	Nom        *string               `json:"nom,omitempty"`
	Categorie  *CategorieStatistique `json:"categorie,omitempty"`
	Chiffre    *float64              `json:"chiffre,omitempty"`
	DateCalcul *civil.Date           `json:"date_calcul,omitempty"`
	Cabinet    *Ref[CabinetMedical]  `json:"cabinet,omitempty"`
}
