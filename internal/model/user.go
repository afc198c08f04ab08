package model

import (
	"errors"

	"cloud.google.com/go/civil"

	"github.com/jwalitptl/dental-tech/pkg/security"
)

// ErrNoPassword is returned when a user has no stored password hash.
var ErrNoPassword = errors.New("user has no password hash")

// Utilisateur is the base identity of every person who logs in.
type Utilisateur struct {
	Base
	Nom           *string     `json:"nom,omitempty"`
	Email         *string     `json:"email,omitempty"`
	Adresse       *string     `json:"adresse,omitempty"`
	Cin           *string     `json:"cin,omitempty"`
	Tel           *string     `json:"tel,omitempty"`
	Sexe          Sexe        `json:"sexe"`
	Login         *string     `json:"login,omitempty"`
	MotDePasse    *string     `json:"-"`
	LastLoginDate *civil.Date `json:"last_login_date,omitempty"`
	DateNaissance *civil.Date `json:"date_naissance,omitempty"`
}

// VerifyPassword checks plain against the stored password hash.
func (u *Utilisateur) VerifyPassword(hasher security.PasswordHasher, plain string) error {
	if u.MotDePasse == nil || *u.MotDePasse == "" {
		return ErrNoPassword
	}
	return hasher.Compare(*u.MotDePasse, plain)
}

// Role is a named permission bundle assigned to users.
type Role struct {
	Base
	Libelle *string  `json:"libelle,omitempty"`
	Type    RoleType `json:"type"`
}

// Staff is an employee of the cabinet.
type Staff struct {
	Utilisateur
	Salaire         *float64    `json:"salaire,omitempty"`
	Prime           *float64    `json:"prime,omitempty"`
	DateRecrutement *civil.Date `json:"date_recrutement,omitempty"`
	SoldeConge      *int64      `json:"solde_conge,omitempty"`
}

// Admin manages the cabinet. It adds nothing to Staff.
type Admin struct {
	Staff
}

// Medecin is a dentist.
type Medecin struct {
	Staff
	Specialite *string `json:"specialite,omitempty"`
}

// Secretaire handles the front desk.
type Secretaire struct {
	Staff
	NumCNSS    *string  `json:"num_cnss,omitempty"`
	Commission *float64 `json:"commission,omitempty"`
}
