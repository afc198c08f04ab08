package rowmap

import (
	"github.com/jwalitptl/dental-tech/internal/model"
)

// readAudit fills the envelope fields other than the identifier.
func readAudit(r *reader, b *model.Base) {
	b.DateCreation = r.date("dateCreation")
	b.DateDerniereModification = r.dateTime("dateDerniereModification")
	b.CreePar = r.text("creePar")
	b.ModifiePar = r.text("modifiePar")
}

// readUtilisateur fills the identity columns shared by every user type,
// envelope included.
func readUtilisateur(r *reader, u *model.Utilisateur) {
	u.ID = r.id()
	u.Nom = r.text("nom")
	u.Email = r.text("email")
	u.Adresse = r.text("adresse")
	u.Cin = r.text("cin")
	u.Tel = r.text("tel")
	u.Sexe = enum(r, "sexe", model.ParseSexe)
	u.Login = r.text("login")
	u.MotDePasse = r.text("motDePasse")
	u.LastLoginDate = r.date("lastLoginDate")
	u.DateNaissance = r.date("dateNaissance")
	readAudit(r, &u.Base)
}

// readStaff fills Utilisateur then the employment columns.
func readStaff(r *reader, s *model.Staff) {
	readUtilisateur(r, &s.Utilisateur)
	s.Salaire = r.number("salaire")
	s.Prime = r.number("prime")
	s.DateRecrutement = r.date("dateRecrutement")
	s.SoldeConge = r.integer("soldeConge")
}

func MapUtilisateur(row Row) (*model.Utilisateur, error) {
	r := newReader(row)
	u := &model.Utilisateur{}
	readUtilisateur(r, u)
	if err := r.done("Utilisateur"); err != nil {
		return nil, err
	}
	return u, nil
}

func MapRole(row Row) (*model.Role, error) {
	r := newReader(row)
	role := &model.Role{}
	role.ID = r.id()
	role.Libelle = r.text("libelle")
	role.Type = enum(r, "type", model.ParseRoleType)
	readAudit(r, &role.Base)
	if err := r.done("Role"); err != nil {
		return nil, err
	}
	return role, nil
}

func MapStaff(row Row) (*model.Staff, error) {
	r := newReader(row)
	s := &model.Staff{}
	readStaff(r, s)
	if err := r.done("Staff"); err != nil {
		return nil, err
	}
	return s, nil
}

func MapAdmin(row Row) (*model.Admin, error) {
	r := newReader(row)
	a := &model.Admin{}
	readStaff(r, &a.Staff)
	if err := r.done("Admin"); err != nil {
		return nil, err
	}
	return a, nil
}

func MapMedecin(row Row) (*model.Medecin, error) {
	r := newReader(row)
	m := &model.Medecin{}
	readStaff(r, &m.Staff)
	m.Specialite = r.text("specialite")
	if err := r.done("Medecin"); err != nil {
		return nil, err
	}
	return m, nil
}

func MapSecretaire(row Row) (*model.Secretaire, error) {
	r := newReader(row)
	s := &model.Secretaire{}
	readStaff(r, &s.Staff)
	s.NumCNSS = r.text("numCNSS")
	s.Commission = r.number("commission")
	if err := r.done("Secretaire"); err != nil {
		return nil, err
	}
	return s, nil
}
