package rowmap

import (
	"github.com/jwalitptl/dental-tech/internal/model"
)

// MapCabinetMedical maps the cabinet's own columns. Staff, charges,
// revenues and statistics are loaded by the cabinet repository.
func MapCabinetMedical(row Row) (*model.CabinetMedical, error) {
	r := newReader(row)
	c := &model.CabinetMedical{}
	c.ID = r.id()
	c.Nom = r.text("nom")
	c.Email = r.text("email")
	c.Logo = r.text("logo")
	c.Adresse = r.text("adresse")
	c.Cin = r.text("cin")
	c.Tel1 = r.text("tel1")
	c.Tel2 = r.text("tel2")
	c.SiteWeb = r.text("siteWeb")
	c.Instagram = r.text("instagram")
	c.Facebook = r.text("facebook")
	c.Description = r.text("description")
	readAudit(r, &c.Base)
	if err := r.done("CabinetMedical"); err != nil {
		return nil, err
	}
	return c, nil
}

// cabinetRef reads the optional cabinet_id foreign key.
func cabinetRef(r *reader) *model.Ref[model.CabinetMedical] {
	id := r.integer("cabinet_id")
	if id == nil {
		return nil
	}
	return model.RefTo[model.CabinetMedical](*id)
}

func MapCharges(row Row) (*model.Charges, error) {
	r := newReader(row)
	ch := &model.Charges{}
	ch.ID = r.id()
	ch.Titre = r.text("titre")
	ch.Description = r.text("description")
	ch.Montant = r.number("montant")
	ch.Date = r.dateTime("date")
	readAudit(r, &ch.Base)
	ch.Cabinet = cabinetRef(r)
	if err := r.done("Charges"); err != nil {
		return nil, err
	}
	return ch, nil
}

func MapRevenues(row Row) (*model.Revenues, error) {
	r := newReader(row)
	rev := &model.Revenues{}
	rev.ID = r.id()
	rev.Titre = r.text("titre")
	rev.Description = r.text("description")
	rev.Montant = r.number("montant")
	rev.Date = r.dateTime("date")
	readAudit(r, &rev.Base)
	rev.Cabinet = cabinetRef(r)
	if err := r.done("Revenues"); err != nil {
		return nil, err
	}
	return rev, nil
}

// MapStatistiques maps a statistics row. The category is the one enum
// column allowed to be null.
func MapStatistiques(row Row) (*model.Statistiques, error) {
	r := newReader(row)
	st := &model.Statistiques{}
	st.ID = r.id()
	st.Nom = r.text("nom")
	st.Categorie = optionalEnum(r, "categorie", model.ParseCategorieStatistique)
	st.Chiffre = r.number("chiffre")
	st.DateCalcul = r.date("dateCalcul")
	readAudit(r, &st.Base)
	st.Cabinet = cabinetRef(r)
	if err := r.done("Statistiques"); err != nil {
		return nil, err
	}
	return st, nil
}
