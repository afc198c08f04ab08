package rowmap

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/dental-tech/internal/model"
)

func audit(row MapRow) MapRow {
	row["dateCreation"] = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	row["dateDerniereModification"] = time.Date(2024, 2, 1, 10, 15, 0, 0, time.UTC)
	row["creePar"] = "admin"
	row["modifiePar"] = "admin"
	return row
}

func patientRow() MapRow {
	return audit(MapRow{
		"id":            int64(1),
		"nom":           "Amrani",
		"prenom":        "Sara",
		"adresse":       nil,
		"telephone":     nil,
		"email":         nil,
		"sexe":          "FEMININ",
		"assurance":     "CNOPS",
		"dateNaissance": time.Date(1990, 5, 2, 0, 0, 0, 0, time.UTC),
	})
}

func staffRow() MapRow {
	return audit(MapRow{
		"id":              int64(12),
		"nom":             "Bennani",
		"email":           "k.bennani@cabinet.ma",
		"adresse":         "12 rue Ibn Sina",
		"cin":             "BE123456",
		"tel":             "0600000000",
		"sexe":            "MASCULIN",
		"login":           "kbennani",
		"motDePasse":      "$2a$04$hash",
		"lastLoginDate":   nil,
		"dateNaissance":   time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC),
		"salaire":         15000.0,
		"prime":           nil,
		"dateRecrutement": time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC),
		"soldeConge":      int64(18),
	})
}

func TestMapPatient(t *testing.T) {
	p, err := MapPatient(patientRow())
	require.NoError(t, err)

	assert.Equal(t, int64(1), *p.ID)
	assert.Equal(t, "Amrani", *p.Nom)
	assert.Equal(t, "Sara", *p.Prenom)
	assert.Equal(t, model.SexeFeminin, p.Sexe)
	assert.Equal(t, model.AssuranceCNOPS, p.Assurance)
	assert.Equal(t, civil.Date{Year: 1990, Month: time.May, Day: 2}, *p.DateNaissance)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 10}, *p.DateCreation)
	assert.Equal(t, civil.DateTime{
		Date: civil.Date{Year: 2024, Month: time.February, Day: 1},
		Time: civil.Time{Hour: 10, Minute: 15},
	}, *p.DateDerniereModification)
	assert.Equal(t, "admin", *p.CreePar)
	assert.Equal(t, "admin", *p.ModifiePar)
	assert.Nil(t, p.Adresse)
	assert.Nil(t, p.Telephone)
	assert.Nil(t, p.Email)
	assert.Empty(t, p.Antecedents)
}

func TestMapPatient_NullDatesStayUnset(t *testing.T) {
	row := patientRow()
	row["dateNaissance"] = nil
	row["dateCreation"] = nil
	row["dateDerniereModification"] = nil
	row["creePar"] = nil

	p, err := MapPatient(row)
	require.NoError(t, err)
	assert.Nil(t, p.DateNaissance)
	assert.Nil(t, p.DateCreation)
	assert.Nil(t, p.DateDerniereModification)
	assert.Nil(t, p.CreePar)
}

func TestMapPatient_TextDates(t *testing.T) {
	row := patientRow()
	row["dateNaissance"] = "1990-05-02"
	row["dateDerniereModification"] = []byte("2024-02-01 10:15:00")

	p, err := MapPatient(row)
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 1990, Month: time.May, Day: 2}, *p.DateNaissance)
	assert.Equal(t, 10, p.DateDerniereModification.Time.Hour)
	assert.Equal(t, 15, p.DateDerniereModification.Time.Minute)
}

func TestMapPatient_KeepsWallClock(t *testing.T) {
	casablanca := time.FixedZone("UTC+1", 3600)
	row := patientRow()
	row["dateDerniereModification"] = time.Date(2024, 2, 1, 23, 30, 0, 0, casablanca)

	p, err := MapPatient(row)
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 1}, p.DateDerniereModification.Date)
	assert.Equal(t, 23, p.DateDerniereModification.Time.Hour)
}

func TestMapPatient_DateColumnRejectsTimestampText(t *testing.T) {
	row := patientRow()
	row["dateNaissance"] = "1990-05-02 23:59:00"

	p, err := MapPatient(row)
	assert.Nil(t, p)
	require.ErrorIs(t, err, ErrColumnAccess)

	var colErr *ColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "dateNaissance", colErr.Column)
}

func TestMapPatient_TimestampTextWithOffset(t *testing.T) {
	tests := []string{
		"2024-02-01 10:15:00+00",
		"2024-02-01 10:15:00.123456+01",
		"2024-02-01 10:15:00+01:00",
		"2024-02-01T10:15:00Z",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			row := patientRow()
			row["dateDerniereModification"] = text

			p, err := MapPatient(row)
			require.NoError(t, err)
			assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 1}, p.DateDerniereModification.Date)
			assert.Equal(t, 10, p.DateDerniereModification.Time.Hour)
			assert.Equal(t, 15, p.DateDerniereModification.Time.Minute)
		})
	}
}

func TestMappersConcurrentUse(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	errs := make(chan error, workers*2)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			row := patientRow()
			row["id"] = id
			row["dateNaissance"] = "1990-05-02"
			p, err := MapPatient(row)
			if err != nil {
				errs <- err
				return
			}
			if *p.ID != id {
				errs <- fmt.Errorf("patient %d mapped as %d", id, *p.ID)
			}

			bad := patientRow()
			bad["sexe"] = "X"
			if _, err := MapPatient(bad); !errors.Is(err, ErrEnumDecode) {
				errs <- fmt.Errorf("expected enum decode failure, got %v", err)
			}
		}(int64(i + 1))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestMapPatient_Sexe(t *testing.T) {
	tests := []struct {
		code    string
		want    model.Sexe
		wantErr bool
	}{
		{code: "MASCULIN", want: model.SexeMasculin},
		{code: "FEMININ", want: model.SexeFeminin},
		{code: "X", wantErr: true},
		{code: "feminin", wantErr: true},
		{code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			row := patientRow()
			row["sexe"] = tt.code

			p, err := MapPatient(row)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, p.Sexe)
				return
			}

			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrEnumDecode)
			assert.ErrorIs(t, err, model.ErrUnknownEnum)

			var colErr *ColumnError
			require.True(t, errors.As(err, &colErr))
			assert.Equal(t, "sexe", colErr.Column)
			assert.Equal(t, tt.code, colErr.Value)
			assert.Equal(t, KindEnumDecode, Kind(err))
		})
	}
}

func TestMapPatient_RequiredColumns(t *testing.T) {
	t.Run("null id", func(t *testing.T) {
		row := patientRow()
		row["id"] = nil
		_, err := MapPatient(row)
		assert.ErrorIs(t, err, ErrNullValue)
	})

	t.Run("null enum", func(t *testing.T) {
		row := patientRow()
		row["assurance"] = nil
		_, err := MapPatient(row)
		assert.ErrorIs(t, err, ErrNullValue)
	})

	t.Run("missing column", func(t *testing.T) {
		row := patientRow()
		delete(row, "prenom")
		p, err := MapPatient(row)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrColumnAccess)
		assert.Equal(t, KindColumnAccess, Kind(err))

		var mapErr *MappingError
		require.True(t, errors.As(err, &mapErr))
		assert.Equal(t, "Patient", mapErr.Entity)
	})

	t.Run("first failure wins", func(t *testing.T) {
		row := patientRow()
		delete(row, "nom")
		row["sexe"] = "X"
		_, err := MapPatient(row)

		var colErr *ColumnError
		require.True(t, errors.As(err, &colErr))
		assert.Equal(t, "nom", colErr.Column)
	})
}

func TestMapAntecedent(t *testing.T) {
	row := audit(MapRow{
		"id":           int64(3),
		"nom":          "Pénicilline",
		"categorie":    "ALLERGIE",
		"niveauRisque": "ELEVE",
	})

	a, err := MapAntecedent(row)
	require.NoError(t, err)
	assert.Equal(t, int64(3), *a.ID)
	assert.Equal(t, model.CategorieAllergie, a.Categorie)
	assert.Equal(t, model.NiveauRisqueEleve, a.NiveauRisque)

	row["niveauRisque"] = "MOYEN"
	_, err = MapAntecedent(row)
	assert.ErrorIs(t, err, ErrEnumDecode)
}

func TestMapCabinetMedical(t *testing.T) {
	row := audit(MapRow{
		"id": int64(7), "nom": "Cabinet Dentaire Atlas", "email": "contact@atlas.ma",
		"logo": nil, "adresse": "Bd Zerktouni", "cin": "IF778899",
		"tel1": "0522000000", "tel2": nil, "siteWeb": "https://atlas.ma",
		"instagram": nil, "facebook": nil, "description": nil,
	})

	c, err := MapCabinetMedical(row)
	require.NoError(t, err)
	assert.Equal(t, int64(7), *c.ID)
	assert.Equal(t, "Cabinet Dentaire Atlas", *c.Nom)
	assert.Equal(t, "0522000000", *c.Tel1)
	assert.Nil(t, c.Tel2)
	assert.Nil(t, c.Logo)
	assert.Empty(t, c.Staff)
	assert.Empty(t, c.Charges)
}

func chargesRow() MapRow {
	return audit(MapRow{
		"id":          int64(40),
		"titre":       "Loyer",
		"description": "Loyer du mois de mars",
		"montant":     8500.5,
		"date":        time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		"cabinet_id":  int64(7),
	})
}

func TestMapCharges_CabinetStandIn(t *testing.T) {
	ch, err := MapCharges(chargesRow())
	require.NoError(t, err)

	require.NotNil(t, ch.Cabinet)
	assert.Equal(t, model.Ref[model.CabinetMedical]{ID: 7}, *ch.Cabinet)
	assert.Equal(t, 8500.5, *ch.Montant)
	assert.Equal(t, 9, ch.Date.Time.Hour)
}

func TestMapCharges_NullAmountAndCabinet(t *testing.T) {
	row := chargesRow()
	row["montant"] = nil
	row["cabinet_id"] = nil
	row["date"] = nil

	ch, err := MapCharges(row)
	require.NoError(t, err)
	assert.Nil(t, ch.Montant)
	assert.Nil(t, ch.Cabinet)
	assert.Nil(t, ch.Date)
}

func TestMapCharges_ZeroAmountIsKept(t *testing.T) {
	row := chargesRow()
	row["montant"] = 0.0

	ch, err := MapCharges(row)
	require.NoError(t, err)
	require.NotNil(t, ch.Montant)
	assert.Zero(t, *ch.Montant)
}

func TestMapCharges_WrongType(t *testing.T) {
	row := chargesRow()
	row["montant"] = "huit mille"

	ch, err := MapCharges(row)
	assert.Nil(t, ch)
	assert.ErrorIs(t, err, ErrColumnAccess)
}

func TestMapRevenues(t *testing.T) {
	row := audit(MapRow{
		"id": int64(41), "titre": "Détartrage", "description": nil,
		"montant": []byte("300.00"), "date": nil, "cabinet_id": int64(7),
	})

	rev, err := MapRevenues(row)
	require.NoError(t, err)
	assert.Equal(t, 300.0, *rev.Montant)
	assert.Nil(t, rev.Description)
	assert.Equal(t, int64(7), rev.Cabinet.ID)
}

func TestMapStatistiques(t *testing.T) {
	row := audit(MapRow{
		"id": int64(5), "nom": "CA mensuel", "categorie": nil,
		"chiffre": 0.0, "dateCalcul": time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		"cabinet_id": nil,
	})

	st, err := MapStatistiques(row)
	require.NoError(t, err)
	assert.Nil(t, st.Categorie)
	assert.Nil(t, st.Cabinet)
	require.NotNil(t, st.Chiffre)
	assert.Zero(t, *st.Chiffre)

	row["categorie"] = "FINANCIERE"
	st, err = MapStatistiques(row)
	require.NoError(t, err)
	assert.Equal(t, model.StatistiqueFinanciere, *st.Categorie)

	row["categorie"] = "financiere"
	_, err = MapStatistiques(row)
	assert.ErrorIs(t, err, ErrEnumDecode)
}

func TestMapUtilisateurAndRole(t *testing.T) {
	u, err := MapUtilisateur(staffRow())
	require.NoError(t, err)
	assert.Equal(t, int64(12), *u.ID)
	assert.Equal(t, "kbennani", *u.Login)
	assert.Equal(t, model.SexeMasculin, u.Sexe)
	assert.Nil(t, u.LastLoginDate)

	role, err := MapRole(audit(MapRow{"id": int64(2), "libelle": "Médecin", "type": "MEDECIN"}))
	require.NoError(t, err)
	assert.Equal(t, model.RoleTypeMedecin, role.Type)
	assert.Equal(t, "Médecin", *role.Libelle)
}

func TestMapStaffHierarchy(t *testing.T) {
	s, err := MapStaff(staffRow())
	require.NoError(t, err)
	assert.Equal(t, 15000.0, *s.Salaire)
	assert.Nil(t, s.Prime)
	assert.Equal(t, int64(18), *s.SoldeConge)
	assert.Equal(t, civil.Date{Year: 2020, Month: time.September, Day: 1}, *s.DateRecrutement)

	a, err := MapAdmin(staffRow())
	require.NoError(t, err)
	assert.Equal(t, s.Utilisateur, a.Utilisateur)

	row := staffRow()
	row["specialite"] = "Orthodontie"
	m, err := MapMedecin(row)
	require.NoError(t, err)
	assert.Equal(t, "Orthodontie", *m.Specialite)
	assert.Equal(t, "Bennani", *m.Nom)

	row = staffRow()
	row["numCNSS"] = "CNSS-001"
	row["commission"] = nil
	sec, err := MapSecretaire(row)
	require.NoError(t, err)
	assert.Equal(t, "CNSS-001", *sec.NumCNSS)
	assert.Nil(t, sec.Commission)
	assert.Equal(t, int64(18), *sec.SoldeConge)
}

func TestMapMedecin_MissingSpecialite(t *testing.T) {
	_, err := MapMedecin(staffRow())
	assert.ErrorIs(t, err, ErrColumnAccess)
}

func TestMapSecretaire_NullSoldeConge(t *testing.T) {
	row := staffRow()
	row["soldeConge"] = nil
	row["numCNSS"] = nil
	row["commission"] = 0.05

	s, err := MapSecretaire(row)
	require.NoError(t, err)
	assert.Nil(t, s.SoldeConge)
	assert.Equal(t, 0.05, *s.Commission)
}

func notificationRow() MapRow {
	return audit(MapRow{
		"id":             int64(100),
		"titre":          "RAPPEL_RDV",
		"message":        "Rendez-vous demain à 10h",
		"date":           time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		"time":           time.Date(0, 1, 1, 18, 30, 0, 0, time.UTC),
		"type":           "RAPPEL",
		"priorite":       "HAUTE",
		"lue":            false,
		"utilisateur_id": int64(12),
	})
}

func TestMapNotification(t *testing.T) {
	n, err := MapNotification(notificationRow())
	require.NoError(t, err)
	assert.Equal(t, model.TitreRappelRDV, n.Titre)
	assert.Equal(t, civil.Time{Hour: 18, Minute: 30}, n.Time)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.April, Day: 2}, n.Date)
	assert.False(t, n.Lue)
	assert.Equal(t, model.PrioriteHaute, n.Priorite)
	assert.Equal(t, int64(12), n.Utilisateur.ID)
}

func TestMapNotification_NullLueRejected(t *testing.T) {
	row := notificationRow()
	row["lue"] = nil

	n, err := MapNotification(row)
	assert.Nil(t, n)
	assert.ErrorIs(t, err, ErrNullValue)

	var colErr *ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "lue", colErr.Column)
}

func TestMapNotification_TextTime(t *testing.T) {
	row := notificationRow()
	row["time"] = "08:05:00"
	row["lue"] = int64(1)

	n, err := MapNotification(row)
	require.NoError(t, err)
	assert.Equal(t, civil.Time{Hour: 8, Minute: 5}, n.Time)
	assert.True(t, n.Lue)
}

func TestMapAgendaMensuel(t *testing.T) {
	a, err := MapAgendaMensuel(MapRow{
		"id": int64(9), "mois": "MARS", "annee": int64(2024), "medecin_id": int64(12),
	})
	require.NoError(t, err)
	assert.Equal(t, model.Mars, a.Mois)
	assert.Equal(t, 2024, a.Annee)
	assert.Equal(t, int64(12), a.MedecinID)
	assert.Nil(t, a.DateCreation)
	assert.Empty(t, a.RendezVous)

	_, err = MapAgendaMensuel(MapRow{"id": int64(9), "mois": "MARS", "annee": nil, "medecin_id": int64(12)})
	assert.ErrorIs(t, err, ErrNullValue)
}

func TestMapRDV(t *testing.T) {
	row := audit(MapRow{
		"id":          int64(70),
		"date":        time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
		"heure":       time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC),
		"motif":       "Contrôle",
		"statut":      "CONFIRME",
		"noteMedecin": nil,
		"patient_id":  int64(1),
		"medecin_id":  int64(12),
		"dossier_id":  nil,
	})

	rdv, err := MapRDV(row)
	require.NoError(t, err)
	assert.Equal(t, model.StatutConfirme, rdv.Statut)
	assert.Equal(t, civil.Time{Hour: 10}, rdv.Heure)
	assert.Equal(t, &model.Ref[model.Patient]{ID: 1}, rdv.Patient)
	assert.Equal(t, &model.Ref[model.Medecin]{ID: 12}, rdv.Medecin)
	assert.Nil(t, rdv.DossierMedical)
	assert.Nil(t, rdv.NoteMedecin)

	row["heure"] = nil
	_, err = MapRDV(row)
	assert.ErrorIs(t, err, ErrNullValue)
}

func TestMapDossierMedical(t *testing.T) {
	d, err := MapDossierMedical(audit(MapRow{"id": int64(30), "patient_id": int64(1)}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.Patient.ID)
}

type failingRow struct{ err error }

func (f failingRow) Value(string) (any, error) { return nil, f.err }

func TestForeignRowErrorsAreColumnAccess(t *testing.T) {
	_, err := MapRole(failingRow{err: errors.New("cursor closed")})
	assert.ErrorIs(t, err, ErrColumnAccess)
	assert.Contains(t, err.Error(), "cursor closed")
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindUnknown, Kind(errors.New("boom")))
	assert.Equal(t, KindNullValue, Kind(&MappingError{Entity: "RDV", Err: &ColumnError{Column: "date", Err: ErrNullValue}}))
}
