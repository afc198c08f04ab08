package repository

import (
	"context"

	"github.com/jwalitptl/dental-tech/internal/model"
)

// All repository interfaces in one file.
//
// Rows come back shallow from the row mappers: related entities are
// model.Ref stand-ins. The Load*/Resolve* methods are the explicit
// hydration step.
type (
	PatientRepository interface {
		Get(ctx context.Context, id int64) (*model.Patient, error)
		List(ctx context.Context) ([]*model.Patient, error)
		ListAntecedents(ctx context.Context, patientID int64) ([]*model.Antecedent, error)
		// LoadAntecedents replaces patient.Antecedents with the stored ones.
		LoadAntecedents(ctx context.Context, patient *model.Patient) error
		Resolve(ctx context.Context, ref *model.Ref[model.Patient]) (*model.Patient, error)
	}

	CabinetRepository interface {
		Get(ctx context.Context, id int64) (*model.CabinetMedical, error)
		Resolve(ctx context.Context, ref *model.Ref[model.CabinetMedical]) (*model.CabinetMedical, error)
		ListCharges(ctx context.Context, cabinetID int64) ([]*model.Charges, error)
		ListRevenues(ctx context.Context, cabinetID int64) ([]*model.Revenues, error)
		ListStatistiques(ctx context.Context, cabinetID int64) ([]*model.Statistiques, error)
		ListStaff(ctx context.Context, cabinetID int64) ([]*model.Staff, error)
		// LoadAll fills staff, charges, revenues and statistics.
		LoadAll(ctx context.Context, cabinet *model.CabinetMedical) error
	}

	UserRepository interface {
		GetUtilisateur(ctx context.Context, id int64) (*model.Utilisateur, error)
		GetByLogin(ctx context.Context, login string) (*model.Utilisateur, error)
		ListRoles(ctx context.Context, userID int64) ([]*model.Role, error)
		GetStaff(ctx context.Context, id int64) (*model.Staff, error)
		GetAdmin(ctx context.Context, id int64) (*model.Admin, error)
		GetMedecin(ctx context.Context, id int64) (*model.Medecin, error)
		ResolveMedecin(ctx context.Context, ref *model.Ref[model.Medecin]) (*model.Medecin, error)
		GetSecretaire(ctx context.Context, id int64) (*model.Secretaire, error)
	}

	NotificationRepository interface {
		ListForUser(ctx context.Context, userID int64, unreadOnly bool) ([]*model.Notification, error)
	}

	AgendaRepository interface {
		// GetAgenda loads the month header plus unavailable days and
		// appointments of that month.
		GetAgenda(ctx context.Context, medecinID int64, mois model.Mois, annee int) (*model.AgendaMensuel, error)
		GetRDV(ctx context.Context, id int64) (*model.RDV, error)
		ListRDVForPatient(ctx context.Context, patientID int64) ([]*model.RDV, error)
		GetDossierMedical(ctx context.Context, id int64) (*model.DossierMedical, error)
	}
)
