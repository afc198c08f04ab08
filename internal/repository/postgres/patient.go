package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/dental-tech/internal/model"
	"github.com/jwalitptl/dental-tech/internal/repository"
	"github.com/jwalitptl/dental-tech/internal/repository/rowmap"
	apperrors "github.com/jwalitptl/dental-tech/pkg/errors"
)

type patientRepository struct {
	*BaseRepository
}

func NewPatientRepository(base *BaseRepository) repository.PatientRepository {
	return &patientRepository{BaseRepository: base}
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	query := fmt.Sprintf(`SELECT %s FROM patients WHERE id = $1`, columns("", patientColumns...))
	return selectOne(ctx, r.BaseRepository, "Patient", "get_patient", rowmap.MapPatient, query, id)
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := fmt.Sprintf(`SELECT %s FROM patients ORDER BY nom, prenom`, columns("", patientColumns...))
	return selectAll(ctx, r.BaseRepository, "Patient", "list_patients", rowmap.MapPatient, query)
}

func (r *patientRepository) ListAntecedents(ctx context.Context, patientID int64) ([]*model.Antecedent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM antecedents a
		JOIN patient_antecedents pa ON pa.antecedent_id = a.id
		WHERE pa.patient_id = $1
		ORDER BY a.id
	`, columns("a", antecedentColumns...))
	return selectAll(ctx, r.BaseRepository, "Antecedent", "list_antecedents", rowmap.MapAntecedent, query, patientID)
}

func (r *patientRepository) LoadAntecedents(ctx context.Context, patient *model.Patient) error {
	if patient == nil || patient.ID == nil {
		return apperrors.BadRequest("patient has no identifier", nil)
	}
	antecedents, err := r.ListAntecedents(ctx, *patient.ID)
	if err != nil {
		return err
	}
	patient.Antecedents = antecedents
	return nil
}

func (r *patientRepository) Resolve(ctx context.Context, ref *model.Ref[model.Patient]) (*model.Patient, error) {
	if ref == nil {
		return nil, apperrors.BadRequest("nil patient reference", nil)
	}
	return r.Get(ctx, ref.ID)
}
