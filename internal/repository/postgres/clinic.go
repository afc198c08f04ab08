package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/dental-tech/internal/model"
	"github.com/jwalitptl/dental-tech/internal/repository"
	"github.com/jwalitptl/dental-tech/internal/repository/rowmap"
	apperrors "github.com/jwalitptl/dental-tech/pkg/errors"
)

type cabinetRepository struct {
	*BaseRepository
}

func NewCabinetRepository(base *BaseRepository) repository.CabinetRepository {
	return &cabinetRepository{BaseRepository: base}
}

func (r *cabinetRepository) Get(ctx context.Context, id int64) (*model.CabinetMedical, error) {
	query := fmt.Sprintf(`SELECT %s FROM cabinet_medical WHERE id = $1`, columns("", cabinetColumns...))
	return selectOne(ctx, r.BaseRepository, "CabinetMedical", "get_cabinet", rowmap.MapCabinetMedical, query, id)
}

func (r *cabinetRepository) Resolve(ctx context.Context, ref *model.Ref[model.CabinetMedical]) (*model.CabinetMedical, error) {
	if ref == nil {
		return nil, apperrors.BadRequest("nil cabinet reference", nil)
	}
	return r.Get(ctx, ref.ID)
}

func (r *cabinetRepository) ListCharges(ctx context.Context, cabinetID int64) ([]*model.Charges, error) {
	query := fmt.Sprintf(`SELECT %s FROM charges WHERE cabinet_id = $1 ORDER BY "date" DESC`, columns("", ledgerColumns...))
	return selectAll(ctx, r.BaseRepository, "Charges", "list_charges", rowmap.MapCharges, query, cabinetID)
}

func (r *cabinetRepository) ListRevenues(ctx context.Context, cabinetID int64) ([]*model.Revenues, error) {
	query := fmt.Sprintf(`SELECT %s FROM revenues WHERE cabinet_id = $1 ORDER BY "date" DESC`, columns("", ledgerColumns...))
	return selectAll(ctx, r.BaseRepository, "Revenues", "list_revenues", rowmap.MapRevenues, query, cabinetID)
}

func (r *cabinetRepository) ListStatistiques(ctx context.Context, cabinetID int64) ([]*model.Statistiques, error) {
	query := fmt.Sprintf(`SELECT %s FROM statistiques WHERE cabinet_id = $1 ORDER BY "dateCalcul" DESC`, columns("", statistiqueColumns...))
	return selectAll(ctx, r.BaseRepository, "Statistiques", "list_statistiques", rowmap.MapStatistiques, query, cabinetID)
}

func (r *cabinetRepository) ListStaff(ctx context.Context, cabinetID int64) ([]*model.Staff, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM utilisateurs u
		JOIN staff s ON s.id = u.id
		WHERE s.cabinet_id = $1
		ORDER BY u.nom
	`, columns("u", utilisateurColumns...), columns("s", staffColumns...))
	return selectAll(ctx, r.BaseRepository, "Staff", "list_staff", rowmap.MapStaff, query, cabinetID)
}

func (r *cabinetRepository) LoadAll(ctx context.Context, cabinet *model.CabinetMedical) error {
	if cabinet == nil || cabinet.ID == nil {
		return apperrors.BadRequest("cabinet has no identifier", nil)
	}
	id := *cabinet.ID

	staff, err := r.ListStaff(ctx, id)
	if err != nil {
		return err
	}
	charges, err := r.ListCharges(ctx, id)
	if err != nil {
		return err
	}
	revenues, err := r.ListRevenues(ctx, id)
	if err != nil {
		return err
	}
	stats, err := r.ListStatistiques(ctx, id)
	if err != nil {
		return err
	}

	cabinet.Staff = staff
	cabinet.Charges = charges
	cabinet.Revenues = revenues
	cabinet.Statistiques = stats
	return nil
}
