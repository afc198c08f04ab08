package postgres

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/jwalitptl/dental-tech/internal/model"
	"github.com/jwalitptl/dental-tech/internal/repository"
	"github.com/jwalitptl/dental-tech/internal/repository/rowmap"
	apperrors "github.com/jwalitptl/dental-tech/pkg/errors"
)

type agendaRepository struct {
	*BaseRepository
}

func NewAgendaRepository(base *BaseRepository) repository.AgendaRepository {
	return &agendaRepository{BaseRepository: base}
}

func (r *agendaRepository) GetAgenda(ctx context.Context, medecinID int64, mois model.Mois, annee int) (*model.AgendaMensuel, error) {
	month := mois.Month()
	if month == 0 {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown month %q", mois), model.ErrUnknownEnum)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM agenda_mensuel
		WHERE medecin_id = $1 AND mois = $2 AND annee = $3
	`, columns("", agendaColumns...))
	agenda, err := selectOne(ctx, r.BaseRepository, "AgendaMensuel", "get_agenda", rowmap.MapAgendaMensuel, query, medecinID, string(mois), annee)
	if err != nil {
		return nil, err
	}

	days, err := r.unavailableDays(ctx, *agenda.ID)
	if err != nil {
		return nil, err
	}
	agenda.JoursNonDisponibles = days

	first := time.Date(annee, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	rdvQuery := fmt.Sprintf(`
		SELECT %s FROM rdv
		WHERE medecin_id = $1 AND "date" >= $2 AND "date" < $3
		ORDER BY "date", heure
	`, columns("", rdvColumns...))
	rendezVous, err := selectAll(ctx, r.BaseRepository, "RDV", "list_agenda_rdv", rowmap.MapRDV, rdvQuery,
		medecinID, first, next)
	if err != nil {
		return nil, err
	}
	agenda.RendezVous = rendezVous

	return agenda, nil
}

func (r *agendaRepository) unavailableDays(ctx context.Context, agendaID int64) (days []civil.Date, err error) {
	const operation = "list_unavailable_days"
	start := time.Now()
	defer func() { r.observe(operation, start, err) }()

	var raw []time.Time
	query := `SELECT jour FROM agenda_jours_non_disponibles WHERE agenda_id = $1 ORDER BY jour`
	if err := r.db.SelectContext(ctx, &raw, query, agendaID); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to %s: %w", operation, err))
	}

	days = make([]civil.Date, 0, len(raw))
	for _, t := range raw {
		days = append(days, civil.DateOf(t))
	}
	return days, nil
}

func (r *agendaRepository) GetRDV(ctx context.Context, id int64) (*model.RDV, error) {
	query := fmt.Sprintf(`SELECT %s FROM rdv WHERE id = $1`, columns("", rdvColumns...))
	return selectOne(ctx, r.BaseRepository, "RDV", "get_rdv", rowmap.MapRDV, query, id)
}

func (r *agendaRepository) ListRDVForPatient(ctx context.Context, patientID int64) ([]*model.RDV, error) {
	query := fmt.Sprintf(`SELECT %s FROM rdv WHERE patient_id = $1 ORDER BY "date" DESC, heure DESC`, columns("", rdvColumns...))
	return selectAll(ctx, r.BaseRepository, "RDV", "list_patient_rdv", rowmap.MapRDV, query, patientID)
}

func (r *agendaRepository) GetDossierMedical(ctx context.Context, id int64) (*model.DossierMedical, error) {
	query := fmt.Sprintf(`SELECT %s FROM dossier_medical WHERE id = $1`, columns("", dossierColumns...))
	return selectOne(ctx, r.BaseRepository, "DossierMedical", "get_dossier_medical", rowmap.MapDossierMedical, query, id)
}
