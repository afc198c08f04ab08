package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/dental-tech/internal/model"
	"github.com/jwalitptl/dental-tech/internal/repository"
	"github.com/jwalitptl/dental-tech/internal/repository/rowmap"
	apperrors "github.com/jwalitptl/dental-tech/pkg/errors"
)

type userRepository struct {
	*BaseRepository
}

func NewUserRepository(base *BaseRepository) repository.UserRepository {
	return &userRepository{BaseRepository: base}
}

// staffSelect joins the staff tables down to the given role table; an
// empty role stops at staff.
func staffSelect(role string, extra ...string) string {
	query := fmt.Sprintf(`SELECT %s, %s`, columns("u", utilisateurColumns...), columns("s", staffColumns...))
	if len(extra) > 0 {
		query += ", " + columns("x", extra...)
	}
	query += ` FROM utilisateurs u JOIN staff s ON s.id = u.id`
	if role != "" {
		query += fmt.Sprintf(` JOIN %s x ON x.id = u.id`, role)
	}
	return query + ` WHERE u.id = $1`
}

func (r *userRepository) GetUtilisateur(ctx context.Context, id int64) (*model.Utilisateur, error) {
	query := fmt.Sprintf(`SELECT %s FROM utilisateurs WHERE id = $1`, columns("", utilisateurColumns...))
	return selectOne(ctx, r.BaseRepository, "Utilisateur", "get_utilisateur", rowmap.MapUtilisateur, query, id)
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.Utilisateur, error) {
	query := fmt.Sprintf(`SELECT %s FROM utilisateurs WHERE login = $1`, columns("", utilisateurColumns...))
	return selectOne(ctx, r.BaseRepository, "Utilisateur", "get_utilisateur_by_login", rowmap.MapUtilisateur, query, login)
}

func (r *userRepository) ListRoles(ctx context.Context, userID int64) ([]*model.Role, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM roles r
		JOIN utilisateur_roles ur ON ur.role_id = r.id
		WHERE ur.utilisateur_id = $1
		ORDER BY r.libelle
	`, columns("r", roleColumns...))
	return selectAll(ctx, r.BaseRepository, "Role", "list_roles", rowmap.MapRole, query, userID)
}

func (r *userRepository) GetStaff(ctx context.Context, id int64) (*model.Staff, error) {
	return selectOne(ctx, r.BaseRepository, "Staff", "get_staff", rowmap.MapStaff, staffSelect(""), id)
}

func (r *userRepository) GetAdmin(ctx context.Context, id int64) (*model.Admin, error) {
	return selectOne(ctx, r.BaseRepository, "Admin", "get_admin", rowmap.MapAdmin, staffSelect("admins"), id)
}

func (r *userRepository) GetMedecin(ctx context.Context, id int64) (*model.Medecin, error) {
	query := staffSelect("medecins", "specialite")
	return selectOne(ctx, r.BaseRepository, "Medecin", "get_medecin", rowmap.MapMedecin, query, id)
}

func (r *userRepository) ResolveMedecin(ctx context.Context, ref *model.Ref[model.Medecin]) (*model.Medecin, error) {
	if ref == nil {
		return nil, apperrors.BadRequest("nil medecin reference", nil)
	}
	return r.GetMedecin(ctx, ref.ID)
}

func (r *userRepository) GetSecretaire(ctx context.Context, id int64) (*model.Secretaire, error) {
	query := staffSelect("secretaires", "numCNSS", "commission")
	return selectOne(ctx, r.BaseRepository, "Secretaire", "get_secretaire", rowmap.MapSecretaire, query, id)
}
