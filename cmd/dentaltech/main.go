package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/dental-tech/internal/config"
	"github.com/jwalitptl/dental-tech/internal/model"
	"github.com/jwalitptl/dental-tech/internal/repository/postgres"
	"github.com/jwalitptl/dental-tech/internal/service/auth"
	"github.com/jwalitptl/dental-tech/pkg/logger"
	"github.com/jwalitptl/dental-tech/pkg/metrics"
	"github.com/jwalitptl/dental-tech/pkg/security"
)

const usage = `usage: dentaltech [flags] <command> <args>

commands:
  patient <id>                      patient with its antecedents
  cabinet <id>                      cabinet with staff, charges, revenues and statistics
  medecin <id>                      doctor with roles
  notifications <userID> [unread]   notifications of a user
  agenda <medecinID> <MOIS> <annee> monthly agenda of a doctor
  rdv <id>                          appointment with its patient and doctor
  login <login>                     check DENTALTECH_PASSWORD and print the session
`

func main() {
	os.Exit(dentaltech(os.Args[1:]))
}

// dentaltech returns the process exit code; deferred cleanup runs before
// main exits.
func dentaltech(argv []string) int {
	fs := pflag.NewFlagSet("dentaltech", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "path to config file")
	skip := fs.Bool("skip-malformed", false, "skip rows that fail to map in list queries")
	timeout := fs.Duration("timeout", 30*time.Second, "overall query timeout")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	args := fs.Args()
	if len(args) < 2 {
		fs.Usage()
		return 2
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadConfigFile(*configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return 1
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stderr,
		JSON:       cfg.Log.JSON,
	})
	m := metrics.NewMetrics(cfg.Metrics.Namespace, "repository")

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		return 1
	}
	defer db.Close()

	opts := postgres.Options{SkipMalformedRows: cfg.Repository.SkipMalformedRows || *skip}
	base := postgres.NewBaseRepository(db, appLogger, m, opts)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	result, err := run(ctx, base, args)
	if err != nil {
		log.Error().Err(err).Strs("args", args).Msg("command failed")
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Error().Err(err).Msg("failed to encode result")
		return 1
	}
	return 0
}

func run(ctx context.Context, base *postgres.BaseRepository, args []string) (interface{}, error) {
	patients := postgres.NewPatientRepository(base)
	cabinets := postgres.NewCabinetRepository(base)
	users := postgres.NewUserRepository(base)
	notifications := postgres.NewNotificationRepository(base)
	agendas := postgres.NewAgendaRepository(base)

	if args[0] == "login" {
		svc := auth.NewService(users, security.NewBcryptHasher(bcrypt.DefaultCost), base.Logger())
		return svc.Login(ctx, args[1], os.Getenv("DENTALTECH_PASSWORD"))
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", args[1], err)
	}

	switch args[0] {
	case "patient":
		p, err := patients.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := patients.LoadAntecedents(ctx, p); err != nil {
			return nil, err
		}
		return p, nil

	case "cabinet":
		c, err := cabinets.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := cabinets.LoadAll(ctx, c); err != nil {
			return nil, err
		}
		return c, nil

	case "medecin":
		med, err := users.GetMedecin(ctx, id)
		if err != nil {
			return nil, err
		}
		roles, err := users.ListRoles(ctx, id)
		if err != nil {
			return nil, err
		}
		return struct {
			*model.Medecin
			Roles []*model.Role `json:"roles"`
		}{med, roles}, nil

	case "notifications":
		unread := len(args) > 2 && args[2] == "unread"
		return notifications.ListForUser(ctx, id, unread)

	case "agenda":
		if len(args) < 4 {
			return nil, fmt.Errorf("agenda needs <medecinID> <MOIS> <annee>")
		}
		mois, err := model.ParseMois(args[2])
		if err != nil {
			return nil, err
		}
		annee, err := strconv.Atoi(args[3])
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: %w", args[3], err)
		}
		return agendas.GetAgenda(ctx, id, mois, annee)

	case "rdv":
		rdv, err := agendas.GetRDV(ctx, id)
		if err != nil {
			return nil, err
		}
		out := struct {
			*model.RDV
			PatientDetail *model.Patient `json:"patient_detail,omitempty"`
			MedecinDetail *model.Medecin `json:"medecin_detail,omitempty"`
		}{RDV: rdv}
		if rdv.Patient != nil {
			if out.PatientDetail, err = patients.Resolve(ctx, rdv.Patient); err != nil {
				return nil, err
			}
		}
		if rdv.Medecin != nil {
			if out.MedecinDetail, err = users.ResolveMedecin(ctx, rdv.Medecin); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("unknown command %q", args[0])
}
