package postgres

// Column names each row mapper reads. They are the schema contract between
// the tables and internal/repository/rowmap.
var (
	auditColumns = []string{"dateCreation", "dateDerniereModification", "creePar", "modifiePar"}

	patientColumns = append([]string{
		"id", "nom", "prenom", "adresse", "telephone", "email", "dateNaissance", "sexe", "assurance",
	}, auditColumns...)

	antecedentColumns = append([]string{"id", "nom", "categorie", "niveauRisque"}, auditColumns...)

	dossierColumns = append([]string{"id", "patient_id"}, auditColumns...)

	cabinetColumns = append([]string{
		"id", "nom", "email", "logo", "adresse", "cin", "tel1", "tel2",
		"siteWeb", "instagram", "facebook", "description",
	}, auditColumns...)

	ledgerColumns = append([]string{"id", "titre", "description", "montant", "date", "cabinet_id"}, auditColumns...)

	statistiqueColumns = append([]string{
		"id", "nom", "categorie", "chiffre", "dateCalcul", "cabinet_id",
	}, auditColumns...)

	utilisateurColumns = append([]string{
		"id", "nom", "email", "adresse", "cin", "tel", "sexe", "login", "motDePasse",
		"lastLoginDate", "dateNaissance",
	}, auditColumns...)

	staffColumns = []string{"salaire", "prime", "dateRecrutement", "soldeConge"}

	roleColumns = append([]string{"id", "libelle", "type"}, auditColumns...)

	notificationColumns = append([]string{
		"id", "titre", "message", "date", "time", "type", "priorite", "lue", "utilisateur_id",
	}, auditColumns...)

	agendaColumns = []string{"id", "mois", "annee", "medecin_id"}

	rdvColumns = append([]string{
		"id", "date", "heure", "motif", "statut", "noteMedecin", "patient_id", "medecin_id", "dossier_id",
	}, auditColumns...)
)
