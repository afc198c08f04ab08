package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownEnum is returned when a stored code matches no enum member.
var ErrUnknownEnum = errors.New("unknown enum value")

type Sexe string

const (
	SexeMasculin Sexe = "MASCULIN"
	SexeFeminin  Sexe = "FEMININ"
)

type Assurance string

const (
	AssuranceCNOPS  Assurance = "CNOPS"
	AssuranceCNSS   Assurance = "CNSS"
	AssuranceRAMED  Assurance = "RAMED"
	AssuranceAMO    Assurance = "AMO"
	AssurancePrivee Assurance = "PRIVEE"
	AssuranceAucune Assurance = "AUCUNE"
	AssuranceAutre  Assurance = "AUTRE"
)

type CategorieAntecedent string

const (
	CategorieAllergie              CategorieAntecedent = "ALLERGIE"
	CategorieContreIndication      CategorieAntecedent = "CONTRE_INDICATION"
	CategorieTraitementEnCours     CategorieAntecedent = "TRAITEMENT_EN_COURS"
	CategorieMaladieChronique      CategorieAntecedent = "MALADIE_CHRONIQUE"
	CategorieAntecedentChirurgical CategorieAntecedent = "ANTECEDENT_CHIRURGICAL"
	CategorieAntecedentInfectieux  CategorieAntecedent = "ANTECEDENT_INFECTIEUX"
	CategorieAntecedentDentaire    CategorieAntecedent = "ANTECEDENT_DENTAIRE"
	CategorieHabitudeDeVie         CategorieAntecedent = "HABITUDE_DE_VIE"
	CategorieAutre                 CategorieAntecedent = "AUTRE"
)

type NiveauRisque string

const (
	NiveauRisqueFaible   NiveauRisque = "FAIBLE"
	NiveauRisqueModere   NiveauRisque = "MODERE"
	NiveauRisqueEleve    NiveauRisque = "ELEVE"
	NiveauRisqueCritique NiveauRisque = "CRITIQUE"
)

type RoleType string

const (
	RoleTypeAdmin      RoleType = "ADMIN"
	RoleTypeMedecin    RoleType = "MEDECIN"
	RoleTypeSecretaire RoleType = "SECRETAIRE"
)

type TitreNotification string

const (
	TitreRappelRDV     TitreNotification = "RAPPEL_RDV"
	TitreNouveauRDV    TitreNotification = "NOUVEAU_RDV"
	TitreRDVAnnule     TitreNotification = "RDV_ANNULE"
	TitreRDVModifie    TitreNotification = "RDV_MODIFIE"
	TitrePaiement      TitreNotification = "PAIEMENT"
	TitreStockFaible   TitreNotification = "STOCK_FAIBLE"
	TitreMiseAJour     TitreNotification = "MISE_A_JOUR"
	TitreAlerteSysteme TitreNotification = "ALERTE_SYSTEME"
)

type TypeNotification string

const (
	TypeNotificationInfo    TypeNotification = "INFO"
	TypeNotificationRappel  TypeNotification = "RAPPEL"
	TypeNotificationAlerte  TypeNotification = "ALERTE"
	TypeNotificationSysteme TypeNotification = "SYSTEME"
)

type PrioriteNotification string

const (
	PrioriteBasse   PrioriteNotification = "BASSE"
	PrioriteMoyenne PrioriteNotification = "MOYENNE"
	PrioriteHaute   PrioriteNotification = "HAUTE"
	PrioriteUrgente PrioriteNotification = "URGENTE"
)

type Mois string

const (
	Janvier   Mois = "JANVIER"
	Fevrier   Mois = "FEVRIER"
	Mars      Mois = "MARS"
	Avril     Mois = "AVRIL"
	Mai       Mois = "MAI"
	Juin      Mois = "JUIN"
	Juillet   Mois = "JUILLET"
	Aout      Mois = "AOUT"
	Septembre Mois = "SEPTEMBRE"
	Octobre   Mois = "OCTOBRE"
	Novembre  Mois = "NOVEMBRE"
	Decembre  Mois = "DECEMBRE"
)

type StatutRDV string

const (
	StatutPlanifie StatutRDV = "PLANIFIE"
	StatutConfirme StatutRDV = "CONFIRME"
	StatutEnCours  StatutRDV = "EN_COURS"
	StatutTermine  StatutRDV = "TERMINE"
	StatutAnnule   StatutRDV = "ANNULE"
	StatutAbsent   StatutRDV = "ABSENT"
)

type CategorieStatistique string

const (
	StatistiqueFinanciere CategorieStatistique = "FINANCIERE"
	StatistiquePatients   CategorieStatistique = "PATIENTS"
	StatistiqueRDV        CategorieStatistique = "RDV"
	StatistiqueActes      CategorieStatistique = "ACTES"
	StatistiqueAutre      CategorieStatistique = "AUTRE"
)

var (
	sexes      = []Sexe{SexeMasculin, SexeFeminin}
	assurances = []Assurance{AssuranceCNOPS, AssuranceCNSS, AssuranceRAMED, AssuranceAMO, AssurancePrivee, AssuranceAucune, AssuranceAutre}
	categories = []CategorieAntecedent{CategorieAllergie, CategorieContreIndication, CategorieTraitementEnCours, CategorieMaladieChronique, CategorieAntecedentChirurgical, CategorieAntecedentInfectieux, CategorieAntecedentDentaire, CategorieHabitudeDeVie, CategorieAutre}
	risques    = []NiveauRisque{NiveauRisqueFaible, NiveauRisqueModere, NiveauRisqueEleve, NiveauRisqueCritique}
	roleTypes  = []RoleType{RoleTypeAdmin, RoleTypeMedecin, RoleTypeSecretaire}
	titres     = []TitreNotification{TitreRappelRDV, TitreNouveauRDV, TitreRDVAnnule, TitreRDVModifie, TitrePaiement, TitreStockFaible, TitreMiseAJour, TitreAlerteSysteme}
	typesNotif = []TypeNotification{TypeNotificationInfo, TypeNotificationRappel, TypeNotificationAlerte, TypeNotificationSysteme}
	priorites  = []PrioriteNotification{PrioriteBasse, PrioriteMoyenne, PrioriteHaute, PrioriteUrgente}
	moisList   = []Mois{Janvier, Fevrier, Mars, Avril, Mai, Juin, Juillet, Aout, Septembre, Octobre, Novembre, Decembre}
	statuts    = []StatutRDV{StatutPlanifie, StatutConfirme, StatutEnCours, StatutTermine, StatutAnnule, StatutAbsent}
	statsCateg = []CategorieStatistique{StatistiqueFinanciere, StatistiquePatients, StatistiqueRDV, StatistiqueActes, StatistiqueAutre}
)

// parseEnum matches code exactly, case included.
func parseEnum[T ~string](kind, code string, members []T) (T, error) {
	for _, m := range members {
		if string(m) == code {
			return m, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownEnum, kind, code)
}

func ParseSexe(code string) (Sexe, error) { return parseEnum("Sexe", code, sexes) }

func ParseAssurance(code string) (Assurance, error) {
	return parseEnum("Assurance", code, assurances)
}

func ParseCategorieAntecedent(code string) (CategorieAntecedent, error) {
	return parseEnum("CategorieAntecedent", code, categories)
}

func ParseNiveauRisque(code string) (NiveauRisque, error) {
	return parseEnum("NiveauRisque", code, risques)
}

func ParseRoleType(code string) (RoleType, error) {
	return parseEnum("RoleType", code, roleTypes)
}

func ParseTitreNotification(code string) (TitreNotification, error) {
	return parseEnum("TitreNotification", code, titres)
}

func ParseTypeNotification(code string) (TypeNotification, error) {
	return parseEnum("TypeNotification", code, typesNotif)
}

func ParsePrioriteNotification(code string) (PrioriteNotification, error) {
	return parseEnum("PrioriteNotification", code, priorites)
}

func ParseMois(code string) (Mois, error) { return parseEnum("Mois", code, moisList) }

// Month returns the calendar month, or 0 for an unknown value.
func (m Mois) Month() time.Month {
	for i, candidate := range moisList {
		if candidate == m {
			return time.Month(i + 1)
		}
	}
	return 0
}

func ParseStatutRDV(code string) (StatutRDV, error) {
	return parseEnum("StatutRDV", code, statuts)
}

func ParseCategorieStatistique(code string) (CategorieStatistique, error) {
	return parseEnum("CategorieStatistique", code, statsCateg)
}
