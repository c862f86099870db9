package domain

// Column names of the project dataset. They are the contract read by the
// downstream enrichment stages and must not be renamed.
const (
	FieldProjectName     = "Project Name"
	FieldCategory        = "Category of Activity"
	FieldCity            = "City"
	FieldDepartment      = "Department"
	FieldDescription     = "Project Description"
	FieldAmountRaised    = "Montant Levé"
	FieldAmountRequested = "Montant Demandé"
	FieldInterestRate    = "Taux d’intérêt annuel"
	FieldRiskLevel       = "Niveau de risque"
	FieldDurationValue   = "Durée (value)"
	FieldDurationUnit    = "Durée (unit)"
	FieldFinancingValue  = "Durée de financement (value)"
	FieldFinancingUnit   = "Durée de financement (unit)"
	FieldTurnoverYear    = "Chiffre d'affaires (year)"
	FieldTurnoverValue   = "Chiffre d'affaires (value)"
	FieldCreationYear    = "Date de création"
	FieldEmployees       = "Nombre de salariés"
	FieldLenders         = "Nombre de preteurs"
	FieldCompany         = "Entreprise"
	FieldAbout           = "A propos"
	FieldFileName        = "file_name"
)

// NotAvailable is the generic placeholder for a field missing from a
// document. It is applied at assembly time for cross-record gaps.
const NotAvailable = "N/A"

// RiskNotClassified is written when no risk level was found.
const RiskNotClassified = "NC"

// Loan duration vocabulary. Durations are canonicalised to months.
const (
	DurationUnitMonths = "mois"
	DurationUnitYears  = "ans"

	// DurationValueDefault is used when no duration was found.
	DurationValueDefault int64 = 0
)

// Financing duration vocabulary. Durations are canonicalised to minutes.
const (
	FinancingUnitMinutes = "minutes"
	FinancingUnitHours   = "heures"
	FinancingUnitDays    = "jours"

	// FinancingUnitNotClassified is the unit placeholder when no financing
	// duration was found. Distinct from the loan duration default.
	FinancingUnitNotClassified = "nc"

	// FinancingNotApplicable marks a missing financing duration. Real
	// elapsed times are never negative, so the marker cannot collide with
	// a converted value and is never multiplied.
	FinancingNotApplicable float64 = -1
)

// IsPlaceholder reports whether v holds no usable data: an empty string or
// the generic not-available marker.
func IsPlaceholder(v Value) bool {
	return v.IsBlank() || (v.Kind() == KindString && v.Text() == NotAvailable)
}
