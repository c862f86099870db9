package rules

import "github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"

// Patterns of the supported project page layout. \p{Zs} is added wherever
// digits are grouped because pages use non-breaking spaces there.
const (
	projectNamePattern = `Projets à financer\s*\|\s*(.*)`
	categoryPattern    = `Partager ce projet\s*:\s*([\p{L}\p{N}_\s-]+)\s+-`
	locationPattern    = `- ([\p{L}\p{N}_\s'’-]+)\s+\((\d{2})\)`
	descriptionPattern = `\|\s*([^|]+)\n`
	amountPairPattern  = `([\d\s\p{Zs},.]+)[\s\p{Zs}]*€[\s\p{Zs}]*/[\s\p{Zs}]*([\d\s\p{Zs},.]+)[\s\p{Zs}]*€`
	ratePattern        = `TAUX PAR AN[\s\p{Zs}]*([\d,.]+)[\s\p{Zs}]*%`
	riskPattern        = `NIVEAU DE RISQUE\*\s*([A-D]+.?)`
	durationPattern    = `DURÉE\s*(\d+)\s*(mois|ans)`
	financingPattern   = `FINANCÉ EN\s*([\d\s\p{Zs},.]+)\s*(heures|minutes|jours)`
	turnoverPattern    = `Chiffre d['’]affaires\s*\((\d{4})\)\s*:[\s\p{Zs}]*([\d\s\p{Zs},.]+)[\s\p{Zs}]*€`
	creationPattern    = `Date de création\s*:\s*(\d{4})`
	employeesPattern   = `Nombre de salariés\s*:[\s\p{Zs}]*(\d[\d\p{Zs}]*)`
	lendersPattern     = `(\d[\d\p{Zs}]*)\s+prêteurs`
	aboutPattern       = `(?s)A propos de(.*?)(?:Gouvernance|Dirigeants)`
)

type layoutOptions struct {
	descriptionLine int
}

// Option configures the default rule table.
type Option func(*layoutOptions)

// WithDescriptionLine sets the zero-based line of the first "| ..." block
// used as the project description.
func WithDescriptionLine(line int) Option {
	return func(o *layoutOptions) {
		if line >= 0 {
			o.descriptionLine = line
		}
	}
}

// Default returns the rule table for the supported project page layout,
// in evaluation order.
func Default(opts ...Option) []Rule {
	o := &layoutOptions{descriptionLine: domain.DefaultDescriptionLine}
	for _, opt := range opts {
		opt(o)
	}

	return []Rule{
		Scalar("project-name", projectNamePattern, domain.FieldProjectName),
		Scalar("category", categoryPattern, domain.FieldCategory),
		Location("location", locationPattern, domain.FieldCity, domain.FieldDepartment),
		LinePosition("description", descriptionPattern, domain.FieldDescription, o.descriptionLine),
		AmountPair("amount-pair", amountPairPattern, domain.FieldAmountRaised, domain.FieldAmountRequested),
		Rate("rate", ratePattern, domain.FieldInterestRate),
		Scalar("risk-level", riskPattern, domain.FieldRiskLevel),
		ValueUnit("duration", durationPattern, domain.FieldDurationValue, domain.FieldDurationUnit),
		ValueUnit("financing-duration", financingPattern, domain.FieldFinancingValue, domain.FieldFinancingUnit),
		YearValue("turnover", turnoverPattern, domain.FieldTurnoverYear, domain.FieldTurnoverValue),
		Integer("creation-year", creationPattern, domain.FieldCreationYear),
		Integer("employees", employeesPattern, domain.FieldEmployees),
		Integer("lenders", lendersPattern, domain.FieldLenders),
		SpanSplit("about", aboutPattern, domain.FieldCompany, domain.FieldAbout),
	}
}

// FieldNames returns the fields produced by rs, in rule order.
func FieldNames(rs []Rule) []string {
	var names []string
	for _, r := range rs {
		names = append(names, r.Fields()...)
	}
	return names
}
