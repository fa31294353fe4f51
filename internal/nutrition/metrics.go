package nutrition

// Atwater energy factors, kcal per gram.
const (
	KcalPerGramFat     = 9
	KcalPerGramCarb    = 4
	KcalPerGramProtein = 4
)

// Metrics are the values derived from Fields. They are never stored.
type Metrics struct {
	FatGrams     float64
	CarbGrams    float64
	ProteinGrams float64

	DeclaredCalories float64
	FatCalories      float64
	CarbCalories     float64
	ProteinCalories  float64
	MacroCalories    float64

	FatPct     float64
	CarbPct    float64
	ProteinPct float64

	Discrepancy    float64
	DiscrepancyPct float64
}

// Derive computes the metrics for the given fields.
func Derive(f Fields) Metrics {
	grams := func(per100 float64) float64 { return per100 * f.Weight / 100 }

	var m Metrics
	m.FatGrams = grams(f.Fat100)
	m.CarbGrams = grams(f.Carb100)
	m.ProteinGrams = grams(f.Prot100)
	m.DeclaredCalories = f.Cal100 * f.Weight / 100

	m.FatCalories = m.FatGrams * KcalPerGramFat
	m.CarbCalories = m.CarbGrams * KcalPerGramCarb
	m.ProteinCalories = m.ProteinGrams * KcalPerGramProtein
	m.MacroCalories = m.FatCalories + m.CarbCalories + m.ProteinCalories

	pct := func(v float64) float64 {
		if m.MacroCalories > 0 {
			return v / m.MacroCalories * 100
		}
		return 0
	}
	m.FatPct = pct(m.FatCalories)
	m.CarbPct = pct(m.CarbCalories)
	m.ProteinPct = pct(m.ProteinCalories)

	m.Discrepancy = m.MacroCalories - m.DeclaredCalories
	if m.DeclaredCalories != 0 {
		m.DiscrepancyPct = m.Discrepancy / m.DeclaredCalories * 100
	}
	return m
}

// MaxGrams returns the largest of the three macro weights, at least 1.
// Bars are scaled against it.
func (m Metrics) MaxGrams() float64 {
	return max(m.FatGrams, m.CarbGrams, m.ProteinGrams, 1)
}

// MacrosExceedDeclared reports whether the macros account for more energy than declared.
func (m Metrics) MacrosExceedDeclared() bool {
	return m.Discrepancy > 0
}
