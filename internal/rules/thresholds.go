package rules

// ThresholdVars are the variable names of a threshold set, lowest first.
var ThresholdVars = []string{"faveur", "avantage", "efficace", "surpuissance", "domination"}

// ThresholdChecks require a strictly ascending set. NaN fails every
// comparison and is rejected as well.
var ThresholdChecks = []Check{
	{Name: "faveur_avantage", Formula: "faveur < avantage", Error: "faveur must be below avantage"},
	{Name: "avantage_efficace", Formula: "avantage < efficace", Error: "avantage must be below efficace"},
	{Name: "efficace_surpuissance", Formula: "efficace < surpuissance", Error: "efficace must be below surpuissance"},
	{Name: "surpuissance_domination", Formula: "surpuissance < domination", Error: "surpuissance must be below domination"},
}

// NewThresholdValidator compiles ThresholdChecks.
func NewThresholdValidator() (*Validator, error) {
	return NewValidator(ThresholdVars, ThresholdChecks)
}
