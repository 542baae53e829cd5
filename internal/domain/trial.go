package domain

// Trial is one simulated case outcome: a scenario branch plus Gaussian
// noise around that branch's value, cost, and duration means.
type Trial struct {
	Scenario ScenarioType
	Value    float64
	Cost     float64
	TimeDays float64
}

// Won reports whether the trial resolved with a nonzero recovery,
// i.e. any scenario other than a trial loss.
func (t Trial) Won() bool {
	return t.Scenario != ScenarioTrialLoss
}
