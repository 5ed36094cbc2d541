package turing_machine

// A Checker applies a pass/fail policy to finished runs. Deciding whether a
// run met expectations is deliberately separate from executing it: the
// harness records what happened, the checker judges it.

type CheckFailReason uint

func (r CheckFailReason) String() string {
	switch r {
	case FailedOutcome:
		return "outcome mismatch"
	case FailedOutputDistance:
		return "output too far from expected"
	case FailedStepLimit:
		return "step limit reached"
	case FailedStepsOverBudget:
		return "step count over budget"
	default:
		return "passed"
	}
}

type CheckConfig struct {
	WantAccepted bool `toml:"want_accepted"`
	// MaxDistance is the largest tolerated edit distance between output and
	// expected tape text; 0 demands an exact match. Only consulted when the
	// request carried an expectation.
	MaxDistance uint `toml:"max_distance"`
	// MaxSteps fails runs that halted legitimately but took too long. 0
	// disables the budget.
	MaxSteps uint `toml:"max_steps"`
}

type Checker struct {
	Config *CheckConfig
}

func NewChecker(config *CheckConfig) *Checker {
	return &Checker{Config: config}
}

func (c *Checker) Check(r *RunRecord) CheckFailReason {

	if r.StepLimitHit {
		return FailedStepLimit
	}
	if r.Accepted != c.Config.WantAccepted {
		return FailedOutcome
	}
	if len(r.Expected) > 0 && r.Distance > c.Config.MaxDistance {
		return FailedOutputDistance
	}
	if c.Config.MaxSteps > 0 && r.Steps > c.Config.MaxSteps {
		return FailedStepsOverBudget
	}
	return 0

}
