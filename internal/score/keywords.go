package score

// Keywords is the fixed keyword configuration driving the scoring
// engine and categorizers. Tables are built once at load time and never
// mutated afterwards; scoring is a pure function of text and tables.
type Keywords struct {
	// Communication scoring (inbox domain).
	Urgent     []string `yaml:"urgent"`
	HighImpact []string `yaml:"high_impact"`
	Meeting    []string `yaml:"meeting"`
	Decision   []string `yaml:"decision"`
	Strategic  []string `yaml:"strategic"`
	Revenue    []string `yaml:"revenue"`
	People     []string `yaml:"people"`
	ExecTitles []string `yaml:"exec_titles"`

	// Task categorization (task domain).
	TaskStrategic   []string `yaml:"task_strategic"`
	TaskStakeholder []string `yaml:"task_stakeholder"`
	TaskOperational []string `yaml:"task_operational"`
	TaskUrgent      []string `yaml:"task_urgent"`
	TaskThisWeek    []string `yaml:"task_this_week"`
	TaskDecision    []string `yaml:"task_decision"`
	TaskTeam        []string `yaml:"task_team"`

	// Names that mark a task as stakeholder work.
	StakeholderNames []string `yaml:"stakeholder_names"`
}

// DefaultKeywords returns the built-in tables. Callers may extend a
// copy before constructing an Engine, but the Engine itself treats its
// tables as read-only.
func DefaultKeywords() Keywords {
	return Keywords{
		Urgent: []string{
			"urgent", "asap", "emergency", "critical", "immediate",
			"escalation", "blocked", "blocker", "deadline today",
			"needs approval", "approval needed", "action required",
		},
		HighImpact: []string{
			"executive", "cto", "vp", "director", "revenue",
			"customer escalation", "production", "outage",
			"board", "strategy", "quarterly", "okr", "budget",
		},
		Meeting: []string{
			"meeting", "sync", "call", "calendar", "invite",
			"reschedule", "cancel", "confirm attendance",
		},
		Decision: []string{
			"approve", "decision", "review needed", "feedback needed",
			"sign off", "needs your input", "waiting on you",
		},
		Strategic:  []string{"strategy", "vision", "roadmap", "okr", "quarterly"},
		Revenue:    []string{"revenue", "customer", "escalation", "churn"},
		People:     []string{"hiring", "performance", "team", "org", "compensation"},
		ExecTitles: []string{"cto", "vp", "director", "ceo"},

		TaskStrategic: []string{
			"2026 planning", "strategy", "vision", "transformation",
			"craft", "improvement", "initiative", "roadmap",
		},
		TaskStakeholder: []string{
			"andre", "olivia", "riley", "deann", "meeting", "sync",
			"alignment", "communication", "stakeholder",
		},
		TaskOperational: []string{
			"spif", "compensation", "review", "approve", "sign off",
			"validation", "technical", "analysis", "investigation",
		},
		TaskUrgent:   []string{"urgent", "asap", "critical", "blocked", "waiting"},
		TaskThisWeek: []string{"this week", "monday", "today"},
		TaskDecision: []string{"decision", "approval", "sign off", "review"},
		TaskTeam:     []string{"team", "se", "leadership", "regional"},

		StakeholderNames: []string{"andre", "riley", "olivia", "deann"},
	}
}

// Merge returns a copy of k with the non-empty lists of other appended.
// Used to fold user-configured additions into the defaults.
func (k Keywords) Merge(other Keywords) Keywords {
	k.Urgent = append(k.Urgent, other.Urgent...)
	k.HighImpact = append(k.HighImpact, other.HighImpact...)
	k.Meeting = append(k.Meeting, other.Meeting...)
	k.Decision = append(k.Decision, other.Decision...)
	k.Strategic = append(k.Strategic, other.Strategic...)
	k.Revenue = append(k.Revenue, other.Revenue...)
	k.People = append(k.People, other.People...)
	k.ExecTitles = append(k.ExecTitles, other.ExecTitles...)
	k.TaskStrategic = append(k.TaskStrategic, other.TaskStrategic...)
	k.TaskStakeholder = append(k.TaskStakeholder, other.TaskStakeholder...)
	k.TaskOperational = append(k.TaskOperational, other.TaskOperational...)
	k.TaskUrgent = append(k.TaskUrgent, other.TaskUrgent...)
	k.TaskThisWeek = append(k.TaskThisWeek, other.TaskThisWeek...)
	k.TaskDecision = append(k.TaskDecision, other.TaskDecision...)
	k.TaskTeam = append(k.TaskTeam, other.TaskTeam...)
	k.StakeholderNames = append(k.StakeholderNames, other.StakeholderNames...)
	return k
}
