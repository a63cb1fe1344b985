package project

import "time"

// AssignmentDraft is the in-edit form of a discipline assignment. Effort is
// kept as the raw text the user typed and only coerced on save.
type AssignmentDraft struct {
	Name   string
	Effort string
}

// Draft is the working copy of a project while edit mode is active. It is a
// value type: every setter returns a new Draft, so a held Draft is never
// mutated in place and the canonical record stays untouched until save.
type Draft struct {
	Title  string
	Status Status

	Classification string
	Channel        string
	Service        string
	Category       string
	DeploymentType string

	Description string

	RequestDate    *time.Time
	StartDate      *time.Time
	EndDate        *time.Time
	CompletionDate *time.Time

	Progress int

	Planning    AssignmentDraft
	Design      AssignmentDraft
	Publishing  AssignmentDraft
	Development AssignmentDraft

	PlanLink   string
	DesignLink string
}

// Discipline selects one of the four work categories on a draft.
type Discipline string

const (
	DisciplinePlanning    Discipline = "planning"
	DisciplineDesign      Discipline = "design"
	DisciplinePublishing  Discipline = "publishing"
	DisciplineDevelopment Discipline = "development"
)

// NewDraft initializes a draft as a structural copy of the canonical record.
// Optional strings flatten to "" and efforts to their text form.
func NewDraft(p *Project) Draft {
	return Draft{
		Title:          p.Title,
		Status:         p.Status,
		Classification: deref(p.Classification),
		Channel:        deref(p.Channel),
		Service:        deref(p.Service),
		Category:       deref(p.Category),
		DeploymentType: deref(p.DeploymentType),
		Description:    p.Description,
		RequestDate:    cloneTime(p.RequestDate),
		StartDate:      cloneTime(p.StartDate),
		EndDate:        cloneTime(p.EndDate),
		CompletionDate: cloneTime(p.CompletionDate),
		Progress:       ClampProgress(p.Progress),
		Planning:       newAssignmentDraft(p.Planning),
		Design:         newAssignmentDraft(p.Design),
		Publishing:     newAssignmentDraft(p.Publishing),
		Development:    newAssignmentDraft(p.Development),
		PlanLink:       deref(p.Links.PlanLink),
		DesignLink:     deref(p.Links.DesignLink),
	}
}

func newAssignmentDraft(a Assignment) AssignmentDraft {
	return AssignmentDraft{Name: a.Name, Effort: formatEffort(a.Effort)}
}

// WithEffort replaces one discipline's raw effort text, leaving the
// assignee name and every sibling field alone.
func (d Draft) WithEffort(disc Discipline, raw string) Draft {
	switch disc {
	case DisciplinePlanning:
		d.Planning.Effort = raw
	case DisciplineDesign:
		d.Design.Effort = raw
	case DisciplinePublishing:
		d.Publishing.Effort = raw
	case DisciplineDevelopment:
		d.Development.Effort = raw
	}
	return d
}

// WithAssignee replaces one discipline's assignee name.
func (d Draft) WithAssignee(disc Discipline, name string) Draft {
	switch disc {
	case DisciplinePlanning:
		d.Planning.Name = name
	case DisciplineDesign:
		d.Design.Name = name
	case DisciplinePublishing:
		d.Publishing.Name = name
	case DisciplineDevelopment:
		d.Development.Name = name
	}
	return d
}

// WithProgress clamps immediately; progress is the one numeric field that
// is not deferred to save time.
func (d Draft) WithProgress(p int) Draft {
	d.Progress = ClampProgress(p)
	return d
}

// TotalEffort computes the running aggregate from the draft's raw effort
// text. It agrees with the canonical computation for any saved record.
func (d Draft) TotalEffort() *float64 {
	return TotalEffort(
		parseEffort(d.Planning.Effort),
		parseEffort(d.Design.Effort),
		parseEffort(d.Publishing.Effort),
	)
}

// Apply coerces the draft onto a copy of the canonical record, producing
// the value to persist. Identity and store-assigned timestamps come from
// the canonical side; everything editable comes from the draft.
func (d Draft) Apply(canonical *Project) (*Project, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	p := canonical.Clone()
	p.Title = d.Title
	p.Status = d.Status
	p.Classification = optional(d.Classification)
	p.Channel = optional(d.Channel)
	p.Service = optional(d.Service)
	p.Category = optional(d.Category)
	p.DeploymentType = optional(d.DeploymentType)
	p.Description = d.Description
	p.RequestDate = cloneTime(d.RequestDate)
	p.StartDate = cloneTime(d.StartDate)
	p.EndDate = cloneTime(d.EndDate)
	p.CompletionDate = cloneTime(d.CompletionDate)
	p.Progress = ClampProgress(d.Progress)
	p.Planning = Assignment{Name: d.Planning.Name, Effort: parseEffort(d.Planning.Effort)}
	p.Design = Assignment{Name: d.Design.Name, Effort: parseEffort(d.Design.Effort)}
	p.Publishing = Assignment{Name: d.Publishing.Name, Effort: parseEffort(d.Publishing.Effort)}
	p.Development = Assignment{Name: d.Development.Name, Effort: parseEffort(d.Development.Effort)}
	p.TotalEffort = TotalEffort(p.Planning.Effort, p.Design.Effort, p.Publishing.Effort)
	p.Links = Links{PlanLink: optional(d.PlanLink), DesignLink: optional(d.DesignLink)}
	return p, nil
}

func (d Draft) validate() error {
	if d.Title == "" {
		return ErrInvalidInput
	}
	if !ValidStatus(d.Status) {
		return ErrInvalidStatus
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps an empty form value back to "unset".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
