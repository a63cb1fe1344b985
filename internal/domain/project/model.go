package project

import "time"

// Status represents the lifecycle state of a project
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusWaiting, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Assignment is one discipline's assignee and effort estimate. A nil
// Effort means "not estimated", which is distinct from an explicit zero.
type Assignment struct {
	Name   string   `json:"name"`
	Effort *float64 `json:"effort"`
}

// Links holds optional reference URLs attached to a project.
type Links struct {
	PlanLink   *string `json:"plan_link,omitempty"`
	DesignLink *string `json:"design_link,omitempty"`
}

// Project is a tracked work item scoped under its owning account.
type Project struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
	Status  Status `json:"status"`

	Classification *string `json:"classification"`
	Channel        *string `json:"channel"`
	Service        *string `json:"service"`
	Category       *string `json:"category"`
	DeploymentType *string `json:"deployment_type"`

	Description string `json:"description"`

	RequestDate    *time.Time `json:"request_date"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	CompletionDate *time.Time `json:"completion_date"`

	Progress int `json:"progress"`

	Planning    Assignment `json:"planning"`
	Design      Assignment `json:"design"`
	Publishing  Assignment `json:"publishing"`
	Development Assignment `json:"development"`

	// TotalEffort is derived from the planning, design and publishing
	// estimates. Never stored authoritatively: recomputed on every load
	// and every save.
	TotalEffort *float64 `json:"total_effort"`

	Links Links `json:"links"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a structural deep copy. Mutating the copy never touches
// the receiver, including the nested assignments, dates and links.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	c.Classification = cloneString(p.Classification)
	c.Channel = cloneString(p.Channel)
	c.Service = cloneString(p.Service)
	c.Category = cloneString(p.Category)
	c.DeploymentType = cloneString(p.DeploymentType)
	c.RequestDate = cloneTime(p.RequestDate)
	c.StartDate = cloneTime(p.StartDate)
	c.EndDate = cloneTime(p.EndDate)
	c.CompletionDate = cloneTime(p.CompletionDate)
	c.Planning = p.Planning.clone()
	c.Design = p.Design.clone()
	c.Publishing = p.Publishing.clone()
	c.Development = p.Development.clone()
	c.TotalEffort = cloneFloat(p.TotalEffort)
	c.Links = Links{
		PlanLink:   cloneString(p.Links.PlanLink),
		DesignLink: cloneString(p.Links.DesignLink),
	}
	return &c
}

func (a Assignment) clone() Assignment {
	return Assignment{Name: a.Name, Effort: cloneFloat(a.Effort)}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// ClampProgress bounds a progress value to the 0-100 range.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
