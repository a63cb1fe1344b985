package project_test

import (
	"testing"
	"time"

	"github.com/seojinp/projectboard/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func sampleProject() *project.Project {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	class := "web"
	return &project.Project{
		ID:             "p1",
		OwnerID:        "u1",
		Title:          "Landing page refresh",
		Status:         project.StatusInProgress,
		Classification: &class,
		Description:    "Refresh of the main landing page",
		StartDate:      &start,
		Progress:       40,
		Planning:       project.Assignment{Name: "Kim", Effort: fp(3)},
		Design:         project.Assignment{Name: "Lee", Effort: fp(2.5)},
		Publishing:     project.Assignment{Name: "Park"},
		Development:    project.Assignment{Name: "Choi", Effort: fp(10)},
		TotalEffort:    fp(5.5),
	}
}

func TestNewDraft_CopiesCanonical(t *testing.T) {
	p := sampleProject()
	d := project.NewDraft(p)

	require.Equal(t, "Landing page refresh", d.Title)
	require.Equal(t, "web", d.Classification)
	require.Equal(t, "3", d.Planning.Effort)
	require.Equal(t, "2.5", d.Design.Effort)
	require.Equal(t, "", d.Publishing.Effort)
	require.Equal(t, 40, d.Progress)
}

func TestDraft_EditDoesNotTouchCanonical(t *testing.T) {
	p := sampleProject()
	d := project.NewDraft(p)

	d = d.WithEffort(project.DisciplinePlanning, "9")
	d = d.WithAssignee(project.DisciplineDesign, "Han")
	if d.StartDate != nil {
		*d.StartDate = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	require.Equal(t, 3.0, *p.Planning.Effort)
	require.Equal(t, "Lee", p.Design.Name)
	require.Equal(t, 2025, p.StartDate.Year())
}

func TestDraft_SettersReturnNewValue(t *testing.T) {
	d := project.Draft{Planning: project.AssignmentDraft{Effort: "1"}}
	d2 := d.WithEffort(project.DisciplinePlanning, "2")

	require.Equal(t, "1", d.Planning.Effort)
	require.Equal(t, "2", d2.Planning.Effort)
}

func TestDraft_WithProgressClampsImmediately(t *testing.T) {
	d := project.Draft{}
	require.Equal(t, 100, d.WithProgress(250).Progress)
	require.Equal(t, 0, d.WithProgress(-5).Progress)
	require.Equal(t, 73, d.WithProgress(73).Progress)
}

func TestDraft_ApplyCoercesAndRecomputes(t *testing.T) {
	p := sampleProject()
	d := project.NewDraft(p)
	d = d.WithEffort(project.DisciplinePlanning, "")
	d = d.WithEffort(project.DisciplineDesign, "0")
	d = d.WithEffort(project.DisciplinePublishing, "4.125")

	next, err := d.Apply(p)
	require.NoError(t, err)

	require.Nil(t, next.Planning.Effort)
	require.Equal(t, 0.0, *next.Design.Effort)
	require.Equal(t, 4.125, *next.Publishing.Effort)
	require.NotNil(t, next.TotalEffort)
	require.Equal(t, 4.13, *next.TotalEffort)

	// Identity survives the merge.
	require.Equal(t, "p1", next.ID)
	require.Equal(t, "u1", next.OwnerID)

	// The canonical input was not modified.
	require.Equal(t, 3.0, *p.Planning.Effort)
}

func TestDraft_ApplyNormalizesOptionalEnums(t *testing.T) {
	p := sampleProject()
	d := project.NewDraft(p)
	d.Classification = ""
	d.Channel = "tf"

	next, err := d.Apply(p)
	require.NoError(t, err)
	require.Nil(t, next.Classification)
	require.NotNil(t, next.Channel)
	require.Equal(t, "tf", *next.Channel)
}

func TestDraft_ApplyValidation(t *testing.T) {
	p := sampleProject()

	d := project.NewDraft(p)
	d.Title = ""
	_, err := d.Apply(p)
	require.ErrorIs(t, err, project.ErrInvalidInput)

	d = project.NewDraft(p)
	d.Status = "archived"
	_, err = d.Apply(p)
	require.ErrorIs(t, err, project.ErrInvalidStatus)
}
