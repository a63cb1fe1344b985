package project_test

import (
	"testing"

	"github.com/seojinp/projectboard/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestTotalEffort_AllUnsetIsNil(t *testing.T) {
	require.Nil(t, project.TotalEffort(nil, nil, nil))
}

func TestTotalEffort_ZeroIsPresentButNotPositive(t *testing.T) {
	// An explicit zero counts as estimated, so the all-unset rule doesn't
	// fire, but the sum is not positive and the total stays nil.
	require.Nil(t, project.TotalEffort(fp(0), nil, nil))
	require.Nil(t, project.TotalEffort(fp(0), fp(0), fp(0)))
}

func TestTotalEffort_SingleValue(t *testing.T) {
	got := project.TotalEffort(nil, nil, fp(5))
	require.NotNil(t, got)
	require.Equal(t, 5.0, *got)
}

func TestTotalEffort_Rounding(t *testing.T) {
	got := project.TotalEffort(fp(2.345), fp(1), nil)
	require.NotNil(t, got)
	require.Equal(t, 3.35, *got)
}

func TestTotalEffort_NegativeSumIsNil(t *testing.T) {
	require.Nil(t, project.TotalEffort(fp(2), fp(-3), nil))
}

func TestDraftTotalEffort_MatchesCanonical(t *testing.T) {
	// The string path and the value path must agree for every combination
	// of {absent, "", "0", positive}.
	cases := []struct {
		name             string
		planning, design string
		publishing       string
		want             *float64
	}{
		{"all empty", "", "", "", nil},
		{"explicit zeros", "0", "", "", nil},
		{"one positive", "", "", "5", fp(5)},
		{"rounding", "2.345", "1", "", fp(3.35)},
		{"zero plus positive", "0", "1.5", "", fp(1.5)},
		{"unparsable treated unset", "abc", "", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := project.Draft{
				Planning:   project.AssignmentDraft{Effort: tc.planning},
				Design:     project.AssignmentDraft{Effort: tc.design},
				Publishing: project.AssignmentDraft{Effort: tc.publishing},
			}
			got := d.TotalEffort()
			if tc.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, *tc.want, *got)
		})
	}
}

func TestTotalEffort_DevelopmentExcluded(t *testing.T) {
	d := project.Draft{
		Title:       "p",
		Status:      project.StatusWaiting,
		Planning:    project.AssignmentDraft{Effort: "1"},
		Development: project.AssignmentDraft{Effort: "40"},
	}
	got := d.TotalEffort()
	require.NotNil(t, got)
	require.Equal(t, 1.0, *got)

	applied, err := d.Apply(&project.Project{ID: "p1", OwnerID: "u1"})
	require.NoError(t, err)
	require.NotNil(t, applied.TotalEffort)
	require.Equal(t, 1.0, *applied.TotalEffort)
	require.NotNil(t, applied.Development.Effort)
	require.Equal(t, 40.0, *applied.Development.Effort)
}
