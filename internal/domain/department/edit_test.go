package department

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simorgh/internal/core/apperror"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		depts     []Department
		wantKey   string
		wantValue any
	}{
		{
			name:  "valid with orphan",
			depts: []Department{dept("a", ""), dept("b", "nowhere")},
		},
		{
			name:      "duplicate id",
			depts:     []Department{dept("a", ""), dept("a", "")},
			wantKey:   "duplicate_ids",
			wantValue: []string{"a"},
		},
		{
			name:      "self parent",
			depts:     []Department{dept("a", "a")},
			wantKey:   "self_parent",
			wantValue: []string{"a"},
		},
		{
			name:      "cycle",
			depts:     []Department{dept("r", ""), dept("a", "b"), dept("b", "a")},
			wantKey:   "cycles",
			wantValue: [][]string{{"a", "b"}},
		},
		{
			name:      "blank id",
			depts:     []Department{dept("a", ""), dept(" ", "")},
			wantKey:   "blank_ids_at",
			wantValue: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.depts)
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.wantValue, appErr.Details[tt.wantKey])
		})
	}
}

func TestDelete_RejectsReferencedDepartment(t *testing.T) {
	chart := []Department{dept("a", ""), dept("b", "a"), dept("c", "a")}

	_, err := Delete(chart, "a")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDepartmentHasChildren, appErr.Code)
	assert.Equal(t, []string{"b", "c"}, appErr.Details["children"])
	assert.Len(t, chart, 3)
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	chart := []Department{dept("a", ""), dept("b", "a"), dept("c", "a")}

	out, err := Delete(chart, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, []string{out[0].ID, out[1].ID})
	assert.Len(t, chart, 3, "input must not be modified")
}

func TestDelete_ChecksCurrentState(t *testing.T) {
	chart := []Department{dept("a", ""), dept("b", "a")}

	_, err := Delete(chart, "a")
	require.Error(t, err)

	chart, err = Delete(chart, "b")
	require.NoError(t, err)
	chart, err = Delete(chart, "a")
	require.NoError(t, err)
	assert.Empty(t, chart)
}

func TestDelete_NotFound(t *testing.T) {
	_, err := Delete([]Department{dept("a", "")}, "zzz")
	assert.True(t, apperror.IsNotFound(err))
}

func TestAdd(t *testing.T) {
	chart := []Department{dept("a", "")}

	out, created, err := Add(chart, Draft{Name: "Finance", Manager: "Sara", ParentID: "a"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "dept-"))
	assert.Equal(t, "a", created.Parent())
	require.Len(t, out, 2)
	assert.Equal(t, created, out[1])
	assert.Len(t, chart, 1)

	_, second, err := Add(out, Draft{Name: "Legal", Manager: "Reza"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
	assert.Nil(t, second.ParentID)
}

func TestAdd_Validation(t *testing.T) {
	_, _, err := Add(nil, Draft{Name: "Finance"})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	_, _, err = Add(nil, Draft{Name: "Finance", Manager: "Sara", ParentID: "ghost"})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestUpdate(t *testing.T) {
	chart := []Department{dept("a", ""), dept("b", "a"), dept("c", "")}

	changed := dept("c", "b")
	changed.Name = "Renamed"
	out, err := Update(chart, changed)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", out[2].Name)
	assert.Equal(t, "b", out[2].Parent())
	assert.Equal(t, "", chart[2].Parent())
}

func TestUpdate_RejectsLoops(t *testing.T) {
	chart := []Department{dept("a", ""), dept("b", "a")}

	_, err := Update(chart, dept("a", "a"))
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	_, err = Update(chart, dept("a", "b"))
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, [][]string{{"a", "b"}}, appErr.Details["cycles"])

	_, err = Update(chart, dept("nope", ""))
	assert.True(t, apperror.IsNotFound(err))
}
