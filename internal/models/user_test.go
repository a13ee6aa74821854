package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUserPatch_Apply(t *testing.T) {
	today := DateOf(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	base := User{
		ID:             7,
		Name:           "Ravi",
		Email:          "ravi@example.com",
		Type:           RoleWorker,
		Profession:     "Electrician",
		Rating:         ptr(4.5),
		RegisteredDate: today,
		LastActive:     today,
	}

	tests := []struct {
		name  string
		patch UserPatch
		check func(t *testing.T, got User)
	}{
		{
			name:  "location only keeps profession",
			patch: UserPatch{Location: ptr("X")},
			check: func(t *testing.T, got User) {
				assert.Equal(t, "X", got.Location)
				assert.Equal(t, "Electrician", got.Profession)
				assert.Equal(t, "Ravi", got.Name)
			},
		},
		{
			name:  "empty patch is identity",
			patch: UserPatch{},
			check: func(t *testing.T, got User) {
				assert.Equal(t, base, got)
			},
		},
		{
			name:  "explicit empty string clears field",
			patch: UserPatch{Profession: ptr("")},
			check: func(t *testing.T, got User) {
				assert.Empty(t, got.Profession)
			},
		},
		{
			name:  "switch to employer drops profession",
			patch: UserPatch{Type: ptr(RoleEmployer), JobsPosted: ptr(1)},
			check: func(t *testing.T, got User) {
				assert.Equal(t, RoleEmployer, got.Type)
				assert.Empty(t, got.Profession)
				assert.Equal(t, 1, *got.JobsPosted)
				assert.Equal(t, "Electrician", base.Profession)
			},
		},
		{
			name:  "same role keeps profession",
			patch: UserPatch{Type: ptr(RoleWorker)},
			check: func(t *testing.T, got User) {
				assert.Equal(t, "Electrician", got.Profession)
			},
		},
		{
			name:  "rating replaced without aliasing",
			patch: UserPatch{Rating: ptr(3.0)},
			check: func(t *testing.T, got User) {
				assert.Equal(t, 3.0, *got.Rating)
				assert.Equal(t, 4.5, *base.Rating)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Apply(base)
			assert.Equal(t, 7, got.ID)
			assert.True(t, got.RegisteredDate.Equal(today))
			tt.check(t, got)
		})
	}
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{"minimal", User{Name: "a", Email: "a@x.com"}, false},
		{"worker with profession", User{Type: RoleWorker, Profession: "Mason"}, false},
		{"employer with jobs", User{Type: RoleEmployer, JobsPosted: ptr(0)}, false},
		{"unknown role", User{Type: "admin"}, true},
		{"unknown status", User{Status: "banned"}, true},
		{"rating above five", User{Rating: ptr(5.5)}, true},
		{"negative jobs", User{Type: RoleEmployer, JobsPosted: ptr(-1)}, true},
		{"profession without role", User{Profession: "Mason"}, true},
		{"profession on employer", User{Type: RoleEmployer, Profession: "Mason"}, true},
		{"jobs on worker", User{Type: RoleWorker, JobsPosted: ptr(2)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUser)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserPatch_Validate(t *testing.T) {
	legacy := User{ID: 1, Name: "Old", Profession: "Mason"}

	tests := []struct {
		name    string
		base    User
		patch   UserPatch
		wantErr bool
	}{
		{"untouched role fields are not checked", legacy, UserPatch{Location: ptr("X")}, false},
		{"status on record without type", legacy, UserPatch{Status: ptr(StatusSuspended)}, false},
		{"role switch clears other role", User{Type: RoleWorker, Profession: "Mason"}, UserPatch{Type: ptr(RoleEmployer)}, false},
		{"profession set on employer", User{Type: RoleEmployer}, UserPatch{Profession: ptr("Mason")}, true},
		{"profession set with switch to employer", User{Type: RoleWorker}, UserPatch{Type: ptr(RoleEmployer), Profession: ptr("Mason")}, true},
		{"jobs set on worker", User{Type: RoleWorker}, UserPatch{JobsPosted: ptr(2)}, true},
		{"clearing profession on record without type", legacy, UserPatch{Profession: ptr("")}, false},
		{"unknown role", legacy, UserPatch{Type: ptr(Role("admin"))}, true},
		{"unknown status", legacy, UserPatch{Status: ptr(Status("banned"))}, true},
		{"rating above five", legacy, UserPatch{Rating: ptr(6.0)}, true},
		{"invalid stored rating is not rechecked", User{Rating: ptr(9.0)}, UserPatch{Name: ptr("n")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate(tt.patch.Apply(tt.base))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUser)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserFilter_Match(t *testing.T) {
	u := User{Name: "Priya Sharma", Email: "priya@example.com", Type: RoleWorker}

	assert.True(t, UserFilter{}.Match(u))
	assert.True(t, UserFilter{Query: "SHARMA"}.Match(u))
	assert.True(t, UserFilter{Query: "example"}.Match(u))
	assert.False(t, UserFilter{Query: "ravi"}.Match(u))
	assert.True(t, UserFilter{Type: RoleWorker}.Match(u))
	assert.False(t, UserFilter{Type: RoleEmployer}.Match(u))
	assert.True(t, UserFilter{Status: StatusActive}.Match(u), "unset status counts as active")
	assert.False(t, UserFilter{Status: StatusSuspended}.Match(u))
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "newperson", NameFromEmail("newperson@x.com"))
	assert.Equal(t, "plain", NameFromEmail("plain"))
	assert.Equal(t, "", NameFromEmail("@x.com"))
}

func TestUser_JSONShape(t *testing.T) {
	day := DateOf(time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC))
	u := User{ID: 1, Name: "Demo User", Email: "user@example.com", RegisteredDate: day, LastActive: day}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Demo User","email":"user@example.com","registeredDate":"2024-01-02","lastActive":"2024-01-02"}`, string(b))

	var back User
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.LastActive.Equal(day))
}
