package oneroster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a scripted SIS for gate tests, counting calls so
// memoization can be asserted.
type fakeAPI struct {
	teacher   *User
	classes   []Class
	lineItems map[string]*LineItem

	teacherCalls  int
	classCalls    int
	lineItemCalls int
}

func (f *fakeAPI) TeacherByEmail(ctx context.Context, email string) (*User, error) {
	f.teacherCalls++
	return f.teacher, nil
}

func (f *fakeAPI) ClassesForTeacher(ctx context.Context, teacherID string) ([]Class, error) {
	f.classCalls++
	return f.classes, nil
}

func (f *fakeAPI) LineItem(ctx context.Context, id string) (*LineItem, error) {
	f.lineItemCalls++
	li, ok := f.lineItems[id]
	if !ok {
		return nil, &APIError{Method: "GET", Endpoint: "/lineItems/" + id, Status: 404, Body: "not found"}
	}
	return li, nil
}

func (f *fakeAPI) StudentsForClass(ctx context.Context, classID string) ([]User, error) {
	return nil, nil
}
func (f *fakeAPI) LineItemsForClass(ctx context.Context, classID string) ([]LineItem, error) {
	return nil, nil
}
func (f *fakeAPI) Categories(ctx context.Context, filter string) ([]Category, error) {
	return nil, nil
}
func (f *fakeAPI) GradingPeriods(ctx context.Context) ([]GradingPeriod, error) { return nil, nil }
func (f *fakeAPI) PutLineItem(ctx context.Context, li LineItem) error          { return nil }
func (f *fakeAPI) PutResult(ctx context.Context, r Result) error               { return nil }

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		teacher: &User{SourcedID: "t-1", Email: "t@school.org"},
		classes: []Class{
			{SourcedID: "class-1", Title: "Algebra 1"},
			{SourcedID: "class-2", Title: "Geometry"},
		},
		lineItems: map[string]*LineItem{
			"li-owned": {SourcedID: "li-owned", Class: Ref{SourcedID: "class-1"}},
			"li-other": {SourcedID: "li-other", Class: Ref{SourcedID: "class-9"}},
		},
	}
}

func TestGateClassAccess(t *testing.T) {
	api := newFakeAPI()
	gate := NewAccessGate(api, "t@school.org")
	ctx := context.Background()

	ok, err := gate.HasAccessToClass(ctx, "class-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.HasAccessToClass(ctx, "class-9")
	require.NoError(t, err)
	assert.False(t, ok)

	// Repeated checks never refetch identity or the class list.
	for i := 0; i < 5; i++ {
		_, err := gate.HasAccessToClass(ctx, "class-2")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, api.teacherCalls)
	assert.Equal(t, 1, api.classCalls)
}

func TestGateLineItemAccess(t *testing.T) {
	api := newFakeAPI()
	gate := NewAccessGate(api, "t@school.org")
	ctx := context.Background()

	ok, err := gate.HasAccessToLineItem(ctx, "li-owned")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.HasAccessToLineItem(ctx, "li-other")
	require.NoError(t, err)
	assert.False(t, ok)

	// The owning class is memoized per line item.
	for i := 0; i < 3; i++ {
		_, err := gate.HasAccessToLineItem(ctx, "li-owned")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, api.lineItemCalls)
}

func TestGateHint(t *testing.T) {
	api := newFakeAPI()
	gate := NewAccessGate(api, "t@school.org")
	ctx := context.Background()

	// A hinted line item resolves without a remote lookup.
	gate.HintLineItemClass("li-new", "class-1")
	ok, err := gate.HasAccessToLineItem(ctx, "li-new")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, api.lineItemCalls)
}

func TestGateRequire(t *testing.T) {
	api := newFakeAPI()
	gate := NewAccessGate(api, "t@school.org")
	ctx := context.Background()

	require.NoError(t, gate.RequireClass(ctx, "class-1"))

	err := gate.RequireClass(ctx, "class-9")
	require.Error(t, err)
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "class-9", authErr.ID)

	err = gate.RequireLineItem(ctx, "li-other")
	require.Error(t, err)
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "li-other", authErr.ID)
}
