package oneroster

import (
	"context"
	"fmt"
)

// AccessGate decides whether the acting teacher owns a course or line
// item before any mutating call goes out. The remote API does not
// enforce this boundary, so every grade post and line item write must
// pass through the gate.
//
// Lookups are memoized for the life of the gate. Create one per
// command invocation and discard it at the end; never share a gate
// across runs.
type AccessGate struct {
	api          API
	teacherEmail string

	teacher       *User
	courses       map[string]bool
	coursesLoaded bool
	lineItemClass map[string]string
}

// NewAccessGate creates a gate for the teacher identified by email.
func NewAccessGate(api API, teacherEmail string) *AccessGate {
	return &AccessGate{
		api:           api,
		teacherEmail:  teacherEmail,
		lineItemClass: make(map[string]string),
	}
}

// Teacher resolves and caches the acting teacher's SIS record.
func (g *AccessGate) Teacher(ctx context.Context) (*User, error) {
	if g.teacher != nil {
		return g.teacher, nil
	}
	t, err := g.api.TeacherByEmail(ctx, g.teacherEmail)
	if err != nil {
		return nil, fmt.Errorf("resolve teacher %q: %w", g.teacherEmail, err)
	}
	if t == nil {
		return nil, fmt.Errorf("no SIS teacher record for %q", g.teacherEmail)
	}
	g.teacher = t
	return t, nil
}

// ownedClasses loads the teacher's class set once per run.
func (g *AccessGate) ownedClasses(ctx context.Context) (map[string]bool, error) {
	if g.coursesLoaded {
		return g.courses, nil
	}
	t, err := g.Teacher(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := g.api.ClassesForTeacher(ctx, t.SourcedID)
	if err != nil {
		return nil, fmt.Errorf("list classes for teacher %q: %w", t.SourcedID, err)
	}
	g.courses = make(map[string]bool, len(classes))
	for _, c := range classes {
		g.courses[c.SourcedID] = true
	}
	g.coursesLoaded = true
	return g.courses, nil
}

// HasAccessToClass reports whether the teacher teaches the class.
func (g *AccessGate) HasAccessToClass(ctx context.Context, classID string) (bool, error) {
	owned, err := g.ownedClasses(ctx)
	if err != nil {
		return false, err
	}
	return owned[classID], nil
}

// HasAccessToLineItem resolves the line item's owning class (memoized
// per line item id) and delegates to HasAccessToClass.
func (g *AccessGate) HasAccessToLineItem(ctx context.Context, lineItemID string) (bool, error) {
	classID, ok := g.lineItemClass[lineItemID]
	if !ok {
		li, err := g.api.LineItem(ctx, lineItemID)
		if err != nil {
			return false, fmt.Errorf("resolve line item %q: %w", lineItemID, err)
		}
		classID = li.Class.SourcedID
		g.lineItemClass[lineItemID] = classID
	}
	return g.HasAccessToClass(ctx, classID)
}

// HintLineItemClass primes the line item to class memo without a
// remote call, for line items this process just created.
func (g *AccessGate) HintLineItemClass(lineItemID, classID string) {
	g.lineItemClass[lineItemID] = classID
}

// RequireClass returns an AuthorizationError unless the teacher owns
// the class.
func (g *AccessGate) RequireClass(ctx context.Context, classID string) error {
	ok, err := g.HasAccessToClass(ctx, classID)
	if err != nil {
		return err
	}
	if !ok {
		return &AuthorizationError{Resource: "class", ID: classID}
	}
	return nil
}

// RequireLineItem returns an AuthorizationError unless the teacher
// owns the line item's class.
func (g *AccessGate) RequireLineItem(ctx context.Context, lineItemID string) error {
	ok, err := g.HasAccessToLineItem(ctx, lineItemID)
	if err != nil {
		return err
	}
	if !ok {
		return &AuthorizationError{Resource: "line item", ID: lineItemID}
	}
	return nil
}
