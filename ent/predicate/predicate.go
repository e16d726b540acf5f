// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APILogEvent is the predicate function for apilogevent builders.
type APILogEvent func(*sql.Selector)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// ClassConfig is the predicate function for classconfig builders.
type ClassConfig func(*sql.Selector)

// GradeRow is the predicate function for graderow builders.
type GradeRow func(*sql.Selector)

// Level is the predicate function for level builders.
type Level func(*sql.Selector)

// RosterStudent is the predicate function for rosterstudent builders.
type RosterStudent func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// Student is the predicate function for student builders.
type Student func(*sql.Selector)

// Symbol is the predicate function for symbol builders.
type Symbol func(*sql.Selector)

// SyncedGrade is the predicate function for syncedgrade builders.
type SyncedGrade func(*sql.Selector)
