package store

import (
	"context"
	"fmt"

	"github.com/thinkle/sbgsync/ent"
	"github.com/thinkle/sbgsync/ent/syncedgrade"
)

// ledgerRepo implements LedgerRepo using the ent client.
type ledgerRepo struct {
	client *ent.Client
}

func (r *ledgerRepo) Get(ctx context.Context, studentID, assignmentID string) (*SyncedGrade, error) {
	row, err := r.client.SyncedGrade.Query().
		Where(
			syncedgrade.StudentID(studentID),
			syncedgrade.AssignmentID(assignmentID),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query ledger entry: %w", err)
	}
	return &SyncedGrade{
		ID:           row.ID,
		StudentID:    row.StudentID,
		AssignmentID: row.AssignmentID,
		Score:        row.Score,
		Comment:      row.Comment,
		SyncedAt:     row.SyncedAt,
	}, nil
}

func (r *ledgerRepo) Put(ctx context.Context, g SyncedGrade) error {
	existing, err := r.client.SyncedGrade.Query().
		Where(
			syncedgrade.StudentID(g.StudentID),
			syncedgrade.AssignmentID(g.AssignmentID),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query ledger entry: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetScore(g.Score).
			SetComment(g.Comment).
			SetSyncedAt(g.SyncedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update ledger entry: %w", err)
		}
		return nil
	}

	_, err = r.client.SyncedGrade.Create().
		SetStudentID(g.StudentID).
		SetAssignmentID(g.AssignmentID).
		SetScore(g.Score).
		SetComment(g.Comment).
		SetSyncedAt(g.SyncedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

func (r *ledgerRepo) All(ctx context.Context) ([]SyncedGrade, error) {
	rows, err := r.client.SyncedGrade.Query().
		Order(ent.Asc(syncedgrade.FieldAssignmentID), ent.Asc(syncedgrade.FieldStudentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	out := make([]SyncedGrade, 0, len(rows))
	for _, row := range rows {
		out = append(out, SyncedGrade{
			ID:           row.ID,
			StudentID:    row.StudentID,
			AssignmentID: row.AssignmentID,
			Score:        row.Score,
			Comment:      row.Comment,
			SyncedAt:     row.SyncedAt,
		})
	}
	return out, nil
}
