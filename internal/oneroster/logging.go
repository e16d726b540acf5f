package oneroster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/thinkle/sbgsync/internal/store"
)

// LoggingAPI is a decorator that records every SIS call as a durable
// audit event. Calls within one command invocation share a run id so
// a batch can be reconstructed afterwards.
type LoggingAPI struct {
	inner     API
	eventRepo store.EventRepo
	runID     string
}

// WithLogging wraps an API with audit logging.
func WithLogging(api API, repo store.EventRepo) *LoggingAPI {
	return &LoggingAPI{
		inner:     api,
		eventRepo: repo,
		runID:     uuid.NewString(),
	}
}

// RunID identifies this invocation's calls in the audit log.
func (l *LoggingAPI) RunID() string {
	return l.runID
}

// log records one call. A logging failure never fails the call itself.
func (l *LoggingAPI) log(ctx context.Context, method, endpoint string, start time.Time, err error) {
	data := store.APICallData{
		RunID:     l.runID,
		Method:    method,
		Endpoint:  endpoint,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			data.Status = apiErr.Status
		}
	}
	if logErr := l.eventRepo.AppendAPICall(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log SIS call: %v\n", logErr)
	}
}

func (l *LoggingAPI) TeacherByEmail(ctx context.Context, email string) (*User, error) {
	start := time.Now()
	u, err := l.inner.TeacherByEmail(ctx, email)
	l.log(ctx, "GET", "/teachers?filter=email", start, err)
	return u, err
}

func (l *LoggingAPI) ClassesForTeacher(ctx context.Context, teacherID string) ([]Class, error) {
	start := time.Now()
	cs, err := l.inner.ClassesForTeacher(ctx, teacherID)
	l.log(ctx, "GET", "/teachers/"+teacherID+"/classes", start, err)
	return cs, err
}

func (l *LoggingAPI) StudentsForClass(ctx context.Context, classID string) ([]User, error) {
	start := time.Now()
	us, err := l.inner.StudentsForClass(ctx, classID)
	l.log(ctx, "GET", "/classes/"+classID+"/students", start, err)
	return us, err
}

func (l *LoggingAPI) LineItemsForClass(ctx context.Context, classID string) ([]LineItem, error) {
	start := time.Now()
	lis, err := l.inner.LineItemsForClass(ctx, classID)
	l.log(ctx, "GET", "/classes/"+classID+"/lineItems", start, err)
	return lis, err
}

func (l *LoggingAPI) LineItem(ctx context.Context, id string) (*LineItem, error) {
	start := time.Now()
	li, err := l.inner.LineItem(ctx, id)
	l.log(ctx, "GET", "/lineItems/"+id, start, err)
	return li, err
}

func (l *LoggingAPI) Categories(ctx context.Context, filter string) ([]Category, error) {
	start := time.Now()
	cs, err := l.inner.Categories(ctx, filter)
	l.log(ctx, "GET", "/categories", start, err)
	return cs, err
}

func (l *LoggingAPI) GradingPeriods(ctx context.Context) ([]GradingPeriod, error) {
	start := time.Now()
	gp, err := l.inner.GradingPeriods(ctx)
	l.log(ctx, "GET", "/gradingPeriods", start, err)
	return gp, err
}

func (l *LoggingAPI) PutLineItem(ctx context.Context, li LineItem) error {
	start := time.Now()
	err := l.inner.PutLineItem(ctx, li)
	l.log(ctx, "PUT", "/lineItems/"+li.SourcedID, start, err)
	return err
}

func (l *LoggingAPI) PutResult(ctx context.Context, r Result) error {
	start := time.Now()
	err := l.inner.PutResult(ctx, r)
	l.log(ctx, "PUT", "/results/"+r.SourcedID, start, err)
	return err
}
