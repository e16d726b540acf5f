// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/thinkle/sbgsync/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/apilogevent"
	"github.com/thinkle/sbgsync/ent/assignment"
	"github.com/thinkle/sbgsync/ent/classconfig"
	"github.com/thinkle/sbgsync/ent/graderow"
	"github.com/thinkle/sbgsync/ent/level"
	"github.com/thinkle/sbgsync/ent/rosterstudent"
	"github.com/thinkle/sbgsync/ent/setting"
	"github.com/thinkle/sbgsync/ent/skill"
	"github.com/thinkle/sbgsync/ent/student"
	"github.com/thinkle/sbgsync/ent/symbol"
	"github.com/thinkle/sbgsync/ent/syncedgrade"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// APILogEvent is the client for interacting with the APILogEvent builders.
	APILogEvent *APILogEventClient
	// Assignment is the client for interacting with the Assignment builders.
	Assignment *AssignmentClient
	// ClassConfig is the client for interacting with the ClassConfig builders.
	ClassConfig *ClassConfigClient
	// GradeRow is the client for interacting with the GradeRow builders.
	GradeRow *GradeRowClient
	// Level is the client for interacting with the Level builders.
	Level *LevelClient
	// RosterStudent is the client for interacting with the RosterStudent builders.
	RosterStudent *RosterStudentClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// Skill is the client for interacting with the Skill builders.
	Skill *SkillClient
	// Student is the client for interacting with the Student builders.
	Student *StudentClient
	// Symbol is the client for interacting with the Symbol builders.
	Symbol *SymbolClient
	// SyncedGrade is the client for interacting with the SyncedGrade builders.
	SyncedGrade *SyncedGradeClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.APILogEvent = NewAPILogEventClient(c.config)
	c.Assignment = NewAssignmentClient(c.config)
	c.ClassConfig = NewClassConfigClient(c.config)
	c.GradeRow = NewGradeRowClient(c.config)
	c.Level = NewLevelClient(c.config)
	c.RosterStudent = NewRosterStudentClient(c.config)
	c.Setting = NewSettingClient(c.config)
	c.Skill = NewSkillClient(c.config)
	c.Student = NewStudentClient(c.config)
	c.Symbol = NewSymbolClient(c.config)
	c.SyncedGrade = NewSyncedGradeClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		APILogEvent:   NewAPILogEventClient(cfg),
		Assignment:    NewAssignmentClient(cfg),
		ClassConfig:   NewClassConfigClient(cfg),
		GradeRow:      NewGradeRowClient(cfg),
		Level:         NewLevelClient(cfg),
		RosterStudent: NewRosterStudentClient(cfg),
		Setting:       NewSettingClient(cfg),
		Skill:         NewSkillClient(cfg),
		Student:       NewStudentClient(cfg),
		Symbol:        NewSymbolClient(cfg),
		SyncedGrade:   NewSyncedGradeClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		APILogEvent:   NewAPILogEventClient(cfg),
		Assignment:    NewAssignmentClient(cfg),
		ClassConfig:   NewClassConfigClient(cfg),
		GradeRow:      NewGradeRowClient(cfg),
		Level:         NewLevelClient(cfg),
		RosterStudent: NewRosterStudentClient(cfg),
		Setting:       NewSettingClient(cfg),
		Skill:         NewSkillClient(cfg),
		Student:       NewStudentClient(cfg),
		Symbol:        NewSymbolClient(cfg),
		SyncedGrade:   NewSyncedGradeClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		APILogEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.APILogEvent, c.Assignment, c.ClassConfig, c.GradeRow, c.Level,
		c.RosterStudent, c.Setting, c.Skill, c.Student, c.Symbol, c.SyncedGrade,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.APILogEvent, c.Assignment, c.ClassConfig, c.GradeRow, c.Level,
		c.RosterStudent, c.Setting, c.Skill, c.Student, c.Symbol, c.SyncedGrade,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *APILogEventMutation:
		return c.APILogEvent.mutate(ctx, m)
	case *AssignmentMutation:
		return c.Assignment.mutate(ctx, m)
	case *ClassConfigMutation:
		return c.ClassConfig.mutate(ctx, m)
	case *GradeRowMutation:
		return c.GradeRow.mutate(ctx, m)
	case *LevelMutation:
		return c.Level.mutate(ctx, m)
	case *RosterStudentMutation:
		return c.RosterStudent.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *SkillMutation:
		return c.Skill.mutate(ctx, m)
	case *StudentMutation:
		return c.Student.mutate(ctx, m)
	case *SymbolMutation:
		return c.Symbol.mutate(ctx, m)
	case *SyncedGradeMutation:
		return c.SyncedGrade.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// APILogEventClient is a client for the APILogEvent schema.
type APILogEventClient struct {
	config
}

// NewAPILogEventClient returns a client for the APILogEvent from the given config.
func NewAPILogEventClient(c config) *APILogEventClient {
	return &APILogEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apilogevent.Hooks(f(g(h())))`.
func (c *APILogEventClient) Use(hooks ...Hook) {
	c.hooks.APILogEvent = append(c.hooks.APILogEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apilogevent.Intercept(f(g(h())))`.
func (c *APILogEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.APILogEvent = append(c.inters.APILogEvent, interceptors...)
}

// Create returns a builder for creating a APILogEvent entity.
func (c *APILogEventClient) Create() *APILogEventCreate {
	mutation := newAPILogEventMutation(c.config, OpCreate)
	return &APILogEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APILogEvent entities.
func (c *APILogEventClient) CreateBulk(builders ...*APILogEventCreate) *APILogEventCreateBulk {
	return &APILogEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APILogEventClient) MapCreateBulk(slice any, setFunc func(*APILogEventCreate, int)) *APILogEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APILogEventCreateBulk{err: fmt.Errorf("calling to APILogEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APILogEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APILogEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APILogEvent.
func (c *APILogEventClient) Update() *APILogEventUpdate {
	mutation := newAPILogEventMutation(c.config, OpUpdate)
	return &APILogEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APILogEventClient) UpdateOne(_m *APILogEvent) *APILogEventUpdateOne {
	mutation := newAPILogEventMutation(c.config, OpUpdateOne, withAPILogEvent(_m))
	return &APILogEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APILogEventClient) UpdateOneID(id int) *APILogEventUpdateOne {
	mutation := newAPILogEventMutation(c.config, OpUpdateOne, withAPILogEventID(id))
	return &APILogEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APILogEvent.
func (c *APILogEventClient) Delete() *APILogEventDelete {
	mutation := newAPILogEventMutation(c.config, OpDelete)
	return &APILogEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APILogEventClient) DeleteOne(_m *APILogEvent) *APILogEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APILogEventClient) DeleteOneID(id int) *APILogEventDeleteOne {
	builder := c.Delete().Where(apilogevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APILogEventDeleteOne{builder}
}

// Query returns a query builder for APILogEvent.
func (c *APILogEventClient) Query() *APILogEventQuery {
	return &APILogEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPILogEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a APILogEvent entity by its id.
func (c *APILogEventClient) Get(ctx context.Context, id int) (*APILogEvent, error) {
	return c.Query().Where(apilogevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APILogEventClient) GetX(ctx context.Context, id int) *APILogEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *APILogEventClient) Hooks() []Hook {
	return c.hooks.APILogEvent
}

// Interceptors returns the client interceptors.
func (c *APILogEventClient) Interceptors() []Interceptor {
	return c.inters.APILogEvent
}

func (c *APILogEventClient) mutate(ctx context.Context, m *APILogEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APILogEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APILogEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APILogEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APILogEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APILogEvent mutation op: %q", m.Op())
	}
}

// AssignmentClient is a client for the Assignment schema.
type AssignmentClient struct {
	config
}

// NewAssignmentClient returns a client for the Assignment from the given config.
func NewAssignmentClient(c config) *AssignmentClient {
	return &AssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assignment.Hooks(f(g(h())))`.
func (c *AssignmentClient) Use(hooks ...Hook) {
	c.hooks.Assignment = append(c.hooks.Assignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assignment.Intercept(f(g(h())))`.
func (c *AssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Assignment = append(c.inters.Assignment, interceptors...)
}

// Create returns a builder for creating a Assignment entity.
func (c *AssignmentClient) Create() *AssignmentCreate {
	mutation := newAssignmentMutation(c.config, OpCreate)
	return &AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Assignment entities.
func (c *AssignmentClient) CreateBulk(builders ...*AssignmentCreate) *AssignmentCreateBulk {
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssignmentClient) MapCreateBulk(slice any, setFunc func(*AssignmentCreate, int)) *AssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssignmentCreateBulk{err: fmt.Errorf("calling to AssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Assignment.
func (c *AssignmentClient) Update() *AssignmentUpdate {
	mutation := newAssignmentMutation(c.config, OpUpdate)
	return &AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssignmentClient) UpdateOne(_m *Assignment) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignment(_m))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssignmentClient) UpdateOneID(id int) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignmentID(id))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Assignment.
func (c *AssignmentClient) Delete() *AssignmentDelete {
	mutation := newAssignmentMutation(c.config, OpDelete)
	return &AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssignmentClient) DeleteOne(_m *Assignment) *AssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssignmentClient) DeleteOneID(id int) *AssignmentDeleteOne {
	builder := c.Delete().Where(assignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssignmentDeleteOne{builder}
}

// Query returns a query builder for Assignment.
func (c *AssignmentClient) Query() *AssignmentQuery {
	return &AssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a Assignment entity by its id.
func (c *AssignmentClient) Get(ctx context.Context, id int) (*Assignment, error) {
	return c.Query().Where(assignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssignmentClient) GetX(ctx context.Context, id int) *Assignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssignmentClient) Hooks() []Hook {
	return c.hooks.Assignment
}

// Interceptors returns the client interceptors.
func (c *AssignmentClient) Interceptors() []Interceptor {
	return c.inters.Assignment
}

func (c *AssignmentClient) mutate(ctx context.Context, m *AssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Assignment mutation op: %q", m.Op())
	}
}

// ClassConfigClient is a client for the ClassConfig schema.
type ClassConfigClient struct {
	config
}

// NewClassConfigClient returns a client for the ClassConfig from the given config.
func NewClassConfigClient(c config) *ClassConfigClient {
	return &ClassConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `classconfig.Hooks(f(g(h())))`.
func (c *ClassConfigClient) Use(hooks ...Hook) {
	c.hooks.ClassConfig = append(c.hooks.ClassConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `classconfig.Intercept(f(g(h())))`.
func (c *ClassConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClassConfig = append(c.inters.ClassConfig, interceptors...)
}

// Create returns a builder for creating a ClassConfig entity.
func (c *ClassConfigClient) Create() *ClassConfigCreate {
	mutation := newClassConfigMutation(c.config, OpCreate)
	return &ClassConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClassConfig entities.
func (c *ClassConfigClient) CreateBulk(builders ...*ClassConfigCreate) *ClassConfigCreateBulk {
	return &ClassConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClassConfigClient) MapCreateBulk(slice any, setFunc func(*ClassConfigCreate, int)) *ClassConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClassConfigCreateBulk{err: fmt.Errorf("calling to ClassConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClassConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClassConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClassConfig.
func (c *ClassConfigClient) Update() *ClassConfigUpdate {
	mutation := newClassConfigMutation(c.config, OpUpdate)
	return &ClassConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClassConfigClient) UpdateOne(_m *ClassConfig) *ClassConfigUpdateOne {
	mutation := newClassConfigMutation(c.config, OpUpdateOne, withClassConfig(_m))
	return &ClassConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClassConfigClient) UpdateOneID(id int) *ClassConfigUpdateOne {
	mutation := newClassConfigMutation(c.config, OpUpdateOne, withClassConfigID(id))
	return &ClassConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClassConfig.
func (c *ClassConfigClient) Delete() *ClassConfigDelete {
	mutation := newClassConfigMutation(c.config, OpDelete)
	return &ClassConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClassConfigClient) DeleteOne(_m *ClassConfig) *ClassConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClassConfigClient) DeleteOneID(id int) *ClassConfigDeleteOne {
	builder := c.Delete().Where(classconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClassConfigDeleteOne{builder}
}

// Query returns a query builder for ClassConfig.
func (c *ClassConfigClient) Query() *ClassConfigQuery {
	return &ClassConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClassConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a ClassConfig entity by its id.
func (c *ClassConfigClient) Get(ctx context.Context, id int) (*ClassConfig, error) {
	return c.Query().Where(classconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClassConfigClient) GetX(ctx context.Context, id int) *ClassConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClassConfigClient) Hooks() []Hook {
	return c.hooks.ClassConfig
}

// Interceptors returns the client interceptors.
func (c *ClassConfigClient) Interceptors() []Interceptor {
	return c.inters.ClassConfig
}

func (c *ClassConfigClient) mutate(ctx context.Context, m *ClassConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClassConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClassConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClassConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClassConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClassConfig mutation op: %q", m.Op())
	}
}

// GradeRowClient is a client for the GradeRow schema.
type GradeRowClient struct {
	config
}

// NewGradeRowClient returns a client for the GradeRow from the given config.
func NewGradeRowClient(c config) *GradeRowClient {
	return &GradeRowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graderow.Hooks(f(g(h())))`.
func (c *GradeRowClient) Use(hooks ...Hook) {
	c.hooks.GradeRow = append(c.hooks.GradeRow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graderow.Intercept(f(g(h())))`.
func (c *GradeRowClient) Intercept(interceptors ...Interceptor) {
	c.inters.GradeRow = append(c.inters.GradeRow, interceptors...)
}

// Create returns a builder for creating a GradeRow entity.
func (c *GradeRowClient) Create() *GradeRowCreate {
	mutation := newGradeRowMutation(c.config, OpCreate)
	return &GradeRowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GradeRow entities.
func (c *GradeRowClient) CreateBulk(builders ...*GradeRowCreate) *GradeRowCreateBulk {
	return &GradeRowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GradeRowClient) MapCreateBulk(slice any, setFunc func(*GradeRowCreate, int)) *GradeRowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GradeRowCreateBulk{err: fmt.Errorf("calling to GradeRowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GradeRowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GradeRowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GradeRow.
func (c *GradeRowClient) Update() *GradeRowUpdate {
	mutation := newGradeRowMutation(c.config, OpUpdate)
	return &GradeRowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GradeRowClient) UpdateOne(_m *GradeRow) *GradeRowUpdateOne {
	mutation := newGradeRowMutation(c.config, OpUpdateOne, withGradeRow(_m))
	return &GradeRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GradeRowClient) UpdateOneID(id int) *GradeRowUpdateOne {
	mutation := newGradeRowMutation(c.config, OpUpdateOne, withGradeRowID(id))
	return &GradeRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GradeRow.
func (c *GradeRowClient) Delete() *GradeRowDelete {
	mutation := newGradeRowMutation(c.config, OpDelete)
	return &GradeRowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GradeRowClient) DeleteOne(_m *GradeRow) *GradeRowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GradeRowClient) DeleteOneID(id int) *GradeRowDeleteOne {
	builder := c.Delete().Where(graderow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GradeRowDeleteOne{builder}
}

// Query returns a query builder for GradeRow.
func (c *GradeRowClient) Query() *GradeRowQuery {
	return &GradeRowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGradeRow},
		inters: c.Interceptors(),
	}
}

// Get returns a GradeRow entity by its id.
func (c *GradeRowClient) Get(ctx context.Context, id int) (*GradeRow, error) {
	return c.Query().Where(graderow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GradeRowClient) GetX(ctx context.Context, id int) *GradeRow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GradeRowClient) Hooks() []Hook {
	return c.hooks.GradeRow
}

// Interceptors returns the client interceptors.
func (c *GradeRowClient) Interceptors() []Interceptor {
	return c.inters.GradeRow
}

func (c *GradeRowClient) mutate(ctx context.Context, m *GradeRowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GradeRowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GradeRowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GradeRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GradeRowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GradeRow mutation op: %q", m.Op())
	}
}

// LevelClient is a client for the Level schema.
type LevelClient struct {
	config
}

// NewLevelClient returns a client for the Level from the given config.
func NewLevelClient(c config) *LevelClient {
	return &LevelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `level.Hooks(f(g(h())))`.
func (c *LevelClient) Use(hooks ...Hook) {
	c.hooks.Level = append(c.hooks.Level, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `level.Intercept(f(g(h())))`.
func (c *LevelClient) Intercept(interceptors ...Interceptor) {
	c.inters.Level = append(c.inters.Level, interceptors...)
}

// Create returns a builder for creating a Level entity.
func (c *LevelClient) Create() *LevelCreate {
	mutation := newLevelMutation(c.config, OpCreate)
	return &LevelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Level entities.
func (c *LevelClient) CreateBulk(builders ...*LevelCreate) *LevelCreateBulk {
	return &LevelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LevelClient) MapCreateBulk(slice any, setFunc func(*LevelCreate, int)) *LevelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LevelCreateBulk{err: fmt.Errorf("calling to LevelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LevelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LevelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Level.
func (c *LevelClient) Update() *LevelUpdate {
	mutation := newLevelMutation(c.config, OpUpdate)
	return &LevelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LevelClient) UpdateOne(_m *Level) *LevelUpdateOne {
	mutation := newLevelMutation(c.config, OpUpdateOne, withLevel(_m))
	return &LevelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LevelClient) UpdateOneID(id int) *LevelUpdateOne {
	mutation := newLevelMutation(c.config, OpUpdateOne, withLevelID(id))
	return &LevelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Level.
func (c *LevelClient) Delete() *LevelDelete {
	mutation := newLevelMutation(c.config, OpDelete)
	return &LevelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LevelClient) DeleteOne(_m *Level) *LevelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LevelClient) DeleteOneID(id int) *LevelDeleteOne {
	builder := c.Delete().Where(level.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LevelDeleteOne{builder}
}

// Query returns a query builder for Level.
func (c *LevelClient) Query() *LevelQuery {
	return &LevelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLevel},
		inters: c.Interceptors(),
	}
}

// Get returns a Level entity by its id.
func (c *LevelClient) Get(ctx context.Context, id int) (*Level, error) {
	return c.Query().Where(level.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LevelClient) GetX(ctx context.Context, id int) *Level {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LevelClient) Hooks() []Hook {
	return c.hooks.Level
}

// Interceptors returns the client interceptors.
func (c *LevelClient) Interceptors() []Interceptor {
	return c.inters.Level
}

func (c *LevelClient) mutate(ctx context.Context, m *LevelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LevelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LevelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LevelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LevelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Level mutation op: %q", m.Op())
	}
}

// RosterStudentClient is a client for the RosterStudent schema.
type RosterStudentClient struct {
	config
}

// NewRosterStudentClient returns a client for the RosterStudent from the given config.
func NewRosterStudentClient(c config) *RosterStudentClient {
	return &RosterStudentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rosterstudent.Hooks(f(g(h())))`.
func (c *RosterStudentClient) Use(hooks ...Hook) {
	c.hooks.RosterStudent = append(c.hooks.RosterStudent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rosterstudent.Intercept(f(g(h())))`.
func (c *RosterStudentClient) Intercept(interceptors ...Interceptor) {
	c.inters.RosterStudent = append(c.inters.RosterStudent, interceptors...)
}

// Create returns a builder for creating a RosterStudent entity.
func (c *RosterStudentClient) Create() *RosterStudentCreate {
	mutation := newRosterStudentMutation(c.config, OpCreate)
	return &RosterStudentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RosterStudent entities.
func (c *RosterStudentClient) CreateBulk(builders ...*RosterStudentCreate) *RosterStudentCreateBulk {
	return &RosterStudentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RosterStudentClient) MapCreateBulk(slice any, setFunc func(*RosterStudentCreate, int)) *RosterStudentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RosterStudentCreateBulk{err: fmt.Errorf("calling to RosterStudentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RosterStudentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RosterStudentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RosterStudent.
func (c *RosterStudentClient) Update() *RosterStudentUpdate {
	mutation := newRosterStudentMutation(c.config, OpUpdate)
	return &RosterStudentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RosterStudentClient) UpdateOne(_m *RosterStudent) *RosterStudentUpdateOne {
	mutation := newRosterStudentMutation(c.config, OpUpdateOne, withRosterStudent(_m))
	return &RosterStudentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RosterStudentClient) UpdateOneID(id int) *RosterStudentUpdateOne {
	mutation := newRosterStudentMutation(c.config, OpUpdateOne, withRosterStudentID(id))
	return &RosterStudentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RosterStudent.
func (c *RosterStudentClient) Delete() *RosterStudentDelete {
	mutation := newRosterStudentMutation(c.config, OpDelete)
	return &RosterStudentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RosterStudentClient) DeleteOne(_m *RosterStudent) *RosterStudentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RosterStudentClient) DeleteOneID(id int) *RosterStudentDeleteOne {
	builder := c.Delete().Where(rosterstudent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RosterStudentDeleteOne{builder}
}

// Query returns a query builder for RosterStudent.
func (c *RosterStudentClient) Query() *RosterStudentQuery {
	return &RosterStudentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRosterStudent},
		inters: c.Interceptors(),
	}
}

// Get returns a RosterStudent entity by its id.
func (c *RosterStudentClient) Get(ctx context.Context, id int) (*RosterStudent, error) {
	return c.Query().Where(rosterstudent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RosterStudentClient) GetX(ctx context.Context, id int) *RosterStudent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RosterStudentClient) Hooks() []Hook {
	return c.hooks.RosterStudent
}

// Interceptors returns the client interceptors.
func (c *RosterStudentClient) Interceptors() []Interceptor {
	return c.inters.RosterStudent
}

func (c *RosterStudentClient) mutate(ctx context.Context, m *RosterStudentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RosterStudentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RosterStudentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RosterStudentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RosterStudentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RosterStudent mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(_m *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(_m))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(_m *Setting) *SettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// SkillClient is a client for the Skill schema.
type SkillClient struct {
	config
}

// NewSkillClient returns a client for the Skill from the given config.
func NewSkillClient(c config) *SkillClient {
	return &SkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skill.Hooks(f(g(h())))`.
func (c *SkillClient) Use(hooks ...Hook) {
	c.hooks.Skill = append(c.hooks.Skill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skill.Intercept(f(g(h())))`.
func (c *SkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.Skill = append(c.inters.Skill, interceptors...)
}

// Create returns a builder for creating a Skill entity.
func (c *SkillClient) Create() *SkillCreate {
	mutation := newSkillMutation(c.config, OpCreate)
	return &SkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Skill entities.
func (c *SkillClient) CreateBulk(builders ...*SkillCreate) *SkillCreateBulk {
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillClient) MapCreateBulk(slice any, setFunc func(*SkillCreate, int)) *SkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillCreateBulk{err: fmt.Errorf("calling to SkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Skill.
func (c *SkillClient) Update() *SkillUpdate {
	mutation := newSkillMutation(c.config, OpUpdate)
	return &SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillClient) UpdateOne(_m *Skill) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkill(_m))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillClient) UpdateOneID(id int) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkillID(id))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Skill.
func (c *SkillClient) Delete() *SkillDelete {
	mutation := newSkillMutation(c.config, OpDelete)
	return &SkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillClient) DeleteOne(_m *Skill) *SkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillClient) DeleteOneID(id int) *SkillDeleteOne {
	builder := c.Delete().Where(skill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillDeleteOne{builder}
}

// Query returns a query builder for Skill.
func (c *SkillClient) Query() *SkillQuery {
	return &SkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkill},
		inters: c.Interceptors(),
	}
}

// Get returns a Skill entity by its id.
func (c *SkillClient) Get(ctx context.Context, id int) (*Skill, error) {
	return c.Query().Where(skill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillClient) GetX(ctx context.Context, id int) *Skill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillClient) Hooks() []Hook {
	return c.hooks.Skill
}

// Interceptors returns the client interceptors.
func (c *SkillClient) Interceptors() []Interceptor {
	return c.inters.Skill
}

func (c *SkillClient) mutate(ctx context.Context, m *SkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Skill mutation op: %q", m.Op())
	}
}

// StudentClient is a client for the Student schema.
type StudentClient struct {
	config
}

// NewStudentClient returns a client for the Student from the given config.
func NewStudentClient(c config) *StudentClient {
	return &StudentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `student.Hooks(f(g(h())))`.
func (c *StudentClient) Use(hooks ...Hook) {
	c.hooks.Student = append(c.hooks.Student, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `student.Intercept(f(g(h())))`.
func (c *StudentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Student = append(c.inters.Student, interceptors...)
}

// Create returns a builder for creating a Student entity.
func (c *StudentClient) Create() *StudentCreate {
	mutation := newStudentMutation(c.config, OpCreate)
	return &StudentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Student entities.
func (c *StudentClient) CreateBulk(builders ...*StudentCreate) *StudentCreateBulk {
	return &StudentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentClient) MapCreateBulk(slice any, setFunc func(*StudentCreate, int)) *StudentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentCreateBulk{err: fmt.Errorf("calling to StudentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Student.
func (c *StudentClient) Update() *StudentUpdate {
	mutation := newStudentMutation(c.config, OpUpdate)
	return &StudentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentClient) UpdateOne(_m *Student) *StudentUpdateOne {
	mutation := newStudentMutation(c.config, OpUpdateOne, withStudent(_m))
	return &StudentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentClient) UpdateOneID(id int) *StudentUpdateOne {
	mutation := newStudentMutation(c.config, OpUpdateOne, withStudentID(id))
	return &StudentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Student.
func (c *StudentClient) Delete() *StudentDelete {
	mutation := newStudentMutation(c.config, OpDelete)
	return &StudentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentClient) DeleteOne(_m *Student) *StudentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentClient) DeleteOneID(id int) *StudentDeleteOne {
	builder := c.Delete().Where(student.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentDeleteOne{builder}
}

// Query returns a query builder for Student.
func (c *StudentClient) Query() *StudentQuery {
	return &StudentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudent},
		inters: c.Interceptors(),
	}
}

// Get returns a Student entity by its id.
func (c *StudentClient) Get(ctx context.Context, id int) (*Student, error) {
	return c.Query().Where(student.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentClient) GetX(ctx context.Context, id int) *Student {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentClient) Hooks() []Hook {
	return c.hooks.Student
}

// Interceptors returns the client interceptors.
func (c *StudentClient) Interceptors() []Interceptor {
	return c.inters.Student
}

func (c *StudentClient) mutate(ctx context.Context, m *StudentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Student mutation op: %q", m.Op())
	}
}

// SymbolClient is a client for the Symbol schema.
type SymbolClient struct {
	config
}

// NewSymbolClient returns a client for the Symbol from the given config.
func NewSymbolClient(c config) *SymbolClient {
	return &SymbolClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `symbol.Hooks(f(g(h())))`.
func (c *SymbolClient) Use(hooks ...Hook) {
	c.hooks.Symbol = append(c.hooks.Symbol, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `symbol.Intercept(f(g(h())))`.
func (c *SymbolClient) Intercept(interceptors ...Interceptor) {
	c.inters.Symbol = append(c.inters.Symbol, interceptors...)
}

// Create returns a builder for creating a Symbol entity.
func (c *SymbolClient) Create() *SymbolCreate {
	mutation := newSymbolMutation(c.config, OpCreate)
	return &SymbolCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Symbol entities.
func (c *SymbolClient) CreateBulk(builders ...*SymbolCreate) *SymbolCreateBulk {
	return &SymbolCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SymbolClient) MapCreateBulk(slice any, setFunc func(*SymbolCreate, int)) *SymbolCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SymbolCreateBulk{err: fmt.Errorf("calling to SymbolClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SymbolCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SymbolCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Symbol.
func (c *SymbolClient) Update() *SymbolUpdate {
	mutation := newSymbolMutation(c.config, OpUpdate)
	return &SymbolUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SymbolClient) UpdateOne(_m *Symbol) *SymbolUpdateOne {
	mutation := newSymbolMutation(c.config, OpUpdateOne, withSymbol(_m))
	return &SymbolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SymbolClient) UpdateOneID(id int) *SymbolUpdateOne {
	mutation := newSymbolMutation(c.config, OpUpdateOne, withSymbolID(id))
	return &SymbolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Symbol.
func (c *SymbolClient) Delete() *SymbolDelete {
	mutation := newSymbolMutation(c.config, OpDelete)
	return &SymbolDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SymbolClient) DeleteOne(_m *Symbol) *SymbolDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SymbolClient) DeleteOneID(id int) *SymbolDeleteOne {
	builder := c.Delete().Where(symbol.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SymbolDeleteOne{builder}
}

// Query returns a query builder for Symbol.
func (c *SymbolClient) Query() *SymbolQuery {
	return &SymbolQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSymbol},
		inters: c.Interceptors(),
	}
}

// Get returns a Symbol entity by its id.
func (c *SymbolClient) Get(ctx context.Context, id int) (*Symbol, error) {
	return c.Query().Where(symbol.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SymbolClient) GetX(ctx context.Context, id int) *Symbol {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SymbolClient) Hooks() []Hook {
	return c.hooks.Symbol
}

// Interceptors returns the client interceptors.
func (c *SymbolClient) Interceptors() []Interceptor {
	return c.inters.Symbol
}

func (c *SymbolClient) mutate(ctx context.Context, m *SymbolMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SymbolCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SymbolUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SymbolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SymbolDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Symbol mutation op: %q", m.Op())
	}
}

// SyncedGradeClient is a client for the SyncedGrade schema.
type SyncedGradeClient struct {
	config
}

// NewSyncedGradeClient returns a client for the SyncedGrade from the given config.
func NewSyncedGradeClient(c config) *SyncedGradeClient {
	return &SyncedGradeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncedgrade.Hooks(f(g(h())))`.
func (c *SyncedGradeClient) Use(hooks ...Hook) {
	c.hooks.SyncedGrade = append(c.hooks.SyncedGrade, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncedgrade.Intercept(f(g(h())))`.
func (c *SyncedGradeClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncedGrade = append(c.inters.SyncedGrade, interceptors...)
}

// Create returns a builder for creating a SyncedGrade entity.
func (c *SyncedGradeClient) Create() *SyncedGradeCreate {
	mutation := newSyncedGradeMutation(c.config, OpCreate)
	return &SyncedGradeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncedGrade entities.
func (c *SyncedGradeClient) CreateBulk(builders ...*SyncedGradeCreate) *SyncedGradeCreateBulk {
	return &SyncedGradeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncedGradeClient) MapCreateBulk(slice any, setFunc func(*SyncedGradeCreate, int)) *SyncedGradeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncedGradeCreateBulk{err: fmt.Errorf("calling to SyncedGradeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncedGradeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncedGradeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncedGrade.
func (c *SyncedGradeClient) Update() *SyncedGradeUpdate {
	mutation := newSyncedGradeMutation(c.config, OpUpdate)
	return &SyncedGradeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncedGradeClient) UpdateOne(_m *SyncedGrade) *SyncedGradeUpdateOne {
	mutation := newSyncedGradeMutation(c.config, OpUpdateOne, withSyncedGrade(_m))
	return &SyncedGradeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncedGradeClient) UpdateOneID(id int) *SyncedGradeUpdateOne {
	mutation := newSyncedGradeMutation(c.config, OpUpdateOne, withSyncedGradeID(id))
	return &SyncedGradeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncedGrade.
func (c *SyncedGradeClient) Delete() *SyncedGradeDelete {
	mutation := newSyncedGradeMutation(c.config, OpDelete)
	return &SyncedGradeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncedGradeClient) DeleteOne(_m *SyncedGrade) *SyncedGradeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncedGradeClient) DeleteOneID(id int) *SyncedGradeDeleteOne {
	builder := c.Delete().Where(syncedgrade.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncedGradeDeleteOne{builder}
}

// Query returns a query builder for SyncedGrade.
func (c *SyncedGradeClient) Query() *SyncedGradeQuery {
	return &SyncedGradeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncedGrade},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncedGrade entity by its id.
func (c *SyncedGradeClient) Get(ctx context.Context, id int) (*SyncedGrade, error) {
	return c.Query().Where(syncedgrade.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncedGradeClient) GetX(ctx context.Context, id int) *SyncedGrade {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncedGradeClient) Hooks() []Hook {
	return c.hooks.SyncedGrade
}

// Interceptors returns the client interceptors.
func (c *SyncedGradeClient) Interceptors() []Interceptor {
	return c.inters.SyncedGrade
}

func (c *SyncedGradeClient) mutate(ctx context.Context, m *SyncedGradeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncedGradeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncedGradeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncedGradeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncedGradeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncedGrade mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		APILogEvent, Assignment, ClassConfig, GradeRow, Level, RosterStudent, Setting,
		Skill, Student, Symbol, SyncedGrade []ent.Hook
	}
	inters struct {
		APILogEvent, Assignment, ClassConfig, GradeRow, Level, RosterStudent, Setting,
		Skill, Student, Symbol, SyncedGrade []ent.Interceptor
	}
)
