// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/edcenter/mocktest/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/edcenter/mocktest/ent/examanswerevent"
	"github.com/edcenter/mocktest/ent/examattemptevent"
	"github.com/edcenter/mocktest/ent/llmrequestevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExamAnswerEvent is the client for interacting with the ExamAnswerEvent builders.
	ExamAnswerEvent *ExamAnswerEventClient
	// ExamAttemptEvent is the client for interacting with the ExamAttemptEvent builders.
	ExamAttemptEvent *ExamAttemptEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExamAnswerEvent = NewExamAnswerEventClient(c.config)
	c.ExamAttemptEvent = NewExamAttemptEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		ExamAnswerEvent:  NewExamAnswerEventClient(cfg),
		ExamAttemptEvent: NewExamAttemptEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		ExamAnswerEvent:  NewExamAnswerEventClient(cfg),
		ExamAttemptEvent: NewExamAttemptEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExamAnswerEvent.
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
	c.ExamAnswerEvent.Use(hooks...)
	c.ExamAttemptEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExamAnswerEvent.Intercept(interceptors...)
	c.ExamAttemptEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExamAnswerEventMutation:
		return c.ExamAnswerEvent.mutate(ctx, m)
	case *ExamAttemptEventMutation:
		return c.ExamAttemptEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExamAnswerEventClient is a client for the ExamAnswerEvent schema.
type ExamAnswerEventClient struct {
	config
}

// NewExamAnswerEventClient returns a client for the ExamAnswerEvent from the given config.
func NewExamAnswerEventClient(c config) *ExamAnswerEventClient {
	return &ExamAnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examanswerevent.Hooks(f(g(h())))`.
func (c *ExamAnswerEventClient) Use(hooks ...Hook) {
	c.hooks.ExamAnswerEvent = append(c.hooks.ExamAnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examanswerevent.Intercept(f(g(h())))`.
func (c *ExamAnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamAnswerEvent = append(c.inters.ExamAnswerEvent, interceptors...)
}

// Create returns a builder for creating a ExamAnswerEvent entity.
func (c *ExamAnswerEventClient) Create() *ExamAnswerEventCreate {
	mutation := newExamAnswerEventMutation(c.config, OpCreate)
	return &ExamAnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamAnswerEvent entities.
func (c *ExamAnswerEventClient) CreateBulk(builders ...*ExamAnswerEventCreate) *ExamAnswerEventCreateBulk {
	return &ExamAnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamAnswerEventClient) MapCreateBulk(slice any, setFunc func(*ExamAnswerEventCreate, int)) *ExamAnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamAnswerEventCreateBulk{err: fmt.Errorf("calling to ExamAnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamAnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamAnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamAnswerEvent.
func (c *ExamAnswerEventClient) Update() *ExamAnswerEventUpdate {
	mutation := newExamAnswerEventMutation(c.config, OpUpdate)
	return &ExamAnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamAnswerEventClient) UpdateOne(_m *ExamAnswerEvent) *ExamAnswerEventUpdateOne {
	mutation := newExamAnswerEventMutation(c.config, OpUpdateOne, withExamAnswerEvent(_m))
	return &ExamAnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamAnswerEventClient) UpdateOneID(id int) *ExamAnswerEventUpdateOne {
	mutation := newExamAnswerEventMutation(c.config, OpUpdateOne, withExamAnswerEventID(id))
	return &ExamAnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamAnswerEvent.
func (c *ExamAnswerEventClient) Delete() *ExamAnswerEventDelete {
	mutation := newExamAnswerEventMutation(c.config, OpDelete)
	return &ExamAnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamAnswerEventClient) DeleteOne(_m *ExamAnswerEvent) *ExamAnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamAnswerEventClient) DeleteOneID(id int) *ExamAnswerEventDeleteOne {
	builder := c.Delete().Where(examanswerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamAnswerEventDeleteOne{builder}
}

// Query returns a query builder for ExamAnswerEvent.
func (c *ExamAnswerEventClient) Query() *ExamAnswerEventQuery {
	return &ExamAnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamAnswerEvent entity by its id.
func (c *ExamAnswerEventClient) Get(ctx context.Context, id int) (*ExamAnswerEvent, error) {
	return c.Query().Where(examanswerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamAnswerEventClient) GetX(ctx context.Context, id int) *ExamAnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamAnswerEventClient) Hooks() []Hook {
	return c.hooks.ExamAnswerEvent
}

// Interceptors returns the client interceptors.
func (c *ExamAnswerEventClient) Interceptors() []Interceptor {
	return c.inters.ExamAnswerEvent
}

func (c *ExamAnswerEventClient) mutate(ctx context.Context, m *ExamAnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamAnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamAnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamAnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamAnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamAnswerEvent mutation op: %q", m.Op())
	}
}

// ExamAttemptEventClient is a client for the ExamAttemptEvent schema.
type ExamAttemptEventClient struct {
	config
}

// NewExamAttemptEventClient returns a client for the ExamAttemptEvent from the given config.
func NewExamAttemptEventClient(c config) *ExamAttemptEventClient {
	return &ExamAttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examattemptevent.Hooks(f(g(h())))`.
func (c *ExamAttemptEventClient) Use(hooks ...Hook) {
	c.hooks.ExamAttemptEvent = append(c.hooks.ExamAttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examattemptevent.Intercept(f(g(h())))`.
func (c *ExamAttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamAttemptEvent = append(c.inters.ExamAttemptEvent, interceptors...)
}

// Create returns a builder for creating a ExamAttemptEvent entity.
func (c *ExamAttemptEventClient) Create() *ExamAttemptEventCreate {
	mutation := newExamAttemptEventMutation(c.config, OpCreate)
	return &ExamAttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamAttemptEvent entities.
func (c *ExamAttemptEventClient) CreateBulk(builders ...*ExamAttemptEventCreate) *ExamAttemptEventCreateBulk {
	return &ExamAttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamAttemptEventClient) MapCreateBulk(slice any, setFunc func(*ExamAttemptEventCreate, int)) *ExamAttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamAttemptEventCreateBulk{err: fmt.Errorf("calling to ExamAttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamAttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamAttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamAttemptEvent.
func (c *ExamAttemptEventClient) Update() *ExamAttemptEventUpdate {
	mutation := newExamAttemptEventMutation(c.config, OpUpdate)
	return &ExamAttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamAttemptEventClient) UpdateOne(_m *ExamAttemptEvent) *ExamAttemptEventUpdateOne {
	mutation := newExamAttemptEventMutation(c.config, OpUpdateOne, withExamAttemptEvent(_m))
	return &ExamAttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamAttemptEventClient) UpdateOneID(id int) *ExamAttemptEventUpdateOne {
	mutation := newExamAttemptEventMutation(c.config, OpUpdateOne, withExamAttemptEventID(id))
	return &ExamAttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamAttemptEvent.
func (c *ExamAttemptEventClient) Delete() *ExamAttemptEventDelete {
	mutation := newExamAttemptEventMutation(c.config, OpDelete)
	return &ExamAttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamAttemptEventClient) DeleteOne(_m *ExamAttemptEvent) *ExamAttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamAttemptEventClient) DeleteOneID(id int) *ExamAttemptEventDeleteOne {
	builder := c.Delete().Where(examattemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamAttemptEventDeleteOne{builder}
}

// Query returns a query builder for ExamAttemptEvent.
func (c *ExamAttemptEventClient) Query() *ExamAttemptEventQuery {
	return &ExamAttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamAttemptEvent entity by its id.
func (c *ExamAttemptEventClient) Get(ctx context.Context, id int) (*ExamAttemptEvent, error) {
	return c.Query().Where(examattemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamAttemptEventClient) GetX(ctx context.Context, id int) *ExamAttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamAttemptEventClient) Hooks() []Hook {
	return c.hooks.ExamAttemptEvent
}

// Interceptors returns the client interceptors.
func (c *ExamAttemptEventClient) Interceptors() []Interceptor {
	return c.inters.ExamAttemptEvent
}

func (c *ExamAttemptEventClient) mutate(ctx context.Context, m *ExamAttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamAttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamAttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamAttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamAttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamAttemptEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExamAnswerEvent, ExamAttemptEvent, LLMRequestEvent []ent.Hook
	}
	inters struct {
		ExamAnswerEvent, ExamAttemptEvent, LLMRequestEvent []ent.Interceptor
	}
)
