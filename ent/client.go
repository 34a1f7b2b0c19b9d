// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"replane.io/replane/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"replane.io/replane/ent/adminapikey"
	"replane.io/replane/ent/adminapikeyscope"
	"replane.io/replane/ent/auditlog"
	"replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/configversion"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/project"
	"replane.io/replane/ent/projectuser"
	"replane.io/replane/ent/sdkkey"
	"replane.io/replane/ent/workspace"
	"replane.io/replane/ent/workspacemember"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdminApiKey is the client for interacting with the AdminApiKey builders.
	AdminApiKey *AdminApiKeyClient
	// AdminApiKeyScope is the client for interacting with the AdminApiKeyScope builders.
	AdminApiKeyScope *AdminApiKeyScopeClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// ConfigItem is the client for interacting with the ConfigItem builders.
	ConfigItem *ConfigItemClient
	// ConfigProposal is the client for interacting with the ConfigProposal builders.
	ConfigProposal *ConfigProposalClient
	// ConfigUser is the client for interacting with the ConfigUser builders.
	ConfigUser *ConfigUserClient
	// ConfigVariant is the client for interacting with the ConfigVariant builders.
	ConfigVariant *ConfigVariantClient
	// ConfigVariantVersion is the client for interacting with the ConfigVariantVersion builders.
	ConfigVariantVersion *ConfigVariantVersionClient
	// ConfigVersion is the client for interacting with the ConfigVersion builders.
	ConfigVersion *ConfigVersionClient
	// Environment is the client for interacting with the Environment builders.
	Environment *EnvironmentClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// ProjectUser is the client for interacting with the ProjectUser builders.
	ProjectUser *ProjectUserClient
	// SdkKey is the client for interacting with the SdkKey builders.
	SdkKey *SdkKeyClient
	// Workspace is the client for interacting with the Workspace builders.
	Workspace *WorkspaceClient
	// WorkspaceMember is the client for interacting with the WorkspaceMember builders.
	WorkspaceMember *WorkspaceMemberClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdminApiKey = NewAdminApiKeyClient(c.config)
	c.AdminApiKeyScope = NewAdminApiKeyScopeClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.ConfigItem = NewConfigItemClient(c.config)
	c.ConfigProposal = NewConfigProposalClient(c.config)
	c.ConfigUser = NewConfigUserClient(c.config)
	c.ConfigVariant = NewConfigVariantClient(c.config)
	c.ConfigVariantVersion = NewConfigVariantVersionClient(c.config)
	c.ConfigVersion = NewConfigVersionClient(c.config)
	c.Environment = NewEnvironmentClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.ProjectUser = NewProjectUserClient(c.config)
	c.SdkKey = NewSdkKeyClient(c.config)
	c.Workspace = NewWorkspaceClient(c.config)
	c.WorkspaceMember = NewWorkspaceMemberClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		AdminApiKey:          NewAdminApiKeyClient(cfg),
		AdminApiKeyScope:     NewAdminApiKeyScopeClient(cfg),
		AuditLog:             NewAuditLogClient(cfg),
		ConfigItem:           NewConfigItemClient(cfg),
		ConfigProposal:       NewConfigProposalClient(cfg),
		ConfigUser:           NewConfigUserClient(cfg),
		ConfigVariant:        NewConfigVariantClient(cfg),
		ConfigVariantVersion: NewConfigVariantVersionClient(cfg),
		ConfigVersion:        NewConfigVersionClient(cfg),
		Environment:          NewEnvironmentClient(cfg),
		Project:              NewProjectClient(cfg),
		ProjectUser:          NewProjectUserClient(cfg),
		SdkKey:               NewSdkKeyClient(cfg),
		Workspace:            NewWorkspaceClient(cfg),
		WorkspaceMember:      NewWorkspaceMemberClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		AdminApiKey:          NewAdminApiKeyClient(cfg),
		AdminApiKeyScope:     NewAdminApiKeyScopeClient(cfg),
		AuditLog:             NewAuditLogClient(cfg),
		ConfigItem:           NewConfigItemClient(cfg),
		ConfigProposal:       NewConfigProposalClient(cfg),
		ConfigUser:           NewConfigUserClient(cfg),
		ConfigVariant:        NewConfigVariantClient(cfg),
		ConfigVariantVersion: NewConfigVariantVersionClient(cfg),
		ConfigVersion:        NewConfigVersionClient(cfg),
		Environment:          NewEnvironmentClient(cfg),
		Project:              NewProjectClient(cfg),
		ProjectUser:          NewProjectUserClient(cfg),
		SdkKey:               NewSdkKeyClient(cfg),
		Workspace:            NewWorkspaceClient(cfg),
		WorkspaceMember:      NewWorkspaceMemberClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdminApiKey.
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
		c.AdminApiKey, c.AdminApiKeyScope, c.AuditLog, c.ConfigItem, c.ConfigProposal,
		c.ConfigUser, c.ConfigVariant, c.ConfigVariantVersion, c.ConfigVersion,
		c.Environment, c.Project, c.ProjectUser, c.SdkKey, c.Workspace,
		c.WorkspaceMember,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AdminApiKey, c.AdminApiKeyScope, c.AuditLog, c.ConfigItem, c.ConfigProposal,
		c.ConfigUser, c.ConfigVariant, c.ConfigVariantVersion, c.ConfigVersion,
		c.Environment, c.Project, c.ProjectUser, c.SdkKey, c.Workspace,
		c.WorkspaceMember,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdminApiKeyMutation:
		return c.AdminApiKey.mutate(ctx, m)
	case *AdminApiKeyScopeMutation:
		return c.AdminApiKeyScope.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *ConfigItemMutation:
		return c.ConfigItem.mutate(ctx, m)
	case *ConfigProposalMutation:
		return c.ConfigProposal.mutate(ctx, m)
	case *ConfigUserMutation:
		return c.ConfigUser.mutate(ctx, m)
	case *ConfigVariantMutation:
		return c.ConfigVariant.mutate(ctx, m)
	case *ConfigVariantVersionMutation:
		return c.ConfigVariantVersion.mutate(ctx, m)
	case *ConfigVersionMutation:
		return c.ConfigVersion.mutate(ctx, m)
	case *EnvironmentMutation:
		return c.Environment.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ProjectUserMutation:
		return c.ProjectUser.mutate(ctx, m)
	case *SdkKeyMutation:
		return c.SdkKey.mutate(ctx, m)
	case *WorkspaceMutation:
		return c.Workspace.mutate(ctx, m)
	case *WorkspaceMemberMutation:
		return c.WorkspaceMember.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdminApiKeyClient is a client for the AdminApiKey schema.
type AdminApiKeyClient struct {
	config
}

// NewAdminApiKeyClient returns a client for the AdminApiKey from the given config.
func NewAdminApiKeyClient(c config) *AdminApiKeyClient {
	return &AdminApiKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adminapikey.Hooks(f(g(h())))`.
func (c *AdminApiKeyClient) Use(hooks ...Hook) {
	c.hooks.AdminApiKey = append(c.hooks.AdminApiKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adminapikey.Intercept(f(g(h())))`.
func (c *AdminApiKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdminApiKey = append(c.inters.AdminApiKey, interceptors...)
}

// Create returns a builder for creating a AdminApiKey entity.
func (c *AdminApiKeyClient) Create() *AdminApiKeyCreate {
	mutation := newAdminApiKeyMutation(c.config, OpCreate)
	return &AdminApiKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdminApiKey entities.
func (c *AdminApiKeyClient) CreateBulk(builders ...*AdminApiKeyCreate) *AdminApiKeyCreateBulk {
	return &AdminApiKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdminApiKeyClient) MapCreateBulk(slice any, setFunc func(*AdminApiKeyCreate, int)) *AdminApiKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdminApiKeyCreateBulk{err: fmt.Errorf("calling to AdminApiKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdminApiKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdminApiKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdminApiKey.
func (c *AdminApiKeyClient) Update() *AdminApiKeyUpdate {
	mutation := newAdminApiKeyMutation(c.config, OpUpdate)
	return &AdminApiKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdminApiKeyClient) UpdateOne(_m *AdminApiKey) *AdminApiKeyUpdateOne {
	mutation := newAdminApiKeyMutation(c.config, OpUpdateOne, withAdminApiKey(_m))
	return &AdminApiKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdminApiKeyClient) UpdateOneID(id string) *AdminApiKeyUpdateOne {
	mutation := newAdminApiKeyMutation(c.config, OpUpdateOne, withAdminApiKeyID(id))
	return &AdminApiKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdminApiKey.
func (c *AdminApiKeyClient) Delete() *AdminApiKeyDelete {
	mutation := newAdminApiKeyMutation(c.config, OpDelete)
	return &AdminApiKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdminApiKeyClient) DeleteOne(_m *AdminApiKey) *AdminApiKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdminApiKeyClient) DeleteOneID(id string) *AdminApiKeyDeleteOne {
	builder := c.Delete().Where(adminapikey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdminApiKeyDeleteOne{builder}
}

// Query returns a query builder for AdminApiKey.
func (c *AdminApiKeyClient) Query() *AdminApiKeyQuery {
	return &AdminApiKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdminApiKey},
		inters: c.Interceptors(),
	}
}

// Get returns a AdminApiKey entity by its id.
func (c *AdminApiKeyClient) Get(ctx context.Context, id string) (*AdminApiKey, error) {
	return c.Query().Where(adminapikey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdminApiKeyClient) GetX(ctx context.Context, id string) *AdminApiKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a AdminApiKey.
func (c *AdminApiKeyClient) QueryWorkspace(_m *AdminApiKey) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(adminapikey.Table, adminapikey.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, adminapikey.WorkspaceTable, adminapikey.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScopes queries the scopes edge of a AdminApiKey.
func (c *AdminApiKeyClient) QueryScopes(_m *AdminApiKey) *AdminApiKeyScopeQuery {
	query := (&AdminApiKeyScopeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(adminapikey.Table, adminapikey.FieldID, id),
			sqlgraph.To(adminapikeyscope.Table, adminapikeyscope.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, adminapikey.ScopesTable, adminapikey.ScopesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProjects queries the projects edge of a AdminApiKey.
func (c *AdminApiKeyClient) QueryProjects(_m *AdminApiKey) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(adminapikey.Table, adminapikey.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, adminapikey.ProjectsTable, adminapikey.ProjectsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdminApiKeyClient) Hooks() []Hook {
	return c.hooks.AdminApiKey
}

// Interceptors returns the client interceptors.
func (c *AdminApiKeyClient) Interceptors() []Interceptor {
	return c.inters.AdminApiKey
}

func (c *AdminApiKeyClient) mutate(ctx context.Context, m *AdminApiKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdminApiKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdminApiKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdminApiKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdminApiKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdminApiKey mutation op: %q", m.Op())
	}
}

// AdminApiKeyScopeClient is a client for the AdminApiKeyScope schema.
type AdminApiKeyScopeClient struct {
	config
}

// NewAdminApiKeyScopeClient returns a client for the AdminApiKeyScope from the given config.
func NewAdminApiKeyScopeClient(c config) *AdminApiKeyScopeClient {
	return &AdminApiKeyScopeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adminapikeyscope.Hooks(f(g(h())))`.
func (c *AdminApiKeyScopeClient) Use(hooks ...Hook) {
	c.hooks.AdminApiKeyScope = append(c.hooks.AdminApiKeyScope, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adminapikeyscope.Intercept(f(g(h())))`.
func (c *AdminApiKeyScopeClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdminApiKeyScope = append(c.inters.AdminApiKeyScope, interceptors...)
}

// Create returns a builder for creating a AdminApiKeyScope entity.
func (c *AdminApiKeyScopeClient) Create() *AdminApiKeyScopeCreate {
	mutation := newAdminApiKeyScopeMutation(c.config, OpCreate)
	return &AdminApiKeyScopeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdminApiKeyScope entities.
func (c *AdminApiKeyScopeClient) CreateBulk(builders ...*AdminApiKeyScopeCreate) *AdminApiKeyScopeCreateBulk {
	return &AdminApiKeyScopeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdminApiKeyScopeClient) MapCreateBulk(slice any, setFunc func(*AdminApiKeyScopeCreate, int)) *AdminApiKeyScopeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdminApiKeyScopeCreateBulk{err: fmt.Errorf("calling to AdminApiKeyScopeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdminApiKeyScopeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdminApiKeyScopeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdminApiKeyScope.
func (c *AdminApiKeyScopeClient) Update() *AdminApiKeyScopeUpdate {
	mutation := newAdminApiKeyScopeMutation(c.config, OpUpdate)
	return &AdminApiKeyScopeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdminApiKeyScopeClient) UpdateOne(_m *AdminApiKeyScope) *AdminApiKeyScopeUpdateOne {
	mutation := newAdminApiKeyScopeMutation(c.config, OpUpdateOne, withAdminApiKeyScope(_m))
	return &AdminApiKeyScopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdminApiKeyScopeClient) UpdateOneID(id string) *AdminApiKeyScopeUpdateOne {
	mutation := newAdminApiKeyScopeMutation(c.config, OpUpdateOne, withAdminApiKeyScopeID(id))
	return &AdminApiKeyScopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdminApiKeyScope.
func (c *AdminApiKeyScopeClient) Delete() *AdminApiKeyScopeDelete {
	mutation := newAdminApiKeyScopeMutation(c.config, OpDelete)
	return &AdminApiKeyScopeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdminApiKeyScopeClient) DeleteOne(_m *AdminApiKeyScope) *AdminApiKeyScopeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdminApiKeyScopeClient) DeleteOneID(id string) *AdminApiKeyScopeDeleteOne {
	builder := c.Delete().Where(adminapikeyscope.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdminApiKeyScopeDeleteOne{builder}
}

// Query returns a query builder for AdminApiKeyScope.
func (c *AdminApiKeyScopeClient) Query() *AdminApiKeyScopeQuery {
	return &AdminApiKeyScopeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdminApiKeyScope},
		inters: c.Interceptors(),
	}
}

// Get returns a AdminApiKeyScope entity by its id.
func (c *AdminApiKeyScopeClient) Get(ctx context.Context, id string) (*AdminApiKeyScope, error) {
	return c.Query().Where(adminapikeyscope.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdminApiKeyScopeClient) GetX(ctx context.Context, id string) *AdminApiKeyScope {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKey queries the key edge of a AdminApiKeyScope.
func (c *AdminApiKeyScopeClient) QueryKey(_m *AdminApiKeyScope) *AdminApiKeyQuery {
	query := (&AdminApiKeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(adminapikeyscope.Table, adminapikeyscope.FieldID, id),
			sqlgraph.To(adminapikey.Table, adminapikey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, adminapikeyscope.KeyTable, adminapikeyscope.KeyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdminApiKeyScopeClient) Hooks() []Hook {
	return c.hooks.AdminApiKeyScope
}

// Interceptors returns the client interceptors.
func (c *AdminApiKeyScopeClient) Interceptors() []Interceptor {
	return c.inters.AdminApiKeyScope
}

func (c *AdminApiKeyScopeClient) mutate(ctx context.Context, m *AdminApiKeyScopeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdminApiKeyScopeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdminApiKeyScopeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdminApiKeyScopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdminApiKeyScopeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdminApiKeyScope mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// ConfigItemClient is a client for the ConfigItem schema.
type ConfigItemClient struct {
	config
}

// NewConfigItemClient returns a client for the ConfigItem from the given config.
func NewConfigItemClient(c config) *ConfigItemClient {
	return &ConfigItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `configitem.Hooks(f(g(h())))`.
func (c *ConfigItemClient) Use(hooks ...Hook) {
	c.hooks.ConfigItem = append(c.hooks.ConfigItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `configitem.Intercept(f(g(h())))`.
func (c *ConfigItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConfigItem = append(c.inters.ConfigItem, interceptors...)
}

// Create returns a builder for creating a ConfigItem entity.
func (c *ConfigItemClient) Create() *ConfigItemCreate {
	mutation := newConfigItemMutation(c.config, OpCreate)
	return &ConfigItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConfigItem entities.
func (c *ConfigItemClient) CreateBulk(builders ...*ConfigItemCreate) *ConfigItemCreateBulk {
	return &ConfigItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConfigItemClient) MapCreateBulk(slice any, setFunc func(*ConfigItemCreate, int)) *ConfigItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConfigItemCreateBulk{err: fmt.Errorf("calling to ConfigItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConfigItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConfigItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConfigItem.
func (c *ConfigItemClient) Update() *ConfigItemUpdate {
	mutation := newConfigItemMutation(c.config, OpUpdate)
	return &ConfigItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConfigItemClient) UpdateOne(_m *ConfigItem) *ConfigItemUpdateOne {
	mutation := newConfigItemMutation(c.config, OpUpdateOne, withConfigItem(_m))
	return &ConfigItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConfigItemClient) UpdateOneID(id string) *ConfigItemUpdateOne {
	mutation := newConfigItemMutation(c.config, OpUpdateOne, withConfigItemID(id))
	return &ConfigItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConfigItem.
func (c *ConfigItemClient) Delete() *ConfigItemDelete {
	mutation := newConfigItemMutation(c.config, OpDelete)
	return &ConfigItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConfigItemClient) DeleteOne(_m *ConfigItem) *ConfigItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConfigItemClient) DeleteOneID(id string) *ConfigItemDeleteOne {
	builder := c.Delete().Where(configitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConfigItemDeleteOne{builder}
}

// Query returns a query builder for ConfigItem.
func (c *ConfigItemClient) Query() *ConfigItemQuery {
	return &ConfigItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConfigItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ConfigItem entity by its id.
func (c *ConfigItemClient) Get(ctx context.Context, id string) (*ConfigItem, error) {
	return c.Query().Where(configitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConfigItemClient) GetX(ctx context.Context, id string) *ConfigItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a ConfigItem.
func (c *ConfigItemClient) QueryProject(_m *ConfigItem) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configitem.Table, configitem.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, configitem.ProjectTable, configitem.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVariants queries the variants edge of a ConfigItem.
func (c *ConfigItemClient) QueryVariants(_m *ConfigItem) *ConfigVariantQuery {
	query := (&ConfigVariantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configitem.Table, configitem.FieldID, id),
			sqlgraph.To(configvariant.Table, configvariant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, configitem.VariantsTable, configitem.VariantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVersions queries the versions edge of a ConfigItem.
func (c *ConfigItemClient) QueryVersions(_m *ConfigItem) *ConfigVersionQuery {
	query := (&ConfigVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configitem.Table, configitem.FieldID, id),
			sqlgraph.To(configversion.Table, configversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, configitem.VersionsTable, configitem.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProposals queries the proposals edge of a ConfigItem.
func (c *ConfigItemClient) QueryProposals(_m *ConfigItem) *ConfigProposalQuery {
	query := (&ConfigProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configitem.Table, configitem.FieldID, id),
			sqlgraph.To(configproposal.Table, configproposal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, configitem.ProposalsTable, configitem.ProposalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsers queries the users edge of a ConfigItem.
func (c *ConfigItemClient) QueryUsers(_m *ConfigItem) *ConfigUserQuery {
	query := (&ConfigUserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configitem.Table, configitem.FieldID, id),
			sqlgraph.To(configuser.Table, configuser.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, configitem.UsersTable, configitem.UsersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConfigItemClient) Hooks() []Hook {
	return c.hooks.ConfigItem
}

// Interceptors returns the client interceptors.
func (c *ConfigItemClient) Interceptors() []Interceptor {
	return c.inters.ConfigItem
}

func (c *ConfigItemClient) mutate(ctx context.Context, m *ConfigItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConfigItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConfigItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConfigItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConfigItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConfigItem mutation op: %q", m.Op())
	}
}

// ConfigProposalClient is a client for the ConfigProposal schema.
type ConfigProposalClient struct {
	config
}

// NewConfigProposalClient returns a client for the ConfigProposal from the given config.
func NewConfigProposalClient(c config) *ConfigProposalClient {
	return &ConfigProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `configproposal.Hooks(f(g(h())))`.
func (c *ConfigProposalClient) Use(hooks ...Hook) {
	c.hooks.ConfigProposal = append(c.hooks.ConfigProposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `configproposal.Intercept(f(g(h())))`.
func (c *ConfigProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConfigProposal = append(c.inters.ConfigProposal, interceptors...)
}

// Create returns a builder for creating a ConfigProposal entity.
func (c *ConfigProposalClient) Create() *ConfigProposalCreate {
	mutation := newConfigProposalMutation(c.config, OpCreate)
	return &ConfigProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConfigProposal entities.
func (c *ConfigProposalClient) CreateBulk(builders ...*ConfigProposalCreate) *ConfigProposalCreateBulk {
	return &ConfigProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConfigProposalClient) MapCreateBulk(slice any, setFunc func(*ConfigProposalCreate, int)) *ConfigProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConfigProposalCreateBulk{err: fmt.Errorf("calling to ConfigProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConfigProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConfigProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConfigProposal.
func (c *ConfigProposalClient) Update() *ConfigProposalUpdate {
	mutation := newConfigProposalMutation(c.config, OpUpdate)
	return &ConfigProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConfigProposalClient) UpdateOne(_m *ConfigProposal) *ConfigProposalUpdateOne {
	mutation := newConfigProposalMutation(c.config, OpUpdateOne, withConfigProposal(_m))
	return &ConfigProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConfigProposalClient) UpdateOneID(id string) *ConfigProposalUpdateOne {
	mutation := newConfigProposalMutation(c.config, OpUpdateOne, withConfigProposalID(id))
	return &ConfigProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConfigProposal.
func (c *ConfigProposalClient) Delete() *ConfigProposalDelete {
	mutation := newConfigProposalMutation(c.config, OpDelete)
	return &ConfigProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConfigProposalClient) DeleteOne(_m *ConfigProposal) *ConfigProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConfigProposalClient) DeleteOneID(id string) *ConfigProposalDeleteOne {
	builder := c.Delete().Where(configproposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConfigProposalDeleteOne{builder}
}

// Query returns a query builder for ConfigProposal.
func (c *ConfigProposalClient) Query() *ConfigProposalQuery {
	return &ConfigProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConfigProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a ConfigProposal entity by its id.
func (c *ConfigProposalClient) Get(ctx context.Context, id string) (*ConfigProposal, error) {
	return c.Query().Where(configproposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConfigProposalClient) GetX(ctx context.Context, id string) *ConfigProposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConfig queries the config edge of a ConfigProposal.
func (c *ConfigProposalClient) QueryConfig(_m *ConfigProposal) *ConfigItemQuery {
	query := (&ConfigItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configproposal.Table, configproposal.FieldID, id),
			sqlgraph.To(configitem.Table, configitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, configproposal.ConfigTable, configproposal.ConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConfigProposalClient) Hooks() []Hook {
	return c.hooks.ConfigProposal
}

// Interceptors returns the client interceptors.
func (c *ConfigProposalClient) Interceptors() []Interceptor {
	return c.inters.ConfigProposal
}

func (c *ConfigProposalClient) mutate(ctx context.Context, m *ConfigProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConfigProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConfigProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConfigProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConfigProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConfigProposal mutation op: %q", m.Op())
	}
}

// ConfigUserClient is a client for the ConfigUser schema.
type ConfigUserClient struct {
	config
}

// NewConfigUserClient returns a client for the ConfigUser from the given config.
func NewConfigUserClient(c config) *ConfigUserClient {
	return &ConfigUserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `configuser.Hooks(f(g(h())))`.
func (c *ConfigUserClient) Use(hooks ...Hook) {
	c.hooks.ConfigUser = append(c.hooks.ConfigUser, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `configuser.Intercept(f(g(h())))`.
func (c *ConfigUserClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConfigUser = append(c.inters.ConfigUser, interceptors...)
}

// Create returns a builder for creating a ConfigUser entity.
func (c *ConfigUserClient) Create() *ConfigUserCreate {
	mutation := newConfigUserMutation(c.config, OpCreate)
	return &ConfigUserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConfigUser entities.
func (c *ConfigUserClient) CreateBulk(builders ...*ConfigUserCreate) *ConfigUserCreateBulk {
	return &ConfigUserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConfigUserClient) MapCreateBulk(slice any, setFunc func(*ConfigUserCreate, int)) *ConfigUserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConfigUserCreateBulk{err: fmt.Errorf("calling to ConfigUserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConfigUserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConfigUserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConfigUser.
func (c *ConfigUserClient) Update() *ConfigUserUpdate {
	mutation := newConfigUserMutation(c.config, OpUpdate)
	return &ConfigUserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConfigUserClient) UpdateOne(_m *ConfigUser) *ConfigUserUpdateOne {
	mutation := newConfigUserMutation(c.config, OpUpdateOne, withConfigUser(_m))
	return &ConfigUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConfigUserClient) UpdateOneID(id string) *ConfigUserUpdateOne {
	mutation := newConfigUserMutation(c.config, OpUpdateOne, withConfigUserID(id))
	return &ConfigUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConfigUser.
func (c *ConfigUserClient) Delete() *ConfigUserDelete {
	mutation := newConfigUserMutation(c.config, OpDelete)
	return &ConfigUserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConfigUserClient) DeleteOne(_m *ConfigUser) *ConfigUserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConfigUserClient) DeleteOneID(id string) *ConfigUserDeleteOne {
	builder := c.Delete().Where(configuser.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConfigUserDeleteOne{builder}
}

// Query returns a query builder for ConfigUser.
func (c *ConfigUserClient) Query() *ConfigUserQuery {
	return &ConfigUserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConfigUser},
		inters: c.Interceptors(),
	}
}

// Get returns a ConfigUser entity by its id.
func (c *ConfigUserClient) Get(ctx context.Context, id string) (*ConfigUser, error) {
	return c.Query().Where(configuser.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConfigUserClient) GetX(ctx context.Context, id string) *ConfigUser {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConfig queries the config edge of a ConfigUser.
func (c *ConfigUserClient) QueryConfig(_m *ConfigUser) *ConfigItemQuery {
	query := (&ConfigItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configuser.Table, configuser.FieldID, id),
			sqlgraph.To(configitem.Table, configitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, configuser.ConfigTable, configuser.ConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConfigUserClient) Hooks() []Hook {
	return c.hooks.ConfigUser
}

// Interceptors returns the client interceptors.
func (c *ConfigUserClient) Interceptors() []Interceptor {
	return c.inters.ConfigUser
}

func (c *ConfigUserClient) mutate(ctx context.Context, m *ConfigUserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConfigUserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConfigUserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConfigUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConfigUserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConfigUser mutation op: %q", m.Op())
	}
}

// ConfigVariantClient is a client for the ConfigVariant schema.
type ConfigVariantClient struct {
	config
}

// NewConfigVariantClient returns a client for the ConfigVariant from the given config.
func NewConfigVariantClient(c config) *ConfigVariantClient {
	return &ConfigVariantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `configvariant.Hooks(f(g(h())))`.
func (c *ConfigVariantClient) Use(hooks ...Hook) {
	c.hooks.ConfigVariant = append(c.hooks.ConfigVariant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `configvariant.Intercept(f(g(h())))`.
func (c *ConfigVariantClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConfigVariant = append(c.inters.ConfigVariant, interceptors...)
}

// Create returns a builder for creating a ConfigVariant entity.
func (c *ConfigVariantClient) Create() *ConfigVariantCreate {
	mutation := newConfigVariantMutation(c.config, OpCreate)
	return &ConfigVariantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConfigVariant entities.
func (c *ConfigVariantClient) CreateBulk(builders ...*ConfigVariantCreate) *ConfigVariantCreateBulk {
	return &ConfigVariantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConfigVariantClient) MapCreateBulk(slice any, setFunc func(*ConfigVariantCreate, int)) *ConfigVariantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConfigVariantCreateBulk{err: fmt.Errorf("calling to ConfigVariantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConfigVariantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConfigVariantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConfigVariant.
func (c *ConfigVariantClient) Update() *ConfigVariantUpdate {
	mutation := newConfigVariantMutation(c.config, OpUpdate)
	return &ConfigVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConfigVariantClient) UpdateOne(_m *ConfigVariant) *ConfigVariantUpdateOne {
	mutation := newConfigVariantMutation(c.config, OpUpdateOne, withConfigVariant(_m))
	return &ConfigVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConfigVariantClient) UpdateOneID(id string) *ConfigVariantUpdateOne {
	mutation := newConfigVariantMutation(c.config, OpUpdateOne, withConfigVariantID(id))
	return &ConfigVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConfigVariant.
func (c *ConfigVariantClient) Delete() *ConfigVariantDelete {
	mutation := newConfigVariantMutation(c.config, OpDelete)
	return &ConfigVariantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConfigVariantClient) DeleteOne(_m *ConfigVariant) *ConfigVariantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConfigVariantClient) DeleteOneID(id string) *ConfigVariantDeleteOne {
	builder := c.Delete().Where(configvariant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConfigVariantDeleteOne{builder}
}

// Query returns a query builder for ConfigVariant.
func (c *ConfigVariantClient) Query() *ConfigVariantQuery {
	return &ConfigVariantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConfigVariant},
		inters: c.Interceptors(),
	}
}

// Get returns a ConfigVariant entity by its id.
func (c *ConfigVariantClient) Get(ctx context.Context, id string) (*ConfigVariant, error) {
	return c.Query().Where(configvariant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConfigVariantClient) GetX(ctx context.Context, id string) *ConfigVariant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConfig queries the config edge of a ConfigVariant.
func (c *ConfigVariantClient) QueryConfig(_m *ConfigVariant) *ConfigItemQuery {
	query := (&ConfigItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configvariant.Table, configvariant.FieldID, id),
			sqlgraph.To(configitem.Table, configitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, configvariant.ConfigTable, configvariant.ConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEnvironment queries the environment edge of a ConfigVariant.
func (c *ConfigVariantClient) QueryEnvironment(_m *ConfigVariant) *EnvironmentQuery {
	query := (&EnvironmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configvariant.Table, configvariant.FieldID, id),
			sqlgraph.To(environment.Table, environment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, configvariant.EnvironmentTable, configvariant.EnvironmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVersions queries the versions edge of a ConfigVariant.
func (c *ConfigVariantClient) QueryVersions(_m *ConfigVariant) *ConfigVariantVersionQuery {
	query := (&ConfigVariantVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configvariant.Table, configvariant.FieldID, id),
			sqlgraph.To(configvariantversion.Table, configvariantversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, configvariant.VersionsTable, configvariant.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConfigVariantClient) Hooks() []Hook {
	return c.hooks.ConfigVariant
}

// Interceptors returns the client interceptors.
func (c *ConfigVariantClient) Interceptors() []Interceptor {
	return c.inters.ConfigVariant
}

func (c *ConfigVariantClient) mutate(ctx context.Context, m *ConfigVariantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConfigVariantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConfigVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConfigVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConfigVariantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConfigVariant mutation op: %q", m.Op())
	}
}

// ConfigVariantVersionClient is a client for the ConfigVariantVersion schema.
type ConfigVariantVersionClient struct {
	config
}

// NewConfigVariantVersionClient returns a client for the ConfigVariantVersion from the given config.
func NewConfigVariantVersionClient(c config) *ConfigVariantVersionClient {
	return &ConfigVariantVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `configvariantversion.Hooks(f(g(h())))`.
func (c *ConfigVariantVersionClient) Use(hooks ...Hook) {
	c.hooks.ConfigVariantVersion = append(c.hooks.ConfigVariantVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `configvariantversion.Intercept(f(g(h())))`.
func (c *ConfigVariantVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConfigVariantVersion = append(c.inters.ConfigVariantVersion, interceptors...)
}

// Create returns a builder for creating a ConfigVariantVersion entity.
func (c *ConfigVariantVersionClient) Create() *ConfigVariantVersionCreate {
	mutation := newConfigVariantVersionMutation(c.config, OpCreate)
	return &ConfigVariantVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConfigVariantVersion entities.
func (c *ConfigVariantVersionClient) CreateBulk(builders ...*ConfigVariantVersionCreate) *ConfigVariantVersionCreateBulk {
	return &ConfigVariantVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConfigVariantVersionClient) MapCreateBulk(slice any, setFunc func(*ConfigVariantVersionCreate, int)) *ConfigVariantVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConfigVariantVersionCreateBulk{err: fmt.Errorf("calling to ConfigVariantVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConfigVariantVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConfigVariantVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConfigVariantVersion.
func (c *ConfigVariantVersionClient) Update() *ConfigVariantVersionUpdate {
	mutation := newConfigVariantVersionMutation(c.config, OpUpdate)
	return &ConfigVariantVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConfigVariantVersionClient) UpdateOne(_m *ConfigVariantVersion) *ConfigVariantVersionUpdateOne {
	mutation := newConfigVariantVersionMutation(c.config, OpUpdateOne, withConfigVariantVersion(_m))
	return &ConfigVariantVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConfigVariantVersionClient) UpdateOneID(id string) *ConfigVariantVersionUpdateOne {
	mutation := newConfigVariantVersionMutation(c.config, OpUpdateOne, withConfigVariantVersionID(id))
	return &ConfigVariantVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConfigVariantVersion.
func (c *ConfigVariantVersionClient) Delete() *ConfigVariantVersionDelete {
	mutation := newConfigVariantVersionMutation(c.config, OpDelete)
	return &ConfigVariantVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConfigVariantVersionClient) DeleteOne(_m *ConfigVariantVersion) *ConfigVariantVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConfigVariantVersionClient) DeleteOneID(id string) *ConfigVariantVersionDeleteOne {
	builder := c.Delete().Where(configvariantversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConfigVariantVersionDeleteOne{builder}
}

// Query returns a query builder for ConfigVariantVersion.
func (c *ConfigVariantVersionClient) Query() *ConfigVariantVersionQuery {
	return &ConfigVariantVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConfigVariantVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a ConfigVariantVersion entity by its id.
func (c *ConfigVariantVersionClient) Get(ctx context.Context, id string) (*ConfigVariantVersion, error) {
	return c.Query().Where(configvariantversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConfigVariantVersionClient) GetX(ctx context.Context, id string) *ConfigVariantVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVariant queries the variant edge of a ConfigVariantVersion.
func (c *ConfigVariantVersionClient) QueryVariant(_m *ConfigVariantVersion) *ConfigVariantQuery {
	query := (&ConfigVariantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configvariantversion.Table, configvariantversion.FieldID, id),
			sqlgraph.To(configvariant.Table, configvariant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, configvariantversion.VariantTable, configvariantversion.VariantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConfigVariantVersionClient) Hooks() []Hook {
	return c.hooks.ConfigVariantVersion
}

// Interceptors returns the client interceptors.
func (c *ConfigVariantVersionClient) Interceptors() []Interceptor {
	return c.inters.ConfigVariantVersion
}

func (c *ConfigVariantVersionClient) mutate(ctx context.Context, m *ConfigVariantVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConfigVariantVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConfigVariantVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConfigVariantVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConfigVariantVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConfigVariantVersion mutation op: %q", m.Op())
	}
}

// ConfigVersionClient is a client for the ConfigVersion schema.
type ConfigVersionClient struct {
	config
}

// NewConfigVersionClient returns a client for the ConfigVersion from the given config.
func NewConfigVersionClient(c config) *ConfigVersionClient {
	return &ConfigVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `configversion.Hooks(f(g(h())))`.
func (c *ConfigVersionClient) Use(hooks ...Hook) {
	c.hooks.ConfigVersion = append(c.hooks.ConfigVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `configversion.Intercept(f(g(h())))`.
func (c *ConfigVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConfigVersion = append(c.inters.ConfigVersion, interceptors...)
}

// Create returns a builder for creating a ConfigVersion entity.
func (c *ConfigVersionClient) Create() *ConfigVersionCreate {
	mutation := newConfigVersionMutation(c.config, OpCreate)
	return &ConfigVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConfigVersion entities.
func (c *ConfigVersionClient) CreateBulk(builders ...*ConfigVersionCreate) *ConfigVersionCreateBulk {
	return &ConfigVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConfigVersionClient) MapCreateBulk(slice any, setFunc func(*ConfigVersionCreate, int)) *ConfigVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConfigVersionCreateBulk{err: fmt.Errorf("calling to ConfigVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConfigVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConfigVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConfigVersion.
func (c *ConfigVersionClient) Update() *ConfigVersionUpdate {
	mutation := newConfigVersionMutation(c.config, OpUpdate)
	return &ConfigVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConfigVersionClient) UpdateOne(_m *ConfigVersion) *ConfigVersionUpdateOne {
	mutation := newConfigVersionMutation(c.config, OpUpdateOne, withConfigVersion(_m))
	return &ConfigVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConfigVersionClient) UpdateOneID(id string) *ConfigVersionUpdateOne {
	mutation := newConfigVersionMutation(c.config, OpUpdateOne, withConfigVersionID(id))
	return &ConfigVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConfigVersion.
func (c *ConfigVersionClient) Delete() *ConfigVersionDelete {
	mutation := newConfigVersionMutation(c.config, OpDelete)
	return &ConfigVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConfigVersionClient) DeleteOne(_m *ConfigVersion) *ConfigVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConfigVersionClient) DeleteOneID(id string) *ConfigVersionDeleteOne {
	builder := c.Delete().Where(configversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConfigVersionDeleteOne{builder}
}

// Query returns a query builder for ConfigVersion.
func (c *ConfigVersionClient) Query() *ConfigVersionQuery {
	return &ConfigVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConfigVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a ConfigVersion entity by its id.
func (c *ConfigVersionClient) Get(ctx context.Context, id string) (*ConfigVersion, error) {
	return c.Query().Where(configversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConfigVersionClient) GetX(ctx context.Context, id string) *ConfigVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConfig queries the config edge of a ConfigVersion.
func (c *ConfigVersionClient) QueryConfig(_m *ConfigVersion) *ConfigItemQuery {
	query := (&ConfigItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(configversion.Table, configversion.FieldID, id),
			sqlgraph.To(configitem.Table, configitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, configversion.ConfigTable, configversion.ConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConfigVersionClient) Hooks() []Hook {
	return c.hooks.ConfigVersion
}

// Interceptors returns the client interceptors.
func (c *ConfigVersionClient) Interceptors() []Interceptor {
	return c.inters.ConfigVersion
}

func (c *ConfigVersionClient) mutate(ctx context.Context, m *ConfigVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConfigVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConfigVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConfigVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConfigVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConfigVersion mutation op: %q", m.Op())
	}
}

// EnvironmentClient is a client for the Environment schema.
type EnvironmentClient struct {
	config
}

// NewEnvironmentClient returns a client for the Environment from the given config.
func NewEnvironmentClient(c config) *EnvironmentClient {
	return &EnvironmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `environment.Hooks(f(g(h())))`.
func (c *EnvironmentClient) Use(hooks ...Hook) {
	c.hooks.Environment = append(c.hooks.Environment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `environment.Intercept(f(g(h())))`.
func (c *EnvironmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Environment = append(c.inters.Environment, interceptors...)
}

// Create returns a builder for creating a Environment entity.
func (c *EnvironmentClient) Create() *EnvironmentCreate {
	mutation := newEnvironmentMutation(c.config, OpCreate)
	return &EnvironmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Environment entities.
func (c *EnvironmentClient) CreateBulk(builders ...*EnvironmentCreate) *EnvironmentCreateBulk {
	return &EnvironmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnvironmentClient) MapCreateBulk(slice any, setFunc func(*EnvironmentCreate, int)) *EnvironmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnvironmentCreateBulk{err: fmt.Errorf("calling to EnvironmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnvironmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnvironmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Environment.
func (c *EnvironmentClient) Update() *EnvironmentUpdate {
	mutation := newEnvironmentMutation(c.config, OpUpdate)
	return &EnvironmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnvironmentClient) UpdateOne(_m *Environment) *EnvironmentUpdateOne {
	mutation := newEnvironmentMutation(c.config, OpUpdateOne, withEnvironment(_m))
	return &EnvironmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnvironmentClient) UpdateOneID(id string) *EnvironmentUpdateOne {
	mutation := newEnvironmentMutation(c.config, OpUpdateOne, withEnvironmentID(id))
	return &EnvironmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Environment.
func (c *EnvironmentClient) Delete() *EnvironmentDelete {
	mutation := newEnvironmentMutation(c.config, OpDelete)
	return &EnvironmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnvironmentClient) DeleteOne(_m *Environment) *EnvironmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnvironmentClient) DeleteOneID(id string) *EnvironmentDeleteOne {
	builder := c.Delete().Where(environment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnvironmentDeleteOne{builder}
}

// Query returns a query builder for Environment.
func (c *EnvironmentClient) Query() *EnvironmentQuery {
	return &EnvironmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnvironment},
		inters: c.Interceptors(),
	}
}

// Get returns a Environment entity by its id.
func (c *EnvironmentClient) Get(ctx context.Context, id string) (*Environment, error) {
	return c.Query().Where(environment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnvironmentClient) GetX(ctx context.Context, id string) *Environment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Environment.
func (c *EnvironmentClient) QueryProject(_m *Environment) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(environment.Table, environment.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, environment.ProjectTable, environment.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVariants queries the variants edge of a Environment.
func (c *EnvironmentClient) QueryVariants(_m *Environment) *ConfigVariantQuery {
	query := (&ConfigVariantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(environment.Table, environment.FieldID, id),
			sqlgraph.To(configvariant.Table, configvariant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, environment.VariantsTable, environment.VariantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySdkKeys queries the sdk_keys edge of a Environment.
func (c *EnvironmentClient) QuerySdkKeys(_m *Environment) *SdkKeyQuery {
	query := (&SdkKeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(environment.Table, environment.FieldID, id),
			sqlgraph.To(sdkkey.Table, sdkkey.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, environment.SdkKeysTable, environment.SdkKeysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EnvironmentClient) Hooks() []Hook {
	return c.hooks.Environment
}

// Interceptors returns the client interceptors.
func (c *EnvironmentClient) Interceptors() []Interceptor {
	return c.inters.Environment
}

func (c *EnvironmentClient) mutate(ctx context.Context, m *EnvironmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnvironmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnvironmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnvironmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnvironmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Environment mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a Project.
func (c *ProjectClient) QueryWorkspace(_m *Project) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, project.WorkspaceTable, project.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEnvironments queries the environments edge of a Project.
func (c *ProjectClient) QueryEnvironments(_m *Project) *EnvironmentQuery {
	query := (&EnvironmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(environment.Table, environment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.EnvironmentsTable, project.EnvironmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConfigs queries the configs edge of a Project.
func (c *ProjectClient) QueryConfigs(_m *Project) *ConfigItemQuery {
	query := (&ConfigItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(configitem.Table, configitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.ConfigsTable, project.ConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsers queries the users edge of a Project.
func (c *ProjectClient) QueryUsers(_m *Project) *ProjectUserQuery {
	query := (&ProjectUserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(projectuser.Table, projectuser.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.UsersTable, project.UsersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySdkKeys queries the sdk_keys edge of a Project.
func (c *ProjectClient) QuerySdkKeys(_m *Project) *SdkKeyQuery {
	query := (&SdkKeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(sdkkey.Table, sdkkey.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SdkKeysTable, project.SdkKeysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAPIKeys queries the api_keys edge of a Project.
func (c *ProjectClient) QueryAPIKeys(_m *Project) *AdminApiKeyQuery {
	query := (&AdminApiKeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(adminapikey.Table, adminapikey.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, project.APIKeysTable, project.APIKeysPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ProjectUserClient is a client for the ProjectUser schema.
type ProjectUserClient struct {
	config
}

// NewProjectUserClient returns a client for the ProjectUser from the given config.
func NewProjectUserClient(c config) *ProjectUserClient {
	return &ProjectUserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectuser.Hooks(f(g(h())))`.
func (c *ProjectUserClient) Use(hooks ...Hook) {
	c.hooks.ProjectUser = append(c.hooks.ProjectUser, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectuser.Intercept(f(g(h())))`.
func (c *ProjectUserClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectUser = append(c.inters.ProjectUser, interceptors...)
}

// Create returns a builder for creating a ProjectUser entity.
func (c *ProjectUserClient) Create() *ProjectUserCreate {
	mutation := newProjectUserMutation(c.config, OpCreate)
	return &ProjectUserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectUser entities.
func (c *ProjectUserClient) CreateBulk(builders ...*ProjectUserCreate) *ProjectUserCreateBulk {
	return &ProjectUserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectUserClient) MapCreateBulk(slice any, setFunc func(*ProjectUserCreate, int)) *ProjectUserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectUserCreateBulk{err: fmt.Errorf("calling to ProjectUserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectUserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectUserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectUser.
func (c *ProjectUserClient) Update() *ProjectUserUpdate {
	mutation := newProjectUserMutation(c.config, OpUpdate)
	return &ProjectUserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectUserClient) UpdateOne(_m *ProjectUser) *ProjectUserUpdateOne {
	mutation := newProjectUserMutation(c.config, OpUpdateOne, withProjectUser(_m))
	return &ProjectUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectUserClient) UpdateOneID(id string) *ProjectUserUpdateOne {
	mutation := newProjectUserMutation(c.config, OpUpdateOne, withProjectUserID(id))
	return &ProjectUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectUser.
func (c *ProjectUserClient) Delete() *ProjectUserDelete {
	mutation := newProjectUserMutation(c.config, OpDelete)
	return &ProjectUserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectUserClient) DeleteOne(_m *ProjectUser) *ProjectUserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectUserClient) DeleteOneID(id string) *ProjectUserDeleteOne {
	builder := c.Delete().Where(projectuser.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectUserDeleteOne{builder}
}

// Query returns a query builder for ProjectUser.
func (c *ProjectUserClient) Query() *ProjectUserQuery {
	return &ProjectUserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectUser},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectUser entity by its id.
func (c *ProjectUserClient) Get(ctx context.Context, id string) (*ProjectUser, error) {
	return c.Query().Where(projectuser.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectUserClient) GetX(ctx context.Context, id string) *ProjectUser {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a ProjectUser.
func (c *ProjectUserClient) QueryProject(_m *ProjectUser) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectuser.Table, projectuser.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, projectuser.ProjectTable, projectuser.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectUserClient) Hooks() []Hook {
	return c.hooks.ProjectUser
}

// Interceptors returns the client interceptors.
func (c *ProjectUserClient) Interceptors() []Interceptor {
	return c.inters.ProjectUser
}

func (c *ProjectUserClient) mutate(ctx context.Context, m *ProjectUserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectUserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectUserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectUser mutation op: %q", m.Op())
	}
}

// SdkKeyClient is a client for the SdkKey schema.
type SdkKeyClient struct {
	config
}

// NewSdkKeyClient returns a client for the SdkKey from the given config.
func NewSdkKeyClient(c config) *SdkKeyClient {
	return &SdkKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sdkkey.Hooks(f(g(h())))`.
func (c *SdkKeyClient) Use(hooks ...Hook) {
	c.hooks.SdkKey = append(c.hooks.SdkKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sdkkey.Intercept(f(g(h())))`.
func (c *SdkKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.SdkKey = append(c.inters.SdkKey, interceptors...)
}

// Create returns a builder for creating a SdkKey entity.
func (c *SdkKeyClient) Create() *SdkKeyCreate {
	mutation := newSdkKeyMutation(c.config, OpCreate)
	return &SdkKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SdkKey entities.
func (c *SdkKeyClient) CreateBulk(builders ...*SdkKeyCreate) *SdkKeyCreateBulk {
	return &SdkKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SdkKeyClient) MapCreateBulk(slice any, setFunc func(*SdkKeyCreate, int)) *SdkKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SdkKeyCreateBulk{err: fmt.Errorf("calling to SdkKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SdkKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SdkKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SdkKey.
func (c *SdkKeyClient) Update() *SdkKeyUpdate {
	mutation := newSdkKeyMutation(c.config, OpUpdate)
	return &SdkKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SdkKeyClient) UpdateOne(_m *SdkKey) *SdkKeyUpdateOne {
	mutation := newSdkKeyMutation(c.config, OpUpdateOne, withSdkKey(_m))
	return &SdkKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SdkKeyClient) UpdateOneID(id string) *SdkKeyUpdateOne {
	mutation := newSdkKeyMutation(c.config, OpUpdateOne, withSdkKeyID(id))
	return &SdkKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SdkKey.
func (c *SdkKeyClient) Delete() *SdkKeyDelete {
	mutation := newSdkKeyMutation(c.config, OpDelete)
	return &SdkKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SdkKeyClient) DeleteOne(_m *SdkKey) *SdkKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SdkKeyClient) DeleteOneID(id string) *SdkKeyDeleteOne {
	builder := c.Delete().Where(sdkkey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SdkKeyDeleteOne{builder}
}

// Query returns a query builder for SdkKey.
func (c *SdkKeyClient) Query() *SdkKeyQuery {
	return &SdkKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSdkKey},
		inters: c.Interceptors(),
	}
}

// Get returns a SdkKey entity by its id.
func (c *SdkKeyClient) Get(ctx context.Context, id string) (*SdkKey, error) {
	return c.Query().Where(sdkkey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SdkKeyClient) GetX(ctx context.Context, id string) *SdkKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a SdkKey.
func (c *SdkKeyClient) QueryProject(_m *SdkKey) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sdkkey.Table, sdkkey.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sdkkey.ProjectTable, sdkkey.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEnvironment queries the environment edge of a SdkKey.
func (c *SdkKeyClient) QueryEnvironment(_m *SdkKey) *EnvironmentQuery {
	query := (&EnvironmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sdkkey.Table, sdkkey.FieldID, id),
			sqlgraph.To(environment.Table, environment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sdkkey.EnvironmentTable, sdkkey.EnvironmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SdkKeyClient) Hooks() []Hook {
	return c.hooks.SdkKey
}

// Interceptors returns the client interceptors.
func (c *SdkKeyClient) Interceptors() []Interceptor {
	return c.inters.SdkKey
}

func (c *SdkKeyClient) mutate(ctx context.Context, m *SdkKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SdkKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SdkKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SdkKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SdkKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SdkKey mutation op: %q", m.Op())
	}
}

// WorkspaceClient is a client for the Workspace schema.
type WorkspaceClient struct {
	config
}

// NewWorkspaceClient returns a client for the Workspace from the given config.
func NewWorkspaceClient(c config) *WorkspaceClient {
	return &WorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspace.Hooks(f(g(h())))`.
func (c *WorkspaceClient) Use(hooks ...Hook) {
	c.hooks.Workspace = append(c.hooks.Workspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspace.Intercept(f(g(h())))`.
func (c *WorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workspace = append(c.inters.Workspace, interceptors...)
}

// Create returns a builder for creating a Workspace entity.
func (c *WorkspaceClient) Create() *WorkspaceCreate {
	mutation := newWorkspaceMutation(c.config, OpCreate)
	return &WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workspace entities.
func (c *WorkspaceClient) CreateBulk(builders ...*WorkspaceCreate) *WorkspaceCreateBulk {
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceClient) MapCreateBulk(slice any, setFunc func(*WorkspaceCreate, int)) *WorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceCreateBulk{err: fmt.Errorf("calling to WorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workspace.
func (c *WorkspaceClient) Update() *WorkspaceUpdate {
	mutation := newWorkspaceMutation(c.config, OpUpdate)
	return &WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceClient) UpdateOne(_m *Workspace) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspace(_m))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceClient) UpdateOneID(id string) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspaceID(id))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workspace.
func (c *WorkspaceClient) Delete() *WorkspaceDelete {
	mutation := newWorkspaceMutation(c.config, OpDelete)
	return &WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceClient) DeleteOne(_m *Workspace) *WorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceClient) DeleteOneID(id string) *WorkspaceDeleteOne {
	builder := c.Delete().Where(workspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceDeleteOne{builder}
}

// Query returns a query builder for Workspace.
func (c *WorkspaceClient) Query() *WorkspaceQuery {
	return &WorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a Workspace entity by its id.
func (c *WorkspaceClient) Get(ctx context.Context, id string) (*Workspace, error) {
	return c.Query().Where(workspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceClient) GetX(ctx context.Context, id string) *Workspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembers queries the members edge of a Workspace.
func (c *WorkspaceClient) QueryMembers(_m *Workspace) *WorkspaceMemberQuery {
	query := (&WorkspaceMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(workspacemember.Table, workspacemember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.MembersTable, workspace.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProjects queries the projects edge of a Workspace.
func (c *WorkspaceClient) QueryProjects(_m *Workspace) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ProjectsTable, workspace.ProjectsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAPIKeys queries the api_keys edge of a Workspace.
func (c *WorkspaceClient) QueryAPIKeys(_m *Workspace) *AdminApiKeyQuery {
	query := (&AdminApiKeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(adminapikey.Table, adminapikey.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.APIKeysTable, workspace.APIKeysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkspaceClient) Hooks() []Hook {
	return c.hooks.Workspace
}

// Interceptors returns the client interceptors.
func (c *WorkspaceClient) Interceptors() []Interceptor {
	return c.inters.Workspace
}

func (c *WorkspaceClient) mutate(ctx context.Context, m *WorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workspace mutation op: %q", m.Op())
	}
}

// WorkspaceMemberClient is a client for the WorkspaceMember schema.
type WorkspaceMemberClient struct {
	config
}

// NewWorkspaceMemberClient returns a client for the WorkspaceMember from the given config.
func NewWorkspaceMemberClient(c config) *WorkspaceMemberClient {
	return &WorkspaceMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspacemember.Hooks(f(g(h())))`.
func (c *WorkspaceMemberClient) Use(hooks ...Hook) {
	c.hooks.WorkspaceMember = append(c.hooks.WorkspaceMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspacemember.Intercept(f(g(h())))`.
func (c *WorkspaceMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkspaceMember = append(c.inters.WorkspaceMember, interceptors...)
}

// Create returns a builder for creating a WorkspaceMember entity.
func (c *WorkspaceMemberClient) Create() *WorkspaceMemberCreate {
	mutation := newWorkspaceMemberMutation(c.config, OpCreate)
	return &WorkspaceMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkspaceMember entities.
func (c *WorkspaceMemberClient) CreateBulk(builders ...*WorkspaceMemberCreate) *WorkspaceMemberCreateBulk {
	return &WorkspaceMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceMemberClient) MapCreateBulk(slice any, setFunc func(*WorkspaceMemberCreate, int)) *WorkspaceMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceMemberCreateBulk{err: fmt.Errorf("calling to WorkspaceMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkspaceMember.
func (c *WorkspaceMemberClient) Update() *WorkspaceMemberUpdate {
	mutation := newWorkspaceMemberMutation(c.config, OpUpdate)
	return &WorkspaceMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceMemberClient) UpdateOne(_m *WorkspaceMember) *WorkspaceMemberUpdateOne {
	mutation := newWorkspaceMemberMutation(c.config, OpUpdateOne, withWorkspaceMember(_m))
	return &WorkspaceMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceMemberClient) UpdateOneID(id string) *WorkspaceMemberUpdateOne {
	mutation := newWorkspaceMemberMutation(c.config, OpUpdateOne, withWorkspaceMemberID(id))
	return &WorkspaceMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkspaceMember.
func (c *WorkspaceMemberClient) Delete() *WorkspaceMemberDelete {
	mutation := newWorkspaceMemberMutation(c.config, OpDelete)
	return &WorkspaceMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceMemberClient) DeleteOne(_m *WorkspaceMember) *WorkspaceMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceMemberClient) DeleteOneID(id string) *WorkspaceMemberDeleteOne {
	builder := c.Delete().Where(workspacemember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceMemberDeleteOne{builder}
}

// Query returns a query builder for WorkspaceMember.
func (c *WorkspaceMemberClient) Query() *WorkspaceMemberQuery {
	return &WorkspaceMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspaceMember},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkspaceMember entity by its id.
func (c *WorkspaceMemberClient) Get(ctx context.Context, id string) (*WorkspaceMember, error) {
	return c.Query().Where(workspacemember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceMemberClient) GetX(ctx context.Context, id string) *WorkspaceMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a WorkspaceMember.
func (c *WorkspaceMemberClient) QueryWorkspace(_m *WorkspaceMember) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspacemember.Table, workspacemember.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workspacemember.WorkspaceTable, workspacemember.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkspaceMemberClient) Hooks() []Hook {
	return c.hooks.WorkspaceMember
}

// Interceptors returns the client interceptors.
func (c *WorkspaceMemberClient) Interceptors() []Interceptor {
	return c.inters.WorkspaceMember
}

func (c *WorkspaceMemberClient) mutate(ctx context.Context, m *WorkspaceMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkspaceMember mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdminApiKey, AdminApiKeyScope, AuditLog, ConfigItem, ConfigProposal, ConfigUser,
		ConfigVariant, ConfigVariantVersion, ConfigVersion, Environment, Project,
		ProjectUser, SdkKey, Workspace, WorkspaceMember []ent.Hook
	}
	inters struct {
		AdminApiKey, AdminApiKeyScope, AuditLog, ConfigItem, ConfigProposal, ConfigUser,
		ConfigVariant, ConfigVariantVersion, ConfigVersion, Environment, Project,
		ProjectUser, SdkKey, Workspace, WorkspaceMember []ent.Interceptor
	}
)
