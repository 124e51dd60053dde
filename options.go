package appdirs

// Option adjusts a single resolution call.
type Option func(*request)

// request carries the per-call knobs after options are applied.
type request struct {
	author  string
	version string
	roaming bool
	sandbox bool
	create  bool
}

// newRequest builds the per-call defaults: isolated environments are honored,
// and creation defaults to on for user kinds and off for site kinds.
func newRequest(kind Kind, opts []Option) request {
	req := request{
		sandbox: true,
		create:  !kind.Site(),
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// WithAuthor sets the application author. Required when resolving on
// Windows, ignored elsewhere.
func WithAuthor(author string) Option {
	return func(req *request) { req.author = author }
}

// WithVersion appends a version segment after the application name.
func WithVersion(version string) Option {
	return func(req *request) { req.version = version }
}

// WithRoaming selects the roaming application data folder on Windows for
// data, config and state directories. Caches and logs always stay local,
// and other platforms ignore the flag.
func WithRoaming(roaming bool) Option {
	return func(req *request) { req.roaming = roaming }
}

// WithSandbox controls whether an active isolated runtime environment
// short-circuits resolution of user directories. Defaults to true.
func WithSandbox(use bool) Option {
	return func(req *request) { req.sandbox = use }
}

// WithCreate controls whether resolved directories are created before the
// call returns. Defaults to true for user kinds and false for site kinds.
func WithCreate(create bool) Option {
	return func(req *request) { req.create = create }
}
