package posterize

const (
	// DefaultMaxIterations is the default cap on refinement rounds.
	DefaultMaxIterations = 24
)

// Options represents the options for configuring a Posterizer.
type Options struct {
	// MaxIterations caps the number of refinement rounds per run.
	// Values <= 0 fall back to DefaultMaxIterations.
	MaxIterations int

	// RandomSeed pins the initial cluster assignment so that identical
	// input produces identical output on every run. Nil draws a fresh
	// time-based seed per run.
	RandomSeed *int64

	// Parallelism is the number of workers for the assignment step.
	// Values <= 0 fall back to runtime.GOMAXPROCS(0). Output does not
	// depend on the worker count.
	Parallelism int

	// Logger receives structured operation logs. Nil disables logging.
	Logger *Logger

	// Metrics receives operation metrics. Nil disables collection.
	Metrics MetricsCollector
}

// DefaultOptions contains the default options for a Posterizer.
var DefaultOptions = Options{
	MaxIterations: DefaultMaxIterations,
}
