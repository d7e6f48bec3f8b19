package template

// Default values applied by NewVariables for the fields a caller omits.
// They describe the smallest pod the stock template can express: the
// default namespace, the stock agent image, and modest resource limits.
const (
	DefaultNamespace   = "default"
	DefaultImage       = "godel/agent:latest"
	DefaultCPULimit    = "500m"
	DefaultMemoryLimit = "512Mi"
)

// Variables carries the substitution values for the stock pod template.
// AgentID has no default and must always be supplied. The fragment fields
// default to empty; use pkg/fragment to build list entries or the explicit
// empty-list marker.
type Variables struct {
	AgentID      string
	Namespace    string
	Image        string
	CPULimit     string
	MemoryLimit  string
	EnvVars      string
	VolumeMounts string
	Volumes      string
}

// VariableOption customises a Variables value during construction.
type VariableOption func(*Variables)

// WithNamespace overrides the target namespace.
func WithNamespace(namespace string) VariableOption {
	return func(v *Variables) {
		v.Namespace = namespace
	}
}

// WithImage overrides the container image reference.
func WithImage(image string) VariableOption {
	return func(v *Variables) {
		v.Image = image
	}
}

// WithCPULimit overrides the CPU limit and request quantity.
func WithCPULimit(limit string) VariableOption {
	return func(v *Variables) {
		v.CPULimit = limit
	}
}

// WithMemoryLimit overrides the memory limit and request quantity.
func WithMemoryLimit(limit string) VariableOption {
	return func(v *Variables) {
		v.MemoryLimit = limit
	}
}

// WithEnvVars sets the pre-rendered environment variable fragment.
func WithEnvVars(fragment string) VariableOption {
	return func(v *Variables) {
		v.EnvVars = fragment
	}
}

// WithVolumeMounts sets the pre-rendered volume mount fragment.
func WithVolumeMounts(fragment string) VariableOption {
	return func(v *Variables) {
		v.VolumeMounts = fragment
	}
}

// WithVolumes sets the pre-rendered volume fragment.
func WithVolumes(fragment string) VariableOption {
	return func(v *Variables) {
		v.Volumes = fragment
	}
}

// NewVariables builds a Variables value for the given agent identifier,
// applying defaults first and the supplied options on top. Nil options are
// skipped.
func NewVariables(agentID string, opts ...VariableOption) Variables {
	vars := Variables{
		AgentID:     agentID,
		Namespace:   DefaultNamespace,
		Image:       DefaultImage,
		CPULimit:    DefaultCPULimit,
		MemoryLimit: DefaultMemoryLimit,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&vars)
	}
	return vars
}

// Map converts the Variables into the substitution mapping consumed by
// Template.Render. The keys match the placeholder names of the stock
// template exactly.
func (v Variables) Map() map[string]string {
	return map[string]string{
		"AGENT_ID":      v.AgentID,
		"NAMESPACE":     v.Namespace,
		"IMAGE":         v.Image,
		"CPU_LIMIT":     v.CPULimit,
		"MEMORY_LIMIT":  v.MemoryLimit,
		"ENV_VARS":      v.EnvVars,
		"VOLUME_MOUNTS": v.VolumeMounts,
		"VOLUMES":       v.Volumes,
	}
}
