package demosdk

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for the probe endpoints.
// Used by both /livez and /readyz (readyz includes the Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the audit database connection status
	Database string `json:"database"`
}

// ServiceHealthResponse is the legacy-shaped /health document kept for
// pipeline compatibility (status, service name, timestamp, environment).
type ServiceHealthResponse struct {
	Status      string `json:"status" example:"healthy"`
	Service     string `json:"service" example:"demopass"`
	Timestamp   string `json:"timestamp" example:"2025-08-29T10:00:00Z"`
	Environment string `json:"environment" example:"local"`
}

// ============================================================================
// Demo Metadata Types
// ============================================================================

// InfoResponse describes the service and the pipeline that delivers it.
type InfoResponse struct {
	Message  string       `json:"message"`
	Features []string     `json:"features"`
	Pipeline PipelineInfo `json:"pipeline"`
}

// PipelineInfo names the pieces of the CI/CD chain.
type PipelineInfo struct {
	Source     string `json:"source" example:"GitHub"`
	CICD       string `json:"ci_cd" example:"GitHub Actions"`
	Deployment string `json:"deployment" example:"Render.com via Webhook"`
}

// DeploymentResponse describes how a build travels from commit to deploy.
type DeploymentResponse struct {
	DeploymentMethod string   `json:"deployment_method"`
	TriggerChain     []string `json:"trigger_chain"`
	Environment      string   `json:"environment"`
}

// BuildInfo is the build-stack document exposed by the CLI's --json mode.
type BuildInfo struct {
	Version     string `json:"version"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"architecture"`
	BuildNumber string `json:"build_number"`
	GitCommit   string `json:"git_commit"`
	CIServer    string `json:"ci_server"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// ============================================================================
// Generation Types
// ============================================================================

// GenerateRequest asks for one or more generated credentials.
type GenerateRequest struct {
	// Length of each credential. Minimum 4 (one per character class).
	Length int `json:"length" example:"16"`

	// Count of credentials to generate. Defaults to 1.
	Count int `json:"count,omitempty" example:"1"`

	// Hash requests an Argon2id PHC hash alongside each credential.
	Hash bool `json:"hash,omitempty"`
}

// Credential is one generated credential, optionally with its hash.
type Credential struct {
	Value string `json:"value"`
	Hash  string `json:"hash,omitempty"`
}

// GenerateResponse carries the generated credentials.
type GenerateResponse struct {
	Credentials []Credential `json:"credentials"`
	Length      int          `json:"length"`
}

// StatsResponse aggregates the generation audit log. Credentials themselves
// are never stored, only per-event metadata.
type StatsResponse struct {
	Total         int64            `json:"total"`
	Hashed        int64            `json:"hashed"`
	AverageLength float64          `json:"average_length"`
	BySource      map[string]int64 `json:"by_source"`
}
