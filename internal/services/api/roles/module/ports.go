package module

import "interviewcoach/internal/services/api/roles/domain"

// Ports are exposed to other modules; Directory satisfies the engine's keyword directory
type Ports struct {
	Directory domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
