package domain

import "context"

// ServicePort is consumed by handlers and by the evaluations module
type ServicePort interface {
	List(ctx context.Context) (RoleList, error)
	Get(ctx context.Context, role string) (RoleKeywords, error)
	Reload(ctx context.Context) (ReloadResult, error)

	// Keywords satisfies the engine's role directory; unknown roles yield nil
	Keywords(role string) []string
	// Revision moves on every reload
	Revision() uint64
}
