package rbac

import (
	"fmt"
	"hospital-service/internal/app/config"

	"github.com/casbin/casbin/v2"
)

// NewEnforcer loads the route gate model and policy named in the casbin config section.
func NewEnforcer(cfg config.AppCasbin) (*casbin.Enforcer, error) {
	enforcer, err := casbin.NewEnforcer(cfg.ModelPath, cfg.PolicyPath)
	if err != nil {
		return nil, fmt.Errorf("load casbin model %q and policy %q: %w", cfg.ModelPath, cfg.PolicyPath, err)
	}
	return enforcer, nil
}
