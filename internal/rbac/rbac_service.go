package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   logger.Named("rbac.service"),
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

// loadCompanyPolicyUnlocked rebuilds the in-memory policy from the
// company's rows. Callers must hold s.mu.
func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	s.enforcer.ClearPolicy()

	userRoles, err := s.repo.GetUserRoles(companyID)
	if err != nil {
		return err
	}

	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.RoleID, companyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(companyID)
	if err != nil {
		return err
	}

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)

	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(
		req.UserID,
		req.CompanyID,
		req.Resource,
		req.Action,
	)
	if err != nil {
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("user_id", req.UserID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}
