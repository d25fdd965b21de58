package rbac

type EnforceRequest struct {
	UserID    string
	CompanyID string
	Resource  string
	Action    string
}
