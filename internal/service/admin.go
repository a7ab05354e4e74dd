package service

import (
	"context"
	"log/slog"

	domainauth "github.com/nexacrm/crm-console/internal/domain/auth"
	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
	"github.com/nexacrm/crm-console/internal/observability/statsd"
	"github.com/nexacrm/crm-console/internal/ports"
)

// User-facing refusal messages for administrator mutations.
const (
	MsgNoPermission     = "Yetkiniz yok."
	MsgSelfDelete       = "Kendi hesabınızı silemezsiniz"
	MsgElevatedNoToggle = "SuperAdmin durumu değiştirilemez"
	MsgElevatedNoDelete = "SuperAdmin silinemez"
	MsgAdminNotFound    = "Kullanıcı bulunamadı"
)

// Gate refusals handlers match on with errors.Is. Each blocks the mutation
// before any backend call is made.
var (
	ErrSelfDelete       = apperrors.New(apperrors.ErrCodeForbidden, MsgSelfDelete)
	ErrElevatedNoToggle = apperrors.New(apperrors.ErrCodeForbidden, MsgElevatedNoToggle)
	ErrElevatedNoDelete = apperrors.New(apperrors.ErrCodeForbidden, MsgElevatedNoDelete)
)

// AdminServiceOptions groups dependencies for AdminService.
type AdminServiceOptions struct {
	Directory ports.AdminDirectory
	Metrics   statsd.Sink
	Logger    *slog.Logger
}

// AdminService enforces the administrator management rules in front of the
// backend directory. Refusals are decided here, before any network call, so
// a blocked mutation never reaches the wire. Mutations return the directory
// re-fetched afterwards; callers render that list, never a locally patched
// copy.
type AdminService struct {
	directory ports.AdminDirectory
	metrics   statsd.Sink
	logger    *slog.Logger
}

// AdminMutationResult carries the backend confirmation message together with
// the freshly re-fetched directory.
type AdminMutationResult struct {
	Message string        `json:"message"`
	Admins  []model.Admin `json:"admins"`
}

// NewAdminService constructs a new AdminService.
func NewAdminService(opts AdminServiceOptions) *AdminService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{
		directory: opts.Directory,
		metrics:   opts.Metrics,
		logger:    logger,
	}
}

// List returns the administrator directory. Viewing requires the management
// tier; supervisors and anonymous callers are refused.
func (s *AdminService) List(ctx context.Context, viewer *domainauth.Principal) ([]model.Admin, error) {
	if !canManage(viewer) {
		return nil, apperrors.New(apperrors.ErrCodeForbidden, MsgNoPermission)
	}
	return s.directory.List(ctx)
}

// Add creates a new administrator account. Creation requires elevation; an
// Admin-tier viewer sees the control but cannot submit.
func (s *AdminService) Add(ctx context.Context, viewer *domainauth.Principal, req model.AddAdminRequest) (*AdminMutationResult, error) {
	if viewer == nil || !viewer.Capabilities.CanCreateAdmin {
		return nil, apperrors.New(apperrors.ErrCodeForbidden, MsgNoPermission)
	}
	switch {
	case req.Username == "":
		return nil, apperrors.NewField("username", "Kullanıcı adı gereklidir")
	case req.Email == "":
		return nil, apperrors.NewField("email", "Email gereklidir")
	case req.FullName == "":
		return nil, apperrors.NewField("fullName", "Ad soyad gereklidir")
	case req.Password == "":
		return nil, apperrors.NewField("password", "Şifre gereklidir")
	}

	msg, err := s.directory.Add(ctx, req)
	if err != nil {
		return nil, err
	}
	s.countMutation("add")
	return s.refreshed(ctx, msg)
}

// SetStatus toggles an administrator's active flag. Elevated accounts are
// immune regardless of who asks: the target is checked against the current
// directory and the call never leaves the process when it is a SuperAdmin.
func (s *AdminService) SetStatus(ctx context.Context, viewer *domainauth.Principal, upd model.AdminStatusUpdate) (*AdminMutationResult, error) {
	if viewer == nil || !viewer.Capabilities.CanToggleAdminStatus {
		return nil, apperrors.New(apperrors.ErrCodeForbidden, MsgNoPermission)
	}

	target, err := s.lookup(ctx, upd.UserID)
	if err != nil {
		return nil, err
	}
	if target.IsSuperAdmin {
		return nil, ErrElevatedNoToggle
	}

	msg, err := s.directory.SetStatus(ctx, upd)
	if err != nil {
		return nil, err
	}
	s.countMutation("setstatus")
	return s.refreshed(ctx, msg)
}

// Delete removes an administrator account. The self check runs first: an
// operator deleting their own account is refused before the target's
// elevation is even considered, and before any backend call.
func (s *AdminService) Delete(ctx context.Context, viewer *domainauth.Principal, id string) (*AdminMutationResult, error) {
	if viewer == nil || !viewer.Capabilities.CanDeleteAdmin {
		return nil, apperrors.New(apperrors.ErrCodeForbidden, MsgNoPermission)
	}
	if id == viewer.Claims.SubjectID {
		return nil, ErrSelfDelete
	}

	target, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.IsSuperAdmin {
		return nil, ErrElevatedNoDelete
	}

	msg, err := s.directory.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.countMutation("delete")
	return s.refreshed(ctx, msg)
}

func (s *AdminService) lookup(ctx context.Context, id string) (model.Admin, error) {
	admins, err := s.directory.List(ctx)
	if err != nil {
		return model.Admin{}, err
	}
	for _, a := range admins {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Admin{}, apperrors.New(apperrors.ErrCodeNotFound, MsgAdminNotFound)
}

func (s *AdminService) refreshed(ctx context.Context, msg string) (*AdminMutationResult, error) {
	admins, err := s.directory.List(ctx)
	if err != nil {
		// The mutation itself succeeded; surface the message with no list
		// and let the caller re-load.
		s.logger.Warn("directory refresh after mutation failed", "error", err)
		return &AdminMutationResult{Message: msg}, nil
	}
	return &AdminMutationResult{Message: msg, Admins: admins}, nil
}

func (s *AdminService) countMutation(op string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Count("admin.mutation", 1, map[string]string{"op": op})
}

func canManage(p *domainauth.Principal) bool {
	return p != nil && p.Capabilities.CanManageAdmins
}
