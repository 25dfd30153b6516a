package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rodacerta/frotagest/internal/auth"
	"rodacerta/frotagest/internal/constants"
	"rodacerta/frotagest/internal/logging"
	"rodacerta/frotagest/internal/models/dtos"
	gormModels "rodacerta/frotagest/internal/models/gorm"
	"rodacerta/frotagest/internal/tire"
)

// ErrBadCredentials covers every login failure the caller is told about.
// Unknown email and wrong password are deliberately indistinguishable.
var ErrBadCredentials = errors.New("invalid email or password")

// OperatorRepo is the operator account persistence surface.
type OperatorRepo interface {
	GetByID(ctx context.Context, id string) (*gormModels.Operator, error)
	GetByEmail(ctx context.Context, email string) (*gormModels.Operator, error)
	List(ctx context.Context) ([]gormModels.Operator, error)
	Create(ctx context.Context, op *gormModels.Operator) error
	Update(ctx context.Context, op *gormModels.Operator) error
}

// AuthService handles operator login and account administration.
type AuthService struct {
	operators  OperatorRepo
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(operators OperatorRepo, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{operators: operators, jwtSecret: jwtSecret, sessionTTL: sessionTTL}
}

// Login verifies credentials and issues a session token.
func (svc *AuthService) Login(ctx context.Context, req *dtos.LoginReq) (*dtos.LoginResponse, error) {
	op, err := svc.operators.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !op.IsActive {
		return nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrBadCredentials
	}

	token, expiresAt, err := auth.IssueToken(svc.jwtSecret, op.ID, op.Name, op.Role, svc.sessionTTL)
	if err != nil {
		return nil, err
	}

	logging.Info("Operator logged in", "operator_id", op.ID, "role", string(op.Role))
	return &dtos.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Name:      op.Name,
		Role:      string(op.Role),
	}, nil
}

// CreateOperator registers a console account with a bcrypt password hash.
func (svc *AuthService) CreateOperator(ctx context.Context, req *dtos.OperatorReq) (*dtos.OperatorView, error) {
	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
			Field: "password", Message: "password is required"}
	}
	if _, err := svc.operators.GetByEmail(ctx, req.Email); err == nil {
		return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
			Field: "email", Message: fmt.Sprintf("email %s is already registered", req.Email)}
	} else if !errors.Is(err, tire.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	op := &gormModels.Operator{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if req.IsActive != nil {
		op.IsActive = *req.IsActive
	}
	if err := svc.operators.Create(ctx, op); err != nil {
		return nil, err
	}
	return operatorView(op), nil
}

// UpdateOperator rewrites an account; an empty password keeps the
// current hash.
func (svc *AuthService) UpdateOperator(ctx context.Context, id string, req *dtos.OperatorReq) (*dtos.OperatorView, error) {
	op, err := svc.operators.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return nil, tire.NotFoundErr(tire.CodeRecordNotFound, "operator %s not found", id)
		}
		return nil, err
	}

	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}

	op.Name = req.Name
	op.Email = req.Email
	op.Role = role
	if req.IsActive != nil {
		op.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		op.PasswordHash = string(hash)
	}

	if err := svc.operators.Update(ctx, op); err != nil {
		return nil, err
	}
	return operatorView(op), nil
}

// Operator returns one account by id.
func (svc *AuthService) Operator(ctx context.Context, id string) (*dtos.OperatorView, error) {
	op, err := svc.operators.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return nil, tire.NotFoundErr(tire.CodeRecordNotFound, "operator %s not found", id)
		}
		return nil, err
	}
	return operatorView(op), nil
}

// ListOperators returns every console account.
func (svc *AuthService) ListOperators(ctx context.Context) ([]dtos.OperatorView, error) {
	ops, err := svc.operators.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.OperatorView, 0, len(ops))
	for i := range ops {
		out = append(out, *operatorView(&ops[i]))
	}
	return out, nil
}

func operatorView(op *gormModels.Operator) *dtos.OperatorView {
	return &dtos.OperatorView{
		ID:       op.ID,
		Name:     op.Name,
		Email:    op.Email,
		Role:     string(op.Role),
		IsActive: op.IsActive,
	}
}

func parseRole(raw string) (constants.OperatorRole, error) {
	switch constants.OperatorRole(raw) {
	case constants.RoleOperator, constants.RoleManager, constants.RoleAdmin:
		return constants.OperatorRole(raw), nil
	}
	return "", &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
		Field: "role", Message: fmt.Sprintf("unknown role %q", raw)}
}
