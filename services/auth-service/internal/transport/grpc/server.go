package grpc_server

import (
	"context"
	"errors"

	"courseplatform/pkg/authpb"
	"courseplatform/pkg/logger"
	"courseplatform/services/auth-service/internal/application/usecase"
	"courseplatform/services/auth-service/internal/domain"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type AuthServer struct {
	authpb.UnimplementedAuthServiceServer
	useCase *usecase.AuthUseCase
	log     *logger.Logger
}

func NewAuthServer(uc *usecase.AuthUseCase, log *logger.Logger) *AuthServer {
	return &AuthServer{useCase: uc, log: log}
}

func (s *AuthServer) toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenRevoked),
		errors.Is(err, domain.ErrUserNotFound):
		return status.Error(codes.Unauthenticated, err.Error())
	}
	s.log.Error("auth request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *AuthServer) Register(ctx context.Context, req *authpb.RegisterRequest) (*authpb.RegisterResponse, error) {
	userID, err := s.useCase.Register(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &authpb.RegisterResponse{UserId: userID}, nil
}

func (s *AuthServer) Login(ctx context.Context, req *authpb.LoginRequest) (*authpb.LoginResponse, error) {
	sess, err := s.useCase.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &authpb.LoginResponse{AccessToken: sess.AccessToken, RefreshToken: sess.RefreshToken, Role: sess.Role}, nil
}

func (s *AuthServer) Validate(ctx context.Context, req *authpb.ValidateRequest) (*authpb.ValidateResponse, error) {
	claims, err := s.useCase.ValidateAccess(req.AccessToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	return &authpb.ValidateResponse{UserId: claims.UserID, Role: claims.Role}, nil
}

func (s *AuthServer) RefreshToken(ctx context.Context, req *authpb.RefreshTokenRequest) (*authpb.RefreshTokenResponse, error) {
	sess, err := s.useCase.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &authpb.RefreshTokenResponse{AccessToken: sess.AccessToken, RefreshToken: sess.RefreshToken}, nil
}

func (s *AuthServer) Logout(ctx context.Context, req *authpb.LogoutRequest) (*authpb.LogoutResponse, error) {
	if err := s.useCase.Logout(ctx, req.RefreshToken); err != nil {
		s.log.Warn("logout failed", "error", err)
	}
	return &authpb.LogoutResponse{Success: true}, nil
}
