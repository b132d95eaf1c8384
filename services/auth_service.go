package services

import (
	"context"
	"errors"
	"strings"

	"exhibitor-portal/config"
	"exhibitor-portal/models"
	"exhibitor-portal/repositories"
	"exhibitor-portal/utils"
)

type AuthService struct {
	showRepo *repositories.ShowRepository
}

func NewAuthService(client repositories.SpreadsheetClient) *AuthService {
	return &AuthService{
		showRepo: repositories.NewShowRepository(client),
	}
}

// LoginExhibitor opens a booth session. The booth number is free text, the
// only "authentication" the portal has; the exhibitor name is looked up for
// the welcome header.
func (s *AuthService) LoginExhibitor(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	booth := strings.TrimSpace(req.BoothNumber)
	if booth == "" {
		return nil, errors.New("booth number is required")
	}

	session := models.Session{
		BoothNumber:   booth,
		Show:          strings.TrimSpace(req.Show),
		ExhibitorName: s.showRepo.ExhibitorName(ctx, config.AppConfig.SheetID, booth),
		User:          "Exhibitor-" + booth,
		Role:          models.RoleExhibitor,
	}

	token, err := utils.GenerateToken(session)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:         token,
		BoothNumber:   session.BoothNumber,
		Show:          session.Show,
		ExhibitorName: session.ExhibitorName,
		Role:          session.Role,
	}, nil
}

// LoginStaff opens a staff session against the configured credential.
func (s *AuthService) LoginStaff(req models.StaffLoginRequest) (*models.LoginResponse, error) {
	cfg := config.AppConfig
	if cfg.StaffPasswordHash == "" {
		return nil, errors.New("staff access is not configured")
	}
	if req.Username != cfg.StaffUsername {
		return nil, errors.New("invalid credentials")
	}

	ok, err := utils.VerifyPassword(cfg.StaffPasswordHash, req.Password)
	if err != nil || !ok {
		return nil, errors.New("invalid credentials")
	}

	session := models.Session{
		User: req.Username,
		Role: models.RoleStaff,
	}

	token, err := utils.GenerateToken(session)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		Role:  session.Role,
	}, nil
}
