// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"

	"github.com/rutero-app/rutero/internal/model"
)

// AuthService covers authentication, account registration and the
// password-reset flow.
type AuthService struct {
	c *Client
}

// TokenResponse is the payload of the token-create endpoint.
type TokenResponse struct {
	Access string `json:"access"`
}

// CreateToken exchanges credentials for an access token. A 401 comes back
// as an *Error with Status 401; the session layer turns that into a
// user-visible message.
func (s *AuthService) CreateToken(ctx context.Context, email, password string) (string, error) {
	resp, err := s.c.Post(ctx, "/auth/jwt/create/", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	tr, err := Decode[TokenResponse](resp)
	if err != nil {
		return "", fmt.Errorf("create token: %w", err)
	}
	return tr.Access, nil
}

// Me fetches the profile of the token's owner. Pass WithBearer to use a
// token other than the one the client's TokenSource yields.
func (s *AuthService) Me(ctx context.Context, opts ...RequestOption) (*model.UserProfile, error) {
	resp, err := s.c.Get(ctx, "/auth/users/me/", opts...)
	if err != nil {
		return nil, err
	}
	profile, err := Decode[model.UserProfile](resp)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return &profile, nil
}

// SignUpParams is the registration payload. The account stays inactive
// until the phone number is verified.
type SignUpParams struct {
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PhoneNumber    string `json:"phone_number"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
}

// SignUp registers a new account. The server answers 201 with the created
// account record.
func (s *AuthService) SignUp(ctx context.Context, params SignUpParams) (*model.UserProfile, error) {
	resp, err := s.c.Post(ctx, "/users/accounts/", params)
	if err != nil {
		return nil, err
	}
	profile, err := Decode[model.UserProfile](resp)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return &profile, nil
}

// UpdateAccount patches fields of the given account, e.g. the preferred
// activities chosen on the preferences screen.
func (s *AuthService) UpdateAccount(ctx context.Context, accountID int, fields map[string]any) (*model.UserProfile, error) {
	resp, err := s.c.Patch(ctx, fmt.Sprintf("/users/accounts/%d/", accountID), fields)
	if err != nil {
		return nil, err
	}
	profile, err := Decode[model.UserProfile](resp)
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	return &profile, nil
}

// ResendVerificationCode asks the server to send a fresh account
// verification code. 404 means the phone number is not registered.
func (s *AuthService) ResendVerificationCode(ctx context.Context, phoneNumber string) error {
	_, err := s.c.Post(ctx, "/auth/resend-verification-code/", map[string]string{
		"phone_number": phoneNumber,
	})
	return err
}

// SendResetPasswordCode starts the password-reset flow for phoneNumber.
func (s *AuthService) SendResetPasswordCode(ctx context.Context, phoneNumber string) error {
	_, err := s.c.Post(ctx, "/auth/send-reset-password-code/", map[string]string{
		"phone_number": phoneNumber,
	})
	return err
}

// VerifyResetPasswordCode checks the code the user received.
func (s *AuthService) VerifyResetPasswordCode(ctx context.Context, phoneNumber, code string) error {
	_, err := s.c.Post(ctx, "/auth/verify-reset-password-code/", map[string]string{
		"phone_number": phoneNumber,
		"code":         code,
	})
	return err
}

// ResetPassword sets a new password after a verified code. The server
// answers 400 when the two passwords do not match.
func (s *AuthService) ResetPassword(ctx context.Context, phoneNumber, newPassword, reNewPassword string) error {
	_, err := s.c.Post(ctx, "/auth/reset-password/", map[string]string{
		"phone_number":    phoneNumber,
		"new_password":    newPassword,
		"re_new_password": reNewPassword,
	})
	return err
}
