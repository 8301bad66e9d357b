package xibo

import (
	"context"
	"fmt"
	"net/http"
)

// List retrieves users matching opts.
func (s *UsersService) List(ctx context.Context, opts *UserListOptions) ([]*User, *Response, error) {
	u, err := addOptions("user", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var users []*User
	resp, err := s.client.Do(ctx, req, &users)
	if err != nil {
		return nil, resp, err
	}

	return users, resp, nil
}

// Get retrieves a single user by ID via the list endpoint's filter.
func (s *UsersService) Get(ctx context.Context, userID int) (*User, *Response, error) {
	users, resp, err := s.List(ctx, &UserListOptions{UserID: userID})
	if err != nil {
		return nil, resp, err
	}
	if len(users) == 0 {
		return nil, resp, fmt.Errorf("user %d not found", userID)
	}
	return users[0], resp, nil
}

// Me retrieves the user the API credentials authenticate as.
func (s *UsersService) Me(ctx context.Context) (*User, *Response, error) {
	req, err := s.client.NewRequest(http.MethodGet, "user/me", nil)
	if err != nil {
		return nil, nil, err
	}

	var user *User
	resp, err := s.client.Do(ctx, req, &user)
	if err != nil {
		return nil, resp, err
	}

	return user, resp, nil
}
