package services

import (
	"errors"

	"cyber-shop/models"
	"cyber-shop/repositories"
	"cyber-shop/utils"
)

var (
	ErrUsernameTaken   = errors.New("username already exists")
	ErrUnknownUser     = errors.New("user does not exist")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrNotAccountOwner = errors.New("cannot modify another user's account")
)

type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *UserService) Register(req models.RegisterRequest) (*models.User, error) {
	existing, _ := s.userRepo.FindByUsername(req.Username)
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Email:    req.Email,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, ErrUnknownUser
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrWrongPassword
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Message: "login successful",
		Token:   token,
		User:    *user,
	}, nil
}

func (s *UserService) GetByID(id int) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// Update overwrites only the supplied fields; the acting user may only update
// their own account.
func (s *UserService) Update(id, actingUserID int, req models.UpdateUserRequest) (*models.User, error) {
	if id != actingUserID {
		return nil, ErrNotAccountOwner
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		taken, _ := s.userRepo.FindByUsername(*req.Username)
		if taken != nil {
			return nil, ErrUsernameTaken
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
