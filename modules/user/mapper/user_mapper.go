package mapper

import (
	"event-hub/modules/user/dto"
	"event-hub/modules/user/entity"
)

func ToUserEntity(req *dto.NewUserRequest) *entity.User {
	return &entity.User{
		Name:  req.Name,
		Email: req.Email,
	}
}

func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func ToUserResponses(users []entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = *ToUserResponse(&users[i])
	}
	return out
}
