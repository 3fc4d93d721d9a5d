package user

import (
	"context"

	"github.com/muhammadheryan/echobody/model"
)

// UserRepository persists users. Get and Update return (nil, nil) when no user
// matches. Update takes dotted leaf paths ("health.weight") so untouched
// sibling fields survive.
type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, id string, set map[string]any) (*model.UserEntity, error)
}

const CollectionName = "users"
