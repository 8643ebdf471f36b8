package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/unison/inventory-manager/internal/auth"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func authorize(ctx context.Context, identity auth.Identity, resource auth.Resource, action string) error {
	role := identity.CurrentUserRole(ctx)
	if auth.CanWrite(role, resource) {
		return nil
	}
	return srvErrors.NewForbiddenError(identity.CurrentUserName(ctx), role, action)
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return srvErrors.NewValidationError(err)
	}
	return nil
}
