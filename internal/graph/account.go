package graph

import (
	"github.com/graphql-go/graphql"

	"yeoman/internal/auth"
	apperrors "yeoman/internal/errors"
	"yeoman/internal/models"
)

func (r *Resolver) resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	input := models.SignupInput{
		Name:     stringArg(p, "name"),
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	}
	if err := r.validateInput(input); err != nil {
		return nil, err
	}

	// Name is the process-wide identity key; reject before hashing.
	if _, err := r.store.GetUserByName(p.Context, input.Name); err == nil {
		return nil, apperrors.Duplicate("user")
	} else if !apperrors.IsKind(err, apperrors.KindNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := r.store.CreateUser(p.Context, input.Name, input.Email, hash)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateJWT(user.ID, user.Name, r.secret)
	if err != nil {
		return nil, err
	}

	r.logger.WithField("user_id", user.ID).Info("User signed up")
	return &models.AuthPayload{Token: token, User: user}, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	input := models.LoginInput{
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	}
	if err := r.validateInput(input); err != nil {
		return nil, err
	}

	user, err := r.store.GetUserByEmail(p.Context, input.Email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := auth.GenerateJWT(user.ID, user.Name, r.secret)
	if err != nil {
		return nil, err
	}

	r.logger.WithField("user_id", user.ID).Info("User logged in")
	return &models.AuthPayload{Token: token, User: user}, nil
}
