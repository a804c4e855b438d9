package controllers

import (
	"github.com/shashiranjanraj/arogya/app/services"
	"github.com/shashiranjanraj/arogya/pkg/ctx"
)

// AuthController exposes registration and login.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles POST /api/user/register.
func (a *AuthController) Register(c *ctx.Context) {
	var in services.RegisterInput
	if !c.BindJSON(&in) {
		return
	}

	res, err := a.auth.Register(in)
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// Login handles POST /api/user/login.
func (a *AuthController) Login(c *ctx.Context) {
	var in services.LoginInput
	if !c.BindJSON(&in) {
		return
	}

	res, err := a.auth.Login(in)
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}
