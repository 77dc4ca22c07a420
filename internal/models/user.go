package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// User is a row in the account directory. The directory is maintained by the
// registration service; this backend only reads it to turn account emails
// into display names.
type User struct {
	gorm.Model `json:"-"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
