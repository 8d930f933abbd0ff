package repository

import "courierbilling/models"

type UserRepository interface {
	CreateUser(user *models.AppUser) error
	GetUserByUsername(username string) (*models.AppUser, error)
}
