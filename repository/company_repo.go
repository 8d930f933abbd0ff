package repository

import "courierbilling/models"

type CompanyRepository interface {
	SaveProfile(profile *models.CompanyProfile) error
	GetProfile() (*models.CompanyProfile, error)
}
