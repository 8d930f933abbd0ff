package repository

import "courierbilling/models"

type PartyRepository interface {
	SaveParty(party *models.Party) error
	GetParties() ([]*models.Party, error)
	GetPartyByID(id int64) (*models.Party, error)
}
