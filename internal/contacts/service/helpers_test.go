package service

import (
	"time"

	"property_catalog_backend/internal/contacts/repository"
)

func setNow(repo *repository.Memory, at time.Time) {
	repo.SetClock(func() time.Time { return at })
}
