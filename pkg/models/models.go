// Package models holds the gorm models shared by the catalog service and the
// seeder. Ids are uuids assigned on create.
package models

import (
	"github.com/google/uuid"
)

const DefaultPhoto = "no-photo.jpg"

func newID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}
