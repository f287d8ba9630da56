package persistent

import "github.com/google/uuid"

// validID filters out ids postgres would reject as uuids, so a malformed id
// reads as a missing row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
