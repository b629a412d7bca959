package workspace

import (
	"fmt"
	"strings"

	"unitracker/internal/model"
)

// Validate checks the few invariants a saved document must hold. Errors wrap ErrValidation.
// Key format is enforced by AddField only, so documents written before slugging still save.
func Validate(ws model.Workspace) error {
	for _, u := range ws.Universities {
		if strings.TrimSpace(u.Name) == "" {
			return fmt.Errorf("%w: university %q has an empty name", ErrValidation, u.ID)
		}
	}

	seen := make(map[string]struct{}, len(ws.Admin.UniversityFields))
	for _, def := range ws.Admin.UniversityFields {
		if strings.TrimSpace(def.Key) == "" {
			return fmt.Errorf("%w: field %q has an empty key", ErrValidation, def.ID)
		}
		if _, dup := seen[def.Key]; dup {
			return fmt.Errorf("%w: duplicate field key %q", ErrValidation, def.Key)
		}
		seen[def.Key] = struct{}{}
		if !def.Type.Valid() {
			return fmt.Errorf("%w: field %q has unknown type %q", ErrValidation, def.Key, def.Type)
		}
	}
	return nil
}
