package flyer

import (
	"fmt"
	"strings"

	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// validateSaveRequest validates a save/update project request.
// A project needs a non-empty name and every submitted group must hold
// at least one product (the image derivation depends on it).
func validateSaveRequest(req *services.SaveProjectRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.By(validateProjectName),
		),
	)
	if err != nil {
		return err
	}

	for i := range req.Groups {
		group := &req.Groups[i]
		err := validation.ValidateStruct(group,
			validation.Field(&group.Type, validation.Required, validation.By(validateGroupType)),
			validation.Field(&group.Products, validation.Required, validation.Length(1, 0)),
		)
		if err != nil {
			return fmt.Errorf("group %d: %v", i, err)
		}
	}

	return nil
}

// validateProjectName validates a project name
func validateProjectName(value interface{}) error {
	name, ok := value.(string)
	if !ok {
		return fmt.Errorf("name must be a string")
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	return nil
}

// validateGroupType validates the group render mode
func validateGroupType(value interface{}) error {
	groupType, ok := value.(models.GroupType)
	if !ok {
		return fmt.Errorf("type must be a group type")
	}

	if !groupType.Valid() {
		return fmt.Errorf("unknown group type %q", groupType)
	}

	return nil
}
