package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/woofwoof-app/backend/internal/domain"
)

// RegisterValidators installs the domain validators used in binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("swipeaction", validSwipeAction); err != nil {
		return err
	}
	if err := v.RegisterValidation("intention", validIntention); err != nil {
		return err
	}
	return v.RegisterValidation("activitylevel", validActivityLevel)
}

func validSwipeAction(fl validator.FieldLevel) bool {
	return domain.IsValidSwipeAction(fl.Field().String())
}

func validIntention(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case domain.IntentionReproduction, domain.IntentionBalade, domain.IntentionBoth:
		return true
	}
	return false
}

func validActivityLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	for _, known := range domain.ActivityLevels {
		if level == known {
			return true
		}
	}
	return false
}
