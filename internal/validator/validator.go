// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"armory/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_type", validateAssetType)
		_ = v.RegisterValidation("asset_status", validateAssetStatus)
		_ = v.RegisterValidation("asset_condition", validateAssetCondition)
		_ = v.RegisterValidation("user_role", validateUserRole)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
	}
}

func validateAssetType(fl validator.FieldLevel) bool {
	return models.AssetType(fl.Field().String()).Valid()
}

func validateAssetStatus(fl validator.FieldLevel) bool {
	return models.AssetStatus(fl.Field().String()).Valid()
}

func validateAssetCondition(fl validator.FieldLevel) bool {
	return models.AssetCondition(fl.Field().String()).Valid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}
