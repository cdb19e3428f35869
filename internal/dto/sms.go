package dto

// UpdateSMSSettingsRequest represents the request payload for updating
// SMS ingestion preferences
type UpdateSMSSettingsRequest struct {
	AutoImportEnabled        *bool   `json:"auto_import_enabled"`
	BusinessPhoneActive      *bool   `json:"business_phone_active"`
	PersonalPhoneActive      *bool   `json:"personal_phone_active"`
	SmartSupplierRecognition *bool   `json:"smart_supplier_recognition"`
	AutoCategorizeRecurring  *bool   `json:"auto_categorize_recurring"`
	CustomKeywords           *string `json:"custom_keywords" validate:"omitempty,max=1000"`
}
