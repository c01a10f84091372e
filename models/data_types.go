package models

// VaultItemType defines the semantic type of the secret stored inside a
// vault item. The value determines how the decrypted payload is presented.
type VaultItemType string

const (
	// VaultItemPIN represents a short numeric code (ATM PIN, door code).
	VaultItemPIN VaultItemType = "pin"

	// VaultItemPassword represents an account password.
	VaultItemPassword VaultItemType = "password"

	// VaultItemCard represents payment card details.
	VaultItemCard VaultItemType = "card"

	// VaultItemATM represents ATM card credentials.
	VaultItemATM VaultItemType = "atm"

	// VaultItemOther represents any other free-form secret.
	VaultItemOther VaultItemType = "other"
)

// allowedVaultItemTypes is the exhaustive set of accepted vault item types.
var allowedVaultItemTypes = []VaultItemType{
	VaultItemPIN,
	VaultItemPassword,
	VaultItemCard,
	VaultItemATM,
	VaultItemOther,
}

// Valid reports whether t is one of the known vault item types.
func (t VaultItemType) Valid() bool {
	for _, allowed := range allowedVaultItemTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// DocumentType classifies an uploaded document.
type DocumentType string

const (
	DocumentAadhar         DocumentType = "aadhar"
	DocumentPAN            DocumentType = "pan"
	DocumentPassport       DocumentType = "passport"
	DocumentDriversLicense DocumentType = "drivers_license"

	// DocumentCustom is any other document; Document.CustomLabel names it.
	DocumentCustom DocumentType = "custom"
)

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentAadhar, DocumentPAN, DocumentPassport, DocumentDriversLicense, DocumentCustom:
		return true
	}
	return false
}
