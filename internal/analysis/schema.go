package analysis

import "github.com/Veraticus/fraudwatch/internal/llm"

// Wire field names of the reply document.
const (
	fieldSuspiciousFound = "suspiciousFound"
	fieldTransactions    = "transactions"
	fieldID              = "id"
	fieldAmount          = "amount"
	fieldFraudScore      = "fraudScore"
	fieldTimestamp       = "timestamp"
	fieldIsSuspicious    = "isSuspicious"
)

// ResponseSchema is the structured-output schema declared on every request.
func ResponseSchema() *llm.Schema {
	transaction := &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			fieldID: {
				Type:        llm.TypeString,
				Description: "Unique transaction ID, e.g., 'TXN' followed by 8 random digits.",
			},
			fieldAmount: {
				Type:        llm.TypeNumber,
				Description: "The monetary value of the transaction.",
			},
			fieldFraudScore: {
				Type:        llm.TypeInteger,
				Description: "A score from 0-100 indicating the likelihood of fraud.",
			},
			fieldTimestamp: {
				Type:        llm.TypeString,
				Description: "An ISO 8601 formatted timestamp for the transaction.",
			},
			fieldIsSuspicious: {
				Type:        llm.TypeBoolean,
				Description: "A flag that is true if the transaction is considered suspicious (e.g., fraud score > 75).",
			},
		},
		Required: []string{fieldID, fieldAmount, fieldFraudScore, fieldTimestamp, fieldIsSuspicious},
	}

	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			fieldSuspiciousFound: {
				Type:        llm.TypeBoolean,
				Description: "A boolean indicating if any suspicious transactions were identified or generated.",
			},
			fieldTransactions: {
				Type:        llm.TypeArray,
				Description: "A list of mock transactions.",
				Items:       transaction,
			},
		},
		Required: []string{fieldSuspiciousFound, fieldTransactions},
	}
}
