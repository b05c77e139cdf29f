package codec

// Persisted field names. "PendingPuchaseTransactions" keeps its historical
// spelling so existing caches stay readable.
const (
	fieldOffset   = "PurchaseUpdateOffset"
	fieldEntitled = "EntitledSKUs"
	fieldPending  = "PendingPuchaseTransactions"

	fieldResult        = "Result"
	fieldSKU           = "SKU"
	fieldProductType   = "ProductType"
	fieldTransactionID = "TransactionID"
	fieldPurchaseToken = "PurchaseToken"
)

var (
	rootFields        = []string{fieldOffset, fieldEntitled, fieldPending}
	entitlementFields = []string{fieldSKU}
	transactionFields = []string{fieldResult, fieldSKU, fieldProductType, fieldTransactionID, fieldPurchaseToken}
)
