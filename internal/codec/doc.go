// Package codec converts purchase state to and from its plaintext cache
// document.
//
// The document is a single JSON object with exactly three fields:
//
//	{
//	  "PurchaseUpdateOffset": "BEGINNING",
//	  "EntitledSKUs": [{"SKU": "sku.gold"}],
//	  "PendingPuchaseTransactions": [{
//	    "Result": 0, "SKU": "sku.gold", "ProductType": "ENTITLED",
//	    "TransactionID": "t1", "PurchaseToken": "tok1"
//	  }]
//	}
//
// Encode is canonical: compact, no HTML escaping, entitlements sorted.
// Decode is strict and all-or-nothing: any missing, unknown, duplicated or
// mistyped field fails the whole document with a *DocumentError.
package codec
