package codec

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"iapstore/internal/domain"
)

// Decode parses a plaintext document into a fresh State. On error the
// returned State is the zero value; callers must not apply it.
func Decode(data []byte) (domain.State, error) {
	if !utf8.Valid(data) || !gjson.ValidBytes(data) {
		return domain.State{}, docErr("$", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return domain.State{}, docErr("$", ErrWrongType)
	}
	if err := checkFields("$", root, rootFields); err != nil {
		return domain.State{}, err
	}

	state := domain.NewState()

	offsetToken, err := stringField("$", root, fieldOffset)
	if err != nil {
		return domain.State{}, err
	}
	offset, err := domain.ParseOffset(offsetToken)
	if err != nil {
		return domain.State{}, docErr("$."+fieldOffset, err)
	}
	state.UpdateOffset = offset

	entitled, err := arrayField("$", root, fieldEntitled)
	if err != nil {
		return domain.State{}, err
	}
	for i, item := range entitled {
		path := fmt.Sprintf("$.%s[%d]", fieldEntitled, i)
		if err := checkObject(path, item, entitlementFields); err != nil {
			return domain.State{}, err
		}
		sku, err := stringField(path, item, fieldSKU)
		if err != nil {
			return domain.State{}, err
		}
		state.EntitledSKUs[sku] = struct{}{}
	}

	pending, err := arrayField("$", root, fieldPending)
	if err != nil {
		return domain.State{}, err
	}
	for i, item := range pending {
		path := fmt.Sprintf("$.%s[%d]", fieldPending, i)
		tx, err := decodeTransaction(path, item)
		if err != nil {
			return domain.State{}, err
		}
		state.Pending = append(state.Pending, tx)
	}
	return state, nil
}

func decodeTransaction(path string, item gjson.Result) (domain.PurchaseTransaction, error) {
	var tx domain.PurchaseTransaction
	if err := checkObject(path, item, transactionFields); err != nil {
		return tx, err
	}
	result, err := intField(path, item, fieldResult)
	if err != nil {
		return tx, err
	}
	sku, err := stringField(path, item, fieldSKU)
	if err != nil {
		return tx, err
	}
	token, err := stringField(path, item, fieldProductType)
	if err != nil {
		return tx, err
	}
	productType, err := domain.ParseProductType(token)
	if err != nil {
		return tx, docErr(path+"."+fieldProductType, err)
	}
	txID, err := stringField(path, item, fieldTransactionID)
	if err != nil {
		return tx, err
	}
	purchaseToken, err := stringField(path, item, fieldPurchaseToken)
	if err != nil {
		return tx, err
	}
	return domain.PurchaseTransaction{
		Result:        result,
		SKU:           sku,
		ProductType:   productType,
		TransactionID: txID,
		PurchaseToken: purchaseToken,
	}, nil
}

func checkObject(path string, v gjson.Result, fields []string) error {
	if !v.IsObject() {
		return docErr(path, ErrWrongType)
	}
	return checkFields(path, v, fields)
}

// checkFields requires obj to hold each of fields exactly once and nothing else.
func checkFields(path string, obj gjson.Result, fields []string) error {
	want := make(map[string]bool, len(fields))
	for _, f := range fields {
		want[f] = false
	}
	var err error
	obj.ForEach(func(key, _ gjson.Result) bool {
		seen, known := want[key.String()]
		switch {
		case !known:
			err = docErr(path+"."+key.String(), ErrUnknownField)
		case seen:
			err = docErr(path+"."+key.String(), ErrDuplicateField)
		default:
			want[key.String()] = true
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	for _, f := range fields {
		if !want[f] {
			return docErr(path+"."+f, ErrMissingField)
		}
	}
	return nil
}

func stringField(path string, obj gjson.Result, name string) (string, error) {
	v := obj.Get(name)
	if v.Type != gjson.String {
		return "", docErr(path+"."+name, ErrWrongType)
	}
	return v.String(), nil
}

func intField(path string, obj gjson.Result, name string) (int, error) {
	v := obj.Get(name)
	if v.Type != gjson.Number {
		return 0, docErr(path+"."+name, ErrWrongType)
	}
	n, err := strconv.Atoi(v.Raw)
	if err != nil {
		return 0, docErr(path+"."+name, ErrWrongType)
	}
	return n, nil
}

func arrayField(path string, obj gjson.Result, name string) ([]gjson.Result, error) {
	v := obj.Get(name)
	if !v.IsArray() {
		return nil, docErr(path+"."+name, ErrWrongType)
	}
	return v.Array(), nil
}
